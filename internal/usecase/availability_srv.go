package usecase

import (
	"context"
	"time"

	"github.com/rohanranjan0902/Scheduling-Platform/internal/data/entity"
	"github.com/rohanranjan0902/Scheduling-Platform/internal/data/repository"
	"github.com/rohanranjan0902/Scheduling-Platform/internal/dto/request"
	"github.com/rohanranjan0902/Scheduling-Platform/internal/dto/response"
	"github.com/rohanranjan0902/Scheduling-Platform/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type AvailabilityService interface {
	// GetConfig returns the operator's timezone, weekly rules and date
	// overrides in one shot.
	GetConfig(ctx context.Context, operatorID string) (*response.AvailabilityConfigResponse, error)

	// ReplaceRules validates the whole batch and atomically swaps the
	// operator's rule set. One bad rule rejects everything.
	ReplaceRules(ctx context.Context, operatorID string, req *request.ReplaceRulesRequest) error

	UpsertOverride(ctx context.Context, operatorID string, req *request.UpsertOverrideRequest) error
	DeleteOverride(ctx context.Context, operatorID string, date string) error
}

type availabilityService struct {
	repo    *repository.Repository
	timeout time.Duration
	log     *zap.Logger
}

func NewAvailabilityService(repo *repository.Repository, timeout time.Duration, log *zap.Logger) AvailabilityService {
	return &availabilityService{
		repo:    repo,
		timeout: timeout,
		log:     log.With(zap.String("service", "availability")),
	}
}

func (s *availabilityService) GetConfig(ctx context.Context, operatorID string) (*response.AvailabilityConfigResponse, error) {
	operatorUUID, err := uuid.Parse(operatorID)
	if err != nil {
		return nil, invalidInput("invalid operator ID %s", operatorID)
	}

	ctx, cancel := storeCtx(ctx, s.timeout)
	defer cancel()

	operator, err := s.repo.Operator.FindByID(ctx, operatorUUID)
	if err != nil {
		return nil, classifyStoreError("get availability config", err)
	}
	if operator == nil {
		return nil, notFound("operator %s not found", operatorID)
	}

	rules, err := s.repo.Rule.FindByOperatorID(ctx, operatorUUID)
	if err != nil {
		return nil, classifyStoreError("get availability rules", err)
	}

	overrides, err := s.repo.Override.FindByOperatorID(ctx, operatorUUID)
	if err != nil {
		return nil, classifyStoreError("get availability overrides", err)
	}

	config := &response.AvailabilityConfigResponse{
		Timezone:  operator.Timezone,
		Rules:     make([]response.AvailabilityRuleResponse, 0, len(rules)),
		Overrides: make([]response.AvailabilityOverrideResponse, 0, len(overrides)),
	}
	for _, rule := range rules {
		config.Rules = append(config.Rules, response.RuleToResponse(rule))
	}
	for _, override := range overrides {
		config.Overrides = append(config.Overrides, response.OverrideToResponse(override))
	}

	return config, nil
}

func (s *availabilityService) ReplaceRules(ctx context.Context, operatorID string, req *request.ReplaceRulesRequest) error {
	operatorUUID, err := uuid.Parse(operatorID)
	if err != nil {
		return invalidInput("invalid operator ID %s", operatorID)
	}

	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Replace rules validation failed", zap.Any("errors", errs))
		return invalidInput("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	// Rules with start >= end are rejected here, at save time, so the
	// slot generator never has to skip them silently.
	now := time.Now()
	rules := make([]*entity.AvailabilityRule, 0, len(req.Rules))
	for i, rule := range req.Rules {
		start, err := time.Parse("15:04", rule.StartTime)
		if err != nil {
			return invalidInput("rule %d: invalid start_time %s", i, rule.StartTime)
		}
		end, err := time.Parse("15:04", rule.EndTime)
		if err != nil {
			return invalidInput("rule %d: invalid end_time %s", i, rule.EndTime)
		}
		if !start.Before(end) {
			return invalidInput("rule %d: start_time %s must be before end_time %s", i, rule.StartTime, rule.EndTime)
		}

		rules = append(rules, &entity.AvailabilityRule{
			BaseSimple: entity.BaseSimple{
				ID:        uuid.New(),
				CreatedAt: now,
			},
			OperatorID: operatorUUID,
			DayOfWeek:  rule.DayOfWeek,
			StartTime:  rule.StartTime,
			EndTime:    rule.EndTime,
		})
	}

	ctx, cancel := storeCtx(ctx, s.timeout)
	defer cancel()

	operator, err := s.repo.Operator.FindByID(ctx, operatorUUID)
	if err != nil {
		return classifyStoreError("replace rules", err)
	}
	if operator == nil {
		return notFound("operator %s not found", operatorID)
	}

	if err := s.repo.Rule.ReplaceAll(ctx, operatorUUID, req.Timezone, rules); err != nil {
		return classifyStoreError("replace rules", err)
	}

	s.log.Info("Weekly rules replaced",
		zap.String("operator_id", operatorID),
		zap.Int("rule_count", len(rules)),
		zap.Bool("timezone_updated", req.Timezone != nil),
	)
	return nil
}

func (s *availabilityService) UpsertOverride(ctx context.Context, operatorID string, req *request.UpsertOverrideRequest) error {
	operatorUUID, err := uuid.Parse(operatorID)
	if err != nil {
		return invalidInput("invalid operator ID %s", operatorID)
	}

	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Upsert override validation failed", zap.Any("errors", errs))
		return invalidInput("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	date, err := utils.ParseDate(req.Date)
	if err != nil {
		return invalidInput("%s", err.Error())
	}

	ctx, cancel := storeCtx(ctx, s.timeout)
	defer cancel()

	operator, err := s.repo.Operator.FindByID(ctx, operatorUUID)
	if err != nil {
		return classifyStoreError("upsert override", err)
	}
	if operator == nil {
		return notFound("operator %s not found", operatorID)
	}

	override := &entity.AvailabilityOverride{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		OperatorID: operatorUUID,
		Date:       date,
		IsBlocked:  req.IsBlocked,
	}

	if err := s.repo.Override.Upsert(ctx, override); err != nil {
		return classifyStoreError("upsert override", err)
	}

	s.log.Info("Availability override saved",
		zap.String("operator_id", operatorID),
		zap.String("date", req.Date),
		zap.Bool("is_blocked", req.IsBlocked),
	)
	return nil
}

func (s *availabilityService) DeleteOverride(ctx context.Context, operatorID string, date string) error {
	operatorUUID, err := uuid.Parse(operatorID)
	if err != nil {
		return invalidInput("invalid operator ID %s", operatorID)
	}

	if _, err := utils.ParseDate(date); err != nil {
		return invalidInput("%s", err.Error())
	}

	ctx, cancel := storeCtx(ctx, s.timeout)
	defer cancel()

	if err := s.repo.Override.DeleteByDate(ctx, operatorUUID, date); err != nil {
		return classifyStoreError("delete override", err)
	}

	s.log.Info("Availability override deleted",
		zap.String("operator_id", operatorID),
		zap.String("date", date),
	)
	return nil
}

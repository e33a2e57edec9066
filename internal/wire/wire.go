package wire

import (
	"net/http"

	"github.com/rohanranjan0902/Scheduling-Platform/internal/adaptor"
	"github.com/rohanranjan0902/Scheduling-Platform/internal/data/repository"
	"github.com/rohanranjan0902/Scheduling-Platform/internal/usecase"
	"github.com/rohanranjan0902/Scheduling-Platform/pkg/middleware"
	"github.com/rohanranjan0902/Scheduling-Platform/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// App holds the assembled dependencies
type App struct {
	Router *chi.Mux
}

// Wiring initializes all dependencies
func Wiring(repo *repository.Repository, config *utils.Config, logger *zap.Logger) *App {
	service := usecase.NewService(repo, config, logger)
	handler := adaptor.NewHandler(service, logger)

	router := setupRouter(handler, logger)

	return &App{
		Router: router,
	}
}

// setupRouter configures the chi router
func setupRouter(handler *adaptor.Handler, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	// Apply global middleware
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS())

	// Apply routes
	wirePublic(r, handler.Public)
	wireAvailability(r, handler.Availability)
	wireBooking(r, handler.Booking)
	wireEventType(r, handler.EventType)

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}

package utils

import (
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	t.Parallel()

	d, err := ParseDate("2025-06-09")
	if err != nil {
		t.Fatalf("ParseDate: %v", err)
	}
	if d.Year() != 2025 || d.Month() != time.June || d.Day() != 9 {
		t.Errorf("parsed %v, want 2025-06-09", d)
	}

	for _, bad := range []string{"09-06-2025", "2025/06/09", "2025-13-01", "not-a-date", ""} {
		if _, err := ParseDate(bad); err == nil {
			t.Errorf("ParseDate(%q): expected error", bad)
		}
	}
}

func TestParseInstant_NormalizesToUTC(t *testing.T) {
	t.Parallel()

	got, err := ParseInstant("2025-06-09T09:00:00-04:00")
	if err != nil {
		t.Fatalf("ParseInstant: %v", err)
	}

	want := time.Date(2025, 6, 9, 13, 0, 0, 0, time.UTC)
	if !got.Equal(want) || got.Location() != time.UTC {
		t.Errorf("parsed %v in %v, want %v UTC", got, got.Location(), want)
	}

	if _, err := ParseInstant("2025-06-09 13:00"); err == nil {
		t.Error("expected error for non-RFC3339 input")
	}
}

func TestValidateStruct_CustomTags(t *testing.T) {
	t.Parallel()

	type payload struct {
		Time string `validate:"required,hhmm"`
		Zone string `validate:"required,tzname"`
	}

	if errs := ValidateStruct(&payload{Time: "09:30", Zone: "America/New_York"}); len(errs) != 0 {
		t.Fatalf("valid payload rejected: %v", errs)
	}

	cases := []struct {
		name  string
		in    payload
		field string
	}{
		{"twelve hour clock", payload{Time: "9:30am", Zone: "UTC"}, "Time"},
		{"minutes out of range", payload{Time: "09:75", Zone: "UTC"}, "Time"},
		{"unknown zone", payload{Time: "09:30", Zone: "Mars/Olympus_Mons"}, "Zone"},
		{"ambiguous local zone", payload{Time: "09:30", Zone: "Local"}, "Zone"},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			errs := ValidateStruct(&tc.in)
			if _, ok := errs[tc.field]; !ok {
				t.Errorf("expected error on field %s, got %v", tc.field, errs)
			}
		})
	}
}

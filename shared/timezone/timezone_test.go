package timezone_test

import (
	"testing"
	"time"

	"hotel/shared/timezone"
)

func TestTimezoneInit(t *testing.T) {
	now := timezone.Now()
	if now.IsZero() {
		t.Error("Now() returned zero time")
	}

	loc := timezone.GetLocation()
	if loc == nil {
		t.Error("GetLocation() returned nil")
	}
}

func TestTimezoneWithStandardLocation(t *testing.T) {
	utcTime := time.Now().UTC()
	appTime := timezone.ToAppTime(utcTime)

	if appTime.Location() == nil {
		t.Error("Expected converted time to have a location")
	}

	if !appTime.Equal(utcTime) {
		t.Error("Expected converted time to represent the same instant")
	}
}

func TestTimezoneParseFormat(t *testing.T) {
	testTime := time.Date(2024, 12, 25, 15, 30, 0, 0, timezone.GetLocation())
	formatted := timezone.Format(testTime, "01/02/2006 03:04 PM")

	if formatted != "12/25/2024 03:30 PM" {
		t.Errorf("Format() returned %q, expected %q", formatted, "12/25/2024 03:30 PM")
	}

	parsed, err := timezone.Parse("01/02/2006 03:04 PM", "12/25/2024 03:30 PM")
	if err != nil {
		t.Errorf("Parse() failed: %v", err)
	}

	if !parsed.Equal(testTime) {
		t.Errorf("Parse() returned %v, expected %v", parsed, testTime)
	}

	if parsed.Location() != timezone.GetLocation() {
		t.Error("Parse() did not return a time in the application location")
	}
}

package response_test

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"hiring-orchestrator/pkg/response"
)

func TestDateMarshalJSON(t *testing.T) {
	tm := time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC)
	// Response type uses Local() time, so test depends on test runner timezone.
	// To avoid flaky tests, we just check if it gets wrapped in JSON quotes and isn't empty.
	d := response.Date(tm)

	b, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("unexpected error marshaling Date: %v", err)
	}

	str := string(b)
	if !strings.HasPrefix(str, `"`) || !strings.HasSuffix(str, `"`) {
		t.Errorf("expected string JSON format, got %s", str)
	}
	if len(str) < 10 {
		t.Errorf("marshaled string too short: %s", str)
	}
}

func TestDateTimeMarshalJSON(t *testing.T) {
	tm := time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC)
	dt := response.DateTime(tm)

	b, err := json.Marshal(dt)
	if err != nil {
		t.Fatalf("unexpected error marshaling DateTime: %v", err)
	}

	str := string(b)
	if !strings.HasPrefix(str, `"`) || !strings.HasSuffix(str, `"`) {
		t.Errorf("expected string JSON format, got %s", str)
	}
	if len(str) < 15 {
		t.Errorf("marshaled string too short: %s", str)
	}
}

func TestDateTimeRoundTrip(t *testing.T) {
	tm := time.Date(2024, 5, 1, 15, 30, 0, 0, time.Local)

	b, err := json.Marshal(response.DateTime(tm))
	if err != nil {
		t.Fatalf("unexpected error marshaling DateTime: %v", err)
	}

	var got response.DateTime
	if err := json.Unmarshal(b, &got); err != nil {
		t.Fatalf("unexpected error unmarshaling DateTime: %v", err)
	}
	if !time.Time(got).Equal(tm) {
		t.Errorf("round trip got %v, want %v", time.Time(got), tm)
	}

	var d response.Date
	if err := json.Unmarshal([]byte(`"2024-05-01"`), &d); err != nil {
		t.Fatalf("unexpected error unmarshaling Date: %v", err)
	}
	if time.Time(d).Day() != 1 || time.Time(d).Month() != time.May {
		t.Errorf("unexpected date %v", time.Time(d))
	}

	if err := json.Unmarshal([]byte(`"not a date"`), &d); err == nil {
		t.Errorf("expected error for malformed date")
	}
}

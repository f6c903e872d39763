package timezone_test

import (
	"database/sql"
	"hoteladmin/shared/timezone"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit(t *testing.T) {
	t.Cleanup(func() { timezone.Init("UTC") })

	timezone.Init("Asia/Jakarta")

	if got := timezone.GetLocation().String(); got != "Asia/Jakarta" {
		t.Errorf("expected Asia/Jakarta, got %s", got)
	}

	timezone.Init("Not/AZone")

	if got := timezone.GetLocation(); got != time.UTC {
		t.Errorf("expected UTC fallback, got %s", got)
	}

	timezone.Init("")

	if got := timezone.GetLocation(); got != time.UTC {
		t.Errorf("expected UTC for empty name, got %s", got)
	}
}

func TestNow(t *testing.T) {
	now := timezone.Now()
	if now.IsZero() {
		t.Error("Now() returned zero time")
	}

	if now.Nanosecond()%int(time.Microsecond) != 0 {
		t.Errorf("expected microsecond precision, got %d ns", now.Nanosecond())
	}
}

func TestFormatAndParse(t *testing.T) {
	testTime := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

	if got := timezone.Format(testTime, "2006-01-02 15:04:05"); got != "2024-01-01 12:00:00" {
		t.Errorf("unexpected format %s", got)
	}

	parsed, err := timezone.Parse("2006-01-02", "2024-01-01")
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}

	if parsed.Year() != 2024 || parsed.Month() != time.January || parsed.Day() != 1 {
		t.Errorf("unexpected parsed time %s", parsed)
	}
}

func TestStartOfMonth(t *testing.T) {
	in := time.Date(2024, 3, 17, 15, 4, 5, 0, time.UTC)

	got := timezone.StartOfMonth(in)
	want := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	if !got.Equal(want) {
		t.Errorf("expected %s, got %s", want, got)
	}

	if day := timezone.StartOfDay(in); !day.Equal(time.Date(2024, 3, 17, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("unexpected start of day %s", day)
	}
}

func TestDate(t *testing.T) {
	t.Cleanup(func() { timezone.Init("UTC") })

	timezone.Init("Asia/Jakarta")

	// 20:00 UTC is already the next day in Jakarta.
	got := timezone.Date(time.Date(2024, 3, 31, 20, 0, 0, 0, time.UTC))
	want := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)

	if !got.Equal(want) || got.Location() != time.UTC {
		t.Errorf("expected %s, got %s", want, got)
	}

	parsed, err := timezone.ParseDate("2024-04-01")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !parsed.Equal(want) {
		t.Errorf("expected %s, got %s", want, parsed)
	}

	if _, err := timezone.ParseDate("01/04/2024"); err == nil {
		t.Error("expected error for malformed date")
	}
}

func TestStorable(t *testing.T) {
	jakarta, err := time.LoadLocation("Asia/Jakarta")
	require.NoError(t, err)

	local := time.Date(2026, 3, 8, 9, 30, 0, 0, jakarta)
	utc := time.Date(2026, 3, 8, 2, 30, 0, 0, time.UTC)

	tests := []struct {
		name  string
		value any
		want  any
	}{
		{name: "time", value: local, want: utc},
		{name: "pointer", value: &local, want: &utc},
		{name: "valid null time", value: sql.NullTime{Time: local, Valid: true}, want: sql.NullTime{Time: utc, Valid: true}},
		{name: "invalid null time", value: sql.NullTime{}, want: sql.NullTime{}},
		{name: "other", value: "101", want: "101"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, timezone.Storable(tt.value))
		})
	}

	args := timezone.StorableArgs(map[string]any{"now": local, "id": 7})
	assert.Equal(t, utc, args["now"])
	assert.Equal(t, 7, args["id"])
}

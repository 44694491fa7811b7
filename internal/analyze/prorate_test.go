package analyze

import "testing"

func TestDaysInMonth(t *testing.T) {
	cases := []struct {
		month string
		want  int
	}{
		{"2026-01", 31},
		{"2026-02", 28},
		{"2024-02", 29}, // leap year
		{"2026-04", 30},
		{"2100-02", 28}, // century non-leap
		{"2000-02", 29}, // 400-year leap
	}
	for _, c := range cases {
		got, err := DaysInMonth(c.month)
		if err != nil {
			t.Fatalf("DaysInMonth(%s): %v", c.month, err)
		}
		if got != c.want {
			t.Errorf("DaysInMonth(%s) = %d, want %d", c.month, got, c.want)
		}
	}
}

func TestDaysInMonth_BadKey(t *testing.T) {
	if _, err := DaysInMonth("2026-13"); err == nil {
		t.Error("expected error for month 13")
	}
	if _, err := DaysInMonth("febuary"); err == nil {
		t.Error("expected error for junk month key")
	}
}

func TestProrate_StartDayOneCoversFullMonth(t *testing.T) {
	for _, month := range []string{"2026-01", "2026-02", "2024-02", "2026-04"} {
		got, err := Prorate(month, 1, 1400)
		if err != nil {
			t.Fatalf("Prorate(%s): %v", month, err)
		}
		if !almostEqual(got, 1400) {
			t.Errorf("Prorate(%s, 1, 1400) = %v, want 1400", month, got)
		}
	}
}

func TestProrate_MidMonthStart(t *testing.T) {
	// Feb 2026 has 28 days: 15 days covered at 50/day.
	got, err := Prorate("2026-02", 14, 1400)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !almostEqual(got, 750) {
		t.Errorf("Prorate(2026-02, 14, 1400) = %v, want 750", got)
	}
}

func TestProrate_LastDay(t *testing.T) {
	got, err := Prorate("2026-04", 30, 300)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !almostEqual(got, 10) {
		t.Errorf("Prorate(2026-04, 30, 300) = %v, want 10", got)
	}
}

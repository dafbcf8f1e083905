package date

import "testing"

func TestParseClock(t *testing.T) {
	testCases := []struct {
		in      string
		want    Clock
		wantErr bool
	}{
		{"10:00:00", NewClock(10, 0, 0), false},
		{"23:59:59", NewClock(23, 59, 59), false},
		{"07:05", NewClock(7, 5, 0), false},
		{"bad-time", Clock{}, true},
		{"24:00:00", Clock{}, true},
		{"", Clock{}, true},
	}
	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseClock(tc.in)
			if (err != nil) != tc.wantErr {
				t.Fatalf("ParseClock(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
			}
			if got != tc.want {
				t.Errorf("ParseClock(%q) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestClock_String(t *testing.T) {
	if got := NewClock(9, 5, 3).String(); got != "09:05:03" {
		t.Errorf("String() = %q, want %q", got, "09:05:03")
	}
}

func TestClock_Compare(t *testing.T) {
	a, b := MustParseClock("09:00:00"), MustParseClock("09:00:01")
	if a.Compare(b) != -1 || b.Compare(a) != 1 || a.Compare(a) != 0 {
		t.Errorf("Compare is not a total order on %v and %v", a, b)
	}
}

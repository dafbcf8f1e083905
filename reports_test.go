package fintrack

import (
	"testing"
	"time"

	"github.com/etnz/fintrack/date"
	"github.com/google/go-cmp/cmp"
)

func TestReport_Range(t *testing.T) {
	testCases := []struct {
		name   string
		report Report
		today  date.Date
		want   date.Range
	}{
		{"month to date", MonthToDate, date.New(2024, time.March, 17), date.Range{From: date.New(2024, time.March, 1), To: date.New(2024, time.March, 17)}},
		{"month to date on the first", MonthToDate, date.New(2024, time.March, 1), date.Range{From: date.New(2024, time.March, 1), To: date.New(2024, time.March, 1)}},
		{"previous month", PreviousMonth, date.New(2024, time.March, 31), date.Range{From: date.New(2024, time.February, 1), To: date.New(2024, time.February, 29)}},
		{"previous month in january", PreviousMonth, date.New(2024, time.January, 15), date.Range{From: date.New(2023, time.December, 1), To: date.New(2023, time.December, 31)}},
		{"year to date", YearToDate, date.New(2024, time.March, 17), date.Range{From: date.New(2024, time.January, 1), To: date.New(2024, time.March, 17)}},
		{"previous year", PreviousYear, date.New(2024, time.January, 1), date.Range{From: date.New(2023, time.January, 1), To: date.New(2023, time.December, 31)}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.report.Range(tc.today); got != tc.want {
				t.Errorf("%v.Range(%v) = %v, want %v", tc.report, tc.today, got, tc.want)
			}
		})
	}
}

func TestParseReport(t *testing.T) {
	for _, r := range Reports {
		got, err := ParseReport(r.String())
		if err != nil || got != r {
			t.Errorf("ParseReport(%q) = %v, %v want %v", r.String(), got, err, r)
		}
	}
	short := map[string]Report{"mtd": MonthToDate, "PM": PreviousMonth, " ytd ": YearToDate, "py": PreviousYear}
	for in, want := range short {
		if got, err := ParseReport(in); err != nil || got != want {
			t.Errorf("ParseReport(%q) = %v, %v want %v", in, got, err, want)
		}
	}
	if _, err := ParseReport("weekly"); err == nil {
		t.Error("ParseReport(\"weekly\") expected an error")
	}
}

func TestLedger_Run(t *testing.T) {
	ledger := newTestLedger(
		"2023-12-31|23:00:00|New year eve|Club|-80",
		coffeeLine,
		paycheckLine,
		"2024-02-01|09:00:00|Future|Shop|-1",
	)
	today := date.New(2024, time.January, 10)

	testCases := []struct {
		report Report
		want   []string
	}{
		{MonthToDate, []string{"Paycheck", "Coffee"}},
		{PreviousMonth, []string{"New year eve"}},
		{YearToDate, []string{"Paycheck", "Coffee"}},
		{PreviousYear, []string{"New year eve"}},
	}
	for _, tc := range testCases {
		t.Run(tc.report.String(), func(t *testing.T) {
			got := descriptions(ledger.Run(tc.report, today).Transactions)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("Run(%v) mismatch (-want +got):\n%s", tc.report, diff)
			}
		})
	}
}

package fintrack

import (
	"fmt"
	"strings"

	"github.com/etnz/fintrack/date"
)

// Report is one of the canned date range reports.
type Report int

const (
	MonthToDate Report = iota
	PreviousMonth
	YearToDate
	PreviousYear
)

// Reports lists every canned report, in menu order.
var Reports = []Report{MonthToDate, PreviousMonth, YearToDate, PreviousYear}

func (r Report) String() string {
	switch r {
	case MonthToDate:
		return "month-to-date"
	case PreviousMonth:
		return "previous-month"
	case YearToDate:
		return "year-to-date"
	case PreviousYear:
		return "previous-year"
	default:
		return fmt.Sprintf("report(%d)", int(r))
	}
}

// Title returns a human readable name of the report.
func (r Report) Title() string {
	switch r {
	case MonthToDate:
		return "Month to Date"
	case PreviousMonth:
		return "Previous Month"
	case YearToDate:
		return "Year to Date"
	case PreviousYear:
		return "Previous Year"
	default:
		return r.String()
	}
}

// Range returns the dates covered by the report when run on today.
func (r Report) Range(today date.Date) date.Range {
	switch r {
	case MonthToDate:
		return date.Monthly.ToDate(today)
	case PreviousMonth:
		return date.Monthly.Previous(today)
	case YearToDate:
		return date.Yearly.ToDate(today)
	case PreviousYear:
		return date.Yearly.Previous(today)
	default:
		panic(fmt.Sprintf("unknown report %d", int(r)))
	}
}

// ParseReport parses a report name or its short form (mtd, pm, ytd, py).
func ParseReport(s string) (Report, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "mtd", "month-to-date":
		return MonthToDate, nil
	case "pm", "previous-month":
		return PreviousMonth, nil
	case "ytd", "year-to-date":
		return YearToDate, nil
	case "py", "previous-year":
		return PreviousYear, nil
	default:
		return 0, fmt.Errorf("unknown report %q, want one of mtd, pm, ytd, py", s)
	}
}

// Run returns the transactions of the report when run on today.
func (l *Ledger) Run(r Report, today date.Date) Result {
	return l.Query(Between(r.Range(today)))
}

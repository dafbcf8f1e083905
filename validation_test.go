package fintrack

import (
	"errors"
	"testing"
	"time"

	"github.com/etnz/fintrack/date"
)

func TestEntry_Validate(t *testing.T) {
	valid := Entry{
		Date:        date.New(2024, time.January, 15),
		Time:        date.NewClock(12, 0, 0),
		Description: "Lunch",
		Vendor:      "Diner",
		Amount:      dec("12.50"),
	}

	testCases := []struct {
		name  string
		edit  func(*Entry)
		wants []error
	}{
		{"valid", func(*Entry) {}, nil},
		{"empty description", func(e *Entry) { e.Description = "" }, []error{ErrEmptyDescription}},
		{"blank vendor", func(e *Entry) { e.Vendor = " \t" }, []error{ErrEmptyVendor}},
		{"zero amount", func(e *Entry) { e.Amount = dec("0") }, []error{ErrNonPositiveAmount}},
		{"negative amount", func(e *Entry) { e.Amount = dec("-3") }, []error{ErrNonPositiveAmount}},
		{"delimiter", func(e *Entry) { e.Vendor = "A|B" }, []error{ErrReservedCharacter}},
		{"too old", func(e *Entry) { e.Date = date.New(1899, time.December, 31) }, []error{ErrDateOutOfRange}},
		{"too far", func(e *Entry) { e.Date = testToday.AddMonth(12).Add(1) }, []error{ErrDateOutOfRange}},
		{"next year is fine", func(e *Entry) { e.Date = testToday.AddMonth(12) }, nil},
		{"everything wrong", func(e *Entry) {
			*e = Entry{Date: date.New(1800, time.January, 1)}
		}, []error{ErrEmptyDescription, ErrEmptyVendor, ErrNonPositiveAmount, ErrDateOutOfRange}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			e := valid
			tc.edit(&e)
			err := e.Validate(testToday)
			if len(tc.wants) == 0 {
				if err != nil {
					t.Errorf("Validate() unexpected error: %v", err)
				}
				return
			}
			for _, want := range tc.wants {
				if !errors.Is(err, want) {
					t.Errorf("Validate() error = %v, want %v", err, want)
				}
			}
		})
	}
}

func TestCheckText(t *testing.T) {
	testCases := []struct {
		in   string
		want error
	}{
		{"Coffee", nil},
		{"", ErrEmptyDescription},
		{"   ", ErrEmptyDescription},
		{"a|b", ErrReservedCharacter},
		{"two\nlines", ErrReservedCharacter},
	}
	for _, tc := range testCases {
		err := CheckDescription(tc.in)
		if tc.want == nil {
			if err != nil {
				t.Errorf("CheckDescription(%q) unexpected error: %v", tc.in, err)
			}
			continue
		}
		if !errors.Is(err, tc.want) {
			t.Errorf("CheckDescription(%q) = %v, want %v", tc.in, err, tc.want)
		}
	}
	if err := CheckVendor(""); !errors.Is(err, ErrEmptyVendor) {
		t.Errorf("CheckVendor(\"\") = %v, want %v", err, ErrEmptyVendor)
	}
}

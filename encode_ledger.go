package fintrack

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/etnz/fintrack/date"
	"github.com/shopspring/decimal"
)

// Delimiter separates the fields of a record line. It is not escaped: a
// description or vendor containing it cannot be read back.
const Delimiter = "|"

// a record is date|time|description|vendor|amount
const fieldCount = 5

// ErrFieldCount is returned for a record line without exactly five fields.
var ErrFieldCount = errors.New("wrong number of fields")

// ParseLine parses a record line "date|time|description|vendor|amount".
func ParseLine(line string) (Transaction, error) {
	line = strings.TrimRight(line, "\r\n")
	fields := strings.Split(line, Delimiter)
	if len(fields) != fieldCount {
		return Transaction{}, fmt.Errorf("%w: got %d want %d in %q", ErrFieldCount, len(fields), fieldCount, line)
	}

	day, err := date.Parse(fields[0])
	if err != nil {
		return Transaction{}, err
	}
	at, err := date.ParseClock(fields[1])
	if err != nil {
		return Transaction{}, err
	}
	amount, err := ParseAmount(fields[4])
	if err != nil {
		return Transaction{}, err
	}

	return Transaction{
		Date:        day,
		Time:        at,
		Description: fields[2],
		Vendor:      fields[3],
		Amount:      amount,
	}, nil
}

// FormatLine returns the record line of tx, without line terminator.
func FormatLine(tx Transaction) string {
	return strings.Join([]string{
		tx.Date.String(),
		tx.Time.String(),
		tx.Description,
		tx.Vendor,
		FormatAmount(tx.Amount),
	}, Delimiter)
}

// ParseAmount parses a signed plain decimal like "-4.50", keeping its scale.
func ParseAmount(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	return d, nil
}

// FormatAmount formats d with as many fractional digits as it was parsed
// with: "-4.50" stays "-4.50" and "10" stays "10".
func FormatAmount(d decimal.Decimal) string {
	if exp := d.Exponent(); exp < 0 {
		return d.StringFixed(-exp)
	}
	return d.String()
}

// EncodeTransaction writes the record line of tx to w.
func EncodeTransaction(w io.Writer, tx Transaction) error {
	_, err := io.WriteString(w, FormatLine(tx)+"\n")
	return err
}

// DecodeLedger reads every record line from r into a new Ledger.
//
// Corrupt records are skipped (see Ledger.Load) whatever their length, only
// read failures are returned as errors.
func DecodeLedger(r io.Reader, opts ...Option) (*Ledger, LoadStats, error) {
	ledger := NewLedger(opts...)
	reader := bufio.NewReader(r)
	var readErr error
	lines := func(yield func(string) bool) {
		for {
			line, err := reader.ReadString('\n')
			if line != "" && !yield(line) {
				return
			}
			if err != nil {
				if err != io.EOF {
					readErr = err
				}
				return
			}
		}
	}
	stats := ledger.Load(lines)
	if readErr != nil {
		return ledger, stats, fmt.Errorf("could not read ledger: %w", readErr)
	}
	return ledger, stats, nil
}

// FileJournal appends record lines to a file, creating it if needed.
type FileJournal struct {
	Path string
}

// Append writes tx as a new line at the end of the file.
func (j FileJournal) Append(tx Transaction) error {
	// Open the file in append mode, creating it if it doesn't exist.
	f, err := os.OpenFile(j.Path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("could not open ledger file %q: %w", j.Path, err)
	}
	if err := EncodeTransaction(f, tx); err != nil {
		f.Close()
		return fmt.Errorf("could not write to ledger file %q: %w", j.Path, err)
	}
	return f.Close()
}

// OpenLedger decodes the ledger file at path and journals new transactions
// back into it.
//
// A missing file is reported with an error matching fs.ErrNotExist together
// with an empty, usable ledger: the file is created on the first Add.
func OpenLedger(path string, opts ...Option) (*Ledger, LoadStats, error) {
	opts = append([]Option{WithJournal(FileJournal{Path: path})}, opts...)
	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return NewLedger(opts...), LoadStats{}, fmt.Errorf("ledger file %q: %w", path, err)
	}
	if err != nil {
		return nil, LoadStats{}, fmt.Errorf("could not open ledger file %q: %w", path, err)
	}
	defer f.Close()
	return DecodeLedger(f, opts...)
}

package date

// Period is a standard calendar period.
type Period int

const (
	Monthly Period = iota
	Yearly
)

func (p Period) String() string {
	switch p {
	case Monthly:
		return "monthly"
	case Yearly:
		return "yearly"
	default:
		return "periodic"
	}
}

// Range returns the whole period containing the date d.
func (p Period) Range(d Date) Range {
	return Range{From: d.StartOf(p), To: d.EndOf(p)}
}

// ToDate returns the range from the start of the period containing d, up to d.
func (p Period) ToDate(d Date) Range {
	return Range{From: d.StartOf(p), To: d}
}

// Previous returns the whole period right before the one containing d.
func (p Period) Previous(d Date) Range {
	return p.Range(d.StartOf(p).Add(-1))
}

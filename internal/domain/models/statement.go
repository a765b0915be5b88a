package models

// Statement represents one reporting period of a company's income statement
// as returned by the upstream provider.
//
// The provider response is an open key/value object: besides the three fields
// this service filters and sorts on, each record carries dozens of
// provider-specific fields (grossProfit, eps, operatingExpenses, ...). Those
// are passed through to API clients unmodified, which is why the model is a
// map rather than a fixed struct.
//
// JSON numbers decode as float64, so the accessors below return float64 even
// for the year-valued date field.
type Statement map[string]any

// Date returns the reporting period identifier and whether it is present
// and numeric.
func (s Statement) Date() (float64, bool) {
	return s.number("date")
}

// Revenue returns the reported revenue and whether it is present and numeric.
func (s Statement) Revenue() (float64, bool) {
	return s.number("revenue")
}

// NetIncome returns the reported net income and whether it is present and numeric.
func (s Statement) NetIncome() (float64, bool) {
	return s.number("netIncome")
}

func (s Statement) number(key string) (float64, bool) {
	v, ok := s[key]
	if !ok {
		return 0, false
	}
	f, ok := v.(float64)
	return f, ok
}

// SortKey selects the statement field used to order results, always descending.
type SortKey string

const (
	SortByDate      SortKey = "date"
	SortByRevenue   SortKey = "revenue"
	SortByNetIncome SortKey = "netIncome"
)

// DefaultSortKey is applied when the caller does not specify sortBy.
const DefaultSortKey = SortByDate

// Field returns the accessor for the statement field this key sorts on,
// or false for unrecognized keys (which leave the order untouched).
func (k SortKey) Field() (func(Statement) (float64, bool), bool) {
	switch k {
	case SortByDate:
		return Statement.Date, true
	case SortByRevenue:
		return Statement.Revenue, true
	case SortByNetIncome:
		return Statement.NetIncome, true
	default:
		return nil, false
	}
}

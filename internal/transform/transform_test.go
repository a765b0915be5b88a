package transform

import (
	"reflect"
	"testing"

	"github.com/nishanthjadav/financial-backend/internal/domain/models"
)

func stmt(date, revenue, netIncome float64) models.Statement {
	return models.Statement{
		"date":      date,
		"revenue":   revenue,
		"netIncome": netIncome,
		"symbol":    "AAPL", // pass-through field, never inspected
	}
}

func intPtr(v int) *int           { return &v }
func floatPtr(v float64) *float64 { return &v }

func dates(t *testing.T, recs []models.Statement) []float64 {
	t.Helper()
	out := make([]float64, 0, len(recs))
	for _, r := range recs {
		d, ok := r.Date()
		if !ok {
			t.Fatalf("record without date: %+v", r)
		}
		out = append(out, d)
	}
	return out
}

func TestApply_Filtering(t *testing.T) {
	records := []models.Statement{
		stmt(2023, 100, 10),
		stmt(2022, 200, 20),
		stmt(2021, 300, -30),
	}

	cases := []struct {
		name string
		c    Criteria
		want []float64 // expected dates, provider order (sortBy unrecognized)
	}{
		{name: "no bounds keeps everything", c: Criteria{}, want: []float64{2023, 2022, 2021}},
		{name: "startDate inclusive at boundary", c: Criteria{StartDate: intPtr(2022)}, want: []float64{2023, 2022}},
		{name: "startDate above all records excludes everything", c: Criteria{StartDate: intPtr(2024)}, want: []float64{}},
		{name: "endDate inclusive at boundary", c: Criteria{EndDate: intPtr(2022)}, want: []float64{2022, 2021}},
		{name: "minRevenue inclusive", c: Criteria{MinRevenue: floatPtr(200)}, want: []float64{2022, 2021}},
		{name: "maxRevenue inclusive", c: Criteria{MaxRevenue: floatPtr(200)}, want: []float64{2023, 2022}},
		{name: "minNetIncome inclusive", c: Criteria{MinNetIncome: floatPtr(10)}, want: []float64{2023, 2022}},
		{name: "maxNetIncome inclusive", c: Criteria{MaxNetIncome: floatPtr(10)}, want: []float64{2023, 2021}},
		{
			name: "bounds are conjunctive",
			c:    Criteria{StartDate: intPtr(2022), MaxRevenue: floatPtr(150)},
			want: []float64{2023},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Apply(records, tc.c, "unrecognized")
			if got == nil {
				t.Fatalf("Apply returned nil slice")
			}
			if !reflect.DeepEqual(dates(t, got), tc.want) {
				t.Fatalf("got dates %v, want %v", dates(t, got), tc.want)
			}
		})
	}
}

// A bound explicitly set to zero must behave exactly like an absent bound.
// This mirrors the original service and is intentional; see Criteria.
func TestApply_ZeroBoundIsNotEnforced(t *testing.T) {
	records := []models.Statement{
		stmt(2023, 100, 10),
		stmt(2022, 200, -20),
	}

	cases := []struct {
		name string
		c    Criteria
	}{
		{name: "minRevenue zero", c: Criteria{MinRevenue: floatPtr(0)}},
		{name: "maxRevenue zero", c: Criteria{MaxRevenue: floatPtr(0)}},
		{name: "minNetIncome zero keeps negative income", c: Criteria{MinNetIncome: floatPtr(0)}},
		{name: "startDate zero", c: Criteria{StartDate: intPtr(0)}},
		{name: "endDate zero", c: Criteria{EndDate: intPtr(0)}},
	}

	want := Apply(records, Criteria{}, models.SortByDate)
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Apply(records, tc.c, models.SortByDate)
			if !reflect.DeepEqual(got, want) {
				t.Fatalf("zero bound changed the result: got %v, want %v", got, want)
			}
		})
	}
}

func TestApply_Sorting(t *testing.T) {
	records := []models.Statement{
		stmt(2021, 300, 15),
		stmt(2023, 100, 10),
		stmt(2022, 200, 20),
	}

	cases := []struct {
		name   string
		sortBy models.SortKey
		want   []float64 // expected dates in result order
	}{
		{name: "by date descending", sortBy: models.SortByDate, want: []float64{2023, 2022, 2021}},
		{name: "by revenue descending", sortBy: models.SortByRevenue, want: []float64{2021, 2022, 2023}},
		{name: "by netIncome descending", sortBy: models.SortByNetIncome, want: []float64{2022, 2021, 2023}},
		{name: "unrecognized key keeps provider order", sortBy: "marketCap", want: []float64{2021, 2023, 2022}},
		{name: "empty key keeps provider order", sortBy: "", want: []float64{2021, 2023, 2022}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Apply(records, Criteria{}, tc.sortBy)
			if !reflect.DeepEqual(dates(t, got), tc.want) {
				t.Fatalf("got order %v, want %v", dates(t, got), tc.want)
			}
		})
	}
}

// Ties on the sort field must preserve the provider's relative order.
func TestApply_StableSortOnTies(t *testing.T) {
	first := stmt(2023, 500, 1)
	second := stmt(2022, 500, 2)
	third := stmt(2021, 500, 3)

	got := Apply([]models.Statement{first, second, third}, Criteria{}, models.SortByRevenue)
	want := []float64{2023, 2022, 2021}
	if !reflect.DeepEqual(dates(t, got), want) {
		t.Fatalf("ties reordered: got %v, want %v", dates(t, got), want)
	}
}

func TestApply_Idempotent(t *testing.T) {
	records := []models.Statement{
		stmt(2021, 300, 15),
		stmt(2023, 100, 10),
		stmt(2022, 200, 20),
	}
	c := Criteria{MinRevenue: floatPtr(150)}

	once := Apply(records, c, models.SortByRevenue)
	twice := Apply(once, c, models.SortByRevenue)
	if !reflect.DeepEqual(once, twice) {
		t.Fatalf("not idempotent: once=%v twice=%v", once, twice)
	}
}

// Malformed upstream records (missing or non-numeric core fields) are dropped
// instead of failing the whole request.
func TestApply_DropsMalformedRecords(t *testing.T) {
	records := []models.Statement{
		stmt(2023, 100, 10),
		{"date": 2022.0, "revenue": 200.0}, // no netIncome
		{"date": "2021-09-25", "revenue": 300.0, "netIncome": 30.0}, // non-numeric date
	}

	got := Apply(records, Criteria{}, models.SortByDate)
	if len(got) != 1 {
		t.Fatalf("expected 1 well-formed record, got %d", len(got))
	}
	if d, _ := got[0].Date(); d != 2023 {
		t.Fatalf("kept wrong record: %+v", got[0])
	}
}

func TestApply_DoesNotMutateInput(t *testing.T) {
	records := []models.Statement{
		stmt(2021, 300, 15),
		stmt(2023, 100, 10),
	}
	snapshot := []models.Statement{records[0], records[1]}

	_ = Apply(records, Criteria{MinRevenue: floatPtr(200)}, models.SortByDate)

	if !reflect.DeepEqual(records, snapshot) {
		t.Fatalf("input slice mutated: %v", records)
	}
}

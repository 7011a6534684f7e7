package blocks

import (
	"testing"

	"github.com/shopspring/decimal"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestReconcile(t *testing.T) {
	cases := []struct {
		name     string
		computed string
		reported string
		matches  bool
	}{
		{"exact", "100.00", "100.00", true},
		{"within tolerance", "100.00", "100.005", true},
		{"at tolerance", "100.00", "100.01", true},
		{"beyond tolerance", "100.00", "100.02", false},
		{"large absolute gap", "1000000.00", "1000000.02", false},
		{"negative within", "-50.00", "-50.004", true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := Reconcile(dec(tc.computed), null(dec(tc.reported)))
			if rec.Matches != tc.matches {
				t.Errorf("Reconcile(%s, %s).Matches = %v, want %v",
					tc.computed, tc.reported, rec.Matches, tc.matches)
			}
		})
	}
}

func TestReconcileNoReportedTotal(t *testing.T) {
	rec := Reconcile(dec("123.45"), decimal.NullDecimal{})
	if !rec.Matches {
		t.Error("a block without a declared total must match by definition")
	}
	if rec.ReportedTotal.Valid {
		t.Error("reported total must stay null when the sheet has none")
	}
	if rec.ComputedTotal.String() != "123.45" {
		t.Errorf("computed total = %s, want 123.45", rec.ComputedTotal)
	}
}

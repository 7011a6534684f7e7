package blocks

import "github.com/shopspring/decimal"

// tolerance is the absolute difference allowed between the computed sum
// and the human-authored total. It stays absolute no matter the
// magnitude of the figures.
var tolerance = decimal.New(1, -2)

// Reconciliation compares the sum of a block's line items against the
// total the sheet declares for it. A mismatch is a reported business
// anomaly, never an engine error.
type Reconciliation struct {
	ComputedTotal decimal.Decimal     `json:"computed_total"`
	ReportedTotal decimal.NullDecimal `json:"reported_total"`
	Matches       bool                `json:"matches"`
}

// Reconcile builds the result for a block. With no reported total there
// is nothing to check and the block matches by definition.
func Reconcile(computed decimal.Decimal, reported decimal.NullDecimal) Reconciliation {
	rec := Reconciliation{ComputedTotal: computed, ReportedTotal: reported, Matches: true}
	if reported.Valid {
		rec.Matches = reported.Decimal.Sub(computed).Abs().LessThanOrEqual(tolerance)
	}
	return rec
}

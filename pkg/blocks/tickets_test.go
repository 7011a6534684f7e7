package blocks

import (
	"testing"

	"github.com/olzhass/smena/pkg/grid"
)

func TestTicketSales(t *testing.T) {
	g := grid.New([][]string{
		{"Входные билеты"},
		{"Цена", "Кол-во", "Сумма"},
		{"250", "10", "2500"},
		{"500", "4", "2000"},
		{"Итого", "14", "4500"},
	})

	rows, rec := New(nil).TicketSales(g)
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d: %+v", len(rows), rows)
	}
	if rows[0].PriceLabel != "250" || rows[0].Quantity != 10 || rows[0].Amount.String() != "2500" {
		t.Errorf("row 0 = %+v", rows[0])
	}
	if !rows[0].PriceValue.Valid || rows[0].PriceValue.Decimal.String() != "250" {
		t.Errorf("row 0 price value = %+v, want 250", rows[0].PriceValue)
	}
	total := rows[2]
	if !total.IsTotal || total.Quantity != 14 || total.Amount.String() != "4500" {
		t.Errorf("total row = %+v", total)
	}
	if total.PriceValue.Valid {
		t.Error("total row must not carry a price value")
	}
	if !rec.Matches {
		t.Errorf("reconciliation = %+v, want match", rec)
	}
	if rec.ComputedTotal.String() != "4500" {
		t.Errorf("computed total = %s, want 4500", rec.ComputedTotal)
	}
}

func TestTicketSalesQuantityMismatch(t *testing.T) {
	// Amounts agree but the declared quantity does not: still a mismatch.
	g := grid.New([][]string{
		{"Входные билеты"},
		{"Цена", "Кол-во", "Сумма"},
		{"250", "10", "2500"},
		{"Итого", "11", "2500"},
	})

	_, rec := New(nil).TicketSales(g)
	if rec.Matches {
		t.Error("quantity mismatch must fail reconciliation")
	}
}

func TestTicketSalesNoHeaderRow(t *testing.T) {
	g := grid.New([][]string{
		{"Входные билеты"},
		{"250", "10", "2500"},
		{"Итого", "10", "2500"},
	})

	rows, rec := New(nil).TicketSales(g)
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d: %+v", len(rows), rows)
	}
	if !rec.Matches {
		t.Errorf("reconciliation = %+v, want match", rec)
	}
}

func TestTicketSalesMissingAnchor(t *testing.T) {
	g := grid.New([][]string{{"Доходы"}})
	rows, rec := New(nil).TicketSales(g)
	if len(rows) != 0 {
		t.Errorf("expected no rows, got %+v", rows)
	}
	if !rec.Matches || rec.ReportedTotal.Valid {
		t.Errorf("empty block reconciliation = %+v", rec)
	}
}

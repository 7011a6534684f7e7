package blocks

import (
	"strconv"

	"github.com/shopspring/decimal"
)

// Record types for the nine blocks. Slices keep source-row order: the
// order of appearance in the sheet defines display order everywhere
// downstream.

// IncomeRow is one line of the «Доходы» block.
type IncomeRow struct {
	Category string          `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
	IsTotal  bool            `json:"is_total"`
}

// TicketRow is one line of the «Входные билеты» block. PriceValue is
// null on the total row, whose label is the word «Итого» rather than a
// price.
type TicketRow struct {
	PriceLabel string              `json:"price_label"`
	PriceValue decimal.NullDecimal `json:"price_value"`
	Quantity   int                 `json:"quantity"`
	Amount     decimal.Decimal     `json:"amount"`
	IsTotal    bool                `json:"is_total"`
}

// PaymentRow is one line of the payment types block. The «ИТОГО КАССА»
// subtotal is flagged separately and does not close the block.
type PaymentRow struct {
	PaymentType    string          `json:"payment_type"`
	Amount         decimal.Decimal `json:"amount"`
	IsTotal        bool            `json:"is_total"`
	IsCashSubtotal bool            `json:"is_cash_subtotal"`
}

// StaffRow is one line of the «Статистика персонала» block.
type StaffRow struct {
	RoleName   string `json:"role_name"`
	StaffCount int    `json:"staff_count"`
}

// ExpenseRow is one line of the «Расходы» block.
type ExpenseRow struct {
	ExpenseItem string          `json:"expense_item"`
	Amount      decimal.Decimal `json:"amount"`
	IsTotal     bool            `json:"is_total"`
}

// CashRow is one line of the «Инкассация» block. Quantity and rate are
// null on the total row. When the sheet leaves the amount blank it is
// recomputed as quantity times rate.
type CashRow struct {
	CurrencyLabel string              `json:"currency_label"`
	Quantity      decimal.NullDecimal `json:"quantity"`
	ExchangeRate  decimal.NullDecimal `json:"exchange_rate"`
	Amount        decimal.Decimal     `json:"amount"`
	IsTotal       bool                `json:"is_total"`
}

// DebtRow is one line of the staff debts block.
type DebtRow struct {
	DebtType string          `json:"debt_type"`
	Amount   decimal.Decimal `json:"amount"`
	IsTotal  bool            `json:"is_total"`
}

// NoteRow is one line of either notes column. Totals carry the amount
// written after the colon in the cell text.
type NoteRow struct {
	Text    string              `json:"text"`
	IsTotal bool                `json:"is_total"`
	Amount  decimal.NullDecimal `json:"amount"`
}

// NoteEntries holds the two parallel note columns («безнал» on the left,
// «нал» on the right) plus whatever trailing lines did not classify.
type NoteEntries struct {
	NoCash []NoteRow `json:"no_cash"`
	Cash   []NoteRow `json:"cash"`
	Extra  []string  `json:"extra"`
}

// BalanceRow is one line of the closing balance block.
type BalanceRow struct {
	PaymentType   string          `json:"payment_type"`
	IncomeAmount  decimal.Decimal `json:"income_amount"`
	ExpenseAmount decimal.Decimal `json:"expense_amount"`
	NetProfit     decimal.Decimal `json:"net_profit"`
}

// Fields implementations feed the generic CSV writer.

func (r IncomeRow) Fields() []string {
	return []string{r.Category, r.Amount.StringFixed(2)}
}

func (r TicketRow) Fields() []string {
	price := ""
	if r.PriceValue.Valid {
		price = r.PriceValue.Decimal.StringFixed(2)
	}
	return []string{r.PriceLabel, price, strconv.Itoa(r.Quantity), r.Amount.StringFixed(2)}
}

func (r PaymentRow) Fields() []string {
	return []string{r.PaymentType, r.Amount.StringFixed(2)}
}

func (r StaffRow) Fields() []string {
	return []string{r.RoleName, strconv.Itoa(r.StaffCount)}
}

func (r ExpenseRow) Fields() []string {
	return []string{r.ExpenseItem, r.Amount.StringFixed(2)}
}

func (r CashRow) Fields() []string {
	qty, rate := "", ""
	if r.Quantity.Valid {
		qty = r.Quantity.Decimal.StringFixed(2)
	}
	if r.ExchangeRate.Valid {
		rate = r.ExchangeRate.Decimal.StringFixed(2)
	}
	return []string{r.CurrencyLabel, qty, rate, r.Amount.StringFixed(2)}
}

func (r NoteRow) Fields() []string {
	amount := ""
	if r.Amount.Valid {
		amount = r.Amount.Decimal.StringFixed(2)
	}
	return []string{r.Text, amount}
}

func (r DebtRow) Fields() []string {
	return []string{r.DebtType, r.Amount.StringFixed(2)}
}

func (r BalanceRow) Fields() []string {
	return []string{r.PaymentType, r.IncomeAmount.StringFixed(2), r.ExpenseAmount.StringFixed(2), r.NetProfit.StringFixed(2)}
}

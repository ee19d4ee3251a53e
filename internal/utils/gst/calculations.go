package gst

import (
	"fmt"

	"github.com/Yeldokv/Finora/internal/apperrors"
	"github.com/shopspring/decimal"
)

var (
	two     = decimal.NewFromInt(2)
	hundred = decimal.NewFromInt(100)
)

// LineInput is one raw document line before totals are computed.
type LineInput struct {
	ItemID   string
	Quantity decimal.Decimal
	Rate     decimal.Decimal
	TaxRate  decimal.Decimal // Percentage in [0, 100]
}

// LineTotals holds the computed money values for a single line.
type LineTotals struct {
	Subtotal decimal.Decimal // quantity * rate, rounded to 2dp
	Tax      decimal.Decimal // subtotal * taxRate / 100, rounded to 2dp
	Amount   decimal.Decimal // subtotal + tax
}

// DocumentTotals holds the computed money values for a whole document.
// TotalAmount == Subtotal + CGST + SGST + IGST always holds exactly.
type DocumentTotals struct {
	Lines       []LineTotals
	Subtotal    decimal.Decimal
	CGST        decimal.Decimal
	SGST        decimal.Decimal
	IGST        decimal.Decimal // Inter-state supply is not modelled; always zero
	TotalTax    decimal.Decimal
	TotalAmount decimal.Decimal
}

// ComputeTotals turns a set of line inputs into per-line and document totals.
//
// Rounding contract: round half-up to 2 decimal places, applied per line to
// the line subtotal and the line tax. Aggregates are sums of the already
// rounded line values, so the document invariant holds without a second
// rounding pass. The total tax is split into equal CGST and SGST halves
// (intra-state supply); halving a 2dp value is exact in decimal arithmetic.
func ComputeTotals(lines []LineInput) (DocumentTotals, error) {
	if len(lines) == 0 {
		return DocumentTotals{}, fmt.Errorf("%w: document must have at least one line", apperrors.ErrValidation)
	}

	totals := DocumentTotals{
		Lines:    make([]LineTotals, 0, len(lines)),
		Subtotal: decimal.Zero,
		TotalTax: decimal.Zero,
		IGST:     decimal.Zero,
	}

	for i, line := range lines {
		if line.ItemID == "" {
			return DocumentTotals{}, fmt.Errorf("%w: line %d has no item reference", apperrors.ErrValidation, i+1)
		}
		if line.Quantity.LessThanOrEqual(decimal.Zero) {
			return DocumentTotals{}, fmt.Errorf("%w: line %d quantity must be positive", apperrors.ErrValidation, i+1)
		}
		if line.Rate.IsNegative() {
			return DocumentTotals{}, fmt.Errorf("%w: line %d rate must not be negative", apperrors.ErrValidation, i+1)
		}
		if line.TaxRate.IsNegative() || line.TaxRate.GreaterThan(hundred) {
			return DocumentTotals{}, fmt.Errorf("%w: line %d tax rate must be between 0 and 100", apperrors.ErrValidation, i+1)
		}

		lineSubtotal := line.Quantity.Mul(line.Rate).Round(2)
		lineTax := lineSubtotal.Mul(line.TaxRate).Div(hundred).Round(2)
		lineAmount := lineSubtotal.Add(lineTax)

		totals.Lines = append(totals.Lines, LineTotals{
			Subtotal: lineSubtotal,
			Tax:      lineTax,
			Amount:   lineAmount,
		})
		totals.Subtotal = totals.Subtotal.Add(lineSubtotal)
		totals.TotalTax = totals.TotalTax.Add(lineTax)
	}

	totals.CGST = totals.TotalTax.Div(two)
	totals.SGST = totals.TotalTax.Div(two)
	totals.TotalAmount = totals.Subtotal.Add(totals.TotalTax)

	return totals, nil
}

package gst_test

import (
	"testing"

	"github.com/Yeldokv/Finora/internal/apperrors"
	"github.com/Yeldokv/Finora/internal/utils/gst"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func line(itemID, qty, rate, taxRate string) gst.LineInput {
	return gst.LineInput{
		ItemID:   itemID,
		Quantity: dec(qty),
		Rate:     dec(rate),
		TaxRate:  dec(taxRate),
	}
}

func TestComputeTotals_SingleLine(t *testing.T) {
	totals, err := gst.ComputeTotals([]gst.LineInput{line("item-1", "2", "100", "18")})
	require.NoError(t, err)

	require.Len(t, totals.Lines, 1)
	assert.True(t, totals.Lines[0].Subtotal.Equal(dec("200")), "line subtotal = %s", totals.Lines[0].Subtotal)
	assert.True(t, totals.Lines[0].Tax.Equal(dec("36")), "line tax = %s", totals.Lines[0].Tax)
	assert.True(t, totals.Lines[0].Amount.Equal(dec("236")), "line amount = %s", totals.Lines[0].Amount)

	assert.True(t, totals.Subtotal.Equal(dec("200")))
	assert.True(t, totals.CGST.Equal(dec("18")))
	assert.True(t, totals.SGST.Equal(dec("18")))
	assert.True(t, totals.IGST.IsZero())
	assert.True(t, totals.TotalAmount.Equal(dec("236")))
}

func TestComputeTotals_MultiLine(t *testing.T) {
	totals, err := gst.ComputeTotals([]gst.LineInput{
		line("item-1", "2", "100", "18"),
		line("item-2", "1.5", "33.33", "12"),
		line("item-3", "10", "7.99", "0"),
	})
	require.NoError(t, err)

	// 2*100 = 200.00, 1.5*33.33 = 50.00 (49.995 rounds half-up), 10*7.99 = 79.90
	assert.True(t, totals.Subtotal.Equal(dec("329.90")), "subtotal = %s", totals.Subtotal)
	// tax: 36.00 + 6.00 + 0 = 42.00
	assert.True(t, totals.TotalTax.Equal(dec("42.00")), "total tax = %s", totals.TotalTax)
	assert.True(t, totals.TotalAmount.Equal(dec("371.90")), "total = %s", totals.TotalAmount)
}

// The document invariant must hold for any valid line composition, including
// odd-cent taxes where the CGST/SGST halves are not 2dp values themselves.
func TestComputeTotals_Invariants(t *testing.T) {
	cases := [][]gst.LineInput{
		{line("a", "1", "0.01", "18")},
		{line("a", "3", "9.99", "5"), line("b", "7", "14.50", "28")},
		{line("a", "0.5", "199.99", "12"), line("b", "2.25", "0.04", "18"), line("c", "1", "1", "100")},
		{line("a", "1", "0", "18")}, // zero-rate line is valid
	}

	for _, lines := range cases {
		totals, err := gst.ComputeTotals(lines)
		require.NoError(t, err)

		assert.True(t, totals.CGST.Equal(totals.SGST), "cgst %s != sgst %s", totals.CGST, totals.SGST)
		assert.True(t, totals.CGST.Equal(totals.TotalTax.Div(dec("2"))))
		sum := totals.Subtotal.Add(totals.CGST).Add(totals.SGST).Add(totals.IGST)
		assert.True(t, totals.TotalAmount.Equal(sum), "total %s != subtotal+cgst+sgst+igst %s", totals.TotalAmount, sum)

		lineSum := decimal.Zero
		for _, lt := range totals.Lines {
			assert.True(t, lt.Amount.Equal(lt.Subtotal.Add(lt.Tax)))
			lineSum = lineSum.Add(lt.Amount)
		}
		assert.True(t, totals.TotalAmount.Equal(lineSum))
	}
}

func TestComputeTotals_Validation(t *testing.T) {
	cases := map[string][]gst.LineInput{
		"empty line list":   {},
		"zero quantity":     {line("a", "0", "10", "18")},
		"negative quantity": {line("a", "-1", "10", "18")},
		"negative rate":     {line("a", "1", "-10", "18")},
		"tax rate over 100": {line("a", "1", "10", "101")},
		"negative tax rate": {line("a", "1", "10", "-1")},
		"missing item":      {{Quantity: dec("1"), Rate: dec("10"), TaxRate: dec("18")}},
	}

	for name, lines := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := gst.ComputeTotals(lines)
			require.Error(t, err)
			assert.ErrorIs(t, err, apperrors.ErrValidation)
		})
	}
}

func TestComputeTotals_RoundingPerLine(t *testing.T) {
	// 1.333 * 3 = 3.999 -> 4.00; tax 4.00 * 18% = 0.72
	totals, err := gst.ComputeTotals([]gst.LineInput{line("a", "3", "1.333", "18")})
	require.NoError(t, err)
	assert.True(t, totals.Subtotal.Equal(dec("4.00")), "subtotal = %s", totals.Subtotal)
	assert.True(t, totals.TotalTax.Equal(dec("0.72")), "tax = %s", totals.TotalTax)
	assert.True(t, totals.TotalAmount.Equal(dec("4.72")))
}

package renderer

import (
	"bytes"
	"io"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/etnz/marketsim"
	"github.com/shopspring/decimal"
)

// ConditionalBlock let you fully write a block and decide at the end to print it or not.
// If the block function returns true, the content is printed to w, otherwise it is discarded.
func ConditionalBlock(w io.Writer, block func(io.Writer) bool) {
	bw := &bytes.Buffer{}
	if block(bw) {
		io.Copy(w, bw)
	}
}

// formatMoney formats an amount in the given ISO currency, e.g. "$1,234.50".
func formatMoney(m marketsim.Money, currency string) string {
	return formatDecimal(m.Decimal(), currency)
}

func formatDecimal(d decimal.Decimal, currency string) string {
	// to get a never nil currency I need to call the Money constructor
	cur := money.New(0, currency).Currency()
	minor := d.Shift(int32(cur.Fraction)).Round(0)
	if minor.BigInt().IsInt64() {
		return cur.Formatter().Format(minor.IntPart())
	}
	return formatMinorDigits(cur.Formatter(), minor.Abs().String(), minor.IsNegative())
}

// formatMinorDigits is money.Formatter.Format for amounts that do not fit in an int64.
// digits is the absolute amount in minor units.
func formatMinorDigits(f *money.Formatter, digits string, negative bool) string {
	if len(digits) <= f.Fraction {
		digits = strings.Repeat("0", f.Fraction-len(digits)+1) + digits
	}
	if f.Thousand != "" {
		for i := len(digits) - f.Fraction - 3; i > 0; i -= 3 {
			digits = digits[:i] + f.Thousand + digits[i:]
		}
	}
	if f.Fraction > 0 {
		digits = digits[:len(digits)-f.Fraction] + f.Decimal + digits[len(digits)-f.Fraction:]
	}
	s := strings.Replace(f.Template, "1", digits, 1)
	s = strings.Replace(s, "$", f.Grapheme, 1)
	if negative {
		s = "-" + s
	}
	return s
}

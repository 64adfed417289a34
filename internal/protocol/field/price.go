package field

import (
	"math"
	"strconv"

	"github.com/danmuck/lsewire/internal/protocol/render"
	"github.com/shopspring/decimal"
)

// PriceMultiplier scales a price to its wire integer.
const PriceMultiplier = 100_000_000

// priceDigits is log10(PriceMultiplier).
const priceDigits = 8

// Price is a fixed-point decimal carried on the wire as value × 10^8.
type Price int64

// PriceFromFloat scales v by PriceMultiplier, rounding to the nearest unit.
func PriceFromFloat(v float64) Price {
	return Price(math.Round(v * PriceMultiplier))
}

// PriceFromDecimal converts d, truncating digits beyond the eighth decimal.
func PriceFromDecimal(d decimal.Decimal) Price {
	return Price(d.Shift(priceDigits).IntPart())
}

// ParsePrice scans a price literal such as "123.45".
func ParsePrice(s string) Price {
	var p Price
	p.Parse(s)
	return p
}

// Parse replaces p with the best-effort value of the literal in s.
//
// The integer part is scaled by PriceMultiplier. A fractional run after '.'
// contributes its first eight digits; further digits are dropped. A leading
// '-' applies to the whole literal, so "-1.5" is -1.5. Input with no leading
// integer literal yields zero.
func (p *Price) Parse(s string) {
	whole, n := scanSigned(s, 64)
	if n == 0 {
		*p = 0
		return
	}
	value := whole * PriceMultiplier
	rest := s[n:]
	if len(rest) > 0 && rest[0] == '.' {
		digits := rest[1 : 1+digitRun(rest[1:])]
		if len(digits) > priceDigits {
			digits = digits[:priceDigits]
		}
		if len(digits) > 0 {
			frac, _ := strconv.ParseInt(digits, 10, 64)
			for i := len(digits); i < priceDigits; i++ {
				frac *= 10
			}
			if s[0] == '-' {
				frac = -frac
			}
			value += frac
		}
	}
	*p = Price(value)
}

// SetFloat replaces p with the scaled value of v.
func (p *Price) SetFloat(v float64) {
	*p = PriceFromFloat(v)
}

// Raw returns the scaled wire integer.
func (p Price) Raw() int64 {
	return int64(p)
}

// Float64 converts back to a floating value.
func (p Price) Float64() float64 {
	quot := int64(p) / PriceMultiplier
	rem := int64(p) % PriceMultiplier
	return float64(quot) + float64(rem)/PriceMultiplier
}

// Decimal returns the exact decimal value.
func (p Price) Decimal() decimal.Decimal {
	return decimal.New(int64(p), -priceDigits)
}

// String renders the raw scaled integer.
func (p Price) String() string {
	return strconv.FormatInt(int64(p), 10)
}

// JSON renders `"10.50000000 (1050000000)"` when verbose and a bare JSON
// number otherwise.
func (p Price) JSON(verbose bool) string {
	if verbose {
		return render.Quote(strconv.FormatFloat(p.Float64(), 'f', priceDigits, 64) + " (" + p.String() + ")")
	}
	return strconv.FormatFloat(p.Float64(), 'f', -1, 64)
}

func (Price) IsNull() bool { return false }

func (Price) Size() int { return 8 }

func (p Price) Encode(b []byte) int {
	ByteOrder.PutUint64(b, uint64(p))
	return 8
}

func (p *Price) Decode(b []byte) int {
	*p = Price(ByteOrder.Uint64(b))
	return 8
}

package demand

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"brainrot-value-bot/internal/types"
)

// Info describes how a demand tier is displayed and weighted.
type Info struct {
	Mult  decimal.Decimal
	Glyph string
	Color int
}

var table = map[types.Demand]Info{
	types.DemandLow:    {Mult: decimal.NewFromFloat(0.85), Glyph: "🧊", Color: 0x3498db},
	types.DemandMedium: {Mult: decimal.NewFromInt(1), Glyph: "⚖️", Color: 0x95a5a6},
	types.DemandHigh:   {Mult: decimal.NewFromFloat(1.15), Glyph: "🔥", Color: 0xe74c3c},
	types.DemandInsane: {Mult: decimal.NewFromFloat(1.30), Glyph: "🚀", Color: 0x9b59b6},
}

// Lookup returns display/weight info for a tier. Unknown tiers fall back
// to medium so a corrupt record still renders.
func Lookup(d types.Demand) Info {
	if info, ok := table[d]; ok {
		return info
	}
	return table[types.DemandMedium]
}

// Parse validates an explicit tier name as supplied by an admin command.
func Parse(s string) (types.Demand, error) {
	d := types.Demand(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := table[d]; !ok {
		return "", fmt.Errorf("unknown demand tier %q", s)
	}
	return d, nil
}

// FromText infers a tier from free-form demand text. The checks run in a
// fixed order (low, high, insane) and each match overwrites the previous
// one, so text naming several tiers resolves to the last match in that
// order. Callers depend on this exact precedence.
func FromText(s string) types.Demand {
	s = strings.ToLower(s)
	d := types.DemandMedium
	if strings.Contains(s, "low") {
		d = types.DemandLow
	}
	if strings.Contains(s, "high") {
		d = types.DemandHigh
	}
	if strings.Contains(s, "insane") {
		d = types.DemandInsane
	}
	return d
}

// TradeValue is the demand-adjusted value an item contributes to a trade:
// round(value × multiplier), half away from zero.
func TradeValue(value int64, d types.Demand) int64 {
	return decimal.NewFromInt(value).Mul(Lookup(d).Mult).Round(0).IntPart()
}

package trade

import (
	"strings"

	"github.com/shopspring/decimal"

	"brainrot-value-bot/internal/demand"
	"brainrot-value-bot/internal/types"
)

// Verdict classifies a trade's fairness.
type Verdict string

const (
	VerdictWinning Verdict = "winning"
	VerdictLosing  Verdict = "losing"
	VerdictFair    Verdict = "fair"
)

// Report is the outcome of one trade evaluation. Totals use the
// demand-adjusted trade value of each resolved item; unresolved tokens
// contribute zero and are reported per side.
type Report struct {
	YourTotal       int64
	TheirTotal      int64
	YourUnresolved  []string
	TheirUnresolved []string
	Verdict         Verdict
}

// fairBand is the tolerance applied to the raw totals: a side has to
// exceed the other by more than 10% to win.
var fairBand = decimal.NewFromFloat(1.10)

// Evaluate resolves both sides against the canonical data and classifies
// the trade. Pure function of the data snapshot and the input strings.
func Evaluate(data map[string]types.ValuationRecord, yourRaw, theirRaw string) Report {
	r := Report{}
	r.YourTotal, r.YourUnresolved = sumSide(data, yourRaw)
	r.TheirTotal, r.TheirUnresolved = sumSide(data, theirRaw)
	r.Verdict = classify(r.YourTotal, r.TheirTotal)
	return r
}

func sumSide(data map[string]types.ValuationRecord, raw string) (int64, []string) {
	var total int64
	var unresolved []string
	for _, token := range strings.Split(raw, ",") {
		token = strings.ToLower(strings.TrimSpace(token))
		if token == "" {
			continue
		}
		rec, ok := data[token]
		if !ok {
			unresolved = append(unresolved, token)
			continue
		}
		total += demand.TradeValue(rec.Value, rec.Demand)
	}
	return total, unresolved
}

func classify(yours, theirs int64) Verdict {
	y := decimal.NewFromInt(yours)
	t := decimal.NewFromInt(theirs)
	switch {
	case y.GreaterThan(t.Mul(fairBand)):
		return VerdictWinning
	case t.GreaterThan(y.Mul(fairBand)):
		return VerdictLosing
	default:
		return VerdictFair
	}
}

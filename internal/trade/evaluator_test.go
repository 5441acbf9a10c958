package trade

import (
	"testing"

	"brainrot-value-bot/internal/types"
)

func testData() map[string]types.ValuationRecord {
	return map[string]types.ValuationRecord{
		"garama":   {Value: 2100, Demand: types.DemandHigh, Icon: "🧠", Source: types.SourceAuto},
		"tungtung": {Value: 500, Demand: types.DemandLow, Icon: "🧠", Source: types.SourceAuto},
		"sahur":    {Value: 1000, Demand: types.DemandMedium, Icon: "🧠", Source: types.SourceAuto},
	}
}

func TestEvaluateDemandAdjustedTotals(t *testing.T) {
	r := Evaluate(testData(), "garama", "unknownitem,garama")

	// garama trades at round(2100 × 1.15) = 2415.
	if r.YourTotal != 2415 {
		t.Errorf("expected your total 2415, got %d", r.YourTotal)
	}
	if r.TheirTotal != 2415 {
		t.Errorf("expected their total 2415, got %d", r.TheirTotal)
	}
	if r.Verdict != VerdictFair {
		t.Errorf("expected fair, got %s", r.Verdict)
	}
	if len(r.YourUnresolved) != 0 {
		t.Errorf("unexpected unresolved on your side: %v", r.YourUnresolved)
	}
	if len(r.TheirUnresolved) != 1 || r.TheirUnresolved[0] != "unknownitem" {
		t.Errorf("expected [unknownitem] unresolved on their side, got %v", r.TheirUnresolved)
	}
}

func TestEvaluateTokenNormalization(t *testing.T) {
	r := Evaluate(testData(), "  GARAMA , TungTung ", "sahur")
	// 2415 + round(500 × 0.85) = 2415 + 425 = 2840.
	if r.YourTotal != 2840 {
		t.Errorf("expected 2840, got %d", r.YourTotal)
	}
	if len(r.YourUnresolved) != 0 {
		t.Errorf("normalized tokens should resolve, got %v", r.YourUnresolved)
	}
}

func TestEvaluateFairBand(t *testing.T) {
	data := map[string]types.ValuationRecord{
		"a": {Value: 110, Demand: types.DemandMedium},
		"b": {Value: 100, Demand: types.DemandMedium},
		"c": {Value: 111, Demand: types.DemandMedium},
	}

	// Exactly 10% ahead is still fair.
	if r := Evaluate(data, "a", "b"); r.Verdict != VerdictFair {
		t.Errorf("110 vs 100 should be fair, got %s", r.Verdict)
	}
	// Beyond the band flips the verdict.
	if r := Evaluate(data, "c", "b"); r.Verdict != VerdictWinning {
		t.Errorf("111 vs 100 should be winning, got %s", r.Verdict)
	}
	if r := Evaluate(data, "b", "c"); r.Verdict != VerdictLosing {
		t.Errorf("100 vs 111 should be losing, got %s", r.Verdict)
	}
}

func TestEvaluateEmptySides(t *testing.T) {
	r := Evaluate(testData(), "", "garama")
	if r.YourTotal != 0 {
		t.Errorf("empty side should total 0, got %d", r.YourTotal)
	}
	if len(r.YourUnresolved) != 0 {
		t.Errorf("empty tokens are not unresolved items, got %v", r.YourUnresolved)
	}
	if r.Verdict != VerdictLosing {
		t.Errorf("0 vs 2415 should be losing, got %s", r.Verdict)
	}
}

func TestEvaluateBothEmptyIsFair(t *testing.T) {
	if r := Evaluate(testData(), "", ""); r.Verdict != VerdictFair {
		t.Errorf("0 vs 0 should be fair, got %s", r.Verdict)
	}
}

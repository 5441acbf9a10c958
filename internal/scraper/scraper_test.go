package scraper

import (
	"strings"
	"testing"
	"time"

	"brainrot-value-bot/internal/types"
)

const samplePage = `
<html><body>
  <div class="value-card">
    <span class="name"> Garama </span>
    <span class="value">2,100 gems</span>
    <span class="demand">High demand</span>
  </div>
  <div class="value-card">
    <span class="name">tungtung</span>
    <span class="value">500</span>
    <span class="demand">low</span>
  </div>
  <div class="value-card">
    <span class="name">freebie</span>
    <span class="value">free</span>
    <span class="demand">insane</span>
  </div>
  <div class="value-card">
    <span class="name"></span>
    <span class="value">100</span>
    <span class="demand">high</span>
  </div>
  <div class="value-card">
    <span class="name">zerod</span>
    <span class="value">0</span>
    <span class="demand">high</span>
  </div>
</body></html>`

func testScraper() *Scraper {
	return New("https://stealabrainrotvalue.com/", 10*time.Second, DefaultSelectors(), "🧠")
}

func TestParseTable(t *testing.T) {
	rows, err := ParseTable(strings.NewReader(samplePage), DefaultSelectors())
	if err != nil {
		t.Fatalf("ParseTable failed: %v", err)
	}
	if len(rows) != 5 {
		t.Fatalf("expected 5 rows, got %d", len(rows))
	}
	if rows[0].Name != "Garama" {
		t.Errorf("expected trimmed name Garama, got %q", rows[0].Name)
	}
	if rows[0].ValueText != "2,100 gems" {
		t.Errorf("unexpected value text %q", rows[0].ValueText)
	}
	if rows[1].DemandText != "low" {
		t.Errorf("unexpected demand text %q", rows[1].DemandText)
	}
}

func TestNormalize(t *testing.T) {
	rows, err := ParseTable(strings.NewReader(samplePage), DefaultSelectors())
	if err != nil {
		t.Fatalf("ParseTable failed: %v", err)
	}

	candidates := testScraper().Normalize(rows)

	// The free, nameless, and zero-priced rows are skipped.
	if len(candidates) != 2 {
		t.Fatalf("expected 2 candidates, got %d: %v", len(candidates), candidates)
	}

	garama, ok := candidates["garama"]
	if !ok {
		t.Fatal("expected garama candidate keyed by lowercased name")
	}
	if garama.Value != 2100 {
		t.Errorf("expected value 2100 after stripping non-digits, got %d", garama.Value)
	}
	if garama.Demand != types.DemandHigh {
		t.Errorf("expected high demand, got %s", garama.Demand)
	}
	if garama.Icon != "🧠" {
		t.Errorf("expected default icon, got %q", garama.Icon)
	}

	tung := candidates["tungtung"]
	if tung.Value != 500 || tung.Demand != types.DemandLow {
		t.Errorf("unexpected tungtung candidate: %+v", tung)
	}
}

func TestNormalizeDemandDefault(t *testing.T) {
	candidates := testScraper().Normalize([]types.RawItem{
		{Name: "mystery", ValueText: "750", DemandText: "no tier words here"},
	})
	if candidates["mystery"].Demand != types.DemandMedium {
		t.Errorf("expected medium default, got %s", candidates["mystery"].Demand)
	}
}

func TestNormalizeSkipsUnparseable(t *testing.T) {
	candidates := testScraper().Normalize([]types.RawItem{
		{Name: "a", ValueText: "", DemandText: "high"},
		{Name: "b", ValueText: "???", DemandText: "high"},
		{Name: "  ", ValueText: "100", DemandText: "high"},
	})
	if len(candidates) != 0 {
		t.Errorf("expected all rows skipped, got %v", candidates)
	}
}

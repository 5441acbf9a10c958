package scraper

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/gocolly/colly/v2"

	"brainrot-value-bot/internal/demand"
	"brainrot-value-bot/internal/interfaces"
	"brainrot-value-bot/internal/logger"
	"brainrot-value-bot/internal/types"
)

// Selectors defines CSS selectors for extracting one value card from the
// source page.
type Selectors struct {
	Card   string
	Name   string
	Value  string
	Demand string
}

// DefaultSelectors matches the public valuation site's card layout.
func DefaultSelectors() Selectors {
	return Selectors{
		Card:   ".value-card",
		Name:   ".name",
		Value:  ".value",
		Demand: ".demand",
	}
}

// Scraper fetches the valuation page and turns its rows into auto
// candidates.
type Scraper struct {
	sourceURL   string
	timeout     time.Duration
	selectors   Selectors
	defaultIcon string
}

var _ interfaces.Fetcher = (*Scraper)(nil)

// New creates a scraper for the given source page.
func New(sourceURL string, timeout time.Duration, selectors Selectors, defaultIcon string) *Scraper {
	if selectors == (Selectors{}) {
		selectors = DefaultSelectors()
	}
	return &Scraper{
		sourceURL:   sourceURL,
		timeout:     timeout,
		selectors:   selectors,
		defaultIcon: defaultIcon,
	}
}

// Fetch downloads the source page and extracts its raw value rows. Any
// network or parse failure is returned to the caller, which treats it as
// "no update this cycle".
func (s *Scraper) Fetch(ctx context.Context) ([]types.RawItem, error) {
	c := colly.NewCollector(
		colly.AllowedDomains(getDomain(s.sourceURL)),
		colly.MaxDepth(1),
		colly.Async(false),
	)
	c.SetRequestTimeout(s.timeout)

	// Set user agent to avoid being blocked
	c.OnRequest(func(r *colly.Request) {
		r.Headers.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36")
	})

	var (
		rows     []types.RawItem
		parseErr error
	)
	c.OnResponse(func(r *colly.Response) {
		rows, parseErr = ParseTable(bytes.NewReader(r.Body), s.selectors)
	})

	var fetchErr error
	c.OnError(func(r *colly.Response, err error) {
		logger.ErrorWithErr(ctx, "Scraping error", err, "url", r.Request.URL.String())
		fetchErr = err
	})

	if err := c.Visit(s.sourceURL); err != nil {
		return nil, fmt.Errorf("failed to visit %s: %w", s.sourceURL, err)
	}
	c.Wait()

	if fetchErr != nil {
		return nil, fmt.Errorf("fetch %s: %w", s.sourceURL, fetchErr)
	}
	if parseErr != nil {
		return nil, fmt.Errorf("parse %s: %w", s.sourceURL, parseErr)
	}

	logger.Info(ctx, "Source page scraped", "url", s.sourceURL, "rows", len(rows))
	return rows, nil
}

// ParseTable extracts raw value rows from an HTML document.
func ParseTable(r io.Reader, selectors Selectors) ([]types.RawItem, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, err
	}

	rows := []types.RawItem{}
	doc.Find(selectors.Card).Each(func(_ int, card *goquery.Selection) {
		rows = append(rows, types.RawItem{
			Name:       strings.TrimSpace(card.Find(selectors.Name).Text()),
			ValueText:  strings.TrimSpace(card.Find(selectors.Value).Text()),
			DemandText: strings.TrimSpace(card.Find(selectors.Demand).Text()),
		})
	})
	return rows, nil
}

var nonDigits = regexp.MustCompile(`\D`)

// Normalize converts raw rows into auto candidates, skipping rows with an
// empty name or a missing/zero/unparseable price. A zero price is never a
// valid auto value.
func (s *Scraper) Normalize(rows []types.RawItem) map[string]types.AutoCandidate {
	candidates := map[string]types.AutoCandidate{}
	for _, row := range rows {
		name := strings.ToLower(strings.TrimSpace(row.Name))
		if name == "" {
			continue
		}

		digits := nonDigits.ReplaceAllString(row.ValueText, "")
		if digits == "" {
			continue
		}
		value, err := strconv.ParseInt(digits, 10, 64)
		if err != nil || value == 0 {
			continue
		}

		candidates[name] = types.AutoCandidate{
			Value:  value,
			Demand: demand.FromText(row.DemandText),
			Icon:   s.defaultIcon,
		}
	}
	return candidates
}

func getDomain(urlStr string) string {
	u, err := url.Parse(urlStr)
	if err != nil {
		return ""
	}
	return u.Hostname()
}

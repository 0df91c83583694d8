// ABOUTME: Fallback enricher that scrapes the article page when the primary
// ABOUTME: enrichment source returns incomplete data

package scrape

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/danooki/2509-PlaceTimelineBackEnd/core/domain"
	"github.com/danooki/2509-PlaceTimelineBackEnd/core/interfaces"
)

const articleURLFormat = "https://en.wikipedia.org/wiki/%s"

// FallbackEnricher wraps a primary PlaceEnricher and fills missing thumbnail
// or extract data by scraping the article page directly.
type FallbackEnricher struct {
	primary interfaces.PlaceEnricher
	scraper *PageScraper
	logger  interfaces.Logger
}

// NewFallbackEnricher creates an enricher with scrape fallback.
func NewFallbackEnricher(primary interfaces.PlaceEnricher, scraper *PageScraper, logger interfaces.Logger) *FallbackEnricher {
	return &FallbackEnricher{
		primary: primary,
		scraper: scraper,
		logger:  logger,
	}
}

// Enrich tries the primary source first and scrapes the page for whatever
// fields are still missing. It only fails when both sources fail.
func (e *FallbackEnricher) Enrich(ctx context.Context, title string) (*domain.PlaceEnrichment, error) {
	var enrichment *domain.PlaceEnrichment
	var primaryErr error

	if e.primary != nil {
		enrichment, primaryErr = e.primary.Enrich(ctx, title)
	}
	if enrichment == nil {
		enrichment = &domain.PlaceEnrichment{}
	}

	if enrichment.Thumbnail != "" && enrichment.Extract != "" {
		return enrichment, nil
	}

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	pageURL := fmt.Sprintf(articleURLFormat, url.PathEscape(strings.ReplaceAll(title, " ", "_")))
	scraped := e.scraper.Scrape(pageURL)

	if enrichment.Thumbnail == "" {
		enrichment.Thumbnail = scraped.Thumbnail
	}
	if enrichment.Extract == "" {
		if scraped.LeadText != "" {
			enrichment.Extract = scraped.LeadText
		} else {
			enrichment.Extract = scraped.Description
		}
	}

	if enrichment.Thumbnail == "" && enrichment.Extract == "" && primaryErr != nil {
		return nil, primaryErr
	}

	if primaryErr != nil && e.logger != nil {
		e.logger.Debug("Primary enrichment failed, used scrape fallback", map[string]interface{}{
			"title": title,
			"error": primaryErr.Error(),
		})
	}

	return enrichment, nil
}

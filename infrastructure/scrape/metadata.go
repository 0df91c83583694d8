// ABOUTME: Page scraper extracting Open Graph metadata and readable lead text
// ABOUTME: Used as an enrichment fallback when the summary API has no data

package scrape

import (
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	readability "github.com/go-shiori/go-readability"
	"github.com/gocolly/colly"

	"github.com/danooki/2509-PlaceTimelineBackEnd/core/interfaces"
)

const (
	scrapeUserAgent = "facebookexternalhit/1.1 (+http://www.facebook.com/externalhit_uatext.php)"
	scrapeTimeout   = 10 * time.Second
	maxBodySize     = 5 * 1024 * 1024
	maxLeadRunes    = 500
)

// PageMetadata holds the data scraped from a single page.
type PageMetadata struct {
	Title       string
	Description string
	Thumbnail   string
	LeadText    string
}

// PageScraper extracts metadata directly from web pages.
type PageScraper struct {
	logger interfaces.Logger
}

// NewPageScraper creates a new page scraper.
func NewPageScraper(logger interfaces.Logger) *PageScraper {
	return &PageScraper{logger: logger}
}

// Scrape fetches a page and extracts its metadata. Scrape failures return
// whatever was collected before the failure.
func (s *PageScraper) Scrape(pageURL string) *PageMetadata {
	result := &PageMetadata{}
	if pageURL == "" {
		return result
	}

	c := colly.NewCollector(
		colly.UserAgent(scrapeUserAgent),
		colly.MaxBodySize(maxBodySize),
		colly.Async(false),
		colly.AllowURLRevisit(),
	)
	c.SetRequestTimeout(scrapeTimeout)

	c.OnHTML("meta", func(e *colly.HTMLElement) {
		content := e.Attr("content")
		if content == "" {
			return
		}

		switch e.Attr("property") {
		case "og:title":
			if result.Title == "" {
				result.Title = content
			}
		case "og:description":
			if result.Description == "" {
				result.Description = content
			}
		case "og:image":
			if result.Thumbnail == "" {
				result.Thumbnail = content
			}
		}

		if e.Attr("name") == "twitter:image" && result.Thumbnail == "" {
			result.Thumbnail = content
		}
	})

	c.OnHTML("head", func(e *colly.HTMLElement) {
		if result.Title == "" {
			if title := e.DOM.Find("title").First().Text(); title != "" {
				result.Title = strings.TrimSpace(title)
			}
		}
		if result.Description == "" {
			e.DOM.Find("meta[name='description']").Each(func(_ int, sel *goquery.Selection) {
				if content, exists := sel.Attr("content"); exists && content != "" {
					result.Description = content
				}
			})
		}
	})

	if err := c.Visit(pageURL); err != nil {
		if s.logger != nil {
			s.logger.Debug("Failed to scrape page metadata", map[string]interface{}{
				"url":   pageURL,
				"error": err.Error(),
			})
		}
		return result
	}

	result.LeadText = s.extractLeadText(pageURL)

	return result
}

// extractLeadText pulls the readable article text and truncates it to a
// summary-sized lead.
func (s *PageScraper) extractLeadText(pageURL string) string {
	article, err := readability.FromURL(pageURL, scrapeTimeout)
	if err != nil {
		if s.logger != nil {
			s.logger.Debug("Failed to extract readable text", map[string]interface{}{
				"url":   pageURL,
				"error": err.Error(),
			})
		}
		return ""
	}

	text := strings.TrimSpace(article.TextContent)
	runes := []rune(text)
	if len(runes) > maxLeadRunes {
		text = string(runes[:maxLeadRunes])
		// Cut at the last sentence boundary inside the window
		if idx := strings.LastIndex(text, "."); idx > 0 {
			text = text[:idx+1]
		}
	}

	return text
}

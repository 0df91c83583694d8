// ABOUTME: Accent color extraction service for place thumbnail images
// ABOUTME: Uses K-means clustering to find the most prominent color in a thumbnail

package services

import (
	"context"
	"fmt"
	"image"
	"image/draw"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/EdlinOrg/prominentcolor"
	_ "golang.org/x/image/webp" // WebP support

	"github.com/danooki/2509-PlaceTimelineBackEnd/core/domain"
	"github.com/danooki/2509-PlaceTimelineBackEnd/core/interfaces"
)

const (
	defaultColorValue = 128
	httpTimeout       = 10 * time.Second
	userAgent         = "Mozilla/5.0 (compatible; PlaceTimeline/1.0)"
)

// AccentColorExtractor extracts accent colors from place thumbnails.
type AccentColorExtractor struct {
	deps       interfaces.Dependencies
	httpClient *http.Client
}

// NewAccentColorExtractor creates a new accent color extractor.
func NewAccentColorExtractor(deps interfaces.Dependencies) *AccentColorExtractor {
	return &AccentColorExtractor{
		deps: deps,
		httpClient: &http.Client{
			Timeout: httpTimeout,
		},
	}
}

// ExtractAccent extracts the prominent color from a thumbnail URL.
// Failures degrade to a neutral gray instead of propagating.
func (s *AccentColorExtractor) ExtractAccent(ctx context.Context, imageURL string) (*domain.RGBColor, error) {
	if imageURL == "" {
		return s.defaultColor(), nil
	}

	if s.deps.Cache != nil {
		cacheKey := fmt.Sprintf("accentColor:%s", imageURL)
		if data, err := s.deps.Cache.Get(ctx, cacheKey); err == nil && data != nil {
			var color domain.RGBColor
			// Cached as "R,G,B"
			if _, err := fmt.Sscanf(string(data), "%d,%d,%d", &color.R, &color.G, &color.B); err == nil {
				return &color, nil
			}
		}
	}

	color, err := s.extractFromURL(ctx, imageURL)
	if err != nil {
		s.deps.Logger.Debug("Failed to extract accent color", map[string]interface{}{
			"url":   imageURL,
			"error": err.Error(),
		})
		color = s.defaultColor()
	}
	if color == nil {
		color = s.defaultColor()
	}

	if s.deps.Cache != nil {
		cacheKey := fmt.Sprintf("accentColor:%s", imageURL)
		cacheData := fmt.Sprintf("%d,%d,%d", color.R, color.G, color.B)
		_ = s.deps.Cache.Set(ctx, cacheKey, []byte(cacheData), 24*time.Hour)
	}

	return color, nil
}

// extractFromURL downloads and clusters the image.
func (s *AccentColorExtractor) extractFromURL(ctx context.Context, imageURL string) (color *domain.RGBColor, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			s.deps.Logger.Debug("Recovered from panic in color extraction", map[string]interface{}{
				"url":   imageURL,
				"panic": fmt.Sprintf("%v", rec),
			})
			color = s.defaultColor()
			err = fmt.Errorf("panic recovered: %v", rec)
		}
	}()

	parsedURL, parseErr := url.Parse(imageURL)
	if parseErr != nil || parsedURL.Scheme == "" || parsedURL.Host == "" {
		return nil, fmt.Errorf("invalid image URL: %s", imageURL)
	}

	// SVG thumbnails can't be decoded as raster images
	if strings.HasSuffix(strings.ToLower(parsedURL.Path), ".svg") {
		return nil, fmt.Errorf("SVG images are not supported")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, imageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to download image: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	img, _, err := image.Decode(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	bounds := img.Bounds()
	if bounds.Empty() {
		return nil, fmt.Errorf("image has empty bounds")
	}

	imgNRGBA := image.NewNRGBA(bounds)
	draw.Draw(imgNRGBA, bounds, img, bounds.Min, draw.Src)

	colors, err := prominentcolor.KmeansWithAll(
		prominentcolor.ArgumentDefault,
		imgNRGBA,
		prominentcolor.DefaultK,
		1,
		prominentcolor.GetDefaultMasks(),
	)

	// Masked extraction fails on near-uniform images; retry unmasked
	if err != nil || len(colors) == 0 {
		colors, err = prominentcolor.KmeansWithAll(
			prominentcolor.ArgumentDefault,
			imgNRGBA,
			prominentcolor.DefaultK,
			1,
			nil,
		)
		if err != nil || len(colors) == 0 {
			return nil, fmt.Errorf("no colors extracted from image")
		}
	}

	return &domain.RGBColor{
		R: uint8(colors[0].Color.R),
		G: uint8(colors[0].Color.G),
		B: uint8(colors[0].Color.B),
	}, nil
}

// defaultColor returns the neutral gray fallback.
func (s *AccentColorExtractor) defaultColor() *domain.RGBColor {
	return &domain.RGBColor{
		R: defaultColorValue,
		G: defaultColorValue,
		B: defaultColorValue,
	}
}

// ExtractAccentBatch extracts colors for multiple thumbnail URLs concurrently.
// URLs that fail extraction are omitted from the result map.
func (s *AccentColorExtractor) ExtractAccentBatch(ctx context.Context, imageURLs []string) map[string]*domain.RGBColor {
	results := make(map[string]*domain.RGBColor)
	resultsMutex := sync.Mutex{}

	var wg sync.WaitGroup
	semaphore := make(chan struct{}, 5)

	for _, u := range imageURLs {
		wg.Add(1)
		go func(imageURL string) {
			defer wg.Done()

			select {
			case semaphore <- struct{}{}:
				defer func() { <-semaphore }()

				color, err := s.ExtractAccent(ctx, imageURL)
				if err != nil {
					s.deps.Logger.Debug("Failed to extract accent color in batch", map[string]interface{}{
						"url":   imageURL,
						"error": err.Error(),
					})
					return
				}

				resultsMutex.Lock()
				results[imageURL] = color
				resultsMutex.Unlock()

			case <-ctx.Done():
				return
			}
		}(u)
	}

	wg.Wait()

	s.deps.Logger.Debug("Completed batch accent color extraction", map[string]interface{}{
		"requested": len(imageURLs),
		"extracted": len(results),
	})

	return results
}

package places

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/danooki/2509-PlaceTimelineBackEnd/core/domain"
)

func testRanker() *Ranker {
	return NewRanker(&mockLogger{}, RankerConfig{EnrichTimeout: 100 * time.Millisecond})
}

func placeCandidate(title string) domain.SearchCandidate {
	return domain.SearchCandidate{
		Title:   title,
		Snippet: "a wrought-iron lattice tower in the city",
	}
}

func TestRank_TruncatesToLimit(t *testing.T) {
	candidates := []domain.SearchCandidate{
		placeCandidate("Eiffel Tower"),
		placeCandidate("Tokyo Tower"),
		placeCandidate("CN Tower"),
		placeCandidate("Blackpool Tower"),
		placeCandidate("Berliner Fernsehturm Tower"),
	}

	suggestions := testRanker().Rank(context.Background(), "tower", candidates, 2, nil)

	if len(suggestions) != 2 {
		t.Errorf("Rank returned %d suggestions, want 2", len(suggestions))
	}
}

func TestRank_DefaultLimit(t *testing.T) {
	candidates := []domain.SearchCandidate{
		placeCandidate("Eiffel Tower"),
		placeCandidate("Tokyo Tower"),
		placeCandidate("CN Tower"),
		placeCandidate("Blackpool Tower"),
	}

	suggestions := testRanker().Rank(context.Background(), "tower", candidates, 0, nil)

	if len(suggestions) != DefaultReturnLimit {
		t.Errorf("Rank returned %d suggestions, want %d", len(suggestions), DefaultReturnLimit)
	}
}

func TestRank_CarriesSizeAndTimestamp(t *testing.T) {
	modified := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	candidate := placeCandidate("Eiffel Tower")
	candidate.Size = 4096
	candidate.Timestamp = modified

	suggestions := testRanker().Rank(context.Background(), "eiffel", []domain.SearchCandidate{candidate}, 1, nil)

	if len(suggestions) != 1 {
		t.Fatalf("Rank returned %d suggestions, want 1", len(suggestions))
	}
	if suggestions[0].Size != 4096 {
		t.Errorf("Size = %d, want 4096", suggestions[0].Size)
	}
	if !suggestions[0].Timestamp.Equal(modified) {
		t.Errorf("Timestamp = %v, want %v", suggestions[0].Timestamp, modified)
	}
}

func TestRank_SortsByConfidenceDescending(t *testing.T) {
	candidates := []domain.SearchCandidate{
		{Title: "Tower records", Snippet: "a music company and record label"},
		placeCandidate("Eiffel Tower"),
		{Title: "Eiffel Tower", Snippet: "wrought-iron lattice tower in Paris"},
	}

	suggestions := testRanker().Rank(context.Background(), "eiffel tower", candidates, 10, nil)

	for i := 1; i < len(suggestions); i++ {
		if suggestions[i].Confidence > suggestions[i-1].Confidence {
			t.Errorf("suggestions not sorted: [%d]=%v > [%d]=%v",
				i, suggestions[i].Confidence, i-1, suggestions[i-1].Confidence)
		}
	}
}

func TestRank_StableOrderForEqualConfidence(t *testing.T) {
	// Identical text yields identical confidence; input order must survive
	first := placeCandidate("Eiffel Tower")
	first.Size = 1
	second := placeCandidate("Eiffel Tower")
	second.Size = 2
	third := placeCandidate("Eiffel Tower")
	third.Size = 3

	suggestions := testRanker().Rank(context.Background(), "eiffel", []domain.SearchCandidate{first, second, third}, 10, nil)

	if len(suggestions) != 3 {
		t.Fatalf("Rank returned %d suggestions, want 3", len(suggestions))
	}
	for i, wantSize := range []int{1, 2, 3} {
		if suggestions[i].Size != wantSize {
			t.Errorf("suggestion[%d].Size = %d, want %d", i, suggestions[i].Size, wantSize)
		}
	}
}

func TestRank_CleansSnippets(t *testing.T) {
	candidates := []domain.SearchCandidate{
		{Title: "Eiffel Tower", Snippet: "<b>wrought-iron</b> lattice tower &amp; landmark"},
	}

	suggestions := testRanker().Rank(context.Background(), "eiffel", candidates, 3, nil)

	want := "wrought-iron lattice tower landmark"
	if suggestions[0].Snippet != want {
		t.Errorf("Snippet = %q, want %q", suggestions[0].Snippet, want)
	}
}

func TestRank_EnrichmentFailureIsolated(t *testing.T) {
	enricher := &mockEnricher{
		enrichFunc: func(ctx context.Context, title string) (*domain.PlaceEnrichment, error) {
			if title == "Tokyo Tower" {
				return nil, errors.New("summary fetch failed")
			}
			return &domain.PlaceEnrichment{Thumbnail: "https://img.example.com/" + title}, nil
		},
	}
	candidates := []domain.SearchCandidate{
		placeCandidate("Eiffel Tower"),
		placeCandidate("Tokyo Tower"),
	}

	suggestions := testRanker().Rank(context.Background(), "tower", candidates, 10, enricher)

	if len(suggestions) != 2 {
		t.Fatalf("Rank returned %d suggestions, want 2", len(suggestions))
	}
	for _, s := range suggestions {
		switch s.Title {
		case "Tokyo Tower":
			if s.Thumbnail != "" {
				t.Errorf("failed enrichment should leave thumbnail empty, got %q", s.Thumbnail)
			}
		case "Eiffel Tower":
			if s.Thumbnail == "" {
				t.Error("successful enrichment should set thumbnail")
			}
		}
	}
}

func TestRank_PanickingEnricherIsolated(t *testing.T) {
	enricher := &mockEnricher{
		enrichFunc: func(ctx context.Context, title string) (*domain.PlaceEnrichment, error) {
			panic("collaborator bug")
		},
	}
	candidates := []domain.SearchCandidate{placeCandidate("Eiffel Tower")}

	suggestions := testRanker().Rank(context.Background(), "tower", candidates, 3, enricher)

	if len(suggestions) != 1 {
		t.Fatalf("Rank returned %d suggestions, want 1", len(suggestions))
	}
	if suggestions[0].Thumbnail != "" {
		t.Error("panicking enricher should leave thumbnail empty")
	}
}

func TestRank_SlowEnricherBoundedByTimeout(t *testing.T) {
	enricher := &mockEnricher{
		enrichFunc: func(ctx context.Context, title string) (*domain.PlaceEnrichment, error) {
			<-ctx.Done()
			return nil, ctx.Err()
		},
	}
	candidates := []domain.SearchCandidate{placeCandidate("Eiffel Tower")}

	start := time.Now()
	suggestions := testRanker().Rank(context.Background(), "tower", candidates, 3, enricher)
	elapsed := time.Since(start)

	if len(suggestions) != 1 {
		t.Fatalf("Rank returned %d suggestions, want 1", len(suggestions))
	}
	if elapsed > 2*time.Second {
		t.Errorf("Rank took %v, enrichment timeout not enforced", elapsed)
	}
}

func TestRank_CountryFallbackFromExtract(t *testing.T) {
	enricher := &mockEnricher{
		enrichFunc: func(ctx context.Context, title string) (*domain.PlaceEnrichment, error) {
			return &domain.PlaceEnrichment{
				Extract: "The Eiffel Tower is located in Paris, France.",
			}, nil
		},
	}
	candidates := []domain.SearchCandidate{placeCandidate("Eiffel Tower")}

	suggestions := testRanker().Rank(context.Background(), "eiffel", candidates, 3, enricher)

	if suggestions[0].Country != "France" {
		t.Errorf("Country = %q, want France", suggestions[0].Country)
	}
}

func TestRank_CountryFallbackFromSnippet(t *testing.T) {
	candidates := []domain.SearchCandidate{
		{Title: "Brandenburg Gate", Snippet: "a monument located in Berlin, Germany."},
	}

	suggestions := testRanker().Rank(context.Background(), "brandenburg gate", candidates, 3, nil)

	if suggestions[0].Country != "Germany" {
		t.Errorf("Country = %q, want Germany", suggestions[0].Country)
	}
}

func TestRank_EnricherCountryWins(t *testing.T) {
	enricher := &mockEnricher{
		enrichFunc: func(ctx context.Context, title string) (*domain.PlaceEnrichment, error) {
			return &domain.PlaceEnrichment{Country: "Japan"}, nil
		},
	}
	candidates := []domain.SearchCandidate{
		{Title: "Tokyo Tower", Snippet: "a lattice tower located in Paris, France."},
	}

	suggestions := testRanker().Rank(context.Background(), "tokyo", candidates, 3, enricher)

	if suggestions[0].Country != "Japan" {
		t.Errorf("Country = %q, want the enricher-supplied Japan", suggestions[0].Country)
	}
}

func TestRank_MisspelledQueryRanksPlaceAboveNonPlace(t *testing.T) {
	candidates := []domain.SearchCandidate{
		// Higher raw text overlap, but vetoed as a non-place
		{Title: "Eifel Tower", Snippet: "debut album by a German rock band"},
		{Title: "Eiffel Tower", Snippet: "wrought-iron lattice tower in Paris"},
	}

	suggestions := testRanker().Rank(context.Background(), "eifel tower", candidates, 2, nil)

	if suggestions[0].Title != "Eiffel Tower" {
		t.Errorf("top suggestion = %q, want the place candidate", suggestions[0].Title)
	}
	if suggestions[0].Confidence <= suggestions[1].Confidence {
		t.Errorf("place confidence %v should exceed non-place %v",
			suggestions[0].Confidence, suggestions[1].Confidence)
	}
}

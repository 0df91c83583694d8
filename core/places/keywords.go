// ABOUTME: Fixed keyword and pattern tables for the place classifier
// ABOUTME: Read-only configuration data, kept separate from the scoring algorithm

package places

import (
	"regexp"

	"github.com/danooki/2509-PlaceTimelineBackEnd/core/domain"
)

// categoryRule is one weighted keyword category in the classifier's
// ordered rule list.
type categoryRule struct {
	Type     domain.PlaceType
	Weight   float64
	Keywords []string
}

// categoryRules is evaluated in order against the normalized combined text.
// Weights express how strongly a full keyword match indicates the category.
var categoryRules = []categoryRule{
	{
		Type:   domain.PlaceTypeBuilding,
		Weight: 0.8,
		Keywords: []string{
			"tower", "building", "castle", "palace", "cathedral", "church",
			"temple", "museum", "stadium", "bridge", "skyscraper", "fortress",
		},
	},
	{
		Type:   domain.PlaceTypeCity,
		Weight: 0.9,
		Keywords: []string{
			"city", "town", "capital", "metropolis", "municipality",
			"village", "borough", "settlement", "downtown", "suburb",
		},
	},
	{
		Type:   domain.PlaceTypeLandmark,
		Weight: 0.7,
		Keywords: []string{
			"landmark", "monument", "statue", "memorial", "ruins",
			"heritage", "archaeological", "attraction", "wonder", "plaza",
		},
	},
	{
		Type:   domain.PlaceTypeArea,
		Weight: 0.6,
		Keywords: []string{
			"region", "province", "county", "island", "peninsula", "valley",
			"desert", "forest", "coast", "mountain", "lake", "river", "park",
			"district",
		},
	},
}

// negativeIndicators veto classification outright. A candidate whose text
// mentions any of these denotes a person, work or organization, not a place.
var negativeIndicators = []string{
	"singer", "actor", "actress", "politician", "footballer", "musician",
	"composer", "painter", "philosopher", "scientist", "writer", "author",
	"poet", "born", "biography", "album", "band", "song", "film", "movie",
	"novel", "magazine", "company", "corporation", "software", "startup",
	"franchise", "character",
}

// placePatterns guarantee a minimum confidence for unambiguous place nouns
// even when keyword density is low. Matched against normalized text.
var placePatterns = []*regexp.Regexp{
	regexp.MustCompile(`\b(tower|castle|palace|cathedral|basilica|mosque|temple|museum|stadium|bridge|fort|fortress)\b`),
	regexp.MustCompile(`\b(city|town|village|capital|municipality|metropolis|borough)\b`),
	regexp.MustCompile(`\b(mountain|river|lake|island|valley|desert|canyon|bay|peninsula|waterfall|glacier|reef)\b`),
}

// typeBonuses reward place types by how often users search for them.
var typeBonuses = map[domain.PlaceType]float64{
	domain.PlaceTypeCity:     0.1,
	domain.PlaceTypeBuilding: 0.05,
	domain.PlaceTypeLandmark: 0.05,
	domain.PlaceTypeArea:     0.02,
}

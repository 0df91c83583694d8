// ABOUTME: Closed country whitelist for the country extractor
// ABOUTME: Fixed, ordered set of canonical country names; read-only process-wide

package places

// countryWhitelist is the closed set of country names the extractor will
// accept. Membership tests are case-sensitive exact matches.
var countryWhitelist = []string{
	"France",
	"Germany",
	"Italy",
	"Spain",
	"Portugal",
	"Netherlands",
	"Belgium",
	"Switzerland",
	"Austria",
	"Greece",
	"United Kingdom",
	"Ireland",
	"Poland",
	"Czech Republic",
	"Hungary",
	"Sweden",
	"Norway",
	"Denmark",
	"Finland",
	"Russia",
	"Turkey",
	"United States",
	"Canada",
	"Mexico",
	"Brazil",
	"Argentina",
	"Chile",
	"Peru",
	"Colombia",
	"Egypt",
	"Morocco",
	"South Africa",
	"Kenya",
	"China",
	"Japan",
	"South Korea",
	"India",
	"Thailand",
	"Vietnam",
	"Indonesia",
	"Malaysia",
	"Australia",
}

// isWhitelistedCountry reports whether name is in the closed country set.
func isWhitelistedCountry(name string) bool {
	for _, country := range countryWhitelist {
		if name == country {
			return true
		}
	}
	return false
}

// Package intent classifies free-form user input into a closed set of
// categories and normalizes trade names to canonical tags. Both are fixed
// table lookups so the recognized inputs stay explicit and testable.
package intent

import "strings"

// Intent is a detected conversational intent category.
type Intent string

const (
	FAQLocations Intent = "faq_locations"
	FAQServices  Intent = "faq_services"
	Unknown      Intent = "unknown"
)

// locationKeywords and serviceKeywords are checked in order; the first
// category with a matching keyword wins.
var locationKeywords = []string{
	"location",
	"locations",
	"serve",
	"service area",
	"zip",
	"hours",
	"open",
}

var serviceKeywords = []string{
	"service",
	"services",
	"offer",
	"do you handle",
	"what do you do",
}

// Detect classifies a free-form message by substring keyword matching.
func Detect(message string) Intent {
	text := strings.ToLower(message)

	for _, keyword := range locationKeywords {
		if strings.Contains(text, keyword) {
			return FAQLocations
		}
	}
	for _, keyword := range serviceKeywords {
		if strings.Contains(text, keyword) {
			return FAQServices
		}
	}
	return Unknown
}

// tradeSynonyms maps user-provided trade strings to canonical business
// unit tags. Lookup is exact after trimming and lower-casing; no fuzzy
// matching.
var tradeSynonyms = map[string]string{
	"plumber":          "plumbing",
	"plumbing":         "plumbing",
	"electrician":      "electrical",
	"electrical":       "electrical",
	"hvac":             "hvac",
	"air conditioning": "hvac",
	"aircon":           "hvac",
	"ac":               "hvac",
}

// NormalizeTrade maps free-text trade input to its canonical tag.
// The second return value is false when the input is not recognized,
// which is a normal outcome the caller re-prompts on, not an error.
func NormalizeTrade(input string) (string, bool) {
	text := strings.ToLower(strings.TrimSpace(input))
	if text == "" {
		return "", false
	}
	trade, ok := tradeSynonyms[text]
	return trade, ok
}

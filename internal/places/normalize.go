package places

import "strings"

// hoursReplacer maps the unicode whitespace and dash variants the places
// API embeds in weekday descriptions to plain ASCII.
var hoursReplacer = strings.NewReplacer(
	" ", " ", // thin space
	"–", "-", // en dash
	" ", " ", // narrow no-break space
	" ", " ", // non-breaking space
)

// normalizeHours cleans unicode artifacts from weekday opening-hours text.
func normalizeHours(descriptions []string) []string {
	cleaned := make([]string, 0, len(descriptions))
	for _, d := range descriptions {
		cleaned = append(cleaned, hoursReplacer.Replace(d))
	}
	return cleaned
}

// cleanWebsite strips the query string and any trailing slash from a
// website URL, keeping only the base address.
func cleanWebsite(website string) string {
	if idx := strings.Index(website, "?"); idx >= 0 {
		website = website[:idx]
	}
	return strings.TrimRight(website, "/")
}

// Package prompts holds the prompt templates for the resolver, research,
// and formatter model calls. Templates use {{.Key}} placeholders filled by
// Format; each category's research and format templates share a single
// structure and differ only in schema text.
package prompts

import (
	"fmt"
	"strings"
)

// Format replaces template placeholders in the form {{.Key}} with values
// from data.
func Format(template string, data map[string]string) string {
	result := template
	for key, value := range data {
		placeholder := fmt.Sprintf("{{.%s}}", key)
		result = strings.ReplaceAll(result, placeholder, value)
	}
	return result
}

package helper

import "github.com/microcosm-cc/bluemonday"

// contentPolicy keeps the markup an article body needs and strips scripts,
// event handlers and other active content.
var contentPolicy = bluemonday.UGCPolicy()

// SanitizeHTML returns html with unsafe elements and attributes removed.
func SanitizeHTML(html string) string {
	return contentPolicy.Sanitize(html)
}

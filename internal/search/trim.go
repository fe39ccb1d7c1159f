package search

import "strings"

// TrimMarker starts the part of a search page that holds the pinyin results.
const TrimMarker = "Showing searches of Pinyin"

// Trim drops the page chrome before TrimMarker. A page without the marker is
// returned unchanged.
func Trim(page string) string {
	index := strings.Index(page, TrimMarker)
	if index < 0 {
		return page
	}
	return page[index:]
}

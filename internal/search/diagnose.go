package search

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Diagnosis counts the landmarks of a search page. It explains why a page
// produced no results without affecting extraction.
type Diagnosis struct {
	HasMarker     bool
	Rows          int
	Headwords     int
	PinyinSpans   int
	AudioTriggers int
}

// Diagnose parses page leniently and counts the elements Extract relies on
func Diagnose(page string) (Diagnosis, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(page))
	if err != nil {
		return Diagnosis{}, fmt.Errorf("parse html: %w", err)
	}

	return Diagnosis{
		HasMarker:     strings.Contains(page, TrimMarker),
		Rows:          doc.Find("tr").Length(),
		Headwords:     doc.Find("div.leadXXL.chinese").Length(),
		PinyinSpans:   doc.Find("span.pinyin").Length(),
		AudioTriggers: strings.Count(page, "playAudio("),
	}, nil
}

// LayoutChanged reports whether the page carries result markup that the row
// pattern could not parse.
func (d Diagnosis) LayoutChanged() bool {
	return d.Headwords > 0 || d.AudioTriggers > 0
}

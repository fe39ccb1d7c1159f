package search

import (
	"html"
	"regexp"
	"strings"
)

// Sub-patterns of a result row, in the order they appear in the markup.
// `.` never crosses a newline, so a row has to sit on a single line.
const (
	rowStartPattern  = `<tr>.+?`
	hanziPattern     = `<div class=['"]leadXXL chinese['"]>(?P<hanzi>.+?)</div>`
	pinyinPattern    = `.+?<span class="pinyin">(?P<pinyin>[^>]*)</span>`
	glossPattern     = `.+?color:#0066FF['"]> (?P<gloss>[^>]*)</span>`
	playAudioPattern = `.+?playAudio\((?:"|&quot;)(?P<audioName>.+?)(?:"|&quot;).+?,(?P<audioDir>\d+)\)`
)

var (
	rowRegex = regexp.MustCompile(rowStartPattern + hanziPattern + pinyinPattern + glossPattern + playAudioPattern)
	spanTag  = regexp.MustCompile(`</?span[^>]*>`)

	hanziIndex     = rowRegex.SubexpIndex("hanzi")
	pinyinIndex    = rowRegex.SubexpIndex("pinyin")
	glossIndex     = rowRegex.SubexpIndex("gloss")
	audioNameIndex = rowRegex.SubexpIndex("audioName")
	audioDirIndex  = rowRegex.SubexpIndex("audioDir")
)

// Extract parses every result row of a search page, left to right.
// Rows missing any part are skipped; a page without rows yields nil.
func Extract(page string) []Result {
	var results []Result
	for _, m := range rowRegex.FindAllStringSubmatch(page, -1) {
		results = append(results, Result{
			Hanzi:     cleanHanzi(m[hanziIndex]),
			Pinyin:    html.UnescapeString(m[pinyinIndex]),
			Gloss:     html.UnescapeString(m[glossIndex]),
			AudioName: html.UnescapeString(m[audioNameIndex]),
			AudioDir:  html.UnescapeString(m[audioDirIndex]),
		})
	}
	return results
}

// cleanHanzi decodes entities first and strips the styling spans the site
// wraps around single characters afterwards.
func cleanHanzi(raw string) string {
	decoded := html.UnescapeString(raw)
	return strings.TrimSpace(spanTag.ReplaceAllString(decoded, ""))
}

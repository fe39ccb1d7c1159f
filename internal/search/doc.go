// Package search fetches trainchinese.com search result pages and turns the
// result rows into Result records. The page is not well-formed enough for a
// DOM walk, so extraction works on the raw markup with a single row pattern.
package search

package search

// Result is one dictionary entry parsed from a search page
type Result struct {
	Hanzi     string // Headword in Chinese characters, markup stripped
	Pinyin    string // Romanized reading
	Gloss     string // Short English definition
	AudioName string // File name from the playAudio trigger
	AudioDir  string // Numeric directory token from the playAudio trigger
}

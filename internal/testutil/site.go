package testutil

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
)

// SearchRow describes one result row of a fake search page
type SearchRow struct {
	Hanzi     string // Raw markup placed inside the headword container
	Pinyin    string
	Gloss     string
	AudioName string
	AudioDir  string
}

// Markup renders the row the way the dictionary site does, on a single line
func (r SearchRow) Markup() string {
	return fmt.Sprintf(
		`<tr><td><div class='leadXXL chinese'>%s</div></td>`+
			`<td><span class="pinyin">%s</span><br><span style='color:#0066FF'> %s</span></td>`+
			`<td><a href="#" onclick="playAudio(&quot;%s&quot;, &quot;tc&quot;,%s)">play</a></td></tr>`,
		r.Hanzi, r.Pinyin, r.Gloss, r.AudioName, r.AudioDir)
}

// SearchPage wraps rows in page chrome. With marker set the trim marker is
// placed between the chrome and the result table.
func SearchPage(marker bool, rows ...SearchRow) string {
	var sb strings.Builder
	sb.WriteString("<html><head><title>trainchinese</title></head><body>\n")
	sb.WriteString("<table class=\"nav\">\n<tr><td><a href=\"/\">Home</a></td></tr>\n</table>\n")
	if marker {
		sb.WriteString("<p>Showing searches of Pinyin</p>\n")
	}
	sb.WriteString("<table class=\"results\">\n")
	for _, row := range rows {
		sb.WriteString(row.Markup())
		sb.WriteString("\n")
	}
	sb.WriteString("</table>\n</body></html>\n")
	return sb.String()
}

// FakeSite serves a search page and audio files like the dictionary site
type FakeSite struct {
	*httptest.Server

	mu       sync.Mutex
	page     string
	audio    map[string][]byte
	requests []string
}

// NewFakeSite starts a fake dictionary site; it is closed with the test
func NewFakeSite(t *testing.T, page string) *FakeSite {
	t.Helper()

	site := &FakeSite{
		page:  page,
		audio: make(map[string][]byte),
	}
	site.Server = httptest.NewServer(http.HandlerFunc(site.serve))
	t.Cleanup(site.Close)
	return site
}

// AddAudio serves data at path, for example "/v1/voicefiles/words_0/word1.mp3"
func (s *FakeSite) AddAudio(path string, data []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.audio[path] = data
}

// Requests returns the request URIs received so far
func (s *FakeSite) Requests() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.requests...)
}

func (s *FakeSite) serve(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	s.requests = append(s.requests, r.URL.RequestURI())
	data, ok := s.audio[r.URL.Path]
	page := s.page
	s.mu.Unlock()

	switch {
	case r.URL.Path == "/v2/search.php":
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		fmt.Fprint(w, page)
	case ok:
		w.Header().Set("Content-Type", "audio/mpeg")
		w.Write(data)
	default:
		http.NotFound(w, r)
	}
}

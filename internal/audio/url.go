package audio

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"codeberg.org/snonux/hanzirecall/internal/search"
)

// The site keeps clips in two layouts: "word*" files live in one flat
// directory, all others are bucketed by their directory token modulo 1000.
const (
	wordPrefix   = "word"
	wordsPath    = "/v1/voicefiles/words_0/"
	bucketedPath = "/v1/word_lists/tc_words/w_dirs/w%d/%s"
	bucketCount  = 1000
)

// ErrInvalidAudioDir is returned when a result's directory token is not a number
var ErrInvalidAudioDir = errors.New("audio directory token is not numeric")

// URLFor returns the clip URL of result on the site at baseURL
func URLFor(baseURL string, result search.Result) (string, error) {
	if baseURL == "" {
		baseURL = search.DefaultBaseURL
	}
	baseURL = strings.TrimRight(baseURL, "/")

	if strings.HasPrefix(result.AudioName, wordPrefix) {
		return baseURL + wordsPath + result.AudioName, nil
	}

	dir, err := strconv.Atoi(result.AudioDir)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidAudioDir, result.AudioDir)
	}

	return baseURL + fmt.Sprintf(bucketedPath, dir%bucketCount, result.AudioName), nil
}

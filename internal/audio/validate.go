package audio

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnsafeHeadword is returned for headwords that cannot name a clip file
var ErrUnsafeHeadword = errors.New("headword cannot be used as a file name")

// ValidateHeadword checks that hanzi can be used as the clip's file name
// inside the collection directory
func ValidateHeadword(hanzi string) error {
	if strings.TrimSpace(hanzi) == "" {
		return fmt.Errorf("%w: empty", ErrUnsafeHeadword)
	}

	if hanzi == "." || hanzi == ".." || strings.ContainsAny(hanzi, `/\`+"\x00") {
		return fmt.Errorf("%w: %q", ErrUnsafeHeadword, hanzi)
	}

	return nil
}

// FileName returns the clip file name for a headword. The site's own file
// name is deliberately not used so the card and the clip share one name.
func FileName(hanzi string) string {
	return hanzi + ".mp3"
}

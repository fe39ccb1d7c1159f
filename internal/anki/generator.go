// Package anki writes flashcard records in the tab-separated format that
// Anki's text importer reads.
package anki

import (
	"fmt"
	"os"
	"path/filepath"
)

// Card represents a single Anki flashcard
type Card struct {
	Hanzi     string // The Chinese word/phrase
	Pinyin    string // Reading shown next to the audio
	AudioFile string // Path to the audio file in the collection directory
	Meaning   string // Meaning typed in by the user
}

// FormatLine renders a card as one ledger line including the newline:
// hanzi<TAB>pinyin [sound:file.mp3]<TAB>meaning
func FormatLine(card Card) string {
	return fmt.Sprintf("%s\t%s %s\t%s\n", card.Hanzi, card.Pinyin, formatAudioField(card.AudioFile), card.Meaning)
}

// formatAudioField formats the audio file reference for Anki
func formatAudioField(audioFile string) string {
	// Anki audio format: [sound:filename.mp3]
	return fmt.Sprintf("[sound:%s]", filepath.Base(audioFile))
}

// Ledger is an append-only TSV file of cards. It never reads the file back,
// so repeated cards are written again.
type Ledger struct {
	path string
}

// NewLedger creates a ledger for the file at path
func NewLedger(path string) *Ledger {
	return &Ledger{path: path}
}

// Path returns the ledger file path
func (l *Ledger) Path() string {
	return l.path
}

// Append adds one line for card, creating the file if needed
func (l *Ledger) Append(card Card) error {
	file, err := os.OpenFile(l.path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("unable to open the file %q for writing: %w", l.path, err)
	}
	defer file.Close()

	if _, err := file.WriteString(FormatLine(card)); err != nil {
		return fmt.Errorf("failed to append to %q: %w", l.path, err)
	}

	return file.Close()
}

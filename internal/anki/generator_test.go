package anki

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"codeberg.org/snonux/hanzirecall/internal/testutil"
)

func TestFormatLine(t *testing.T) {
	tests := []struct {
		name string
		card Card
		want string
	}{
		{
			name: "basic card",
			card: Card{Hanzi: "你好", Pinyin: "nǐ hǎo", AudioFile: "你好.mp3", Meaning: "hello"},
			want: "你好\tnǐ hǎo [sound:你好.mp3]\thello\n",
		},
		{
			name: "audio path is reduced to its base name",
			card: Card{Hanzi: "好", Pinyin: "hǎo", AudioFile: "/home/me/collection.media/好.mp3", Meaning: "good"},
			want: "好\thǎo [sound:好.mp3]\tgood\n",
		},
		{
			name: "empty meaning",
			card: Card{Hanzi: "了", Pinyin: "le", AudioFile: "了.mp3"},
			want: "了\tle [sound:了.mp3]\t\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatLine(tt.card); got != tt.want {
				t.Errorf("FormatLine() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLedgerAppend_ExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cards.tsv")
	prior := "马\tmǎ [sound:马.mp3]\thorse\n"
	testutil.CreateTestFile(t, path, []byte(prior))

	ledger := NewLedger(path)
	card := Card{Hanzi: "你好", Pinyin: "nǐ hǎo", AudioFile: "你好.mp3", Meaning: "hello"}
	if err := ledger.Append(card); err != nil {
		t.Fatalf("Append failed: %v", err)
	}

	testutil.AssertFileContent(t, path, []byte(prior+"你好\tnǐ hǎo [sound:你好.mp3]\thello\n"))
}

func TestLedgerAppend_CreatesFileAndKeepsDuplicates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "new.tsv")
	ledger := NewLedger(path)
	card := Card{Hanzi: "好", Pinyin: "hǎo", AudioFile: "好.mp3", Meaning: "good"}

	for i := 0; i < 2; i++ {
		if err := ledger.Append(card); err != nil {
			t.Fatalf("Append %d failed: %v", i, err)
		}
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read ledger: %v", err)
	}
	if got := strings.Count(string(content), "好\thǎo [sound:好.mp3]\tgood\n"); got != 2 {
		t.Errorf("Expected 2 identical lines, got %d in %q", got, content)
	}
}

func TestLedgerAppend_MissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "cards.tsv")
	ledger := NewLedger(path)

	err := ledger.Append(Card{Hanzi: "好"})
	if err == nil {
		t.Fatal("Expected error for missing directory")
	}
	if !strings.Contains(err.Error(), path) {
		t.Errorf("Expected error to name %s, got %v", path, err)
	}
}

package search

import (
	"testing"

	"codeberg.org/snonux/hanzirecall/internal/testutil"
)

func TestDiagnose(t *testing.T) {
	row := testutil.SearchRow{Hanzi: "茶", Pinyin: "chá", Gloss: "tea", AudioName: "cha.mp3", AudioDir: "5"}

	tests := []struct {
		name        string
		page        string
		want        Diagnosis
		wantChanged bool
	}{
		{
			name:        "result page",
			page:        testutil.SearchPage(true, row, row),
			want:        Diagnosis{HasMarker: true, Rows: 3, Headwords: 2, PinyinSpans: 2, AudioTriggers: 2},
			wantChanged: true,
		},
		{
			name:        "no results",
			page:        testutil.SearchPage(false),
			want:        Diagnosis{Rows: 1},
			wantChanged: false,
		},
		{
			name:        "empty page",
			page:        "",
			want:        Diagnosis{},
			wantChanged: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Diagnose(tt.page)
			if err != nil {
				t.Fatalf("Diagnose failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("Diagnose() = %+v, want %+v", got, tt.want)
			}
			if got.LayoutChanged() != tt.wantChanged {
				t.Errorf("LayoutChanged() = %v, want %v", got.LayoutChanged(), tt.wantChanged)
			}
		})
	}
}

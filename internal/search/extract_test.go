package search

import (
	"reflect"
	"strings"
	"testing"

	"codeberg.org/snonux/hanzirecall/internal/testutil"
)

func TestExtract(t *testing.T) {
	tests := []struct {
		name string
		page string
		want []Result
	}{
		{
			name: "empty page",
			page: "",
			want: nil,
		},
		{
			name: "page without rows",
			page: testutil.SearchPage(true),
			want: nil,
		},
		{
			name: "single row",
			page: testutil.SearchPage(false, testutil.SearchRow{
				Hanzi: "你好", Pinyin: "nǐ hǎo", Gloss: "hello", AudioName: "word1.mp3", AudioDir: "12",
			}),
			want: []Result{
				{Hanzi: "你好", Pinyin: "nǐ hǎo", Gloss: "hello", AudioName: "word1.mp3", AudioDir: "12"},
			},
		},
		{
			name: "entities and nested spans",
			page: testutil.SearchPage(false, testutil.SearchRow{
				Hanzi:     ` <span style="color:#FF0000">好</span><span class="tone3">&amp;</span> `,
				Pinyin:    "h&#462;o",
				Gloss:     "good &amp; &quot;fine&quot;",
				AudioName: "w&amp;1.mp3",
				AudioDir:  "2573",
			}),
			want: []Result{
				{Hanzi: "好&", Pinyin: "hǎo", Gloss: `good & "fine"`, AudioName: "w&1.mp3", AudioDir: "2573"},
			},
		},
		{
			name: "escaped span markup is stripped after decoding",
			page: testutil.SearchPage(false, testutil.SearchRow{
				Hanzi: "&lt;span class=&quot;x&quot;&gt;学&lt;/span&gt;", Pinyin: "xué", Gloss: "study", AudioName: "a.mp3", AudioDir: "1",
			}),
			want: []Result{
				{Hanzi: "学", Pinyin: "xué", Gloss: "study", AudioName: "a.mp3", AudioDir: "1"},
			},
		},
		{
			name: "empty pinyin and gloss still count",
			page: testutil.SearchPage(false, testutil.SearchRow{
				Hanzi: "了", AudioName: "le.mp3", AudioDir: "7",
			}),
			want: []Result{
				{Hanzi: "了", AudioName: "le.mp3", AudioDir: "7"},
			},
		},
		{
			name: "identical rows are kept",
			page: testutil.SearchPage(false,
				testutil.SearchRow{Hanzi: "马", Pinyin: "mǎ", Gloss: "horse", AudioName: "ma.mp3", AudioDir: "3"},
				testutil.SearchRow{Hanzi: "马", Pinyin: "mǎ", Gloss: "horse", AudioName: "ma.mp3", AudioDir: "3"},
			),
			want: []Result{
				{Hanzi: "马", Pinyin: "mǎ", Gloss: "horse", AudioName: "ma.mp3", AudioDir: "3"},
				{Hanzi: "马", Pinyin: "mǎ", Gloss: "horse", AudioName: "ma.mp3", AudioDir: "3"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Extract(tt.page)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Extract() = %#v, want %#v", got, tt.want)
			}
		})
	}
}

func TestExtract_KeepsPageOrder(t *testing.T) {
	rows := []testutil.SearchRow{
		{Hanzi: "一", Pinyin: "yī", Gloss: "one", AudioName: "word1.mp3", AudioDir: "1"},
		{Hanzi: "二", Pinyin: "èr", Gloss: "two", AudioName: "er.mp3", AudioDir: "1002"},
		{Hanzi: "三", Pinyin: "sān", Gloss: "three", AudioName: "san.mp3", AudioDir: "2003"},
	}

	got := Extract(testutil.SearchPage(true, rows...))
	if len(got) != len(rows) {
		t.Fatalf("Expected %d results, got %d", len(rows), len(got))
	}
	for i, row := range rows {
		if got[i].Hanzi != row.Hanzi || got[i].AudioDir != row.AudioDir {
			t.Errorf("Result %d = %+v, want hanzi %s dir %s", i, got[i], row.Hanzi, row.AudioDir)
		}
	}
}

func TestExtract_SkipsIncompleteRows(t *testing.T) {
	complete := testutil.SearchRow{Hanzi: "水", Pinyin: "shuǐ", Gloss: "water", AudioName: "shui.mp3", AudioDir: "44"}
	noAudio := `<tr><td><div class='leadXXL chinese'>火</div></td><td><span class="pinyin">huǒ</span><span style='color:#0066FF'> fire</span></td></tr>`
	noPinyin := `<tr><td><div class="leadXXL chinese">木</div></td><td><span style="color:#0066FF"> wood</span></td><td>playAudio("mu.mp3", "tc",5)</td></tr>`

	page := strings.Join([]string{noAudio, complete.Markup(), noPinyin}, "\n")

	got := Extract(page)
	want := []Result{{Hanzi: "水", Pinyin: "shuǐ", Gloss: "water", AudioName: "shui.mp3", AudioDir: "44"}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Extract() = %#v, want %#v", got, want)
	}
}

func TestExtract_LiteralQuotesAndDoubleQuotedClass(t *testing.T) {
	page := `<tr><td><div class="leadXXL chinese">猫</div><span class="pinyin">māo</span>` +
		`<span style="color:#0066FF"> cat</span><a href='javascript:playAudio("mao.mp3", "tc",3001)'>play</a></td></tr>`

	got := Extract(page)
	want := []Result{{Hanzi: "猫", Pinyin: "māo", Gloss: "cat", AudioName: "mao.mp3", AudioDir: "3001"}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Extract() = %#v, want %#v", got, want)
	}
}

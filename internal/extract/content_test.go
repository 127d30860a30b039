package extract

import (
	"reflect"
	"strings"
	"testing"
)

const postText = "Jane Smith\n" +
	"Like · Comment · Share this with your network today\n" +
	"12,345 followers on this platform and counting\n" +
	"Excited to announce that our team shipped the new data pipeline today.\n" +
	"It processes millions of records every single hour without breaking.\n" +
	"short line\n" +
	"#DataEngineering @acme"

func TestFullContentFiltersChrome(t *testing.T) {
	got := FullContent(postText)

	if strings.Contains(got, "followers") {
		t.Fatalf("follower chrome should be removed: %q", got)
	}
	if strings.Contains(got, "Like") {
		t.Fatalf("reaction bar should be removed: %q", got)
	}
	if !strings.Contains(got, "shipped the new data pipeline") {
		t.Fatalf("post body should survive: %q", got)
	}
	if strings.Contains(got, "short line") {
		t.Fatalf("short lines should be removed: %q", got)
	}
}

func TestFullContentCap(t *testing.T) {
	line := strings.Repeat("word ", 50)
	text := strings.Repeat(line+"\n", 20)

	got := FullContent(text)
	if len([]rune(got)) > 2000 {
		t.Fatalf("full content must be capped at 2000, got %d", len([]rune(got)))
	}
}

func TestFullContentEmpty(t *testing.T) {
	if got := FullContent(""); got != "" {
		t.Fatalf("expected empty content, got %q", got)
	}
}

func TestContentSummary(t *testing.T) {
	long := strings.Repeat("a", 30) + " " + strings.Repeat("b", 300)
	got := ContentSummary(long)

	if !strings.HasSuffix(got, "...") {
		t.Fatalf("long summaries get an ellipsis, got %q", got)
	}
	if len([]rune(got)) > 203 {
		t.Fatalf("summary must be at most 203 characters, got %d", len([]rune(got)))
	}

	short := "This single sentence is long enough to survive filtering."
	if got := ContentSummary(short); strings.HasSuffix(got, "...") {
		t.Fatalf("short summaries keep no ellipsis, got %q", got)
	}
}

func TestFlatContent(t *testing.T) {
	long := strings.Repeat("x", 1500)
	if got := FlatContent(long); len(got) != 1000 {
		t.Fatalf("flat content capped at 1000, got %d", len(got))
	}
	if got := FlatContent("raw text untouched"); got != "raw text untouched" {
		t.Fatalf("short flat content passes through, got %q", got)
	}
}

func TestWordCount(t *testing.T) {
	if got := WordCount("one  two\tthree\nfour"); got != 4 {
		t.Fatalf("WordCount=%d, want 4", got)
	}
	if got := WordCount(""); got != 0 {
		t.Fatalf("WordCount(\"\")=%d, want 0", got)
	}
}

func TestMediaKeywordCounts(t *testing.T) {
	text := "a photo of the team, another image, and a video to watch"

	if got := ImageCount(text); got != 2 {
		t.Fatalf("ImageCount=%d, want 2", got)
	}
	if got := VideoCount(text); got != 2 {
		t.Fatalf("VideoCount=%d, want 2", got)
	}
	if got := ImageCount(""); got != 0 {
		t.Fatalf("ImageCount(\"\")=%d", got)
	}
}

func TestKeywords(t *testing.T) {
	got := Keywords("Teams building scalable systems enjoy building scalable platforms together")
	want := []string{"teams", "building", "scalable", "systems", "enjoy", "platforms", "together"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Keywords=%v, want %v", got, want)
	}

	if got := Keywords(""); len(got) != 0 {
		t.Fatalf("expected no keywords, got %v", got)
	}
}

func TestKeywordsNeverExceedTenOrRepeat(t *testing.T) {
	text := strings.Repeat("alpha bravo charlie delta echo foxtrot golfs hotel india juliet kilos limas ", 3)
	got := Keywords(text)

	if len(got) > 10 {
		t.Fatalf("keywords capped at ten, got %d", len(got))
	}
	seen := map[string]bool{}
	for _, kw := range got {
		if seen[kw] {
			t.Fatalf("duplicate keyword %q in %v", kw, got)
		}
		seen[kw] = true
	}
}

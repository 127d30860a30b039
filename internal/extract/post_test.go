package extract

import (
	"encoding/json"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/octobees/linkedin-extractor/api/internal/entity"
)

var postDoc = entity.Document{
	URL: "https://www.linkedin.com/feed/update/urn:li:activity-7123456789",
	Text: "Jane Smith\n" +
		"Excited to announce that we are introducing our new analytics platform today.\n" +
		"Watch the launch video and tell us what you think about the new dashboard.\n" +
		"Posted 3 days ago\n" +
		"120 likes · 30 comments · 10 shares · 3,200 views\n" +
		"#Analytics #Data @acme\n" +
		"https://cdn.example.com/demo.mp4",
}

func TestBuildPost(t *testing.T) {
	got := BuildPost(postDoc, "https://linkedin.com/in/janesmith")

	if got.URL != postDoc.URL {
		t.Fatalf("URL=%q", got.URL)
	}
	if got.AuthorName != "Jane Smith" {
		t.Fatalf("AuthorName=%q", got.AuthorName)
	}
	if got.AuthorProfile != "https://linkedin.com/in/janesmith" {
		t.Fatalf("AuthorProfile=%q", got.AuthorProfile)
	}
	if got.PostType != "Post" {
		t.Fatalf("PostType=%q", got.PostType)
	}
	if got.PostedDate != "3 days ago" {
		t.Fatalf("PostedDate=%q", got.PostedDate)
	}
	if got.Likes != "120" || got.Comments != "30" || got.Shares != "10" || got.Views != "3200" {
		t.Fatalf("counts=%q/%q/%q/%q", got.Likes, got.Comments, got.Shares, got.Views)
	}
	if got.MediaURLs != "" {
		t.Fatalf("flat records carry no media urls, got %q", got.MediaURLs)
	}
	if got.Hashtags != "#Analytics, #Data" {
		t.Fatalf("Hashtags=%q", got.Hashtags)
	}
	if got.Status != "Success" || got.Error != "" {
		t.Fatalf("Status=%q Error=%q", got.Status, got.Error)
	}
	if _, err := time.Parse(time.RFC3339, got.ExtractionDate); err != nil {
		t.Fatalf("ExtractionDate not RFC3339: %v", err)
	}
}

func TestPostRecordRow(t *testing.T) {
	row := BuildPost(postDoc, "").Row()
	if len(row) != 15 {
		t.Fatalf("post rows span columns A:O, got %d cells", len(row))
	}
	if row[0] != postDoc.URL || row[3] != "Post" || row[13] != "Success" {
		t.Fatalf("row order changed: %v", row)
	}
}

func TestBuildDetailedPost(t *testing.T) {
	got := BuildDetailedPost(postDoc, "https://linkedin.com/in/janesmith")

	if got.Metadata.PostID != "7123456789" {
		t.Fatalf("PostID=%q", got.Metadata.PostID)
	}
	if got.Metadata.AuthorName != "Jane Smith" {
		t.Fatalf("AuthorName=%q", got.Metadata.AuthorName)
	}
	if got.Metadata.PostedDate != "3 days ago" {
		t.Fatalf("PostedDate=%q", got.Metadata.PostedDate)
	}
	if _, err := time.Parse(time.RFC3339, got.Metadata.ExtractionTimestamp); err != nil {
		t.Fatalf("ExtractionTimestamp not RFC3339: %v", err)
	}

	if !strings.Contains(got.Content.FullText, "analytics platform") {
		t.Fatalf("FullText lost the body: %q", got.Content.FullText)
	}
	if strings.Contains(got.Content.FullText, "Jane Smith") {
		t.Fatalf("short name line should be filtered: %q", got.Content.FullText)
	}
	if got.Content.ContentType != "video" {
		t.Fatalf("ContentType=%q", got.Content.ContentType)
	}
	if got.Content.Language != "en" {
		t.Fatalf("Language=%q", got.Content.Language)
	}
	if got.Content.CharacterCount != len(got.Content.FullText) {
		t.Fatalf("CharacterCount=%d, text is %d", got.Content.CharacterCount, len(got.Content.FullText))
	}

	eng := got.Engagement
	if eng.Likes != 120 || eng.Comments != 30 || eng.Shares != 10 || eng.Views != 3200 {
		t.Fatalf("engagement=%+v", eng)
	}
	if eng.EngagementRate != "5.00%" {
		t.Fatalf("EngagementRate=%q", eng.EngagementRate)
	}

	if !got.Media.HasMedia || got.Media.MediaType != "video" {
		t.Fatalf("media=%+v", got.Media)
	}
	if !reflect.DeepEqual(got.Media.MediaURLs, []string{"https://cdn.example.com/demo.mp4"}) {
		t.Fatalf("MediaURLs=%v", got.Media.MediaURLs)
	}

	if !reflect.DeepEqual(got.Topics.Hashtags, []string{"#Analytics", "#Data"}) {
		t.Fatalf("Hashtags=%v", got.Topics.Hashtags)
	}
	if !reflect.DeepEqual(got.Topics.Mentions, []string{"@acme"}) {
		t.Fatalf("Mentions=%v", got.Topics.Mentions)
	}

	if got.Classification.PostType != "general_update" {
		t.Fatalf("PostType=%q", got.Classification.PostType)
	}
	if got.Classification.Sentiment != "positive" {
		t.Fatalf("Sentiment=%q", got.Classification.Sentiment)
	}
	if got.Classification.IsQuestion || got.Classification.IsPromotional {
		t.Fatalf("classification=%+v", got.Classification)
	}

	if got.RawData.RawText != postDoc.Text {
		t.Fatalf("RawText must carry the source text verbatim")
	}
	if got.RawData.Source != "Exa AI" {
		t.Fatalf("Source=%q", got.RawData.Source)
	}
}

func TestDetailedPostSectionOrder(t *testing.T) {
	raw, err := json.Marshal(BuildDetailedPost(postDoc, ""))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	body := string(raw)
	sections := []string{`"metadata"`, `"content"`, `"engagement"`, `"media"`, `"topics"`, `"classification"`, `"raw_data"`}
	last := -1
	for _, s := range sections {
		idx := strings.Index(body, s)
		if idx < 0 {
			t.Fatalf("section %s missing from %s", s, body)
		}
		if idx < last {
			t.Fatalf("section %s serialized out of order", s)
		}
		last = idx
	}
}

func TestParseCount(t *testing.T) {
	cases := []struct {
		input string
		want  int
	}{
		{"1234", 1234},
		{"0", 0},
		{"", 0},
		{"abc", 0},
		{"-5", 0},
	}

	for _, tc := range cases {
		if got := parseCount(tc.input); got != tc.want {
			t.Fatalf("parseCount(%q)=%d, want %d", tc.input, got, tc.want)
		}
	}
}

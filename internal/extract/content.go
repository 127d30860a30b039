package extract

import (
	"regexp"
	"strings"
)

const (
	fullContentLimit = 2000
	flatContentLimit = 1000
	summaryBodyLimit = 200
	minContentLine   = 20
	maxKeywords      = 10
	minKeywordLen    = 4
)

var (
	imageWordPattern = regexp.MustCompile(`(?i)image|photo|picture`)
	videoWordPattern = regexp.MustCompile(`(?i)video|watch`)

	// uiChromePrefixes and uiChromeMarkers identify interaction-bar and
	// follower-count lines that are not part of the post body.
	uiChromePrefixes = []string{"Like", "Comment", "Share"}
	uiChromeMarkers  = []string{"followers", "connections"}

	stopWords = map[string]struct{}{
		"the": {}, "a": {}, "an": {}, "and": {}, "or": {}, "but": {},
		"in": {}, "on": {}, "at": {}, "to": {}, "for": {},
	}
)

// FullContent denoises a post: it drops short lines and UI chrome (reaction
// bars, follower counts), joins the survivors with spaces and truncates the
// result to 2000 characters. This is the canonical post body every
// content-derived extractor works from.
func FullContent(text string) string {
	var kept []string
	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if len(trimmed) <= minContentLine {
			continue
		}
		if isUIChrome(trimmed) {
			continue
		}
		kept = append(kept, trimmed)
	}
	return truncate(strings.Join(kept, " "), fullContentLimit)
}

// FlatContent returns the untreated first 1000 characters of the text, the
// body used by the flat post record.
func FlatContent(text string) string {
	return truncate(text, flatContentLimit)
}

// ContentSummary returns the first 200 characters of the denoised body, with
// an ellipsis suffix when the body was longer.
func ContentSummary(text string) string {
	content := FullContent(text)
	if len([]rune(content)) > summaryBodyLimit {
		return truncate(content, summaryBodyLimit) + "..."
	}
	return content
}

// WordCount counts whitespace-separated tokens.
func WordCount(text string) int {
	return len(strings.Fields(text))
}

// ImageCount counts image-keyword occurrences in the text. It approximates
// attached image count by vocabulary, not by actual media items.
func ImageCount(text string) int {
	return len(imageWordPattern.FindAllString(text, -1))
}

// VideoCount counts video-keyword occurrences in the text, with the same
// approximation caveat as ImageCount.
func VideoCount(text string) int {
	return len(videoWordPattern.FindAllString(text, -1))
}

// Keywords lowercases the text, drops short tokens and stop words, and
// returns the first ten remaining tokens with duplicates removed. The slice
// is taken before deduplication, so fewer than ten entries may come back
// even when the text has more unique candidates.
func Keywords(text string) []string {
	var candidates []string
	for _, word := range strings.Fields(strings.ToLower(text)) {
		if len(word) <= minKeywordLen {
			continue
		}
		if _, ok := stopWords[word]; ok {
			continue
		}
		candidates = append(candidates, word)
		if len(candidates) == maxKeywords {
			break
		}
	}

	seen := make(map[string]struct{}, len(candidates))
	keywords := []string{}
	for _, word := range candidates {
		if _, ok := seen[word]; ok {
			continue
		}
		seen[word] = struct{}{}
		keywords = append(keywords, word)
	}
	return keywords
}

func isUIChrome(line string) bool {
	for _, prefix := range uiChromePrefixes {
		if strings.HasPrefix(line, prefix) {
			return true
		}
	}
	for _, marker := range uiChromeMarkers {
		if strings.Contains(line, marker) {
			return true
		}
	}
	return false
}

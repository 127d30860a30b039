package extract

import (
	"fmt"
	"strings"

	ahocorasick "github.com/cloudflare/ahocorasick"
)

// engagementRateNA is returned when the view count is zero: with no views a
// percentage rate is undefined, so the record carries a sentinel instead of
// a divide-by-one artifact.
const engagementRateNA = "N/A"

// keywordSet matches a fixed keyword list against free text in a single
// pass. Sets built with fold=true lowercase the input first; the keyword
// lists themselves are stored lowercase already.
type keywordSet struct {
	matcher *ahocorasick.Matcher
	fold    bool
}

func newKeywordSet(fold bool, words ...string) keywordSet {
	return keywordSet{matcher: ahocorasick.NewStringMatcher(words), fold: fold}
}

// hits reports how many distinct keywords of the set appear in the text.
func (s keywordSet) hits(text string) int {
	if s.fold {
		text = strings.ToLower(text)
	}
	return len(s.matcher.Match([]byte(text)))
}

func (s keywordSet) contains(text string) bool {
	return s.hits(text) > 0
}

// labelRule pairs a predicate with the label it yields. Ordered rule lists
// are evaluated first-match-wins, which makes precedence explicit.
type labelRule struct {
	label string
	match func(string) bool
}

func classify(rules []labelRule, text, fallback string) string {
	for _, r := range rules {
		if r.match(text) {
			return r.label
		}
	}
	return fallback
}

var (
	videoWords    = newKeywordSet(false, "video", "watch")
	imageWords    = newKeywordSet(false, "image", "photo")
	articleWords  = newKeywordSet(false, "article", "read more")
	pollWords     = newKeywordSet(false, "poll")
	documentWords = newKeywordSet(false, "document", "pdf")
	mediaWords    = newKeywordSet(false, "image", "video", "photo")

	jobWords          = newKeywordSet(false, "hiring", "job opening")
	articleShareWords = newKeywordSet(false, "article", "blog")
	announcementWords = newKeywordSet(false, "congratulations", "proud to announce")
	promoPhraseWords  = newKeywordSet(false, "check out", "learn more")

	positiveWords = newKeywordSet(true, "great", "excellent", "amazing", "wonderful", "fantastic", "love", "excited")
	negativeWords = newKeywordSet(true, "bad", "terrible", "awful", "disappointed", "unfortunately", "sad")

	promotionalWords = newKeywordSet(true, "buy", "purchase", "discount", "offer", "sale", "limited time", "sign up")
	engagementPhrase = "what do you think"
)

// topicRules are multi-label: every category whose keyword set matches is
// included, unranked.
var topicRules = []labelRule{
	{"technology", newKeywordSet(true, "ai", "tech", "software", "digital", "innovation").contains},
	{"business", newKeywordSet(true, "business", "strategy", "growth", "revenue", "market").contains},
	{"leadership", newKeywordSet(true, "leadership", "management", "team", "culture").contains},
	{"career", newKeywordSet(true, "career", "job", "hiring", "opportunity").contains},
	{"education", newKeywordSet(true, "learning", "education", "training", "course").contains},
}

var contentTypeRules = []labelRule{
	{"video", videoWords.contains},
	{"image", imageWords.contains},
	{"article", articleWords.contains},
	{"poll", pollWords.contains},
}

var mediaTypeRules = []labelRule{
	{"video", newKeywordSet(false, "video").contains},
	{"image", imageWords.contains},
	{"document", documentWords.contains},
}

var postTypeRules = []labelRule{
	{"job_posting", jobWords.contains},
	{"article_share", articleShareWords.contains},
	{"announcement", announcementWords.contains},
	{"question", func(text string) bool { return strings.Count(text, "?") >= 2 }},
	{"promotional", promoPhraseWords.contains},
}

var categoryRules = []labelRule{
	{"thought_leadership", newKeywordSet(true, "insights", "perspective", "believe", "think").contains},
	{"company_news", newKeywordSet(true, "announce", "launch", "release", "introducing").contains},
	{"personal_story", newKeywordSet(true, "my journey", "my experience", "i learned").contains},
	{"industry_news", newKeywordSet(true, "industry", "market", "trend", "report").contains},
	{"engagement", newKeywordSet(true, "what do you think", "share your", "let me know").contains},
}

// ContentType labels the post body as video, image, article, poll or text.
func ContentType(text string) string {
	return classify(contentTypeRules, text, "text")
}

// MediaType labels the attached media as video, image, document or none.
func MediaType(text string) string {
	return classify(mediaTypeRules, text, "none")
}

// HasMedia reports whether any media keyword appears in the text.
func HasMedia(text string) bool {
	return mediaWords.contains(text)
}

// Topics returns every topic category whose keyword list matches the text,
// zero to five labels with no ranking.
func Topics(text string) []string {
	topics := []string{}
	for _, r := range topicRules {
		if r.match(text) {
			topics = append(topics, r.label)
		}
	}
	return topics
}

// PostType classifies the post intent. Rule order is precedence: a hiring
// post that also reads like an announcement is still a job_posting.
func PostType(text string) string {
	return classify(postTypeRules, text, "general_update")
}

// Sentiment compares how many distinct positive and negative list words
// appear in the text; the majority wins and ties are neutral.
func Sentiment(text string) string {
	positive := positiveWords.hits(text)
	negative := negativeWords.hits(text)
	switch {
	case positive > negative:
		return "positive"
	case negative > positive:
		return "negative"
	default:
		return "neutral"
	}
}

// Category assigns the first matching content category, or "general".
func Category(text string) string {
	return classify(categoryRules, text, "general")
}

// IsPromotional reports whether the text contains sales vocabulary.
func IsPromotional(text string) bool {
	return promotionalWords.contains(text)
}

// IsQuestion reports whether the post asks its audience something.
func IsQuestion(text string) bool {
	return strings.Contains(text, "?") || strings.Contains(strings.ToLower(text), engagementPhrase)
}

// EngagementRate computes (likes+comments+shares)/views as a two-decimal
// percentage string. Zero views yields the "N/A" sentinel.
func EngagementRate(likes, comments, shares, views int) string {
	if views == 0 {
		return engagementRateNA
	}
	total := likes + comments + shares
	return fmt.Sprintf("%.2f%%", float64(total)/float64(views)*100)
}

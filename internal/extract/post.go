package extract

import (
	"strconv"
	"strings"
	"time"

	"github.com/octobees/linkedin-extractor/api/internal/entity"
)

// BuildPost assembles the legacy flat post record. It keeps the original,
// simpler shape: raw content truncated to 1000 characters, hashtags as a
// comma-joined string and engagement counts as digit strings.
func BuildPost(doc entity.Document, authorProfile string) entity.PostRecord {
	text := doc.Text

	return entity.PostRecord{
		URL:            doc.URL,
		AuthorName:     Name(text),
		AuthorProfile:  authorProfile,
		PostType:       "Post",
		Content:        FlatContent(text),
		PostedDate:     PostDate(text),
		Likes:          Likes(text),
		Comments:       Comments(text),
		Shares:         Shares(text),
		Views:          Views(text),
		MediaURLs:      "",
		Hashtags:       strings.Join(Hashtags(text), ", "),
		ExtractionDate: time.Now().UTC().Format(time.RFC3339),
		Status:         "Success",
		Error:          "",
	}
}

// BuildDetailedPost assembles the six-section nested post record. Section
// field order is fixed; serialized output must not reorder or rename fields.
func BuildDetailedPost(doc entity.Document, authorProfile string) entity.DetailedPost {
	text := doc.Text
	content := FullContent(text)

	likes := parseCount(Likes(text))
	comments := parseCount(Comments(text))
	shares := parseCount(Shares(text))
	views := parseCount(Views(text))

	return entity.DetailedPost{
		Metadata: entity.PostMetadata{
			PostURL:             doc.URL,
			PostID:              PostID(doc.URL),
			AuthorName:          Name(text),
			AuthorProfileURL:    authorProfile,
			PostedDate:          PostDate(text),
			ExtractionTimestamp: time.Now().UTC().Format(time.RFC3339),
		},
		Content: entity.PostContent{
			FullText:       content,
			Summary:        ContentSummary(text),
			ContentType:    ContentType(text),
			Language:       "en", // language detection is not wired up
			WordCount:      WordCount(content),
			CharacterCount: len(content),
		},
		Engagement: entity.PostEngagement{
			Likes:          likes,
			Comments:       comments,
			Shares:         shares,
			Views:          views,
			EngagementRate: EngagementRate(likes, comments, shares, views),
		},
		Media: entity.PostMedia{
			HasMedia:   HasMedia(text),
			MediaType:  MediaType(text),
			MediaURLs:  MediaURLs(text, doc.ImageURL),
			ImageCount: ImageCount(text),
			VideoCount: VideoCount(text),
		},
		Topics: entity.PostTopics{
			Hashtags: Hashtags(text),
			Mentions: Mentions(text),
			Links:    Links(text),
			Topics:   Topics(text),
			Keywords: Keywords(text),
		},
		Classification: entity.PostClassification{
			PostType:      PostType(text),
			Sentiment:     Sentiment(text),
			Category:      Category(text),
			IsPromotional: IsPromotional(text),
			IsQuestion:    IsQuestion(text),
		},
		RawData: entity.PostRawData{
			RawText: text,
			Source:  recordSource,
		},
	}
}

// parseCount converts an extracted digit string to a non-negative int,
// falling back to zero on anything unparseable.
func parseCount(value string) int {
	n, err := strconv.Atoi(value)
	if err != nil || n < 0 {
		return 0
	}
	return n
}

package entity

// PostRecord is the flat post shape appended to the Posts sheet (columns
// A:O). Engagement counts are kept as digit strings so the sheet receives
// them exactly as extracted.
type PostRecord struct {
	URL            string `json:"url"`
	AuthorName     string `json:"authorName"`
	AuthorProfile  string `json:"authorProfile"`
	PostType       string `json:"postType"`
	Content        string `json:"content"`
	PostedDate     string `json:"postedDate"`
	Likes          string `json:"likes"`
	Comments       string `json:"comments"`
	Shares         string `json:"shares"`
	Views          string `json:"views"`
	MediaURLs      string `json:"mediaUrls"`
	Hashtags       string `json:"hashtags"`
	ExtractionDate string `json:"extractionDate"`
	Status         string `json:"status"`
	Error          string `json:"error"`
}

// Row returns the ordered cell values for a sheet append.
func (r PostRecord) Row() []any {
	return []any{
		r.URL, r.AuthorName, r.AuthorProfile, r.PostType, r.Content,
		r.PostedDate, r.Likes, r.Comments, r.Shares, r.Views, r.MediaURLs,
		r.Hashtags, r.ExtractionDate, r.Status, r.Error,
	}
}

// DetailedPost is the six-section nested post shape returned by the detailed
// extraction intent. Section and field order are part of the API contract;
// consumers rely on the serialized layout staying stable.
type DetailedPost struct {
	Metadata       PostMetadata       `json:"metadata"`
	Content        PostContent        `json:"content"`
	Engagement     PostEngagement     `json:"engagement"`
	Media          PostMedia          `json:"media"`
	Topics         PostTopics         `json:"topics"`
	Classification PostClassification `json:"classification"`
	RawData        PostRawData        `json:"raw_data"`
}

// PostMetadata identifies the post and its author.
type PostMetadata struct {
	PostURL             string `json:"post_url"`
	PostID              string `json:"post_id"`
	AuthorName          string `json:"author_name"`
	AuthorProfileURL    string `json:"author_profile_url"`
	PostedDate          string `json:"posted_date"`
	ExtractionTimestamp string `json:"extraction_timestamp"`
}

// PostContent carries the denoised body and its derived measurements.
type PostContent struct {
	FullText       string `json:"full_text"`
	Summary        string `json:"summary"`
	ContentType    string `json:"content_type"`
	Language       string `json:"language"`
	WordCount      int    `json:"word_count"`
	CharacterCount int    `json:"character_count"`
}

// PostEngagement holds the parsed interaction counts. Counts are never
// negative; unparseable values default to zero. EngagementRate is a
// two-decimal percentage, or "N/A" when the view count is zero.
type PostEngagement struct {
	Likes          int    `json:"likes"`
	Comments       int    `json:"comments"`
	Shares         int    `json:"shares"`
	Views          int    `json:"views"`
	EngagementRate string `json:"engagement_rate"`
}

// PostMedia describes attached media signals. ImageCount and VideoCount
// count keyword occurrences in the text, not actual media items; they are an
// approximation.
type PostMedia struct {
	HasMedia   bool     `json:"has_media"`
	MediaType  string   `json:"media_type"`
	MediaURLs  []string `json:"media_urls"`
	ImageCount int      `json:"image_count"`
	VideoCount int      `json:"video_count"`
}

// PostTopics groups the token-level signals pulled from the text.
type PostTopics struct {
	Hashtags []string `json:"hashtags"`
	Mentions []string `json:"mentions"`
	Links    []string `json:"links"`
	Topics   []string `json:"topics"`
	Keywords []string `json:"keywords"`
}

// PostClassification carries the keyword-heuristic judgments.
type PostClassification struct {
	PostType      string `json:"post_type"`
	Sentiment     string `json:"sentiment"`
	Category      string `json:"category"`
	IsPromotional bool   `json:"is_promotional"`
	IsQuestion    bool   `json:"is_question"`
}

// PostRawData preserves the source text the record was derived from.
type PostRawData struct {
	RawText string `json:"raw_text"`
	Source  string `json:"source"`
}

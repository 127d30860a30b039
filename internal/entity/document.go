package entity

// Document is one raw result returned by the content source. Text may be
// empty; every downstream extractor degrades to its default in that case.
type Document struct {
	URL      string `json:"url"`
	Text     string `json:"text"`
	ImageURL string `json:"image,omitempty"`
}

package entity

// ExtractionLog records one extraction attempt, success or failure. One
// entry is appended to the Extraction Logs sheet (columns A:H) per attempt.
type ExtractionLog struct {
	Timestamp       string `json:"timestamp"`
	Type            string `json:"type"`
	SubjectURL      string `json:"subjectUrl"`
	Status          string `json:"status"`
	RecordCount     int    `json:"recordCount"`
	DurationSeconds string `json:"durationSeconds"`
	ErrorMessage    string `json:"errorMessage"`
	Channel         string `json:"channel"`
}

// Row returns the ordered cell values for a sheet append.
func (l ExtractionLog) Row() []any {
	return []any{
		l.Timestamp, l.Type, l.SubjectURL, l.Status, l.RecordCount,
		l.DurationSeconds, l.ErrorMessage, l.Channel,
	}
}

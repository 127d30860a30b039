package entity

// ProfileRecord is the flat profile shape appended to the Profiles sheet.
// Field order matters: Row must match the sheet's column layout (A:T).
type ProfileRecord struct {
	URL            string `json:"url"`
	Name           string `json:"name"`
	Headline       string `json:"headline"`
	Company        string `json:"company"`
	Title          string `json:"title"`
	Location       string `json:"location"`
	Summary        string `json:"summary"`
	Experience     string `json:"experience"`
	Education      string `json:"education"`
	Skills         string `json:"skills"`
	Connections    string `json:"connections"`
	ProfilePicture string `json:"profilePicture"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	Website        string `json:"website"`
	ExtractionDate string `json:"extractionDate"`
	LastUpdated    string `json:"lastUpdated"`
	Status         string `json:"status"`
	Error          string `json:"error"`
	Source         string `json:"source"`
}

// Row returns the ordered cell values for a sheet append.
func (r ProfileRecord) Row() []any {
	return []any{
		r.URL, r.Name, r.Headline, r.Company, r.Title, r.Location, r.Summary,
		r.Experience, r.Education, r.Skills, r.Connections, r.ProfilePicture,
		r.Email, r.Phone, r.Website, r.ExtractionDate, r.LastUpdated,
		r.Status, r.Error, r.Source,
	}
}

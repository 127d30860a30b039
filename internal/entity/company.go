package entity

// CompanyRecord is the flat company shape appended to the Companies sheet
// (columns A:P). EmployeeCount, FollowerCount and Logo are placeholders the
// current extraction never fills.
type CompanyRecord struct {
	URL            string `json:"url"`
	Name           string `json:"name"`
	Industry       string `json:"industry"`
	Size           string `json:"size"`
	Headquarters   string `json:"headquarters"`
	Website        string `json:"website"`
	Description    string `json:"description"`
	Specialties    string `json:"specialties"`
	Founded        string `json:"founded"`
	EmployeeCount  string `json:"employeeCount"`
	FollowerCount  string `json:"followerCount"`
	Logo           string `json:"logo"`
	ExtractionDate string `json:"extractionDate"`
	LastUpdated    string `json:"lastUpdated"`
	Status         string `json:"status"`
	Error          string `json:"error"`
}

// Row returns the ordered cell values for a sheet append.
func (r CompanyRecord) Row() []any {
	return []any{
		r.URL, r.Name, r.Industry, r.Size, r.Headquarters, r.Website,
		r.Description, r.Specialties, r.Founded, r.EmployeeCount,
		r.FollowerCount, r.Logo, r.ExtractionDate, r.LastUpdated,
		r.Status, r.Error,
	}
}

package extract

import (
	"time"

	"github.com/octobees/linkedin-extractor/api/internal/entity"
)

// BuildCompany assembles a flat company record from the raw text fetched for
// a company URL. Employee count, follower count and logo are placeholders.
func BuildCompany(subjectURL, text string) entity.CompanyRecord {
	now := time.Now().UTC().Format(time.RFC3339)

	return entity.CompanyRecord{
		URL:            subjectURL,
		Name:           CompanyName(text),
		Industry:       Industry(text),
		Size:           CompanySize(text),
		Headquarters:   Headquarters(text),
		Website:        Website(text),
		Description:    Description(text),
		Specialties:    Specialties(text),
		Founded:        Founded(text),
		EmployeeCount:  "",
		FollowerCount:  "",
		Logo:           "",
		ExtractionDate: now,
		LastUpdated:    now,
		Status:         "Success",
		Error:          "",
	}
}

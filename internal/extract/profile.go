package extract

import (
	"encoding/json"
	"time"

	"github.com/octobees/linkedin-extractor/api/internal/entity"
)

// recordSource identifies the content source on every emitted record.
const recordSource = "Exa AI"

// BuildProfile assembles a flat profile record from the raw text fetched for
// a profile URL. Connections, profile picture, phone and website start empty;
// email and phone may be filled later by enrichment.
func BuildProfile(subjectURL, text string) entity.ProfileRecord {
	now := time.Now().UTC().Format(time.RFC3339)

	// The stub extractors still serialize so the sheet columns stay
	// populated with explicit empty values.
	experience, _ := json.Marshal(Experience(text))
	education, _ := json.Marshal(Education(text))

	return entity.ProfileRecord{
		URL:            subjectURL,
		Name:           Name(text),
		Headline:       Headline(text),
		Company:        Company(text),
		Title:          Title(text),
		Location:       Location(text),
		Summary:        Summary(text),
		Experience:     string(experience),
		Education:      string(education),
		Skills:         Skills(text),
		Connections:    "",
		ProfilePicture: "",
		Email:          "",
		Phone:          "",
		Website:        "",
		ExtractionDate: now,
		LastUpdated:    now,
		Status:         "Success",
		Error:          "",
		Source:         recordSource,
	}
}

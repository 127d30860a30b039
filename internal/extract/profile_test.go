package extract

import (
	"testing"
	"time"
)

func TestBuildProfile(t *testing.T) {
	text := "Jane Smith\n" +
		"Senior Engineer at Acme Corp\n" +
		"San Francisco, CA\n" +
		"Building data platforms for a living."

	got := BuildProfile("https://linkedin.com/in/janesmith", text)

	if got.URL != "https://linkedin.com/in/janesmith" {
		t.Fatalf("URL=%q", got.URL)
	}
	if got.Name != "Jane Smith" {
		t.Fatalf("Name=%q", got.Name)
	}
	if got.Headline != "Senior Engineer at Acme Corp" {
		t.Fatalf("Headline=%q", got.Headline)
	}
	if got.Company != "Acme Corp" {
		t.Fatalf("Company=%q", got.Company)
	}
	if got.Title != "Senior Engineer" {
		t.Fatalf("Title=%q", got.Title)
	}
	if got.Location != "San Francisco, CA" {
		t.Fatalf("Location=%q", got.Location)
	}
	if got.Experience != "[]" || got.Education != "[]" {
		t.Fatalf("stub sections should serialize empty: %q %q", got.Experience, got.Education)
	}
	if got.Email != "" || got.Phone != "" {
		t.Fatalf("contact fields start empty: %q %q", got.Email, got.Phone)
	}
	if got.Status != "Success" || got.Error != "" {
		t.Fatalf("Status=%q Error=%q", got.Status, got.Error)
	}
	if got.Source != "Exa AI" {
		t.Fatalf("Source=%q", got.Source)
	}
	if got.ExtractionDate != got.LastUpdated {
		t.Fatalf("fresh records share one timestamp: %q vs %q", got.ExtractionDate, got.LastUpdated)
	}
	if _, err := time.Parse(time.RFC3339, got.ExtractionDate); err != nil {
		t.Fatalf("ExtractionDate not RFC3339: %v", err)
	}
}

func TestProfileRecordRow(t *testing.T) {
	row := BuildProfile("https://linkedin.com/in/janesmith", "Jane Smith").Row()
	if len(row) != 20 {
		t.Fatalf("profile rows span columns A:T, got %d cells", len(row))
	}
	if row[0] != "https://linkedin.com/in/janesmith" || row[1] != "Jane Smith" || row[19] != "Exa AI" {
		t.Fatalf("row order changed: %v", row)
	}
}

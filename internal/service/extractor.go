package service

import (
	"context"
	"fmt"
	"log"
	"regexp"
	"strings"
	"time"

	"github.com/octobees/linkedin-extractor/api/internal/entity"
	"github.com/octobees/linkedin-extractor/api/internal/extract"
	"github.com/octobees/linkedin-extractor/api/internal/hunter"
)

// Extraction types recorded in the attempt log.
const (
	TypeProfile       = "Profile"
	TypeCompany       = "Company"
	TypePosts         = "Posts"
	TypePostsDetailed = "Posts Detailed"
)

// Channels identify what triggered an extraction attempt.
const (
	ChannelWebhook   = "Webhook"
	ChannelScheduler = "Scheduler"
)

const (
	profileResultCount       = 1
	companyResultCount       = 1
	postsResultCount         = 10
	detailedPostsResultCount = 20
)

var slugSeparatorPattern = regexp.MustCompile(`\s+`)

// ContentSearcher fetches raw documents for a query string.
type ContentSearcher interface {
	Search(ctx context.Context, query string, numResults int) ([]entity.Document, error)
}

// EmailFinder looks up contact details for a domain and name pair.
type EmailFinder interface {
	FindContact(ctx context.Context, domain, firstName, lastName string) (hunter.Contact, error)
}

// RecordStore persists extracted records.
type RecordStore interface {
	AppendProfile(ctx context.Context, record entity.ProfileRecord) error
	AppendCompany(ctx context.Context, record entity.CompanyRecord) error
	AppendPosts(ctx context.Context, records []entity.PostRecord) error
	ListProfileURLs(ctx context.Context) ([]string, error)
}

// LogStore persists extraction attempt logs.
type LogStore interface {
	AppendLog(ctx context.Context, entry entity.ExtractionLog) error
}

// Extractor orchestrates the four extraction intents: fetch content, run the
// assembler, persist, and log the attempt. Parse misses never fail an
// attempt; upstream call failures abort the whole subject with a Failed log
// and no partial record.
type Extractor struct {
	search   ContentSearcher
	enricher EmailFinder
	store    RecordStore
	logs     LogStore
	channel  string
}

// NewExtractor wires the orchestrator. enricher may be nil, in which case
// profile email/phone stay empty.
func NewExtractor(search ContentSearcher, enricher EmailFinder, store RecordStore, logs LogStore) *Extractor {
	return &Extractor{
		search:   search,
		enricher: enricher,
		store:    store,
		logs:     logs,
		channel:  ChannelWebhook,
	}
}

// ForChannel returns a view of the extractor that stamps log entries with
// the given trigger channel.
func (s *Extractor) ForChannel(channel string) *Extractor {
	clone := *s
	clone.channel = channel
	return &clone
}

// ExtractProfile fetches content for a profile URL, assembles the record,
// attempts enrichment and appends the row.
func (s *Extractor) ExtractProfile(ctx context.Context, subjectURL string) (entity.ProfileRecord, error) {
	start := time.Now()

	doc, err := s.searchOne(ctx, subjectURL, profileResultCount)
	if err != nil {
		s.logAttempt(ctx, TypeProfile, subjectURL, start, 0, err)
		return entity.ProfileRecord{}, err
	}

	record := extract.BuildProfile(subjectURL, doc.Text)
	s.enrich(ctx, &record)

	if err := s.store.AppendProfile(ctx, record); err != nil {
		s.logAttempt(ctx, TypeProfile, subjectURL, start, 0, err)
		return entity.ProfileRecord{}, err
	}

	s.logAttempt(ctx, TypeProfile, subjectURL, start, 1, nil)
	return record, nil
}

// ExtractCompany fetches content for a company URL and appends the record.
func (s *Extractor) ExtractCompany(ctx context.Context, subjectURL string) (entity.CompanyRecord, error) {
	start := time.Now()

	doc, err := s.searchOne(ctx, subjectURL, companyResultCount)
	if err != nil {
		s.logAttempt(ctx, TypeCompany, subjectURL, start, 0, err)
		return entity.CompanyRecord{}, err
	}

	record := extract.BuildCompany(subjectURL, doc.Text)

	if err := s.store.AppendCompany(ctx, record); err != nil {
		s.logAttempt(ctx, TypeCompany, subjectURL, start, 0, err)
		return entity.CompanyRecord{}, err
	}

	s.logAttempt(ctx, TypeCompany, subjectURL, start, 1, nil)
	return record, nil
}

// ExtractPosts fetches recent posts for a subject URL and appends the flat
// records as one batch.
func (s *Extractor) ExtractPosts(ctx context.Context, subjectURL string) ([]entity.PostRecord, error) {
	start := time.Now()

	docs, err := s.search.Search(ctx, subjectURL+" posts", postsResultCount)
	if err != nil {
		s.logAttempt(ctx, TypePosts, subjectURL, start, 0, err)
		return nil, err
	}

	records := make([]entity.PostRecord, 0, len(docs))
	for _, doc := range docs {
		records = append(records, extract.BuildPost(doc, subjectURL))
	}

	if len(records) > 0 {
		if err := s.store.AppendPosts(ctx, records); err != nil {
			s.logAttempt(ctx, TypePosts, subjectURL, start, 0, err)
			return nil, err
		}
	}

	s.logAttempt(ctx, TypePosts, subjectURL, start, len(records), nil)
	return records, nil
}

// ExtractPostsDetailed fetches posts and assembles the six-section nested
// records. Detailed records are returned to the caller only; the sheet keeps
// the flat shape.
func (s *Extractor) ExtractPostsDetailed(ctx context.Context, subjectURL string) ([]entity.DetailedPost, error) {
	start := time.Now()

	docs, err := s.search.Search(ctx, subjectURL+" posts site:linkedin.com", detailedPostsResultCount)
	if err != nil {
		s.logAttempt(ctx, TypePostsDetailed, subjectURL, start, 0, err)
		return nil, err
	}

	records := make([]entity.DetailedPost, 0, len(docs))
	for _, doc := range docs {
		records = append(records, extract.BuildDetailedPost(doc, subjectURL))
	}

	s.logAttempt(ctx, TypePostsDetailed, subjectURL, start, len(records), nil)
	return records, nil
}

// AllResult bundles the outputs of a combined extraction.
type AllResult struct {
	Profile *entity.ProfileRecord `json:"profile,omitempty"`
	Company *entity.CompanyRecord `json:"company,omitempty"`
	Posts   []entity.PostRecord   `json:"posts,omitempty"`
}

// ExtractAll runs profile, company and posts extraction for one subject.
// The company URL is derived from the profile's extracted company name. The
// first upstream failure aborts the remaining steps.
func (s *Extractor) ExtractAll(ctx context.Context, subjectURL string, includeProfile, includeCompany, includePosts bool) (AllResult, error) {
	var result AllResult

	if includeProfile {
		profile, err := s.ExtractProfile(ctx, subjectURL)
		if err != nil {
			return result, err
		}
		result.Profile = &profile
	}

	if includeCompany && result.Profile != nil && result.Profile.Company != "" {
		companyURL := companyURLFromName(result.Profile.Company)
		company, err := s.ExtractCompany(ctx, companyURL)
		if err != nil {
			return result, err
		}
		result.Company = &company
	}

	if includePosts {
		posts, err := s.ExtractPosts(ctx, subjectURL)
		if err != nil {
			return result, err
		}
		result.Posts = posts
	}

	return result, nil
}

// ProfileURLs lists previously extracted profile subjects, used by the
// periodic updater.
func (s *Extractor) ProfileURLs(ctx context.Context) ([]string, error) {
	return s.store.ListProfileURLs(ctx)
}

// searchOne runs a single-result search and fails when the subject yields no
// content at all.
func (s *Extractor) searchOne(ctx context.Context, subjectURL string, numResults int) (entity.Document, error) {
	docs, err := s.search.Search(ctx, subjectURL, numResults)
	if err != nil {
		return entity.Document{}, err
	}
	if len(docs) == 0 {
		return entity.Document{}, fmt.Errorf("no content found for %s", subjectURL)
	}
	return docs[0], nil
}

// enrich fills email and phone from the enrichment lookup. Failures are
// isolated: the profile extraction succeeds either way.
func (s *Extractor) enrich(ctx context.Context, record *entity.ProfileRecord) {
	if s.enricher == nil || record.Name == "" || record.Company == "" {
		return
	}

	domain := hunter.DomainGuess(record.Company)
	if domain == "" {
		return
	}

	firstName, lastName := hunter.SplitName(record.Name)
	contact, err := s.enricher.FindContact(ctx, domain, firstName, lastName)
	if err != nil {
		log.Printf("enrichment failed for %s: %v", record.URL, err)
		return
	}

	if contact.Email != "" {
		record.Email = contact.Email
	}
	if contact.Phone != "" {
		record.Phone = contact.Phone
	}
}

func (s *Extractor) logAttempt(ctx context.Context, extractionType, subjectURL string, start time.Time, count int, cause error) {
	entry := entity.ExtractionLog{
		Timestamp:       time.Now().UTC().Format(time.RFC3339),
		Type:            extractionType,
		SubjectURL:      subjectURL,
		Status:          "Success",
		RecordCount:     count,
		DurationSeconds: fmt.Sprintf("%.2f", time.Since(start).Seconds()),
		Channel:         s.channel,
	}
	if cause != nil {
		entry.Status = "Failed"
		entry.ErrorMessage = cause.Error()
	}

	if err := s.logs.AppendLog(ctx, entry); err != nil {
		log.Printf("failed to record extraction log for %s: %v", subjectURL, err)
	}
}

func companyURLFromName(name string) string {
	slug := slugSeparatorPattern.ReplaceAllString(strings.ToLower(strings.TrimSpace(name)), "-")
	return "https://linkedin.com/company/" + slug
}

// FanoutLogs duplicates log appends across several sinks. Append errors from
// one sink do not stop the others; the first error is reported.
func FanoutLogs(stores ...LogStore) LogStore {
	return fanoutLogs(stores)
}

type fanoutLogs []LogStore

func (f fanoutLogs) AppendLog(ctx context.Context, entry entity.ExtractionLog) error {
	var firstErr error
	for _, store := range f {
		if err := store.AppendLog(ctx, entry); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

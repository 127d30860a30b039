package dto

// WebhookRequest is the shared payload of the extraction webhooks: the
// subject URL and the static shared secret.
type WebhookRequest struct {
	URL    string `json:"url"`
	Secret string `json:"secret"`
}

// ExtractAllRequest adds the per-step toggles of the combined extraction
// webhook. A nil toggle means the step runs; only an explicit false skips it.
type ExtractAllRequest struct {
	WebhookRequest
	IncludeProfile *bool `json:"includeProfile,omitempty"`
	IncludeCompany *bool `json:"includeCompany,omitempty"`
	IncludePosts   *bool `json:"includePosts,omitempty"`
}

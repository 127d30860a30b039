package handler

import (
	"context"
	"crypto/subtle"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/octobees/linkedin-extractor/api/internal/dto"
	"github.com/octobees/linkedin-extractor/api/internal/entity"
	"github.com/octobees/linkedin-extractor/api/internal/service"
)

// ExtractionRunner is the orchestrator surface the webhooks need.
type ExtractionRunner interface {
	ExtractProfile(ctx context.Context, subjectURL string) (entity.ProfileRecord, error)
	ExtractCompany(ctx context.Context, subjectURL string) (entity.CompanyRecord, error)
	ExtractPosts(ctx context.Context, subjectURL string) ([]entity.PostRecord, error)
	ExtractPostsDetailed(ctx context.Context, subjectURL string) ([]entity.DetailedPost, error)
	ExtractAll(ctx context.Context, subjectURL string, includeProfile, includeCompany, includePosts bool) (service.AllResult, error)
}

// WebhookHandler serves the extraction webhooks. Every endpoint expects the
// static shared secret in the request body; there is no further auth.
type WebhookHandler struct {
	svc    ExtractionRunner
	secret string
}

// NewWebhookHandler constructs the webhook handler.
func NewWebhookHandler(svc ExtractionRunner, secret string) *WebhookHandler {
	return &WebhookHandler{svc: svc, secret: secret}
}

// Profile handles POST /webhook/profile.
func (h *WebhookHandler) Profile(c echo.Context) error {
	req, err := h.authorize(c)
	if req == nil {
		return err
	}

	record, err := h.svc.ExtractProfile(c.Request().Context(), req.URL)
	if err != nil {
		return Error(c, http.StatusBadGateway, err.Error())
	}
	return Success(c, http.StatusOK, "profile extracted", record)
}

// Company handles POST /webhook/company.
func (h *WebhookHandler) Company(c echo.Context) error {
	req, err := h.authorize(c)
	if req == nil {
		return err
	}

	record, err := h.svc.ExtractCompany(c.Request().Context(), req.URL)
	if err != nil {
		return Error(c, http.StatusBadGateway, err.Error())
	}
	return Success(c, http.StatusOK, "company extracted", record)
}

// Posts handles POST /webhook/posts, the flat record variant.
func (h *WebhookHandler) Posts(c echo.Context) error {
	req, err := h.authorize(c)
	if req == nil {
		return err
	}

	records, err := h.svc.ExtractPosts(c.Request().Context(), req.URL)
	if err != nil {
		return Error(c, http.StatusBadGateway, err.Error())
	}
	return Success(c, http.StatusOK, "posts extracted", records)
}

// PostsDetailed handles POST /webhook/posts/detailed, the six-section
// nested record variant.
func (h *WebhookHandler) PostsDetailed(c echo.Context) error {
	req, err := h.authorize(c)
	if req == nil {
		return err
	}

	records, err := h.svc.ExtractPostsDetailed(c.Request().Context(), req.URL)
	if err != nil {
		return Error(c, http.StatusBadGateway, err.Error())
	}
	return Success(c, http.StatusOK, "detailed posts extracted", records)
}

// ExtractAll handles POST /webhook/extract-all.
func (h *WebhookHandler) ExtractAll(c echo.Context) error {
	var req dto.ExtractAllRequest
	if err := c.Bind(&req); err != nil {
		return Error(c, http.StatusBadRequest, "invalid payload")
	}
	if !h.secretMatches(req.Secret) {
		return Error(c, http.StatusUnauthorized, "unauthorized")
	}
	if req.URL == "" {
		return Error(c, http.StatusBadRequest, "url is required")
	}

	result, err := h.svc.ExtractAll(
		c.Request().Context(),
		req.URL,
		toggled(req.IncludeProfile),
		toggled(req.IncludeCompany),
		toggled(req.IncludePosts),
	)
	if err != nil {
		return Error(c, http.StatusBadGateway, err.Error())
	}
	return Success(c, http.StatusOK, "extraction complete", result)
}

// authorize binds the common webhook payload and checks the shared secret.
// A nil request means the rejection response has already been written and
// the handler should return the accompanying error as-is.
func (h *WebhookHandler) authorize(c echo.Context) (*dto.WebhookRequest, error) {
	var req dto.WebhookRequest
	if err := c.Bind(&req); err != nil {
		return nil, Error(c, http.StatusBadRequest, "invalid payload")
	}
	if !h.secretMatches(req.Secret) {
		return nil, Error(c, http.StatusUnauthorized, "unauthorized")
	}
	if req.URL == "" {
		return nil, Error(c, http.StatusBadRequest, "url is required")
	}
	return &req, nil
}

func (h *WebhookHandler) secretMatches(candidate string) bool {
	return subtle.ConstantTimeCompare([]byte(candidate), []byte(h.secret)) == 1
}

func toggled(flag *bool) bool {
	return flag == nil || *flag
}

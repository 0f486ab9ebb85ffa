package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/go-entity-vc/models"
	"github.com/go-resty/resty/v2"
)

// HTTPClientConfig configures the HTTP client of the remote versioned store
// bridge.
type HTTPClientConfig struct {
	BaseURL string
	Timeout time.Duration
}

type httpRemoteStore struct {
	client *resty.Client
}

// NewHTTPRemoteStore constructs a [RemoteStore] talking to the VC bridge
// service over HTTP. Commits of large snapshots can be slow, so the default
// timeout is intentionally generous.
func NewHTTPRemoteStore(cfg HTTPClientConfig) RemoteStore {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost:9171"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 60 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout)

	return &httpRemoteStore{client: cli}
}

func (h *httpRemoteStore) ListBranches(ctx context.Context, tenantID string) ([]models.Branch, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("tenantId", tenantID).
		Get("/api/repo/{tenantId}/branches")
	if err != nil {
		return nil, fmt.Errorf("list branches request: %w: %w", ErrRemoteStore, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var branches []models.Branch
	if err = json.Unmarshal(resp.Body(), &branches); err != nil {
		return nil, fmt.Errorf("decode branches response: %w", err)
	}

	return branches, nil
}

// commitRequest is the wire shape of one atomic commit.
type commitRequest struct {
	Branch      string                  `json:"branch"`
	VersionName string                  `json:"version_name"`
	Documents   []models.EntityDocument `json:"documents"`
}

func (h *httpRemoteStore) Commit(ctx context.Context, tenantID, branch, versionName string, documents []models.EntityDocument) (models.Version, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetPathParam("tenantId", tenantID).
		SetBody(commitRequest{
			Branch:      branch,
			VersionName: versionName,
			Documents:   documents,
		}).
		Post("/api/repo/{tenantId}/commit")
	if err != nil {
		return models.Version{}, fmt.Errorf("commit request: %w: %w", ErrRemoteStore, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Version{}, err
	}

	var version models.Version
	if err = json.Unmarshal(resp.Body(), &version); err != nil {
		return models.Version{}, fmt.Errorf("decode commit response: %w", err)
	}

	return version, nil
}

func (h *httpRemoteStore) ListVersions(ctx context.Context, tenantID, branch string, pageLink models.PageLink) (models.VersionPage, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("tenantId", tenantID).
		SetQueryParams(map[string]string{
			"branch":    branch,
			"page":      strconv.Itoa(pageLink.Page),
			"page_size": strconv.Itoa(pageLink.PageSize),
		}).
		Get("/api/repo/{tenantId}/versions")
	if err != nil {
		return models.VersionPage{}, fmt.Errorf("list versions request: %w: %w", ErrRemoteStore, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.VersionPage{}, err
	}

	var page models.VersionPage
	if err = json.Unmarshal(resp.Body(), &page); err != nil {
		return models.VersionPage{}, fmt.Errorf("decode versions response: %w", err)
	}

	return page, nil
}

func (h *httpRemoteStore) ListEntities(ctx context.Context, tenantID, versionID string, entityType models.EntityType) ([]models.EntityRef, error) {
	req := h.client.R().
		SetContext(ctx).
		SetPathParams(map[string]string{
			"tenantId":  tenantID,
			"versionId": versionID,
		})
	if entityType != "" {
		req.SetQueryParam("entity_type", string(entityType))
	}

	resp, err := req.Get("/api/repo/{tenantId}/versions/{versionId}/entities")
	if err != nil {
		return nil, fmt.Errorf("list entities request: %w: %w", ErrRemoteStore, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var refs []models.EntityRef
	if err = json.Unmarshal(resp.Body(), &refs); err != nil {
		return nil, fmt.Errorf("decode entities response: %w", err)
	}

	return refs, nil
}

func (h *httpRemoteStore) ReadDocument(ctx context.Context, tenantID, versionID string, ref models.EntityRef) (models.EntityDocument, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParams(map[string]string{
			"tenantId":  tenantID,
			"versionId": versionID,
		}).
		SetQueryParams(map[string]string{
			"entity_type": string(ref.EntityType),
			"external_id": ref.ExternalID,
		}).
		Get("/api/repo/{tenantId}/versions/{versionId}/document")
	if err != nil {
		return models.EntityDocument{}, fmt.Errorf("read document request: %w: %w", ErrRemoteStore, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.EntityDocument{}, err
	}

	var document models.EntityDocument
	if err = json.Unmarshal(resp.Body(), &document); err != nil {
		return models.EntityDocument{}, fmt.Errorf("decode document response: %w", err)
	}

	return document, nil
}

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))
	bodyLower := strings.ToLower(body)

	if resp.StatusCode() == http.StatusNotFound {
		switch {
		case strings.Contains(bodyLower, "branch"):
			return ErrBranchNotFound
		case strings.Contains(bodyLower, "document") || strings.Contains(bodyLower, "entity"):
			return ErrDocumentNotFound
		default:
			return ErrVersionNotFound
		}
	}

	if body == "" {
		body = http.StatusText(resp.StatusCode())
	}
	return fmt.Errorf("%w: http %d: %s", ErrRemoteStore, resp.StatusCode(), body)
}

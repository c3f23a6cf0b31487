package gallery

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"vincent-gallery/pkg/models"
)

// Client defines the interface for interacting with the gallery API
type Client interface {
	Submit(ctx context.Context, submission models.ContactSubmission) (*models.SubmissionResponse, error)
	Catalog(ctx context.Context) (*models.CatalogResponse, error)
	Painting(ctx context.Context, id int) (*models.PaintingResponse, error)
	Biography(ctx context.Context) (*models.BiographyResponse, error)
	Health(ctx context.Context) (*models.HealthStatus, error)
}

// APIError is returned for every non-2xx answer
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("server error: %d", e.StatusCode)
	}
	return fmt.Sprintf("server error: %d: %s", e.StatusCode, e.Message)
}

type clientImpl struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a new gallery API client. A zero timeout means requests
// wait until the server answers or the connection fails.
func NewClient(baseURL string, timeout time.Duration) Client {
	return &clientImpl{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (c *clientImpl) Submit(ctx context.Context, submission models.ContactSubmission) (*models.SubmissionResponse, error) {
	jsonPayload, err := json.Marshal(submission)
	if err != nil {
		return nil, fmt.Errorf("error creating payload: %w", err)
	}

	var response models.SubmissionResponse
	if err := c.do(ctx, http.MethodPost, "/api/submissions", jsonPayload, &response); err != nil {
		return nil, err
	}
	return &response, nil
}

func (c *clientImpl) Catalog(ctx context.Context) (*models.CatalogResponse, error) {
	var response models.CatalogResponse
	if err := c.do(ctx, http.MethodGet, "/api/catalog", nil, &response); err != nil {
		return nil, err
	}
	return &response, nil
}

func (c *clientImpl) Painting(ctx context.Context, id int) (*models.PaintingResponse, error) {
	var response models.PaintingResponse
	if err := c.do(ctx, http.MethodGet, "/api/catalog/"+strconv.Itoa(id), nil, &response); err != nil {
		return nil, err
	}
	return &response, nil
}

func (c *clientImpl) Biography(ctx context.Context) (*models.BiographyResponse, error) {
	var response models.BiographyResponse
	if err := c.do(ctx, http.MethodGet, "/api/biography", nil, &response); err != nil {
		return nil, err
	}
	return &response, nil
}

func (c *clientImpl) Health(ctx context.Context) (*models.HealthStatus, error) {
	var response models.HealthStatus
	if err := c.do(ctx, http.MethodGet, "/api/health", nil, &response); err != nil {
		return nil, err
	}
	return &response, nil
}

func (c *clientImpl) do(ctx context.Context, method, path string, payload []byte, out any) error {
	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("error creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("error calling %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("error reading response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		var failure models.ErrorResponse
		if json.Unmarshal(respBody, &failure) == nil {
			apiErr.Message = failure.Message
		}
		return apiErr
	}

	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("error parsing response: %w", err)
	}
	return nil
}

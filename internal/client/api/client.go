// Package api provides the typed HTTP client the terminal application uses to
// talk to the archeolens server.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"strings"
	"time"

	"github.com/archeolens/archeolens-server/internal/model"
)

// Error is a server-reported request failure carrying the HTTP status and the
// message from the response body.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("server returned %d: %s", e.Status, e.Message)
}

// Client calls the archeolens HTTP API. The zero value is not usable; create
// one with New. Token is optional and only needed for mutations.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// New creates a Client for the API rooted at baseURL, including the route
// prefix (for example "http://localhost:8080/api/v1").
func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// SetToken sets the bearer token sent with subsequent requests.
func (c *Client) SetToken(token string) {
	c.token = token
}

// Token returns the currently configured bearer token.
func (c *Client) Token() string {
	return c.token
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	return c.decodeResponse(resp, out)
}

func (c *Client) decodeResponse(resp *http.Response, out any) error {
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var errBody struct {
			Error string `json:"error"`
		}
		if err := json.Unmarshal(data, &errBody); err != nil || errBody.Error == "" {
			errBody.Error = http.StatusText(resp.StatusCode)
		}
		return &Error{Status: resp.StatusCode, Message: errBody.Error}
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// Health checks server liveness.
func (c *Client) Health(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/health", nil, nil)
}

// User is the profile subset returned by the auth endpoints.
type User struct {
	ID         string `json:"id"`
	Email      string `json:"email"`
	Name       string `json:"name"`
	Profession string `json:"profession"`
	Age        int    `json:"age"`
	Specialty  string `json:"specialty"`
}

// Signup registers a new researcher account.
func (c *Client) Signup(ctx context.Context, params model.SignupParams) (User, error) {
	var resp struct {
		User User `json:"user"`
	}
	err := c.do(ctx, http.MethodPost, "/signup", params, &resp)
	return resp.User, err
}

// Signin authenticates and returns the session token with the caller's
// profile. The token is also set on the client.
func (c *Client) Signin(ctx context.Context, email, password string) (string, User, error) {
	var resp struct {
		AccessToken string `json:"accessToken"`
		User        User   `json:"user"`
	}
	err := c.do(ctx, http.MethodPost, "/signin", map[string]string{
		"email":    email,
		"password": password,
	}, &resp)
	if err != nil {
		return "", User{}, err
	}
	c.token = resp.AccessToken
	return resp.AccessToken, resp.User, nil
}

// Session validates the configured token and returns the caller's profile.
func (c *Client) Session(ctx context.Context) (User, error) {
	var resp struct {
		User User `json:"user"`
	}
	err := c.do(ctx, http.MethodGet, "/session", nil, &resp)
	return resp.User, err
}

// ListSites returns every registered site.
func (c *Client) ListSites(ctx context.Context) ([]model.Site, error) {
	var resp struct {
		Sites []model.Site `json:"sites"`
	}
	err := c.do(ctx, http.MethodGet, "/sites", nil, &resp)
	return resp.Sites, err
}

// SearchSites filters sites by query against the given field (name, state or
// city).
func (c *Client) SearchSites(ctx context.Context, query, searchType string) ([]model.Site, error) {
	var resp struct {
		Sites []model.Site `json:"sites"`
	}
	path := "/sites/search?q=" + url.QueryEscape(query)
	if searchType != "" {
		path += "&type=" + url.QueryEscape(searchType)
	}
	err := c.do(ctx, http.MethodGet, path, nil, &resp)
	return resp.Sites, err
}

// GetSite returns a single site by ID.
func (c *Client) GetSite(ctx context.Context, id string) (model.Site, error) {
	var resp struct {
		Site model.Site `json:"site"`
	}
	err := c.do(ctx, http.MethodGet, "/sites/"+url.PathEscape(id), nil, &resp)
	return resp.Site, err
}

// CreateSite registers a new site owned by the caller.
func (c *Client) CreateSite(ctx context.Context, params model.SiteParams) (model.Site, error) {
	var resp struct {
		Site model.Site `json:"site"`
	}
	err := c.do(ctx, http.MethodPost, "/sites", params, &resp)
	return resp.Site, err
}

// UpdateSite modifies a site; empty fields keep their value.
func (c *Client) UpdateSite(ctx context.Context, id string, params model.SiteParams) (model.Site, error) {
	var resp struct {
		Site model.Site `json:"site"`
	}
	err := c.do(ctx, http.MethodPut, "/sites/"+url.PathEscape(id), params, &resp)
	return resp.Site, err
}

// DeleteSite removes a site owned by the caller.
func (c *Client) DeleteSite(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/sites/"+url.PathEscape(id), nil, nil)
}

// ListArtifacts returns every registered artifact.
func (c *Client) ListArtifacts(ctx context.Context) ([]model.Artifact, error) {
	var resp struct {
		Artifacts []model.Artifact `json:"artifacts"`
	}
	err := c.do(ctx, http.MethodGet, "/artifacts", nil, &resp)
	return resp.Artifacts, err
}

// SearchArtifacts filters artifacts by name or archaeologist.
func (c *Client) SearchArtifacts(ctx context.Context, query string) ([]model.Artifact, error) {
	var resp struct {
		Artifacts []model.Artifact `json:"artifacts"`
	}
	err := c.do(ctx, http.MethodGet, "/artifacts/search?q="+url.QueryEscape(query), nil, &resp)
	return resp.Artifacts, err
}

// GetArtifact returns a single artifact by ID.
func (c *Client) GetArtifact(ctx context.Context, id string) (model.Artifact, error) {
	var resp struct {
		Artifact model.Artifact `json:"artifact"`
	}
	err := c.do(ctx, http.MethodGet, "/artifacts/"+url.PathEscape(id), nil, &resp)
	return resp.Artifact, err
}

// CreateArtifact registers a new artifact owned by the caller.
func (c *Client) CreateArtifact(ctx context.Context, params model.ArtifactParams) (model.Artifact, error) {
	var resp struct {
		Artifact model.Artifact `json:"artifact"`
	}
	err := c.do(ctx, http.MethodPost, "/artifacts", params, &resp)
	return resp.Artifact, err
}

// UpdateArtifact modifies an artifact; empty fields keep their value.
func (c *Client) UpdateArtifact(ctx context.Context, id string, params model.ArtifactParams) (model.Artifact, error) {
	var resp struct {
		Artifact model.Artifact `json:"artifact"`
	}
	err := c.do(ctx, http.MethodPut, "/artifacts/"+url.PathEscape(id), params, &resp)
	return resp.Artifact, err
}

// DeleteArtifact removes an artifact owned by the caller.
func (c *Client) DeleteArtifact(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/artifacts/"+url.PathEscape(id), nil, nil)
}

// SearchArchaeologists returns the researcher directory, optionally widened
// by a name query.
func (c *Client) SearchArchaeologists(ctx context.Context, query string) ([]model.Archaeologist, error) {
	var resp struct {
		Archaeologists []model.Archaeologist `json:"archaeologists"`
	}
	err := c.do(ctx, http.MethodGet, "/archaeologists?q="+url.QueryEscape(query), nil, &resp)
	return resp.Archaeologists, err
}

// UploadResult carries the stored name and signed URL of an uploaded photo.
type UploadResult struct {
	PhotoURL string `json:"photoUrl"`
	FileName string `json:"fileName"`
}

// UploadPhoto sends an image as multipart form data and returns its signed
// URL.
func (c *Client) UploadPhoto(ctx context.Context, fileName, contentType string, reader io.Reader) (UploadResult, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename=%q`, fileName))
	header.Set("Content-Type", contentType)
	part, err := mw.CreatePart(header)
	if err != nil {
		return UploadResult{}, fmt.Errorf("failed to build upload: %w", err)
	}
	if _, err := io.Copy(part, reader); err != nil {
		return UploadResult{}, fmt.Errorf("failed to read photo: %w", err)
	}
	if err := mw.Close(); err != nil {
		return UploadResult{}, fmt.Errorf("failed to finalize upload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/upload-photo", &buf)
	if err != nil {
		return UploadResult{}, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return UploadResult{}, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	var result UploadResult
	if err := c.decodeResponse(resp, &result); err != nil {
		return UploadResult{}, err
	}
	return result, nil
}

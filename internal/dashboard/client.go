package dashboard

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/pkg/errors"

	"pallet-returns-dashboard/internal/models"
)

// API is the record service the dashboard talks to.
type API interface {
	List(ctx context.Context) ([]models.ReturnRequest, error)
	Get(ctx context.Context, id string) (models.ReturnRequest, error)
	Create(ctx context.Context, req models.CreateReturnRequest) (models.ReturnRequest, error)
	Update(ctx context.Context, id string, patch models.ReturnPatch) (models.ReturnRequest, error)
	Delete(ctx context.Context, id string) error
}

// APIError is a non-2xx answer from the REST API.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("returns api: %d %s", e.StatusCode, e.Message)
}

// Client calls the /returns REST API over HTTP.
type Client struct {
	BaseURL string
	HTTP    *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		HTTP:    &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *Client) List(ctx context.Context) ([]models.ReturnRequest, error) {
	var out []models.ReturnRequest
	if err := c.do(ctx, http.MethodGet, "/returns", nil, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []models.ReturnRequest{}
	}
	return out, nil
}

func (c *Client) Get(ctx context.Context, id string) (models.ReturnRequest, error) {
	var out models.ReturnRequest
	err := c.do(ctx, http.MethodGet, "/returns/"+url.PathEscape(id), nil, &out)
	return out, err
}

func (c *Client) Create(ctx context.Context, req models.CreateReturnRequest) (models.ReturnRequest, error) {
	var out models.ReturnRequest
	err := c.do(ctx, http.MethodPost, "/returns", req, &out)
	return out, err
}

func (c *Client) Update(ctx context.Context, id string, patch models.ReturnPatch) (models.ReturnRequest, error) {
	var out struct {
		Success bool                 `json:"success"`
		Updated models.ReturnRequest `json:"updated"`
	}
	if err := c.do(ctx, http.MethodPut, "/returns/"+url.PathEscape(id), patch, &out); err != nil {
		return models.ReturnRequest{}, err
	}
	return out.Updated, nil
}

func (c *Client) Delete(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/returns/"+url.PathEscape(id), nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return errors.Wrap(err, "encode request body")
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, reader)
	if err != nil {
		return errors.Wrap(err, "build request")
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return errors.Wrapf(err, "%s %s", method, path)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var apiErr struct {
			Error string `json:"error"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&apiErr)
		if apiErr.Error == "" {
			apiErr.Error = http.StatusText(resp.StatusCode)
		}
		return &APIError{StatusCode: resp.StatusCode, Message: apiErr.Error}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.Wrapf(err, "decode %s %s response", method, path)
	}
	return nil
}

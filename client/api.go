package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/Mohdivswa-71124/Queue-Reporter/models"
	"github.com/Mohdivswa-71124/Queue-Reporter/server"
)

const contentType = "application/json"

// NetworkError is a transport-level failure reaching the server, as
// opposed to the server rejecting the request. The distinction drives
// which notice the user sees.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string { return fmt.Sprintf("network error: %v", e.Err) }

func (e *NetworkError) Unwrap() error { return e.Err }

// RejectionError is a non-2xx response from the server, carrying the
// response body for display.
type RejectionError struct {
	StatusCode int
	Body       string
}

func (e *RejectionError) Error() string {
	return fmt.Sprintf("server rejected request (%d): %s", e.StatusCode, e.Body)
}

// API is an HTTP client for the queue reporter server.
type API struct {
	baseURL string
	client  *http.Client
}

// NewAPI creates an API client for the given server base URL.
func NewAPI(baseURL string) *API {
	return &API{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

// SubmitReport posts one report. A transport failure comes back as
// *NetworkError, a non-2xx response as *RejectionError.
func (a *API) SubmitReport(ctx context.Context, args models.ReportArgs) error {
	buf, err := json.Marshal(args)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		a.baseURL+server.EndPointReport, bytes.NewReader(buf))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", contentType)

	resp, err := a.client.Do(req)
	if err != nil {
		return &NetworkError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(resp.Body)
		return &RejectionError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(body))}
	}
	return nil
}

// FetchQueues retrieves the full report list in insertion order.
func (a *API) FetchQueues(ctx context.Context) ([]models.QueueReport, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		a.baseURL+server.EndPointQueues, nil)
	if err != nil {
		return nil, err
	}

	resp, err := a.client.Do(req)
	if err != nil {
		return nil, &NetworkError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, &RejectionError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(body))}
	}

	var reports []models.QueueReport
	if err := json.NewDecoder(resp.Body).Decode(&reports); err != nil {
		return nil, err
	}
	return reports, nil
}

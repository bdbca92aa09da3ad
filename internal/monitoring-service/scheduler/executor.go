package scheduler

import (
	"context"
	"io"
	"net/http"
	"strings"
	"time"
)

// CheckOutcome is either Success or Failure.
type CheckOutcome interface {
	isCheckOutcome()
}

// Success means a response arrived, whatever its status code.
type Success struct {
	StatusCode int
	Body       string
}

// Failure means the request never produced a usable response.
type Failure struct {
	ErrorDetail string
}

func (Success) isCheckOutcome() {}
func (Failure) isCheckOutcome() {}

type CheckExecutor interface {
	Execute(ctx context.Context, url string) CheckOutcome
}

type httpCheckExecutor struct {
	client       *http.Client
	maxBodyBytes int64
}

// Execute performs a single GET, there is no retry. Transport errors are
// returned as Failure and never as an error.
func (e *httpCheckExecutor) Execute(ctx context.Context, url string) CheckOutcome {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return Failure{ErrorDetail: err.Error()}
	}
	resp, err := e.client.Do(req)
	if err != nil {
		return Failure{ErrorDetail: err.Error()}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, e.maxBodyBytes))
	if err != nil {
		return Failure{ErrorDetail: err.Error()}
	}
	return Success{
		StatusCode: resp.StatusCode,
		Body:       sanitizeBody(body),
	}
}

// sanitizeBody makes the payload storable in a postgres text column.
func sanitizeBody(b []byte) string {
	s := strings.ToValidUTF8(string(b), "�")
	return strings.ReplaceAll(s, "\x00", "")
}

func NewHTTPCheckExecutor(requestTimeout time.Duration, maxBodyBytes int64) CheckExecutor {
	return &httpCheckExecutor{
		client: &http.Client{
			Timeout: requestTimeout,
		},
		maxBodyBytes: maxBodyBytes,
	}
}

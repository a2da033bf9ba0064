package redeploy

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"translatorbot/internal/application"
)

var _ application.RedeployTrigger = (*HTTPTrigger)(nil)

// HTTPTrigger fires a bare POST at the hosting platform's redeploy hook.
// The response body is ignored.
type HTTPTrigger struct {
	url        string
	httpClient *http.Client
}

func NewHTTPTrigger(url string) *HTTPTrigger {
	return &HTTPTrigger{url: url, httpClient: &http.Client{Timeout: 30 * time.Second}}
}

func (t *HTTPTrigger) Trigger(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.url, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	resp, err := t.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("redeploy request: %w", err)
	}
	io.Copy(io.Discard, resp.Body)
	resp.Body.Close()
	return nil
}

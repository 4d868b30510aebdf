package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/cloudix/coindesk/internal/config"
	"github.com/cloudix/coindesk/internal/logger"
)

// newPanelClient builds the shared resty client pointed at the panel.
func newPanelClient(cfg config.ClientPanel, log *logger.Logger) *resty.Client {
	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	return resty.New().
		SetBaseURL(strings.TrimRight(cfg.URL, "/")).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json").
		SetHeader("Content-Type", "application/json").
		OnAfterResponse(func(_ *resty.Client, resp *resty.Response) error {
			log.Debug().
				Str("method", resp.Request.Method).
				Str("url", resp.Request.URL).
				Int("status", resp.StatusCode()).
				Dur("elapsed", resp.Time()).
				Msg("panel call")
			return nil
		})
}

// mapAPIError converts a non-2xx panel response into a [RemoteAPIError]
// carrying the first structured error detail, if the body has one.
func mapAPIError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	var envelope struct {
		Errors []struct {
			Code   string `json:"code"`
			Status string `json:"status"`
			Detail string `json:"detail"`
		} `json:"errors"`
	}

	detail := ""
	if err := json.Unmarshal(resp.Body(), &envelope); err == nil && len(envelope.Errors) > 0 {
		detail = envelope.Errors[0].Detail
	}

	return &RemoteAPIError{Status: resp.StatusCode(), Detail: detail}
}

// decodeBody parses a 2xx response body into dest, failing fast with
// [ErrMalformedResponse] on shape mismatch instead of propagating
// zero-valued fields downstream.
func decodeBody(body []byte, dest any) error {
	if err := json.Unmarshal(body, dest); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	return nil
}

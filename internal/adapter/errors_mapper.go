package adapter

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

// maxErrorBody caps how much of a webhook reply ends up in an error message.
// Chat and automation hooks often answer with whole HTML pages.
const maxErrorBody = 256

var webhookStatusErrors = map[int]error{
	http.StatusBadRequest:      ErrBadRequest,
	http.StatusUnauthorized:    ErrUnauthorized,
	http.StatusForbidden:       ErrUnauthorized,
	http.StatusNotFound:        ErrNotFound,
	http.StatusGone:            ErrNotFound,
	http.StatusTooManyRequests: ErrTooManyRequests,
}

// mapHTTPError turns a non-2xx webhook reply into an error carrying the
// (truncated) reply body.
func mapHTTPError(resp *resty.Response) error {
	status := resp.StatusCode()
	if status >= http.StatusOK && status < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))
	if len(body) > maxErrorBody {
		body = body[:maxErrorBody] + "..."
	}

	if sentinel, ok := webhookStatusErrors[status]; ok {
		return fmt.Errorf("%w: %s", sentinel, body)
	}
	if status >= http.StatusInternalServerError {
		return fmt.Errorf("%w: %s", ErrInternalServerError, body)
	}

	if body == "" {
		body = http.StatusText(status)
	}
	return fmt.Errorf("http %d: %s", status, body)
}

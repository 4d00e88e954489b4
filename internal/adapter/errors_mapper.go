package adapter

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

var statusErrors = map[int]error{
	http.StatusBadRequest:          ErrBadRequest,
	http.StatusNotFound:            ErrNotFound,
	http.StatusInternalServerError: ErrInternalServerError,
	http.StatusBadGateway:          ErrBadGateway,
}

// mapHTTPError turns a non-2xx response for the table at path into a
// sentinel error. The response body, or the status text when empty, is
// kept as detail.
func mapHTTPError(resp *resty.Response, path string) error {
	status := resp.StatusCode()
	if status >= http.StatusOK && status < http.StatusMultipleChoices {
		return nil
	}

	detail := strings.TrimSpace(string(resp.Body()))
	if detail == "" {
		detail = http.StatusText(status)
	}

	if target, ok := statusErrors[status]; ok {
		return fmt.Errorf("%w: get %s: %s", target, path, detail)
	}
	return fmt.Errorf("%w %d: get %s: %s", ErrUnexpectedStatus, status, path, detail)
}

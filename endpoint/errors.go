package endpoint

import (
	"bytes"
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"

	"github.com/kbukum/apiclient/errors"
	"github.com/kbukum/apiclient/httpclient"
)

// PayloadError is returned instead of the transport error when
// ExtractCatchData is set and the failure carried a response.
type PayloadError struct {
	// Payload is the decoded error response body.
	Payload any
	// StatusCode is the HTTP status of the error response.
	StatusCode int
	// Err is the original transport error.
	Err error
}

func (e *PayloadError) Error() string {
	return fmt.Sprintf("endpoint: HTTP %d: %v", e.StatusCode, e.Payload)
}

func (e *PayloadError) Unwrap() error { return e.Err }

// IsCancel reports whether err is a cancellation: a vetoed request, a
// transport cancellation or a canceled context.
func IsCancel(err error) bool {
	return errors.IsCanceled(err) ||
		httpclient.IsCanceled(err) ||
		stderrors.Is(err, context.Canceled)
}

// Payload decodes a response body: JSON when it parses, the raw text
// otherwise, nil when empty. JSON numbers are kept as json.Number so
// 64-bit integers survive.
func Payload(resp *httpclient.Response) any {
	if resp == nil || len(resp.Body) == 0 {
		return nil
	}
	if v, ok := decodeJSON(resp.Body); ok {
		return v
	}
	return string(resp.Body)
}

func decodeJSON(body []byte) (any, bool) {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, false
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, false
	}
	return v, true
}

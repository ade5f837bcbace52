package medalforge

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"syscall"

	"github.com/mailru/easyjson"
	"github.com/mailru/easyjson/jlexer"
)

// APIError is returned when the server responds with a non-2xx status.
type APIError struct {
	StatusCode int
	// Message is body.message, then body.error, then the HTTP status text.
	Message string
	// Code is body.code. Numeric codes are kept in their decimal form.
	Code    string
	Details interface{}
	// Body is the raw response body.
	Body string
}

func (e *APIError) Error() string {
	info := []string{fmt.Sprintf("HTTP %d", e.StatusCode)}
	if e.Code != "" {
		info = append(info, "Code "+e.Code)
	}
	return fmt.Sprintf("%s (%s)", e.Message, strings.Join(info, ", "))
}

// TimeoutError is returned when a request exceeds its time budget.
type TimeoutError struct {
	Err error
}

func (e *TimeoutError) Error() string {
	return "request timed out: " + e.Err.Error()
}

func (e *TimeoutError) Unwrap() error { return e.Err }

// NetworkError is returned when the server could not be reached or the
// connection broke before a response was read.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return "network error: " + e.Err.Error()
}

func (e *NetworkError) Unwrap() error { return e.Err }

// UnknownError wraps anything that does not fit the other kinds.
type UnknownError struct {
	Err error
}

func (e *UnknownError) Error() string {
	return "unknown error: " + e.Err.Error()
}

func (e *UnknownError) Unwrap() error { return e.Err }

// ConfigurationError is returned by NewClient before any request is made.
type ConfigurationError struct {
	Field  string
	Reason string
	Err    error
}

func (e *ConfigurationError) Error() string {
	if e.Field == "" {
		return "invalid configuration: " + e.Reason
	}
	return fmt.Sprintf("invalid configuration: %s %s", e.Field, e.Reason)
}

func (e *ConfigurationError) Unwrap() error { return e.Err }

func verify(resp *http.Response, body []byte) error {
	if resp.StatusCode >= http.StatusOK && resp.StatusCode < http.StatusMultipleChoices {
		return nil
	}
	return newAPIError(resp, body)
}

func newAPIError(resp *http.Response, body []byte) *APIError {
	apiErr := &APIError{
		StatusCode: resp.StatusCode,
		Message:    statusText(resp),
		Body:       string(body),
	}

	var eb errorBody
	if len(body) == 0 || easyjson.Unmarshal(body, &eb) != nil {
		return apiErr
	}

	switch {
	case eb.Message != "":
		apiErr.Message = eb.Message
	case eb.Error != "":
		apiErr.Message = eb.Error
	}
	apiErr.Code = eb.Code
	apiErr.Details = eb.Details
	return apiErr
}

func statusText(resp *http.Response) string {
	if text := http.StatusText(resp.StatusCode); text != "" {
		return text
	}
	// "599 Custom Reason" -> "Custom Reason"
	if _, reason, ok := strings.Cut(resp.Status, " "); ok && reason != "" {
		return reason
	}
	return "HTTP " + strconv.Itoa(resp.StatusCode)
}

// errorBody is the optional JSON document servers send with a failure.
type errorBody struct {
	Message string
	Error   string
	Code    string
	Details interface{}
}

func (b *errorBody) UnmarshalEasyJSON(in *jlexer.Lexer) {
	isTopLevel := in.IsStart()
	if in.IsNull() {
		in.Skip()
		return
	}
	in.Delim('{')
	for !in.IsDelim('}') {
		key := in.UnsafeFieldName(false)
		in.WantColon()
		if in.IsNull() {
			in.Skip()
			in.WantComma()
			continue
		}
		switch key {
		case "message":
			b.Message = scalarString(in.Interface())
		case "error":
			b.Error = scalarString(in.Interface())
		case "code":
			b.Code = scalarString(in.Interface())
		case "details":
			b.Details = in.Interface()
		default:
			in.SkipRecursive()
		}
		in.WantComma()
	}
	in.Delim('}')
	if isTopLevel {
		in.Consumed()
	}
}

func scalarString(v interface{}) string {
	switch v := v.(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	default:
		buf, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprint(v)
		}
		return string(buf)
	}
}

// normalizeError maps any failure from the transport into one of the
// exported error kinds. Already normalized errors pass through.
func normalizeError(err error) error {
	if err == nil {
		return nil
	}

	var (
		apiErr     *APIError
		timeoutErr *TimeoutError
		networkErr *NetworkError
		unknownErr *UnknownError
		configErr  *ConfigurationError
	)
	switch {
	case errors.As(err, &apiErr), errors.As(err, &timeoutErr), errors.As(err, &networkErr),
		errors.As(err, &unknownErr), errors.As(err, &configErr):
		return err
	case errors.Is(err, context.DeadlineExceeded):
		return &TimeoutError{Err: err}
	case errors.Is(err, context.Canceled):
		return &UnknownError{Err: err}
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return &TimeoutError{Err: err}
	}

	var (
		opErr  *net.OpError
		dnsErr *net.DNSError
		urlErr *url.Error
	)
	switch {
	case errors.As(err, &opErr), errors.As(err, &dnsErr),
		errors.Is(err, syscall.ECONNREFUSED), errors.Is(err, syscall.ECONNRESET),
		errors.Is(err, io.EOF), errors.Is(err, io.ErrUnexpectedEOF):
		return &NetworkError{Err: err}
	case errors.As(err, &urlErr):
		return &NetworkError{Err: err}
	}

	return &UnknownError{Err: err}
}

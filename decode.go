package cpl

import (
	"context"
	"io"
	"net/http"
	"reflect"
	"strconv"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	"github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"
	"github.com/valyala/bytebufferpool"
)

// Feeds are small; anything past this bound is a broken response.
const maxBodyBytes = 6 << 20

var envelopeValidator = validator.New(validator.WithRequiredStructEnabled())

func init() {
	// Report feed field names, not Go struct field names.
	envelopeValidator.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})
}

// getJSON executes one request and decodes the 2xx body into target.
// Unknown fields are ignored; missing required fields and non-2xx statuses
// come back classified. target must carry validate tags on its required
// fields.
func (c *Client) getJSON(ctx context.Context, spec requestSpec, target any) error {
	if err := c.checkOpen(spec.op); err != nil {
		return err
	}

	req, err := c.newRequest(ctx, spec)
	if err != nil {
		return err
	}

	c.logger.DebugContext(ctx, "cpl feed request", "op", spec.op, "url", sanitizeSensitiveText(spec.url(), c.apiKey))

	resp, err := c.doer.Do(req)
	if err != nil {
		wrapped := errors.Wrapf(ErrTransport, "%s: %s", spec.op, sanitizeSensitiveText(err.Error(), c.apiKey))
		c.logger.WarnContext(ctx, "cpl feed request failed", "op", spec.op, "error", wrapped)
		return wrapped
	}
	defer resp.Body.Close()

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)
	if _, err := buf.ReadFrom(io.LimitReader(resp.Body, maxBodyBytes)); err != nil {
		return errors.Wrapf(ErrTransport, "%s: read response body: %v", spec.op, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		classified := classifyStatus(spec.op, resp.StatusCode, resp.Header, buf.B)
		c.logger.WarnContext(ctx, "cpl feed non-2xx", "op", spec.op, "status_code", resp.StatusCode)
		return classified
	}

	if err := sonic.Unmarshal(buf.B, target); err != nil {
		return &MalformedResponseError{Op: spec.op, Cause: err}
	}

	if err := envelopeValidator.Struct(target); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			return &MalformedResponseError{Op: spec.op, Field: fieldPath(fieldErrs[0])}
		}
		return &MalformedResponseError{Op: spec.op, Cause: err}
	}

	return nil
}

func classifyStatus(op string, statusCode int, header http.Header, body []byte) error {
	if statusCode == http.StatusTooManyRequests {
		return &RateLimitError{Op: op, RetryAfter: parseRetryAfter(header.Get("Retry-After"))}
	}
	return &StatusError{Op: op, StatusCode: statusCode, Body: abbreviateBody(body)}
}

// parseRetryAfter accepts the two forms RFC 9110 allows: delay seconds and
// an HTTP date.
func parseRetryAfter(value string) time.Duration {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0
	}
	if seconds, err := strconv.Atoi(value); err == nil {
		if seconds <= 0 {
			return 0
		}
		return time.Duration(seconds) * time.Second
	}
	if at, err := http.ParseTime(value); err == nil {
		if wait := time.Until(at); wait > 0 {
			return wait
		}
	}
	return 0
}

func abbreviateBody(raw []byte) string {
	const limit = 256
	body := strings.TrimSpace(string(raw))
	if len(body) > limit {
		return body[:limit] + "..."
	}
	return body
}

// fieldPath strips the envelope type prefix from a validator namespace so
// errors name the feed field, not the Go struct.
func fieldPath(fieldErr validator.FieldError) string {
	namespace := fieldErr.Namespace()
	if idx := strings.Index(namespace, "."); idx >= 0 {
		return namespace[idx+1:]
	}
	return fieldErr.Field()
}

package cpl

import (
	"bytes"
	"io"
	"net/http"
	"time"

	"github.com/valyala/fasthttp"
)

// FasthttpDoer adapts a fasthttp.Client to the Doer seam for callers that
// already run a fasthttp connection pool. Only the request shapes this SDK
// produces are supported: GET with no body.
type FasthttpDoer struct {
	Client  *fasthttp.Client
	Timeout time.Duration
}

// NewFasthttpDoer returns a Doer backed by a dedicated fasthttp client.
func NewFasthttpDoer(timeout time.Duration) *FasthttpDoer {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &FasthttpDoer{
		Client:  &fasthttp.Client{ReadTimeout: timeout, WriteTimeout: timeout},
		Timeout: timeout,
	}
}

func (d *FasthttpDoer) Do(req *http.Request) (*http.Response, error) {
	freq := fasthttp.AcquireRequest()
	fresp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(freq)
	defer fasthttp.ReleaseResponse(fresp)

	freq.SetRequestURI(req.URL.String())
	freq.Header.SetMethod(req.Method)
	for key, values := range req.Header {
		for _, value := range values {
			freq.Header.Add(key, value)
		}
	}

	deadline := time.Now().Add(d.Timeout)
	if ctxDeadline, ok := req.Context().Deadline(); ok && ctxDeadline.Before(deadline) {
		deadline = ctxDeadline
	}
	if err := d.Client.DoDeadline(freq, fresp, deadline); err != nil {
		return nil, err
	}

	header := make(http.Header)
	fresp.Header.VisitAll(func(key, value []byte) {
		header.Add(string(key), string(value))
	})

	// Copy the body out; fresp is recycled on return.
	body := append([]byte(nil), fresp.Body()...)
	return &http.Response{
		StatusCode:    fresp.StatusCode(),
		Status:        http.StatusText(fresp.StatusCode()),
		Header:        header,
		Body:          io.NopCloser(bytes.NewReader(body)),
		ContentLength: int64(len(body)),
		Request:       req,
	}, nil
}

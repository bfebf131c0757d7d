package gluster

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"time"
)

// Response is the transport outcome the gateway works with: status,
// headers and the fully read body.
type Response struct {
	Status int
	Header http.Header
	Body   []byte
}

// Sender issues one HTTP request and returns the raw outcome. The
// gateway owns request construction and response classification; the
// sender owns nothing but the exchange itself.
type Sender interface {
	Send(ctx context.Context, method, url string, header http.Header, body []byte) (*Response, error)
}

type httpSender struct {
	client *http.Client
}

// NewHTTPSender returns a Sender backed by net/http.
func NewHTTPSender(timeout time.Duration) Sender {
	return &httpSender{client: &http.Client{Timeout: timeout}}
}

func (s *httpSender) Send(ctx context.Context, method, url string, header http.Header, body []byte) (*Response, error) {
	var reader io.Reader
	if len(body) > 0 {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return nil, err
	}
	for k, values := range header {
		for _, v := range values {
			req.Header.Add(k, v)
		}
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	return &Response{
		Status: resp.StatusCode,
		Header: resp.Header,
		Body:   data,
	}, nil
}

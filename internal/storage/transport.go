package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
)

var (
	// ErrRequestTimeout marks an upload whose timeout fired before the
	// response arrived.
	ErrRequestTimeout = errors.New("request timed out")

	// ErrAborted marks an upload whose abort signal had already fired
	// before the request was dispatched.
	ErrAborted = errors.New("request aborted")
)

// Request headers the underlying fetch primitive manages itself; forwarding
// stale values breaks signing.
var strippedHeaders = []string{"Host", "Content-Length"}

// Transport bridges the S3 client to a plain HTTP doer. Each request races
// against a timeout, and a context that is already done fails the request
// without dispatching it. There is no mid-flight abort of a dispatched
// request beyond the timeout race.
type Transport struct {
	base    aws.HTTPClient
	timeout time.Duration
}

// NewTransport wraps base with a per-request timeout. A zero base falls back
// to http.DefaultClient; a zero timeout disables the race.
func NewTransport(base aws.HTTPClient, timeout time.Duration) *Transport {
	if base == nil {
		base = http.DefaultClient
	}
	return &Transport{base: base, timeout: timeout}
}

func (t *Transport) Do(req *http.Request) (*http.Response, error) {
	if err := req.Context().Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAborted, err)
	}

	for _, h := range strippedHeaders {
		req.Header.Del(h)
	}

	if t.timeout <= 0 {
		return t.base.Do(req)
	}

	ctx, cancel := context.WithTimeout(req.Context(), t.timeout)
	resp, err := t.base.Do(req.WithContext(ctx))
	if err != nil {
		cancel()
		if ctx.Err() == context.DeadlineExceeded {
			return nil, fmt.Errorf("%w after %s", ErrRequestTimeout, t.timeout)
		}
		return nil, err
	}

	// The body outlives this call; cancel only once it is closed.
	resp.Body = &cancelOnClose{ReadCloser: resp.Body, cancel: cancel}
	return resp, nil
}

type cancelOnClose struct {
	io.ReadCloser
	cancel context.CancelFunc
}

func (c *cancelOnClose) Close() error {
	err := c.ReadCloser.Close()
	c.cancel()
	return err
}

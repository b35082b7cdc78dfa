package elementwalker

import (
	"context"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"
)

// Fetcher loads a document and returns its body
type Fetcher interface {
	Fetch(ctx context.Context, targetURL string) (body []byte, code int, err error)
}

// TransportError is a failed request, a timeout or a response without a 2xx status
type TransportError struct {
	URL  string
	Code int
	Err  error
}

func (e *TransportError) Error() string {
	if e.Err != nil {
		return "could not get " + e.URL + ": " + e.Err.Error()
	}
	return "could not get " + e.URL + ": unexpected status " + strconv.Itoa(e.Code)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

type RestyFetcher struct {
	client *resty.Client
}

func NewRestyFetcher(timeout time.Duration, agent string) *RestyFetcher {
	client := resty.New().
		SetTimeout(timeout).
		SetRetryCount(0)
	if agent != "" {
		client.SetHeader("User-Agent", agent)
	}
	return &RestyFetcher{
		client: client,
	}
}

func (f *RestyFetcher) Fetch(ctx context.Context, targetURL string) (body []byte, code int, err error) {
	resp, errGet := f.client.R().
		SetContext(ctx).
		Get(targetURL)
	if errGet != nil {
		return nil, 0, &TransportError{URL: targetURL, Err: errGet}
	}
	code = resp.StatusCode()
	if !resp.IsSuccess() {
		return nil, code, &TransportError{URL: targetURL, Code: code}
	}
	return resp.Body(), code, nil
}

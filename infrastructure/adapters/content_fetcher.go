package adapters

import (
	"errors"
	"fmt"
	"github.com/gulam-moin/interactive-voice-response/application/ports/outbound"
	"io"
	"net/http"
	"net/url"
	"time"
)

const maxErrorBodyBytes = 2048

// Query parameters that carry provider credentials.
var secretQueryParams = []string{"appid", "api-key", "api_key", "key", "token"}

type ContentFetcher interface {
	FetchContent(req *http.Request) ([]byte, error)
}

type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("HTTP request returned non-OK status code: %d", e.StatusCode)
}

type contentFetcher struct {
	logger outbound.LoggerPort
	client *http.Client
}

func NewContentFetcher(logger outbound.LoggerPort) ContentFetcher {
	return NewContentFetcherWithClient(logger, &http.Client{Timeout: 30 * time.Second})
}

func NewContentFetcherWithClient(logger outbound.LoggerPort, client *http.Client) ContentFetcher {
	return &contentFetcher{
		logger: logger,
		client: client,
	}
}

func (c *contentFetcher) FetchContent(req *http.Request) ([]byte, error) {
	res, err := c.client.Do(req)
	if err != nil {
		err = RedactError(err)
		c.logger.ErrorWithFields(err, "Failed to send the HTTP request", map[string]interface{}{
			"method": req.Method,
			"host":   req.URL.Host,
			"path":   req.URL.Path,
		})
		return nil, err
	}

	defer func(Body io.ReadCloser) {
		err := Body.Close()
		if err != nil {
			c.logger.ErrorWithFields(err, "Failed to close the response body", map[string]interface{}{
				"method": req.Method,
				"host":   req.URL.Host,
			})
		}
	}(res.Body)

	if res.StatusCode != http.StatusOK {
		bodyPayload, _ := io.ReadAll(io.LimitReader(res.Body, maxErrorBodyBytes))
		statusErr := &StatusError{StatusCode: res.StatusCode, Body: string(bodyPayload)}
		c.logger.ErrorWithFields(statusErr, "HTTP request returned non-OK status code", map[string]interface{}{
			"method":  req.Method,
			"host":    req.URL.Host,
			"path":    req.URL.Path,
			"status":  res.StatusCode,
			"message": statusErr.Body,
		})
		return nil, statusErr
	}

	payload, err := io.ReadAll(res.Body)
	if err != nil {
		c.logger.ErrorWithFields(err, "Failed to read the response body", map[string]interface{}{
			"method": req.Method,
			"host":   req.URL.Host,
		})
		return nil, err
	}

	return payload, nil
}

// RedactURL renders u with credential query parameters and userinfo
// passwords masked.
func RedactURL(u *url.URL) string {
	redacted := *u
	query := redacted.Query()
	for _, name := range secretQueryParams {
		if query.Has(name) {
			query.Set(name, "xxxxx")
		}
	}
	redacted.RawQuery = query.Encode()
	return redacted.Redacted()
}

// RedactError masks credentials in the URL carried by a *url.Error, so the
// error text is safe to log.
func RedactError(err error) error {
	var urlErr *url.Error
	if !errors.As(err, &urlErr) {
		return err
	}
	if u, parseErr := url.Parse(urlErr.URL); parseErr == nil {
		urlErr.URL = RedactURL(u)
	} else {
		urlErr.URL = "<unparseable url>"
	}
	return err
}

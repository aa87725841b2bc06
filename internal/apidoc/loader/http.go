package loader

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"time"
)

// maxDocumentSize bounds a downloaded dump. A full Foreman apipie dump with
// plugins is a few megabytes.
const maxDocumentSize = 64 << 20

func loadHTTP(ctx context.Context, client *http.Client, url string, timeout time.Duration) ([]byte, error) {
	if client == nil {
		return nil, errors.New("apidoc loader: http client is not configured")
	}
	if url == "" {
		return nil, errors.New("apidoc loader: url is required")
	}

	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("apidoc loader: fetch %s: %w", url, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("apidoc loader: fetch %s: unexpected status %s", url, resp.Status)
	}
	// login redirects end on an HTML page with a 200
	if mediaType, _, _ := mime.ParseMediaType(resp.Header.Get("Content-Type")); mediaType == "text/html" {
		return nil, fmt.Errorf("apidoc loader: fetch %s: got an HTML page instead of JSON", url)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxDocumentSize+1))
	if err != nil {
		return nil, fmt.Errorf("apidoc loader: read %s: %w", url, err)
	}
	if len(data) > maxDocumentSize {
		return nil, fmt.Errorf("apidoc loader: %s exceeds %d bytes", url, maxDocumentSize)
	}
	return data, nil
}

package loader

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"time"

	"github.com/goliatone/go-apinsible/pkg/apidoc"
)

// Loader implements apidoc.Loader by delegating to file, fs.FS, or HTTP
// strategies. Construction helpers live in the top-level apinsible package.
type Loader struct {
	fs      fs.FS
	http    *http.Client
	timeout time.Duration
}

var _ apidoc.Loader = (*Loader)(nil)

// New constructs a Loader from pre-resolved options.
func New(options apidoc.LoaderOptions) *Loader {
	timeout := options.RequestTimeout

	var httpClient *http.Client
	if options.HTTPClient != nil {
		clone := *options.HTTPClient
		if timeout > 0 && clone.Timeout == 0 {
			clone.Timeout = timeout
		}
		httpClient = &clone
	} else {
		transport := http.DefaultTransport.(*http.Transport).Clone()
		if !options.VerifyTLS {
			transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true} //nolint:gosec
		}
		httpClient = &http.Client{Timeout: timeout, Transport: transport}
	}

	return &Loader{
		fs:      options.FileSystem,
		http:    httpClient,
		timeout: timeout,
	}
}

// Load fetches a document from the provided source and wraps it in a Document.
func (l *Loader) Load(ctx context.Context, src apidoc.Source) (apidoc.Document, error) {
	if src == nil {
		return apidoc.Document{}, errors.New("apidoc loader: source is nil")
	}

	var (
		data []byte
		err  error
	)

	switch src.Kind() {
	case apidoc.SourceKindFile:
		data, err = loadFile(ctx, src.Location())
	case apidoc.SourceKindFS:
		data, err = loadFromFS(ctx, l.fs, src.Location())
	case apidoc.SourceKindURL:
		data, err = loadHTTP(ctx, l.http, src.Location(), l.timeout)
	default:
		err = fmt.Errorf("apidoc loader: unsupported source kind %q", src.Kind())
	}
	if err != nil {
		return apidoc.Document{}, err
	}

	return apidoc.NewDocument(src, data)
}

package apidoc

import (
	"context"
	"io/fs"
	"net/http"
	"time"
)

// Loader fetches documentation payloads from files, an fs.FS or HTTP.
type Loader interface {
	Load(ctx context.Context, src Source) (Document, error)
}

// LoaderOptions configures how a Loader resolves sources.
type LoaderOptions struct {
	// FileSystem backs SourceKindFS lookups.
	FileSystem fs.FS

	// HTTPClient overrides the client used for URL sources.
	HTTPClient *http.Client

	// RequestTimeout caps remote fetch durations. Zero leaves the transport
	// default in place.
	RequestTimeout time.Duration

	// VerifyTLS enables certificate verification for the default client.
	// Development servers commonly run with self-signed certificates, so it
	// is off unless requested.
	VerifyTLS bool
}

// LoaderOption mutates LoaderOptions prior to construction.
type LoaderOption func(*LoaderOptions)

// WithFileSystem injects an fs.FS implementation for SourceKindFS.
func WithFileSystem(files fs.FS) LoaderOption {
	return func(opts *LoaderOptions) {
		opts.FileSystem = files
	}
}

// WithHTTPClient injects a custom HTTP client for remote documents.
func WithHTTPClient(client *http.Client) LoaderOption {
	return func(opts *LoaderOptions) {
		opts.HTTPClient = client
	}
}

// WithRequestTimeout caps remote fetch durations.
func WithRequestTimeout(timeout time.Duration) LoaderOption {
	return func(opts *LoaderOptions) {
		opts.RequestTimeout = timeout
	}
}

// WithTLSVerification toggles certificate verification on the default
// client. It has no effect when WithHTTPClient is used.
func WithTLSVerification(enabled bool) LoaderOption {
	return func(opts *LoaderOptions) {
		opts.VerifyTLS = enabled
	}
}

// NewLoaderOptions applies a set of LoaderOption values and returns the
// resulting configuration.
func NewLoaderOptions(options ...LoaderOption) LoaderOptions {
	cfg := LoaderOptions{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}
	return cfg
}

// Construction helpers live in the top-level apinsible package to prevent import cycles.

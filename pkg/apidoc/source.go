package apidoc

import (
	"fmt"
	"net/url"
	"path/filepath"
	"strings"
)

// Source identifies where an API documentation payload lives so loaders can
// operate on files, fs.FS entries or URLs without leaking transport details.
type Source interface {
	Kind() SourceKind
	Location() string
}

// SourceKind enumerates the loader modalities.
type SourceKind string

const (
	SourceKindFile SourceKind = "file"
	SourceKindFS   SourceKind = "fs"
	SourceKindURL  SourceKind = "url"
)

type fileSource struct {
	path string
}

func (s fileSource) Location() string {
	return s.path
}

func (s fileSource) Kind() SourceKind {
	return SourceKindFile
}

// SourceFromFile returns a Source pointing to a file path.
func SourceFromFile(path string) Source {
	return fileSource{path: filepath.Clean(path)}
}

type fsSource struct {
	name string
}

func (s fsSource) Location() string {
	return s.name
}

func (s fsSource) Kind() SourceKind {
	return SourceKindFS
}

// SourceFromFS returns a Source identifying a resource inside an fs.FS.
func SourceFromFS(name string) Source {
	return fsSource{name: name}
}

type urlSource struct {
	raw string
}

func (s urlSource) Location() string {
	return s.raw
}

func (s urlSource) Kind() SourceKind {
	return SourceKindURL
}

// SourceFromURL validates raw and returns a Source for it.
func SourceFromURL(raw string) (Source, error) {
	if raw == "" {
		return nil, fmt.Errorf("apidoc: empty URL source")
	}
	if _, err := url.ParseRequestURI(raw); err != nil {
		return nil, fmt.Errorf("apidoc: invalid URL %q: %w", raw, err)
	}
	return urlSource{raw: raw}, nil
}

// ApipieSource builds the URL of the apipie JSON dump served by server for
// the given API version, e.g. http://localhost:3000/apidoc/v2.json.
func ApipieSource(server string, version int) (Source, error) {
	base := strings.TrimRight(strings.TrimSpace(server), "/")
	if base == "" {
		return nil, fmt.Errorf("apidoc: server is required")
	}
	if version <= 0 {
		return nil, fmt.Errorf("apidoc: invalid api version %d", version)
	}
	return SourceFromURL(fmt.Sprintf("%s/apidoc/v%d.json", base, version))
}

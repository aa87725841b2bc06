package apipie

import (
	"context"
	"errors"
	"fmt"
	"sync"

	json "github.com/goccy/go-json"
	"github.com/tidwall/gjson"

	"github.com/goliatone/go-apinsible/pkg/apidoc"
)

// Provider answers parameter queries from an apipie JSON dump. The dump is
// fetched once, on the first query.
type Provider struct {
	loader apidoc.Loader
	source apidoc.Source

	once sync.Once
	doc  apidoc.Document
	err  error
}

var _ apidoc.Provider = (*Provider)(nil)

// New constructs a Provider reading src through loader.
func New(loader apidoc.Loader, src apidoc.Source) *Provider {
	return &Provider{loader: loader, source: src}
}

// FromDocument constructs a Provider over an already loaded dump.
func FromDocument(doc apidoc.Document) *Provider {
	p := &Provider{doc: doc}
	p.once.Do(func() {})
	return p
}

// Params returns the parameter tree of action on resource.
func (p *Provider) Params(ctx context.Context, resource, action string) ([]apidoc.Param, error) {
	if resource == "" || action == "" {
		return nil, errors.New("apipie: resource and action are required")
	}

	p.once.Do(func() {
		if p.loader == nil || p.source == nil {
			p.err = errors.New("apipie: loader and source are required")
			return
		}
		p.doc, p.err = p.loader.Load(ctx, p.source)
	})
	if p.err != nil {
		return nil, fmt.Errorf("apipie: load %s: %w", locationOf(p.source), p.err)
	}

	return Extract(p.doc.Raw(), resource, action)
}

// Extract reads the params of docs.resources[resource].methods[action] from
// a raw apipie dump.
func Extract(raw []byte, resource, action string) ([]apidoc.Param, error) {
	if !gjson.ValidBytes(raw) {
		return nil, errors.New("apipie: document is not valid JSON")
	}

	resources := gjson.GetBytes(raw, "docs.resources")
	if !resources.IsObject() {
		return nil, errors.New("apipie: document has no docs.resources section")
	}

	res, ok := lookupKey(resources, resource)
	if !ok {
		return nil, fmt.Errorf("apipie: resource %q not found", resource)
	}

	method, ok := lookupMethod(res.Get("methods"), action)
	if !ok {
		return nil, fmt.Errorf("apipie: action %q not found on resource %q", action, resource)
	}

	params := method.Get("params")
	if !params.Exists() {
		return nil, nil
	}

	var nodes []rawParam
	if err := json.Unmarshal([]byte(params.Raw), &nodes); err != nil {
		return nil, fmt.Errorf("apipie: decode params of %s#%s: %w", resource, action, err)
	}
	return convert(nodes), nil
}

func lookupKey(obj gjson.Result, key string) (gjson.Result, bool) {
	var found gjson.Result
	ok := false
	obj.ForEach(func(k, v gjson.Result) bool {
		if k.String() == key {
			found, ok = v, true
			return false
		}
		return true
	})
	return found, ok
}

func lookupMethod(methods gjson.Result, action string) (gjson.Result, bool) {
	if !methods.IsArray() {
		return gjson.Result{}, false
	}
	var found gjson.Result
	ok := false
	methods.ForEach(func(_, m gjson.Result) bool {
		if m.Get("name").String() == action {
			found, ok = m, true
			return false
		}
		return true
	})
	return found, ok
}

func locationOf(src apidoc.Source) string {
	if src == nil {
		return "<document>"
	}
	return src.Location()
}

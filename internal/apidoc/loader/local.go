package loader

import (
	"context"
	"errors"
	"io/fs"
	"os"
)

func loadFile(ctx context.Context, path string) ([]byte, error) {
	if path == "" {
		return nil, errors.New("apidoc loader: file path is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return os.ReadFile(path)
}

func loadFromFS(ctx context.Context, filesystem fs.FS, name string) ([]byte, error) {
	if filesystem == nil {
		return nil, errors.New("apidoc loader: filesystem is not configured")
	}
	if name == "" {
		return nil, errors.New("apidoc loader: fs path is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return fs.ReadFile(filesystem, name)
}

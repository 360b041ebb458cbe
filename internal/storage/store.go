package storage

import (
	"context"
	"io"

	"github.com/spf13/afero"
)

// Store is the file access the CLI needs.
type Store interface {
	Open(ctx context.Context, path string) (io.ReadCloser, error)
	Save(ctx context.Context, path string, reader io.Reader) (int64, error)
	Fs() afero.Fs
}

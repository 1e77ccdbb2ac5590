package ports

import (
	"context"
	"io"
)

// FileStorage persists an uploaded file and returns the public URL it will
// be served from.
type FileStorage interface {
	Save(ctx context.Context, filename string, r io.Reader) (string, error)
}

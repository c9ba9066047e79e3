// Package storage is the file-blob boundary. The core only ever talks to
// the Store interface; paths are opaque to callers.
package storage

import (
	"io"
)

type Store interface {
	// Save writes the blob and returns the number of bytes written.
	Save(path string, r io.Reader) (int64, error)
	// Open returns a reader over the blob.
	Open(path string) (io.ReadCloser, error)
	// Delete removes the blob. Deleting a blob that no longer exists is
	// not an error; all other failures propagate.
	Delete(path string) error
}

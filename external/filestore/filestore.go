package filestore

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

var ErrFileNotFound = fmt.Errorf("file not found in storage")

// FileStore persists response attachments and resolves stored references
// back to byte streams for download.
type FileStore interface {
	Save(originalName string, r io.Reader) (string, error)
	Open(storageRef string) (io.ReadCloser, int64, error)
}

// LocalFileStore keeps attachments on a local directory. Stored names
// are opaque references; the original name only survives inside the
// response document.
type LocalFileStore struct {
	dir string
}

func NewLocalFileStore(dir string) (*LocalFileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &LocalFileStore{dir: dir}, nil
}

// Save streams the uploaded content into storage and returns the
// storage reference to embed in the response document.
func (s *LocalFileStore) Save(originalName string, r io.Reader) (string, error) {
	ref := uuid.New().String() + filepath.Ext(originalName)

	f, err := os.Create(filepath.Join(s.dir, ref))
	if err != nil {
		return "", err
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		// drop the partial file, the reference was never handed out
		os.Remove(f.Name())
		return "", err
	}

	log.WithFields(log.Fields{
		"prefix": "filestore",
		"ref":    ref,
		"name":   originalName,
	}).Debug("saved attachment")

	return ref, nil
}

// Open resolves a storage reference to a readable stream and its size.
func (s *LocalFileStore) Open(storageRef string) (io.ReadCloser, int64, error) {
	// the reference is server generated, but never trust it as a path
	if filepath.Base(storageRef) != storageRef {
		return nil, 0, ErrFileNotFound
	}

	f, err := os.Open(filepath.Join(s.dir, storageRef))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, 0, ErrFileNotFound
		}
		return nil, 0, err
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, 0, err
	}

	return f, info.Size(), nil
}

package employee

import (
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// PhotoStore persists an uploaded photo and returns the stored filename.
type PhotoStore interface {
	Save(file io.Reader, originalName string) (string, error)
}

// DiskPhotoStore writes photos to a directory on the local filesystem,
// served back under /images/.
type DiskPhotoStore struct {
	dir string
}

func NewDiskPhotoStore(dir string) *DiskPhotoStore {
	return &DiskPhotoStore{dir: dir}
}

// Save stores the file under a generated name, keeping the original
// extension so the static file server picks the right content type.
func (s *DiskPhotoStore) Save(file io.Reader, originalName string) (string, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", err
	}

	filename := "photo_" + uuid.NewString() + filepath.Ext(originalName)

	dst, err := os.Create(filepath.Join(s.dir, filename))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		return "", err
	}
	return filename, nil
}

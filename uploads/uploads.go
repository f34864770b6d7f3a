// Package uploads is the file storage boundary. Files land on local disk
// under the public static root and come back as absolute URLs ready to embed
// in a record. There is no coupling to the record write that follows: a
// failed write after a successful upload simply leaves the file behind.
package uploads

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pkg/errors"
)

type FileStore struct {
	// root is the directory served as /public/uploads.
	root string
	// baseURL prefixes returned URLs, e.g. http://localhost:8080.
	baseURL string
}

func NewFileStore(root, baseURL string) *FileStore {
	return &FileStore{
		root:    root,
		baseURL: strings.TrimSuffix(baseURL, "/"),
	}
}

// Path namespaces an upload by entity type with a timestamp-prefixed
// filename so two uploads of the same file never collide.
func Path(entity, filename string) string {
	return fmt.Sprintf("%s/%d_%s", entity, time.Now().UnixMilli(), sanitize(filename))
}

// Save writes the content under the given relative path and returns the
// absolute URL for embedding in a record.
func (f *FileStore) Save(content io.Reader, path string) (string, error) {
	full := filepath.Join(f.root, filepath.FromSlash(path))

	if err := os.MkdirAll(filepath.Dir(full), 0755); err != nil {
		return "", errors.Wrap(err, "creating upload directory")
	}

	out, err := os.Create(full)
	if err != nil {
		return "", errors.Wrap(err, "creating upload file")
	}

	if _, err := io.Copy(out, content); err != nil {
		out.Close()
		return "", errors.Wrap(err, "writing upload file")
	}

	// a failed close can mean unflushed bytes, so it invalidates the URL
	if err := out.Close(); err != nil {
		return "", errors.Wrap(err, "closing upload file")
	}

	return f.baseURL + "/public/uploads/" + path, nil
}

// sanitize keeps filenames to a safe character set.
func sanitize(name string) string {
	name = filepath.Base(name)
	return strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') ||
			r == '.' || r == '-' || r == '_' {
			return r
		}
		return '-'
	}, name)
}

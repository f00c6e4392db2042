package fetch

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path"
	"path/filepath"
)

// ErrIO marks persistence failures.
var ErrIO = errors.New("fetch: persist failure")

// Store writes downloaded enclosures into a single directory.
type Store struct {
	dir string
}

func NewStore(dir string) (*Store, error) {
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("%w: create %s: %v", ErrIO, dir, err)
	}
	return &Store{dir: dir}, nil
}

// Dir returns the directory the store writes into.
func (s *Store) Dir() string { return s.dir }

// Save writes data under filename inside the store directory. Any path
// components in filename are stripped.
func (s *Store) Save(filename string, data []byte) error {
	dst := filepath.Join(s.dir, filepath.Base(filename))
	if err := os.WriteFile(dst, data, 0o644); err != nil {
		return fmt.Errorf("%w: write %s: %v", ErrIO, dst, err)
	}
	return nil
}

// Filename derives a local filename from the final path segment of
// rawURL. Query strings and fragments are dropped. When the URL has no
// usable segment the host name is used instead.
func Filename(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return path.Base(rawURL)
	}
	name := path.Base(u.Path)
	if name == "." || name == "/" || name == "" {
		if u.Host != "" {
			return u.Host
		}
		return "download"
	}
	return name
}

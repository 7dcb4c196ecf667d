// Package media stores uploaded photo binaries and serves them back
// over HTTP. Photo documents reference binaries by URL only, so the
// gallery also accepts photos hosted elsewhere; Remove tolerates URLs
// it does not own.
package media

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Store abstracts where photo binaries live.
type Store interface {
	// Save writes the binary and returns the public URL it is served
	// under.
	Save(filename string, r io.Reader) (string, error)
	// Remove deletes the binary behind a URL. URLs not owned by this
	// store are ignored.
	Remove(url string) error
}

// DiskStore keeps binaries in a local directory and serves them under
// baseURL.
type DiskStore struct {
	dir     string
	baseURL string
}

// NewDiskStore creates the storage directory if needed.
func NewDiskStore(dir, baseURL string) (*DiskStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create media dir: %w", err)
	}
	return &DiskStore{dir: dir, baseURL: strings.TrimSuffix(baseURL, "/")}, nil
}

// Save writes the binary under a timestamped name so uploads never
// collide or overwrite each other.
func (s *DiskStore) Save(filename string, r io.Reader) (string, error) {
	name := fmt.Sprintf("%d_%s", time.Now().UnixNano(), sanitize(filename))
	path := filepath.Join(s.dir, name)

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create media file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		_ = os.Remove(path)
		return "", fmt.Errorf("write media file: %w", err)
	}
	return s.baseURL + "/" + name, nil
}

// Remove deletes the binary behind a URL served by this store. External
// URLs and already-deleted files are a no-op.
func (s *DiskStore) Remove(url string) error {
	name, ok := strings.CutPrefix(url, s.baseURL+"/")
	if !ok {
		return nil
	}
	// Reject anything that could escape the storage directory.
	if name == "" || strings.Contains(name, "/") || strings.Contains(name, "..") {
		return nil
	}
	err := os.Remove(filepath.Join(s.dir, name))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

// Handler serves stored binaries. Mount it under the path baseURL
// points at.
func (s *DiskStore) Handler() http.Handler {
	return http.FileServer(http.Dir(s.dir))
}

// Dir returns the storage directory.
func (s *DiskStore) Dir() string {
	return s.dir
}

// URLFor returns the public URL a stored file name is served under.
func (s *DiskStore) URLFor(name string) string {
	return s.baseURL + "/" + name
}

// sanitize strips path separators and whitespace out of a
// client-supplied filename.
func sanitize(name string) string {
	name = filepath.Base(name)
	name = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '.', r == '-', r == '_':
			return r
		}
		return '_'
	}, name)
	if name == "" || name == "." {
		name = "upload"
	}
	return name
}

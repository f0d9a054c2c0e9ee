package objfmt

import (
	"bytes"
	"compress/zlib"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// ErrNotExist is returned by Store.Get when no object exists for the
// given hash.
var ErrNotExist = errors.New("objfmt: object not found")

// Store is the content-addressed, zlib-compressed object database rooted
// at a repository's objects/ directory. Objects are fanned out two hex
// characters deep (objects/<hash[0:2]>/<hash[2:]>) to bound directory
// size, matching the layout described by the spec.
type Store struct {
	root string
}

// NewStore returns a Store rooted at objectsDir. The directory is not
// created here; Put creates it, with the fan-out subdirectory, on the
// first write.
func NewStore(objectsDir string) *Store {
	return &Store{root: objectsDir}
}

func (s *Store) path(h Hash) string {
	hex := h.String()
	return filepath.Join(s.root, hex[:2], hex[2:])
}

// Put hashes payload under kind, writes the zlib-compressed frame to
// disk if not already present, and returns the resulting Hash. Writing
// is idempotent: objects are never mutated once written, so re-putting
// identical content is a harmless no-op.
func (s *Store) Put(kind Kind, payload []byte) (Hash, error) {
	h := Sum(kind, payload)
	p := s.path(h)
	if _, err := os.Stat(p); err == nil {
		return h, nil
	}
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return ZeroHash, fmt.Errorf("objfmt: create object dir: %w", err)
	}
	var buf bytes.Buffer
	w := zlib.NewWriter(&buf)
	if _, err := w.Write(frame(kind, payload)); err != nil {
		_ = w.Close()
		return ZeroHash, fmt.Errorf("objfmt: compress object: %w", err)
	}
	if err := w.Close(); err != nil {
		return ZeroHash, fmt.Errorf("objfmt: compress object: %w", err)
	}
	tmp := p + ".tmp"
	if err := os.WriteFile(tmp, buf.Bytes(), 0o644); err != nil {
		return ZeroHash, fmt.Errorf("objfmt: write object: %w", err)
	}
	if err := os.Rename(tmp, p); err != nil {
		return ZeroHash, fmt.Errorf("objfmt: finalize object: %w", err)
	}
	return h, nil
}

// Get reads and inflates the object stored under h. It returns
// ErrNotExist if no such object exists.
func (s *Store) Get(h Hash) (Kind, []byte, error) {
	p := s.path(h)
	f, err := os.Open(p)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", nil, ErrNotExist
		}
		return "", nil, fmt.Errorf("objfmt: open object %s: %w", h, err)
	}
	defer f.Close()
	zr, err := zlib.NewReader(f)
	if err != nil {
		return "", nil, fmt.Errorf("objfmt: inflate object %s: %w", h, err)
	}
	defer zr.Close()
	raw, err := io.ReadAll(zr)
	if err != nil {
		return "", nil, fmt.Errorf("objfmt: read object %s: %w", h, err)
	}
	return splitFrame(raw)
}

// Exists reports whether an object is stored under h.
func (s *Store) Exists(h Hash) bool {
	_, err := os.Stat(s.path(h))
	return err == nil
}

// GetKind reads an object and requires it to be of the given kind,
// the check used throughout the engine: branch refs must resolve to
// commits (spec invariant), tree rows must resolve to blobs, etc.
func (s *Store) GetKind(h Hash, want Kind) ([]byte, error) {
	kind, payload, err := s.Get(h)
	if err != nil {
		return nil, err
	}
	if kind != want {
		return nil, fmt.Errorf("objfmt: object %s is a %s, not a %s", h, kind, want)
	}
	return payload, nil
}

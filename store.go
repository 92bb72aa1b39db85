package cashbook

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"
)

// DataFile is the name of the live data file inside the data directory.
const DataFile = "ledger.json"

// ErrNoData reports an operation that needs the live data file before any
// document has ever been saved.
var ErrNoData = errors.New("no data file")

// Store persists a single ledger document as one JSON file in a data
// directory. The whole document is rewritten on every save; there are no
// partial writes and no diffing.
type Store struct {
	dir  string
	path string
}

// NewStore returns a store bound to the given data directory, creating the
// directory if needed.
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("could not create data directory %q: %w", dir, err)
	}
	return &Store{dir: dir, path: filepath.Join(dir, DataFile)}, nil
}

// DataPath returns the path of the live data file.
func (s *Store) DataPath() string { return s.path }

// Dir returns the data directory the store is bound to.
func (s *Store) Dir() string { return s.dir }

// Load reads the ledger document from disk.
//
// On first run (no data file) it synthesizes the default document and
// persists it before returning. A data file that cannot be parsed, or that
// misses a required top-level field, is replaced the same way: availability
// over durability, the application always starts with a usable document.
// Load therefore never surfaces a schema error to the caller.
func (s *Store) Load() (*Document, error) {
	f, err := os.Open(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return s.reset()
	}
	if err != nil {
		return nil, fmt.Errorf("could not open data file %q: %w", s.path, err)
	}
	defer f.Close()

	doc, err := DecodeDocument(f)
	if err != nil {
		log.Printf("warning: data file %q is not a valid ledger document (%v), starting over with a default one", s.path, err)
		return s.reset()
	}
	return doc, nil
}

// reset synthesizes a default document and persists it, overwriting whatever
// is at the data path.
func (s *Store) reset() (*Document, error) {
	doc := NewDefaultDocument()
	if err := s.Save(doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// Save stamps meta.updatedAt and overwrites the data file with the full
// document. A crash mid-write can corrupt the file; Load recovers from that
// with a default document.
func (s *Store) Save(doc *Document) error {
	doc.Meta.UpdatedAt = time.Now().UTC()

	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return fmt.Errorf("could not create data directory %q: %w", s.dir, err)
	}
	f, err := os.Create(s.path)
	if err != nil {
		return fmt.Errorf("could not open data file %q for writing: %w", s.path, err)
	}
	defer f.Close()

	return EncodeDocument(f, doc)
}

// ExportTo byte-copies the live data file to path. It fails with ErrNoData
// when no document has ever been saved.
func (s *Store) ExportTo(path string) error {
	if _, err := os.Stat(s.path); errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("cannot export: %w", ErrNoData)
	}
	if err := copyFile(s.path, path); err != nil {
		return fmt.Errorf("could not export data to %q: %w", path, err)
	}
	return nil
}

// ImportFrom reads and shallow-validates a document from path. On success the
// live data file is immediately overwritten with the imported document, which
// is returned. On failure the error propagates and the live file is left
// untouched.
func (s *Store) ImportFrom(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open import file %q: %w", path, err)
	}
	defer f.Close()

	doc, err := DecodeDocument(f)
	if err != nil {
		return nil, fmt.Errorf("could not import %q: %w", path, err)
	}
	if err := s.Save(doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// copyFile copies src to dst byte for byte, overwriting dst.
func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return err
	}
	return out.Close()
}

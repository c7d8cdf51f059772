package state

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// JSONFile stores the collection as a single JSON object in a file.
// Each key is a task title and each value its status token.
type JSONFile struct {
	path   string
	perm   os.FileMode
	logger *slog.Logger
}

// NewJSONFile returns a store backed by the JSON document at path.
// The file is not touched until Load, Save or Init is called.
func NewJSONFile(path string, logger *slog.Logger) *JSONFile {
	return &JSONFile{
		path:   path,
		perm:   0600,
		logger: orDiscard(logger),
	}
}

// Path returns the document path.
func (s *JSONFile) Path() string { return s.path }

// Load reads and decodes the whole document.
func (s *JSONFile) Load(ctx context.Context) (Collection, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, s.path)
		}
		return nil, &Error{Op: "read", Path: s.path, Err: err}
	}

	c, err := decode(data)
	if err != nil {
		return nil, &Error{Op: "decode", Path: s.path, Err: err}
	}

	s.logger.Debug("state loaded", "path", s.path, "tasks", len(c))
	return c, nil
}

// Save encodes c and replaces the document.
// The new content is written to a temporary file in the same directory and
// renamed over the target, so readers never see a half-written document.
func (s *JSONFile) Save(ctx context.Context, c Collection) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := encode(c)
	if err != nil {
		return &Error{Op: "encode", Path: s.path, Err: err}
	}

	if err := s.writeAtomic(data); err != nil {
		return &Error{Op: "write", Path: s.path, Err: err}
	}

	s.logger.Debug("state saved", "path", s.path, "tasks", len(c), "bytes", len(data))
	return nil
}

// Init writes an empty document if the file does not exist yet.
func (s *JSONFile) Init(ctx context.Context) (bool, error) {
	if _, err := os.Stat(s.path); err == nil {
		return false, nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return false, &Error{Op: "stat", Path: s.path, Err: err}
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0700); err != nil {
		return false, &Error{Op: "mkdir", Path: s.path, Err: err}
	}
	if err := s.Save(ctx, Collection{}); err != nil {
		return false, err
	}
	return true, nil
}

var rename = os.Rename

func (s *JSONFile) writeAtomic(data []byte) error {
	dir := filepath.Dir(s.path)
	tmp := filepath.Join(dir, "."+filepath.Base(s.path)+"."+uuid.NewString()+".tmp")

	f, err := os.OpenFile(tmp, os.O_WRONLY|os.O_CREATE|os.O_EXCL, s.perm)
	if err != nil {
		return err
	}

	if _, err := f.Write(data); err != nil {
		f.Close()
		os.Remove(tmp)
		return err
	}
	if err := f.Sync(); err != nil {
		f.Close()
		os.Remove(tmp)
		return err
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return err
	}

	if err := rename(tmp, s.path); err != nil {
		os.Remove(tmp)
		return err
	}
	return nil
}

// encode renders c as an indented JSON object with sorted keys and a
// trailing newline. The same collection always encodes to the same bytes.
func encode(c Collection) ([]byte, error) {
	if c == nil {
		c = Collection{}
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(c); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func decode(data []byte) (Collection, error) {
	var c Collection
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if c == nil {
		return nil, fmt.Errorf("%w: document is not an object", ErrMalformed)
	}
	return c, nil
}

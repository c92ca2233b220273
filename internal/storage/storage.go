// Package storage persists uploaded files under the local data directory.
// The Store interface keeps handlers independent of the backing medium.
package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"server/internal/logger"

	"github.com/google/uuid"
)

type Store interface {
	// Save writes the file into the named subdirectory and returns the
	// stored path usable as a file URL.
	Save(subdir, fileName string, content io.Reader) (string, error)
}

type LocalStore struct {
	baseDir string
	log     logger.Logger
}

func NewLocalStore(baseDir string) (*LocalStore, error) {
	log := logger.New("storage").Function("NewLocalStore")

	if baseDir == "" {
		return nil, log.ErrMsg("upload directory is empty")
	}
	if err := os.MkdirAll(baseDir, 0755); err != nil {
		return nil, log.Err("failed to create upload directory", err, "dir", baseDir)
	}

	return &LocalStore{baseDir: baseDir, log: logger.New("storage")}, nil
}

func (s *LocalStore) Save(subdir, fileName string, content io.Reader) (string, error) {
	log := s.log.Function("Save")

	dir := filepath.Join(s.baseDir, subdir)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", log.Err("failed to create directory", err, "dir", dir)
	}

	// Prefix with a uuid so repeated uploads of the same name never clash.
	safeName := fmt.Sprintf("%s_%s", uuid.New().String(), sanitizeFileName(fileName))
	path := filepath.Join(dir, safeName)

	out, err := os.Create(path)
	if err != nil {
		return "", log.Err("failed to create file", err, "path", path)
	}
	defer out.Close()

	if _, err := io.Copy(out, content); err != nil {
		return "", log.Err("failed to write file", err, "path", path)
	}

	return path, nil
}

func sanitizeFileName(fileName string) string {
	fileName = filepath.Base(fileName)
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '.', r == '-', r == '_':
			return r
		default:
			return '_'
		}
	}, fileName)
}

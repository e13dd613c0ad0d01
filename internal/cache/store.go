package cache

import (
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"

	"github.com/qwe28256/phiauto/internal/touch"
)

// Store is a content-addressed directory of dumped timelines, keyed by
// the SHA-1 hex digest of the raw chart text that produced them. It
// lets a repeated run of the same chart skip planning entirely.
type Store struct {
	Dir string
}

// NewStore returns a Store rooted at dir. Dir is created lazily on
// first write.
func NewStore(dir string) Store { return Store{Dir: dir} }

// KeyFor hashes chart text into the cache key used by Find and Write.
func KeyFor(chartText []byte) string {
	sum := sha1.Sum(chartText)
	return hex.EncodeToString(sum[:])
}

func (s Store) path(key string) string {
	return filepath.Join(s.Dir, key+".psap")
}

// Find returns the cached (screen, frames) for chartText's content
// hash, or ok=false if nothing is cached or the cache is disabled
// (empty Dir).
func (s Store) Find(chartText []byte) (screen Screen, frames []touch.Frame, ok bool, err error) {
	if s.Dir == "" {
		return Screen{}, nil, false, nil
	}

	data, readErr := os.ReadFile(s.path(KeyFor(chartText)))
	if readErr != nil {
		if os.IsNotExist(readErr) {
			return Screen{}, nil, false, nil
		}
		return Screen{}, nil, false, fmt.Errorf("cache: read: %w", readErr)
	}

	screen, frames, err = Load(data)
	if err != nil {
		return Screen{}, nil, false, err
	}
	return screen, frames, true, nil
}

// Write dumps (screen, frames) under chartText's content hash. A
// no-op if the store is disabled (empty Dir).
func (s Store) Write(chartText []byte, screen Screen, frames []touch.Frame) error {
	if s.Dir == "" {
		return nil
	}
	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return fmt.Errorf("cache: mkdir %s: %w", s.Dir, err)
	}

	data := Dump(screen, frames)
	path := s.path(KeyFor(chartText))
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("cache: write: %w", err)
	}
	return os.Rename(tmp, path)
}

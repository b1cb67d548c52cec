// Package store persists the swapgen cache: the "prompted" flag, the last
// session id and the project data merged by completed runs.
// Files are written atomically via temp file + rename.
package store

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/sirap-group/swapgen/internal/errors"
	"github.com/sirap-group/swapgen/internal/fs"
	"github.com/sirap-group/swapgen/internal/project"
)

// SchemaVersion is the cache.json schema version.
const SchemaVersion = "1.0"

// Cache is the content of cache.json.
type Cache struct {
	SchemaVersion string           `json:"schema_version"`
	Prompted      bool             `json:"prompted"`
	SessionID     string           `json:"session_id,omitempty"`
	UpdatedAt     string           `json:"updated_at,omitempty"`
	Data          project.Metadata `json:"data"`
}

// Store reads and writes cache.json under CacheDir.
type Store struct {
	FS       fs.FS            // filesystem interface for stubbing
	CacheDir string           // resolved cache directory
	Now      func() time.Time // injectable clock for deterministic tests
}

// NewStore creates a new Store with the given dependencies.
func NewStore(filesystem fs.FS, cacheDir string, now func() time.Time) *Store {
	return &Store{
		FS:       filesystem,
		CacheDir: cacheDir,
		Now:      now,
	}
}

// CachePath returns the path to cache.json.
func (s *Store) CachePath() string {
	return filepath.Join(s.CacheDir, "cache.json")
}

// LoadCache reads cache.json.
// A missing file yields an empty cache with the current schema version.
// Returns E_STORE_CORRUPT if the file is unreadable, invalid, or of another schema version.
func (s *Store) LoadCache() (Cache, error) {
	data, err := s.FS.ReadFile(s.CachePath())
	if err != nil {
		if os.IsNotExist(err) {
			return Cache{SchemaVersion: SchemaVersion}, nil
		}
		return Cache{}, errors.Wrap(errors.EStoreCorrupt, "failed to read cache.json", err)
	}

	var c Cache
	if err := json.Unmarshal(data, &c); err != nil {
		return Cache{}, errors.Wrap(errors.EStoreCorrupt, "invalid json in cache.json", err)
	}
	if c.SchemaVersion == "" {
		return Cache{}, errors.New(errors.EStoreCorrupt, "cache.json: missing schema_version")
	}
	if c.SchemaVersion != SchemaVersion {
		return Cache{}, errors.New(errors.EStoreCorrupt, "cache.json: unsupported schema_version: "+c.SchemaVersion)
	}
	return c, nil
}

// SaveCache writes cache.json atomically, stamping UpdatedAt.
// Creates the cache directory if it doesn't exist.
func (s *Store) SaveCache(c Cache) error {
	if err := s.FS.MkdirAll(s.CacheDir, 0755); err != nil {
		return errors.Wrap(errors.EPersistFailed, "failed to create cache directory", err)
	}

	c.SchemaVersion = SchemaVersion
	c.UpdatedAt = s.Now().UTC().Format(time.RFC3339)

	if err := fs.WriteJSONAtomic(s.FS, s.CachePath(), c, 0644); err != nil {
		return errors.Wrap(errors.EPersistFailed, "failed to write cache.json", err)
	}
	return nil
}

// LoadData returns the project data cached by earlier runs.
func (s *Store) LoadData() (project.Metadata, error) {
	c, err := s.LoadCache()
	if err != nil {
		return project.Metadata{}, err
	}
	return c.Data, nil
}

// SetPrompted records that a prompt session started.
// Nothing reads the flag back to skip questions.
func (s *Store) SetPrompted(sessionID string) error {
	return s.update(func(c *Cache) error {
		c.Prompted = true
		c.SessionID = sessionID
		return nil
	})
}

// Merge deep-merges partial into the cached project data. Empty fields of
// partial leave cached values in place, so a field answered with "" keeps
// its earlier value. Store satisfies project.Sink.
func (s *Store) Merge(partial project.Metadata) error {
	return s.update(func(c *Cache) error {
		return c.Data.Merge(partial)
	})
}

func (s *Store) update(fn func(c *Cache) error) error {
	c, err := s.LoadCache()
	if err != nil {
		return err
	}
	if err := fn(&c); err != nil {
		return err
	}
	return s.SaveCache(c)
}

package storage

import (
	"os"
	"path/filepath"
	"strings"
	"sync"

	json "github.com/goccy/go-json"

	"socialnino/internal/providers"
	"socialnino/internal/structures"
)

const (
	plainExt      = ".json"
	compressedExt = ".json.zst"
)

// Store is the local durable key-value store: one JSON blob per key, a file
// per blob inside a single directory. Writes are atomic per key (tmp +
// rename) but there is no transaction across keys; a multi-key update can
// partially survive a crash. Concurrent writers from separate processes are
// last-write-wins with no merge; single-client use is assumed.
type Store struct {
	mu            sync.Mutex
	dir           string
	compressAbove int
	compressor    CompressorInterface
	logger        providers.Logger
}

func NewStore(conf *structures.Config, compressor CompressorInterface, logger providers.Logger) (*Store, error) {
	if err := os.MkdirAll(conf.Persistence.Dir, 0755); err != nil {
		return nil, err
	}
	return &Store{
		dir:           conf.Persistence.Dir,
		compressAbove: conf.Persistence.CompressAbove,
		compressor:    compressor,
		logger:        logger,
	}, nil
}

// Read returns the raw blob for a key, or false when the key is absent or
// unreadable. Read errors other than absence are logged, never propagated.
func (s *Store) Read(key string) ([]byte, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.read(key)
}

func (s *Store) read(key string) ([]byte, bool) {
	if data, err := os.ReadFile(s.path(key, compressedExt)); err == nil {
		decompressed, err := s.compressor.Decompress(data)
		if err != nil {
			s.logger.Errorf(providers.TypeApp, "Failed to decompress key %q: %s", key, err)
			return nil, false
		}
		return decompressed, true
	}

	data, err := os.ReadFile(s.path(key, plainExt))
	if err != nil {
		if !os.IsNotExist(err) {
			s.logger.Errorf(providers.TypeApp, "Failed to read key %q: %s", key, err)
		}
		return nil, false
	}
	return data, true
}

// Write persists a blob under a key. Blobs above the configured threshold
// are zstd-compressed. The caller's in-memory state is expected to advance
// regardless of the outcome; callers log and swallow the returned error.
func (s *Store) Write(key string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	ext := plainExt
	if s.compressAbove > 0 && len(data) > s.compressAbove {
		compressed, err := s.compressor.Compress(data)
		if err != nil {
			return err
		}
		data = compressed
		ext = compressedExt
	}

	path := s.path(key, ext)
	tmpFile := path + ".tmp"
	file, err := os.Create(tmpFile)
	if err != nil {
		return err
	}

	if _, err = file.Write(data); err != nil {
		file.Close()
		os.Remove(tmpFile)
		return err
	}
	if err = file.Sync(); err != nil {
		file.Close()
		os.Remove(tmpFile)
		return err
	}
	if err = file.Close(); err != nil {
		os.Remove(tmpFile)
		return err
	}
	if err = os.Rename(tmpFile, path); err != nil {
		return err
	}

	// Drop the stale variant so a later read cannot resurrect old data.
	if ext == plainExt {
		os.Remove(s.path(key, compressedExt))
	} else {
		os.Remove(s.path(key, plainExt))
	}
	return nil
}

// Delete removes a key. Missing keys are not an error.
func (s *Store) Delete(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	os.Remove(s.path(key, plainExt))
	os.Remove(s.path(key, compressedExt))
}

// Keys lists every stored key.
func (s *Store) Keys() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := os.ReadDir(s.dir)
	if err != nil {
		s.logger.Errorf(providers.TypeApp, "Failed to list store dir: %s", err)
		return nil
	}

	var keys []string
	for _, e := range entries {
		name := e.Name()
		if strings.HasSuffix(name, ".tmp") {
			continue
		}
		if strings.HasSuffix(name, compressedExt) {
			keys = append(keys, strings.TrimSuffix(name, compressedExt))
		} else if strings.HasSuffix(name, plainExt) {
			keys = append(keys, strings.TrimSuffix(name, plainExt))
		}
	}
	return keys
}

// Purge removes every key owned by the store.
func (s *Store) Purge() {
	for _, key := range s.Keys() {
		s.Delete(key)
	}
}

// Close releases the compressor.
func (s *Store) Close() {
	s.compressor.Close()
}

func (s *Store) path(key, ext string) string {
	return filepath.Join(s.dir, key+ext)
}

// Get reads and decodes the value stored under key. Absence and corrupt data
// both fall back to def; decode failures are logged, never surfaced.
func Get[T any](s *Store, key string, def T) T {
	data, ok := s.Read(key)
	if !ok {
		return def
	}
	var val T
	if err := json.Unmarshal(data, &val); err != nil {
		s.logger.Warnf(providers.TypeApp, "Corrupt value under key %q, using default: %s", key, err)
		return def
	}
	return val
}

// Set encodes and persists a value under key. Failures are logged and
// swallowed: the caller's in-memory value still changes, it simply may not
// survive a restart.
func Set[T any](s *Store, key string, val T) {
	data, err := json.Marshal(val)
	if err != nil {
		s.logger.Errorf(providers.TypeApp, "Failed to encode key %q: %s", key, err)
		return
	}
	if err := s.Write(key, data); err != nil {
		s.logger.Errorf(providers.TypeApp, "Failed to persist key %q: %s", key, err)
	}
}

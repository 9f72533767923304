package mirror

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/samber/lo"
	"github.com/spf13/afero"
	"github.com/ytbascii/ytbascii/filesystem"
	"github.com/ytbascii/ytbascii/log"
)

// TimestampLayout is the on-disk format of last_checked, always UTC and without fractional seconds.
const TimestampLayout = "2006-01-02 15:04:05"

// ErrMalformedPool is returned when the pool file exists but does not match the expected schema.
var ErrMalformedPool = errors.New("malformed mirror pool")

// poolFile is the persisted shape of a Pool.
type poolFile struct {
	Servers []serverRecord `json:"servers"`
}

type serverRecord struct {
	URL         string `json:"url"`
	LastChecked string `json:"last_checked,omitempty"`
	Status      Status `json:"status"`
}

// Store reads and writes a Pool to a single JSON file.
type Store struct {
	fs   afero.Fs
	path string
	seed []string
}

// NewStore returns a store for the file at path. seed is used whenever the file does not exist.
func NewStore(fs afero.Fs, path string, seed []string) *Store {
	return &Store{fs: fs, path: path, seed: seed}
}

// Path returns the location of the pool file.
func (s *Store) Path() string {
	return s.path
}

// Load reads the pool from disk. A missing file is seeded and written immediately.
func (s *Store) Load() (Pool, error) {
	data, err := afero.ReadFile(s.fs, s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			log.Infof("Creating mirror pool at %s", s.path)
			return s.Seed()
		}
		return nil, fmt.Errorf("read mirror pool: %w", err)
	}

	log.Infof("Loading mirror pool from %s", s.path)
	pool, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", s.path, err)
	}
	return pool, nil
}

// Seed replaces the file content with the default mirror list and returns the resulting pool.
func (s *Store) Seed() (Pool, error) {
	pool := NewPool(s.seed)
	if err := s.Save(pool); err != nil {
		return nil, err
	}
	return pool, nil
}

// Save writes the pool, replacing the previous file content.
func (s *Store) Save(pool Pool) error {
	data, err := Encode(pool)
	if err != nil {
		return err
	}

	log.Debugf("Saving mirror pool to %s", s.path)
	if err := filesystem.WriteAtomic(s.fs, s.path, data, 0o644); err != nil {
		return fmt.Errorf("save mirror pool: %w", err)
	}
	return nil
}

// Encode serializes a pool into its file representation.
func Encode(pool Pool) ([]byte, error) {
	file := poolFile{
		Servers: lo.Map(pool, func(s Server, _ int) serverRecord {
			record := serverRecord{URL: s.URL, Status: s.Status}
			if s.Probed() {
				record.LastChecked = s.LastChecked.UTC().Format(TimestampLayout)
			}
			return record
		}),
	}

	data, err := json.MarshalIndent(file, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode mirror pool: %w", err)
	}
	return append(data, '\n'), nil
}

// Decode parses the file representation of a pool. Any schema violation wraps ErrMalformedPool.
func Decode(data []byte) (Pool, error) {
	var file poolFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedPool, err)
	}
	if file.Servers == nil {
		return nil, fmt.Errorf("%w: missing servers list", ErrMalformedPool)
	}

	pool := make(Pool, 0, len(file.Servers))
	for i, record := range file.Servers {
		server := Server{URL: record.URL, Status: record.Status}

		if record.LastChecked != "" {
			checked, err := time.ParseInLocation(TimestampLayout, record.LastChecked, time.UTC)
			if err != nil {
				return nil, fmt.Errorf("%w: server %d: last_checked: %v", ErrMalformedPool, i, err)
			}
			server.LastChecked = checked
		}

		if err := server.Validate(); err != nil {
			return nil, fmt.Errorf("%w: server %d: %v", ErrMalformedPool, i, err)
		}

		pool = append(pool, server)
	}

	return pool, nil
}

package data

import (
	"fmt"
	"os"

	"github.com/bgraf/cardtag/filesystem"
)

type StoreOptions struct {
	Columns Columns
	// Output is where Save writes. Empty means back to the source file.
	Output string
}

// Store is a dataset file opened for a load, tag, write cycle. The source
// file stays locked until Close.
type Store struct {
	Path    string
	Dataset *Dataset
	options *StoreOptions
	lock    *filesystem.Lock
}

func OpenStore(path string, options *StoreOptions) (*Store, error) {
	lock, err := filesystem.TryLock(path)
	if err != nil {
		return nil, err
	}

	ds, err := LoadFile(path, options.Columns)
	if err != nil {
		_ = lock.Unlock()
		return nil, err
	}

	return &Store{
		Path:    path,
		Dataset: ds,
		options: options,
		lock:    lock,
	}, nil
}

// OutputPath is the file Save replaces.
func (s *Store) OutputPath() string {
	if s.options.Output != "" {
		return s.options.Output
	}
	return s.Path
}

func (s *Store) InPlace() bool {
	return filesystem.Abs(s.OutputPath()) == filesystem.Abs(s.Path)
}

func (s *Store) Save() error {
	return SaveFile(s.OutputPath(), s.Dataset)
}

func (s *Store) Close() error {
	if s.lock == nil {
		return nil
	}
	err := s.lock.Unlock()
	s.lock = nil
	return err
}

// LoadFile reads a whole dataset without locking it.
func LoadFile(path string, columns Columns) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()

	ds, err := Read(f, columns)
	if err != nil {
		return nil, fmt.Errorf("load '%s': %w", path, err)
	}

	return ds, nil
}

// SaveFile replaces path with ds. Readers never see a partially written file.
func SaveFile(path string, ds *Dataset) error {
	if err := filesystem.WriteFileAtomic(path, 0644, ds.Write); err != nil {
		return fmt.Errorf("save '%s': %w", path, err)
	}
	return nil
}

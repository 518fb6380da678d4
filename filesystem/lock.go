package filesystem

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/gofrs/flock"
)

var ErrLocked = errors.New("file is locked by another process")

// Lock is an advisory lock on a sidecar file ".<name>.lock" next to the
// guarded path.
type Lock struct {
	path string
	fl   *flock.Flock
}

func LockPath(path string) string {
	dir, base := filepath.Split(path)
	return filepath.Join(dir, "."+base+".lock")
}

// TryLock acquires the lock for path without waiting.
func TryLock(path string) (*Lock, error) {
	lockPath := LockPath(path)
	fl := flock.New(lockPath)

	ok, err := fl.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire lock '%s': %w", lockPath, err)
	}
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrLocked, path)
	}

	return &Lock{path: lockPath, fl: fl}, nil
}

func (l *Lock) Path() string {
	return l.path
}

func (l *Lock) Unlock() error {
	return l.fl.Unlock()
}

package session

import (
	"github.com/peterbourgon/diskv/v3"

	"task-entry/internal/config"
	apperrors "task-entry/internal/errors"
)

const (
	keyEmployeeID   = "employeeId"
	keyEmployeeName = "employeeName"
)

// Store persists the active employee identity between invocations.
type Store interface {
	EmployeeID() string
	EmployeeName() string
	SetEmployeeID(id string) error
	SetEmployeeName(name string) error
	Clear() error
}

type diskvStore struct {
	d *diskv.Diskv
}

// NewStore creates a session store rooted at the configured session
// directory.
func NewStore(cfg *config.Config) Store {
	return &diskvStore{d: diskv.New(diskv.Options{
		BasePath:     cfg.Session.Dir,
		CacheSizeMax: 1024 * 1024, // 1MB
	})}
}

func (s *diskvStore) read(key string) string {
	val, err := s.d.Read(key)
	if err != nil {
		return ""
	}
	return string(val)
}

func (s *diskvStore) write(key, value string) error {
	if err := s.d.Write(key, []byte(value)); err != nil {
		return apperrors.NewStorageError("write session key "+key, err)
	}
	return nil
}

func (s *diskvStore) EmployeeID() string {
	return s.read(keyEmployeeID)
}

func (s *diskvStore) EmployeeName() string {
	return s.read(keyEmployeeName)
}

func (s *diskvStore) SetEmployeeID(id string) error {
	return s.write(keyEmployeeID, id)
}

func (s *diskvStore) SetEmployeeName(name string) error {
	return s.write(keyEmployeeName, name)
}

func (s *diskvStore) Clear() error {
	for _, key := range []string{keyEmployeeID, keyEmployeeName} {
		if err := s.d.Erase(key); err != nil && s.d.Has(key) {
			return apperrors.NewStorageError("erase session key "+key, err)
		}
	}
	return nil
}

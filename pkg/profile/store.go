package profile

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

// NotFoundError indicates a profile that does not exist in the store.
type NotFoundError struct {
	Name string
}

// Error implements the error interface.
func (e *NotFoundError) Error() (msg string) {
	msg = fmt.Sprintf("profile not found: %s", e.Name)
	return msg
}

// IsNotFound reports whether err is a profile NotFoundError.
func IsNotFound(err error) (notFound bool) {
	var nfe *NotFoundError
	notFound = errors.As(err, &nfe)
	return notFound
}

// Store persists profiles as one JSON file per profile.
//
// Profile names map to filenames with spaces replaced by underscores, and
// back again on listing. Writes are last-write-wins with no locking.
type Store struct {
	dir string
}

// NewStore creates a Store rooted at dir, creating it if necessary.
func NewStore(dir string) (store *Store, err error) {
	err = os.MkdirAll(dir, 0750)
	if err != nil {
		err = errors.Wrapf(err, "failed to create profiles directory: %s", dir)
		return store, err
	}

	store = &Store{dir: dir}
	return store, err
}

// validateName rejects names whose filename transform would resolve
// outside the store directory.
func validateName(name string) (err error) {
	if strings.ContainsAny(name, `/\`) || strings.Contains(name, "..") {
		err = &ValidationError{Field: "name", Message: "name must not contain path separators"}
		return err
	}
	return err
}

// Save validates and persists a profile, overwriting any existing profile
// of the same name.
func (s *Store) Save(p Profile) (err error) {
	err = p.Validate()
	if err != nil {
		return err
	}

	err = validateName(p.Name)
	if err != nil {
		return err
	}

	var data []byte
	data, err = json.MarshalIndent(p, "", "  ")
	if err != nil {
		err = errors.Wrapf(err, "failed to marshal profile %s", p.Name)
		return err
	}

	path := s.profilePath(p.Name)
	err = os.WriteFile(path, data, 0600)
	if err != nil {
		err = errors.Wrapf(err, "failed to write profile file: %s", path)
		return err
	}

	return err
}

// Load retrieves a profile by name. A missing profile returns a
// NotFoundError recognizable via IsNotFound.
func (s *Store) Load(name string) (p Profile, err error) {
	err = validateName(name)
	if err != nil {
		return p, err
	}

	path := s.profilePath(name)

	var data []byte
	data, err = os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			err = &NotFoundError{Name: name}
			return p, err
		}
		err = errors.Wrapf(err, "failed to read profile file: %s", path)
		return p, err
	}

	err = json.Unmarshal(data, &p)
	if err != nil {
		err = errors.Wrapf(err, "failed to parse profile file: %s", path)
		return p, err
	}

	return p, err
}

// Delete removes a profile. It reports whether a profile was deleted and
// only errors on filesystem failure.
func (s *Store) Delete(name string) (deleted bool, err error) {
	err = validateName(name)
	if err != nil {
		return deleted, err
	}

	path := s.profilePath(name)

	err = os.Remove(path)
	if err != nil {
		if os.IsNotExist(err) {
			err = nil
			return deleted, err
		}
		err = errors.Wrapf(err, "failed to delete profile file: %s", path)
		return deleted, err
	}

	deleted = true
	return deleted, err
}

// List returns the names of all stored profiles. Order is unspecified.
// A corrupt profile file still appears here; it fails on Load instead.
func (s *Store) List() (names []string, err error) {
	var entries []os.DirEntry
	entries, err = os.ReadDir(s.dir)
	if err != nil {
		err = errors.Wrapf(err, "failed to read profiles directory: %s", s.dir)
		return names, err
	}

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		stem := strings.TrimSuffix(entry.Name(), ".json")
		names = append(names, strings.ReplaceAll(stem, "_", " "))
	}

	return names, err
}

func (s *Store) profilePath(name string) (path string) {
	filename := strings.ReplaceAll(name, " ", "_") + ".json"
	path = filepath.Join(s.dir, filename)
	return path
}

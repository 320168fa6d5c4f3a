package identity

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/uuid"
)

// Identity is the caller's self-asserted owner id plus the profile they created.
// It is not authenticated; anyone can claim any user id.
type Identity struct {
	UserID      string `json:"user_id"`
	MyProfileID string `json:"my_profile_id,omitempty"`
}

// Store persists an Identity as JSON in a single file
type Store struct {
	path string
	mu   sync.Mutex
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

// DefaultPath returns <user config dir>/mingle/identity.json
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "mingle", "identity.json"), nil
}

func (s *Store) Path() string { return s.path }

// Load returns the stored identity, generating and saving a new user id on
// first use.
func (s *Store) Load() (Identity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, err := s.read()
	if err != nil {
		return Identity{}, err
	}
	if id.UserID == "" {
		id.UserID = uuid.NewString()
		if err := s.write(id); err != nil {
			return Identity{}, err
		}
	}
	return id, nil
}

// SetProfileID records the caller's own profile id
func (s *Store) SetProfileID(profileID string) (Identity, error) {
	id, err := s.Load()
	if err != nil {
		return Identity{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	id.MyProfileID = profileID
	return id, s.write(id)
}

func (s *Store) read() (Identity, error) {
	var id Identity
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return id, nil
	}
	if err != nil {
		return id, fmt.Errorf("read identity: %w", err)
	}
	if err := json.Unmarshal(data, &id); err != nil {
		return Identity{}, fmt.Errorf("parse identity %s: %w", s.path, err)
	}
	return id, nil
}

func (s *Store) write(id Identity) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create identity dir: %w", err)
	}
	data, err := json.MarshalIndent(id, "", "  ")
	if err != nil {
		return err
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("write identity: %w", err)
	}
	return os.Rename(tmp, s.path)
}

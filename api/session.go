// ABOUTME: Session token persistence
// ABOUTME: Stores the auth token as JSON at an explicit path, not ambient state
package api

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Session is the explicit session context handed to the Client. It replaces
// the original front end's global storage access: set at login, read per
// request, cleared at logout.
type Session struct {
	path  string
	token string
}

type sessionFile struct {
	Token   string    `json:"token"`
	SavedAt time.Time `json:"saved_at"`
}

// NewSession creates a session backed by the given file path. An unreadable
// or missing file just means "not logged in".
func NewSession(path string) *Session {
	s := &Session{path: path}
	data, err := os.ReadFile(path)
	if err != nil {
		return s
	}
	var f sessionFile
	if err := json.Unmarshal(data, &f); err != nil {
		return s
	}
	s.token = f.Token
	return s
}

// Token returns the current auth token, empty when logged out.
func (s *Session) Token() string {
	return s.token
}

// Save stores the token and persists it for subsequent runs.
func (s *Session) Save(token string) error {
	s.token = token

	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("failed to create session directory: %w", err)
	}
	data, err := json.MarshalIndent(sessionFile{Token: token, SavedAt: time.Now()}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write session file: %w", err)
	}
	return nil
}

// Clear forgets the token and removes the file.
func (s *Session) Clear() error {
	s.token = ""
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove session file: %w", err)
	}
	return nil
}

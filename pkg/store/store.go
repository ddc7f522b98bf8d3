// Package store persists client-side state under the finmind config
// directory: the generated user identity and the accumulated game results.
package store

import (
	"crypto/rand"
	"encoding/json"
	"fmt"
	"math/big"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/finmindlabs/finmind/pkg/config"
	"github.com/finmindlabs/finmind/pkg/games"
)

const (
	identityFile = "identity.json"
	resultsFile  = "results.json"
)

// Store manages the local state files.
type Store struct {
	mu  sync.RWMutex
	dir string
}

// New creates a store rooted at the user config directory.
func New() (*Store, error) {
	dir, err := config.GetConfigDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get config directory: %w", err)
	}
	return NewAt(dir), nil
}

// NewAt creates a store rooted at an explicit directory.
func NewAt(dir string) *Store {
	return &Store{dir: dir}
}

// Identity is the persisted per-profile identity. UserID is the sole
// correlation key for server-side history lookup: no authentication, no
// uniqueness guarantee across devices.
type Identity struct {
	UserID    int64     `json:"user_id"`
	Onboarded bool      `json:"onboarded"`
	CreatedAt time.Time `json:"created_at"`
}

// Identity loads the stored identity, generating and persisting one on
// first use.
func (s *Store) Identity() (Identity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	path := filepath.Join(s.dir, identityFile)

	var id Identity
	if data, err := os.ReadFile(path); err == nil {
		if err := json.Unmarshal(data, &id); err == nil && id.UserID != 0 {
			return id, nil
		}
	}

	userID, err := randomUserID()
	if err != nil {
		return Identity{}, fmt.Errorf("failed to generate user id: %w", err)
	}

	id = Identity{UserID: userID, CreatedAt: time.Now()}
	if err := s.writeJSON(path, id); err != nil {
		return Identity{}, err
	}
	return id, nil
}

// SetOnboarded marks the first-run welcome as seen.
func (s *Store) SetOnboarded(id Identity) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	id.Onboarded = true
	return s.writeJSON(filepath.Join(s.dir, identityFile), id)
}

// GameResult is one completed mini-game run. Appended once, never mutated.
type GameResult struct {
	ID        string          `json:"id"`
	Game      games.Kind      `json:"game"`
	Score     int             `json:"score"`
	Total     int             `json:"total"`
	Results   []games.Outcome `json:"results"`
	Timestamp time.Time       `json:"timestamp"`
}

// NewGameResult snapshots a finished session into a result record.
func NewGameResult(sess *games.Session) GameResult {
	return GameResult{
		ID:        uuid.NewString(),
		Game:      sess.Kind,
		Score:     sess.Score,
		Total:     sess.Total(),
		Results:   sess.Results,
		Timestamp: time.Now(),
	}
}

// AppendResult adds a result to the persisted list.
func (s *Store) AppendResult(r GameResult) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	results, err := s.loadResultsLocked()
	if err != nil {
		return err
	}
	results = append(results, r)
	return s.writeJSON(filepath.Join(s.dir, resultsFile), results)
}

// LoadResults returns all stored results in append order. A missing file
// is an empty list.
func (s *Store) LoadResults() ([]GameResult, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loadResultsLocked()
}

func (s *Store) loadResultsLocked() ([]GameResult, error) {
	data, err := os.ReadFile(filepath.Join(s.dir, resultsFile))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read results: %w", err)
	}

	var results []GameResult
	if err := json.Unmarshal(data, &results); err != nil {
		return nil, fmt.Errorf("corrupt results file: %w", err)
	}
	return results, nil
}

func (s *Store) writeJSON(path string, v any) error {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// randomUserID draws a positive id from a wide numeric range. Collisions
// across devices are possible and accepted; the backend treats the id as
// an opaque correlation key.
func randomUserID() (int64, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1_000_000_000))
	if err != nil {
		return 0, err
	}
	return n.Int64() + 1, nil
}

package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

// memoryMatch keeps encoded snapshots so callers never share the stored match.
type memoryMatch struct {
	mu      sync.RWMutex
	matches map[string][]byte
}

func NewMemoryMatchRepository() MatchRepository {
	return &memoryMatch{matches: make(map[string][]byte)}
}

func (that *memoryMatch) CreateOrUpdate(_ context.Context, match *entity.Match) error {
	matchJSON, err := json.Marshal(match)
	if err != nil {
		return fmt.Errorf("could not marshal match: %w", err)
	}

	that.mu.Lock()
	defer that.mu.Unlock()

	that.matches[match.ID] = matchJSON

	return nil
}

func (that *memoryMatch) GetByID(_ context.Context, id string) (*entity.Match, error) {
	that.mu.RLock()
	matchJSON, ok := that.matches[id]
	that.mu.RUnlock()

	if !ok {
		return nil, apperror.ErrMatchNotFound
	}

	var existingMatch entity.Match
	if err := json.Unmarshal(matchJSON, &existingMatch); err != nil {
		return nil, fmt.Errorf("failed to unmarshal match: %w", err)
	}

	return &existingMatch, nil
}

func (that *memoryMatch) DeleteByID(_ context.Context, id string) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	if _, ok := that.matches[id]; !ok {
		return apperror.ErrMatchNotFound
	}

	delete(that.matches, id)

	return nil
}

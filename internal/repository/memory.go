package repository

import (
	"context"
	"sync"
	"time"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
)

type memoryEntry struct {
	game      entity.Game
	expiresAt time.Time
}

type memoryGame struct {
	mu      sync.RWMutex
	games   map[string]memoryEntry
	ttl     time.Duration
	nextGC  time.Time
	nowFunc func() time.Time
}

// NewMemoryGameRepository keeps games in process memory. Games are stored by
// value so callers never share state with the store. Like the redis store,
// every write pushes the expiry ttl into the future; ttl <= 0 keeps games
// forever.
func NewMemoryGameRepository(ttl time.Duration) GameRepository {
	return &memoryGame{
		games:   make(map[string]memoryEntry),
		ttl:     ttl,
		nowFunc: time.Now,
	}
}

func (that *memoryGame) CreateOrUpdate(_ context.Context, game *entity.Game) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	now := that.nowFunc()
	that.collect(now)

	entry := memoryEntry{game: *game}
	if that.ttl > 0 {
		entry.expiresAt = now.Add(that.ttl)
	}

	that.games[game.ID] = entry

	return nil
}

func (that *memoryGame) GetByID(_ context.Context, id string) (*entity.Game, error) {
	that.mu.RLock()
	entry, ok := that.games[id]
	that.mu.RUnlock()

	if !ok {
		return nil, ErrGameNotFound
	}

	if entry.expired(that.nowFunc()) {
		that.mu.Lock()
		if current, ok := that.games[id]; ok && current.expiresAt.Equal(entry.expiresAt) {
			delete(that.games, id)
		}
		that.mu.Unlock()

		return nil, ErrGameNotFound
	}

	game := entry.game

	return &game, nil
}

func (that *memoryGame) DeleteByID(_ context.Context, id string) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	delete(that.games, id)

	return nil
}

// collect drops expired games at most once per ttl. Must be called with mu held.
func (that *memoryGame) collect(now time.Time) {
	if that.ttl <= 0 || now.Before(that.nextGC) {
		return
	}

	for id, entry := range that.games {
		if entry.expired(now) {
			delete(that.games, id)
		}
	}

	that.nextGC = now.Add(that.ttl)
}

func (that memoryEntry) expired(now time.Time) bool {
	return !that.expiresAt.IsZero() && !now.Before(that.expiresAt)
}

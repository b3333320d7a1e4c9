package repository

import (
	"context"
	"fmt"
	"hash/fnv"
	"sort"
	"sync"

	"github.com/okian/gaffer/internal/domain/catalogue"
	"github.com/okian/gaffer/internal/domain/model"
)

const defaultShardCount = 8

// PoolStore is a sharded in-memory Store. Ranking reads sort on demand:
// a scouting pool holds at most a few hundred players, so there is nothing
// to gain from keeping an ordered structure hot.
type PoolStore struct {
	shardCount int
	shards     []*shard
}

type shard struct {
	mu      sync.RWMutex
	players map[model.PlayerID]model.Player
}

// NewPoolStore creates a pool store with configuration options.
func NewPoolStore(opts ...Option) *PoolStore {
	s := &PoolStore{shardCount: defaultShardCount}
	for _, opt := range opts {
		opt(s)
	}
	s.shards = make([]*shard, s.shardCount)
	for i := range s.shards {
		s.shards[i] = &shard{players: make(map[model.PlayerID]model.Player)}
	}
	return s
}

func (s *PoolStore) shardFor(id model.PlayerID) *shard {
	h := fnv.New32a()
	h.Write([]byte(id))
	return s.shards[int(h.Sum32())%s.shardCount]
}

// Add inserts or replaces a player. The latest row for a name wins.
func (s *PoolStore) Add(_ context.Context, p model.Player) error {
	sh := s.shardFor(p.ID)
	sh.mu.Lock()
	defer sh.mu.Unlock()
	sh.players[p.ID] = p
	return nil
}

// TopN returns the n best-rated players for role, score descending, name
// ascending between equal scores.
func (s *PoolStore) TopN(ctx context.Context, role catalogue.RoleID, n int) ([]Entry, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLimit, n)
	}
	ranked, err := s.ranking(ctx, role)
	if err != nil {
		return nil, err
	}
	if n < len(ranked) {
		ranked = ranked[:n]
	}
	return ranked, nil
}

// Rank returns the position of player within the role's ranking.
func (s *PoolStore) Rank(ctx context.Context, role catalogue.RoleID, player model.PlayerID) (Entry, error) {
	ranked, err := s.ranking(ctx, role)
	if err != nil {
		return Entry{}, err
	}
	for _, e := range ranked {
		if e.Player == player {
			return e, nil
		}
	}
	return Entry{}, fmt.Errorf("%w: %q has no %s rating", ErrNotFound, player, role)
}

// Count returns the number of players in the pool.
func (s *PoolStore) Count(_ context.Context) int {
	total := 0
	for _, sh := range s.shards {
		sh.mu.RLock()
		total += len(sh.players)
		sh.mu.RUnlock()
	}
	return total
}

// ranking collects every player rated for role, sorted and rank-numbered.
func (s *PoolStore) ranking(_ context.Context, role catalogue.RoleID) ([]Entry, error) {
	if _, ok := catalogue.RoleOffset(role); !ok {
		return nil, fmt.Errorf("%w: %q", catalogue.ErrUnknownRole, role)
	}
	var entries []Entry
	for _, sh := range s.shards {
		sh.mu.RLock()
		for _, p := range sh.players {
			if r := p.Rating(role); r.Valid {
				entries = append(entries, Entry{Player: p.ID, Age: p.Age, Score: r.Value})
			}
		}
		sh.mu.RUnlock()
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Score != entries[j].Score {
			return entries[i].Score > entries[j].Score
		}
		return entries[i].Player < entries[j].Player
	})
	for i := range entries {
		entries[i].Rank = i + 1
	}
	return entries, nil
}

// Package counter tracks how often each dashboard view is selected.
package counter

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/redis/go-redis/v9"

	"github.com/ManuelReschke/CoronaDash/internal/pkg/cache"
)

const selectionsKey = "coronadash:counters:selections"

// Count is one ranked entry. An empty Country stands for the worldwide view.
type Count struct {
	Country    string `json:"country"`
	Selections int64  `json:"selections"`
}

type Counter interface {
	Add(ctx context.Context, country string) error
	Top(ctx context.Context, n int) ([]Count, error)
}

// New counts in the shared cache when SetupCache connected, in process otherwise
func New() Counter {
	if client := cache.GetClient(); client != nil {
		return NewRedisCounter(client)
	}
	return NewMemoryCounter()
}

// RedisCounter keeps the counts in a redis hash so every instance sees the same ranking
type RedisCounter struct {
	client *redis.Client
	key    string
}

func NewRedisCounter(client *redis.Client) *RedisCounter {
	return &RedisCounter{client: client, key: selectionsKey}
}

func (r *RedisCounter) Add(ctx context.Context, country string) error {
	return r.client.HIncrBy(ctx, r.key, country, 1).Err()
}

func (r *RedisCounter) Top(ctx context.Context, n int) ([]Count, error) {
	data, err := r.client.HGetAll(ctx, r.key).Result()
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(data))
	for field, v := range data {
		inc, perr := strconv.ParseInt(v, 10, 64)
		if perr != nil {
			return nil, fmt.Errorf("counter %q: %w", field, perr)
		}
		counts[field] = inc
	}
	return rank(counts, n), nil
}

// Reset drops all counts
func (r *RedisCounter) Reset(ctx context.Context) error {
	return r.client.Del(ctx, r.key).Err()
}

type MemoryCounter struct {
	mu     sync.Mutex
	counts map[string]int64
}

func NewMemoryCounter() *MemoryCounter {
	return &MemoryCounter{counts: make(map[string]int64)}
}

func (m *MemoryCounter) Add(_ context.Context, country string) error {
	m.mu.Lock()
	if _, ok := m.counts[country]; !ok {
		country = strings.Clone(country)
	}
	m.counts[country]++
	m.mu.Unlock()
	return nil
}

func (m *MemoryCounter) Top(_ context.Context, n int) ([]Count, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return rank(m.counts, n), nil
}

// rank orders by selections descending, ties by country, and keeps the first n
func rank(counts map[string]int64, n int) []Count {
	out := make([]Count, 0, len(counts))
	for country, c := range counts {
		out = append(out, Count{Country: country, Selections: c})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Selections != out[j].Selections {
			return out[i].Selections > out[j].Selections
		}
		return out[i].Country < out[j].Country
	})
	if n >= 0 && len(out) > n {
		out = out[:n]
	}
	return out
}

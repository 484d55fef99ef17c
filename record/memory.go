package record

import (
	"context"
	"sync"
)

type Memory struct {
	sync.Mutex
	stats   map[string]*Stats
	results []Result
}

func NewMemory() *Memory {
	return &Memory{stats: map[string]*Stats{}}
}

func (m *Memory) Record(_ context.Context, result Result) error {
	m.Lock()
	defer m.Unlock()
	for _, name := range result.Players {
		m.player(name).Played++
	}
	if result.Winner != "" {
		m.player(result.Winner).Won++
	}
	m.results = append([]Result{result}, m.results...)
	if len(m.results) > RecentLimit {
		m.results = m.results[:RecentLimit]
	}
	return nil
}

func (m *Memory) Stats(_ context.Context, name string) (Stats, error) {
	m.Lock()
	defer m.Unlock()
	if stats, ok := m.stats[name]; ok {
		return *stats, nil
	}
	return Stats{Name: name}, nil
}

// Recent returns up to limit results, newest first.
func (m *Memory) Recent(_ context.Context, limit int) ([]Result, error) {
	m.Lock()
	defer m.Unlock()
	if limit <= 0 || limit > len(m.results) {
		limit = len(m.results)
	}
	return append([]Result(nil), m.results[:limit]...), nil
}

func (m *Memory) player(name string) *Stats {
	stats, ok := m.stats[name]
	if !ok {
		stats = &Stats{Name: name}
		m.stats[name] = stats
	}
	return stats
}

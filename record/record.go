// Package record keeps the outcome of finished games and per-player totals.
package record

import (
	"context"
	"time"
)

// RecentLimit caps how many finished games are kept.
const RecentLimit = 100

type Result struct {
	GameID     string    `json:"gameId"`
	RoomID     int64     `json:"roomId"`
	Winner     string    `json:"winner"`
	Players    []string  `json:"players"`
	Rounds     int       `json:"rounds"`
	FinishedAt time.Time `json:"finishedAt"`
}

type Stats struct {
	Name   string `json:"name"`
	Played int    `json:"played"`
	Won    int    `json:"won"`
}

// Recorder stores results. A game without a winner still counts as played.
type Recorder interface {
	Record(ctx context.Context, result Result) error
	Stats(ctx context.Context, name string) (Stats, error)
	Recent(ctx context.Context, limit int) ([]Result, error)
}

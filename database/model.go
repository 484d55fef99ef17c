package database

import "github.com/ratel-online/deal/record"

type PlayerInfo struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Score  int64  `json:"score"`
	Online bool   `json:"online"`
}

type RoomInfo struct {
	ID         int64          `json:"id"`
	State      int            `json:"state"`
	StateDesc  string         `json:"stateDesc"`
	Players    []PlayerInfo   `json:"players"`
	Robots     int            `json:"robots"`
	Creator    int64          `json:"creator"`
	Locked     bool           `json:"locked"`
	Game       *GameInfo      `json:"game,omitempty"`
	LastResult *record.Result `json:"lastResult,omitempty"`
}

type SeatInfo struct {
	Name      string   `json:"name"`
	HandSize  int      `json:"handSize"`
	Bank      int      `json:"bank"`
	FullSets  int      `json:"fullSets"`
	SetColors []string `json:"setColors"`
}

type GameInfo struct {
	ID     string     `json:"id"`
	Status string     `json:"status"`
	Round  int        `json:"round"`
	Seats  []SeatInfo `json:"seats"`
}

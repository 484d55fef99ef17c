package database

import (
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/ratel-online/deal/consts"
	"github.com/ratel-online/deal/record"
)

type Room struct {
	sync.Mutex

	ID         int64          `json:"id"`
	State      int            `json:"state"`
	Players    int            `json:"players"`
	Robots     int            `json:"robots"`
	Creator    int64          `json:"creator"`
	ActiveTime time.Time      `json:"activeTime"`
	Password   string         `json:"password"`
	EnableChat bool           `json:"enableChat"`
	Game       *Game          `json:"game"`
	LastResult *record.Result `json:"lastResult"`
}

// Model describes the room for listings. The caller holds the room lock.
func (room *Room) Model() RoomInfo {
	info := RoomInfo{
		ID:         room.ID,
		State:      room.State,
		StateDesc:  consts.RoomStates[room.State],
		Players:    make([]PlayerInfo, 0, room.Players),
		Robots:     room.Robots,
		Creator:    room.Creator,
		Locked:     room.Password != "",
		LastResult: room.LastResult,
	}
	for _, player := range RoomPlayers(room.ID) {
		info.Players = append(info.Players, player.Model())
	}
	if room.Game != nil {
		gameInfo := room.Game.Model()
		info.Game = &gameInfo
	}
	return info
}

// SetProps changes a room setting from the waiting room. The caller holds
// the room lock.
func (room *Room) SetProps(key, value string) error {
	switch strings.ToLower(key) {
	case consts.RoomPropsRobots:
		robots, err := strconv.Atoi(value)
		if err != nil || robots < 0 || room.Players+robots > consts.MaxPlayers {
			return consts.ErrorsRoomPropsInvalid
		}
		room.Robots = robots
	case consts.RoomPropsPassword:
		if value == "off" {
			value = ""
		}
		room.Password = value
	case consts.RoomPropsChat:
		switch value {
		case "on":
			room.EnableChat = true
		case "off":
			room.EnableChat = false
		default:
			return consts.ErrorsRoomPropsInvalid
		}
	default:
		return consts.ErrorsRoomPropsInvalid
	}
	room.ActiveTime = time.Now()
	return nil
}

func (room *Room) broadcast(msg string, exclude ...int64) {
	room.ActiveTime = time.Now()
	excludeSet := map[int64]bool{}
	for _, exc := range exclude {
		excludeSet[exc] = true
	}
	for _, player := range RoomPlayers(room.ID) {
		if !excludeSet[player.ID] {
			_ = player.WriteString(">> " + msg)
		}
	}
}

package database

import (
	"sort"
	"sync/atomic"
	"time"

	"github.com/awesome-cap/hashmap"
	"github.com/ratel-online/core/log"
	modelx "github.com/ratel-online/core/model"
	"github.com/ratel-online/core/network"
	"github.com/ratel-online/core/util/async"
	"github.com/ratel-online/deal/consts"
	"github.com/ratel-online/deal/deal/game"
	"github.com/ratel-online/deal/record"
	"go.uber.org/zap"
)

var roomIds int64 = 0
var players = hashmap.New()
var rooms = hashmap.New()
var roomPlayers = hashmap.New()

// Options are shared by every game the server runs.
type Options struct {
	Recorder    record.Recorder
	Logger      *zap.Logger
	MaxRounds   int
	PlayTimeout time.Duration
}

var options = Options{
	Recorder:    record.NewMemory(),
	Logger:      zap.NewNop(),
	MaxRounds:   game.MaxRounds,
	PlayTimeout: consts.PlayTimeout,
}

// Setup replaces the non-zero fields of the server options.
func Setup(opts Options) {
	if opts.Recorder != nil {
		options.Recorder = opts.Recorder
	}
	if opts.Logger != nil {
		options.Logger = opts.Logger
	}
	if opts.MaxRounds > 0 {
		options.MaxRounds = opts.MaxRounds
	}
	if opts.PlayTimeout > 0 {
		options.PlayTimeout = opts.PlayTimeout
	}
}

func Recorder() record.Recorder {
	return options.Recorder
}

func init() {
	async.Async(func() {
		for {
			time.Sleep(1 * time.Minute)
			for _, room := range GetRooms() {
				room.Lock()
				roomCancel(room)
				room.Unlock()
			}
		}
	})
}

func Connected(conn *network.Conn, info *modelx.AuthInfo) *Player {
	player := &Player{
		ID:    info.ID,
		Name:  info.Name,
		Score: info.Score,
	}
	player.Conn(conn)
	players.Set(info.ID, player)
	return player
}

func CreateRoom(creator int64) *Room {
	room := &Room{
		ID:         atomic.AddInt64(&roomIds, 1),
		State:      consts.RoomStateWaiting,
		Creator:    creator,
		Robots:     consts.MinPlayers - 1,
		EnableChat: true,
		ActiveTime: time.Now(),
	}
	rooms.Set(room.ID, room)
	roomPlayers.Set(room.ID, []int64{})
	if err := JoinRoom(room.ID, creator); err != nil {
		log.Error(err)
	}
	return room
}

func GetRooms() []*Room {
	list := make([]*Room, 0)
	rooms.Foreach(func(e *hashmap.Entry) {
		list = append(list, e.Value().(*Room))
	})
	sort.Slice(list, func(i, j int) bool {
		return list[i].ID < list[j].ID
	})
	return list
}

func GetRoom(roomId int64) *Room {
	if v, ok := rooms.Get(roomId); ok {
		return v.(*Room)
	}
	return nil
}

func GetPlayer(playerId int64) *Player {
	if v, ok := players.Get(playerId); ok {
		return v.(*Player)
	}
	return nil
}

// RoomPlayers lists the players of a room in the order they joined.
func RoomPlayers(roomId int64) []*Player {
	list := make([]*Player, 0)
	for _, id := range getRoomPlayers(roomId) {
		if player := GetPlayer(id); player != nil {
			list = append(list, player)
		}
	}
	return list
}

func getRoomPlayers(roomId int64) []int64 {
	if v, ok := roomPlayers.Get(roomId); ok {
		return v.([]int64)
	}
	return nil
}

func JoinRoom(roomId, playerId int64) error {
	player := GetPlayer(playerId)
	if player == nil {
		return consts.ErrorsExist
	}
	room := GetRoom(roomId)
	if room == nil {
		return consts.ErrorsRoomInvalid
	}
	room.Lock()
	defer room.Unlock()
	if room.State == consts.RoomStateRunning {
		return consts.ErrorsJoinFailForRoomRunning
	}
	if room.Players >= consts.MaxPlayers {
		return consts.ErrorsRoomPlayersIsFull
	}
	playerIds := getRoomPlayers(roomId)
	for _, id := range playerIds {
		if other := GetPlayer(id); other != nil && other.Name == player.Name {
			return consts.ErrorsNameTaken
		}
	}
	roomPlayers.Set(roomId, append(playerIds, playerId))
	room.Players++
	if room.Players+room.Robots > consts.MaxPlayers {
		room.Robots = consts.MaxPlayers - room.Players
	}
	room.ActiveTime = time.Now()
	player.RoomID = roomId
	return nil
}

func LeaveRoom(roomId, playerId int64) bool {
	room := GetRoom(roomId)
	if room == nil {
		return false
	}
	room.Lock()
	defer room.Unlock()
	return leaveRoom(room, GetPlayer(playerId))
}

func leaveRoom(room *Room, player *Player) bool {
	if room == nil || player == nil {
		return false
	}
	playerIds := getRoomPlayers(room.ID)
	remaining := make([]int64, 0, len(playerIds))
	for _, id := range playerIds {
		if id != player.ID {
			remaining = append(remaining, id)
		}
	}
	left := len(remaining) < len(playerIds)
	if left {
		room.Players--
		room.ActiveTime = time.Now()
		player.RoomID = 0
		roomPlayers.Set(room.ID, remaining)
		if len(remaining) > 0 && room.Creator == player.ID {
			room.Creator = remaining[0]
		}
	}
	if len(remaining) == 0 {
		deleteRoom(room)
	}
	return left
}

func offline(roomId, playerId int64) {
	room := GetRoom(roomId)
	if room == nil {
		return
	}
	room.Lock()
	defer room.Unlock()
	player := GetPlayer(playerId)
	if player != nil {
		room.broadcast(player.Name+" lost connection!\n", playerId)
	}
	if room.State == consts.RoomStateWaiting {
		leaveRoom(room, player)
	}
	roomCancel(room)
}

// roomCancel removes a room that has been idle for a day or that nobody
// online is in any more. The caller holds the room lock.
func roomCancel(room *Room) {
	if GetRoom(room.ID) == nil {
		return
	}
	if room.ActiveTime.Add(24 * time.Hour).Before(time.Now()) {
		log.Infof("room %d is timeout 24 hours, removed.\n", room.ID)
		deleteRoom(room)
		return
	}
	for _, id := range getRoomPlayers(room.ID) {
		if player := GetPlayer(id); player != nil && player.Online() {
			return
		}
	}
	log.Infof("room %d is not living, removed.\n", room.ID)
	deleteRoom(room)
}

func deleteRoom(room *Room) {
	if room != nil {
		rooms.Del(room.ID)
		roomPlayers.Del(room.ID)
	}
}

func Broadcast(roomId int64, msg string, exclude ...int64) {
	room := GetRoom(roomId)
	if room == nil {
		return
	}
	room.Lock()
	defer room.Unlock()
	room.broadcast(msg, exclude...)
}

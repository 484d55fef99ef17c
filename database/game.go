package database

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/ratel-online/core/log"
	"github.com/ratel-online/core/util/async"
	"github.com/ratel-online/deal/consts"
	"github.com/ratel-online/deal/deal/card"
	"github.com/ratel-online/deal/deal/game"
	bot "github.com/ratel-online/deal/deal/player"
	"github.com/ratel-online/deal/record"
	"go.uber.org/zap"
	"golang.org/x/exp/rand"
)

// Game is the session of one room's game. Play runs on its own goroutine;
// everyone else reads the snapshot taken after every turn.
type Game struct {
	Room    *Room
	Game    *game.Game
	Players []int64

	ready chan int64
	done  chan struct{}

	mu   sync.RWMutex
	info GameInfo
}

// StartGame seats the room's players and robots and starts playing in the
// background.
func StartGame(room *Room) error {
	room.Lock()
	defer room.Unlock()
	if room.State == consts.RoomStateRunning {
		return consts.ErrorsGameStarted
	}
	playerIds := getRoomPlayers(room.ID)
	if len(playerIds)+room.Robots < consts.MinPlayers || len(playerIds)+room.Robots > consts.MaxPlayers {
		return consts.ErrorsGamePlayersInvalid
	}

	seats := make([]game.Player, 0, len(playerIds)+room.Robots)
	names := make([]string, 0, len(playerIds))
	for _, id := range playerIds {
		player := GetPlayer(id)
		if player == nil {
			return consts.ErrorsGamePlayersInvalid
		}
		seats = append(seats, newDealPlayer(player, options.PlayTimeout))
		names = append(names, player.Name)
	}
	r := rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	seats = append(seats, bot.GenerateBots(room.Robots, r, names...)...)

	session := &Game{
		Room:    room,
		Players: append([]int64(nil), playerIds...),
		ready:   make(chan int64, len(playerIds)),
		done:    make(chan struct{}),
	}
	id := uuid.NewString()
	g, err := game.New(seats,
		game.WithID(id),
		game.WithSeed(r.Uint64()),
		game.WithMaxRounds(options.MaxRounds),
		game.WithLogger(options.Logger.With(zap.Int64("room", room.ID))),
		game.WithAfterTurn(session.snapshot),
	)
	if err != nil {
		return fmt.Errorf("room %d: %w", room.ID, err)
	}
	session.Game = g
	session.snapshot()

	room.Game = session
	room.State = consts.RoomStateRunning
	room.ActiveTime = time.Now()
	log.Infof("room %d started game %s with %d players\n", room.ID, id, len(seats))
	async.Async(session.run)
	return nil
}

// Ready tells the session that a player has stopped reading its waiting
// room input.
func (s *Game) Ready(playerId int64) {
	select {
	case s.ready <- playerId:
	default:
	}
}

// Done is closed once the game is over and the room is waiting again.
func (s *Game) Done() <-chan struct{} {
	return s.done
}

func (s *Game) Model() GameInfo {
	s.mu.RLock()
	defer s.mu.RUnlock()
	info := s.info
	info.Seats = append([]SeatInfo(nil), s.info.Seats...)
	return info
}

func (s *Game) run() {
	defer close(s.done)
	defer s.finish()
	s.waitReady(consts.ReadyTimeout)

	winner, err := s.Game.Play()
	s.snapshot()
	if err != nil {
		log.Error(err)
		return
	}
	result := record.Result{
		GameID:     s.Game.ID(),
		RoomID:     s.Room.ID,
		Players:    s.Game.Players(),
		Rounds:     s.Game.Rounds(),
		FinishedAt: time.Now(),
	}
	if winner != nil {
		result.Winner = winner.Name()
	}
	ctx, cancel := context.WithTimeout(context.Background(), consts.RecordTimeout)
	defer cancel()
	if err := options.Recorder.Record(ctx, result); err != nil {
		log.Error(err)
	}
	s.Room.Lock()
	s.Room.LastResult = &result
	s.Room.Unlock()
}

func (s *Game) waitReady(timeout time.Duration) {
	timer := time.NewTimer(timeout)
	defer timer.Stop()
	for waiting := len(s.Players); waiting > 0; waiting-- {
		select {
		case <-s.ready:
		case <-timer.C:
			return
		}
	}
}

// finish sends the room back to waiting and drops players who left while
// the game was on.
func (s *Game) finish() {
	room := s.Room
	room.Lock()
	defer room.Unlock()
	room.State = consts.RoomStateWaiting
	room.Game = nil
	room.ActiveTime = time.Now()
	if GetRoom(room.ID) == nil {
		return
	}
	for _, id := range s.Players {
		if player := GetPlayer(id); player != nil && !player.Online() {
			leaveRoom(room, player)
		}
	}
	if GetRoom(room.ID) != nil {
		roomCancel(room)
	}
}

func (s *Game) snapshot() {
	info := GameInfo{
		ID:     s.Game.ID(),
		Status: s.Game.Status().String(),
		Round:  s.Game.Rounds(),
		Seats:  make([]SeatInfo, 0, len(s.Game.Players())),
	}
	board := s.Game.Board()
	for _, name := range s.Game.Players() {
		seat := SeatInfo{
			Name:     name,
			HandSize: len(s.Game.GetPlayerCards(name)),
			Bank:     card.Value(board.Bank(name)),
			FullSets: len(board.FullSets(name)),
		}
		for _, set := range board.Properties(name) {
			seat.SetColors = append(seat.SetColors, set.Color.Name())
		}
		info.Seats = append(info.Seats, seat)
	}
	s.mu.Lock()
	s.info = info
	s.mu.Unlock()
}

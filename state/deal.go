package state

import (
	"github.com/ratel-online/deal/consts"
	"github.com/ratel-online/deal/database"
)

// deal parks the connection while the room's game is played. The game reads
// the player's answers itself.
type deal struct{}

func (*deal) Next(player *database.Player) (consts.StateID, error) {
	room := database.GetRoom(player.RoomID)
	if room == nil {
		return 0, consts.ErrorsExist
	}
	room.Lock()
	session := room.Game
	room.Unlock()
	if session == nil {
		return consts.StateWaiting, nil
	}
	if err := player.WriteString("Game starting!\n"); err != nil {
		return 0, player.WriteError(err)
	}
	session.Ready(player.ID)
	<-session.Done()
	return consts.StateWaiting, nil
}

func (*deal) Exit(player *database.Player) consts.StateID {
	return consts.StateWaiting
}

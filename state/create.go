package state

import (
	"fmt"

	"github.com/ratel-online/deal/consts"
	"github.com/ratel-online/deal/database"
)

type create struct{}

func (*create) Next(player *database.Player) (consts.StateID, error) {
	room := database.CreateRoom(player.ID)
	if player.RoomID != room.ID {
		return consts.StateHome, player.WriteError(consts.ErrorsRoomInvalid)
	}
	err := player.WriteString(fmt.Sprintf("Create room successful, id : %d\n", room.ID))
	if err != nil {
		return 0, player.WriteError(err)
	}
	return consts.StateWaiting, nil
}

func (*create) Exit(_ *database.Player) consts.StateID {
	return consts.StateHome
}

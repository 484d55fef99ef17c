package state

import (
	"strconv"
	"strings"

	"github.com/ratel-online/deal/consts"
	"github.com/ratel-online/deal/database"
	"github.com/ratel-online/deal/render"
)

type join struct{}

func (s *join) Next(player *database.Player) (consts.StateID, error) {
	err := render.RoomList(player)
	if err != nil {
		return 0, player.WriteError(err)
	}
	signal, err := player.AskForString()
	if err != nil {
		return 0, err
	}
	signal = strings.ToLower(signal)
	if isExit(signal) {
		return s.Exit(player), nil
	}
	if isLs(signal) {
		return 0, nil
	}
	roomId, err := strconv.ParseInt(strings.TrimPrefix(signal, "*"), 10, 64)
	if err != nil {
		return 0, player.WriteError(consts.ErrorsInputInvalid)
	}
	room := database.GetRoom(roomId)
	if room == nil {
		return 0, player.WriteError(consts.ErrorsRoomInvalid)
	}
	room.Lock()
	pwd := room.Password
	room.Unlock()
	if pwd != "" {
		err = verifyPassword(player, pwd)
		if err != nil {
			return 0, player.WriteError(err)
		}
	}
	err = database.JoinRoom(roomId, player.ID)
	if err != nil {
		return 0, player.WriteError(err)
	}
	render.Join(player, room)
	return consts.StateWaiting, nil
}

func (*join) Exit(player *database.Player) consts.StateID {
	return consts.StateHome
}

func verifyPassword(player *database.Player, pwd string) error {
	err := player.WriteString("Please input room password: \n")
	if err != nil {
		return err
	}
	password, err := player.AskForString()
	if err != nil {
		return err
	}
	if password != pwd {
		return consts.ErrorsRoomPassword
	}
	return nil
}

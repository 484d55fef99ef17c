package state

import (
	"fmt"
	"strings"
	"time"

	"github.com/ratel-online/deal/consts"
	"github.com/ratel-online/deal/database"
	"github.com/ratel-online/deal/render"
)

type waiting struct{}

func (s *waiting) Next(player *database.Player) (consts.StateID, error) {
	room := database.GetRoom(player.RoomID)
	if room == nil {
		return 0, consts.ErrorsExist
	}
	access, err := waitingForStart(player, room)
	if err != nil {
		return 0, err
	}
	if access {
		return consts.StateGame, nil
	}
	return s.Exit(player), nil
}

func (*waiting) Exit(player *database.Player) consts.StateID {
	room := database.GetRoom(player.RoomID)
	if room != nil {
		room.Lock()
		isOwner := room.Creator == player.ID
		room.Unlock()
		database.LeaveRoom(room.ID, player.ID)
		render.Exit(player, room)
		if isOwner {
			room.Lock()
			newOwner := database.GetPlayer(room.Creator)
			room.Unlock()
			if newOwner != nil && newOwner.ID != player.ID {
				render.OwnerChange(newOwner, room)
			}
		}
	}
	return consts.StateHome
}

func waitingForStart(player *database.Player, room *database.Room) (bool, error) {
	player.StartTransaction()
	defer player.StopTransaction()
	running, isOwner := roomStatus(player, room)
	if running {
		return true, nil
	}
	_ = render.WaitingHelp(player, isOwner)
	for {
		signal, err := player.AskForStringWithoutTransaction(time.Second)
		if err != nil && err != consts.ErrorsTimeout {
			return false, err
		}
		running, isOwner = roomStatus(player, room)
		if running {
			return true, nil
		}
		command := strings.ToLower(signal)
		switch {
		case command == "":
		case isLs(command):
			room.Lock()
			_ = render.RoomInfo(player, room)
			room.Unlock()
		case (command == "start" || command == "s") && isOwner:
			if err := database.StartGame(room); err != nil {
				_ = player.WriteError(err)
				continue
			}
			return true, nil
		case strings.HasPrefix(command, "set ") && isOwner:
			setRoomProps(player, room, strings.Fields(signal))
		default:
			player.BroadcastChat(signal)
		}
	}
}

func roomStatus(player *database.Player, room *database.Room) (running bool, isOwner bool) {
	room.Lock()
	defer room.Unlock()
	return room.State == consts.RoomStateRunning, room.Creator == player.ID
}

func setRoomProps(player *database.Player, room *database.Room, tags []string) {
	if len(tags) != 3 {
		_ = player.WriteError(consts.ErrorsRoomPropsInvalid)
		return
	}
	room.Lock()
	err := room.SetProps(tags[1], tags[2])
	room.Unlock()
	if err != nil {
		_ = player.WriteError(err)
		return
	}
	value := tags[2]
	if strings.ToLower(tags[1]) == consts.RoomPropsPassword {
		value = "********"
	}
	database.Broadcast(room.ID, fmt.Sprintf("%s set %s to %s\n", player.Name, strings.ToLower(tags[1]), value))
}

package render

import (
	"bytes"
	"fmt"

	"github.com/ratel-online/deal/consts"
	"github.com/ratel-online/deal/database"
)

func Welcome(player *database.Player) error {
	return player.WriteString(fmt.Sprintf("Hi %s, Welcome to ratel deal! \n", player.Name))
}

func HomeOptions(player *database.Player) error {
	buf := bytes.Buffer{}
	buf.WriteString("1.Join\n")
	buf.WriteString("2.New\n")
	return player.WriteString(buf.String())
}

func RoomList(player *database.Player) error {
	buf := bytes.Buffer{}
	buf.WriteString(fmt.Sprintf("%-10s%-10s%-10s%-10s\n", "ID", "Players", "Robots", "State"))
	for _, room := range database.GetRooms() {
		room.Lock()
		id := fmt.Sprintf("%d", room.ID)
		if room.Password != "" {
			id = "*" + id
		}
		buf.WriteString(fmt.Sprintf("%-10s%-10d%-10d%-10s\n", id, room.Players, room.Robots, consts.RoomStates[room.State]))
		room.Unlock()
	}
	buf.WriteString("Enter a room id, ls to refresh or exit to go back\n")
	return player.WriteString(buf.String())
}

// RoomInfo shows who is in the room and how it is set up. The caller holds
// the room lock.
func RoomInfo(player *database.Player, room *database.Room) error {
	buf := bytes.Buffer{}
	buf.WriteString(fmt.Sprintf("Room ID: %d\n", room.ID))
	buf.WriteString(fmt.Sprintf("%-20s%-10s%-10s\n", "Name", "Score", "Title"))
	for _, info := range database.RoomPlayers(room.ID) {
		title := "player"
		if info.ID == room.Creator {
			title = "owner"
		}
		buf.WriteString(fmt.Sprintf("%-20s%-10d%-10s\n", info.Name, info.Score, title))
	}
	buf.WriteString("\nSettings:\n")
	buf.WriteString(fmt.Sprintf("%-10s%-5d%-10s%-5s\n", "robots:", room.Robots, "chat:", onOff(room.EnableChat)))
	pwd := "off"
	if room.Password != "" {
		pwd = "********"
		if room.Creator == player.ID {
			pwd = room.Password
		}
	}
	buf.WriteString(fmt.Sprintf("%-10s%-20s\n", "pwd:", pwd))
	if room.LastResult != nil {
		winner := room.LastResult.Winner
		if winner == "" {
			winner = "nobody"
		}
		buf.WriteString(fmt.Sprintf("Last game: %s won after %d rounds\n", winner, room.LastResult.Rounds))
	}
	return player.WriteString(buf.String())
}

func WaitingHelp(player *database.Player, owner bool) error {
	buf := bytes.Buffer{}
	buf.WriteString("ls: show the room, exit: leave, anything else is chat\n")
	if owner {
		buf.WriteString("s: start, set robots N, set pwd X|off, set chat on|off\n")
	}
	return player.WriteString(buf.String())
}

func Join(player *database.Player, room *database.Room) {
	database.Broadcast(room.ID, fmt.Sprintf("%s joined room! room current has %d players\n", player.Name, room.Players))
}

func Exit(player *database.Player, room *database.Room) {
	database.Broadcast(room.ID, fmt.Sprintf("%s exited room! room current has %d players\n", player.Name, room.Players))
}

func OwnerChange(player *database.Player, room *database.Room) {
	database.Broadcast(room.ID, fmt.Sprintf("%s become new owner\n", player.Name))
}

func Error(player *database.Player, err error) error {
	return player.WriteError(err)
}

func onOff(on bool) string {
	if on {
		return "on"
	}
	return "off"
}

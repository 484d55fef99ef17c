package consts

import (
	"time"

	"github.com/ratel-online/core/consts"
)

type StateID int

const (
	_ StateID = iota
	StateWelcome
	StateHome
	StateJoin
	StateCreate
	StateWaiting
	StateGame
)

const (
	IsStart = consts.IsStart
	IsStop  = consts.IsStop

	MinPlayers = 2
	MaxPlayers = 5

	RoomStateWaiting = 1
	RoomStateRunning = 2

	AuthTimeout   = 3 * time.Second
	ReadyTimeout  = 3 * time.Second
	PlayTimeout   = 40 * time.Second
	RecordTimeout = 5 * time.Second
)

// Room properties.
const (
	RoomPropsRobots   = "robots"
	RoomPropsPassword = "pwd"
	RoomPropsChat     = "chat"
)

type Error struct {
	Code int
	Msg  string
	Exit bool
}

func (e Error) Error() string {
	return e.Msg
}

func NewErr(code int, exit bool, msg string) Error {
	return Error{Code: code, Exit: exit, Msg: msg}
}

var (
	ErrorsExist                  = NewErr(1, true, "Exist. ")
	ErrorsChanClosed             = NewErr(1, true, "Chan closed. ")
	ErrorsTimeout                = NewErr(1, false, "Timeout. ")
	ErrorsInputInvalid           = NewErr(1, false, "Input invalid. ")
	ErrorsChatUnopened           = NewErr(1, false, "Chat disabled. ")
	ErrorsAuthFail               = NewErr(1, true, "Auth fail. ")
	ErrorsRoomInvalid            = NewErr(1, true, "Room invalid. ")
	ErrorsRoomPlayersIsFull      = NewErr(1, false, "Room players is full. ")
	ErrorsRoomPassword           = NewErr(1, false, "Sorry! Password incorrect! ")
	ErrorsRoomPropsInvalid       = NewErr(1, false, "Room property invalid. ")
	ErrorsJoinFailForRoomRunning = NewErr(1, false, "Join fail, room is running. ")
	ErrorsNameTaken              = NewErr(1, false, "Someone in this room already uses your name. ")
	ErrorsGamePlayersInvalid     = NewErr(1, false, "Game players invalid. ")
	ErrorsGameStarted            = NewErr(1, false, "Game already started. ")

	RoomStates = map[int]string{
		RoomStateWaiting: "Waiting",
		RoomStateRunning: "Running",
	}
)

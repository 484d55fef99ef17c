package player

import (
	"github.com/ratel-online/deal/deal/game"
)

type basicPlayer struct {
	name string
}

func (p basicPlayer) Name() string {
	return p.name
}

func (p basicPlayer) Write(message string, channel game.Channel) {
}

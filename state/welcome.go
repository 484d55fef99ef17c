package state

import (
	"github.com/ratel-online/deal/consts"
	"github.com/ratel-online/deal/database"
	"github.com/ratel-online/deal/render"
)

type welcome struct{}

func (*welcome) Next(player *database.Player) (consts.StateID, error) {
	err := render.Welcome(player)
	if err != nil {
		return 0, player.WriteError(err)
	}
	return consts.StateHome, nil
}

func (*welcome) Exit(player *database.Player) consts.StateID {
	return 0
}

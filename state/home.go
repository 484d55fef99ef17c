package state

import (
	"github.com/ratel-online/deal/consts"
	"github.com/ratel-online/deal/database"
	"github.com/ratel-online/deal/render"
)

type home struct{}

func (*home) Next(player *database.Player) (consts.StateID, error) {
	err := render.HomeOptions(player)
	if err != nil {
		return 0, player.WriteError(err)
	}
	selected, err := player.AskForInt()
	if err != nil {
		if _, ok := err.(consts.Error); ok {
			return 0, err
		}
		return 0, player.WriteError(consts.ErrorsInputInvalid)
	}
	if selected == 1 {
		return consts.StateJoin, nil
	} else if selected == 2 {
		return consts.StateCreate, nil
	}
	return 0, player.WriteError(consts.ErrorsInputInvalid)
}

func (*home) Exit(player *database.Player) consts.StateID {
	return 0
}

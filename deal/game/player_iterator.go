package game

import "go.uber.org/zap"

type PlayerIterator struct {
	players map[string]*playerController
	cycler  *Cycler
}

func (i *PlayerIterator) GetPlayerController(name string) *playerController {
	return i.players[name]
}

func newPlayerIterator(players []Player, logger *zap.Logger) *PlayerIterator {
	var playerNames []string
	playerMap := make(map[string]*playerController, len(players))
	for _, player := range players {
		playerName := player.Name()
		playerNames = append(playerNames, playerName)
		playerMap[playerName] = newPlayerController(player, logger)
	}
	return &PlayerIterator{
		players: playerMap,
		cycler:  NewCycler(playerNames),
	}
}

func (i *PlayerIterator) Current() *playerController {
	return i.players[i.cycler.Current()]
}

// ForEach visits every player in seating order.
func (i *PlayerIterator) ForEach(function func(player *playerController)) {
	i.cycler.ForEach(func(name string) {
		function(i.players[name])
	})
}

func (i *PlayerIterator) Next() *playerController {
	return i.players[i.cycler.Next()]
}

func (i *PlayerIterator) Names() []string {
	names := make([]string, 0, i.cycler.Len())
	i.cycler.ForEach(func(name string) {
		names = append(names, name)
	})
	return names
}

func (i *PlayerIterator) Others(player *playerController) []*playerController {
	others := make([]*playerController, 0, len(i.players))
	for _, name := range i.cycler.Others(player.Name()) {
		others = append(others, i.players[name])
	}
	return others
}

func (i *PlayerIterator) Size() int {
	return i.cycler.Len()
}

package player

import (
	"io"

	"github.com/ratel-online/deal/deal/game"
	"golang.org/x/exp/rand"
)

var botNames = []string{
	"Annie", "Braum", "Caitlyn", "Draven",
	"Ezreal", "Fiora", "Graves", "Heimerdinger",
	"Ivern", "Jinx", "Kled", "Lulu",
	"Malphite", "Nunu", "Orianna", "Poppy",
	"Qiyana", "Rakan", "Shaco", "Twisted Fate",
	"Udyr", "Veigar", "Wukong", "Xayah",
	"Yuumi", "Zoe",
}

// CreatePlayers seats a terminal player followed by bots.
func CreatePlayers(numberOfPlayers int, humanPlayerName string, in io.Reader, out io.Writer, r *rand.Rand) []game.Player {
	players := make([]game.Player, 0, numberOfPlayers)
	players = append(players, NewTerminalPlayer(humanPlayerName, in, out))
	players = append(players, GenerateBots(numberOfPlayers-1, r, humanPlayerName)...)
	return players
}

// GenerateBots creates up to amount bots whose names differ from taken.
func GenerateBots(amount int, r *rand.Rand, taken ...string) []game.Player {
	used := map[string]bool{}
	for _, name := range taken {
		used[name] = true
	}
	names := make([]string, 0, len(botNames))
	for _, name := range botNames {
		if !used[name] {
			names = append(names, name)
		}
	}
	r.Shuffle(len(names), func(i int, j int) { names[i], names[j] = names[j], names[i] })
	if amount > len(names) {
		amount = len(names)
	}
	bots := make([]game.Player, 0, amount)
	for _, botName := range names[:amount] {
		bots = append(bots, NewRandomPlayer(botName, rand.New(rand.NewSource(r.Uint64()))))
	}
	return bots
}

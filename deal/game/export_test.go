package game

import "github.com/ratel-online/deal/deal/card"

func GiveCards(g *Game, name string, cards ...card.Card) {
	g.players.GetPlayerController(name).hand.AddCards(cards)
}

func PlayCard(g *Game, name string, c card.Card) {
	g.play(g.players.GetPlayerController(name), c)
}

func TakeTurn(g *Game, name string) {
	g.takeTurn(g.players.GetPlayerController(name))
}

func CollectMoney(g *Game, collector string, amount int, payers ...string) {
	controllers := make([]*playerController, 0, len(payers))
	for _, payer := range payers {
		controllers = append(controllers, g.players.GetPlayerController(payer))
	}
	g.collectMoney(g.players.GetPlayerController(collector), amount, controllers)
}

func Rearrange(g *Game, name string) {
	g.rearrangeProperties(g.players.GetPlayerController(name))
}

func RentLevel(g *Game) int {
	return g.rentLevel
}

package card

import "github.com/ratel-online/deal/deal/card/color"

// CatalogSize is the number of cards in a full deck.
const CatalogSize = 106

var moneyCounts = []struct {
	value int
	count int
}{
	{1, 6}, {2, 5}, {3, 3}, {4, 3}, {5, 2}, {10, 1},
}

var actionCounts = []struct {
	action Action
	value  int
	count  int
}{
	{DealBreaker, 5, 2},
	{DebtCollector, 3, 3},
	{DoubleTheRent, 1, 2},
	{ForcedDeal, 3, 3},
	{Hotel, 4, 3},
	{House, 3, 2},
	{ItsMyBirthday, 2, 3},
	{JustSayNo, 4, 3},
	{PassGo, 1, 10},
	{SlyDeal, 3, 3},
}

var rentPairs = [][]color.Color{
	{color.Purple, color.Orange},
	{color.Railroad, color.Utility},
	{color.Green, color.DarkBlue},
	{color.Brown, color.LightBlue},
	{color.Red, color.Yellow},
}

var properties = []struct {
	name  string
	color color.Color
	value int
}{
	{"Baltic Avenue", color.Brown, 1},
	{"Mediterranean Avenue", color.Brown, 1},
	{"Boardwalk", color.DarkBlue, 4},
	{"Park Place", color.DarkBlue, 4},
	{"North Carolina Avenue", color.Green, 4},
	{"Pacific Avenue", color.Green, 4},
	{"Pennsylvania Avenue", color.Green, 4},
	{"Connecticut Avenue", color.LightBlue, 1},
	{"Oriental Avenue", color.LightBlue, 1},
	{"Vermont Avenue", color.LightBlue, 1},
	{"New York Avenue", color.Orange, 2},
	{"St. James Place", color.Orange, 2},
	{"Tennessee Avenue", color.Orange, 2},
	{"St. Charles Place", color.Purple, 2},
	{"Virginia Avenue", color.Purple, 2},
	{"States Avenue", color.Purple, 2},
	{"Short Line", color.Railroad, 2},
	{"B. & O. Railroad", color.Railroad, 2},
	{"Reading Railroad", color.Railroad, 2},
	{"Pennsylvania Railroad", color.Railroad, 2},
	{"Kentucky Avenue", color.Red, 3},
	{"Indiana Avenue", color.Red, 3},
	{"Illinois Avenue", color.Red, 3},
	{"Water Works", color.Utility, 2},
	{"Electric Company", color.Utility, 2},
	{"Ventnor Avenue", color.Yellow, 3},
	{"Marvin Gardens", color.Yellow, 3},
	{"Atlantic Avenue", color.Yellow, 3},
}

var wildCards = []struct {
	colors []color.Color
	value  int
	count  int
}{
	{[]color.Color{color.DarkBlue, color.Green}, 4, 1},
	{[]color.Color{color.LightBlue, color.Brown}, 1, 1},
	{color.All, 0, 2},
	{[]color.Color{color.Orange, color.Purple}, 2, 2},
	{[]color.Color{color.Green, color.Railroad}, 4, 1},
	{[]color.Color{color.LightBlue, color.Railroad}, 4, 1},
	{[]color.Color{color.Utility, color.Railroad}, 2, 1},
	{[]color.Color{color.Yellow, color.Red}, 3, 2},
}

// Catalog builds a fresh, unshuffled copy of every card in the game.
func Catalog() []Card {
	cards := make([]Card, 0, CatalogSize)
	for _, m := range moneyCounts {
		for i := 0; i < m.count; i++ {
			cards = append(cards, NewMoneyCard(m.value))
		}
	}
	for i := 0; i < 3; i++ {
		cards = append(cards, NewRentCard(TargetOne, 3, color.All...))
	}
	for _, pair := range rentPairs {
		cards = append(cards, NewRentCard(TargetAll, 1, pair...), NewRentCard(TargetAll, 1, pair...))
	}
	for _, a := range actionCounts {
		for i := 0; i < a.count; i++ {
			cards = append(cards, NewActionCard(a.action, a.value))
		}
	}
	for _, p := range properties {
		cards = append(cards, NewPropertyCard(p.name, p.color, p.value))
	}
	for _, w := range wildCards {
		for i := 0; i < w.count; i++ {
			cards = append(cards, NewWildCard(w.value, w.colors...))
		}
	}
	return cards
}

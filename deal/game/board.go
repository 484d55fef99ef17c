package game

import (
	"fmt"
	"strings"

	"github.com/ratel-online/deal/deal/card"
	"github.com/ratel-online/deal/deal/card/color"
)

// Holding is a group of cards on a player's board that can change hands.
type Holding struct {
	Player string
	Set    card.Set
}

func (h Holding) String() string {
	names := make([]string, 0, len(h.Set.Cards))
	for _, c := range h.Set.Cards {
		names = append(names, c.String())
	}
	return fmt.Sprintf("%s from %s (%s)", strings.Join(names, ", "), h.Player, h.Set.Color.Name())
}

// Board keeps every player's bank and properties.
type Board struct {
	banks      map[string][]card.Card
	properties map[string]map[color.Color][]card.Card
}

func NewBoard(names []string) *Board {
	board := &Board{
		banks:      make(map[string][]card.Card, len(names)),
		properties: make(map[string]map[color.Color][]card.Card, len(names)),
	}
	for _, name := range names {
		board.banks[name] = nil
		board.properties[name] = map[color.Color][]card.Card{}
	}
	return board
}

func (b *Board) Bank(name string) []card.Card {
	bank := make([]card.Card, len(b.banks[name]))
	copy(bank, b.banks[name])
	return bank
}

func (b *Board) Deposit(name string, cards ...card.Card) {
	b.banks[name] = append(b.banks[name], cards...)
}

// ResetBank replaces the bank of name with money.
func (b *Board) ResetBank(name string, money []card.Card) {
	b.banks[name] = append([]card.Card(nil), money...)
}

// Properties lists the non-empty sets of name in color order.
func (b *Board) Properties(name string) []card.Set {
	sets := make([]card.Set, 0)
	for _, c := range color.All {
		if cards := b.properties[name][c]; len(cards) > 0 {
			sets = append(sets, card.Set{Color: c, Cards: append([]card.Card(nil), cards...)})
		}
	}
	return sets
}

// Set returns the cards name has filed under c.
func (b *Board) Set(name string, c color.Color) []card.Card {
	return append([]card.Card(nil), b.properties[name][c]...)
}

func (b *Board) Lay(name string, c color.Color, cards ...card.Card) {
	b.properties[name][c] = append(b.properties[name][c], cards...)
}

// ResetProperties clears all of the properties of name.
func (b *Board) ResetProperties(name string) {
	b.properties[name] = map[color.Color][]card.Card{}
}

// RemoveProperties takes exactly cards out of the set of name filed under c.
func (b *Board) RemoveProperties(name string, c color.Color, cards []card.Card) {
	set := b.properties[name][c]
	for _, removed := range cards {
		for i, filed := range set {
			if filed.Equal(removed) {
				set = append(set[:i:i], set[i+1:]...)
				break
			}
		}
	}
	if len(set) == 0 {
		delete(b.properties[name], c)
		return
	}
	b.properties[name][c] = set
}

func (b *Board) FullSets(name string) []card.Set {
	full := make([]card.Set, 0)
	for _, set := range b.Properties(name) {
		if set.Full() {
			full = append(full, set)
		}
	}
	return full
}

// PropertySets lists what can be taken from names. With fullSetsOnly every
// full set is one holding; otherwise every property of a set that is not
// full is a holding of its own.
func (b *Board) PropertySets(names []string, fullSetsOnly bool) []Holding {
	holdings := make([]Holding, 0)
	for _, name := range names {
		for _, set := range b.Properties(name) {
			if set.Full() != fullSetsOnly {
				continue
			}
			if fullSetsOnly {
				holdings = append(holdings, Holding{Player: name, Set: set})
				continue
			}
			for _, c := range set.Cards {
				if c.Kind() == card.KindProperty {
					holdings = append(holdings, Holding{Player: name, Set: card.Set{Color: set.Color, Cards: []card.Card{c}}})
				}
			}
		}
	}
	return holdings
}

// WildcardProperties removes and returns every multi-color property of name.
func (b *Board) WildcardProperties(name string) []card.Card {
	wild := make([]card.Card, 0)
	for _, c := range color.All {
		set, ok := b.properties[name][c]
		if !ok {
			continue
		}
		kept := make([]card.Card, 0, len(set))
		for _, filed := range set {
			if p, ok := filed.(card.PropertyCard); ok && p.Wild() {
				wild = append(wild, filed)
			} else {
				kept = append(kept, filed)
			}
		}
		if len(kept) == 0 {
			delete(b.properties[name], c)
		} else {
			b.properties[name][c] = kept
		}
	}
	return wild
}

// Cards returns every card on the board.
func (b *Board) Cards() []card.Card {
	cards := make([]card.Card, 0)
	for name, bank := range b.banks {
		cards = append(cards, bank...)
		for _, set := range b.properties[name] {
			cards = append(cards, set...)
		}
	}
	return cards
}

package game

import (
	"sync"

	"github.com/ratel-online/deal/deal/card"
	"golang.org/x/exp/rand"
)

// Deck holds the draw pile and the discard pile.
type Deck struct {
	sync.Mutex
	cards    []card.Card
	discards []card.Card
	rand     *rand.Rand
}

func NewDeck(cards []card.Card, r *rand.Rand) *Deck {
	deck := &Deck{
		cards: append(make([]card.Card, 0, len(cards)), cards...),
		rand:  r,
	}
	deck.shuffleCards(deck.cards)
	return deck
}

func (d *Deck) DrawOne() card.Card {
	cards := d.Draw(1)
	if len(cards) == 0 {
		return nil
	}
	return cards[0]
}

// Draw takes up to amount cards, recycling the discard pile when the draw
// pile runs short.
func (d *Deck) Draw(amount int) []card.Card {
	d.Mutex.Lock()
	defer d.Mutex.Unlock()
	if len(d.cards) < amount {
		d.recycle()
	}
	if amount > len(d.cards) {
		amount = len(d.cards)
	}
	cards := append(make([]card.Card, 0, amount), d.cards[:amount]...)
	d.cards = d.cards[amount:]
	return cards
}

func (d *Deck) Discard(cards ...card.Card) {
	d.Mutex.Lock()
	defer d.Mutex.Unlock()
	d.discards = append(d.discards, cards...)
}

func (d *Deck) Size() int {
	d.Mutex.Lock()
	defer d.Mutex.Unlock()
	return len(d.cards)
}

func (d *Deck) DiscardSize() int {
	d.Mutex.Lock()
	defer d.Mutex.Unlock()
	return len(d.discards)
}

// Cards returns the draw pile followed by the discard pile.
func (d *Deck) Cards() []card.Card {
	d.Mutex.Lock()
	defer d.Mutex.Unlock()
	cards := make([]card.Card, 0, len(d.cards)+len(d.discards))
	cards = append(cards, d.cards...)
	return append(cards, d.discards...)
}

func (d *Deck) recycle() {
	d.shuffleCards(d.discards)
	d.cards = append(d.cards, d.discards...)
	d.discards = nil
}

func (d *Deck) shuffleCards(cards []card.Card) {
	d.rand.Shuffle(len(cards), func(i, j int) { cards[i], cards[j] = cards[j], cards[i] })
}

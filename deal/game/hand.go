package game

import (
	"github.com/ratel-online/deal/deal/card"
)

type Hand struct {
	cards []card.Card
}

func NewHand() *Hand {
	return &Hand{cards: make([]card.Card, 0, HandLimit)}
}

func (h *Hand) AddCards(cards []card.Card) {
	h.cards = append(h.cards, cards...)
}

func (h *Hand) Cards() []card.Card {
	cards := make([]card.Card, len(h.cards))
	copy(cards, h.cards)
	return cards
}

func (h *Hand) Empty() bool {
	return len(h.cards) == 0
}

// PlayableCards leaves out the cards that can only be played in response.
func (h *Hand) PlayableCards() []card.Card {
	var playableCards []card.Card
	for _, candidateCard := range h.cards {
		if !card.IsAction(candidateCard, card.JustSayNo) {
			playableCards = append(playableCards, candidateCard)
		}
	}
	return playableCards
}

// Find returns the first card of the given action.
func (h *Hand) Find(action card.Action) card.Card {
	for _, cardInHand := range h.cards {
		if card.IsAction(cardInHand, action) {
			return cardInHand
		}
	}
	return nil
}

// RemoveCard removes the first card equal to c, keeping the order of the rest.
func (h *Hand) RemoveCard(c card.Card) bool {
	for index, cardInHand := range h.cards {
		if cardInHand.Equal(c) {
			h.cards = append(h.cards[:index], h.cards[index+1:]...)
			return true
		}
	}
	return false
}

func (h *Hand) Size() int {
	return len(h.cards)
}

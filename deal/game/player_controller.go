package game

import (
	"github.com/ratel-online/deal/deal/card"
	"github.com/ratel-online/deal/deal/msg"
	"go.uber.org/zap"
)

// maxAttempts bounds how often a player is asked again after an invalid answer.
const maxAttempts = 5

// Move is what a player does with one of its turn choices.
type Move int

const (
	MovePlay Move = iota
	MoveRearrange
	MoveShowBoard
	MoveEndTurn
)

var freeMoves = []Move{MoveRearrange, MoveShowBoard, MoveEndTurn}

func (m Move) String() string {
	switch m {
	case MoveRearrange:
		return "Rearrange properties"
	case MoveShowBoard:
		return "Show board"
	case MoveEndTurn:
		return "End turn"
	}
	return "Play card"
}

type playerController struct {
	player Player
	hand   *Hand
	logger *zap.Logger
}

func newPlayerController(player Player, logger *zap.Logger) *playerController {
	return &playerController{
		player: player,
		hand:   NewHand(),
		logger: logger.With(zap.String("player", player.Name())),
	}
}

func (c *playerController) AddCards(cards []card.Card) {
	c.hand.AddCards(cards)
	if len(cards) > 0 {
		c.player.Write(msg.Message.PlayerDrewCards(cards), ChannelMessage)
	}
}

func (c *playerController) DrawCards(deck *Deck, amount int) []card.Card {
	cards := deck.Draw(amount)
	c.AddCards(cards)
	return cards
}

func (c *playerController) Hand() []card.Card {
	return c.hand.Cards()
}

func (c *playerController) Name() string {
	return c.player.Name()
}

func (c *playerController) Write(message string, channel Channel) {
	c.player.Write(message, channel)
}

// Choose asks the player until it picks one of options. A player that fails
// to answer gets fallback.
func (c *playerController) Choose(prompt string, options []string, fallback int) int {
	if len(options) == 1 {
		return 0
	}
	for attempt := 0; attempt < maxAttempts; attempt++ {
		index, err := c.player.Choose(prompt, options)
		if err != nil {
			c.logger.Info("choice defaulted", zap.Error(err), zap.String("option", options[fallback]))
			return fallback
		}
		if index >= 0 && index < len(options) {
			return index
		}
		c.player.Write(msg.Message.InvalidSelection(index, len(options)), ChannelPrompt)
	}
	c.logger.Warn("too many invalid choices", zap.String("option", options[fallback]))
	return fallback
}

// ChooseAction offers the playable cards in hand plus the free moves. Ending
// the turn is the default.
func (c *playerController) ChooseAction() (card.Card, Move) {
	playable := c.hand.PlayableCards()
	options := make([]string, 0, len(playable)+len(freeMoves))
	for _, playableCard := range playable {
		options = append(options, playableCard.String())
	}
	for _, move := range freeMoves {
		options = append(options, move.String())
	}
	index := c.Choose(msg.Message.PromptAction(c.hand.Size()), options, len(options)-1)
	if index < len(playable) {
		return playable[index], MovePlay
	}
	return nil, freeMoves[index-len(playable)]
}

// DeclineIfAble offers a held Just Say No against what prompt describes. The
// card is taken out of the hand and returned when played.
func (c *playerController) DeclineIfAble(prompt string) card.Card {
	sayNo := c.hand.Find(card.JustSayNo)
	if sayNo == nil {
		return nil
	}
	options := []string{msg.Message.AcceptOption(), msg.Message.DeclineOption()}
	if c.Choose(prompt, options, 0) != 1 {
		return nil
	}
	c.hand.RemoveCard(sayNo)
	return sayNo
}

// DiscardCards lets the player drop cards until at most limit are held. The
// newest card goes by default.
func (c *playerController) DiscardCards(limit int) []card.Card {
	var discards []card.Card
	for c.hand.Size() > limit {
		cards := c.hand.Cards()
		options := make([]string, 0, len(cards))
		for _, cardInHand := range cards {
			options = append(options, cardInHand.String())
		}
		index := c.Choose(msg.Message.PromptDiscard(len(cards)-limit), options, len(options)-1)
		c.hand.RemoveCard(cards[index])
		discards = append(discards, cards[index])
	}
	return discards
}

// ChooseHolding asks the player to pick one of holdings.
func (c *playerController) ChooseHolding(prompt string, holdings []Holding) int {
	options := make([]string, 0, len(holdings))
	for _, holding := range holdings {
		options = append(options, holding.String())
	}
	return c.Choose(prompt, options, 0)
}

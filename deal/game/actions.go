package game

import (
	"fmt"

	"github.com/ratel-online/deal/deal/card"
	"github.com/ratel-online/deal/deal/card/color"
	"github.com/ratel-online/deal/deal/msg"
	"github.com/ratel-online/deal/deal/payment"
	"go.uber.org/zap"
)

func (g *Game) depositMoney(player *playerController, c card.Card) {
	g.board.Deposit(player.Name(), c)
}

// layProperty files a property under the color the player picks. Houses and
// hotels go through layBonus instead.
func (g *Game) layProperty(player *playerController, c card.Card) {
	property, ok := c.(card.PropertyCard)
	if !ok {
		g.layBonus(player, c)
		return
	}
	colors := property.Colors()
	options := make([]string, 0, len(colors))
	for _, propertyColor := range colors {
		options = append(options, propertyColor.String())
	}
	index := player.Choose(msg.Message.PromptColor(c), options, 0)
	g.board.Lay(player.Name(), colors[index], c)
}

// layBonus puts a house or hotel on one of the player's full sets. Railroads
// and utilities cannot take one, and without a full set the card is lost.
func (g *Game) layBonus(player *playerController, c card.Card) {
	var sets []card.Set
	for _, set := range g.board.FullSets(player.Name()) {
		if set.Color != color.Railroad && set.Color != color.Utility {
			sets = append(sets, set)
		}
	}
	if len(sets) == 0 {
		g.deck.Discard(c)
		g.broadcast(msg.Message.BonusDiscarded(player.Name(), c))
		return
	}
	options := make([]string, 0, len(sets))
	for _, set := range sets {
		options = append(options, fmt.Sprintf("%s (rent $%dM)", set.Color, set.Rent()))
	}
	index := player.Choose(msg.Message.PromptBonus(c), options, 0)
	g.board.Lay(player.Name(), sets[index].Color, c)
}

// layCards places cards that changed hands: properties first so that houses
// and hotels can find a full set afterwards.
func (g *Game) layCards(player *playerController, cards []card.Card) {
	var bonuses []card.Card
	for _, c := range cards {
		switch c.Kind() {
		case card.KindProperty:
			g.layProperty(player, c)
		case card.KindMoney:
			g.depositMoney(player, c)
		case card.KindAction:
			if card.IsBonus(c) {
				bonuses = append(bonuses, c)
				continue
			}
			g.deck.Discard(c)
		case card.KindRent:
			g.deck.Discard(c)
		}
	}
	for _, bonus := range bonuses {
		g.layBonus(player, bonus)
	}
}

func (g *Game) collectRent(player *playerController, c card.Card) {
	rentCard := c.(card.RentCard)
	g.deck.Discard(c)

	colors := rentCard.Colors()
	options := make([]string, 0, len(colors))
	for _, rentColor := range colors {
		options = append(options, fmt.Sprintf("%s ($%dM)", rentColor, card.Rent(rentColor, g.board.Set(player.Name(), rentColor))*g.rentLevel))
	}
	rentColor := colors[player.Choose(msg.Message.PromptRentColor(), options, 0)]
	rent := card.Rent(rentColor, g.board.Set(player.Name(), rentColor)) * g.rentLevel
	if rent == 0 {
		g.broadcast(msg.Message.NoRent(player.Name(), rentColor.Name()))
		return
	}

	payers := g.players.Others(player)
	if rentCard.Target() == card.TargetOne {
		payers = []*playerController{g.chooseOpponent(player)}
	}
	g.collectMoney(player, rent, payers)
}

func (g *Game) doAction(player *playerController, c card.Card) {
	actionCard := c.(card.ActionCard)
	switch actionCard.Action() {
	case card.DebtCollector:
		g.collectMoney(player, DebtCollection, []*playerController{g.chooseOpponent(player)})
	case card.DoubleTheRent:
		g.rentLevel *= 2
		g.broadcast(msg.Message.RentDoubled(player.Name(), g.rentLevel))
	case card.ItsMyBirthday:
		g.collectMoney(player, BirthdayGift, g.players.Others(player))
	case card.PassGo:
		player.DrawCards(g.deck, DrawPerTurn)
	case card.DealBreaker:
		g.stealProperties(player, true, false)
	case card.SlyDeal:
		g.stealProperties(player, false, false)
	case card.ForcedDeal:
		g.stealProperties(player, false, true)
	case card.House, card.Hotel:
		g.layBonus(player, c)
		return
	case card.JustSayNo:
	}
	g.deck.Discard(c)
}

// chooseOpponent asks player to pick someone else at the table. In a game
// with a single player there is nobody to pick and nil is returned.
func (g *Game) chooseOpponent(player *playerController) *playerController {
	others := g.players.Others(player)
	if len(others) == 0 {
		return nil
	}
	options := make([]string, 0, len(others))
	for _, other := range others {
		options = append(options, other.Name())
	}
	return others[player.Choose(msg.Message.PromptTarget(), options, 0)]
}

// collectMoney charges amount to every payer. Each payer may say no first.
func (g *Game) collectMoney(collector *playerController, amount int, payers []*playerController) {
	names := make([]string, 0, len(payers))
	for _, payer := range payers {
		if payer != nil {
			names = append(names, payer.Name())
		}
	}
	if len(names) == 0 {
		return
	}
	g.broadcast(msg.Message.Collecting(collector.Name(), amount, names))

	for _, payer := range payers {
		if payer == nil {
			continue
		}
		if sayNo := payer.DeclineIfAble(msg.Message.PromptDeclinePayment(collector.Name(), amount)); sayNo != nil {
			g.deck.Discard(sayNo)
			g.broadcast(msg.Message.PlayerSaidNo(payer.Name()))
			continue
		}
		money, properties := g.pay(payer, amount)
		g.board.Deposit(collector.Name(), money...)
		g.layCards(collector, properties)
		g.broadcast(msg.Message.PlayerPaid(payer.Name(), collector.Name(), append(money, properties...)))
		g.logger.Debug("debt paid",
			zap.String("payer", payer.Name()),
			zap.String("collector", collector.Name()),
			zap.Int("amount", amount),
			zap.Int("money", card.Value(money)),
			zap.Int("properties", card.Value(properties)),
		)
	}
}

// pay settles amount from the bank of player, then from its properties. The
// properties it keeps are laid out again.
func (g *Game) pay(player *playerController, amount int) ([]card.Card, []card.Card) {
	name := player.Name()
	bankPayment := payment.FromBank(amount, g.board.Bank(name))
	g.board.ResetBank(name, bankPayment.Remaining)
	if bankPayment.Owed == 0 {
		return bankPayment.Paid, nil
	}

	propertyPayment := payment.FromProperties(bankPayment.Owed, g.board.Properties(name))
	g.board.ResetProperties(name)
	g.layCards(player, propertyPayment.Remaining)
	return bankPayment.Paid, propertyPayment.Paid
}

// stealProperties moves a holding from an opponent to collector. With swap
// the collector gives one of its own loose properties back.
func (g *Game) stealProperties(collector *playerController, fullSetsOnly bool, swap bool) {
	holdings := g.board.PropertySets(g.players.cycler.Others(collector.Name()), fullSetsOnly)
	if len(holdings) == 0 {
		g.broadcast(msg.Message.NothingToSteal(collector.Name()))
		return
	}
	var own []Holding
	if swap {
		own = g.board.PropertySets([]string{collector.Name()}, false)
		if len(own) == 0 {
			g.broadcast(msg.Message.NothingToSteal(collector.Name()))
			return
		}
	}

	target := holdings[collector.ChooseHolding(msg.Message.PromptSteal(), holdings)]
	var given Holding
	if swap {
		given = own[collector.ChooseHolding(msg.Message.PromptSwap(), own)]
	}

	victim := g.players.GetPlayerController(target.Player)
	if sayNo := victim.DeclineIfAble(msg.Message.PromptDeclineSteal(collector.Name(), target.Set.Cards)); sayNo != nil {
		g.deck.Discard(sayNo)
		g.broadcast(msg.Message.PlayerSaidNo(victim.Name()))
		return
	}

	g.broadcast(msg.Message.Stealing(collector.Name(), target.Set.Cards, victim.Name()))
	g.board.RemoveProperties(victim.Name(), target.Set.Color, target.Set.Cards)
	if swap {
		g.board.RemoveProperties(collector.Name(), given.Set.Color, given.Set.Cards)
	}
	g.layCards(collector, target.Set.Cards)
	if swap {
		g.layCards(victim, given.Set.Cards)
		g.broadcast(msg.Message.Giving(collector.Name(), given.Set.Cards, victim.Name()))
	}
}

// rearrangeProperties lets the player file its wild cards again. Houses and
// hotels left on a set that is no longer full are moved or discarded.
func (g *Game) rearrangeProperties(player *playerController) {
	g.layCards(player, g.board.WildcardProperties(player.Name()))
	g.settleBonuses(player)
	g.broadcast(msg.Message.PlayerRearranged(player.Name()))
}

func (g *Game) settleBonuses(player *playerController) {
	var loose []card.Card
	for _, set := range g.board.Properties(player.Name()) {
		if set.Full() {
			continue
		}
		var bonuses []card.Card
		for _, c := range set.Cards {
			if card.IsBonus(c) {
				bonuses = append(bonuses, c)
			}
		}
		if len(bonuses) > 0 {
			g.board.RemoveProperties(player.Name(), set.Color, bonuses)
			loose = append(loose, bonuses...)
		}
	}
	for _, bonus := range loose {
		g.layBonus(player, bonus)
	}
}

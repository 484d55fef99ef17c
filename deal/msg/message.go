package msg

import (
	"strings"

	"github.com/ratel-online/deal/deal/card"
)

var Message = MessageWriter{}

type MessageWriter struct{}

func (m MessageWriter) Welcome(playerName string) string {
	return Sprintfln("Hi %s, welcome to Deal! Collect three full property sets to win.", playerName)
}

func (m MessageWriter) GameStarted(players []string) string {
	return Sprintfln("Game starting with %s!", strings.Join(players, ", "))
}

func (m MessageWriter) TurnStarted(playerName string, round int) string {
	return Sprintfln("Round %d: it's %s's turn!", round, playerName)
}

func (m MessageWriter) PlayerDrewCards(cards []card.Card) string {
	return Sprintfln("You drew %s", joinCards(cards))
}

func (m MessageWriter) PlayerPlayedCard(playerName string, c card.Card) string {
	return Sprintfln("%s played %s!", playerName, c)
}

func (m MessageWriter) PlayerEndedTurn(playerName string) string {
	return Sprintfln("%s ended the turn.", playerName)
}

func (m MessageWriter) PlayerRearranged(playerName string) string {
	return Sprintfln("%s rearranged properties.", playerName)
}

func (m MessageWriter) PlayerDiscarded(playerName string, cards []card.Card) string {
	return Sprintfln("%s discarded %d card(s).", playerName, len(cards))
}

func (m MessageWriter) PlayerSaidNo(playerName string) string {
	return Sprintfln("%s said no!", playerName)
}

func (m MessageWriter) RentDoubled(playerName string, level int) string {
	return Sprintfln("%s doubled the rent, rent is now x%d.", playerName, level)
}

func (m MessageWriter) NoRent(playerName string, colorName string) string {
	return Sprintfln("%s has no %s properties, nobody pays.", playerName, colorName)
}

func (m MessageWriter) Collecting(collector string, amount int, payers []string) string {
	return Sprintfln("%s is collecting $%dM from %s.", collector, amount, strings.Join(payers, ", "))
}

func (m MessageWriter) PlayerPaid(payer string, collector string, cards []card.Card) string {
	if len(cards) == 0 {
		return Sprintfln("%s had nothing to pay %s.", payer, collector)
	}
	return Sprintfln("%s paid %s with %s.", payer, collector, joinCards(cards))
}

func (m MessageWriter) NothingToSteal(playerName string) string {
	return Sprintfln("%s has nothing to take.", playerName)
}

func (m MessageWriter) Stealing(collector string, cards []card.Card, victim string) string {
	return Sprintfln("%s is taking %s from %s.", collector, joinCards(cards), victim)
}

func (m MessageWriter) Giving(collector string, cards []card.Card, victim string) string {
	return Sprintfln("%s gave %s to %s.", collector, joinCards(cards), victim)
}

func (m MessageWriter) BonusDiscarded(playerName string, c card.Card) string {
	return Sprintfln("%s has no full set for %s, it is discarded.", playerName, c)
}

func (m MessageWriter) WinnerFound(playerName string, rounds int) string {
	return Sprintfln("%s wins in %d rounds!", playerName, rounds)
}

func (m MessageWriter) NoWinner(rounds int) string {
	return Sprintfln("No winner after %d rounds.", rounds)
}

func (m MessageWriter) InvalidSelection(index int, size int) string {
	return Sprintfln("Invalid selection %d, pick a number from 0 to %d.", index, size-1)
}

func (m MessageWriter) InvalidInput(input string) string {
	return Sprintfln("Invalid input '%s', please enter a number.", input)
}

func (m MessageWriter) PromptAction(handSize int) string {
	return Sprintfln("Choose an action (%d card(s) in hand):", handSize)
}

func (m MessageWriter) PromptColor(c card.Card) string {
	return Sprintfln("Choose a color for %s:", c)
}

func (m MessageWriter) PromptRentColor() string {
	return Sprintln("Choose the color to charge rent for:")
}

func (m MessageWriter) PromptTarget() string {
	return Sprintln("Choose a player:")
}

func (m MessageWriter) PromptSteal() string {
	return Sprintln("Choose what to take:")
}

func (m MessageWriter) PromptSwap() string {
	return Sprintln("Choose what to give in exchange:")
}

func (m MessageWriter) PromptBonus(c card.Card) string {
	return Sprintfln("Choose a full set for %s:", c)
}

func (m MessageWriter) PromptDiscard(amount int) string {
	return Sprintfln("Too many cards, discard %d:", amount)
}

func (m MessageWriter) PromptDeclinePayment(collector string, amount int) string {
	return Sprintfln("%s wants $%dM from you.", collector, amount)
}

func (m MessageWriter) PromptDeclineSteal(collector string, cards []card.Card) string {
	return Sprintfln("%s wants to take %s from you.", collector, joinCards(cards))
}

func (m MessageWriter) AcceptOption() string {
	return "Let it happen"
}

func (m MessageWriter) DeclineOption() string {
	return "Play Just Say No"
}

func joinCards(cards []card.Card) string {
	names := make([]string, 0, len(cards))
	for _, c := range cards {
		names = append(names, c.String())
	}
	return strings.Join(names, ", ")
}

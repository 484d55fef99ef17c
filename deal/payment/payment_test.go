package payment_test

import (
	"testing"

	"github.com/ratel-online/deal/deal/card"
	"github.com/ratel-online/deal/deal/card/color"
	"github.com/ratel-online/deal/deal/payment"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func moneyCards(values ...int) []card.Card {
	cards := make([]card.Card, 0, len(values))
	for _, value := range values {
		cards = append(cards, card.NewMoneyCard(value))
	}
	return cards
}

func TestFromBank(t *testing.T) {
	tests := []struct {
		name      string
		owed      int
		bank      []card.Card
		paid      []card.Card
		owes      int
		overpaid  int
		remaining []card.Card
	}{
		{
			name:      "prefers_exact_payment_over_fewer_cards",
			owed:      2,
			bank:      moneyCards(1, 1, 3),
			paid:      moneyCards(1, 1),
			remaining: moneyCards(3),
		},
		{
			name:      "prefers_fewer_cards_when_amounts_tie",
			owed:      2,
			bank:      moneyCards(1, 1, 2),
			paid:      moneyCards(2),
			remaining: moneyCards(1, 1),
		},
		{
			name:      "prefers_single_card_listed_first",
			owed:      2,
			bank:      moneyCards(2, 1, 1),
			paid:      moneyCards(2),
			remaining: moneyCards(1, 1),
		},
		{
			name:      "overpays_only_when_nothing_exact_exists",
			owed:      1,
			bank:      moneyCards(10, 3),
			paid:      moneyCards(3),
			overpaid:  2,
			remaining: moneyCards(10),
		},
		{
			name:      "minimizes_overpayment_before_card_count",
			owed:      4,
			bank:      moneyCards(5, 2, 3),
			paid:      moneyCards(5),
			overpaid:  1,
			remaining: moneyCards(2, 3),
		},
		{
			name: "pays_everything_when_short",
			owed: 9,
			bank: moneyCards(1, 2, 3),
			paid: moneyCards(1, 2, 3),
			owes: 3,
		},
		{
			name: "pays_nothing_from_empty_bank",
			owed: 5,
			owes: 5,
		},
		{
			name:      "pays_nothing_when_nothing_is_owed",
			owed:      0,
			bank:      moneyCards(1, 2),
			remaining: moneyCards(1, 2),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := payment.FromBank(tt.owed, tt.bank)
			assert.Equal(t, tt.paid, p.Paid)
			assert.Equal(t, tt.owes, p.Owed)
			assert.Equal(t, tt.overpaid, p.Overpaid)
			assert.ElementsMatch(t, tt.remaining, p.Remaining)
		})
	}
}

func TestFromBankNeverMakesChange(t *testing.T) {
	bank := moneyCards(1, 2, 3, 4, 5, 10, 1, 2)
	total := card.Value(bank)
	for owed := 1; owed <= total+2; owed++ {
		p := payment.FromBank(owed, bank)
		paid := card.Value(p.Paid)
		require.Equal(t, owed, paid+p.Owed-p.Overpaid, "owed %d", owed)
		require.Len(t, append(p.Paid, p.Remaining...), len(bank))
		if p.Owed > 0 {
			require.Zero(t, p.Overpaid)
			require.Empty(t, p.Remaining)
		}
		if owed <= total {
			require.Zero(t, p.Owed)
		}
	}
}

func TestFromProperties(t *testing.T) {
	boardwalk := card.NewPropertyCard("Boardwalk", color.DarkBlue, 4)
	parkPlace := card.NewPropertyCard("Park Place", color.DarkBlue, 4)
	baltic := card.NewPropertyCard("Baltic Avenue", color.Brown, 1)
	mediterranean := card.NewPropertyCard("Mediterranean Avenue", color.Brown, 1)
	oriental := card.NewPropertyCard("Oriental Avenue", color.LightBlue, 1)
	vermont := card.NewPropertyCard("Vermont Avenue", color.LightBlue, 1)
	kentucky := card.NewPropertyCard("Kentucky Avenue", color.Red, 3)
	indiana := card.NewPropertyCard("Indiana Avenue", color.Red, 3)
	waterWorks := card.NewPropertyCard("Water Works", color.Utility, 2)
	reading := card.NewPropertyCard("Reading Railroad", color.Railroad, 2)
	hotel := card.NewActionCard(card.Hotel, 4)

	t.Run("pays_with_single_properties_first", func(t *testing.T) {
		sets := []card.Set{
			{Color: color.DarkBlue, Cards: []card.Card{boardwalk, parkPlace}},
			{Color: color.Utility, Cards: []card.Card{waterWorks}},
			{Color: color.Railroad, Cards: []card.Card{reading}},
		}
		p := payment.FromProperties(2, sets)
		assert.Equal(t, []card.Card{waterWorks}, p.Paid)
		assert.Zero(t, p.Owed)
		assert.Zero(t, p.Overpaid)
		assert.Equal(t, []card.Card{reading, boardwalk, parkPlace}, p.Remaining)
	})

	t.Run("breaks_partial_sets_before_full_sets", func(t *testing.T) {
		sets := []card.Set{
			{Color: color.DarkBlue, Cards: []card.Card{boardwalk, parkPlace}},
			{Color: color.Red, Cards: []card.Card{kentucky, indiana}},
		}
		p := payment.FromProperties(3, sets)
		assert.Equal(t, []card.Card{kentucky}, p.Paid)
		assert.Zero(t, p.Owed)
		assert.ElementsMatch(t, []card.Card{indiana, boardwalk, parkPlace}, p.Remaining)
	})

	t.Run("breaks_higher_rent_partial_sets_first", func(t *testing.T) {
		sets := []card.Set{
			{Color: color.LightBlue, Cards: []card.Card{oriental, vermont}},
			{Color: color.Red, Cards: []card.Card{kentucky, indiana}},
		}
		p := payment.FromProperties(1, sets)
		require.Len(t, p.Paid, 1)
		assert.Equal(t, kentucky, p.Paid[0])
		assert.Equal(t, 2, p.Overpaid)
		assert.ElementsMatch(t, []card.Card{indiana, oriental, vermont}, p.Remaining)
	})

	t.Run("keeps_earlier_payment_when_more_is_needed", func(t *testing.T) {
		sets := []card.Set{
			{Color: color.Utility, Cards: []card.Card{waterWorks}},
			{Color: color.Red, Cards: []card.Card{kentucky, indiana}},
		}
		p := payment.FromProperties(5, sets)
		assert.Contains(t, p.Paid, waterWorks)
		assert.Equal(t, 5, card.Value(p.Paid)-p.Overpaid)
		assert.Zero(t, p.Owed)
		assert.Len(t, p.Remaining, 1)
	})

	t.Run("surrenders_everything_when_short", func(t *testing.T) {
		sets := []card.Set{
			{Color: color.DarkBlue, Cards: []card.Card{boardwalk, parkPlace, hotel}},
			{Color: color.Brown, Cards: []card.Card{baltic, mediterranean}},
		}
		p := payment.FromProperties(20, sets)
		assert.Len(t, p.Paid, 5)
		assert.Equal(t, 6, p.Owed)
		assert.Empty(t, p.Remaining)
	})

	t.Run("pays_nothing_when_nothing_is_owed", func(t *testing.T) {
		sets := []card.Set{{Color: color.Brown, Cards: []card.Card{baltic}}}
		p := payment.FromProperties(0, sets)
		assert.Empty(t, p.Paid)
		assert.Equal(t, []card.Card{baltic}, p.Remaining)
	})
}

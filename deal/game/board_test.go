package game_test

import (
	"testing"

	"github.com/ratel-online/deal/deal/card"
	"github.com/ratel-online/deal/deal/card/color"
	"github.com/ratel-online/deal/deal/game"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoard(t *testing.T) {
	newBoard := func() *game.Board {
		board := game.NewBoard([]string{"alice", "bob"})
		board.Lay("alice", color.Brown, baltic, mediterranean)
		board.Lay("alice", color.DarkBlue, boardwalk, blueGreenWild)
		board.Lay("alice", color.LightBlue, oriental)
		board.Lay("bob", color.Green, pacific)
		return board
	}

	t.Run("properties_follow_color_order", func(t *testing.T) {
		sets := newBoard().Properties("alice")
		require.Len(t, sets, 3)
		assert.Equal(t, color.Brown, sets[0].Color)
		assert.Equal(t, color.DarkBlue, sets[1].Color)
		assert.Equal(t, color.LightBlue, sets[2].Color)
	})

	t.Run("full_sets", func(t *testing.T) {
		board := newBoard()
		assert.Len(t, board.FullSets("alice"), 2)
		assert.Empty(t, board.FullSets("bob"))
	})

	t.Run("property_sets", func(t *testing.T) {
		board := newBoard()
		full := board.PropertySets([]string{"alice", "bob"}, true)
		require.Len(t, full, 2)
		assert.Equal(t, "alice", full[0].Player)
		assert.Len(t, full[0].Set.Cards, 2)

		loose := board.PropertySets([]string{"alice", "bob"}, false)
		require.Len(t, loose, 2)
		assert.Equal(t, []card.Card{oriental}, loose[0].Set.Cards)
		assert.Equal(t, game.Holding{Player: "bob", Set: card.Set{Color: color.Green, Cards: []card.Card{pacific}}}, loose[1])
	})

	t.Run("remove_properties_drops_empty_sets", func(t *testing.T) {
		board := newBoard()
		board.RemoveProperties("alice", color.LightBlue, []card.Card{oriental})
		board.RemoveProperties("alice", color.Brown, []card.Card{baltic})
		assert.Empty(t, board.Set("alice", color.LightBlue))
		assert.Equal(t, []card.Card{mediterranean}, board.Set("alice", color.Brown))
		assert.Len(t, board.Properties("alice"), 2)
	})

	t.Run("wildcard_properties_are_taken_off", func(t *testing.T) {
		board := newBoard()
		assert.Equal(t, []card.Card{blueGreenWild}, board.WildcardProperties("alice"))
		assert.Equal(t, []card.Card{boardwalk}, board.Set("alice", color.DarkBlue))
		assert.Empty(t, board.WildcardProperties("alice"))
	})

	t.Run("banks", func(t *testing.T) {
		board := newBoard()
		board.Deposit("bob", card.NewMoneyCard(2), card.NewMoneyCard(3))
		bank := board.Bank("bob")
		bank[0] = card.NewMoneyCard(10)
		assert.Equal(t, 5, card.Value(board.Bank("bob")))
		board.ResetBank("bob", nil)
		assert.Empty(t, board.Bank("bob"))
		assert.Len(t, board.Cards(), 6)
	})
}

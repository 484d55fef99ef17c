package player_test

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/ratel-online/deal/deal/game"
	"github.com/ratel-online/deal/deal/player"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func TestTerminalPlayer(t *testing.T) {
	options := []string{"Take it", "Leave it", "End turn"}
	tests := []struct {
		name     string
		input    string
		expected int
		err      error
		output   []string
	}{
		{name: "valid_choice", input: "1\n", expected: 1, output: []string{"Pick one", "  2. End turn"}},
		{name: "trims_spaces", input: "  2 \n", expected: 2},
		{name: "reprompts_out_of_range", input: "7\n0\n", expected: 0, output: []string{"Invalid selection 7, pick a number from 0 to 2."}},
		{name: "reprompts_garbage", input: "yes\n2\n", expected: 2, output: []string{"Invalid input 'yes'"}},
		{name: "last_line_without_newline", input: "1", expected: 1},
		{name: "fails_on_eof", input: "", err: io.EOF},
		{name: "fails_when_input_runs_out", input: "9\n", err: io.EOF},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			var out bytes.Buffer
			p := player.NewTerminalPlayer("alice", strings.NewReader(test.input), &out)

			index, err := p.Choose("Pick one", options)
			if test.err != nil {
				require.ErrorIs(t, err, test.err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, test.expected, index)
			for _, expected := range test.output {
				assert.Contains(t, out.String(), expected)
			}
		})
	}

	t.Run("marks_board_output", func(t *testing.T) {
		var out bytes.Buffer
		p := player.NewTerminalPlayer("alice", strings.NewReader(""), &out)
		p.Write("table\n", game.ChannelBoard)
		p.Write("hello\n", game.ChannelMessage)
		assert.Equal(t, strings.Repeat("*", 60)+"\ntable\nhello\n", out.String())
	})
}

func TestRandomPlayer(t *testing.T) {
	p := player.NewRandomPlayer("bot", rand.New(rand.NewSource(3)))
	seen := map[int]bool{}
	for i := 0; i < 200; i++ {
		index, err := p.Choose("", []string{"a", "b", "c"})
		require.NoError(t, err)
		require.GreaterOrEqual(t, index, 0)
		require.Less(t, index, 3)
		seen[index] = true
	}
	assert.Len(t, seen, 3)
	assert.Equal(t, "bot", p.Name())
}

func TestGenerateBots(t *testing.T) {
	t.Run("unique_names_without_taken", func(t *testing.T) {
		bots := player.GenerateBots(4, rand.New(rand.NewSource(1)), "Jinx", "Zoe")
		require.Len(t, bots, 4)
		names := map[string]bool{}
		for _, bot := range bots {
			assert.NotContains(t, []string{"Jinx", "Zoe"}, bot.Name())
			names[bot.Name()] = true
		}
		assert.Len(t, names, 4)
	})

	t.Run("caps_at_available_names", func(t *testing.T) {
		assert.Len(t, player.GenerateBots(100, rand.New(rand.NewSource(1))), 26)
	})

	t.Run("create_players_seats_human_first", func(t *testing.T) {
		players := player.CreatePlayers(3, "alice", strings.NewReader(""), io.Discard, rand.New(rand.NewSource(1)))
		require.Len(t, players, 3)
		assert.Equal(t, "alice", players[0].Name())
	})
}

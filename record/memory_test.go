package record_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/ratel-online/deal/record"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemory(t *testing.T) {
	ctx := context.Background()

	t.Run("counts_played_and_won", func(t *testing.T) {
		recorder := record.NewMemory()
		require.NoError(t, recorder.Record(ctx, record.Result{GameID: "a", Winner: "alice", Players: []string{"alice", "bob"}, Rounds: 12}))
		require.NoError(t, recorder.Record(ctx, record.Result{GameID: "b", Players: []string{"alice", "bob"}, Rounds: 1000}))

		alice, err := recorder.Stats(ctx, "alice")
		require.NoError(t, err)
		assert.Equal(t, record.Stats{Name: "alice", Played: 2, Won: 1}, alice)

		bob, err := recorder.Stats(ctx, "bob")
		require.NoError(t, err)
		assert.Equal(t, record.Stats{Name: "bob", Played: 2}, bob)
	})

	t.Run("unknown_player_has_no_games", func(t *testing.T) {
		stats, err := record.NewMemory().Stats(ctx, "nobody")
		require.NoError(t, err)
		assert.Equal(t, record.Stats{Name: "nobody"}, stats)
	})

	t.Run("recent_is_newest_first_and_capped", func(t *testing.T) {
		recorder := record.NewMemory()
		for i := 0; i < record.RecentLimit+5; i++ {
			require.NoError(t, recorder.Record(ctx, record.Result{GameID: fmt.Sprint(i), FinishedAt: time.Now()}))
		}
		all, err := recorder.Recent(ctx, 0)
		require.NoError(t, err)
		assert.Len(t, all, record.RecentLimit)
		assert.Equal(t, fmt.Sprint(record.RecentLimit+4), all[0].GameID)

		two, err := recorder.Recent(ctx, 2)
		require.NoError(t, err)
		assert.Len(t, two, 2)
	})
}

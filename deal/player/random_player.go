package player

import (
	"sync"
	"time"

	"github.com/ratel-online/deal/deal/game"
	"golang.org/x/exp/rand"
)

// randomPlayer picks uniformly among the options it is given.
type randomPlayer struct {
	basicPlayer
	sync.Mutex
	rand *rand.Rand
}

// NewRandomPlayer creates a bot. A nil r seeds one from the clock.
func NewRandomPlayer(name string, r *rand.Rand) game.Player {
	if r == nil {
		r = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	}
	return &randomPlayer{basicPlayer: basicPlayer{name: name}, rand: r}
}

func (p *randomPlayer) Choose(prompt string, options []string) (int, error) {
	p.Lock()
	defer p.Unlock()
	return p.rand.Intn(len(options)), nil
}

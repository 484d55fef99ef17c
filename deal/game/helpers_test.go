package game_test

import (
	"strings"

	"github.com/ratel-online/deal/deal/game"
)

// scriptedPlayer answers every prompt through choose, or with the first
// option when choose is nil.
type scriptedPlayer struct {
	name     string
	choose   func(prompt string, options []string) int
	messages []string
}

func (p *scriptedPlayer) Name() string {
	return p.name
}

func (p *scriptedPlayer) Choose(prompt string, options []string) (int, error) {
	if p.choose == nil {
		return 0, nil
	}
	return p.choose(prompt, options), nil
}

func (p *scriptedPlayer) Write(message string, channel game.Channel) {
	p.messages = append(p.messages, message)
}

// pick selects the first option containing label, falling back to the first.
func pick(label string) func(string, []string) int {
	return func(_ string, options []string) int {
		return indexOf(options, label)
	}
}

func indexOf(options []string, label string) int {
	for i, option := range options {
		if strings.Contains(option, label) {
			return i
		}
	}
	return 0
}

// failingPlayer cannot answer, like a disconnected client.
type failingPlayer struct {
	scriptedPlayer
	err error
}

func (p *failingPlayer) Choose(prompt string, options []string) (int, error) {
	return 0, p.err
}

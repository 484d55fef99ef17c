package database

import (
	"strconv"
	"strings"
	"time"

	"github.com/ratel-online/deal/consts"
	"github.com/ratel-online/deal/deal/game"
	"github.com/ratel-online/deal/deal/msg"
)

// dealPlayer seats a connected player at a game. Anything typed that is not
// a number goes to the room chat.
type dealPlayer struct {
	player  *Player
	timeout time.Duration
}

func newDealPlayer(player *Player, timeout time.Duration) game.Player {
	return &dealPlayer{player: player, timeout: timeout}
}

func (p *dealPlayer) Name() string {
	return p.player.Name
}

// Choose waits for a valid selection. The play timeout covers the whole
// choice, so chatting or answering out of range does not extend it.
func (p *dealPlayer) Choose(prompt string, options []string) (int, error) {
	if !p.player.Online() {
		return 0, consts.ErrorsChanClosed
	}
	if err := p.player.WriteString(msg.Options(prompt, options)); err != nil {
		return 0, err
	}
	deadline := time.Now().Add(p.timeout)
	for {
		remaining := time.Until(deadline)
		if remaining <= 0 {
			_ = p.player.WriteError(consts.ErrorsTimeout)
			return 0, consts.ErrorsTimeout
		}
		packet, err := p.player.AskForPacket(remaining)
		if err != nil {
			if err == consts.ErrorsTimeout {
				_ = p.player.WriteError(err)
			}
			return 0, err
		}
		text := strings.TrimSpace(packet.String())
		index, err := strconv.Atoi(text)
		if err != nil {
			if text != "" {
				p.player.BroadcastChat(text)
			}
			continue
		}
		if index < 0 || index >= len(options) {
			_ = p.player.WriteString(msg.Message.InvalidSelection(index, len(options)))
			continue
		}
		return index, nil
	}
}

func (p *dealPlayer) Write(message string, channel game.Channel) {
	if channel == game.ChannelBoard {
		message = msg.Sprintln() + message
	}
	_ = p.player.WriteString(message)
}

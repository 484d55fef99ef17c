package player

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/ratel-online/deal/deal/game"
	"github.com/ratel-online/deal/deal/msg"
)

// terminalPlayer plays through a line based text stream.
type terminalPlayer struct {
	basicPlayer
	in  *bufio.Reader
	out io.Writer
}

func NewTerminalPlayer(name string, in io.Reader, out io.Writer) game.Player {
	return &terminalPlayer{
		basicPlayer: basicPlayer{name: name},
		in:          bufio.NewReader(in),
		out:         out,
	}
}

// Choose prints the numbered options and reads lines until one names a valid
// option. It fails once the input is exhausted.
func (p *terminalPlayer) Choose(prompt string, options []string) (int, error) {
	p.Write(msg.Options(prompt, options), game.ChannelPrompt)
	for {
		_, _ = fmt.Fprint(p.out, "enter # to select: ")
		line, err := p.in.ReadString('\n')
		if err != nil && strings.TrimSpace(line) == "" {
			return 0, err
		}
		index, convErr := strconv.Atoi(strings.TrimSpace(line))
		switch {
		case convErr != nil:
			p.Write(msg.Message.InvalidInput(strings.TrimSpace(line)), game.ChannelPrompt)
		case index < 0 || index >= len(options):
			p.Write(msg.Message.InvalidSelection(index, len(options)), game.ChannelPrompt)
		default:
			return index, nil
		}
		if err != nil {
			return 0, err
		}
	}
}

func (p *terminalPlayer) Write(message string, channel game.Channel) {
	if channel == game.ChannelBoard {
		message = msg.Sprintln(strings.Repeat("*", 60)) + message
	}
	_, _ = fmt.Fprint(p.out, message)
}

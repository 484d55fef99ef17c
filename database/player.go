package database

import (
	"fmt"
	stringx "strings"
	"sync/atomic"
	"time"

	"github.com/ratel-online/core/log"
	"github.com/ratel-online/core/network"
	"github.com/ratel-online/core/protocol"
	"github.com/ratel-online/deal/consts"
)

type Player struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Score  int64  `json:"score"`
	RoomID int64  `json:"roomId"`

	conn   *network.Conn
	data   chan *protocol.Packet
	read   atomic.Bool
	state  consts.StateID
	online atomic.Bool
}

func (p *Player) Offline() {
	p.online.Store(false)
	_ = p.conn.Close()
	close(p.data)
	offline(p.RoomID, p.ID)
}

func (p *Player) Online() bool {
	return p.online.Load()
}

// Listening forwards packets to whoever is asking. Packets that arrive while
// nobody asks are dropped.
func (p *Player) Listening() error {
	for {
		pack, err := p.conn.Read()
		if err != nil {
			log.Error(err)
			return err
		}
		if p.read.Load() {
			p.data <- pack
		}
	}
}

func (p *Player) WriteString(data string) error {
	return p.conn.Write(protocol.Packet{
		Body: []byte(data),
	})
}

func (p *Player) WriteError(err error) error {
	if err == consts.ErrorsExist {
		return err
	}
	return p.conn.Write(protocol.Packet{
		Body: []byte(err.Error() + "\n"),
	})
}

func (p *Player) AskForPacket(timeout ...time.Duration) (*protocol.Packet, error) {
	p.StartTransaction()
	defer p.StopTransaction()
	return p.askForPacket(timeout...)
}

func (p *Player) askForPacket(timeout ...time.Duration) (*protocol.Packet, error) {
	var packet *protocol.Packet
	if len(timeout) > 0 {
		select {
		case packet = <-p.data:
		case <-time.After(timeout[0]):
			return nil, consts.ErrorsTimeout
		}
	} else {
		packet = <-p.data
	}
	if packet == nil {
		return nil, consts.ErrorsChanClosed
	}
	single := stringx.ToLower(stringx.TrimSpace(packet.String()))
	if single == "exit" {
		return nil, consts.ErrorsExist
	}
	return packet, nil
}

func (p *Player) AskForInt(timeout ...time.Duration) (int, error) {
	packet, err := p.AskForPacket(timeout...)
	if err != nil {
		return 0, err
	}
	return packet.Int()
}

func (p *Player) AskForString(timeout ...time.Duration) (string, error) {
	packet, err := p.AskForPacket(timeout...)
	if err != nil {
		return "", err
	}
	return stringx.TrimSpace(packet.String()), nil
}

func (p *Player) AskForStringWithoutTransaction(timeout ...time.Duration) (string, error) {
	packet, err := p.askForPacket(timeout...)
	if err != nil {
		return "", err
	}
	return stringx.TrimSpace(packet.String()), nil
}

// StartTransaction discards answers left over from an earlier ask before
// reading again.
func (p *Player) StartTransaction() {
	p.drain()
	p.read.Store(true)
	_ = p.WriteString(consts.IsStart)
}

func (p *Player) drain() {
	for {
		select {
		case packet, ok := <-p.data:
			if !ok {
				return
			}
			log.Infof("player %s dropped stale input: %s\n", p, stringx.TrimSpace(packet.String()))
		default:
			return
		}
	}
}

func (p *Player) StopTransaction() {
	p.read.Store(false)
	_ = p.WriteString(consts.IsStop)
}

func (p *Player) State(s consts.StateID) {
	p.state = s
}

func (p *Player) GetState() consts.StateID {
	return p.state
}

func (p *Player) Conn(conn *network.Conn) {
	p.conn = conn
	p.data = make(chan *protocol.Packet, 8)
	p.online.Store(true)
}

func (p *Player) Model() PlayerInfo {
	return PlayerInfo{
		ID:     p.ID,
		Name:   p.Name,
		Score:  p.Score,
		Online: p.Online(),
	}
}

func (p *Player) String() string {
	return fmt.Sprintf("%s[%d]", p.Name, p.ID)
}

// BroadcastChat relays msg to the rest of the room when chat is enabled.
func (p *Player) BroadcastChat(msg string) {
	room := GetRoom(p.RoomID)
	if room == nil {
		return
	}
	if !room.EnableChat {
		_ = p.WriteError(consts.ErrorsChatUnopened)
		return
	}
	log.Infof("chat msg, player %s say: %s\n", p, stringx.TrimSpace(msg))
	Broadcast(p.RoomID, fmt.Sprintf("%s say: %s\n", p.Name, stringx.TrimSpace(msg)), p.ID)
}

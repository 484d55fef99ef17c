package database

import (
	"io"
	"regexp"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/ratel-online/core/network"
	"github.com/ratel-online/core/protocol"
	"github.com/ratel-online/deal/consts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedConn answers every ask with a reply to the last text it was sent.
// A reply is sent after delay so that it arrives while the ask is open.
type scriptedConn struct {
	in     chan string
	closed chan struct{}
	once   sync.Once
	delay  time.Duration
	reply  func(last string) (string, bool)

	mu     sync.Mutex
	output []string
	last   string
}

func newScriptedConn(delay time.Duration, reply func(last string) (string, bool)) *scriptedConn {
	return &scriptedConn{
		in:     make(chan string, 16),
		closed: make(chan struct{}),
		delay:  delay,
		reply:  reply,
	}
}

// answers replies with each answer once, then stays silent.
func answers(list ...string) func(string) (string, bool) {
	var mu sync.Mutex
	return func(string) (string, bool) {
		mu.Lock()
		defer mu.Unlock()
		if len(list) == 0 {
			return "", false
		}
		answer := list[0]
		list = list[1:]
		return answer, true
	}
}

func (c *scriptedConn) Read() (*protocol.Packet, error) {
	select {
	case text := <-c.in:
		return &protocol.Packet{Body: []byte(text)}, nil
	case <-c.closed:
		return nil, io.EOF
	}
}

func (c *scriptedConn) Write(packet protocol.Packet) error {
	select {
	case <-c.closed:
		return io.ErrClosedPipe
	default:
	}
	text := packet.String()
	c.mu.Lock()
	c.output = append(c.output, text)
	last := c.last
	if text != consts.IsStart && text != consts.IsStop {
		c.last = text
	}
	c.mu.Unlock()
	if text == consts.IsStart && c.reply != nil {
		if answer, ok := c.reply(last); ok {
			time.AfterFunc(c.delay, func() {
				select {
				case c.in <- answer:
				case <-c.closed:
				}
			})
		}
	}
	return nil
}

func (c *scriptedConn) Close() error {
	c.once.Do(func() { close(c.closed) })
	return nil
}

func (c *scriptedConn) IP() string {
	return "127.0.0.1"
}

func (c *scriptedConn) written(prefix string) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	count := 0
	for _, text := range c.output {
		if strings.HasPrefix(text, prefix) {
			count++
		}
	}
	return count
}

var optionLine = regexp.MustCompile(`^\s+\d+\. `)

// connect registers a player on conn and listens to it the way the server
// does, going offline when the connection ends.
func connect(t *testing.T, name string, conn *scriptedConn) *Player {
	player := register(t, name)
	player.Conn(network.Wrapper(conn))
	go func() {
		_ = player.Listening()
		player.Offline()
	}()
	t.Cleanup(func() { _ = conn.Close() })
	return player
}

// lastOption picks the last listed option, which ends the turn when cards
// are offered.
func lastOption(last string) (string, bool) {
	count := 0
	for _, line := range strings.Split(last, "\n") {
		if optionLine.MatchString(line) {
			count++
		}
	}
	if count == 0 {
		return "0", true
	}
	return strconv.Itoa(count - 1), true
}

func TestDealPlayerChoose(t *testing.T) {
	options := []string{"a", "b", "c"}

	t.Run("returns_numeric_answer", func(t *testing.T) {
		player := connect(t, "alice", newScriptedConn(0, answers(" 2 ")))
		index, err := newDealPlayer(player, time.Second).Choose("pick", options)
		require.NoError(t, err)
		assert.Equal(t, 2, index)
	})

	t.Run("asks_again_when_out_of_range", func(t *testing.T) {
		conn := newScriptedConn(0, answers("7", "-1", "1"))
		player := connect(t, "alice", conn)
		index, err := newDealPlayer(player, time.Second).Choose("pick", options)
		require.NoError(t, err)
		assert.Equal(t, 1, index)
		assert.Equal(t, 2, conn.written("Invalid selection"))
	})

	t.Run("times_out_without_answer", func(t *testing.T) {
		player := connect(t, "alice", newScriptedConn(0, answers()))
		_, err := newDealPlayer(player, 50*time.Millisecond).Choose("pick", options)
		assert.Equal(t, consts.ErrorsTimeout, err)
	})

	t.Run("chatting_does_not_extend_timeout", func(t *testing.T) {
		chat := func(string) (string, bool) { return "hello", true }
		player := connect(t, "alice", newScriptedConn(20*time.Millisecond, chat))

		errs := make(chan error, 1)
		go func() {
			_, err := newDealPlayer(player, 200*time.Millisecond).Choose("pick", options)
			errs <- err
		}()
		select {
		case err := <-errs:
			assert.Equal(t, consts.ErrorsTimeout, err)
		case <-time.After(3 * time.Second):
			t.Fatal("choice outlived its play timeout")
		}
	})

	t.Run("offline_player_cannot_answer", func(t *testing.T) {
		conn := newScriptedConn(0, answers("1"))
		player := connect(t, "alice", conn)
		_ = conn.Close()
		require.Eventually(t, func() bool { return !player.Online() }, time.Second, 10*time.Millisecond)

		_, err := newDealPlayer(player, time.Second).Choose("pick", options)
		assert.Equal(t, consts.ErrorsChanClosed, err)
	})

	t.Run("disconnect_ends_pending_choice", func(t *testing.T) {
		conn := newScriptedConn(0, answers())
		player := connect(t, "alice", conn)

		errs := make(chan error, 1)
		go func() {
			_, err := newDealPlayer(player, 10*time.Second).Choose("pick", options)
			errs <- err
		}()
		require.Eventually(t, func() bool { return conn.written(consts.IsStart) > 0 }, time.Second, 5*time.Millisecond)
		_ = conn.Close()

		select {
		case err := <-errs:
			assert.Equal(t, consts.ErrorsChanClosed, err)
		case <-time.After(3 * time.Second):
			t.Fatal("choice still pending after disconnect")
		}
	})
}

func TestStaleInputIsDiscarded(t *testing.T) {
	conn := newScriptedConn(0, answers("2"))
	player := connect(t, "alice", conn)
	seat := newDealPlayer(player, time.Second)

	index, err := seat.Choose("first", []string{"a", "b", "c"})
	require.NoError(t, err)
	assert.Equal(t, 2, index)

	// typed twice while the first ask was still open
	player.data <- &protocol.Packet{Body: []byte("1")}

	_, err = newDealPlayer(player, 100*time.Millisecond).Choose("second", []string{"a", "b"})
	assert.Equal(t, consts.ErrorsTimeout, err)
}

func TestGameSession(t *testing.T) {
	saved := options
	t.Cleanup(func() { options = saved })
	Setup(Options{MaxRounds: 20, PlayTimeout: time.Second})

	alice := connect(t, "alice", newScriptedConn(0, lastOption))
	bobConn := newScriptedConn(0, answers())
	bob := connect(t, "bob", bobConn)

	room := CreateRoom(alice.ID)
	require.NoError(t, JoinRoom(room.ID, bob.ID))
	require.NoError(t, room.SetProps(consts.RoomPropsRobots, "1"))
	require.NoError(t, StartGame(room))

	room.Lock()
	session, state := room.Game, room.State
	room.Unlock()
	require.NotNil(t, session)
	assert.Equal(t, consts.RoomStateRunning, state)

	_ = bobConn.Close()
	session.Ready(alice.ID)
	session.Ready(bob.ID)

	select {
	case <-session.Done():
	case <-time.After(30 * time.Second):
		t.Fatal("game did not finish")
	}

	room.Lock()
	defer room.Unlock()
	assert.Equal(t, consts.RoomStateWaiting, room.State)
	assert.Nil(t, room.Game)
	require.NotNil(t, room.LastResult)
	assert.Equal(t, session.Model().ID, room.LastResult.GameID)
	assert.Len(t, room.LastResult.Players, 3)
	assert.Equal(t, []int64{alice.ID}, getRoomPlayers(room.ID))
	assert.Zero(t, bob.RoomID)
	assert.Equal(t, "finished", session.Model().Status)
}

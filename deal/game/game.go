package game

import (
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/ratel-online/deal/deal/card"
	"github.com/ratel-online/deal/deal/msg"
	"go.uber.org/zap"
	"golang.org/x/exp/rand"
)

const (
	StartingHand   = 5
	DrawPerTurn    = 2
	PlaysPerTurn   = 3
	HandLimit      = 7
	SetsToWin      = 3
	MaxRounds      = 1000
	DebtCollection = 5
	BirthdayGift   = 2
)

var (
	ErrNoPlayers      = errors.New("game needs at least one player")
	ErrDuplicateName  = errors.New("player names must be unique")
	ErrAlreadyStarted = errors.New("game already started")
)

type Status int32

const (
	StatusNotStarted Status = iota
	StatusPlaying
	StatusFinished
)

func (s Status) String() string {
	switch s {
	case StatusPlaying:
		return "playing"
	case StatusFinished:
		return "finished"
	}
	return "not started"
}

type Option func(*Game)

// WithSeed makes shuffling reproducible.
func WithSeed(seed uint64) Option {
	return func(g *Game) {
		g.rand = rand.New(rand.NewSource(seed))
	}
}

func WithLogger(logger *zap.Logger) Option {
	return func(g *Game) {
		g.logger = logger
	}
}

func WithMaxRounds(rounds int) Option {
	return func(g *Game) {
		if rounds > 0 {
			g.maxRounds = rounds
		}
	}
}

func WithID(id string) Option {
	return func(g *Game) {
		g.id = id
	}
}

// WithAfterTurn calls f on the playing goroutine whenever a turn is over.
func WithAfterTurn(f func()) Option {
	return func(g *Game) {
		g.afterTurn = f
	}
}

type handler func(player *playerController, c card.Card)

type Game struct {
	id        string
	players   *PlayerIterator
	deck      *Deck
	board     *Board
	rand      *rand.Rand
	logger    *zap.Logger
	status    atomic.Int32
	maxRounds int
	rentLevel int
	rounds    int
	turns     int
	winner    *playerController
	handlers  map[card.Kind]handler
	afterTurn func()
}

// New seats players in the given order and deals their starting hands.
func New(players []Player, opts ...Option) (*Game, error) {
	if len(players) == 0 {
		return nil, ErrNoPlayers
	}
	names := map[string]bool{}
	for _, player := range players {
		if names[player.Name()] {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateName, player.Name())
		}
		names[player.Name()] = true
	}
	g := &Game{
		id:        uuid.NewString(),
		maxRounds: MaxRounds,
		rentLevel: 1,
		logger:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.rand == nil {
		g.rand = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	}
	g.logger = g.logger.With(zap.String("game", g.id))
	g.players = newPlayerIterator(players, g.logger)
	g.deck = NewDeck(card.Catalog(), g.rand)
	g.board = NewBoard(g.players.Names())
	g.handlers = map[card.Kind]handler{
		card.KindMoney:    g.depositMoney,
		card.KindProperty: g.layProperty,
		card.KindRent:     g.collectRent,
		card.KindAction:   g.doAction,
	}
	g.players.ForEach(func(player *playerController) {
		player.DrawCards(g.deck, StartingHand)
	})
	return g, nil
}

func (g *Game) ID() string {
	return g.id
}

func (g *Game) Status() Status {
	return Status(g.status.Load())
}

func (g *Game) Rounds() int {
	return g.rounds
}

func (g *Game) Turns() int {
	return g.turns
}

func (g *Game) Deck() *Deck {
	return g.deck
}

func (g *Game) Board() *Board {
	return g.board
}

func (g *Game) Players() []string {
	return g.players.Names()
}

func (g *Game) GetPlayerCards(name string) []card.Card {
	return g.players.GetPlayerController(name).Hand()
}

// Winner is nil until someone has won.
func (g *Game) Winner() Player {
	if g.winner == nil {
		return nil
	}
	return g.winner.player
}

// Cards returns every card in the game wherever it is.
func (g *Game) Cards() []card.Card {
	cards := g.deck.Cards()
	g.players.ForEach(func(player *playerController) {
		cards = append(cards, player.Hand()...)
	})
	return append(cards, g.board.Cards()...)
}

// Play runs rounds until a player holds enough full sets or the round limit
// is reached. It returns the winner, or nil when nobody won.
func (g *Game) Play() (Player, error) {
	if !g.status.CompareAndSwap(int32(StatusNotStarted), int32(StatusPlaying)) {
		return nil, ErrAlreadyStarted
	}
	defer g.status.Store(int32(StatusFinished))

	g.logger.Info("game started", zap.Strings("players", g.players.Names()))
	g.broadcast(msg.Message.GameStarted(g.players.Names()))
	for g.winner == nil && g.rounds < g.maxRounds {
		g.rounds++
		g.winner = g.playRound()
	}
	if g.winner == nil {
		g.logger.Info("game ended without winner", zap.Int("rounds", g.rounds))
		g.broadcast(msg.Message.NoWinner(g.rounds))
		return nil, nil
	}
	g.logger.Info("game won", zap.String("winner", g.winner.Name()), zap.Int("rounds", g.rounds))
	g.broadcast(msg.Message.WinnerFound(g.winner.Name(), g.rounds))
	return g.winner.player, nil
}

func (g *Game) playRound() *playerController {
	for i := 0; i < g.players.Size(); i++ {
		player := g.players.Next()
		g.takeTurn(player)
		if g.afterTurn != nil {
			g.afterTurn()
		}
		if winner := g.checkWinCondition(); winner != nil {
			return winner
		}
	}
	return nil
}

// takeTurn draws, lets the player make up to PlaysPerTurn plays, then trims
// the hand down to HandLimit.
func (g *Game) takeTurn(player *playerController) {
	g.turns++
	g.rentLevel = 1
	g.broadcast(msg.Message.TurnStarted(player.Name(), g.rounds))
	player.DrawCards(g.deck, DrawPerTurn)

	for plays := 0; plays < PlaysPerTurn; {
		playedCard, move := player.ChooseAction()
		if move == MoveEndTurn {
			g.broadcast(msg.Message.PlayerEndedTurn(player.Name()))
			break
		}
		switch move {
		case MoveShowBoard:
			player.Write(g.renderBoard(), ChannelBoard)
		case MoveRearrange:
			g.rearrangeProperties(player)
		case MovePlay:
			plays++
			g.play(player, playedCard)
		}
	}

	if discards := player.DiscardCards(HandLimit); len(discards) > 0 {
		g.deck.Discard(discards...)
		g.broadcast(msg.Message.PlayerDiscarded(player.Name(), discards))
	}
	g.broadcastBoard()
}

func (g *Game) play(player *playerController, playedCard card.Card) {
	if !player.hand.RemoveCard(playedCard) {
		panic(fmt.Sprintf("%s played %s which is not in hand", player.Name(), playedCard))
	}
	g.logger.Debug("card played",
		zap.String("player", player.Name()),
		zap.Stringer("kind", playedCard.Kind()),
		zap.Int("round", g.rounds),
	)
	g.broadcast(msg.Message.PlayerPlayedCard(player.Name(), playedCard))
	handle, ok := g.handlers[playedCard.Kind()]
	if !ok {
		panic(fmt.Sprintf("no handler for %s cards", playedCard.Kind()))
	}
	handle(player, playedCard)
}

func (g *Game) checkWinCondition() *playerController {
	var winner *playerController
	g.players.ForEach(func(player *playerController) {
		if winner == nil && len(g.board.FullSets(player.Name())) >= SetsToWin {
			winner = player
		}
	})
	return winner
}

func (g *Game) broadcast(message string) {
	g.players.ForEach(func(player *playerController) {
		player.Write(message, ChannelMessage)
	})
}

func (g *Game) broadcastBoard() {
	board := g.renderBoard()
	g.players.ForEach(func(player *playerController) {
		player.Write(board, ChannelBoard)
	})
}

func (g *Game) renderBoard() string {
	rows := make([]msg.BoardRow, 0, g.players.Size())
	g.players.ForEach(func(player *playerController) {
		rows = append(rows, msg.BoardRow{
			Player:     player.Name(),
			HandSize:   player.hand.Size(),
			Bank:       g.board.Bank(player.Name()),
			Properties: g.board.Properties(player.Name()),
		})
	})
	return msg.Message.Board(rows)
}

package card

import "fmt"

type Action int

const (
	_ Action = iota
	DealBreaker
	DebtCollector
	DoubleTheRent
	ForcedDeal
	Hotel
	House
	ItsMyBirthday
	JustSayNo
	PassGo
	SlyDeal
)

var actionNames = map[Action]string{
	DealBreaker:   "Deal Breaker",
	DebtCollector: "Debt Collector",
	DoubleTheRent: "Double The Rent",
	ForcedDeal:    "Forced Deal",
	Hotel:         "Hotel",
	House:         "House",
	ItsMyBirthday: "It's My Birthday",
	JustSayNo:     "Just Say No",
	PassGo:        "Pass Go",
	SlyDeal:       "Sly Deal",
}

func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return fmt.Sprintf("Action(%d)", int(a))
}

type ActionCard struct {
	action Action
	value  int
}

func NewActionCard(action Action, value int) ActionCard {
	return ActionCard{action: action, value: value}
}

func (c ActionCard) Kind() Kind {
	return KindAction
}

func (c ActionCard) Value() int {
	return c.value
}

func (c ActionCard) Action() Action {
	return c.action
}

// Bonus reports whether the card is laid on a full set to raise its rent.
func (c ActionCard) Bonus() bool {
	return c.action == House || c.action == Hotel
}

func (c ActionCard) Equal(other Card) bool {
	o, ok := other.(ActionCard)
	return ok && c.action == o.action && c.value == o.value
}

func (c ActionCard) String() string {
	return fmt.Sprintf("%s %s", c.action, money(c.value))
}

// IsAction reports whether c is an action card of the given kind.
func IsAction(c Card, action Action) bool {
	a, ok := c.(ActionCard)
	return ok && a.action == action
}

// IsBonus reports whether c is a house or hotel.
func IsBonus(c Card) bool {
	a, ok := c.(ActionCard)
	return ok && a.Bonus()
}

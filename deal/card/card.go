package card

import "fmt"

// Kind tags the variant of a card.
type Kind int

const (
	_ Kind = iota
	KindMoney
	KindProperty
	KindRent
	KindAction
)

func (k Kind) String() string {
	switch k {
	case KindMoney:
		return "money"
	case KindProperty:
		return "property"
	case KindRent:
		return "rent"
	case KindAction:
		return "action"
	}
	return "unknown"
}

// Card values are counted in millions.
type Card interface {
	Kind() Kind
	Value() int
	Equal(other Card) bool
	String() string
}

// Value sums the values of cards.
func Value(cards []Card) int {
	total := 0
	for _, c := range cards {
		total += c.Value()
	}
	return total
}

func Contains(cards []Card, searched Card) bool {
	for _, c := range cards {
		if c.Equal(searched) {
			return true
		}
	}
	return false
}

func money(value int) string {
	return fmt.Sprintf("$%dM", value)
}

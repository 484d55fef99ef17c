package card

import (
	"fmt"
	"strings"

	"github.com/ratel-online/deal/deal/card/color"
)

// Set is the pile of cards a player has filed under one color.
type Set struct {
	Color color.Color
	Cards []Card
}

// Properties counts the property cards in the set, ignoring houses and hotels.
func (s Set) Properties() int {
	count := 0
	for _, c := range s.Cards {
		if c.Kind() == KindProperty {
			count++
		}
	}
	return count
}

func (s Set) Full() bool {
	return IsFullSet(s.Color, s.Cards)
}

func (s Set) Rent() int {
	return Rent(s.Color, s.Cards)
}

func (s Set) Value() int {
	return Value(s.Cards)
}

func (s Set) String() string {
	names := make([]string, 0, len(s.Cards))
	for _, c := range s.Cards {
		names = append(names, c.String())
	}
	return fmt.Sprintf("%s: %s", s.Color, strings.Join(names, ", "))
}

// IsFullSet reports whether cards complete the set of propertyColor.
func IsFullSet(propertyColor color.Color, cards []Card) bool {
	return Set{Color: propertyColor, Cards: cards}.Properties() >= propertyColor.FullSize()
}

// Rent is the rent charged for cards filed under propertyColor. Houses and
// hotels only count once the set is full.
func Rent(propertyColor color.Color, cards []Card) int {
	count := Set{Color: propertyColor, Cards: cards}.Properties()
	if count == 0 {
		return 0
	}
	rents := propertyColor.Rents()
	if count < len(rents) {
		return rents[count-1]
	}
	rent := rents[len(rents)-1]
	for _, c := range cards {
		if IsBonus(c) {
			rent += c.Value()
		}
	}
	return rent
}

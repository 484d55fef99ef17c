package card

import (
	"fmt"

	"github.com/ratel-online/deal/deal/card/color"
)

// Target says who pays for a rent card.
type Target int

const (
	_ Target = iota
	TargetOne
	TargetAll
)

func (t Target) String() string {
	if t == TargetAll {
		return "all players"
	}
	return "one player"
}

type RentCard struct {
	colors []color.Color
	target Target
	value  int
}

func NewRentCard(target Target, value int, colors ...color.Color) RentCard {
	return RentCard{colors: colors, target: target, value: value}
}

func (c RentCard) Kind() Kind {
	return KindRent
}

func (c RentCard) Value() int {
	return c.value
}

func (c RentCard) Target() Target {
	return c.target
}

func (c RentCard) Colors() []color.Color {
	colors := make([]color.Color, len(c.colors))
	copy(colors, c.colors)
	return colors
}

func (c RentCard) Equal(other Card) bool {
	o, ok := other.(RentCard)
	if !ok || c.target != o.target || c.value != o.value || len(c.colors) != len(o.colors) {
		return false
	}
	for i := range c.colors {
		if c.colors[i] != o.colors[i] {
			return false
		}
	}
	return true
}

func (c RentCard) String() string {
	colors := "any color"
	if len(c.colors) < len(color.All) {
		colors = color.Names(c.colors)
	}
	return fmt.Sprintf("Rent (%s, %s) %s", colors, c.target, money(c.value))
}

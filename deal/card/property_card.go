package card

import (
	"fmt"

	"github.com/ratel-online/deal/deal/card/color"
)

const wildCardName = "Wild Card"

type PropertyCard struct {
	name   string
	colors []color.Color
	value  int
}

func NewPropertyCard(name string, propertyColor color.Color, value int) PropertyCard {
	return PropertyCard{name: name, colors: []color.Color{propertyColor}, value: value}
}

// NewWildCard creates a property that may be filed under any of colors.
func NewWildCard(value int, colors ...color.Color) PropertyCard {
	return PropertyCard{name: wildCardName, colors: colors, value: value}
}

func (c PropertyCard) Kind() Kind {
	return KindProperty
}

func (c PropertyCard) Value() int {
	return c.value
}

func (c PropertyCard) Name() string {
	return c.name
}

func (c PropertyCard) Colors() []color.Color {
	colors := make([]color.Color, len(c.colors))
	copy(colors, c.colors)
	return colors
}

func (c PropertyCard) Wild() bool {
	return len(c.colors) > 1
}

func (c PropertyCard) Equal(other Card) bool {
	o, ok := other.(PropertyCard)
	if !ok || c.name != o.name || c.value != o.value || len(c.colors) != len(o.colors) {
		return false
	}
	for i := range c.colors {
		if c.colors[i] != o.colors[i] {
			return false
		}
	}
	return true
}

func (c PropertyCard) String() string {
	if len(c.colors) == 1 {
		return fmt.Sprintf("%s (%s) %s", c.colors[0].Paint(c.name), c.colors[0].Name(), money(c.value))
	}
	return fmt.Sprintf("%s (%s) %s", c.name, color.Names(c.colors), money(c.value))
}

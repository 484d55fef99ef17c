package color

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// Color is a property color together with its rent table.
type Color interface {
	Name() string
	Rents() []int
	FullSize() int
	Paint(string) string
	String() string
}

type colorStruct struct {
	name          string
	rents         []int
	colorFunction func(string, ...interface{}) string
}

func (c *colorStruct) Name() string {
	return c.name
}

func (c *colorStruct) Rents() []int {
	rents := make([]int, len(c.rents))
	copy(rents, c.rents)
	return rents
}

// FullSize is the number of properties needed to complete the set.
func (c *colorStruct) FullSize() int {
	return len(c.rents)
}

func (c *colorStruct) Paint(text string) string {
	return c.colorFunction("%s", text)
}

func (c *colorStruct) String() string {
	return c.Paint(c.name)
}

var Brown = &colorStruct{
	name:          "brown",
	rents:         []int{1, 2},
	colorFunction: color.New(color.FgRed).SprintfFunc(),
}

var DarkBlue = &colorStruct{
	name:          "dark blue",
	rents:         []int{3, 8},
	colorFunction: color.New(color.FgBlue).SprintfFunc(),
}

var Green = &colorStruct{
	name:          "green",
	rents:         []int{2, 4, 7},
	colorFunction: color.New(color.FgGreen).SprintfFunc(),
}

var LightBlue = &colorStruct{
	name:          "light blue",
	rents:         []int{1, 2, 3},
	colorFunction: color.New(color.FgHiCyan).SprintfFunc(),
}

var Orange = &colorStruct{
	name:          "orange",
	rents:         []int{1, 3, 5},
	colorFunction: color.New(color.FgYellow).SprintfFunc(),
}

var Purple = &colorStruct{
	name:          "purple",
	rents:         []int{1, 2, 4},
	colorFunction: color.New(color.FgMagenta).SprintfFunc(),
}

var Railroad = &colorStruct{
	name:          "railroad",
	rents:         []int{1, 2, 3, 4},
	colorFunction: color.New(color.FgHiBlack).SprintfFunc(),
}

var Red = &colorStruct{
	name:          "red",
	rents:         []int{2, 3, 6},
	colorFunction: color.New(color.FgHiRed).SprintfFunc(),
}

var Utility = &colorStruct{
	name:          "utility",
	rents:         []int{1, 2},
	colorFunction: color.New(color.FgWhite).SprintfFunc(),
}

var Yellow = &colorStruct{
	name:          "yellow",
	rents:         []int{2, 4, 6},
	colorFunction: color.New(color.FgHiYellow).SprintfFunc(),
}

// Stdout writes colored text to the terminal on every platform.
var Stdout io.Writer = color.Output

// All lists every color in board order.
var All = []Color{
	Brown, DarkBlue, Green, LightBlue, Orange,
	Purple, Railroad, Red, Utility, Yellow,
}

var colors = map[string]Color{}

func init() {
	for _, c := range All {
		colors[c.Name()] = c
	}
}

func ByName(name string) (Color, error) {
	color := colors[strings.ToLower(strings.TrimSpace(name))]
	if color == nil {
		return nil, fmt.Errorf("invalid color '%s'", name)
	}
	return color, nil
}

// Names joins the plain names of the given colors with a slash.
func Names(colors []Color) string {
	names := make([]string, 0, len(colors))
	for _, c := range colors {
		names = append(names, c.Name())
	}
	return strings.Join(names, "/")
}

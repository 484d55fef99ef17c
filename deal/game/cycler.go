package game

// Cycler walks names in seating order, wrapping around.
type Cycler struct {
	elements []string
	current  int
}

func NewCycler(elements []string) *Cycler {
	return &Cycler{
		elements: elements,
		current:  len(elements) - 1,
	}
}

func (c *Cycler) Current() string {
	return c.elements[c.current]
}

func (c *Cycler) ForEach(function func(string)) {
	for _, element := range c.elements {
		function(element)
	}
}

func (c *Cycler) Next() string {
	elementCount := len(c.elements)
	c.current = (c.current + 1) % elementCount
	return c.elements[c.current]
}

func (c *Cycler) Len() int {
	return len(c.elements)
}

// Others lists every element except the given one, in seating order.
func (c *Cycler) Others(element string) []string {
	others := make([]string, 0, len(c.elements))
	for _, e := range c.elements {
		if e != element {
			others = append(others, e)
		}
	}
	return others
}

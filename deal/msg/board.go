package msg

import (
	"fmt"
	"strings"

	"github.com/pterm/pterm"
	"github.com/ratel-online/deal/deal/card"
)

// BoardRow is the public view of one player at the table.
type BoardRow struct {
	Player     string
	HandSize   int
	Bank       []card.Card
	Properties []card.Set
}

// Board renders the table as a text grid, one line per property set.
func (m MessageWriter) Board(rows []BoardRow) string {
	data := pterm.TableData{{"Player", "Hand", "Bank", "Set", "Properties", "Rent"}}
	for _, row := range rows {
		player := row.Player
		hand := fmt.Sprintf("%d", row.HandSize)
		bank := fmt.Sprintf("$%dM (%d)", card.Value(row.Bank), len(row.Bank))
		if len(row.Properties) == 0 {
			data = append(data, []string{player, hand, bank, "-", "-", "-"})
			continue
		}
		for _, set := range row.Properties {
			name := set.Color.Name()
			if set.Full() {
				name += " *"
			}
			data = append(data, []string{player, hand, bank, name, propertyNames(set.Cards), fmt.Sprintf("$%dM", set.Rent())})
			player, hand, bank = "", "", ""
		}
	}
	table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return Sprintln(err)
	}
	return Sprintln(table)
}

func propertyNames(cards []card.Card) string {
	names := make([]string, 0, len(cards))
	for _, c := range cards {
		switch c := c.(type) {
		case card.PropertyCard:
			names = append(names, c.Name())
		default:
			names = append(names, c.String())
		}
	}
	return strings.Join(names, ", ")
}

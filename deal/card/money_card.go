package card

type MoneyCard struct {
	value int
}

func NewMoneyCard(value int) MoneyCard {
	return MoneyCard{value: value}
}

func (c MoneyCard) Kind() Kind {
	return KindMoney
}

func (c MoneyCard) Value() int {
	return c.value
}

func (c MoneyCard) Equal(other Card) bool {
	switch other := other.(type) {
	case MoneyCard:
		return c.value == other.value
	default:
		return false
	}
}

func (c MoneyCard) String() string {
	return money(c.value)
}

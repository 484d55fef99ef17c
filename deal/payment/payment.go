// Package payment settles debts without making change.
//
// A debt is paid from the bank first. Whatever is still owed is then taken
// from the debtor's properties, loose cards before sets, and sets with the
// highest rent only when nothing cheaper covers the debt.
package payment

import (
	"sort"

	"github.com/ratel-online/deal/deal/card"
)

// Payment is the outcome of settling a debt. Owed is what the debtor could not
// cover, Overpaid is what was lost to the lack of change.
type Payment struct {
	Paid      []card.Card
	Owed      int
	Overpaid  int
	Remaining []card.Card
}

// FromBank picks the cards to hand over for owed. It minimizes the amount
// still owed, then the overpayment, then the number of cards used. On a full
// tie the earlier card is used.
func FromBank(owed int, cards []card.Card) Payment {
	r := newResolver(cards)
	best := r.solve(0, owed)
	used := make([]bool, len(cards))
	for _, i := range best.used {
		used[i] = true
	}
	payment := Payment{Owed: best.owed, Overpaid: best.overpaid}
	for i, c := range cards {
		if used[i] {
			payment.Paid = append(payment.Paid, c)
		} else {
			payment.Remaining = append(payment.Remaining, c)
		}
	}
	return payment
}

// FromProperties takes owed out of the given property sets.
func FromProperties(owed int, sets []card.Set) Payment {
	all := make([]card.Card, 0)
	for _, set := range sets {
		all = append(all, set.Cards...)
	}
	if owed <= 0 {
		return Payment{Overpaid: -owed, Remaining: all}
	}
	if total := card.Value(all); owed >= total {
		return Payment{Paid: all, Owed: owed - total}
	}

	var singles []card.Card
	var partial, full []card.Set
	for _, set := range sets {
		switch {
		case set.Full():
			full = append(full, set)
		case len(set.Cards) > 1:
			partial = append(partial, set)
		default:
			singles = append(singles, set.Cards...)
		}
	}
	byRent := func(sets []card.Set) {
		sort.SliceStable(sets, func(i, j int) bool {
			return sets[i].Rent() > sets[j].Rent()
		})
	}
	byRent(partial)
	byRent(full)
	groups := append(partial, full...)

	payment := FromBank(owed, singles)
	for payment.Owed > 0 && len(groups) > 0 {
		group := groups[0]
		groups = groups[1:]
		pool := append(append([]card.Card{}, group.Cards...), payment.Remaining...)
		next := FromBank(payment.Owed, pool)
		payment = Payment{
			Paid:      append(payment.Paid, next.Paid...),
			Owed:      next.Owed,
			Overpaid:  next.Overpaid,
			Remaining: next.Remaining,
		}
	}
	for _, group := range groups {
		payment.Remaining = append(payment.Remaining, group.Cards...)
	}
	return payment
}

type outcome struct {
	used     []int
	owed     int
	overpaid int
}

func (o outcome) better(other outcome) bool {
	if o.owed != other.owed {
		return o.owed < other.owed
	}
	if o.overpaid != other.overpaid {
		return o.overpaid < other.overpaid
	}
	return len(o.used) < len(other.used)
}

type key struct {
	index int
	owed  int
}

type resolver struct {
	cards  []card.Card
	suffix []int
	memo   map[key]outcome
}

func newResolver(cards []card.Card) *resolver {
	suffix := make([]int, len(cards)+1)
	for i := len(cards) - 1; i >= 0; i-- {
		suffix[i] = suffix[i+1] + cards[i].Value()
	}
	return &resolver{cards: cards, suffix: suffix, memo: map[key]outcome{}}
}

// solve settles owed with cards[index:]. Returned indexes are ascending.
func (r *resolver) solve(index, owed int) outcome {
	if owed <= 0 {
		return outcome{overpaid: -owed}
	}
	if owed >= r.suffix[index] {
		used := make([]int, 0, len(r.cards)-index)
		for i := index; i < len(r.cards); i++ {
			used = append(used, i)
		}
		return outcome{used: used, owed: owed - r.suffix[index]}
	}
	k := key{index: index, owed: owed}
	if o, ok := r.memo[k]; ok {
		return o
	}
	with := r.solve(index+1, owed-r.cards[index].Value())
	with.used = append([]int{index}, with.used...)
	without := r.solve(index+1, owed)
	best := with
	if without.better(with) {
		best = without
	}
	r.memo[k] = best
	return best
}

package dex

import "sort"

// Effectiveness maps an attacking type name to the damage multiplier it
// takes against a defender. Absent keys mean neutral damage; read through
// At rather than indexing directly.
type Effectiveness map[string]float64

func (e Effectiveness) At(attacker string) float64 {
	if m, ok := e[attacker]; ok {
		return m
	}
	return 1.0
}

// Combine folds any number of relation tables into a single multiplier map.
// Double and half entries multiply the running value; a no-damage entry
// multiplies by zero, so a later table can never lift an immunity and the
// result is independent of table order.
func Combine(relations ...DamageRelations) Effectiveness {
	eff := Effectiveness{}
	for _, rel := range relations {
		for _, res := range rel.DoubleDamageFrom {
			eff[res.Name] = eff.At(res.Name) * 2
		}
		for _, res := range rel.HalfDamageFrom {
			eff[res.Name] = eff.At(res.Name) * 0.5
		}
		for _, res := range rel.NoDamageFrom {
			eff[res.Name] = 0
		}
	}
	return eff
}

// MatchupSummary partitions an effectiveness map the way the type pages
// present it: super-effective attackers, resisted attackers, immunities.
type MatchupSummary struct {
	WeakTo   []string
	Resists  []string
	ImmuneTo []string
}

func Matchups(eff Effectiveness) MatchupSummary {
	var sum MatchupSummary
	for name, mult := range eff {
		switch {
		case mult == 0:
			sum.ImmuneTo = append(sum.ImmuneTo, name)
		case mult > 1:
			sum.WeakTo = append(sum.WeakTo, name)
		case mult < 1:
			sum.Resists = append(sum.Resists, name)
		}
	}
	sort.Strings(sum.WeakTo)
	sort.Strings(sum.Resists)
	sort.Strings(sum.ImmuneTo)
	return sum
}

package dex

import (
	"fmt"
	"strings"
	"unicode"
)

// ConditionLabel renders a short card label for the first evolution detail:
// "Lv. 16", "Thunder Stone", "Trade holding Metal Coat". Stages with no
// details (base forms) get an empty label.
func ConditionLabel(details []EvolutionDetail) string {
	if len(details) == 0 {
		return ""
	}
	d := details[0]

	switch d.Trigger.Name {
	case "level-up":
		switch {
		case d.MinLevel != nil:
			return fmt.Sprintf("Lv. %d", *d.MinLevel)
		case d.MinHappiness != nil:
			return fmt.Sprintf("Happiness ≥ %d", *d.MinHappiness)
		case d.TimeOfDay != "":
			return Humanize(d.TimeOfDay)
		case d.Location != nil:
			return Humanize(d.Location.Name)
		}
	case "use-item":
		if d.Item != nil {
			return Humanize(d.Item.Name)
		}
	case "trade":
		if d.HeldItem != nil {
			return "Trade holding " + Humanize(d.HeldItem.Name)
		}
		return "Trade"
	}
	return Humanize(d.Trigger.Name)
}

// Humanize turns an API slug into display text: hyphens become spaces and
// each word is title-cased ("thunder-stone" -> "Thunder Stone").
func Humanize(slug string) string {
	words := strings.Split(slug, "-")
	for i, w := range words {
		if w == "" {
			continue
		}
		runes := []rune(w)
		runes[0] = unicode.ToUpper(runes[0])
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}

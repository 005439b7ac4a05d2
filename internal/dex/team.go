package dex

import "fmt"

// MaxTeamSize is the slot bound of an assembled team.
const MaxTeamSize = 6

// Team is an ordered roster of up to six species. Duplicates are allowed;
// only the slot bound is enforced.
type Team struct {
	Members []Species `json:"members"`
}

func (t *Team) Add(sp Species) error {
	if len(t.Members) >= MaxTeamSize {
		return fmt.Errorf("team is full: %d members", MaxTeamSize)
	}
	t.Members = append(t.Members, sp)
	return nil
}

func (t *Team) RemoveAt(index int) error {
	if index < 0 || index >= len(t.Members) {
		return fmt.Errorf("no team member at slot %d", index)
	}
	t.Members = append(t.Members[:index], t.Members[index+1:]...)
	return nil
}

func (t *Team) Clear() {
	t.Members = nil
}

func (t Team) Size() int {
	return len(t.Members)
}

// WeaknessTally counts, per attacking type, how many team members take
// super-effective damage from it. Immunities and resistances don't count
// against the tally even when another type on the same member is weak,
// because the member's combined profile decides.
func (t Team) WeaknessTally() (map[string]int, error) {
	tally := make(map[string]int)
	for _, member := range t.Members {
		profile, err := member.DefenseProfile()
		if err != nil {
			return nil, fmt.Errorf("profile for %s: %v", member.Name, err)
		}
		for _, attacker := range AllTypes() {
			if profile.At(string(attacker)) > 1 {
				tally[string(attacker)]++
			}
		}
	}
	return tally, nil
}

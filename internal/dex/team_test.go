package dex

import "testing"

func mustSpecies(t *testing.T, name string) Species {
	t.Helper()
	sp, err := SpeciesByName(name)
	if err != nil {
		t.Fatalf("lookup %s: %v", name, err)
	}
	return sp
}

func TestTeamSlotBound(t *testing.T) {
	var team Team
	for i := 0; i < MaxTeamSize; i++ {
		if err := team.Add(mustSpecies(t, "eevee")); err != nil {
			t.Fatalf("add %d: %v", i, err)
		}
	}
	if team.Size() != MaxTeamSize {
		t.Fatalf("expected full team, got %d", team.Size())
	}

	if err := team.Add(mustSpecies(t, "pikachu")); err == nil {
		t.Fatalf("expected seventh member to be rejected")
	}
	if team.Size() != MaxTeamSize {
		t.Fatalf("failed add must leave the team unchanged, got %d members", team.Size())
	}
}

func TestTeamRemoveAndClear(t *testing.T) {
	var team Team
	for _, name := range []string{"bulbasaur", "charmander", "squirtle"} {
		if err := team.Add(mustSpecies(t, name)); err != nil {
			t.Fatalf("add %s: %v", name, err)
		}
	}

	if err := team.RemoveAt(1); err != nil {
		t.Fatalf("remove slot 1: %v", err)
	}
	if team.Size() != 2 || team.Members[1].Name != "squirtle" {
		t.Fatalf("expected squirtle to shift into slot 1, got %+v", team.Members)
	}

	if err := team.RemoveAt(5); err == nil {
		t.Fatalf("expected out-of-range remove to fail")
	}
	if err := team.RemoveAt(-1); err == nil {
		t.Fatalf("expected negative remove to fail")
	}

	team.Clear()
	if team.Size() != 0 {
		t.Fatalf("expected empty team after clear, got %d", team.Size())
	}
}

func TestTeamWeaknessTally(t *testing.T) {
	var team Team
	// golem is rock/ground: immune to electric, 4x weak to grass and water.
	// gyarados is water/flying: 4x weak to electric, neutral to grass.
	for _, name := range []string{"golem", "gyarados"} {
		if err := team.Add(mustSpecies(t, name)); err != nil {
			t.Fatalf("add %s: %v", name, err)
		}
	}

	tally, err := team.WeaknessTally()
	if err != nil {
		t.Fatalf("weakness tally: %v", err)
	}

	if got := tally["electric"]; got != 1 {
		t.Fatalf("only gyarados is weak to electric, tally = %d", got)
	}
	if got := tally["grass"]; got != 1 {
		t.Fatalf("only golem is weak to grass, tally = %d", got)
	}
	if got := tally["water"]; got != 1 {
		t.Fatalf("only golem is weak to water, tally = %d", got)
	}
	if got := tally["rock"]; got != 1 {
		t.Fatalf("only gyarados is weak to rock, tally = %d", got)
	}
	if got := tally["ghost"]; got != 0 {
		t.Fatalf("nobody is weak to ghost, tally = %d", got)
	}
}

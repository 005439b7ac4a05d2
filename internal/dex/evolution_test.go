package dex

import (
	"encoding/json"
	"strconv"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func intPtr(v int) *int { return &v }

func chainNode(name string, id int, details []EvolutionDetail, children ...ChainLink) ChainLink {
	url := ""
	if id > 0 {
		url = "https://pokeapi.co/api/v2/pokemon-species/" + strconv.Itoa(id) + "/"
	}
	return ChainLink{
		Species:          NamedResource{Name: name, URL: url},
		EvolutionDetails: details,
		EvolvesTo:        children,
	}
}

func stageNames(stages []EvolutionStage) []string {
	out := make([]string, 0, len(stages))
	for _, s := range stages {
		out = append(out, s.SpeciesName)
	}
	return out
}

func TestFlattenChainPreOrderWithBranches(t *testing.T) {
	waterStone := []EvolutionDetail{{Trigger: NamedResource{Name: "use-item"}, Item: &NamedResource{Name: "water-stone"}}}
	thunderStone := []EvolutionDetail{{Trigger: NamedResource{Name: "use-item"}, Item: &NamedResource{Name: "thunder-stone"}}}
	fireStone := []EvolutionDetail{{Trigger: NamedResource{Name: "use-item"}, Item: &NamedResource{Name: "fire-stone"}}}

	root := chainNode("eevee", 133, nil,
		chainNode("vaporeon", 134, waterStone),
		chainNode("jolteon", 135, thunderStone),
		chainNode("flareon", 136, fireStone),
	)

	stages := FlattenChain(root, KantoDexLimit)
	want := []string{"eevee", "vaporeon", "jolteon", "flareon"}
	if diff := cmp.Diff(want, stageNames(stages)); diff != "" {
		t.Fatalf("pre-order mismatch (-want +got):\n%s", diff)
	}

	if len(stages[0].Details) != 0 {
		t.Fatalf("base form should carry no conditions, got %d", len(stages[0].Details))
	}
	if stages[0].Primary() != nil {
		t.Fatalf("base form primary condition should be nil")
	}
	for i, wantItem := range []string{"water-stone", "thunder-stone", "fire-stone"} {
		primary := stages[i+1].Primary()
		if primary == nil || primary.Item == nil || primary.Item.Name != wantItem {
			t.Fatalf("stage %d: expected primary item %s, got %+v", i+1, wantItem, primary)
		}
	}
}

func TestFlattenChainConditionsAreOwnNotInherited(t *testing.T) {
	root := chainNode("abra", 63,
		nil,
		chainNode("kadabra", 64,
			[]EvolutionDetail{{Trigger: NamedResource{Name: "level-up"}, MinLevel: intPtr(16)}},
			chainNode("alakazam", 65,
				[]EvolutionDetail{{Trigger: NamedResource{Name: "trade"}}},
			),
		),
	)

	stages := FlattenChain(root, KantoDexLimit)
	if len(stages) != 3 {
		t.Fatalf("expected 3 stages, got %d", len(stages))
	}
	if got := ConditionLabel(stages[1].Details); got != "Lv. 16" {
		t.Fatalf("kadabra condition: got %q", got)
	}
	if got := ConditionLabel(stages[2].Details); got != "Trade" {
		t.Fatalf("alakazam should carry only its own trade condition, got %q", got)
	}
}

func TestFlattenChainFilterDoesNotPruneDescendants(t *testing.T) {
	root := chainNode("base", 10, nil,
		chainNode("middle", 900,
			[]EvolutionDetail{{Trigger: NamedResource{Name: "level-up"}}},
			chainNode("leaf", 20,
				[]EvolutionDetail{{Trigger: NamedResource{Name: "trade"}}},
			),
		),
	)

	stages := FlattenChain(root, KantoDexLimit)
	want := []string{"base", "leaf"}
	if diff := cmp.Diff(want, stageNames(stages)); diff != "" {
		t.Fatalf("filtered traversal mismatch (-want +got):\n%s", diff)
	}
	for _, s := range stages {
		if s.SpeciesID > KantoDexLimit {
			t.Fatalf("stage %s leaked past the bound with id %d", s.SpeciesName, s.SpeciesID)
		}
	}
}

func TestFlattenChainBoundaries(t *testing.T) {
	single := chainNode("ditto", 132, nil)
	stages := FlattenChain(single, KantoDexLimit)
	if len(stages) != 1 || stages[0].SpeciesName != "ditto" {
		t.Fatalf("single-node chain should flatten to itself, got %+v", stages)
	}

	outside := chainNode("chikorita", 152, nil)
	if got := FlattenChain(outside, KantoDexLimit); len(got) != 0 {
		t.Fatalf("out-of-bound root should flatten to nothing, got %+v", got)
	}
}

func TestIDFromURLLeniency(t *testing.T) {
	tests := []struct {
		url  string
		want int
	}{
		{"https://pokeapi.co/api/v2/pokemon-species/25/", 25},
		{"https://pokeapi.co/api/v2/pokemon-species/151", 151},
		{"https://pokeapi.co/api/v2/pokemon-species/pikachu/", 0},
		{"", 0},
		{"/", 0},
		{"not a url", 0},
	}
	for _, tc := range tests {
		if got := idFromURL(tc.url); got != tc.want {
			t.Fatalf("idFromURL(%q) = %d, want %d", tc.url, got, tc.want)
		}
	}
}

func TestFlattenChainFromRawPayload(t *testing.T) {
	payload := `{
		"species": {"name": "bulbasaur", "url": "https://pokeapi.co/api/v2/pokemon-species/1/"},
		"evolution_details": [],
		"evolves_to": [{
			"species": {"name": "ivysaur", "url": "https://pokeapi.co/api/v2/pokemon-species/2/"},
			"evolution_details": [{"trigger": {"name": "level-up", "url": ""}, "min_level": 16}],
			"evolves_to": [{
				"species": {"name": "venusaur", "url": "https://pokeapi.co/api/v2/pokemon-species/3/"},
				"evolution_details": [{"trigger": {"name": "level-up", "url": ""}, "min_level": 32}],
				"evolves_to": []
			}]
		}]
	}`

	var root ChainLink
	if err := json.Unmarshal([]byte(payload), &root); err != nil {
		t.Fatalf("decode chain payload: %v", err)
	}

	stages := FlattenChain(root, KantoDexLimit)
	want := []string{"bulbasaur", "ivysaur", "venusaur"}
	if diff := cmp.Diff(want, stageNames(stages)); diff != "" {
		t.Fatalf("payload chain mismatch (-want +got):\n%s", diff)
	}
	if stages[2].SpeciesID != 3 {
		t.Fatalf("expected venusaur id 3, got %d", stages[2].SpeciesID)
	}
	if got := ConditionLabel(stages[1].Details); got != "Lv. 16" {
		t.Fatalf("ivysaur label: got %q", got)
	}
}

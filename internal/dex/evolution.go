package dex

import (
	"strconv"
	"strings"
)

// ChainLink is one node of an evolution-chain payload: the species at this
// stage, the conditions required to reach it from its parent, and the stages
// it can evolve into.
type ChainLink struct {
	Species          NamedResource     `json:"species"`
	EvolutionDetails []EvolutionDetail `json:"evolution_details"`
	EvolvesTo        []ChainLink       `json:"evolves_to"`
}

// EvolutionDetail is one way of triggering an evolution. Only the fields the
// labeller reads are mapped; unknown payload fields are ignored on decode.
type EvolutionDetail struct {
	Trigger      NamedResource  `json:"trigger"`
	MinLevel     *int           `json:"min_level"`
	MinHappiness *int           `json:"min_happiness"`
	TimeOfDay    string         `json:"time_of_day"`
	Item         *NamedResource `json:"item"`
	HeldItem     *NamedResource `json:"held_item"`
	Location     *NamedResource `json:"location"`
	KnownMove    *NamedResource `json:"known_move"`
}

// EvolutionStage is one flattened entry of a chain, in pre-order.
type EvolutionStage struct {
	SpeciesName string            `json:"species_name"`
	SpeciesURL  string            `json:"species_url"`
	SpeciesID   int               `json:"species_id"`
	Details     []EvolutionDetail `json:"details"`
}

// Primary returns the first evolution detail, or nil for a base form.
func (s EvolutionStage) Primary() *EvolutionDetail {
	if len(s.Details) == 0 {
		return nil
	}
	return &s.Details[0]
}

// FlattenChain walks the chain root-first and emits one stage per species
// whose numeric ID is within maxID. A filtered-out node is still traversed
// into, so descendants that fall back inside the bound are kept. Each stage
// carries only its own details, the conditions for reaching it from its
// parent; the root carries none.
func FlattenChain(root ChainLink, maxID int) []EvolutionStage {
	var stages []EvolutionStage
	appendStages(&stages, root, maxID)
	return stages
}

func appendStages(stages *[]EvolutionStage, link ChainLink, maxID int) {
	id := idFromURL(link.Species.URL)
	if id <= maxID {
		*stages = append(*stages, EvolutionStage{
			SpeciesName: link.Species.Name,
			SpeciesURL:  link.Species.URL,
			SpeciesID:   id,
			Details:     link.EvolutionDetails,
		})
	}
	for _, child := range link.EvolvesTo {
		appendStages(stages, child, maxID)
	}
}

// idFromURL parses the trailing non-empty path segment of a resource URL as
// an integer. Anything missing or unparseable yields 0, which always passes
// a positive bound; rendering a stage beats failing the whole chain.
func idFromURL(url string) int {
	trimmed := strings.TrimRight(url, "/")
	idx := strings.LastIndex(trimmed, "/")
	segment := trimmed[idx+1:]
	if segment == "" {
		return 0
	}
	id, err := strconv.Atoi(segment)
	if err != nil || id < 0 {
		return 0
	}
	return id
}

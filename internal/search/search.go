// Package search resolves free-text species queries against the regional
// catalog: exact and prefix hits first, then levenshtein-bounded fuzzy
// candidates with ranked alternates.
package search

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/appengine-ltd/kantodex/internal/dex"
)

type Match struct {
	Species dex.Species
	Score   float64
	Source  string // exact, prefix, lev
}

type Index struct {
	species []dex.Species
}

func NewIndex() *Index {
	return &Index{species: dex.KantoCatalog()}
}

// NewIndexFor builds an index over a caller-supplied roster, for tests and
// for callers working with a different regional subset.
func NewIndexFor(species []dex.Species) *Index {
	return &Index{species: species}
}

// Lookup returns the best match for a query plus up to four alternates.
// A zero-score best match means nothing came close.
func (ix *Index) Lookup(query string) (Match, []Match) {
	q := normalizeQuery(query)
	if q == "" {
		return Match{}, nil
	}

	var cands []Match
	for _, sp := range ix.species {
		switch {
		case sp.Name == q:
			cands = append(cands, Match{Species: sp, Score: 1.0, Source: "exact"})
			continue
		case strings.HasPrefix(sp.Name, q) && len(q) >= 3:
			cands = append(cands, Match{Species: sp, Score: 0.9, Source: "prefix"})
			continue
		}

		// Fuzzy only for queries long enough to carry signal.
		if len(q) < 3 {
			continue
		}
		dist := levenshtein.ComputeDistance(q, sp.Name)
		if dist > levenshteinLimit(len(sp.Name)) {
			continue
		}
		score := 0.72 - (0.08 * float64(dist))
		if strings.Contains(sp.Name, q) {
			score += 0.04
		}
		cands = append(cands, Match{Species: sp, Score: score, Source: "lev"})
	}

	sort.SliceStable(cands, func(i, j int) bool {
		if cands[i].Score == cands[j].Score {
			return cands[i].Species.ID < cands[j].Species.ID
		}
		return cands[i].Score > cands[j].Score
	})

	if len(cands) == 0 {
		return Match{}, nil
	}
	best := cands[0]
	alts := make([]Match, 0, 4)
	seen := map[string]bool{best.Species.Name: true}
	for _, c := range cands[1:] {
		if seen[c.Species.Name] {
			continue
		}
		seen[c.Species.Name] = true
		alts = append(alts, c)
		if len(alts) >= 4 {
			break
		}
	}
	return best, alts
}

func normalizeQuery(raw string) string {
	q := strings.ToLower(strings.TrimSpace(raw))
	q = strings.Join(strings.Fields(q), "-")
	return q
}

func levenshteinLimit(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 8:
		return 2
	default:
		return 3
	}
}

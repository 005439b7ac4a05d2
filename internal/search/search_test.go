package search

import "testing"

func TestLookupExact(t *testing.T) {
	ix := NewIndex()

	best, _ := ix.Lookup("pikachu")
	if best.Species.Name != "pikachu" || best.Source != "exact" {
		t.Fatalf("expected exact pikachu hit, got %+v", best)
	}

	// Spaced input normalizes to the hyphenated slug.
	best, _ = ix.Lookup("  Mr Mime ")
	if best.Species.Name != "mr-mime" || best.Source != "exact" {
		t.Fatalf("expected exact mr-mime hit, got %+v", best)
	}
}

func TestLookupPrefixRanksByID(t *testing.T) {
	ix := NewIndex()

	best, alts := ix.Lookup("char")
	if best.Species.Name != "charmander" || best.Source != "prefix" {
		t.Fatalf("expected charmander as best prefix hit, got %+v", best)
	}

	names := map[string]bool{}
	for _, a := range alts {
		names[a.Species.Name] = true
	}
	if !names["charmeleon"] || !names["charizard"] {
		t.Fatalf("expected the rest of the line as alternates, got %+v", alts)
	}
}

func TestLookupFuzzy(t *testing.T) {
	ix := NewIndex()

	best, _ := ix.Lookup("pikachoo")
	if best.Species.Name != "pikachu" || best.Source != "lev" {
		t.Fatalf("expected fuzzy pikachu hit, got %+v", best)
	}
	if best.Score <= 0 || best.Score >= 0.9 {
		t.Fatalf("fuzzy score should rank below prefix hits, got %v", best.Score)
	}
}

func TestLookupMisses(t *testing.T) {
	ix := NewIndex()

	if best, _ := ix.Lookup(""); best.Score != 0 {
		t.Fatalf("empty query should not match, got %+v", best)
	}
	if best, _ := ix.Lookup("zzzzzzzzzz"); best.Score != 0 {
		t.Fatalf("garbage query should not match, got %+v", best)
	}
	// Too short for prefix or fuzzy matching.
	if best, _ := ix.Lookup("pi"); best.Score != 0 {
		t.Fatalf("two-letter query should not match, got %+v", best)
	}
}

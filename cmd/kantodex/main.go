package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/appengine-ltd/kantodex/internal/dex"
	"github.com/appengine-ltd/kantodex/internal/search"
)

// version, commit, date are injected at build time (see .goreleaser.yaml).
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	var (
		showVersion bool
		speciesName string
		chainPath   string
	)

	flag.BoolVar(&showVersion, "version", false, "print version and exit")
	flag.StringVar(&speciesName, "species", "", "print types and matchups for a species")
	flag.StringVar(&chainPath, "chain", "", "print the flattened evolution line from a chain JSON file")
	flag.Parse()

	if showVersion {
		fmt.Printf("KantoDex %s (%s) %s\n", version, commit, date)
		return
	}

	switch {
	case speciesName != "":
		if err := printSpecies(speciesName); err != nil {
			fail(err)
		}
	case chainPath != "":
		if err := printChain(chainPath); err != nil {
			fail(err)
		}
	default:
		flag.Usage()
		os.Exit(2)
	}
}

func printSpecies(query string) error {
	sp, err := dex.SpeciesByName(query)
	if err != nil {
		best, alts := search.NewIndex().Lookup(query)
		if best.Score == 0 {
			return err
		}
		sp = best.Species
		if best.Source != "exact" {
			fmt.Printf("showing %s (closest match for %q)\n", sp.Display(), query)
			for _, alt := range alts {
				fmt.Printf("  also: %s\n", alt.Species.Display())
			}
		}
	}

	profile, err := sp.DefenseProfile()
	if err != nil {
		return err
	}
	sum := dex.Matchups(profile)

	fmt.Printf("#%d %s — %s\n", sp.ID, sp.Display(), typeList(sp.Types))
	if len(sum.WeakTo) > 0 {
		fmt.Printf("weak to:   %s\n", strings.Join(sum.WeakTo, ", "))
	}
	if len(sum.Resists) > 0 {
		fmt.Printf("resists:   %s\n", strings.Join(sum.Resists, ", "))
	}
	if len(sum.ImmuneTo) > 0 {
		fmt.Printf("immune to: %s\n", strings.Join(sum.ImmuneTo, ", "))
	}
	return nil
}

func printChain(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var wrapped struct {
		Chain dex.ChainLink `json:"chain"`
	}
	root := dex.ChainLink{}
	if err := json.Unmarshal(data, &wrapped); err == nil && wrapped.Chain.Species.Name != "" {
		root = wrapped.Chain
	} else if err := json.Unmarshal(data, &root); err != nil {
		return fmt.Errorf("decode chain %s: %v", path, err)
	}
	if root.Species.Name == "" {
		return fmt.Errorf("no species in chain payload %s", path)
	}

	for _, stage := range dex.FlattenChain(root, dex.KantoDexLimit) {
		label := dex.ConditionLabel(stage.Details)
		if label == "" {
			fmt.Printf("#%d %s\n", stage.SpeciesID, dex.Humanize(stage.SpeciesName))
			continue
		}
		fmt.Printf("#%d %s — %s\n", stage.SpeciesID, dex.Humanize(stage.SpeciesName), label)
	}
	return nil
}

func typeList(types []dex.TypeName) string {
	parts := make([]string, 0, len(types))
	for _, t := range types {
		parts = append(parts, dex.Humanize(string(t)))
	}
	return strings.Join(parts, "/")
}

func fail(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}

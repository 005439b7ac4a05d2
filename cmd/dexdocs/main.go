package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/appengine-ltd/kantodex/internal/dex"
)

type docFile struct {
	Name    string
	Title   string
	Content string
}

func main() {
	var (
		outDir    string
		chainsDir string
	)
	flag.StringVar(&outDir, "out", filepath.Join("docs", "reference"), "output directory for generated docs")
	flag.StringVar(&chainsDir, "chains", "", "optional directory of evolution-chain JSON payloads")
	flag.Parse()

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		fatal(err)
	}

	files := []docFile{
		generateTypeChartDoc(),
		generateSpeciesDoc(),
	}
	if chainsDir != "" {
		doc, err := generateEvolutionDoc(chainsDir)
		if err != nil {
			fatal(err)
		}
		files = append(files, doc)
	}

	for _, f := range files {
		path := filepath.Join(outDir, f.Name)
		if err := os.WriteFile(path, []byte(f.Content), 0o644); err != nil {
			fatal(err)
		}
		fmt.Printf("wrote %s\n", path)
	}

	index := generateIndex(files)
	indexPath := filepath.Join(outDir, "README.md")
	if err := os.WriteFile(indexPath, []byte(index), 0o644); err != nil {
		fatal(err)
	}
	fmt.Printf("wrote %s\n", indexPath)
}

func generateIndex(files []docFile) string {
	var b strings.Builder
	b.WriteString("# Reference Docs\n\n")
	b.WriteString("Generated from the current Go source using `go run ./cmd/dexdocs`.\n\n")
	for _, f := range files {
		b.WriteString(fmt.Sprintf("- [%s](./%s)\n", f.Title, f.Name))
	}
	return b.String()
}

func generateTypeChartDoc() docFile {
	types := dex.AllTypes()

	profiles := make(map[dex.TypeName]dex.Effectiveness, len(types))
	for _, def := range types {
		rel, err := dex.RelationsFor(def)
		if err != nil {
			fatal(err)
		}
		profiles[def] = dex.Combine(rel)
	}

	var b strings.Builder
	b.WriteString("# Type Chart\n\n")
	b.WriteString("Rows attack, columns defend. Blank cells are neutral.\n\n")

	b.WriteString("| |")
	for _, def := range types {
		b.WriteString(" " + dex.Humanize(string(def)) + " |")
	}
	b.WriteString("\n|---|")
	for range types {
		b.WriteString("---|")
	}
	b.WriteString("\n")

	for _, atk := range types {
		b.WriteString("| " + dex.Humanize(string(atk)) + " |")
		for _, def := range types {
			b.WriteString(" " + cellFor(profiles[def].At(string(atk))) + " |")
		}
		b.WriteString("\n")
	}

	return docFile{Name: "typechart.md", Title: "Type Chart", Content: b.String()}
}

func cellFor(mult float64) string {
	switch mult {
	case 0:
		return "0"
	case 0.5:
		return "½"
	case 2:
		return "2"
	default:
		return ""
	}
}

func generateSpeciesDoc() docFile {
	var b strings.Builder
	b.WriteString("# Kanto Species\n\n")
	b.WriteString("| # | Species | Types | Weak To | Immune To |\n")
	b.WriteString("|---|---|---|---|---|\n")
	for _, sp := range dex.KantoCatalog() {
		profile, err := sp.DefenseProfile()
		if err != nil {
			fatal(err)
		}
		sum := dex.Matchups(profile)
		b.WriteString(fmt.Sprintf("| %d | %s | %s | %s | %s |\n",
			sp.ID, sp.Display(), typeList(sp.Types),
			strings.Join(sum.WeakTo, ", "), strings.Join(sum.ImmuneTo, ", ")))
	}
	return docFile{Name: "species.md", Title: "Kanto Species", Content: b.String()}
}

func typeList(types []dex.TypeName) string {
	parts := make([]string, 0, len(types))
	for _, t := range types {
		parts = append(parts, dex.Humanize(string(t)))
	}
	return strings.Join(parts, "/")
}

func generateEvolutionDoc(dir string) (docFile, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return docFile{}, err
	}

	var b strings.Builder
	b.WriteString("# Evolution Lines\n\n")
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		root, err := readChain(path)
		if err != nil {
			return docFile{}, fmt.Errorf("%s: %v", path, err)
		}

		stages := dex.FlattenChain(root, dex.KantoDexLimit)
		if len(stages) == 0 {
			continue
		}
		b.WriteString("## " + dex.Humanize(stages[0].SpeciesName) + "\n\n")
		for _, stage := range stages {
			label := dex.ConditionLabel(stage.Details)
			if label == "" {
				b.WriteString(fmt.Sprintf("- %s (#%d)\n", dex.Humanize(stage.SpeciesName), stage.SpeciesID))
				continue
			}
			b.WriteString(fmt.Sprintf("- %s (#%d) — %s\n", dex.Humanize(stage.SpeciesName), stage.SpeciesID, label))
		}
		b.WriteString("\n")
	}
	return docFile{Name: "evolution.md", Title: "Evolution Lines", Content: b.String()}, nil
}

// readChain accepts either a full evolution-chain payload ({"id": N,
// "chain": {...}}) or a bare chain node.
func readChain(path string) (dex.ChainLink, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return dex.ChainLink{}, err
	}

	var wrapped struct {
		ID    int           `json:"id"`
		Chain dex.ChainLink `json:"chain"`
	}
	if err := json.Unmarshal(data, &wrapped); err == nil && wrapped.Chain.Species.Name != "" {
		return wrapped.Chain, nil
	}

	var root dex.ChainLink
	if err := json.Unmarshal(data, &root); err != nil {
		return dex.ChainLink{}, err
	}
	if root.Species.Name == "" {
		return dex.ChainLink{}, fmt.Errorf("no species in chain payload")
	}
	return root, nil
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "error:", err)
	os.Exit(1)
}

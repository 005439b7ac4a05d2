package dex

import "fmt"

// KantoDexLimit is the numeric ID bound of the original 151-species
// regional catalog. Chain payloads reference the full national numbering,
// so flattening and lookups filter against this bound.
const KantoDexLimit = 151

type Species struct {
	ID    int        `json:"id"`
	Name  string     `json:"name"`
	Types []TypeName `json:"types"`
}

// Display renders the API slug as a card title ("mr-mime" -> "Mr Mime").
func (s Species) Display() string {
	return Humanize(s.Name)
}

// DefenseProfile combines the species' one or two types into a single
// incoming-damage multiplier map.
func (s Species) DefenseProfile() (Effectiveness, error) {
	relations := make([]DamageRelations, 0, len(s.Types))
	for _, t := range s.Types {
		rel, err := RelationsFor(t)
		if err != nil {
			return nil, err
		}
		relations = append(relations, rel)
	}
	return Combine(relations...), nil
}

func SpeciesByName(name string) (Species, error) {
	for _, sp := range KantoCatalog() {
		if sp.Name == name {
			return sp, nil
		}
	}
	return Species{}, fmt.Errorf("species not found: %s", name)
}

func SpeciesByID(id int) (Species, error) {
	for _, sp := range KantoCatalog() {
		if sp.ID == id {
			return sp, nil
		}
	}
	return Species{}, fmt.Errorf("species not found: %d", id)
}

// KantoCatalog lists the 151 regional species with their current typings
// (steel and fairy retcons included, matching what the API serves today).
func KantoCatalog() []Species {
	return []Species{
		{ID: 1, Name: "bulbasaur", Types: []TypeName{TypeGrass, TypePoison}},
		{ID: 2, Name: "ivysaur", Types: []TypeName{TypeGrass, TypePoison}},
		{ID: 3, Name: "venusaur", Types: []TypeName{TypeGrass, TypePoison}},
		{ID: 4, Name: "charmander", Types: []TypeName{TypeFire}},
		{ID: 5, Name: "charmeleon", Types: []TypeName{TypeFire}},
		{ID: 6, Name: "charizard", Types: []TypeName{TypeFire, TypeFlying}},
		{ID: 7, Name: "squirtle", Types: []TypeName{TypeWater}},
		{ID: 8, Name: "wartortle", Types: []TypeName{TypeWater}},
		{ID: 9, Name: "blastoise", Types: []TypeName{TypeWater}},
		{ID: 10, Name: "caterpie", Types: []TypeName{TypeBug}},
		{ID: 11, Name: "metapod", Types: []TypeName{TypeBug}},
		{ID: 12, Name: "butterfree", Types: []TypeName{TypeBug, TypeFlying}},
		{ID: 13, Name: "weedle", Types: []TypeName{TypeBug, TypePoison}},
		{ID: 14, Name: "kakuna", Types: []TypeName{TypeBug, TypePoison}},
		{ID: 15, Name: "beedrill", Types: []TypeName{TypeBug, TypePoison}},
		{ID: 16, Name: "pidgey", Types: []TypeName{TypeNormal, TypeFlying}},
		{ID: 17, Name: "pidgeotto", Types: []TypeName{TypeNormal, TypeFlying}},
		{ID: 18, Name: "pidgeot", Types: []TypeName{TypeNormal, TypeFlying}},
		{ID: 19, Name: "rattata", Types: []TypeName{TypeNormal}},
		{ID: 20, Name: "raticate", Types: []TypeName{TypeNormal}},
		{ID: 21, Name: "spearow", Types: []TypeName{TypeNormal, TypeFlying}},
		{ID: 22, Name: "fearow", Types: []TypeName{TypeNormal, TypeFlying}},
		{ID: 23, Name: "ekans", Types: []TypeName{TypePoison}},
		{ID: 24, Name: "arbok", Types: []TypeName{TypePoison}},
		{ID: 25, Name: "pikachu", Types: []TypeName{TypeElectric}},
		{ID: 26, Name: "raichu", Types: []TypeName{TypeElectric}},
		{ID: 27, Name: "sandshrew", Types: []TypeName{TypeGround}},
		{ID: 28, Name: "sandslash", Types: []TypeName{TypeGround}},
		{ID: 29, Name: "nidoran-f", Types: []TypeName{TypePoison}},
		{ID: 30, Name: "nidorina", Types: []TypeName{TypePoison}},
		{ID: 31, Name: "nidoqueen", Types: []TypeName{TypePoison, TypeGround}},
		{ID: 32, Name: "nidoran-m", Types: []TypeName{TypePoison}},
		{ID: 33, Name: "nidorino", Types: []TypeName{TypePoison}},
		{ID: 34, Name: "nidoking", Types: []TypeName{TypePoison, TypeGround}},
		{ID: 35, Name: "clefairy", Types: []TypeName{TypeFairy}},
		{ID: 36, Name: "clefable", Types: []TypeName{TypeFairy}},
		{ID: 37, Name: "vulpix", Types: []TypeName{TypeFire}},
		{ID: 38, Name: "ninetales", Types: []TypeName{TypeFire}},
		{ID: 39, Name: "jigglypuff", Types: []TypeName{TypeNormal, TypeFairy}},
		{ID: 40, Name: "wigglytuff", Types: []TypeName{TypeNormal, TypeFairy}},
		{ID: 41, Name: "zubat", Types: []TypeName{TypePoison, TypeFlying}},
		{ID: 42, Name: "golbat", Types: []TypeName{TypePoison, TypeFlying}},
		{ID: 43, Name: "oddish", Types: []TypeName{TypeGrass, TypePoison}},
		{ID: 44, Name: "gloom", Types: []TypeName{TypeGrass, TypePoison}},
		{ID: 45, Name: "vileplume", Types: []TypeName{TypeGrass, TypePoison}},
		{ID: 46, Name: "paras", Types: []TypeName{TypeBug, TypeGrass}},
		{ID: 47, Name: "parasect", Types: []TypeName{TypeBug, TypeGrass}},
		{ID: 48, Name: "venonat", Types: []TypeName{TypeBug, TypePoison}},
		{ID: 49, Name: "venomoth", Types: []TypeName{TypeBug, TypePoison}},
		{ID: 50, Name: "diglett", Types: []TypeName{TypeGround}},
		{ID: 51, Name: "dugtrio", Types: []TypeName{TypeGround}},
		{ID: 52, Name: "meowth", Types: []TypeName{TypeNormal}},
		{ID: 53, Name: "persian", Types: []TypeName{TypeNormal}},
		{ID: 54, Name: "psyduck", Types: []TypeName{TypeWater}},
		{ID: 55, Name: "golduck", Types: []TypeName{TypeWater}},
		{ID: 56, Name: "mankey", Types: []TypeName{TypeFighting}},
		{ID: 57, Name: "primeape", Types: []TypeName{TypeFighting}},
		{ID: 58, Name: "growlithe", Types: []TypeName{TypeFire}},
		{ID: 59, Name: "arcanine", Types: []TypeName{TypeFire}},
		{ID: 60, Name: "poliwag", Types: []TypeName{TypeWater}},
		{ID: 61, Name: "poliwhirl", Types: []TypeName{TypeWater}},
		{ID: 62, Name: "poliwrath", Types: []TypeName{TypeWater, TypeFighting}},
		{ID: 63, Name: "abra", Types: []TypeName{TypePsychic}},
		{ID: 64, Name: "kadabra", Types: []TypeName{TypePsychic}},
		{ID: 65, Name: "alakazam", Types: []TypeName{TypePsychic}},
		{ID: 66, Name: "machop", Types: []TypeName{TypeFighting}},
		{ID: 67, Name: "machoke", Types: []TypeName{TypeFighting}},
		{ID: 68, Name: "machamp", Types: []TypeName{TypeFighting}},
		{ID: 69, Name: "bellsprout", Types: []TypeName{TypeGrass, TypePoison}},
		{ID: 70, Name: "weepinbell", Types: []TypeName{TypeGrass, TypePoison}},
		{ID: 71, Name: "victreebel", Types: []TypeName{TypeGrass, TypePoison}},
		{ID: 72, Name: "tentacool", Types: []TypeName{TypeWater, TypePoison}},
		{ID: 73, Name: "tentacruel", Types: []TypeName{TypeWater, TypePoison}},
		{ID: 74, Name: "geodude", Types: []TypeName{TypeRock, TypeGround}},
		{ID: 75, Name: "graveler", Types: []TypeName{TypeRock, TypeGround}},
		{ID: 76, Name: "golem", Types: []TypeName{TypeRock, TypeGround}},
		{ID: 77, Name: "ponyta", Types: []TypeName{TypeFire}},
		{ID: 78, Name: "rapidash", Types: []TypeName{TypeFire}},
		{ID: 79, Name: "slowpoke", Types: []TypeName{TypeWater, TypePsychic}},
		{ID: 80, Name: "slowbro", Types: []TypeName{TypeWater, TypePsychic}},
		{ID: 81, Name: "magnemite", Types: []TypeName{TypeElectric, TypeSteel}},
		{ID: 82, Name: "magneton", Types: []TypeName{TypeElectric, TypeSteel}},
		{ID: 83, Name: "farfetchd", Types: []TypeName{TypeNormal, TypeFlying}},
		{ID: 84, Name: "doduo", Types: []TypeName{TypeNormal, TypeFlying}},
		{ID: 85, Name: "dodrio", Types: []TypeName{TypeNormal, TypeFlying}},
		{ID: 86, Name: "seel", Types: []TypeName{TypeWater}},
		{ID: 87, Name: "dewgong", Types: []TypeName{TypeWater, TypeIce}},
		{ID: 88, Name: "grimer", Types: []TypeName{TypePoison}},
		{ID: 89, Name: "muk", Types: []TypeName{TypePoison}},
		{ID: 90, Name: "shellder", Types: []TypeName{TypeWater}},
		{ID: 91, Name: "cloyster", Types: []TypeName{TypeWater, TypeIce}},
		{ID: 92, Name: "gastly", Types: []TypeName{TypeGhost, TypePoison}},
		{ID: 93, Name: "haunter", Types: []TypeName{TypeGhost, TypePoison}},
		{ID: 94, Name: "gengar", Types: []TypeName{TypeGhost, TypePoison}},
		{ID: 95, Name: "onix", Types: []TypeName{TypeRock, TypeGround}},
		{ID: 96, Name: "drowzee", Types: []TypeName{TypePsychic}},
		{ID: 97, Name: "hypno", Types: []TypeName{TypePsychic}},
		{ID: 98, Name: "krabby", Types: []TypeName{TypeWater}},
		{ID: 99, Name: "kingler", Types: []TypeName{TypeWater}},
		{ID: 100, Name: "voltorb", Types: []TypeName{TypeElectric}},
		{ID: 101, Name: "electrode", Types: []TypeName{TypeElectric}},
		{ID: 102, Name: "exeggcute", Types: []TypeName{TypeGrass, TypePsychic}},
		{ID: 103, Name: "exeggutor", Types: []TypeName{TypeGrass, TypePsychic}},
		{ID: 104, Name: "cubone", Types: []TypeName{TypeGround}},
		{ID: 105, Name: "marowak", Types: []TypeName{TypeGround}},
		{ID: 106, Name: "hitmonlee", Types: []TypeName{TypeFighting}},
		{ID: 107, Name: "hitmonchan", Types: []TypeName{TypeFighting}},
		{ID: 108, Name: "lickitung", Types: []TypeName{TypeNormal}},
		{ID: 109, Name: "koffing", Types: []TypeName{TypePoison}},
		{ID: 110, Name: "weezing", Types: []TypeName{TypePoison}},
		{ID: 111, Name: "rhyhorn", Types: []TypeName{TypeGround, TypeRock}},
		{ID: 112, Name: "rhydon", Types: []TypeName{TypeGround, TypeRock}},
		{ID: 113, Name: "chansey", Types: []TypeName{TypeNormal}},
		{ID: 114, Name: "tangela", Types: []TypeName{TypeGrass}},
		{ID: 115, Name: "kangaskhan", Types: []TypeName{TypeNormal}},
		{ID: 116, Name: "horsea", Types: []TypeName{TypeWater}},
		{ID: 117, Name: "seadra", Types: []TypeName{TypeWater}},
		{ID: 118, Name: "goldeen", Types: []TypeName{TypeWater}},
		{ID: 119, Name: "seaking", Types: []TypeName{TypeWater}},
		{ID: 120, Name: "staryu", Types: []TypeName{TypeWater}},
		{ID: 121, Name: "starmie", Types: []TypeName{TypeWater, TypePsychic}},
		{ID: 122, Name: "mr-mime", Types: []TypeName{TypePsychic, TypeFairy}},
		{ID: 123, Name: "scyther", Types: []TypeName{TypeBug, TypeFlying}},
		{ID: 124, Name: "jynx", Types: []TypeName{TypeIce, TypePsychic}},
		{ID: 125, Name: "electabuzz", Types: []TypeName{TypeElectric}},
		{ID: 126, Name: "magmar", Types: []TypeName{TypeFire}},
		{ID: 127, Name: "pinsir", Types: []TypeName{TypeBug}},
		{ID: 128, Name: "tauros", Types: []TypeName{TypeNormal}},
		{ID: 129, Name: "magikarp", Types: []TypeName{TypeWater}},
		{ID: 130, Name: "gyarados", Types: []TypeName{TypeWater, TypeFlying}},
		{ID: 131, Name: "lapras", Types: []TypeName{TypeWater, TypeIce}},
		{ID: 132, Name: "ditto", Types: []TypeName{TypeNormal}},
		{ID: 133, Name: "eevee", Types: []TypeName{TypeNormal}},
		{ID: 134, Name: "vaporeon", Types: []TypeName{TypeWater}},
		{ID: 135, Name: "jolteon", Types: []TypeName{TypeElectric}},
		{ID: 136, Name: "flareon", Types: []TypeName{TypeFire}},
		{ID: 137, Name: "porygon", Types: []TypeName{TypeNormal}},
		{ID: 138, Name: "omanyte", Types: []TypeName{TypeRock, TypeWater}},
		{ID: 139, Name: "omastar", Types: []TypeName{TypeRock, TypeWater}},
		{ID: 140, Name: "kabuto", Types: []TypeName{TypeRock, TypeWater}},
		{ID: 141, Name: "kabutops", Types: []TypeName{TypeRock, TypeWater}},
		{ID: 142, Name: "aerodactyl", Types: []TypeName{TypeRock, TypeFlying}},
		{ID: 143, Name: "snorlax", Types: []TypeName{TypeNormal}},
		{ID: 144, Name: "articuno", Types: []TypeName{TypeIce, TypeFlying}},
		{ID: 145, Name: "zapdos", Types: []TypeName{TypeElectric, TypeFlying}},
		{ID: 146, Name: "moltres", Types: []TypeName{TypeFire, TypeFlying}},
		{ID: 147, Name: "dratini", Types: []TypeName{TypeDragon}},
		{ID: 148, Name: "dragonair", Types: []TypeName{TypeDragon}},
		{ID: 149, Name: "dragonite", Types: []TypeName{TypeDragon, TypeFlying}},
		{ID: 150, Name: "mewtwo", Types: []TypeName{TypePsychic}},
		{ID: 151, Name: "mew", Types: []TypeName{TypePsychic}},
	}
}

package dex

import "fmt"

type TypeName string

const (
	TypeNormal   TypeName = "normal"
	TypeFighting TypeName = "fighting"
	TypeFlying   TypeName = "flying"
	TypePoison   TypeName = "poison"
	TypeGround   TypeName = "ground"
	TypeRock     TypeName = "rock"
	TypeBug      TypeName = "bug"
	TypeGhost    TypeName = "ghost"
	TypeSteel    TypeName = "steel"
	TypeFire     TypeName = "fire"
	TypeWater    TypeName = "water"
	TypeGrass    TypeName = "grass"
	TypeElectric TypeName = "electric"
	TypePsychic  TypeName = "psychic"
	TypeIce      TypeName = "ice"
	TypeDragon   TypeName = "dragon"
	TypeDark     TypeName = "dark"
	TypeFairy    TypeName = "fairy"
)

// NamedResource mirrors the {name, url} reference shape used throughout
// PokéAPI payloads, so raw JSON can be unmarshalled straight into core
// inputs.
type NamedResource struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// DamageRelations is the per-type relation table as delivered by the type
// endpoint. The *_from sets describe incoming damage against a defender of
// this type; the *_to sets describe this type attacking.
type DamageRelations struct {
	DoubleDamageFrom []NamedResource `json:"double_damage_from"`
	HalfDamageFrom   []NamedResource `json:"half_damage_from"`
	NoDamageFrom     []NamedResource `json:"no_damage_from"`
	DoubleDamageTo   []NamedResource `json:"double_damage_to"`
	HalfDamageTo     []NamedResource `json:"half_damage_to"`
	NoDamageTo       []NamedResource `json:"no_damage_to"`
}

type TypeSpec struct {
	Name     TypeName
	DoubleTo []TypeName
	HalfTo   []TypeName
	NoTo     []TypeName
}

// TypeCatalog lists the 18 canonical types with their offensive relation
// sets. The defensive direction is derived by transposition in RelationsFor.
func TypeCatalog() []TypeSpec {
	return []TypeSpec{
		{
			Name:   TypeNormal,
			HalfTo: []TypeName{TypeRock, TypeSteel},
			NoTo:   []TypeName{TypeGhost},
		},
		{
			Name:     TypeFighting,
			DoubleTo: []TypeName{TypeNormal, TypeIce, TypeRock, TypeDark, TypeSteel},
			HalfTo:   []TypeName{TypePoison, TypeFlying, TypePsychic, TypeBug, TypeFairy},
			NoTo:     []TypeName{TypeGhost},
		},
		{
			Name:     TypeFlying,
			DoubleTo: []TypeName{TypeGrass, TypeFighting, TypeBug},
			HalfTo:   []TypeName{TypeElectric, TypeRock, TypeSteel},
		},
		{
			Name:     TypePoison,
			DoubleTo: []TypeName{TypeGrass, TypeFairy},
			HalfTo:   []TypeName{TypePoison, TypeGround, TypeRock, TypeGhost},
			NoTo:     []TypeName{TypeSteel},
		},
		{
			Name:     TypeGround,
			DoubleTo: []TypeName{TypeFire, TypeElectric, TypePoison, TypeRock, TypeSteel},
			HalfTo:   []TypeName{TypeGrass, TypeBug},
			NoTo:     []TypeName{TypeFlying},
		},
		{
			Name:     TypeRock,
			DoubleTo: []TypeName{TypeFire, TypeIce, TypeFlying, TypeBug},
			HalfTo:   []TypeName{TypeFighting, TypeGround, TypeSteel},
		},
		{
			Name:     TypeBug,
			DoubleTo: []TypeName{TypeGrass, TypePsychic, TypeDark},
			HalfTo:   []TypeName{TypeFire, TypeFighting, TypePoison, TypeFlying, TypeGhost, TypeSteel, TypeFairy},
		},
		{
			Name:     TypeGhost,
			DoubleTo: []TypeName{TypePsychic, TypeGhost},
			HalfTo:   []TypeName{TypeDark},
			NoTo:     []TypeName{TypeNormal},
		},
		{
			Name:     TypeSteel,
			DoubleTo: []TypeName{TypeIce, TypeRock, TypeFairy},
			HalfTo:   []TypeName{TypeFire, TypeWater, TypeElectric, TypeSteel},
		},
		{
			Name:     TypeFire,
			DoubleTo: []TypeName{TypeGrass, TypeIce, TypeBug, TypeSteel},
			HalfTo:   []TypeName{TypeFire, TypeWater, TypeRock, TypeDragon},
		},
		{
			Name:     TypeWater,
			DoubleTo: []TypeName{TypeFire, TypeGround, TypeRock},
			HalfTo:   []TypeName{TypeWater, TypeGrass, TypeDragon},
		},
		{
			Name:     TypeGrass,
			DoubleTo: []TypeName{TypeWater, TypeGround, TypeRock},
			HalfTo:   []TypeName{TypeFire, TypeGrass, TypePoison, TypeFlying, TypeBug, TypeDragon, TypeSteel},
		},
		{
			Name:     TypeElectric,
			DoubleTo: []TypeName{TypeWater, TypeFlying},
			HalfTo:   []TypeName{TypeElectric, TypeGrass, TypeDragon},
			NoTo:     []TypeName{TypeGround},
		},
		{
			Name:     TypePsychic,
			DoubleTo: []TypeName{TypeFighting, TypePoison},
			HalfTo:   []TypeName{TypePsychic, TypeSteel},
			NoTo:     []TypeName{TypeDark},
		},
		{
			Name:     TypeIce,
			DoubleTo: []TypeName{TypeGrass, TypeGround, TypeFlying, TypeDragon},
			HalfTo:   []TypeName{TypeFire, TypeWater, TypeIce, TypeSteel},
		},
		{
			Name:     TypeDragon,
			DoubleTo: []TypeName{TypeDragon},
			HalfTo:   []TypeName{TypeSteel},
			NoTo:     []TypeName{TypeFairy},
		},
		{
			Name:     TypeDark,
			DoubleTo: []TypeName{TypePsychic, TypeGhost},
			HalfTo:   []TypeName{TypeFighting, TypeDark, TypeFairy},
		},
		{
			Name:     TypeFairy,
			DoubleTo: []TypeName{TypeFighting, TypeDragon, TypeDark},
			HalfTo:   []TypeName{TypeFire, TypePoison, TypeSteel},
		},
	}
}

func AllTypes() []TypeName {
	catalog := TypeCatalog()
	out := make([]TypeName, 0, len(catalog))
	for _, spec := range catalog {
		out = append(out, spec.Name)
	}
	return out
}

// RelationsFor builds the full six-set relation table for a type: the
// offensive sets come straight from the catalog entry, the defensive sets by
// scanning every attacker's offensive sets for this type.
func RelationsFor(name TypeName) (DamageRelations, error) {
	var spec *TypeSpec
	catalog := TypeCatalog()
	for i := range catalog {
		if catalog[i].Name == name {
			spec = &catalog[i]
			break
		}
	}
	if spec == nil {
		return DamageRelations{}, fmt.Errorf("type not found: %s", name)
	}

	rel := DamageRelations{
		DoubleDamageTo: namedTypes(spec.DoubleTo),
		HalfDamageTo:   namedTypes(spec.HalfTo),
		NoDamageTo:     namedTypes(spec.NoTo),
	}
	for _, attacker := range catalog {
		if containsType(attacker.DoubleTo, name) {
			rel.DoubleDamageFrom = append(rel.DoubleDamageFrom, NamedResource{Name: string(attacker.Name)})
		}
		if containsType(attacker.HalfTo, name) {
			rel.HalfDamageFrom = append(rel.HalfDamageFrom, NamedResource{Name: string(attacker.Name)})
		}
		if containsType(attacker.NoTo, name) {
			rel.NoDamageFrom = append(rel.NoDamageFrom, NamedResource{Name: string(attacker.Name)})
		}
	}
	return rel, nil
}

func namedTypes(names []TypeName) []NamedResource {
	if len(names) == 0 {
		return nil
	}
	out := make([]NamedResource, 0, len(names))
	for _, n := range names {
		out = append(out, NamedResource{Name: string(n)})
	}
	return out
}

func containsType(names []TypeName, needle TypeName) bool {
	for _, n := range names {
		if n == needle {
			return true
		}
	}
	return false
}

package game

import (
	"fmt"
	"strings"
)

// SpeciesRegistry maps species names to their constructor functions.
var SpeciesRegistry = map[string]func() *Pokemon{
	"Charmander": Charmander,
	"Charmeleon": Charmeleon,
	"Charizard":  Charizard,
	"Squirtle":   Squirtle,
	"Wartortle":  Wartortle,
	"Blastoise":  Blastoise,
	"Bulbasaur":  Bulbasaur,
	"Ivysaur":    Ivysaur,
	"Venusaur":   Venusaur,
	"Weedle":     Weedle,
	"Kakuna":     Kakuna,
	"Beedrill":   Beedrill,
	"Dratini":    Dratini,
	"Dragonair":  Dragonair,
	"Dragonite":  Dragonite,
	"Pikachu":    Pikachu,
	"Raichu":     Raichu,
	"Machop":     Machop,
	"Machoke":    Machoke,
	"Machamp":    Machamp,
	"Spearow":    Spearow,
	"Fearow":     Fearow,
	"Gastly":     Gastly,
	"Haunter":    Haunter,
	"Gengar":     Gengar,
	"Diglett":    Diglett,
	"Dugtrio":    Dugtrio,
	"Lapras":     Lapras,
	"Eevee":      Eevee,
	"Ekans":      Ekans,
	"Arbok":      Arbok,
	"Abra":       Abra,
	"Kadabra":    Kadabra,
	"Alakazam":   Alakazam,
	"Geodude":    Geodude,
	"Graveler":   Graveler,
	"Golem":      Golem,
}

// SpeciesNames lists every species in a fixed order so that seeded random
// team selection is deterministic (map iteration order is not).
var SpeciesNames = []string{
	"Charmander", "Charmeleon", "Charizard",
	"Squirtle", "Wartortle", "Blastoise",
	"Bulbasaur", "Ivysaur", "Venusaur",
	"Weedle", "Kakuna", "Beedrill",
	"Dratini", "Dragonair", "Dragonite",
	"Pikachu", "Raichu",
	"Machop", "Machoke", "Machamp",
	"Spearow", "Fearow",
	"Gastly", "Haunter", "Gengar",
	"Diglett", "Dugtrio",
	"Lapras",
	"Eevee",
	"Ekans", "Arbok",
	"Abra", "Kadabra", "Alakazam",
	"Geodude", "Graveler", "Golem",
}

// LookupSpecies looks up a species by name and returns a new pokemon.
// Panics if the species is not found.
func LookupSpecies(name string) *Pokemon {
	ctor, ok := SpeciesRegistry[name]
	if !ok {
		panic(fmt.Sprintf("species not found in registry: %q", name))
	}
	return ctor()
}

// FindSpecies resolves a species name case-insensitively, for user-supplied
// team entries. Returns a new pokemon, or an error wrapping ErrUnknownSpecies.
func FindSpecies(name string) (*Pokemon, error) {
	if ctor, ok := SpeciesRegistry[name]; ok {
		return ctor(), nil
	}
	for known, ctor := range SpeciesRegistry {
		if strings.EqualFold(known, name) {
			return ctor(), nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownSpecies, name)
}

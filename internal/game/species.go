package game

// Species constructors. Each returns a fresh pokemon at its baseline stats
// with the remaining evolution line (current stage first). Evolved stages
// are playable species in their own right and start at a higher level.

func newSpecies(name string, t PokeType, health, power, defence, speed float64, level int, line ...string) *Pokemon {
	return &Pokemon{
		Name:          name,
		Type:          t,
		Health:        health,
		BaseHealth:    health,
		BattlePower:   power,
		Defence:       defence,
		Speed:         speed,
		Level:         level,
		EvolutionLine: line,
	}
}

// --- FIRE ---

func Charmander() *Pokemon {
	return newSpecies("Charmander", TypeFire, 55, 70, 45, 70, 1, "Charmander", "Charmeleon", "Charizard")
}

func Charmeleon() *Pokemon {
	return newSpecies("Charmeleon", TypeFire, 75, 90, 60, 80, 16, "Charmeleon", "Charizard")
}

func Charizard() *Pokemon {
	return newSpecies("Charizard", TypeFire, 100, 130, 75, 100, 36)
}

// --- WATER ---

func Squirtle() *Pokemon {
	return newSpecies("Squirtle", TypeWater, 65, 55, 65, 45, 1, "Squirtle", "Wartortle", "Blastoise")
}

func Wartortle() *Pokemon {
	return newSpecies("Wartortle", TypeWater, 80, 70, 80, 55, 16, "Wartortle", "Blastoise")
}

func Blastoise() *Pokemon {
	return newSpecies("Blastoise", TypeWater, 105, 95, 110, 70, 36)
}

// --- GRASS ---

func Bulbasaur() *Pokemon {
	return newSpecies("Bulbasaur", TypeGrass, 60, 60, 50, 50, 1, "Bulbasaur", "Ivysaur", "Venusaur")
}

func Ivysaur() *Pokemon {
	return newSpecies("Ivysaur", TypeGrass, 80, 75, 65, 60, 16, "Ivysaur", "Venusaur")
}

func Venusaur() *Pokemon {
	return newSpecies("Venusaur", TypeGrass, 105, 100, 85, 80, 32)
}

// --- BUG ---

func Weedle() *Pokemon {
	return newSpecies("Weedle", TypeBug, 45, 35, 30, 50, 1, "Weedle", "Kakuna", "Beedrill")
}

func Kakuna() *Pokemon {
	return newSpecies("Kakuna", TypeBug, 50, 25, 50, 35, 7, "Kakuna", "Beedrill")
}

func Beedrill() *Pokemon {
	return newSpecies("Beedrill", TypeBug, 65, 90, 40, 75, 10)
}

// --- DRAGON ---

func Dratini() *Pokemon {
	return newSpecies("Dratini", TypeDragon, 50, 65, 45, 50, 1, "Dratini", "Dragonair", "Dragonite")
}

func Dragonair() *Pokemon {
	return newSpecies("Dragonair", TypeDragon, 70, 85, 65, 70, 30, "Dragonair", "Dragonite")
}

func Dragonite() *Pokemon {
	return newSpecies("Dragonite", TypeDragon, 115, 135, 95, 80, 55)
}

// --- ELECTRIC ---

func Pikachu() *Pokemon {
	return newSpecies("Pikachu", TypeElectric, 50, 55, 40, 90, 1, "Pikachu", "Raichu")
}

func Raichu() *Pokemon {
	return newSpecies("Raichu", TypeElectric, 75, 90, 55, 110, 30)
}

// --- FIGHTING ---

func Machop() *Pokemon {
	return newSpecies("Machop", TypeFighting, 80, 80, 50, 35, 1, "Machop", "Machoke", "Machamp")
}

func Machoke() *Pokemon {
	return newSpecies("Machoke", TypeFighting, 100, 100, 70, 45, 28, "Machoke", "Machamp")
}

func Machamp() *Pokemon {
	return newSpecies("Machamp", TypeFighting, 110, 130, 80, 55, 40)
}

// --- FLYING ---

func Spearow() *Pokemon {
	return newSpecies("Spearow", TypeFlying, 50, 60, 30, 70, 1, "Spearow", "Fearow")
}

func Fearow() *Pokemon {
	return newSpecies("Fearow", TypeFlying, 75, 90, 65, 100, 20)
}

// --- GHOST ---

func Gastly() *Pokemon {
	return newSpecies("Gastly", TypeGhost, 40, 65, 30, 80, 1, "Gastly", "Haunter", "Gengar")
}

func Haunter() *Pokemon {
	return newSpecies("Haunter", TypeGhost, 55, 80, 45, 95, 25, "Haunter", "Gengar")
}

func Gengar() *Pokemon {
	return newSpecies("Gengar", TypeGhost, 70, 110, 60, 110, 40)
}

// --- GROUND ---

func Diglett() *Pokemon {
	return newSpecies("Diglett", TypeGround, 35, 55, 25, 95, 1, "Diglett", "Dugtrio")
}

func Dugtrio() *Pokemon {
	return newSpecies("Dugtrio", TypeGround, 50, 100, 50, 120, 26)
}

// --- ICE ---

func Lapras() *Pokemon {
	return newSpecies("Lapras", TypeIce, 130, 85, 80, 60, 1)
}

// --- NORMAL ---

func Eevee() *Pokemon {
	return newSpecies("Eevee", TypeNormal, 55, 55, 50, 55, 1)
}

// --- POISON ---

func Ekans() *Pokemon {
	return newSpecies("Ekans", TypePoison, 55, 60, 45, 55, 1, "Ekans", "Arbok")
}

func Arbok() *Pokemon {
	return newSpecies("Arbok", TypePoison, 80, 95, 70, 80, 22)
}

// --- PSYCHIC ---

func Abra() *Pokemon {
	return newSpecies("Abra", TypePsychic, 25, 20, 15, 90, 1, "Abra", "Kadabra", "Alakazam")
}

func Kadabra() *Pokemon {
	return newSpecies("Kadabra", TypePsychic, 40, 35, 30, 105, 16, "Kadabra", "Alakazam")
}

func Alakazam() *Pokemon {
	return newSpecies("Alakazam", TypePsychic, 55, 50, 45, 120, 40)
}

// --- ROCK ---

func Geodude() *Pokemon {
	return newSpecies("Geodude", TypeRock, 80, 80, 100, 20, 1, "Geodude", "Graveler", "Golem")
}

func Graveler() *Pokemon {
	return newSpecies("Graveler", TypeRock, 95, 95, 115, 35, 25, "Graveler", "Golem")
}

func Golem() *Pokemon {
	return newSpecies("Golem", TypeRock, 110, 120, 130, 45, 40)
}

package game

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// TypeChart is the 15×15 effectiveness matrix: row = attacking type,
// column = defending type, values in [0,4].
type TypeChart [TypeCount][TypeCount]float64

// defaultChart follows the classic first-generation matchups for the
// fifteen supported types.
var defaultChart = TypeChart{
	//                  FIR  WAT  GRA  BUG  DRA  ELE  FIG  FLY  GHO  GRO  ICE  NOR  POI  PSY  ROC
	TypeFire:     {0.5, 0.5, 2.0, 2.0, 0.5, 1.0, 1.0, 1.0, 1.0, 1.0, 2.0, 1.0, 1.0, 1.0, 0.5},
	TypeWater:    {2.0, 0.5, 0.5, 1.0, 0.5, 1.0, 1.0, 1.0, 1.0, 2.0, 1.0, 1.0, 1.0, 1.0, 2.0},
	TypeGrass:    {0.5, 2.0, 0.5, 0.5, 0.5, 1.0, 1.0, 0.5, 1.0, 2.0, 1.0, 1.0, 0.5, 1.0, 2.0},
	TypeBug:      {0.5, 1.0, 2.0, 1.0, 1.0, 1.0, 0.5, 0.5, 0.5, 1.0, 1.0, 1.0, 2.0, 2.0, 1.0},
	TypeDragon:   {1.0, 1.0, 1.0, 1.0, 2.0, 1.0, 1.0, 1.0, 1.0, 1.0, 1.0, 1.0, 1.0, 1.0, 1.0},
	TypeElectric: {1.0, 2.0, 0.5, 1.0, 0.5, 0.5, 1.0, 2.0, 1.0, 0.0, 1.0, 1.0, 1.0, 1.0, 1.0},
	TypeFighting: {1.0, 1.0, 1.0, 0.5, 1.0, 1.0, 1.0, 0.5, 0.0, 1.0, 2.0, 2.0, 0.5, 0.5, 2.0},
	TypeFlying:   {1.0, 1.0, 2.0, 2.0, 1.0, 0.5, 2.0, 1.0, 1.0, 1.0, 1.0, 1.0, 1.0, 1.0, 0.5},
	TypeGhost:    {1.0, 1.0, 1.0, 1.0, 1.0, 1.0, 1.0, 1.0, 2.0, 1.0, 1.0, 0.0, 1.0, 0.0, 1.0},
	TypeGround:   {2.0, 1.0, 0.5, 0.5, 1.0, 2.0, 1.0, 0.0, 1.0, 1.0, 1.0, 1.0, 2.0, 1.0, 2.0},
	TypeIce:      {1.0, 0.5, 2.0, 1.0, 2.0, 1.0, 1.0, 2.0, 1.0, 2.0, 0.5, 1.0, 1.0, 1.0, 1.0},
	TypeNormal:   {1.0, 1.0, 1.0, 1.0, 1.0, 1.0, 1.0, 1.0, 0.0, 1.0, 1.0, 1.0, 1.0, 1.0, 0.5},
	TypePoison:   {1.0, 1.0, 2.0, 2.0, 1.0, 1.0, 1.0, 1.0, 0.5, 0.5, 1.0, 1.0, 0.5, 1.0, 0.5},
	TypePsychic:  {1.0, 1.0, 1.0, 1.0, 1.0, 1.0, 2.0, 1.0, 1.0, 1.0, 1.0, 1.0, 2.0, 0.5, 1.0},
	TypeRock:     {2.0, 1.0, 1.0, 2.0, 1.0, 1.0, 0.5, 2.0, 1.0, 0.5, 2.0, 1.0, 1.0, 1.0, 1.0},
}

// DefaultTypeChart returns the built-in effectiveness matrix.
func DefaultTypeChart() *TypeChart {
	chart := defaultChart
	return &chart
}

// Effectiveness returns the multiplier for an attack of type att against a
// defender of type def.
func (tc *TypeChart) Effectiveness(att, def PokeType) float64 {
	return tc[att][def]
}

// typeChartFile is the YAML layout for a chart override file: one row per
// attacking type, each with exactly TypeCount multipliers in enum order.
type typeChartFile struct {
	Rows map[string][]float64 `yaml:"effectiveness"`
}

// LoadTypeChart reads an effectiveness matrix from a YAML file. Types
// missing from the file keep their built-in row.
func LoadTypeChart(path string) (*TypeChart, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var tf typeChartFile
	if err := yaml.Unmarshal(data, &tf); err != nil {
		return nil, fmt.Errorf("parse type chart YAML: %w", err)
	}

	chart := DefaultTypeChart()
	for name, row := range tf.Rows {
		att, ok := typeByName(name)
		if !ok {
			return nil, fmt.Errorf("type chart: unknown attacking type %q", name)
		}
		if len(row) != TypeCount {
			return nil, fmt.Errorf("type chart: row %q has %d values, want %d", name, len(row), TypeCount)
		}
		for def, mult := range row {
			if mult < 0 || mult > 4 {
				return nil, fmt.Errorf("type chart: %s vs %s multiplier %v out of range [0,4]", name, PokeType(def), mult)
			}
			chart[att][def] = mult
		}
	}
	return chart, nil
}

// typeByName resolves a type name as written in chart files.
func typeByName(name string) (PokeType, bool) {
	for t := PokeType(0); t < TypeCount; t++ {
		if t.String() == name {
			return t, true
		}
	}
	return 0, false
}

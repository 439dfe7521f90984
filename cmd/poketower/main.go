package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"

	"github.com/sgalar/poketower/internal/game"
	"github.com/sgalar/poketower/internal/log"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	cmd := os.Args[1]
	switch cmd {
	case "battle":
		runBattle(os.Args[2:])
	case "tower":
		runTower(os.Args[2:])
	default:
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println("Usage:")
	fmt.Println("  poketower battle [--mode M] [--criterion C] [--seed N] [--teams FILE] [--team1 NAME] [--team2 NAME] [--rounds N] [--chart FILE] [--special1 N] [--special2 N]")
	fmt.Println("  poketower tower  [--seed N] [--enemies N] [--teams FILE] [--team NAME] [--rounds N] [--chart FILE]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  battle  Run a single battle between two trainers")
	fmt.Println("  tower   Climb the battle tower against generated enemy trainers")
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}

// loadChart returns the built-in type chart, or one overridden from a file.
func loadChart(path string) *game.TypeChart {
	if path == "" {
		return game.DefaultTypeChart()
	}
	chart, err := game.LoadTypeChart(path)
	if err != nil {
		fatal(err)
	}
	return chart
}

// makeTrainer builds a trainer either from a named team in the teams file
// or with a random team when no name is given.
func makeTrainer(teamsFile, teamName, fallback string, rng *rand.Rand) *game.Trainer {
	if teamName == "" {
		tr := game.NewTrainer(fallback)
		tr.PickRandomTeam(rng)
		return tr
	}
	tf, err := game.ParseTeamsFile(teamsFile)
	if err != nil {
		fatal(err)
	}
	spec, ok := tf.TeamByName(teamName)
	if !ok {
		fatal(fmt.Errorf("team %q not found in %s", teamName, teamsFile))
	}
	tr, err := spec.Build()
	if err != nil {
		fatal(err)
	}
	return tr
}

func runBattle(args []string) {
	fs := flag.NewFlagSet("battle", flag.ExitOnError)
	mode := fs.String("mode", "rotation", "battle mode: kingofhill, rotation or ranked")
	criterion := fs.String("criterion", "health", "ranked sort attribute: health, defence, power, speed or level")
	seed := fs.Int64("seed", 0, "random seed for team generation")
	teamsFile := fs.String("teams", "teams.yaml", "path to teams file")
	team1 := fs.String("team1", "", "trainer name from the teams file (random team if empty)")
	team2 := fs.String("team2", "", "trainer name from the teams file (random team if empty)")
	rounds := fs.Int("rounds", 0, "round cap before declaring a draw (0 for default)")
	chartFile := fs.String("chart", "", "path to a type chart override file")
	special1 := fs.Int("special1", 0, "times trainer 1 calls the mode's special before the battle")
	special2 := fs.Int("special2", 0, "times trainer 2 calls the mode's special before the battle")
	fs.Parse(args)

	m, err := game.ParseBattleMode(*mode)
	if err != nil {
		fatal(err)
	}
	c, err := game.ParseCriterion(*criterion)
	if err != nil {
		fatal(err)
	}

	rng := rand.New(rand.NewSource(*seed))
	t1 := makeTrainer(*teamsFile, *team1, "Red", rng)
	t2 := makeTrainer(*teamsFile, *team2, "Blue", rng)

	logger := log.NewTextLogger(os.Stdout)
	applySpecials := func(side int, tr *game.Trainer, n int) {
		if n == 0 {
			return
		}
		if err := tr.Team.Assemble(m, c); err != nil {
			fatal(err)
		}
		for i := 0; i < n; i++ {
			if err := tr.Team.Special(); err != nil {
				fatal(err)
			}
			logger.Log(log.NewSpecialEvent(side, tr.Name, m.String()))
		}
	}
	applySpecials(0, t1, *special1)
	applySpecials(1, t2, *special2)

	battle := game.NewBattle(t1, t2, game.BattleConfig{
		Mode:      m,
		Criterion: c,
		Chart:     loadChart(*chartFile),
		Logger:    logger,
		MaxRounds: *rounds,
	})
	winner, err := battle.Commence()
	if err != nil {
		fatal(err)
	}

	fmt.Println()
	if winner == nil {
		fmt.Println("Result: draw")
	} else {
		fmt.Printf("Result: %s wins after %d rounds\n", winner.Name, battle.Rounds())
	}
	fmt.Println(t1)
	fmt.Println(t2)
}

func runTower(args []string) {
	fs := flag.NewFlagSet("tower", flag.ExitOnError)
	seed := fs.Int64("seed", 0, "random seed for enemy generation and lives rolls")
	enemies := fs.Int("enemies", 5, "number of enemy trainers in the tower")
	teamsFile := fs.String("teams", "teams.yaml", "path to teams file")
	team := fs.String("team", "", "player trainer name from the teams file (random team if empty)")
	rounds := fs.Int("rounds", 0, "round cap per battle before declaring a draw (0 for default)")
	chartFile := fs.String("chart", "", "path to a type chart override file")
	fs.Parse(args)

	tower := game.NewBattleTower(game.TowerConfig{
		Seed:      *seed,
		Logger:    log.NewTextLogger(os.Stdout),
		Chart:     loadChart(*chartFile),
		MaxRounds: *rounds,
	})

	rng := rand.New(rand.NewSource(*seed))
	player := makeTrainer(*teamsFile, *team, "Red", rng)
	tower.SetPlayer(player)
	tower.GenerateEnemies(*enemies)

	for tower.BattlesRemaining() {
		report, err := tower.NextBattle()
		if err != nil {
			fatal(err)
		}
		fmt.Printf("[%s] battle %d vs %s: lives %d-%d\n",
			report.ID, report.Number, report.Enemy, report.PlayerLives, report.EnemyLives)
	}

	fmt.Println()
	if tower.PlayerLives() > 0 {
		fmt.Printf("%s conquered the tower! (%d trainers defeated)\n", player.Name, tower.EnemiesDefeated())
	} else {
		fmt.Printf("%s was knocked out of the tower after defeating %d trainers\n", player.Name, tower.EnemiesDefeated())
	}
	fmt.Println(player)
}

package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/peterkuimelis/datadeck/internal/config"
	"github.com/peterkuimelis/datadeck/internal/game"
	"github.com/peterkuimelis/datadeck/internal/log"
	"github.com/peterkuimelis/datadeck/internal/random"
)

var printer = message.NewPrinter(language.English)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	cmd := os.Args[1]
	switch cmd {
	case "demo":
		runDemo(os.Args[2:])
	case "simulate":
		runSimulate(os.Args[2:])
	case "deck":
		runDeck(os.Args[2:])
	case "catalog":
		runCatalog(os.Args[2:])
	default:
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println("Usage:")
	fmt.Println("  datadeck demo [--seed S]")
	fmt.Println("  datadeck simulate [--config FILE] [--turns N] [--factory F] [--strategy S] [--seed S] [--deck-size N]")
	fmt.Println("  datadeck deck [--config FILE] [--decks FILE] [--deck N] [--mana M] [--seed S]")
	fmt.Println("  datadeck catalog [--rarity R] [--max-cost C]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  demo      Walk through cards, decks, elite abilities and the engine")
	fmt.Println("  simulate  Run engine turns with a factory and strategy")
	fmt.Println("  deck      Shuffle a deck from the decks file and play it out")
	fmt.Println("  catalog   List the predefined cards")
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}

// loadConfig reads the config file and applies any flags the user set.
func loadConfig(fs *flag.FlagSet, path string, apply func(cfg *config.Config, name string)) *config.Config {
	cfg, err := config.LoadConfig(path)
	if err != nil {
		fatal(err)
	}
	fs.Visit(func(f *flag.Flag) { apply(cfg, f.Name) })
	if err := cfg.Validate(); err != nil {
		fatal(err)
	}
	return cfg
}

func runSimulate(args []string) {
	fs := flag.NewFlagSet("simulate", flag.ExitOnError)
	configPath := fs.String("config", "", "path to datadeck.yaml")
	turns := fs.Int("turns", 1, "number of turns to simulate")
	factoryName := fs.String("factory", "fantasy", "card factory (fantasy, catalog)")
	strategyName := fs.String("strategy", "aggressive", "play strategy")
	seed := fs.Uint64("seed", 0, "RNG seed (0 picks one)")
	deckSize := fs.Int("deck-size", 10, "size of the themed deck to build afterwards (0 skips it)")
	fs.Parse(args)

	cfg := loadConfig(fs, *configPath, func(cfg *config.Config, name string) {
		switch name {
		case "deck-size":
			cfg.Simulation.DeckSize = *deckSize
		case "turns":
			cfg.Engine.Turns = *turns
		case "factory":
			cfg.Engine.Factory = *factoryName
		case "strategy":
			cfg.Engine.Strategy = *strategyName
		case "seed":
			cfg.Simulation.Seed = *seed
		}
	})

	rng, used, err := random.New(cfg.Simulation.Seed)
	if err != nil {
		fatal(err)
	}
	factory, err := game.NewFactory(cfg.Engine.Factory, rng)
	if err != nil {
		fatal(err)
	}
	strategy, err := game.NewStrategy(cfg.Engine.Strategy)
	if err != nil {
		fatal(err)
	}

	printer.Printf("Seed: %d\n", used)
	engine := game.NewGameEngine(game.EngineConfig{Logger: log.NewTextLogger(os.Stdout)})
	engine.Configure(factory, strategy)
	engine.SimulateTurns(cfg.Engine.Turns)

	st := engine.Status()
	fmt.Println()
	fmt.Println("Game Report:")
	printer.Printf("  Turns simulated: %d\n", st.TurnsSimulated)
	printer.Printf("  Strategy used:   %s\n", st.StrategyUsed)
	printer.Printf("  Total damage:    %d\n", st.TotalDamage)
	printer.Printf("  Cards created:   %d\n", st.CardsCreated)

	if cfg.Simulation.DeckSize > 0 {
		td := factory.CreateThemedDeck(cfg.Simulation.DeckSize)
		fmt.Println()
		printer.Printf("Themed deck (%s):\n", td.Theme)
		printStats(td.Deck.Stats())
	}
}

func runDeck(args []string) {
	fs := flag.NewFlagSet("deck", flag.ExitOnError)
	configPath := fs.String("config", "", "path to datadeck.yaml")
	decksFile := fs.String("decks", "decks.yaml", "path to decks file")
	deckNum := fs.Int("deck", 1, "deck number to use (from decks.yaml)")
	mana := fs.Int("mana", 10, "starting mana")
	seed := fs.Uint64("seed", 0, "RNG seed (0 picks one)")
	fs.Parse(args)

	cfg := loadConfig(fs, *configPath, func(cfg *config.Config, name string) {
		switch name {
		case "decks":
			cfg.Decks.File = *decksFile
		case "deck":
			cfg.Decks.Number = *deckNum
		case "mana":
			cfg.Simulation.StartingMana = *mana
		case "seed":
			cfg.Simulation.Seed = *seed
		}
	})

	name, cards, err := game.DeckByNumber(cfg.Decks.File, cfg.Decks.Number)
	if err != nil {
		fatal(err)
	}
	rng, used, err := random.New(cfg.Simulation.Seed)
	if err != nil {
		fatal(err)
	}

	logger := log.NewTextLogger(os.Stdout)
	printer.Printf("Seed: %d\n", used)
	deck := game.NewDeck(rng, cards...)
	logger.Log(log.NewDeckBuiltEvent(name, deck.Len()))
	printStats(deck.Stats())
	deck.Shuffle()
	logger.Log(log.NewShuffleEvent(deck.Len()))

	gc := game.NewGameContext(cfg.Simulation.StartingMana)
	game.PlayFromDeck(deck, gc, 0, logger)

	fmt.Println()
	printer.Printf("Mana left: %d, battlefield: %v, permanents: %v, spells cast: %d\n",
		gc.AvailableMana, gc.Battlefield, gc.Permanents, gc.SpellsCast)
}

func runCatalog(args []string) {
	fs := flag.NewFlagSet("catalog", flag.ExitOnError)
	rarity := fs.String("rarity", "", "only list cards of this rarity")
	maxCost := fs.Int("max-cost", -1, "only list cards costing at most this much")
	fs.Parse(args)

	cards := game.CatalogCards()
	if *rarity != "" {
		r := game.ParseRarity(*rarity)
		if r == game.RarityUnknown {
			fatal(fmt.Errorf("unknown rarity %q", *rarity))
		}
		cards = game.CardsByRarity(r)
	}

	n := 0
	for _, c := range cards {
		if *maxCost >= 0 && c.Cost() > *maxCost {
			continue
		}
		printer.Printf("%-20s %-9s %-10s cost %d\n", c.Name(), c.Type(), c.Rarity(), c.Cost())
		n++
	}
	printer.Printf("\n%d cards\n", n)
}

func printStats(st game.DeckStats) {
	printer.Printf("Deck stats: %d cards (%d creatures, %d spells, %d artifacts), average cost %.2f\n",
		st.TotalCards, st.Creatures, st.Spells, st.Artifacts, st.AvgCost)
}

// printJSON writes v on one line, as the demo scenarios report results.
func printJSON(label string, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		fatal(err)
	}
	fmt.Printf("%s: %s\n", label, data)
}

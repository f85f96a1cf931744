package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/peterkuimelis/datadeck/internal/game"
	"github.com/peterkuimelis/datadeck/internal/log"
	"github.com/peterkuimelis/datadeck/internal/random"
)

func runDemo(args []string) {
	fs := flag.NewFlagSet("demo", flag.ExitOnError)
	seed := fs.Uint64("seed", 0, "RNG seed (0 picks one)")
	fs.Parse(args)

	demoFoundation()
	fmt.Println()
	demoDeckBuilder()
	fmt.Println()
	demoElite()
	fmt.Println()
	demoEngine(*seed)
}

func must[T any](v T, err error) T {
	if err != nil {
		fatal(err)
	}
	return v
}

func demoFoundation() {
	fmt.Println("=== Card Foundation ===")
	dragon := must(game.NewCreatureCard("Fire Dragon", 5, game.RarityLegendary, 7, 5))
	printJSON("CreatureCard info", dragon.Info())

	fmt.Println("Playing Fire Dragon with 6 mana available:")
	printJSON("Play result", dragon.Play(game.NewGameContext(6)))

	goblin := must(game.NewCreatureCard("Goblin Warrior", 2, game.RarityCommon, 2, 3))
	fmt.Println("Fire Dragon attacks Goblin Warrior:")
	printJSON("Attack result", dragon.Attack(goblin))

	fmt.Printf("Playable with 3 mana: %t\n", dragon.IsPlayable(3))
}

func demoDeckBuilder() {
	fmt.Println("=== Deck Builder ===")
	deck := game.NewDeck(nil,
		must(game.NewCreatureCard("Fire Dragon", 5, game.RarityRare, 4, 6)),
		must(game.NewSpellCard("Lightning Bolt", 3, game.RarityCommon, "damage")),
		must(game.NewArtifactCard("Mana Crystal", 2, game.RarityUncommon, 5, "+1 mana per turn")),
	)
	printStats(deck.Stats())

	fmt.Println("Drawing and playing cards:")
	game.PlayFromDeck(deck, game.NewGameContext(10), 0, log.NewTextLogger(os.Stdout))
}

func demoElite() {
	fmt.Println("=== Ability System ===")
	elite := must(game.NewEliteCard("Arcane Warrior", 5, game.RarityLegendary))

	fmt.Println("Combat phase:")
	printJSON("Attack result", elite.Attack("Enemy"))
	printJSON("Defense result", elite.Defend(5))

	fmt.Println("Magic phase:")
	printJSON("Spell cast", elite.CastSpell("Fireball", []string{"Enemy1", "Enemy2"}))
	printJSON("Mana channel", elite.ChannelMana(3))
	printJSON("Magic stats", elite.MagicStats())
}

func demoEngine(seed uint64) {
	fmt.Println("=== Game Engine ===")
	rng, _, err := random.New(seed)
	if err != nil {
		fatal(err)
	}
	engine := game.NewGameEngine(game.EngineConfig{Logger: log.NewTextLogger(os.Stdout)})
	engine.Configure(game.NewFantasyCardFactory(rng), game.NewAggressiveStrategy())
	engine.SimulateTurn()
	printJSON("Game report", engine.Status())
}

package main

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/cardboard-games/boggler/config"
	"github.com/cardboard-games/boggler/gameio"
	"github.com/cardboard-games/boggler/solver"
	"github.com/cardboard-games/boggler/trie"
)

func main() {
	cfg := &config.Config{}
	if err := cfg.Load(os.Args[1:]); err != nil {
		log.Fatal().Err(err).Msg("bad arguments")
	}

	output := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	output.FormatLevel = func(i interface{}) string {
		return strings.ToUpper(fmt.Sprintf("| %-6s|", i))
	}
	level := zerolog.InfoLevel
	if cfg.Debug {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)
	log.Logger = zerolog.New(output).Level(level).With().Timestamp().Logger()

	var in io.Reader = os.Stdin
	if cfg.InputFile != "" {
		f, err := os.Open(cfg.InputFile)
		if err != nil {
			log.Fatal().Err(err).Msg("opening input file")
		}
		defer f.Close()
		in = f
	}

	game, err := gameio.Parse(in)
	if err != nil {
		log.Fatal().Err(err).Msg("reading game")
	}

	start := time.Now()
	words := solver.New(game.Board, trie.New(game.Dictionary)).Solve()
	elapsed := time.Since(start)

	longest := lo.MaxBy(words, func(a, b string) bool {
		return len(a) > len(b)
	})
	log.Info().
		Int("words", len(words)).
		Str("longest", longest).
		Dur("elapsed", elapsed).
		Msg("search done")

	if cfg.Sort {
		sort.Strings(words)
	}
	if err := gameio.WriteWords(os.Stdout, words); err != nil {
		log.Fatal().Err(err).Msg("writing words")
	}
}

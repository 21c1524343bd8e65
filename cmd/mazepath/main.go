// Command mazepath reads a maze and prints the cheapest turn-penalised score
// from S to E and the number of cells lying on any cheapest route.
//
// Usage:
//
//	mazepath [-input maze.txt] [-env .env] [-part 0|1|2] [-render] [-v]
//
// The turn penalty, expansion cap, start heading and log level come from the
// MAZEPATH_* environment variables (see package config).
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/mazepath/config"
	"github.com/katalvlaran/mazepath/gridmap"
	"github.com/katalvlaran/mazepath/turnsearch"
)

var log = logrus.New()

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout); err != nil {
		log.WithError(err).Fatal("mazepath failed")
	}
}

// run parses args, solves the maze read from -input (or stdin) and writes
// the answers to out.
func run(args []string, stdin io.Reader, out io.Writer) error {
	fs := flag.NewFlagSet("mazepath", flag.ContinueOnError)
	input := fs.String("input", "-", "maze file; - reads stdin")
	envFile := fs.String("env", "", "optional .env file; defaults to ./.env")
	part := fs.Int("part", 0, "1 prints the cheapest score, 2 the optimal cell count, 0 both")
	render := fs.Bool("render", false, "draw the maze with optimal cells marked 'O'")
	verbose := fs.Bool("v", false, "debug logging, including every expanded state")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *part < 0 || *part > 2 {
		return fmt.Errorf("-part must be 0, 1 or 2, got %d", *part)
	}

	var files []string
	if *envFile != "" {
		files = append(files, *envFile)
	}
	cfg, err := config.Load(files...)
	if err != nil {
		return err
	}
	log.SetLevel(cfg.LogLevel)
	if *verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	text, err := readInput(*input, stdin)
	if err != nil {
		return err
	}
	g, err := gridmap.Parse(text)
	if err != nil {
		return fmt.Errorf("parsing %s: %w", *input, err)
	}
	log.WithFields(logrus.Fields{
		"width":   g.Width(),
		"height":  g.Height(),
		"penalty": cfg.TurnPenalty,
		"heading": cfg.StartHeading,
	}).Info("maze loaded")

	opts := cfg.SearchOptions()
	if log.IsLevelEnabled(logrus.DebugLevel) {
		opts = append(opts, turnsearch.WithOnExpand(func(s turnsearch.State, cost int64) {
			log.WithFields(logrus.Fields{
				"x":     s.Pos.X,
				"y":     s.Pos.Y,
				"dir":   string(s.Facing.Glyph()),
				"score": cost,
			}).Debug("expand")
		}))
	}

	if *part != 2 {
		cost, err := turnsearch.MinCost(g, opts...)
		if err != nil {
			return err
		}
		log.WithField("score", cost).Info("cheapest route found")
		fmt.Fprintln(out, cost)
	}
	if *part != 1 || *render {
		cells, err := turnsearch.OptimalCells(g, opts...)
		if err != nil {
			return err
		}
		log.WithField("cells", cells.Size()).Info("optimal cells collected")
		if *part != 1 {
			fmt.Fprintln(out, cells.Size())
		}
		if *render {
			fmt.Fprint(out, g.Render(cells, 'O'))
		}
	}
	return nil
}

func readInput(path string, stdin io.Reader) (string, error) {
	if path == "-" {
		b, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(b), nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading maze: %w", err)
	}
	return string(b), nil
}

package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/iamasit07/connect-four/backend/internal/config"
	"github.com/iamasit07/connect-four/backend/internal/domain"
	"github.com/iamasit07/connect-four/backend/internal/render"
	"github.com/rs/zerolog/log"
)

func main() {
	config.LoadEnvFile()
	cfg := config.LoadConfig()
	config.SetupLogging(cfg.LogLevel)

	engine, err := domain.NewEngine(cfg.BoardColumns, cfg.BoardRows, cfg.Player1Color, cfg.Player2Color)
	if err != nil {
		log.Fatal().Err(err).Int("columns", cfg.BoardColumns).Int("rows", cfg.BoardRows).Msg("cannot start game")
	}

	if err := play(engine, os.Stdin, os.Stdout); err != nil {
		log.Fatal().Err(err).Msg("terminal session failed")
	}
}

// play runs a hot-seat game until q or end of input.
func play(engine *domain.Engine, in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)
	columns, _ := engine.Dimensions()

	if err := draw(engine, out); err != nil {
		return err
	}

	for {
		fmt.Fprintf(out, "column 1-%d, r to reset, q to quit> ", columns)
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return scanner.Err()
		}

		input := strings.ToLower(strings.TrimSpace(scanner.Text()))
		switch input {
		case "":
			continue
		case "q", "quit":
			return nil
		case "r", "reset":
			engine.Reset(engine.Color(domain.Player1), engine.Color(domain.Player2))
			if err := draw(engine, out); err != nil {
				return err
			}
			continue
		}

		n, err := strconv.Atoi(input)
		if err != nil {
			fmt.Fprintf(out, "%q is not a column\n", input)
			continue
		}

		result := engine.DropPiece(n - 1)
		switch result.Outcome {
		case domain.OutcomeInvalidColumn:
			fmt.Fprintf(out, "column must be between 1 and %d\n", columns)
		case domain.OutcomeColumnFull:
			fmt.Fprintf(out, "column %d is full\n", n)
		case domain.OutcomeGameOver:
			fmt.Fprintln(out, "game over, press r to play again")
		default:
			if err := draw(engine, out); err != nil {
				return err
			}
		}
	}
}

func draw(engine *domain.Engine, out io.Writer) error {
	state := engine.Snapshot()
	if err := render.Board(out, state); err != nil {
		return err
	}
	_, err := fmt.Fprintln(out, render.Status(state))
	return err
}

// Package console implements the interactive human-vs-engine game loop.
package console

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/sv-pro/chess/internal/board"
	"github.com/sv-pro/chess/internal/engine"
	"github.com/sv-pro/chess/internal/storage"
)

// Config configures a console session.
type Config struct {
	Depth    int              // engine search depth
	StartFEN string           // initial position, defaults to board.StartFEN
	Store    *storage.Storage // optional persistence, may be nil
	In       io.Reader
	Out      io.Writer
}

// Console runs an interactive game between the user and the engine.
type Console struct {
	pos       *board.Position
	userColor board.Color
	history   []string
	seen      map[string]int
	depth     int
	store     *storage.Storage
	in        *bufio.Scanner
	out       io.Writer
}

// New creates a console session. If the store holds a saved game it is
// resumed; otherwise the session starts from cfg.StartFEN.
func New(cfg Config) (*Console, error) {
	startFEN := cfg.StartFEN
	if startFEN == "" {
		startFEN = board.StartFEN
	}

	pos, err := board.ParseFEN(startFEN)
	if err != nil {
		return nil, err
	}

	c := &Console{
		pos:       pos,
		userColor: board.White,
		seen:      map[string]int{},
		depth:     cfg.Depth,
		store:     cfg.Store,
		in:        bufio.NewScanner(cfg.In),
		out:       cfg.Out,
	}
	c.seen[pos.ToFEN()]++

	if c.store != nil {
		if err := c.resume(); err != nil {
			fmt.Fprintf(c.out, "Could not resume saved game: %v\n", err)
		}
	}

	return c, nil
}

// resume restores a saved game from the store, if there is one.
func (c *Console) resume() error {
	game, err := c.store.LoadGame()
	if err != nil || game == nil {
		return err
	}

	pos, err := board.ParseFEN(game.FEN)
	if err != nil {
		return err
	}

	c.pos = pos
	c.history = game.Moves
	c.userColor = board.White
	if game.UserColor == board.Black.String() {
		c.userColor = board.Black
	}
	c.seen = map[string]int{pos.ToFEN(): 1}

	fmt.Fprintln(c.out, "Resumed saved game.")
	return nil
}

// Run plays the game until it ends or the user quits.
func (c *Console) Run() error {
	fmt.Fprintln(c.out, "Welcome to Console Chess!")
	fmt.Fprintf(c.out, "You play as %s. Enter moves as 'e2e4'.\n", c.userColor)

	for {
		fmt.Fprint(c.out, c.pos.String())

		if over := c.checkGameOver(); over {
			return nil
		}

		if c.pos.SideToMove == c.userColor {
			quit, err := c.userTurn()
			if err != nil {
				return err
			}
			if quit {
				return nil
			}
		} else {
			if done := c.botTurn(); done {
				return nil
			}
		}
	}
}

// checkGameOver reports and records the result when the side to move
// has no legal moves.
func (c *Console) checkGameOver() bool {
	if c.pos.HasLegalMoves() {
		return false
	}

	if c.pos.InCheck(c.pos.SideToMove) {
		winner := c.pos.SideToMove.Other()
		fmt.Fprintf(c.out, "Checkmate! %s wins.\n", winner)
		c.recordResult(storage.GameResult{Won: winner == c.userColor})
	} else {
		fmt.Fprintln(c.out, "Stalemate. Draw.")
		c.recordResult(storage.GameResult{Draw: true})
	}

	if c.store != nil {
		if err := c.store.ClearGame(); err != nil {
			fmt.Fprintf(c.out, "Could not clear saved game: %v\n", err)
		}
	}
	return true
}

// userTurn reads and executes one user input line. Returns quit=true
// when the user ends the session.
func (c *Console) userTurn() (quit bool, err error) {
	fmt.Fprint(c.out, "Enter move (or /help): ")
	if !c.in.Scan() {
		return true, c.in.Err()
	}

	input := strings.TrimSpace(c.in.Text())
	switch {
	case input == "":
		return false, nil
	case input == "quit" || input == "/quit":
		return true, nil
	case input[0] == '/':
		c.handleCommand(input)
		return false, nil
	}

	m, err := board.ParseMove(input)
	if err != nil {
		fmt.Fprintln(c.out, "Invalid move format. Use 'e2e4'.")
		return false, nil
	}

	if !containsMove(c.pos.GenerateLegalMoves(), m) {
		fmt.Fprintln(c.out, "Illegal move! Try again.")
		return false, nil
	}

	c.applyMove(m)
	return false, nil
}

// handleCommand dispatches a slash command.
func (c *Console) handleCommand(input string) {
	switch input {
	case "/help":
		fmt.Fprintln(c.out, "Commands:")
		fmt.Fprintln(c.out, "  /save    - Print current FEN")
		fmt.Fprintln(c.out, "  /history - Show move history")
		fmt.Fprintln(c.out, "  /stats   - Show game statistics")
		fmt.Fprintln(c.out, "  /new     - Start new game")
		fmt.Fprintln(c.out, "  /swap    - Swap sides")
		fmt.Fprintln(c.out, "  /quit    - Exit")
	case "/save":
		fmt.Fprintf(c.out, "Game FEN: %s\n", c.pos.ToFEN())
	case "/history":
		fmt.Fprintln(c.out, "Move History:")
		for i, moveStr := range c.history {
			fmt.Fprintf(c.out, "%d. %s\n", i+1, moveStr)
		}
	case "/stats":
		c.showStats()
	case "/new":
		c.pos = board.NewPosition()
		c.userColor = board.White
		c.history = nil
		c.seen = map[string]int{c.pos.ToFEN(): 1}
		if c.store != nil {
			if err := c.store.ClearGame(); err != nil {
				fmt.Fprintf(c.out, "Could not clear saved game: %v\n", err)
			}
		}
		fmt.Fprintln(c.out, "New game started.")
	case "/swap":
		c.userColor = c.userColor.Other()
		fmt.Fprintf(c.out, "Swapped sides. You are now %s.\n", c.userColor)
	default:
		fmt.Fprintln(c.out, "Unknown command. Type /help for list.")
	}
}

// showStats prints the aggregate statistics from the store.
func (c *Console) showStats() {
	if c.store == nil {
		fmt.Fprintln(c.out, "Statistics unavailable (persistence disabled).")
		return
	}
	stats, err := c.store.LoadStats()
	if err != nil {
		fmt.Fprintf(c.out, "Could not load statistics: %v\n", err)
		return
	}
	fmt.Fprintf(c.out, "Games: %d  W: %d  L: %d  D: %d  Win rate: %.1f%%\n",
		stats.GamesPlayed, stats.Wins, stats.Losses, stats.Draws, stats.GetWinRate())
}

// botTurn computes and plays the engine's move. Returns done=true when
// the engine has no move, which ends the game loop.
func (c *Console) botTurn() bool {
	fmt.Fprintln(c.out, "Bot is thinking...")

	m, ok := engine.BestMove(c.pos, c.depth, nil)
	if !ok {
		fmt.Fprintln(c.out, "Bot has no moves. Game Over.")
		return true
	}

	// Repetition avoidance: if the chosen move recreates an earlier
	// board state, ask for an alternative with that move excluded at
	// the root. If there is no alternative, play it anyway.
	if c.repeats(m) {
		if alt, ok := engine.BestMove(c.pos, c.depth, []board.Move{m}); ok && !c.repeats(alt) {
			m = alt
		}
	}

	fmt.Fprintf(c.out, "Bot plays: %s\n", m)
	c.applyMove(m)
	return false
}

// repeats reports whether playing m recreates a position already seen
// in this game.
func (c *Console) repeats(m board.Move) bool {
	child := c.pos.Copy()
	child.MakeMove(m)
	return c.seen[child.ToFEN()] > 0
}

// applyMove plays a move, records it and persists the game.
func (c *Console) applyMove(m board.Move) {
	c.pos.MakeMove(m)
	c.history = append(c.history, m.String())
	c.seen[c.pos.ToFEN()]++

	if c.store != nil {
		err := c.store.SaveGame(&storage.SavedGame{
			FEN:       c.pos.ToFEN(),
			UserColor: c.userColor.String(),
			Moves:     c.history,
		})
		if err != nil {
			fmt.Fprintf(c.out, "Could not save game: %v\n", err)
		}
	}
}

// recordResult updates persistent statistics at game end.
func (c *Console) recordResult(result storage.GameResult) {
	if c.store == nil {
		return
	}
	if err := c.store.RecordGame(result); err != nil {
		fmt.Fprintf(c.out, "Could not record result: %v\n", err)
	}
}

func containsMove(moves []board.Move, m board.Move) bool {
	for _, x := range moves {
		if x == m {
			return true
		}
	}
	return false
}

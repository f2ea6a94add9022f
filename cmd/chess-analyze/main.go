// chess-analyze searches each position in a file of FEN lines and
// prints the chosen move. Positions are independent, so they are
// analyzed concurrently; each individual search stays single-threaded.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/sv-pro/chess/internal/board"
	"github.com/sv-pro/chess/internal/engine"
)

var (
	depth       = flag.Int("depth", 3, "search depth in plies")
	concurrency = flag.Int("concurrency", runtime.NumCPU(), "number of positions analyzed in parallel")
	exclude     = flag.String("exclude", "", "comma-separated moves excluded at the root of every search")
)

func main() {
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: chess-analyze [flags] <fen-file | ->")
		flag.PrintDefaults()
		os.Exit(2)
	}

	excluded, err := parseExcluded(*exclude)
	if err != nil {
		log.Fatal(err)
	}

	fens, err := readFENs(flag.Arg(0))
	if err != nil {
		log.Fatal(err)
	}

	results := make([]string, len(fens))

	var g errgroup.Group
	g.SetLimit(*concurrency)
	for i, fen := range fens {
		i, fen := i, fen
		g.Go(func() error {
			pos, err := board.ParseFEN(fen)
			if err != nil {
				return fmt.Errorf("line %d: %w", i+1, err)
			}

			move, score, ok := engine.Search(pos, *depth, excluded)
			if !ok {
				if pos.InCheck(pos.SideToMove) {
					results[i] = fmt.Sprintf("%s\tnone (checkmate)", fen)
				} else {
					results[i] = fmt.Sprintf("%s\tnone (stalemate)", fen)
				}
				return nil
			}

			results[i] = fmt.Sprintf("%s\t%s\t%d", fen, move, score)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		log.Fatal(err)
	}

	for _, line := range results {
		fmt.Println(line)
	}
}

// parseExcluded parses the -exclude flag into a move list.
func parseExcluded(s string) ([]board.Move, error) {
	if s == "" {
		return nil, nil
	}

	var moves []board.Move
	for _, tok := range strings.Split(s, ",") {
		m, err := board.ParseMove(strings.TrimSpace(tok))
		if err != nil {
			return nil, fmt.Errorf("bad -exclude move %q: %w", tok, err)
		}
		moves = append(moves, m)
	}
	return moves, nil
}

// readFENs reads non-empty, non-comment lines from the file, or from
// stdin when path is "-".
func readFENs(path string) ([]string, error) {
	var r *os.File
	if path == "-" {
		r = os.Stdin
	} else {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}

	var fens []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fens = append(fens, line)
	}
	return fens, scanner.Err()
}

package main

import (
	"flag"
	"log"
	"os"

	"github.com/sv-pro/chess/internal/board"
	"github.com/sv-pro/chess/internal/console"
	"github.com/sv-pro/chess/internal/storage"
)

var (
	depth   = flag.Int("depth", 3, "engine search depth in plies")
	fen     = flag.String("fen", board.StartFEN, "starting position in FEN")
	nostore = flag.Bool("nostore", false, "disable game persistence")
)

func main() {
	flag.Parse()

	var store *storage.Storage
	if !*nostore {
		s, err := storage.NewStorage()
		if err != nil {
			log.Printf("Warning: persistence disabled: %v", err)
		} else {
			store = s
			defer store.Close()
		}
	}

	c, err := console.New(console.Config{
		Depth:    *depth,
		StartFEN: *fen,
		Store:    store,
		In:       os.Stdin,
		Out:      os.Stdout,
	})
	if err != nil {
		log.Fatal(err)
	}

	if err := c.Run(); err != nil {
		log.Fatal(err)
	}
}

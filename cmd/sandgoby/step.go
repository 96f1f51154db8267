package main

import (
	"fmt"
	"log"
	"time"

	"github.com/daystram/sandgoby/board"
	"github.com/daystram/sandgoby/game"
	"github.com/daystram/sandgoby/position"
)

func step(fen string, shape position.Shape, plies int, seed uint64) error {
	log.Println("============ step")
	b, err := board.NewBoard(board.WithFEN(fen), board.WithShape(shape))
	if err != nil {
		return err
	}

	var ply int
	start := time.Now()
	st, err := game.Playout(b, plies, game.NewPseudoRand(seed), func(mv board.Move) {
		ply++
		fmt.Printf("\n===== [#%d] %s: %s\n", (ply+1)/2, mv.Piece.Side, mv)
		fmt.Println(b.Draw())
		fmt.Println(b.FEN())
		fmt.Println(b.DebugString())
	})
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println(st)
	fmt.Println("plies:", ply)
	fmt.Println("elapsed:", time.Since(start))
	return nil
}

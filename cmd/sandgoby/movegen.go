package main

import (
	"fmt"
	"log"
	"strconv"

	"github.com/daystram/sandgoby/board"
	"github.com/daystram/sandgoby/game"
	"github.com/daystram/sandgoby/position"
)

func movegen(fen string, shape position.Shape, draw bool) error {
	log.Println("============ movegen")
	b, err := board.NewBoard(board.WithFEN(fen), board.WithShape(shape))
	if err != nil {
		return err
	}
	fmt.Println("to move:", b.Turn())
	fmt.Println(b.Dump())
	fmt.Println(b.Draw())
	fmt.Println(game.StateOf(b))
	dumpMoves(b)

	if draw {
		for _, mv := range game.SortedMoves(b) {
			bb := b.Clone()
			applied, err := game.Apply(bb, mv, board.KindUnknown)
			if err != nil {
				return err
			}
			fmt.Println(applied)
			fmt.Println(bb.Draw())
			fmt.Println(bb.FEN())
		}
	}
	return nil
}

func dumpMoves(b *board.Board) {
	mvs := game.SortedMoves(b)
	shape := b.Shape()
	for i, mv := range mvs {
		p, _ := b.Get(mv.From)
		fmt.Printf("option %*d: [%s%s] %s %s => %s (cap=%v) (enp=%v) (cas=%s) (pro=%v)\n",
			len(strconv.Itoa(len(mvs))), i+1, shape.Notation(mv.From), shape.Notation(mv.To), p,
			shape.Notation(mv.From), shape.Notation(mv.To), mv.IsCapture, mv.IsEnPassant, mv.Castle, mv.IsPromote)
	}
}

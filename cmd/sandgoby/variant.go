package main

import (
	"fmt"
	"log"
	"sort"

	"golang.org/x/exp/maps"

	"github.com/daystram/sandgoby/position"
	"github.com/daystram/sandgoby/variant"
)

func variantMovegen(fen string, shape position.Shape) error {
	log.Println("============ variant movegen")
	b, err := variant.Setup(fen, shape, variant.FairyRoster)
	if err != nil {
		return err
	}
	fmt.Println("to move: team", b.Current())
	fmt.Println(variant.Format(b))

	steps := b.PossibleSteps()
	froms := maps.Keys(steps)
	sort.Slice(froms, func(i, j int) bool {
		return shape.Index(froms[i]) < shape.Index(froms[j])
	})
	var n int
	for _, from := range froms {
		m, _ := b.Get(from)
		for _, s := range steps[from] {
			n++
			fmt.Printf("option %3d: [%s] %s (cap=%v) (pro=%v)\n", n, s.Notation(shape), m.Role().Name, s.IsCapture, s.IsPromote)
		}
	}
	return nil
}

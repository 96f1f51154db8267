package main

import (
	"log"

	"github.com/daystram/sandgoby/bench"
	"github.com/daystram/sandgoby/position"
)

func perft(depth int, fen string, shape position.Shape, parallel bool) error {
	log.Printf("============ perft(%d)\n", depth)

	out := make(chan string)
	done := make(chan struct{})
	go func() {
		defer close(done)
		for line := range out {
			log.Println(line)
		}
	}()

	err := bench.Perft(depth, fen, shape, parallel, true, out)
	close(out)
	<-done
	return err
}

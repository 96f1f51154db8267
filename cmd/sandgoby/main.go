package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"
	_ "net/http/pprof"
	"os"
	"strings"

	"github.com/daystram/sandgoby/board"
	"github.com/daystram/sandgoby/position"
)

const (
	exitOK = iota
	exitErr
)

var (
	profile = flag.Bool("profile", false, "serve pprof endpoint")
	shape   = flag.String("shape", "8x8", "board dimensions as WIDTHxHEIGHT")

	movegenRun  = flag.Bool("movegen", false, "run movegen mode")
	movegenDraw = flag.Bool("movegen.draw", false, "draw applied moves in movegen mode")

	variantRun = flag.Bool("variant", false, "run movegen mode with fairy pieces")

	stepRun   = flag.Bool("step", false, "run step mode")
	stepPlies = flag.Int("step.plies", 200, "maximum plies in step mode")
	stepSeed  = flag.Uint64("step.seed", 1, "random seed in step mode")

	perftRun      = flag.Bool("perft", false, "run perft mode")
	perftDepth    = flag.Int("perft.depth", 4, "perft depth in perft mode")
	perftParallel = flag.Bool("perft.parallel", true, "run perft in parallel")
)

func main() {
	flag.Parse()

	if *profile {
		runProfiler()
	}

	err := realMain(flag.Args())
	if err != nil {
		log.Println(err)
		os.Exit(exitErr)
	}
	os.Exit(exitOK)
}

func runProfiler() {
	go func() {
		addr := "localhost:6060"
		log.Printf("starting pprof endpoint: http://%s/debug/pprof\n", addr)
		_ = http.ListenAndServe(addr, nil)
	}()
}

func realMain(args []string) error {
	fen := board.DefaultStartingPositionFEN
	if len(args) > 0 {
		fen = strings.Join(args, " ")
	}
	s, err := parseShape(*shape)
	if err != nil {
		return err
	}
	switch {
	case *movegenRun:
		return movegen(fen, s, *movegenDraw)
	case *variantRun:
		return variantMovegen(fen, s)
	case *stepRun:
		return step(fen, s, *stepPlies, *stepSeed)
	case *perftRun:
		return perft(*perftDepth, fen, s, *perftParallel)
	default:
		return runUCI()
	}
}

func parseShape(v string) (position.Shape, error) {
	var w, h int
	if _, err := fmt.Sscanf(v, "%dx%d", &w, &h); err != nil {
		return position.Shape{}, fmt.Errorf("%w: %s", position.ErrInvalidShape, v)
	}
	return position.NewShape(w, h)
}

package uci

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/daystram/sandgoby/bench"
	"github.com/daystram/sandgoby/board"
	"github.com/daystram/sandgoby/game"
)

var (
	EngineName   = "Sandgoby"
	EngineAuthor = "Danny August Ramaputra"

	defaultOptions = options{
		debug:         false,
		parallelPerft: true,
	}
)

type options struct {
	debug         bool
	parallelPerft bool
}

// Interface speaks the position-handling subset of UCI: it sets up positions, plays moves on them
// and answers perft queries. It has no search, so "go" without "perft" is ignored.
type Interface struct {
	in  io.Reader
	out io.Writer

	board   *board.Board
	options options
}

func NewInterface(in io.Reader, out io.Writer) *Interface {
	return &Interface{
		in:      in,
		out:     out,
		options: defaultOptions,
	}
}

func (i *Interface) Run(ctx context.Context) error {
	i.reset(ctx)

	reader := bufio.NewReader(i.in)
	for {
		cmd, err := reader.ReadString('\n')
		if errors.Is(err, io.EOF) && cmd == "" {
			return nil
		}
		if err != nil && !errors.Is(err, io.EOF) {
			return err
		}
		cmd = strings.TrimSpace(cmd)

		switch args := strings.Fields(cmd); {
		case len(args) == 0:
			continue
		case args[0] == "uci":
			i.commandUCI(ctx)
		case args[0] == "ucinewgame":
			i.reset(ctx)
		case args[0] == "isready":
			i.commandReady(ctx)
		case args[0] == "setoption":
			i.commandSetOption(ctx, args[1:])
		case args[0] == "position":
			i.commandPosition(ctx, args[1:])
		case args[0] == "d":
			i.commandDraw(ctx)
		case args[0] == "moves":
			i.commandMoves(ctx)
		case args[0] == "go":
			i.commandGo(ctx, args[1:])
		case args[0] == "quit":
			return nil
		}
	}
}

func (i *Interface) commandUCI(_ context.Context) {
	i.println(fmt.Sprintf("id name %s", EngineName))
	i.println(fmt.Sprintf("id author %s", EngineAuthor))
	i.println(fmt.Sprintf("option name Debug type check default %v", defaultOptions.debug))
	i.println(fmt.Sprintf("option name ParallelPerft type check default %v", defaultOptions.parallelPerft))
	i.println("uciok")
}

func (i *Interface) commandReady(_ context.Context) {
	if i.board != nil {
		i.println("readyok")
	}
}

func (i *Interface) commandSetOption(_ context.Context, args []string) {
	if len(args) < 4 || args[0] != "name" || args[2] != "value" {
		return
	}
	value, err := strconv.ParseBool(args[3])
	if err != nil {
		return
	}
	switch name := strings.ToLower(args[1]); name {
	case "debug":
		i.options.debug = value
	case "parallelperft":
		i.options.parallelPerft = value
	}
}

func (i *Interface) commandPosition(_ context.Context, args []string) {
	if len(args) == 0 {
		return
	}

	var fen string
	rest := args[1:]
	switch args[0] {
	case "fen":
		end := len(rest)
		for j, a := range rest {
			if a == "moves" {
				end = j
				break
			}
		}
		fen, rest = strings.Join(rest[:end], " "), rest[end:]
	case "startpos":
		fen = board.DefaultStartingPositionFEN
	default:
		return
	}

	b, err := board.NewBoard(board.WithFEN(fen))
	if err != nil {
		i.debugf("invalid position: %v", err)
		return
	}
	if len(rest) > 0 && rest[0] == "moves" {
		for _, uci := range rest[1:] {
			if _, err := game.Play(b, uci); err != nil {
				i.debugf("invalid move: %v", err)
				return
			}
		}
	}
	i.board = b
}

func (i *Interface) commandDraw(_ context.Context) {
	i.println(i.board.Draw())
	i.println(fmt.Sprintf("Fen: %s", i.board.FEN()))
	i.println(fmt.Sprintf("State: %s", game.StateOf(i.board)))
}

func (i *Interface) commandMoves(_ context.Context) {
	shape := i.board.Shape()
	var ucis []string
	for _, mv := range game.SortedMoves(i.board) {
		uci := shape.Notation(mv.From) + shape.Notation(mv.To)
		if !mv.IsPromote {
			ucis = append(ucis, uci)
			continue
		}
		for _, k := range []byte("qrbn") {
			ucis = append(ucis, uci+string(k))
		}
	}
	sort.Strings(ucis)
	i.println(strings.Join(ucis, " "))
}

func (i *Interface) commandGo(_ context.Context, args []string) {
	if len(args) != 2 || args[0] != "perft" {
		i.debugf("unsupported go %s", strings.Join(args, " "))
		return
	}
	depth, err := strconv.Atoi(args[1])
	if err != nil || depth < 0 {
		return
	}

	out := make(chan string, 64)
	done := make(chan struct{})
	go func() {
		defer close(done)
		for s := range out {
			i.println(s)
		}
	}()

	_ = bench.Perft(depth, i.board.FEN(), i.board.Shape(), i.options.parallelPerft, true, out)
	close(out)
	<-done
}

func (i *Interface) reset(ctx context.Context) {
	i.commandPosition(ctx, []string{"startpos"})
}

func (i *Interface) debugf(format string, a ...any) {
	if i.options.debug {
		i.println("info string " + fmt.Sprintf(format, a...))
	}
}

func (i *Interface) println(a ...any) {
	fmt.Fprintln(i.out, a...)
}

package uci

import (
	"bytes"
	"context"
	"strings"
	"testing"
)

func TestInterface(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		input    string
		want     []string
		dontWant []string
	}{
		{
			name:  "handshake",
			input: "uci\nisready\nquit\n",
			want:  []string{"id name Sandgoby", "option name ParallelPerft type check default true", "uciok", "readyok"},
		},
		{
			name:  "startpos moves",
			input: "position startpos moves e2e4 e7e5 g1f3\nd\n",
			want:  []string{"Fen: rnbqkbnr/pppp1ppp/8/4p3/4P3/5N2/PPPP1PPP/RNBQKB1R b KQkq - 1 2", "State: StateRunning"},
		},
		{
			name:  "fen with moves",
			input: "position fen 7k/P7/8/8/8/8/8/K7 w - - 0 1 moves a7a8r\nd\n",
			want:  []string{"Fen: R6k/8/8/8/8/8/8/K7 b - - 0 1", "State: StateCheckBlack"},
		},
		{
			name:  "illegal move keeps previous position",
			input: "setoption name Debug value true\nposition startpos moves e2e5\nd\n",
			want:  []string{"info string invalid move", "Fen: rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"},
		},
		{
			name:  "promotion moves",
			input: "position fen 7k/P7/8/8/8/8/8/K7 w - - 0 1\nmoves\n",
			want:  []string{"a1a2 a1b1 a1b2 a7a8b a7a8n a7a8q a7a8r"},
		},
		{
			name:  "perft",
			input: "setoption name ParallelPerft value false\ngo perft 2\n",
			want:  []string{"e2e4: 20", "d=2 nodes=400 cap=0"},
		},
		{
			name:     "search ignored",
			input:    "go depth 5\nisready\n",
			want:     []string{"readyok"},
			dontWant: []string{"bestmove"},
		},
		{
			name:     "stops at quit",
			input:    "quit\nisready\n",
			dontWant: []string{"readyok"},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var out bytes.Buffer
			if err := NewInterface(strings.NewReader(tt.input), &out).Run(context.Background()); err != nil {
				t.Fatal("unexpected error:", err)
			}
			got := out.String()
			for _, w := range tt.want {
				if !strings.Contains(got, w) {
					t.Errorf("unexpected output: got=%q want=%q", got, w)
				}
			}
			for _, w := range tt.dontWant {
				if strings.Contains(got, w) {
					t.Errorf("unexpected output: got=%q dontWant=%q", got, w)
				}
			}
		})
	}
}

package game

import "github.com/daystram/sandgoby/board"

type State uint8

const (
	// StateUnknown is when game state is unknown.
	StateUnknown State = iota

	// StateRunning is when game is on progress.
	StateRunning

	// StateCheckWhite is when White King is in check.
	StateCheckWhite

	// StateCheckBlack is when Black King is in check.
	StateCheckBlack

	// StateCheckmateWhite is when White King is in checkmate.
	StateCheckmateWhite

	// StateCheckmateBlack is when Black King is in checkmate.
	StateCheckmateBlack

	// StateStalemate is when the side to move cannot move a piece and its King is not in check.
	StateStalemate
)

// StateOf classifies the position for the side to move.
func StateOf(b *board.Board) State {
	turn := b.Turn()
	noMoves := !hasLegalMove(b)
	if b.InCheck(turn) {
		switch {
		case noMoves && turn == board.SideWhite:
			return StateCheckmateWhite
		case noMoves:
			return StateCheckmateBlack
		case turn == board.SideWhite:
			return StateCheckWhite
		default:
			return StateCheckBlack
		}
	}
	if noMoves {
		return StateStalemate
	}
	return StateRunning
}

func hasLegalMove(b *board.Board) bool {
	return len(b.PossibleMoves()) != 0
}

func (s State) IsRunning() bool {
	switch s {
	case StateRunning, StateCheckWhite, StateCheckBlack:
		return true
	default:
		return false
	}
}

func (s State) IsCheck() bool {
	switch s {
	case StateCheckWhite, StateCheckBlack:
		return true
	default:
		return false
	}
}

func (s State) IsCheckmate() bool {
	switch s {
	case StateCheckmateWhite, StateCheckmateBlack:
		return true
	default:
		return false
	}
}

func (s State) IsDraw() bool {
	return s == StateStalemate
}

// Loser returns the checkmated side, SideUnknown otherwise.
func (s State) Loser() board.Side {
	switch s {
	case StateCheckmateWhite:
		return board.SideWhite
	case StateCheckmateBlack:
		return board.SideBlack
	default:
		return board.SideUnknown
	}
}

func (s State) String() string {
	switch s {
	case StateUnknown:
		return "StateUnknown"
	case StateRunning:
		return "StateRunning"
	case StateCheckWhite:
		return "StateCheckWhite"
	case StateCheckBlack:
		return "StateCheckBlack"
	case StateCheckmateWhite:
		return "StateCheckmateWhite"
	case StateCheckmateBlack:
		return "StateCheckmateBlack"
	case StateStalemate:
		return "StateStalemate"
	default:
		return ""
	}
}

package board

import "github.com/daystram/sandgoby/position"

var (
	// knightOffsets are (forward, sideways) pairs in the mover's frame.
	knightOffsets = [8][2]int8{{2, 1}, {2, -1}, {-2, 1}, {-2, -1}, {1, 2}, {1, -2}, {-1, 2}, {-1, -2}}

	lateralDirs = [4]position.Direction{
		{Rank: -1, File: 0},
		{Rank: 1, File: 0},
		{Rank: 0, File: -1},
		{Rank: 0, File: 1},
	}
	diagonalDirs = [4]position.Direction{
		{Rank: -1, File: -1},
		{Rank: -1, File: 1},
		{Rank: 1, File: -1},
		{Rank: 1, File: 1},
	}
	allDirs = [8]position.Direction{
		lateralDirs[0], lateralDirs[1], lateralDirs[2], lateralDirs[3],
		diagonalDirs[0], diagonalDirs[1], diagonalDirs[2], diagonalDirs[3],
	}
)

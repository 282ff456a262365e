package game

// Maze tiling constants. Pixel coordinates map to the wall grid by integer
// division: cell (x/TileSize, y/TileSize).
const (
	TileSize = 8
	GridW    = 16
	GridH    = 20
)

// Maze is a static wall/path lookup table for one level variant.
type Maze struct {
	walls [GridH][GridW]bool
}

// Level layouts as rows of '#' (wall) and '.' (path), 16 cells wide. The
// bottom three rows are open corridor on both levels. Level 3 reuses the
// level 2 layout.
var mazeLevel1 = parseMaze([]string{
	"################",
	"#.....#........#",
	"#.###.#.######.#",
	"#...#.....#....#",
	"###.#####.#.##.#",
	"#.......#...#..#",
	"#.#####.#####.##",
	"#.....#........#",
	"#####.#####.##.#",
	"#.....#.....#..#",
	"#.#####.#####.##",
	"#.......#......#",
	"#.#######.####.#",
	"#............#.#",
	"#.##########.#.#",
	"#..............#",
	"################",
	"................",
	"................",
	"................",
})

var mazeLevel2 = parseMaze([]string{
	"################",
	"#...#.....#....#",
	"#.#.#.###.#.##.#",
	"#.#.....#....#.#",
	"#.#####.####.#.#",
	"#.....#........#",
	"#####.###.####.#",
	"#...#...#.#....#",
	"#.#.###.#.#.####",
	"#.#.......#....#",
	"#.############.#",
	"#.....#......#.#",
	"#.###.#.####.#.#",
	"#...#...#......#",
	"###.#####.####.#",
	"#..............#",
	"################",
	"................",
	"................",
	"................",
})

// Levels 1 and 2 use distinct static layouts; the three bottom rows of the
// grid are open path on both.

// parseMaze converts string rows into a wall grid. Rows beyond the layout
// and short rows stay open path.
func parseMaze(rows []string) *Maze {
	m := &Maze{}
	for y, row := range rows {
		if y >= GridH {
			break
		}
		for x, ch := range row {
			if x >= GridW {
				break
			}
			if ch == '#' {
				m.walls[y][x] = true
			}
		}
	}
	return m
}

// MazeForLevel returns the wall table for a level. Levels beyond 2 reuse the
// level 2 layout.
func MazeForLevel(level int) *Maze {
	if level >= 2 {
		return mazeLevel2
	}
	return mazeLevel1
}

// IsWall reports whether the pixel position (x, y) lies inside a wall cell.
// Coordinates outside the grid count as wall (fail-closed), so nothing is
// ever considered "outside" the maze.
func (m *Maze) IsWall(x, y int) bool {
	if x < 0 || y < 0 {
		return true
	}
	gx := x / TileSize
	gy := y / TileSize
	if gx >= GridW || gy >= GridH {
		return true
	}
	return m.walls[gy][gx]
}

// WallAtCell reports whether the grid cell (gx, gy) is a wall. Out-of-grid
// cells count as wall.
func (m *Maze) WallAtCell(gx, gy int) bool {
	if gx < 0 || gx >= GridW || gy < 0 || gy >= GridH {
		return true
	}
	return m.walls[gy][gx]
}

// Package nav is a walkability grid over the level floor with A* path
// queries. Grid X maps to world X and grid Y maps to world Z.
package nav

import (
	"math"

	astar "github.com/beefsack/go-astar"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/solarlune/resolv"
)

// Grid represents the walkable areas of the level
type Grid struct {
	Width, Height int
	CellSize      float64
	Nodes         [][]*Node
}

// Node represents a single cell in the navigation grid
// Implements astar.Pather interface
type Node struct {
	X, Y     int
	Walkable bool
	Grid     *Grid
}

var dirs = []struct{ dx, dy int }{
	{-1, 0}, {1, 0}, {0, -1}, {0, 1}, // Cardinal
	{-1, -1}, {1, -1}, {-1, 1}, {1, 1}, // Diagonal
}

// PathNeighbors returns adjacent walkable nodes (implements astar.Pather).
// Diagonal steps are only allowed when both cardinal neighbours are open, so
// paths never clip a wall corner.
func (n *Node) PathNeighbors() []astar.Pather {
	var neighbors []astar.Pather
	for _, d := range dirs {
		if !n.Grid.walkable(n.X+d.dx, n.Y+d.dy) {
			continue
		}
		if d.dx != 0 && d.dy != 0 {
			if !n.Grid.walkable(n.X+d.dx, n.Y) || !n.Grid.walkable(n.X, n.Y+d.dy) {
				continue
			}
		}
		neighbors = append(neighbors, n.Grid.Nodes[n.Y+d.dy][n.X+d.dx])
	}
	return neighbors
}

// PathNeighborCost returns the movement cost between adjacent nodes (implements astar.Pather)
func (n *Node) PathNeighborCost(to astar.Pather) float64 {
	return n.PathEstimatedCost(to)
}

// PathEstimatedCost returns heuristic distance to target (implements astar.Pather)
func (n *Node) PathEstimatedCost(to astar.Pather) float64 {
	toNode := to.(*Node)
	dx := float64(toNode.X - n.X)
	dy := float64(toNode.Y - n.Y)
	return math.Sqrt(dx*dx + dy*dy)
}

// NewGrid returns an open grid covering width x depth meters.
func NewGrid(width, depth, cellSize float64) *Grid {
	gridW := int(math.Ceil(width / cellSize))
	gridH := int(math.Ceil(depth / cellSize))

	grid := &Grid{
		Width:    gridW,
		Height:   gridH,
		CellSize: cellSize,
		Nodes:    make([][]*Node, gridH),
	}
	for y := 0; y < gridH; y++ {
		grid.Nodes[y] = make([]*Node, gridW)
		for x := 0; x < gridW; x++ {
			grid.Nodes[y][x] = &Node{X: x, Y: y, Walkable: true, Grid: grid}
		}
	}
	return grid
}

// FromSpace builds a grid and blocks every cell overlapping an object
// tagged solidTag in space. unitsPerMeter converts meters to space units.
func FromSpace(space *resolv.Space, width, depth, cellSize, unitsPerMeter float64, solidTag string) *Grid {
	grid := NewGrid(width, depth, cellSize)
	inset := cellSize * 0.1
	size := (cellSize - 2*inset) * unitsPerMeter

	for y := 0; y < grid.Height; y++ {
		for x := 0; x < grid.Width; x++ {
			testObj := resolv.NewObject((float64(x)*cellSize+inset)*unitsPerMeter, (float64(y)*cellSize+inset)*unitsPerMeter, size, size)
			space.Add(testObj)
			if check := testObj.Check(0, 0, solidTag); check != nil {
				for _, o := range check.Objects {
					if overlaps(testObj, o) {
						grid.Nodes[y][x].Walkable = false
						break
					}
				}
			}
			space.Remove(testObj)
		}
	}
	return grid
}

func overlaps(a, b *resolv.Object) bool {
	return a.X < b.X+b.W && b.X < a.X+a.W && a.Y < b.Y+b.H && b.Y < a.Y+a.H
}

// Block marks the cell containing world point p as not walkable.
func (g *Grid) Block(p mgl64.Vec3) {
	x, y := g.cell(p)
	if g.inBounds(x, y) {
		g.Nodes[y][x].Walkable = false
	}
}

// FindPath returns world waypoints from start to goal, excluding the start
// cell. Waypoints are cell centers at the height of goal. It returns nil when
// no path exists.
func (g *Grid) FindPath(start, goal mgl64.Vec3) []mgl64.Vec3 {
	sx, sy := g.cell(start)
	gx, gy := g.cell(goal)
	sx, sy = clampInt(sx, 0, g.Width-1), clampInt(sy, 0, g.Height-1)
	gx, gy = clampInt(gx, 0, g.Width-1), clampInt(gy, 0, g.Height-1)

	startNode := g.Nodes[sy][sx]
	goalNode := g.Nodes[gy][gx]

	// Handle case where start or goal is in solid geometry
	if !startNode.Walkable {
		startNode = g.findNearestWalkable(sx, sy)
	}
	if !goalNode.Walkable {
		goalNode = g.findNearestWalkable(gx, gy)
	}
	if startNode == nil || goalNode == nil {
		return nil
	}
	if startNode == goalNode {
		return []mgl64.Vec3{goal}
	}

	path, _, found := astar.Path(startNode, goalNode)
	if !found {
		return nil
	}

	// go-astar returns the path goal first.
	result := make([]mgl64.Vec3, 0, len(path))
	for i := len(path) - 2; i >= 0; i-- {
		n := path[i].(*Node)
		wx, wz := g.GridToWorld(n.X, n.Y)
		result = append(result, mgl64.Vec3{wx, goal.Y(), wz})
	}
	return result
}

// GridToWorld converts grid coordinates to world X/Z (center of cell)
func (g *Grid) GridToWorld(gridX, gridY int) (float64, float64) {
	return float64(gridX)*g.CellSize + g.CellSize/2,
		float64(gridY)*g.CellSize + g.CellSize/2
}

// findNearestWalkable finds the nearest walkable node to the given position
func (g *Grid) findNearestWalkable(x, y int) *Node {
	for radius := 1; radius < 10; radius++ {
		for dy := -radius; dy <= radius; dy++ {
			for dx := -radius; dx <= radius; dx++ {
				if g.walkable(x+dx, y+dy) {
					return g.Nodes[y+dy][x+dx]
				}
			}
		}
	}
	return nil
}

func (g *Grid) cell(p mgl64.Vec3) (int, int) {
	return int(math.Floor(p.X() / g.CellSize)), int(math.Floor(p.Z() / g.CellSize))
}

func (g *Grid) inBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

func (g *Grid) walkable(x, y int) bool {
	return g.inBounds(x, y) && g.Nodes[y][x].Walkable
}

func clampInt(v, minVal, maxVal int) int {
	return max(minVal, min(maxVal, v))
}

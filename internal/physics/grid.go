package physics

import (
	"math"
	"slices"
)

// SpatialGrid is a uniform grid for broad-phase collision detection on a
// wrapping playfield. Items are inserted by position and index, then nearby
// items are found with a 3x3 neighborhood lookup.
//
// Cell size must be >= the largest interaction distance between two items,
// otherwise pairs can be missed.
type SpatialGrid struct {
	cellSize    float64
	invCellSize float64
	cols        int
	rows        int
	cells       [][]int
}

// NewSpatialGrid creates a grid covering a width×height playfield.
func NewSpatialGrid(width, height, cellSize float64) *SpatialGrid {
	cols := max(int(math.Ceil(width/cellSize)), 1)
	rows := max(int(math.Ceil(height/cellSize)), 1)

	return &SpatialGrid{
		cellSize:    cellSize,
		invCellSize: 1.0 / cellSize,
		cols:        cols,
		rows:        rows,
		cells:       make([][]int, cols*rows),
	}
}

// Reset empties every cell, keeping the backing memory.
func (g *SpatialGrid) Reset() {
	for i := range g.cells {
		g.cells[i] = g.cells[i][:0]
	}
}

// Insert adds an item index at p.
func (g *SpatialGrid) Insert(p Vec2, index int) {
	col, row := g.cellOf(p)
	idx := row*g.cols + col
	g.cells[idx] = append(g.cells[idx], index)
}

// Candidates appends to buf every index stored in the 3x3 neighborhood of p,
// sorted ascending and without duplicates.
func (g *SpatialGrid) Candidates(p Vec2, buf []int) []int {
	col, row := g.cellOf(p)
	start := len(buf)

	for dr := -1; dr <= 1; dr++ {
		r := (row + dr + g.rows) % g.rows
		for dc := -1; dc <= 1; dc++ {
			c := (col + dc + g.cols) % g.cols
			buf = append(buf, g.cells[r*g.cols+c]...)
		}
	}

	found := buf[start:]
	slices.Sort(found)
	return append(buf[:start], slices.Compact(found)...)
}

// cellOf clamps positions slightly outside the playfield (wrap margin) into
// the edge cells.
func (g *SpatialGrid) cellOf(p Vec2) (col, row int) {
	col = min(max(int(math.Floor(p.X*g.invCellSize)), 0), g.cols-1)
	row = min(max(int(math.Floor(p.Y*g.invCellSize)), 0), g.rows-1)
	return col, row
}

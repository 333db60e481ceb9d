// Package display renders the tracker's diagnostic output: the per-stage
// tile board and the ellipse annotation overlay.
package display

import (
	"image"

	"gocv.io/x/gocv"
)

const (
	boardRows = 3
	boardCols = 3
)

type tile struct {
	name string
	img  gocv.Mat
}

// TileBoard collects pipeline stage images and composes them into a single
// rows-by-cols display image. It implements pupil.StageSink: each Stage
// call hands the board ownership of the Mat, which is released on Reset or
// Close. The board is filled row-major in arrival order.
type TileBoard struct {
	tileWidth  int
	tileHeight int
	tiles      []tile
}

// NewTileBoard creates a board whose tiles are rendered at the given size,
// typically the session frame dimensions.
func NewTileBoard(tileWidth, tileHeight int) *TileBoard {
	return &TileBoard{tileWidth: tileWidth, tileHeight: tileHeight}
}

// Stage receives one intermediate pipeline image. Images beyond the board
// capacity are dropped.
func (b *TileBoard) Stage(name string, img gocv.Mat) {
	if len(b.tiles) >= boardRows*boardCols {
		img.Close()
		return
	}
	b.tiles = append(b.tiles, tile{name: name, img: img})
}

// Add appends an extra image, such as the annotated camera frame, taking
// ownership of it.
func (b *TileBoard) Add(img gocv.Mat) {
	b.Stage("", img)
}

// Len returns the number of collected tiles.
func (b *TileBoard) Len() int {
	return len(b.tiles)
}

// Compose renders the collected tiles onto a black board. Single-channel
// tiles are promoted to BGR and every tile is resized to the board's tile
// size. The caller owns the returned Mat.
func (b *TileBoard) Compose() gocv.Mat {
	board := gocv.Zeros(b.tileHeight*boardRows, b.tileWidth*boardCols, gocv.MatTypeCV8UC3)

	for i, t := range b.tiles {
		row := i / boardCols
		col := i % boardCols

		cell := gocv.NewMat()
		if t.img.Channels() == 1 {
			gocv.CvtColor(t.img, &cell, gocv.ColorGrayToBGR)
		} else {
			t.img.CopyTo(&cell)
		}
		if cell.Cols() != b.tileWidth || cell.Rows() != b.tileHeight {
			gocv.Resize(cell, &cell, image.Pt(b.tileWidth, b.tileHeight), 0, 0, gocv.InterpolationLinear)
		}

		region := board.Region(image.Rect(
			col*b.tileWidth, row*b.tileHeight,
			(col+1)*b.tileWidth, (row+1)*b.tileHeight))
		cell.CopyTo(&region)
		region.Close()
		cell.Close()
	}

	return board
}

// Reset releases the collected tiles, readying the board for the next
// frame.
func (b *TileBoard) Reset() {
	for _, t := range b.tiles {
		t.img.Close()
	}
	b.tiles = b.tiles[:0]
}

// Close releases all held images.
func (b *TileBoard) Close() {
	b.Reset()
}

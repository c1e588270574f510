package entity

import (
	"fmt"

	"github.com/rocketscienceinc/megaverse-builder/internal/apperror"
)

// Grid is the goal map, indexed as [row][column].
type Grid [][]string

type Position struct {
	Row    int `json:"row"`
	Column int `json:"column"`
}

// Occupied - counts the cells that are not SPACE.
func (that Grid) Occupied() int {
	count := 0
	for _, row := range that {
		for _, label := range row {
			if label != LabelSpace {
				count++
			}
		}
	}

	return count
}

// CrossPositions - returns the polyanet positions of an X drawn on a size x size board,
// leaving margin empty cells around it. The centre of an odd board is listed twice.
func CrossPositions(size, margin int) ([]Position, error) {
	if size <= 0 || margin < 0 || margin > size-1-margin {
		return nil, fmt.Errorf("%w: size %d, margin %d", apperror.ErrInvalidBoard, size, margin)
	}

	positions := make([]Position, 0, 2*(size-2*margin))
	for i := margin; i <= size-1-margin; i++ {
		positions = append(positions,
			Position{Row: i, Column: i},
			Position{Row: i, Column: size - 1 - i},
		)
	}

	return positions, nil
}

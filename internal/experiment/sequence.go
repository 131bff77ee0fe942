package experiment

import (
	"fmt"
	"math/rand"
	"time"
)

// Minimum terminal footprint of the visualization panel.
const (
	MinWidth  = 32
	MinHeight = 8
)

// SizeFor returns how many elements fit a display of the given size.
func SizeFor(width, height int) (int, error) {
	if width < MinWidth {
		return 0, fmt.Errorf("%w: need at least %d columns, have %d", ErrWidthTooSmall, MinWidth, width)
	}
	if height < MinHeight {
		return 0, fmt.Errorf("%w: need at least %d rows, have %d", ErrHeightTooSmall, MinHeight, height)
	}
	return MinWidth, nil
}

// Fits reports whether size elements fit a display of the given size. Each
// element takes one column and every four values take one row, on top of the
// minimum panel footprint.
func Fits(size, width, height int) error {
	if _, err := SizeFor(width, height); err != nil {
		return err
	}
	if width < size {
		return fmt.Errorf("%w: %d elements need %d columns, have %d", ErrWidthTooSmall, size, size, width)
	}
	if rows := (size + 3) / 4; height < rows {
		return fmt.Errorf("%w: %d elements need %d rows, have %d", ErrHeightTooSmall, size, rows, height)
	}
	return nil
}

// Sequence returns the values 1..n in an order shuffled by seed. A zero seed
// draws one from the clock.
func Sequence(n int, seed int64) ([]int, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, n)
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	nums := make([]int, n)
	for i := range nums {
		nums[i] = i + 1
	}
	rng := rand.New(rand.NewSource(seed))
	rng.Shuffle(n, func(i, j int) { nums[i], nums[j] = nums[j], nums[i] })
	return nums, nil
}

// meta/meta.go
package meta

import "time"

// ROWS defines the default board height.
const ROWS = 6

// COLUMNS defines the default board width.
const COLUMNS = 7

// TICK_RATE defines the longest wait for input before the board is redrawn.
const TICK_RATE = 16 * time.Millisecond

// CELL_SIZE defines the side of a token in canvas units.
const CELL_SIZE = 40.0

// CELL_PITCH defines the distance between neighbouring tokens in canvas units.
const CELL_PITCH = 50.0

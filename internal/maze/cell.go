package maze

import "sync/atomic"

// Cell is the 16-bit word packed into every grid square:
//
//	bits 0..3   wall topology, N=1 E=2 S=4 W=8, selects a wall glyph
//	bits 4..7   build: backtrack marker enum (origin/fromN/fromE/fromS/fromW)
//	            solve: per-worker paint mask, bit k = worker k has painted
//	bits 8..11  solve: per-worker seen-cache, bit k = worker k has popped
//	bit  12     builder bit, set once a builder has written the cell
//	bit  13     path bit, the authoritative walkable flag
//	bit  14     start bit
//	bit  15     finish bit
//
// A Cell is stored as an atomic.Uint32 so solvers can CAS the whole word;
// only the low 16 bits are ever meaningful.
type Cell struct {
	word atomic.Uint32
}

const (
	wallMask   = 0b0000_0000_0000_1111
	markerMask = 0b0000_0000_1111_0000
	cacheMask  = 0b0000_1111_0000_0000
	BuilderBit = 0b0001_0000_0000_0000
	PathBit    = 0b0010_0000_0000_0000
	StartBit   = 0b0100_0000_0000_0000
	FinishBit  = 0b1000_0000_0000_0000

	markerShift = 4
	cacheShift  = 8
)

// Wall sides, bit positions within the low nibble.
const (
	WallNorth uint16 = 1 << North
	WallEast  uint16 = 1 << East
	WallSouth uint16 = 1 << South
	WallWest  uint16 = 1 << West
)

func wallBit(s Side) uint16 {
	return 1 << uint16(s)
}

// Backtrack marker enum values, shifted into bits 4..7 by MarkOrigin.
const (
	MarkerOrigin uint16 = 0
	MarkerNorth  uint16 = 1
	MarkerEast   uint16 = 2
	MarkerSouth  uint16 = 3
	MarkerWest   uint16 = 4
)

// PaintBit returns the single-bit paint mask for worker i (0..3).
func PaintBit(worker int) uint16 {
	return 1 << uint16(markerShift+worker)
}

// CacheBit returns the single-bit seen-cache mask for worker i (0..3).
func CacheBit(worker int) uint16 {
	return 1 << uint16(cacheShift+worker)
}

// Load reads the cell's current 16-bit value.
func (c *Cell) Load() uint16 {
	return uint16(c.word.Load())
}

// Store overwrites the cell's full 16-bit value.
func (c *Cell) Store(v uint16) {
	c.word.Store(uint32(v))
}

// Or atomically sets bits and returns the prior value.
func (c *Cell) Or(bits uint16) uint16 {
	for {
		old := c.word.Load()
		if c.word.CompareAndSwap(old, old|uint32(bits)) {
			return uint16(old)
		}
	}
}

// AndNot atomically clears bits and returns the prior value.
func (c *Cell) AndNot(bits uint16) uint16 {
	for {
		old := c.word.Load()
		if c.word.CompareAndSwap(old, old&^uint32(bits)) {
			return uint16(old)
		}
	}
}

// CompareAndSwap does a CAS on the full 16-bit word; used by solvers to
// detect "I was first to claim this cell" without a lock.
func (c *Cell) CompareAndSwap(old, new uint16) bool {
	return c.word.CompareAndSwap(uint32(old), uint32(new))
}

// HasWall reports whether side s of the cell carries a wall.
func (c *Cell) HasWall(s Side) bool {
	return c.Load()&wallBit(s) != 0
}

// SetWall ORs in the wall bit for side s.
func (c *Cell) SetWall(s Side) {
	c.Or(wallBit(s))
}

// ClearWall clears the wall bit for side s.
func (c *Cell) ClearWall(s Side) {
	c.AndNot(wallBit(s))
}

// WallIndex returns the low nibble used to index a wall glyph palette.
func (c *Cell) WallIndex() uint16 {
	return c.Load() & wallMask
}

// IsPath reports whether the cell is walkable.
func (c *Cell) IsPath() bool {
	return c.Load()&PathBit != 0
}

// MarkPath sets the path bit and clears the wall nibble (a path cell never
// shows wall topology).
func (c *Cell) MarkPath() {
	for {
		old := c.Load()
		newVal := (old &^ wallMask) | PathBit
		if c.CompareAndSwap(old, newVal) {
			return
		}
	}
}

// MarkWall clears the path bit, leaving the wall nibble to the caller.
func (c *Cell) MarkWall() {
	c.AndNot(PathBit)
}

// IsBuilder reports whether a builder has already written this cell.
func (c *Cell) IsBuilder() bool {
	return c.Load()&BuilderBit != 0
}

// SetBuilder marks the cell as written by the active builder pass.
func (c *Cell) SetBuilder() {
	c.Or(BuilderBit)
}

// ClearBuilder clears the builder bit; used by wall-adder algorithms that
// reuse the same grid across an "in maze" / "not yet" bootstrap.
func (c *Cell) ClearBuilder() {
	c.AndNot(BuilderBit)
}

// IsStart reports whether the cell is a worker start.
func (c *Cell) IsStart() bool { return c.Load()&StartBit != 0 }

// SetStart marks the cell as a worker start.
func (c *Cell) SetStart() { c.Or(StartBit) }

// IsFinish reports whether the cell is a goal.
func (c *Cell) IsFinish() bool { return c.Load()&FinishBit != 0 }

// SetFinish marks the cell as a goal.
func (c *Cell) SetFinish() { c.Or(FinishBit) }

// BacktrackMarker reads the build-phase backtrack origin enum.
func (c *Cell) BacktrackMarker() uint16 {
	return (c.Load() & markerMask) >> markerShift
}

// SetBacktrackMarker ORs in the given origin enum value (must be 0..4).
func (c *Cell) SetBacktrackMarker(m uint16) {
	c.Or(m << markerShift)
}

// ClearBacktrackMarker wipes the marker nibble; builders must do this before
// a solve pass reuses the same bits as the paint mask.
func (c *Cell) ClearBacktrackMarker() {
	c.AndNot(markerMask)
}

// ClearTransient wipes the marker/cache region, used once a builder finishes
// and before a solver begins reusing those bits.
func (c *Cell) ClearTransient() {
	c.AndNot(markerMask | cacheMask)
}

// PaintMask returns the raw 4-bit paint field (bits 4..7).
func (c *Cell) PaintMask() uint16 {
	return (c.Load() & markerMask) >> markerShift
}

// Paint reports whether worker i has painted this cell.
func (c *Cell) Paint(worker int) bool {
	return c.Load()&PaintBit(worker) != 0
}

// SetPaint ORs in worker i's paint bit.
func (c *Cell) SetPaint(worker int) uint16 {
	return c.Or(PaintBit(worker))
}

// ClearPaint clears worker i's paint bit (animated DFS "erase" on unwind).
func (c *Cell) ClearPaint(worker int) {
	c.AndNot(PaintBit(worker))
}

// Cache reports whether worker i has already popped this cell.
func (c *Cell) Cache(worker int) bool {
	return c.Load()&CacheBit(worker) != 0
}

// SetCache ORs in worker i's seen-cache bit.
func (c *Cell) SetCache(worker int) {
	c.Or(CacheBit(worker))
}

// ClaimPaintSlot CASes cache slot 0 from unset to set, reporting whether this
// call claimed it. The painter runs on a maze whose builder has cleared the
// transient nibbles, so it reuses that single slot as a shared "has some
// worker already rendered this cell" flag rather than a per-worker one.
func (c *Cell) ClaimPaintSlot() bool {
	return c.ClaimCache(0)
}

// ClaimCache CASes worker i's cache bit from unset to set, reporting whether
// this call was the one that set it. Used where "first to enter" matters.
func (c *Cell) ClaimCache(worker int) bool {
	bit := CacheBit(worker)
	for {
		old := c.Load()
		if old&bit != 0 {
			return false
		}
		if c.CompareAndSwap(old, old|bit) {
			return true
		}
	}
}

// ClaimFinish CASes worker i's cache bit on, but only if no worker's cache
// bit is set yet: the whole cache nibble must read zero. Gather mode uses
// this instead of ClaimCache so a finish goes to exactly one worker rather
// than to whichever worker happens to set its own bit first, independent
// of the other three.
func (c *Cell) ClaimFinish(worker int) bool {
	bit := CacheBit(worker)
	for {
		old := c.Load()
		if old&cacheMask != 0 {
			return false
		}
		if c.CompareAndSwap(old, old|bit) {
			return true
		}
	}
}

package rasterpipe

import "fmt"

// minArenaChunk is the smallest backing chunk an Arena allocates.
const minArenaChunk = 1024

// Arena hands out zeroed float32 runs for slot and stack storage.
// Runs are never freed individually; Reset reclaims everything at once.
// An Arena is not safe for concurrent use.
type Arena struct {
	capacity int // in float32 elements, 0 = unbounded
	used     int
	chunks   [][]float32
	cur      []float32 // unused tail of the last chunk
}

// NewArena creates an arena holding at most capacity float32 elements.
// A capacity of 0 means unbounded.
func NewArena(capacity int) *Arena {
	if capacity < 0 {
		panic(fmt.Sprintf("rasterpipe: negative arena capacity %d", capacity))
	}
	return &Arena{capacity: capacity}
}

// Floats returns a zeroed run of n elements. It panics with
// ErrArenaExhausted when a bounded arena has no room left.
func (a *Arena) Floats(n int) []float32 {
	if n < 0 {
		panic(fmt.Sprintf("rasterpipe: negative arena allocation %d", n))
	}
	if a.capacity > 0 && a.used+n > a.capacity {
		panic(fmt.Errorf("%w: need %d floats, %d of %d used", ErrArenaExhausted, n, a.used, a.capacity))
	}
	if n > len(a.cur) {
		size := max(n, minArenaChunk)
		if a.capacity > 0 {
			size = max(n, min(size, a.capacity-a.used))
		}
		chunk := make([]float32, size)
		a.chunks = append(a.chunks, chunk)
		a.cur = chunk
	}
	run := a.cur[:n:n]
	a.cur = a.cur[n:]
	a.used += n
	return run
}

// Slots returns a zeroed run of n slots.
func (a *Arena) Slots(n int) []float32 {
	return a.Floats(n * HighpStride)
}

// Used returns the number of elements handed out since the last Reset.
func (a *Arena) Used() int {
	return a.used
}

// Reset releases every run. Slices handed out earlier must no longer be
// used; their memory is zeroed and reused.
func (a *Arena) Reset() {
	for _, c := range a.chunks {
		clear(c)
	}
	if len(a.chunks) > 0 {
		a.chunks = a.chunks[:1]
		a.cur = a.chunks[0]
	}
	a.used = 0
}

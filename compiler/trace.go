package compiler

import (
	"fmt"
	"io"
	"slices"
	"sync"

	"github.com/gogpu/rasterpipe"
)

// DebugTrace counts how often each stage of a program ran and how many
// lanes were active when it did. Attach it with WithDebugTrace; Dump then
// prints the counts next to the stages.
//
// Every AppendStages call adds a binding. When a program is bound more than
// once, the counts of all bindings add up per program stage.
//
// DebugTrace implements rasterpipe.Tracer and is safe for concurrent use.
type DebugTrace struct {
	mu       sync.Mutex
	ops      []rasterpipe.Op
	bindings []int // pipeline index of stage 0, per binding
	hits     []int
	lanes    []int
}

// NewDebugTrace creates an empty trace.
func NewDebugTrace() *DebugTrace {
	return &DebugTrace{}
}

// bind records that the program's stages were appended at base. Binding a
// different program clears the counts.
func (t *DebugTrace) bind(base int, ops []rasterpipe.Op) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if !slices.Equal(t.ops, ops) {
		t.ops = ops
		t.bindings = nil
		t.hits = make([]int, len(ops))
		t.lanes = make([]int, len(ops))
	}
	if !slices.Contains(t.bindings, base) {
		t.bindings = append(t.bindings, base)
	}
}

// TraceStage records one execution of a pipeline stage. Stages outside the
// traced bindings are ignored.
func (t *DebugTrace) TraceStage(index int, op rasterpipe.Op, activeLanes int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	for _, base := range t.bindings {
		i := index - base
		if i < 0 || i >= len(t.ops) || t.ops[i] != op {
			continue
		}
		t.hits[i]++
		t.lanes[i] += activeLanes
		return
	}
}

// Bindings returns how many times the traced program has been bound.
func (t *DebugTrace) Bindings() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.bindings)
}

// Hits returns how many lane groups executed program stage i.
func (t *DebugTrace) Hits(i int) int {
	t.mu.Lock()
	defer t.mu.Unlock()
	if i < 0 || i >= len(t.hits) {
		return 0
	}
	return t.hits[i]
}

// ActiveLanes returns the total number of active lanes seen by program
// stage i.
func (t *DebugTrace) ActiveLanes(i int) int {
	t.mu.Lock()
	defer t.mu.Unlock()
	if i < 0 || i >= len(t.lanes) {
		return 0
	}
	return t.lanes[i]
}

// Reset clears the counts.
func (t *DebugTrace) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	clear(t.hits)
	clear(t.lanes)
}

// WriteTo writes one line per executed stage.
func (t *DebugTrace) WriteTo(w io.Writer) (int64, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	var total int64
	for i, op := range t.ops {
		if t.hits[i] == 0 {
			continue
		}
		n, err := fmt.Fprintf(w, "%4d. %-30s hits=%d lanes=%d\n", i, op, t.hits[i], t.lanes[i])
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// counts returns the counts for stage i, and false when nothing was
// recorded for it.
func (t *DebugTrace) counts(i int) (hits, lanes int, ok bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if i >= len(t.hits) {
		return 0, 0, false
	}
	return t.hits[i], t.lanes[i], true
}

package compiler

import "errors"

// Errors returned by Builder.Finish. They describe defects in the recorded
// instruction stream and are wrapped with the offending label or
// instruction index.
var (
	// ErrUndefinedLabel means a branch targets a label that was never placed.
	ErrUndefinedLabel = errors.New("compiler: undefined label")

	// ErrDuplicateLabel means a label was placed more than once.
	ErrDuplicateLabel = errors.New("compiler: duplicate label")

	// ErrStackUnderflow means an instruction reads or pops more slots than
	// its temporary stack holds.
	ErrStackUnderflow = errors.New("compiler: stack underflow")

	// ErrMaskNesting means mask pushes and pops are not strictly nested.
	ErrMaskNesting = errors.New("compiler: mask push/pop mismatch")
)

package vm

// Builder assembles a Program instruction by instruction. It exists so
// tests and the CLI's builtin systems can construct small guard/update/invariant
// programs without hand-writing Instr literals.
type Builder struct {
	prog Program
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder { return &Builder{} }

// Build returns the assembled Program.
func (b *Builder) Build() Program { return b.prog }

func (b *Builder) emit(op Op, a, c, d int32) *Builder {
	b.prog = append(b.prog, Instr{Op: op, A: a, B: c, C: d})
	return b
}

// PushConst appends OpPushConst.
func (b *Builder) PushConst(v int32) *Builder { return b.emit(OpPushConst, v, 0, 0) }

// PushVar appends OpPushVar for integer variable id.
func (b *Builder) PushVar(id int32) *Builder { return b.emit(OpPushVar, id, 0, 0) }

// Add appends OpAdd.
func (b *Builder) Add() *Builder { return b.emit(OpAdd, 0, 0, 0) }

// Sub appends OpSub.
func (b *Builder) Sub() *Builder { return b.emit(OpSub, 0, 0, 0) }

// GE appends OpGE.
func (b *Builder) GE() *Builder { return b.emit(OpGE, 0, 0, 0) }

// LE appends OpLE.
func (b *Builder) LE() *Builder { return b.emit(OpLE, 0, 0, 0) }

// EQ appends OpEQ.
func (b *Builder) EQ() *Builder { return b.emit(OpEQ, 0, 0, 0) }

// And appends OpAnd.
func (b *Builder) And() *Builder { return b.emit(OpAnd, 0, 0, 0) }

// Assign appends OpAssign for integer variable id.
func (b *Builder) Assign(id int32) *Builder { return b.emit(OpAssign, id, 0, 0) }

// Pop appends OpPop.
func (b *Builder) Pop() *Builder { return b.emit(OpPop, 0, 0, 0) }

// ClockGuardGE appends a "clock >= bound" (or "> bound" if strict) guard
// emission.
func (b *Builder) ClockGuardGE(clock int32, bound int32, strict bool) *Builder {
	return b.emit(OpClockGuardGE, clock, bound, boolToInt32(strict))
}

// ClockGuardLE appends a "clock <= bound" (or "< bound" if strict) guard
// emission.
func (b *Builder) ClockGuardLE(clock int32, bound int32, strict bool) *Builder {
	return b.emit(OpClockGuardLE, clock, bound, boolToInt32(strict))
}

// ClockResetConst appends a "clock := value" reset emission.
func (b *Builder) ClockResetConst(clock int32, value int32) *Builder {
	return b.emit(OpClockResetConst, clock, value, 0)
}

// ClockResetClock appends a "target := source" reset emission.
func (b *Builder) ClockResetClock(target, source int32) *Builder {
	return b.emit(OpClockResetClock, target, source, 0)
}

// ClockResetSum appends a "target := source + value" reset emission.
func (b *Builder) ClockResetSum(target, source, value int32) *Builder {
	return b.emit(OpClockResetSum, target, source, value)
}

func boolToInt32(b bool) int32 {
	if b {
		return 1
	}
	return 0
}

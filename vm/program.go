package vm

// Op is one instruction of the reference interpreter's bytecode. The
// instruction set is intentionally tiny — arithmetic/comparison over
// integer variables plus five "emit" opcodes (two clock guards, three
// clock resets) that record a clock constraint or reset into the VM's
// output buffers without touching the
// operand stack. It is sufficient to express the guards, updates and
// invariants used by the specification's own end-to-end scenarios
// (x>=3, x:=0, y>=1, and plain integer predicates/assignments).
type Op int

const (
	OpPushConst    Op = iota // push A
	OpPushVar                // push intval[A]
	OpAdd                    // pop b, pop a, push a+b
	OpSub                    // pop b, pop a, push a-b
	OpMul                    // pop b, pop a, push a*b
	OpGE                     // pop b, pop a, push 1 if a>=b else 0
	OpGT                     // pop b, pop a, push 1 if a>b else 0
	OpLE                     // pop b, pop a, push 1 if a<=b else 0
	OpLT                     // pop b, pop a, push 1 if a<b else 0
	OpEQ                     // pop b, pop a, push 1 if a==b else 0
	OpNE                     // pop b, pop a, push 1 if a!=b else 0
	OpAnd                    // pop b, pop a, push 1 if a!=0 && b!=0
	OpOr                     // pop b, pop a, push 1 if a!=0 || b!=0
	OpNot                    // pop a, push 1 if a==0 else 0
	OpAssign                 // pop v, intval[A] = v, push v
	OpPop                    // drop top of stack (discard an expression-statement's value)
	OpClockGuardGE           // emit clock A >= B (strict iff C != 0), does not touch the stack
	OpClockGuardLE           // emit clock A <= B (strict iff C != 0), does not touch the stack
	OpClockResetConst        // emit "clock A := B", does not touch the stack
	OpClockResetClock        // emit "clock A := clock B", does not touch the stack
	OpClockResetSum          // emit "clock A := clock B + C", does not touch the stack
)

// Instr is one bytecode instruction; the meaning of A, B and C depends on
// Op, documented alongside each constant above.
type Instr struct {
	Op      Op
	A, B, C int32
}

// Program is an opaque sequence of instructions — the unit Run accepts,
// matching spec 6's "bytecode" input exactly in role even though this
// reference interpreter represents it as structured instructions rather
// than a raw byte string.
type Program []Instr

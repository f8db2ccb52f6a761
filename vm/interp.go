package vm

import (
	"github.com/katalvlaran/tchecker-go/dbm"
	"github.com/katalvlaran/tchecker-go/state"
)

// Run evaluates prog against iv, mutating iv in place for any OpAssign it
// executes and appending every clock constraint/reset instruction to
// clkConstraintOut/clkResetOut in program order. It returns false when
// prog fails — by convention, a division-free stack machine can only
// "fail" by running past a guard expression whose final pushed value is
// zero, checked once execution completes (spec 6: "returning non-zero on
// success"). Emitted clock operations are recorded even on an eventual
// false return; callers that care about partial effects should only
// trust the output buffers when Run returns true, per spec 7 ("on
// success, clk_constraint_out and clk_reset_out contain the clock
// operations to apply").
func Run(prog Program, iv *state.Intval, clkConstraintOut *[]dbm.Constraint, clkResetOut *[]dbm.Reset) bool {
	var stack []int32
	push := func(v int32) { stack = append(stack, v) }
	pop := func() int32 {
		n := len(stack) - 1
		v := stack[n]
		stack = stack[:n]
		return v
	}
	boolOf := func(b bool) int32 {
		if b {
			return 1
		}
		return 0
	}

	for _, ins := range prog {
		switch ins.Op {
		case OpPushConst:
			push(ins.A)
		case OpPushVar:
			push(iv.Get(int(ins.A)))
		case OpAdd:
			b, a := pop(), pop()
			push(a + b)
		case OpSub:
			b, a := pop(), pop()
			push(a - b)
		case OpMul:
			b, a := pop(), pop()
			push(a * b)
		case OpGE:
			b, a := pop(), pop()
			push(boolOf(a >= b))
		case OpGT:
			b, a := pop(), pop()
			push(boolOf(a > b))
		case OpLE:
			b, a := pop(), pop()
			push(boolOf(a <= b))
		case OpLT:
			b, a := pop(), pop()
			push(boolOf(a < b))
		case OpEQ:
			b, a := pop(), pop()
			push(boolOf(a == b))
		case OpNE:
			b, a := pop(), pop()
			push(boolOf(a != b))
		case OpAnd:
			b, a := pop(), pop()
			push(boolOf(a != 0 && b != 0))
		case OpOr:
			b, a := pop(), pop()
			push(boolOf(a != 0 || b != 0))
		case OpNot:
			a := pop()
			push(boolOf(a == 0))
		case OpAssign:
			v := pop()
			iv.Set(int(ins.A), v)
			push(v)
		case OpPop:
			pop()
		case OpClockGuardGE:
			*clkConstraintOut = append(*clkConstraintOut, dbm.Constraint{
				I: 0, J: dbm.ClockID(ins.A), Bound: dbm.Bound{Value: -ins.B, Strict: ins.C != 0},
			})
		case OpClockGuardLE:
			*clkConstraintOut = append(*clkConstraintOut, dbm.Constraint{
				I: dbm.ClockID(ins.A), J: 0, Bound: dbm.Bound{Value: ins.B, Strict: ins.C != 0},
			})
		case OpClockResetConst:
			*clkResetOut = append(*clkResetOut, dbm.Reset{Target: dbm.ClockID(ins.A), Source: 0, Value: ins.B})
		case OpClockResetClock:
			*clkResetOut = append(*clkResetOut, dbm.Reset{Target: dbm.ClockID(ins.A), Source: dbm.ClockID(ins.B), Value: 0})
		case OpClockResetSum:
			*clkResetOut = append(*clkResetOut, dbm.Reset{Target: dbm.ClockID(ins.A), Source: dbm.ClockID(ins.B), Value: ins.C})
		}
	}
	if len(stack) == 0 {
		return true // a pure side-effect program (only emits/assigns) trivially succeeds
	}
	return pop() != 0
}

package ndfs

import (
	"github.com/katalvlaran/tchecker-go/explore"
	"github.com/katalvlaran/tchecker-go/state"
	"github.com/katalvlaran/tchecker-go/ts"
)

type color int

const (
	white color = iota
	cyan
	blue
	red
)

// frame is one entry of the outer (blue) DFS's explicit stack: the node
// being explored, its successor vedges and current iteration index, and
// the allred bookkeeping bit (spec 4.6.3).
type frame struct {
	node   *explore.Node
	succs  []state.Vedge
	idx    int
	allRed bool
}

// Run searches tsys for an accepting lasso: a cycle reachable from an
// initial state that passes through a state satisfying accepting. It
// returns Stats.Cycle and, when true, a Node whose State is the cycle's
// closing point (the node whose cyan ancestor formed the lasso).
func Run(tsys *ts.TS, accepting *state.Labels, opts ...explore.Option) (explore.Stats, *explore.Node) {
	o := explore.Build(opts...)
	colorOf := map[*state.State]color{}
	var stats explore.Stats

	for _, edge := range tsys.InitialEdges() {
		status, s, _ := tsys.Initial(edge)
		if status != ts.Ok || colorOf[s] != white {
			continue
		}
		if found, witness := outerDFS(tsys, s, colorOf, accepting, &stats, o); found {
			stats.Cycle = true
			o.Logger.Info().Int("visited", stats.Visited).Msg("ndfs: lasso found")
			return stats, witness
		}
	}
	o.Logger.Info().Int("visited", stats.Visited).Msg("ndfs: no lasso")
	return stats, nil
}

func outerDFS(tsys *ts.TS, root *state.State, colorOf map[*state.State]color, accepting *state.Labels, stats *explore.Stats, o explore.Options) (bool, *explore.Node) {
	colorOf[root] = cyan
	stats.Visited++
	rootNode := explore.NewRoot(root)
	o.Visit(rootNode)
	stack := []*frame{{node: rootNode, succs: tsys.OutgoingEdges(root.Vloc), allRed: true}}

	for len(stack) > 0 {
		top := stack[len(stack)-1]
		if top.idx < len(top.succs) {
			ve := top.succs[top.idx]
			top.idx++
			status, t, tr := tsys.Next(top.node.State, ve)
			if status != ts.Ok {
				o.Logger.Debug().Interface("status", status).Msg("ndfs: transition pruned")
				continue
			}
			o.Logger.Debug().Msg("ndfs: transition taken")
			switch {
			case colorOf[t] == cyan && (top.node.State.Satisfies(accepting) || t.Satisfies(accepting)):
				return true, explore.NewChild(top.node, tr, t)
			case colorOf[t] == white:
				colorOf[t] = cyan
				stats.Visited++
				child := explore.NewChild(top.node, tr, t)
				o.Visit(child)
				stack = append(stack, &frame{node: child, succs: tsys.OutgoingEdges(t.Vloc), allRed: true})
			case colorOf[t] != red:
				top.allRed = false
			}
			continue
		}

		stack = stack[:len(stack)-1]
		switch {
		case top.allRed:
			colorOf[top.node.State] = red
		case top.node.State.Satisfies(accepting):
			if innerDFS(tsys, top.node.State, colorOf) {
				return true, top.node
			}
			colorOf[top.node.State] = red
		default:
			colorOf[top.node.State] = blue
			if len(stack) > 0 {
				stack[len(stack)-1].allRed = false
			}
		}
	}
	return false, nil
}

// innerDFS explores forward from start, recolouring every blue or white
// node it reaches red, and reports a cycle as soon as it reaches a cyan
// node (necessarily still on the outer DFS's active path).
func innerDFS(tsys *ts.TS, start *state.State, colorOf map[*state.State]color) bool {
	visited := map[*state.State]bool{start: true}
	stack := []*state.State{start}
	for len(stack) > 0 {
		n := len(stack) - 1
		s := stack[n]
		stack = stack[:n]
		for _, ve := range tsys.OutgoingEdges(s.Vloc) {
			status, t, _ := tsys.Next(s, ve)
			if status != ts.Ok {
				continue
			}
			if colorOf[t] == cyan {
				return true
			}
			if colorOf[t] == red || visited[t] {
				continue
			}
			colorOf[t] = red
			visited[t] = true
			stack = append(stack, t)
		}
	}
	return false
}

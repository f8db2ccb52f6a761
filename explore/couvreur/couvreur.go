package couvreur

import (
	"github.com/katalvlaran/tchecker-go/explore"
	"github.com/katalvlaran/tchecker-go/state"
	"github.com/katalvlaran/tchecker-go/ts"
)

// rootEntry tracks one still-open SCC candidate on the root stack: the
// dfs number of its root state, whether any member state satisfies the
// accepting predicate, and how many states it currently holds (used to
// tell a genuine cycle from a singleton SCC with no self-loop).
type rootEntry struct {
	idx       int
	accepting bool
	size      int
}

// Run searches tsys for an accepting lasso using SCC collapse: a
// strongly connected component is an accepting lasso witness iff it
// contains a state satisfying accepting and it forms a real cycle.
func Run(tsys *ts.TS, accepting *state.Labels, opts ...explore.Option) (explore.Stats, *explore.Node) {
	o := explore.Build(opts...)
	numbered := map[*state.State]int{}
	onLive := map[*state.State]bool{}
	var live []*state.State
	var rootStack []*rootEntry
	var stats explore.Stats
	var witness *explore.Node
	found := false
	count := 0

	var visit func(node *explore.Node)
	visit = func(node *explore.Node) {
		if found {
			return
		}
		s := node.State
		count++
		numbered[s] = count
		live = append(live, s)
		onLive[s] = true
		rootStack = append(rootStack, &rootEntry{idx: count, accepting: s.Satisfies(accepting), size: 1})
		stats.Visited++
		stats.Stored++
		o.Visit(node)

		selfLoop := false
		for _, ve := range tsys.OutgoingEdges(s.Vloc) {
			status, t, tr := tsys.Next(s, ve)
			if status != ts.Ok {
				o.Logger.Debug().Interface("status", status).Msg("couvreur: transition pruned")
				continue
			}
			o.Logger.Debug().Msg("couvreur: transition taken")
			if t == s {
				selfLoop = true
			}
			switch {
			case numbered[t] == 0:
				visit(explore.NewChild(node, tr, t))
				if found {
					return
				}
			case onLive[t]:
				for len(rootStack) > 1 && rootStack[len(rootStack)-1].idx > numbered[t] {
					top := rootStack[len(rootStack)-1]
					rootStack = rootStack[:len(rootStack)-1]
					below := rootStack[len(rootStack)-1]
					below.accepting = below.accepting || top.accepting
					below.size += top.size
				}
			}
		}

		top := rootStack[len(rootStack)-1]
		if top.idx != numbered[s] {
			return
		}
		if top.accepting && (top.size > 1 || selfLoop) {
			found = true
			witness = node
		}
		rootStack = rootStack[:len(rootStack)-1]
		for {
			n := len(live) - 1
			popped := live[n]
			live = live[:n]
			onLive[popped] = false
			if popped == s {
				break
			}
		}
	}

	for _, edge := range tsys.InitialEdges() {
		status, s, _ := tsys.Initial(edge)
		if status != ts.Ok || numbered[s] != 0 {
			continue
		}
		visit(explore.NewRoot(s))
		if found {
			break
		}
	}

	stats.Cycle = found
	if found {
		o.Logger.Info().Int("visited", stats.Visited).Msg("couvreur: accepting SCC found")
		return stats, witness
	}
	o.Logger.Info().Int("visited", stats.Visited).Msg("couvreur: no accepting SCC")
	return stats, nil
}

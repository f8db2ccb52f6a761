package reach

import (
	"github.com/katalvlaran/tchecker-go/explore"
	"github.com/katalvlaran/tchecker-go/state"
	"github.com/katalvlaran/tchecker-go/ts"
	"github.com/katalvlaran/tchecker-go/waiting"
)

// SearchOrder selects the waiting container's discipline (spec 6: bfs|dfs).
type SearchOrder int

const (
	BFS SearchOrder = iota
	DFS
)

// Run explores tsys breadth/depth-first from every initial edge until a
// node satisfying target is found or the reachable state space is
// exhausted (spec 4.6.1). It returns the accumulated Stats and, when
// Stats.Reachable, the witnessing Node (whose Parent chain is the
// witnessing path).
func Run(tsys *ts.TS, target *state.Labels, order SearchOrder, opts ...explore.Option) (explore.Stats, *explore.Node) {
	o := explore.Build(opts...)
	var cont waiting.Container[*explore.Node]
	if order == DFS {
		cont = waiting.NewLIFO[*explore.Node]()
	} else {
		cont = waiting.NewFIFO[*explore.Node]()
	}

	var stats explore.Stats
	visited := map[*state.State]bool{}

	for _, edge := range tsys.InitialEdges() {
		status, s, _ := tsys.Initial(edge)
		if status != ts.Ok || visited[s] {
			continue
		}
		visited[s] = true
		stats.Stored++
		cont.Push(explore.NewRoot(s))
	}

	for !cont.Empty() {
		node, ok := cont.Pop(nil)
		if !ok {
			break
		}
		stats.Visited++
		o.Visit(node)
		if node.State.Satisfies(target) {
			stats.Reachable = true
			o.Logger.Info().Int("visited", stats.Visited).Int("stored", stats.Stored).Msg("reach: target found")
			return stats, node
		}
		for _, ve := range tsys.OutgoingEdges(node.State.Vloc) {
			status, succ, tr := tsys.Next(node.State, ve)
			if status != ts.Ok {
				o.Logger.Debug().Interface("status", status).Msg("reach: transition pruned")
				continue
			}
			if visited[succ] {
				continue
			}
			visited[succ] = true
			stats.Stored++
			o.Logger.Debug().Msg("reach: transition taken")
			cont.Push(explore.NewChild(node, tr, succ))
		}
	}
	o.Logger.Info().Int("visited", stats.Visited).Int("stored", stats.Stored).Msg("reach: exhausted")
	return stats, nil
}

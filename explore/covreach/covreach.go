package covreach

import (
	"github.com/katalvlaran/tchecker-go/dbm"
	"github.com/katalvlaran/tchecker-go/explore"
	"github.com/katalvlaran/tchecker-go/state"
	"github.com/katalvlaran/tchecker-go/ts"
	"github.com/katalvlaran/tchecker-go/waiting"
)

// Policy selects the subsumption relation applied between a candidate
// successor and a previously stored node (spec 4.6.2).
type Policy int

const (
	Inclusion Policy = iota // plain zone set-inclusion, no abstraction
	ALULocal                // aLU with bound maps local to the subsuming node's vloc
	ALUGlobal                // aLU with bound maps shared across the whole system
	AMLocal                 // aM (L=U) local
	AMGlobal                // aM (L=U) global
)

func (p Policy) needsExtrapolation() bool { return p != Inclusion }

// node is the covreach-local wrapper: an explore.Node plus its
// subsumption activity bit, flipped inactive (never deleted) when a
// later-stored node subsumes it.
type node struct {
	n      *explore.Node
	active bool
}

// SearchOrder selects the waiting container's discipline, same vocabulary
// as package reach.
type SearchOrder int

const (
	BFS SearchOrder = iota
	DFS
)

// Run explores tsys with covering subsumption under policy, returning the
// usual Stats (Covered counts every node retired by subsumption, whether
// that happens by invalidating a previously stored node or by discarding
// a freshly computed successor outright) and, when Stats.Reachable, the
// witnessing node.
//
// Soundness (spec 4.6.2) requires every zone be closed under its
// extrapolation before being compared under aLU/aM; Run panics if policy
// needs extrapolation but tsys.Policy.Extrapolation is NoExtra, since that
// is a construction-time misconfiguration, not an exploration-time one.
func Run(tsys *ts.TS, target *state.Labels, order SearchOrder, policy Policy, opts ...explore.Option) (explore.Stats, *explore.Node) {
	if policy.needsExtrapolation() && tsys.Policy.Extrapolation == ts.NoExtra {
		panic("covreach: aLU/aM subsumption policy requires a matching extrapolation policy on the TS")
	}
	o := explore.Build(opts...)

	var cont waiting.Container[*node]
	if order == DFS {
		cont = waiting.NewLIFO[*node]()
	} else {
		cont = waiting.NewFIFO[*node]()
	}

	var stats explore.Stats
	var stored []*node
	byState := map[*state.State]*node{}

	admit := func(n *explore.Node) *node {
		cn := &node{n: n, active: true}
		stored = append(stored, cn)
		byState[n.State] = cn
		stats.Stored++
		for _, other := range stored[:len(stored)-1] {
			if other.active && subsumes(tsys, policy, cn.n.State, other.n.State) {
				other.active = false
				stats.Covered++
			}
		}
		return cn
	}

	isActive := func(cn *node) bool { return cn.active }

	for _, edge := range tsys.InitialEdges() {
		status, s, _ := tsys.Initial(edge)
		if status != ts.Ok {
			continue
		}
		if _, dup := byState[s]; dup {
			continue
		}
		cn := admit(explore.NewRoot(s))
		cont.Push(cn)
	}

	for !cont.Empty() {
		cn, ok := cont.Pop(isActive)
		if !ok {
			break
		}
		stats.Visited++
		o.Visit(cn.n)
		if cn.n.State.Satisfies(target) {
			stats.Reachable = true
			o.Logger.Info().Int("visited", stats.Visited).Int("covered", stats.Covered).Msg("covreach: target found")
			return stats, cn.n
		}
		for _, ve := range tsys.OutgoingEdges(cn.n.State.Vloc) {
			status, succ, tr := tsys.Next(cn.n.State, ve)
			if status != ts.Ok {
				o.Logger.Debug().Interface("status", status).Msg("covreach: transition pruned")
				continue
			}
			if _, dup := byState[succ]; dup {
				continue
			}
			if subsumedByActive(tsys, policy, succ, stored) {
				stats.Covered++
				o.Logger.Debug().Msg("covreach: successor subsumed")
				continue
			}
			child := admit(explore.NewChild(cn.n, tr, succ))
			o.Logger.Debug().Msg("covreach: transition taken")
			cont.Push(child)
		}
	}
	o.Logger.Info().Int("visited", stats.Visited).Int("covered", stats.Covered).Msg("covreach: exhausted")
	return stats, nil
}

func subsumedByActive(tsys *ts.TS, policy Policy, candidate *state.State, stored []*node) bool {
	for _, cn := range stored {
		if cn.active && subsumes(tsys, policy, cn.n.State, candidate) {
			return true
		}
	}
	return false
}

// subsumes reports whether m subsumes n, i.e. n's valuations are included
// in aX(m)'s, for the discrete state the two states share. States with
// differing vloc or intval are never comparable.
func subsumes(tsys *ts.TS, policy Policy, m, n *state.State) bool {
	if !m.Vloc.Equal(n.Vloc) || !m.Intval.Equal(n.Intval) {
		return false
	}
	switch policy {
	case Inclusion:
		return n.Zone.Le(m.Zone)
	case ALULocal:
		l, u := ts.LocalBounds(tsys.Sys, m.Vloc, tsys.NumClocks())
		return n.Zone.IsALULe(m.Zone, l, u)
	case ALUGlobal:
		l, u := ts.GlobalBounds(tsys.Sys, tsys.NumClocks())
		return n.Zone.IsALULe(m.Zone, l, u)
	case AMLocal:
		l, u := ts.LocalBounds(tsys.Sys, m.Vloc, tsys.NumClocks())
		return n.Zone.IsAMLe(m.Zone, maxBoundMap(l, u))
	case AMGlobal:
		l, u := ts.GlobalBounds(tsys.Sys, tsys.NumClocks())
		return n.Zone.IsAMLe(m.Zone, maxBoundMap(l, u))
	default:
		return false
	}
}

func maxBoundMap(l, u dbm.BoundMap) dbm.BoundMap {
	m := make(dbm.BoundMap, len(l))
	for i := range m {
		switch {
		case l[i] == dbm.NoBound:
			m[i] = u[i]
		case u[i] == dbm.NoBound:
			m[i] = l[i]
		case l[i] > u[i]:
			m[i] = l[i]
		default:
			m[i] = u[i]
		}
	}
	return m
}

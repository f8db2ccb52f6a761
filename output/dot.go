package output

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/tchecker-go/dbm"
	"github.com/katalvlaran/tchecker-go/explore"
	"github.com/katalvlaran/tchecker-go/state"
	"github.com/katalvlaran/tchecker-go/system"
)

// Dot renders nodes (and, transitively, the edge from each node's Parent)
// as a GraphViz digraph named name, in the node/edge attribute form of
// spec 6: "Node lines: <name> [key="value", ...] ... Edge lines: src ->
// tgt [vedge="...", guard="...", reset="..."]".
func Dot(w io.Writer, name string, sys *system.System, nodes []*explore.Node) error {
	ids := assignIDs(nodes)

	if _, err := fmt.Fprintf(w, "digraph %s {\n", name); err != nil {
		return err
	}
	for _, n := range nodes {
		if err := writeNode(w, ids[n], sys, n); err != nil {
			return err
		}
	}
	for _, n := range nodes {
		if n.Parent == nil {
			continue
		}
		parentID, ok := ids[n.Parent]
		if !ok {
			continue
		}
		if err := writeEdge(w, parentID, ids[n], n); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, "}")
	return err
}

func assignIDs(nodes []*explore.Node) map[*explore.Node]string {
	ids := make(map[*explore.Node]string, len(nodes))
	for i, n := range nodes {
		ids[n] = fmt.Sprintf("n%d", i)
	}
	return ids
}

func writeNode(w io.Writer, id string, sys *system.System, n *explore.Node) error {
	attrs := []string{
		fmt.Sprintf("vloc=%q", vlocString(sys, n.State.Vloc)),
		fmt.Sprintf("intval=%q", n.State.Intval.String()),
		fmt.Sprintf("zone=%q", n.State.Zone.String()),
	}
	if n.State.Initial {
		attrs = append(attrs, `initial="true"`)
	}
	_, err := fmt.Fprintf(w, "  %s [%s]\n", id, strings.Join(attrs, ", "))
	return err
}

func writeEdge(w io.Writer, src, tgt string, n *explore.Node) error {
	attrs := []string{
		fmt.Sprintf("vedge=%q", vedgeString(n.Trans.Vedge)),
		fmt.Sprintf("guard=%q", constraintsString(n.Trans.Guard)),
		fmt.Sprintf("reset=%q", resetsString(n.Trans.Reset)),
	}
	_, err := fmt.Fprintf(w, "  %s -> %s [%s]\n", src, tgt, strings.Join(attrs, ", "))
	return err
}

// vlocString renders each process's current location by name, e.g.
// "P@a, Q@lq".
func vlocString(sys *system.System, v *state.Vloc) string {
	parts := make([]string, v.Len())
	for pid := 0; pid < v.Len(); pid++ {
		loc := sys.Location(v.Get(pid))
		parts[pid] = sys.Processes[pid].Name + "@" + loc.Name
	}
	return strings.Join(parts, ", ")
}

func vedgeString(ve state.Vedge) string {
	parts := make([]string, 0, len(ve))
	for pid, eid := range ve {
		if eid == state.NoEdge {
			continue
		}
		parts = append(parts, strconv.Itoa(pid)+":"+strconv.Itoa(int(eid)))
	}
	return strings.Join(parts, ", ")
}

func constraintsString(cs []dbm.Constraint) string {
	parts := make([]string, len(cs))
	for i, c := range cs {
		parts[i] = constraintString(c)
	}
	return strings.Join(parts, " && ")
}

func constraintString(c dbm.Constraint) string {
	op := "<="
	if c.Bound.Strict {
		op = "<"
	}
	return fmt.Sprintf("x%d-x%d%s%d", c.I, c.J, op, c.Bound.Value)
}

func resetsString(rs []dbm.Reset) string {
	parts := make([]string, len(rs))
	for i, r := range rs {
		switch {
		case r.IsToConstant():
			parts[i] = fmt.Sprintf("x%d:=%d", r.Target, r.Value)
		case r.Value == 0:
			parts[i] = fmt.Sprintf("x%d:=x%d", r.Target, r.Source)
		default:
			parts[i] = fmt.Sprintf("x%d:=x%d+%d", r.Target, r.Source, r.Value)
		}
	}
	return strings.Join(parts, ", ")
}

package output

import (
	"fmt"
	"io"

	"github.com/katalvlaran/tchecker-go/explore"
	"github.com/katalvlaran/tchecker-go/system"
)

// Raw emits one line per node, a line-oriented machine-readable dump
// separate from Dot's GraphViz rendering (spec 6's "output format
// dot|raw"), grounded on the original's separation of a display helper
// from the algorithm core: "<id> vloc=... intval=... zone=... [initial]".
func Raw(w io.Writer, sys *system.System, nodes []*explore.Node) error {
	ids := assignIDs(nodes)
	for _, n := range nodes {
		line := fmt.Sprintf("%s vloc=%s intval=%s zone=%s",
			ids[n], vlocString(sys, n.State.Vloc), n.State.Intval.String(), n.State.Zone.String())
		if n.State.Initial {
			line += " initial"
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

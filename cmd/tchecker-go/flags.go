package main

import (
	"fmt"

	"github.com/katalvlaran/tchecker-go/config"
	"github.com/katalvlaran/tchecker-go/explore/covreach"
	"github.com/katalvlaran/tchecker-go/ts"
)

// runFlags holds the flag values shared by explore and dot; each
// command parses its own cobra flags into one of these, then calls
// resolveOptions to turn it into []config.Option.
type runFlags struct {
	system        string
	algorithm     string
	semantics     string
	extrapolation string
	scope         string
	order         string
	covering      string
	labels        []string
	blockSize     int
	tableSize     int
}

func resolveOptions(f runFlags) ([]config.Option, error) {
	algo, err := parseAlgorithm(f.algorithm)
	if err != nil {
		return nil, err
	}
	semantics, err := parseSemantics(f.semantics)
	if err != nil {
		return nil, err
	}
	extra, err := parseExtrapolation(f.extrapolation)
	if err != nil {
		return nil, err
	}
	scope, err := parseScope(f.scope)
	if err != nil {
		return nil, err
	}
	order, err := parseOrder(f.order)
	if err != nil {
		return nil, err
	}
	covering, err := parseCovering(f.covering)
	if err != nil {
		return nil, err
	}
	return []config.Option{
		config.WithAlgorithm(algo),
		config.WithSemantics(semantics),
		config.WithExtrapolation(extra),
		config.WithScope(scope),
		config.WithSearchOrder(order),
		config.WithCoveringPolicy(covering),
		config.WithLabels(f.labels...),
		config.WithBlockSize(f.blockSize),
		config.WithTableSize(f.tableSize),
		config.WithLogger(logger),
	}, nil
}

func parseAlgorithm(s string) (config.Algorithm, error) {
	switch s {
	case "reach", "":
		return config.Reach, nil
	case "covreach":
		return config.Covreach, nil
	case "ndfs":
		return config.NDFS, nil
	case "couvreur":
		return config.Couvreur, nil
	default:
		return 0, fmt.Errorf("%w: %q", errUnknownAlgorithm, s)
	}
}

func parseSemantics(s string) (ts.Semantics, error) {
	switch s {
	case "standard", "":
		return ts.Standard, nil
	case "elapsed":
		return ts.Elapsed, nil
	default:
		return 0, fmt.Errorf("tchecker-go: unknown semantics %q", s)
	}
}

func parseExtrapolation(s string) (ts.ExtrapolationKind, error) {
	switch s {
	case "none", "":
		return ts.NoExtra, nil
	case "extraM":
		return ts.ExtraM, nil
	case "extraM+":
		return ts.ExtraMPlus, nil
	case "extraLU":
		return ts.ExtraLU, nil
	case "extraLU+":
		return ts.ExtraLUPlus, nil
	default:
		return 0, fmt.Errorf("tchecker-go: unknown extrapolation %q", s)
	}
}

func parseScope(s string) (ts.Scope, error) {
	switch s {
	case "global", "":
		return ts.Global, nil
	case "local":
		return ts.Local, nil
	default:
		return 0, fmt.Errorf("tchecker-go: unknown scope %q", s)
	}
}

func parseOrder(s string) (config.SearchOrder, error) {
	switch s {
	case "bfs", "":
		return config.BFS, nil
	case "dfs":
		return config.DFS, nil
	default:
		return 0, fmt.Errorf("tchecker-go: unknown search order %q", s)
	}
}

func parseCovering(s string) (covreach.Policy, error) {
	switch s {
	case "inclusion", "":
		return covreach.Inclusion, nil
	case "aLUl":
		return covreach.ALULocal, nil
	case "aLUg":
		return covreach.ALUGlobal, nil
	case "aMl":
		return covreach.AMLocal, nil
	case "aMg":
		return covreach.AMGlobal, nil
	default:
		return 0, fmt.Errorf("%w: %q", errUnknownPolicy, s)
	}
}

func addRunFlags(fs flagSet, f *runFlags) {
	fs.StringVar(&f.system, "system", "point", "builtin system to explore (point|delay-guard|committed|alu-loop|lasso|chain)")
	fs.StringVar(&f.algorithm, "algorithm", "reach", "reach|covreach|ndfs|couvreur")
	fs.StringVar(&f.semantics, "semantics", "standard", "standard|elapsed")
	fs.StringVar(&f.extrapolation, "extrapolation", "none", "none|extraM|extraM+|extraLU|extraLU+")
	fs.StringVar(&f.scope, "scope", "global", "global|local")
	fs.StringVar(&f.order, "order", "bfs", "bfs|dfs")
	fs.StringVar(&f.covering, "covering", "inclusion", "inclusion|aLUl|aLUg|aMl|aMg")
	fs.StringSliceVar(&f.labels, "labels", nil, "accepting-label names the algorithm searches for")
	fs.IntVar(&f.blockSize, "block-size", 64, "pool allocation block size")
	fs.IntVar(&f.tableSize, "table-size", 1024, "initial hash-cons table size hint")
}

// flagSet is the subset of *pflag.FlagSet addRunFlags needs, so it can
// be called against either explore's or dot's *cobra.Command.Flags().
type flagSet interface {
	StringVar(p *string, name string, value string, usage string)
	StringSliceVar(p *[]string, name string, value []string, usage string)
	IntVar(p *int, name string, value int, usage string)
}

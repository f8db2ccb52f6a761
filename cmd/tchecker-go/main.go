// Command tchecker-go explores a timed-automata transition system with
// one of four algorithms (reach, covreach, ndfs, couvreur) and reports
// its statistics or renders the explored fragment as GraphViz/raw text.
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		logger.Error().Err(err).Msg("tchecker-go: failed")
		os.Exit(1)
	}
}

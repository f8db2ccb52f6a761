// Package ndfs implements the Gaiser-Schwoon nested depth-first search
// (spec 4.6.3): a single forward pass colours every discovered state
// white/cyan/blue/red while tracking, per outer-stack frame, whether
// every successor explored so far is already red; a triggering accepting
// node with a non-all-red frame spawns an inner DFS that finishes
// colouring its reachable subgraph red, reporting a cycle if it ever
// meets a cyan node.
package ndfs

// Package output renders an explored state-space fragment in the two
// peripheral formats named by spec 6: Dot emits GraphViz node/edge lines
// with the same attribute shape as the original's graph output module;
// Raw emits a line-oriented, machine-readable dump, separating the
// rendering concern from the exploration algorithms entirely (spec 6,
// grounded on the original's display/algorithm split).
package output

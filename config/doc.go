// Package config assembles an exploration run from functional options,
// the way the teacher's builder package assembles a graph from
// BuilderOption calls: a private config struct with sane defaults,
// mutated in order by each Option, then resolved into the concrete
// ts.TS and algorithm call spec 6's "algorithm|semantics|extrapolation|
// search order|covering policy" flags describe.
package config

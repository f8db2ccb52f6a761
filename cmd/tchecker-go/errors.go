package main

import "errors"

var (
	errUnknownSystem    = errors.New("tchecker-go: unknown system")
	errUnknownAlgorithm = errors.New("tchecker-go: unknown algorithm")
	errUnknownPolicy    = errors.New("tchecker-go: unknown covering policy")
	errUnknownFormat    = errors.New("tchecker-go: unknown output format")
)

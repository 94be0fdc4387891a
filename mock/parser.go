// Package mock provides test doubles for foldview interfaces.
package mock

import (
	"io"

	"github.com/fwojciec/foldview"
)

// Compile-time interface verification.
var _ foldview.Parser = (*Parser)(nil)

// Parser is a mock implementation of foldview.Parser.
type Parser struct {
	ParseFn func(r io.Reader) (*foldview.Diff, error)
}

func (p *Parser) Parse(r io.Reader) (*foldview.Diff, error) {
	return p.ParseFn(r)
}

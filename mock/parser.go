package mock

import "github.com/jkoval/driftex"

// Parser is a mock implementation of driftex.Parser.
type Parser[T any] struct {
	ParseFn    func(input driftex.ParseInput) (T, bool)
	ValidateFn func(record T) bool
}

func (p *Parser[T]) Parse(input driftex.ParseInput) (T, bool) {
	return p.ParseFn(input)
}

func (p *Parser[T]) Validate(record T) bool {
	return p.ValidateFn(record)
}

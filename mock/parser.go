package mock

import "github.com/kalyug-papa-bolo/vahan"

var _ vahan.Parser = (*Parser)(nil)

// Parser is a mock implementation of vahan.Parser.
type Parser struct {
	ParseFn func(html string) (vahan.Document, error)
}

func (p *Parser) Parse(html string) (vahan.Document, error) {
	return p.ParseFn(html)
}

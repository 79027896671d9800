package mock

import "github.com/fwojciec/docnav"

var _ docnav.Converter = (*Converter)(nil)

// Converter is a mock implementation of docnav.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}

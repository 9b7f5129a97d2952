package mock

import "github.com/DS123-ally/websummary"

var _ websummary.Converter = (*Converter)(nil)

// Converter is a mock implementation of websummary.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}

package mock

import (
	"context"

	"github.com/DS123-ally/websummary"
)

var _ websummary.Loader = (*Loader)(nil)

// Loader is a mock implementation of websummary.Loader.
type Loader struct {
	LoadFn func(ctx context.Context, url string) ([]*websummary.Document, error)
}

func (l *Loader) Load(ctx context.Context, url string) ([]*websummary.Document, error) {
	return l.LoadFn(ctx, url)
}

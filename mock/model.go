package mock

import (
	"context"

	"github.com/DS123-ally/websummary"
)

var _ websummary.Model = (*Model)(nil)

// Model is a mock implementation of websummary.Model.
type Model struct {
	CompleteFn func(ctx context.Context, prompt string) (string, error)
	NameFn     func() string
}

func (m *Model) Complete(ctx context.Context, prompt string) (string, error) {
	return m.CompleteFn(ctx, prompt)
}

func (m *Model) Name() string {
	if m.NameFn == nil {
		return "mock-model"
	}
	return m.NameFn()
}

package mock

import (
	"context"

	"github.com/kalyug-papa-bolo/vahan"
)

var _ vahan.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of vahan.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, rc string) (string, error)
	CloseFn func() error
}

func (f *Fetcher) Fetch(ctx context.Context, rc string) (string, error) {
	return f.FetchFn(ctx, rc)
}

func (f *Fetcher) Close() error {
	if f.CloseFn == nil {
		return nil
	}
	return f.CloseFn()
}

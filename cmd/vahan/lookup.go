package main

import (
	"encoding/json"
	"fmt"

	"github.com/kalyug-papa-bolo/vahan"
	"golang.org/x/sync/errgroup"
)

// Run executes the lookup command: fetch every RC concurrently and
// print the normalized records to stdout in argument order.
func (c *LookupCmd) Run(deps *Dependencies) error {
	results := make([]map[string]any, len(c.RCs))

	g, ctx := errgroup.WithContext(deps.Ctx)
	g.SetLimit(c.Concurrency)

	for i, rc := range c.RCs {
		i, rc := i, rc
		g.Go(func() error {
			html, err := deps.Fetcher.Fetch(ctx, rc)
			if err != nil {
				// A failed fetch becomes an inline error record, the
				// same shape the API returns; other lookups continue.
				results[i] = map[string]any{
					"registration_number": vahan.CanonicalRC(rc),
					"error":               vahan.ErrorMessage(err),
					"powered_by":          deps.Config.Brand,
				}
				return nil
			}

			doc, err := deps.Parser.Parse(html)
			if err != nil {
				return err
			}

			results[i] = vahan.Normalize(vahan.Assemble(vahan.Extract(doc, rc), deps.Config.Brand))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	enc := json.NewEncoder(deps.Stdout)
	enc.SetIndent("", "  ")
	for _, record := range results {
		if err := enc.Encode(record); err != nil {
			return fmt.Errorf("failed to encode record: %w", err)
		}
	}
	return nil
}

package session

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// noContentSentinel is the exact signal the document derivation emits for
// vacuous transcripts. Compared case-sensitively after trimming.
const noContentSentinel = "NO CONTENT AVAILABLE"

// noContentMessage is the fixed substitute returned to callers when the
// content gate trips.
const noContentMessage = "No coherent content was detected in this session."

// derivations holds the four artifacts produced from one transcript.
type derivations struct {
	markdown    string
	title       string
	description string
	embedding   []float32
}

// derive issues the four derivation requests concurrently and joins on all
// of them. The only ordering guarantee is that every request completes
// before derive returns. If any request fails, the first error is returned,
// the shared context is canceled, and no partial result escapes.
func (s *Service) derive(ctx context.Context, sessionType, transcript string) (derivations, error) {
	var d derivations

	// Each goroutine writes a distinct field, so no locking is needed
	// before the Wait barrier.
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		d.markdown, err = s.llm.Generate(ctx, documentPrompt(sessionType), transcript)
		return err
	})
	g.Go(func() error {
		var err error
		d.title, err = s.llm.Generate(ctx, titlePrompt, transcript)
		return err
	})
	g.Go(func() error {
		var err error
		d.description, err = s.llm.Generate(ctx, descriptionPrompt, transcript)
		return err
	})
	g.Go(func() error {
		// The full transcript is embedded so search captures complete context.
		var err error
		d.embedding, err = s.llm.Embed(ctx, transcript)
		return err
	})

	if err := g.Wait(); err != nil {
		return derivations{}, fmt.Errorf("derive session artifacts: %w", err)
	}
	return d, nil
}

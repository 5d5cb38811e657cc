package service

import (
	"context"
	"errors"
	"io"

	"github.com/cloudwego/eino/schema"
	"github.com/rs/zerolog/log"

	"codeweaver/internal/prompt"
)

// Generator opens a streaming completion call for one request.
// Implemented by ai.GenerationChain.
type Generator interface {
	Stream(ctx context.Context, description, fileText string) (*schema.StreamReader[*schema.Message], error)
}

// GenerationService adapts the upstream fragment stream for the transport
// layer. Upstream failures never surface as errors: they are folded into
// the stream as a single diagnostic fragment so the HTTP response still
// terminates normally.
type GenerationService struct {
	gen  Generator
	tmpl prompt.Template
}

// NewGenerationService creates a generation service for one endpoint binding.
func NewGenerationService(gen Generator, tmpl prompt.Template) *GenerationService {
	return &GenerationService{
		gen:  gen,
		tmpl: tmpl,
	}
}

// Stream opens exactly one upstream call and returns a channel of text
// fragments in arrival order. The channel closes when the upstream stream
// ends, after an error (diagnostic fragment last), or when ctx is done.
func (s *GenerationService) Stream(ctx context.Context, description, fileText string) <-chan string {
	ch := make(chan string, 8)

	go func() {
		defer close(ch)

		sr, err := s.gen.Stream(ctx, description, fileText)
		if err != nil {
			log.Error().Err(err).Msg("failed to open upstream stream")
			s.send(ctx, ch, s.tmpl.FormatError(err))
			return
		}
		defer sr.Close()

		for {
			msg, err := sr.Recv()
			if errors.Is(err, io.EOF) {
				return
			}
			if err != nil {
				// Caller gone: nobody left to read a diagnostic.
				if ctx.Err() != nil {
					return
				}
				log.Error().Err(err).Msg("upstream stream failed")
				s.send(ctx, ch, s.tmpl.FormatError(err))
				return
			}
			if msg.Content == "" {
				continue
			}
			if !s.send(ctx, ch, msg.Content) {
				return
			}
		}
	}()

	return ch
}

// send forwards one fragment, giving up if the request context ends first.
func (s *GenerationService) send(ctx context.Context, ch chan<- string, fragment string) bool {
	select {
	case <-ctx.Done():
		return false
	case ch <- fragment:
		return true
	}
}

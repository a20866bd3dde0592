package console

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"treehouse-guestlist/internal/handler"
)

const prompt = "Hello, what's your name? (Leave empty and press ENTER to quit)"

// NameHandler handles one normalized name per iteration
type NameHandler interface {
	HandleName(name string) (handler.Outcome, error)
}

// Session drives the read-evaluate-print loop at the treehouse door
type Session struct {
	reader  *Reader
	out     io.Writer
	handler NameHandler
	log     zerolog.Logger
}

// NewSession creates a session reading names from in and writing prompts to out
func NewSession(in io.Reader, out io.Writer, h NameHandler, log zerolog.Logger) *Session {
	return &Session{
		reader:  NewReader(in),
		out:     out,
		handler: h,
		log:     log.With().Str("component", "console").Logger(),
	}
}

// Run loops until an empty line, the end of input, or ctx is done.
// Read failures are returned instead of aborting the process.
func (s *Session) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		if _, err := fmt.Fprintln(s.out, prompt); err != nil {
			return fmt.Errorf("failed to write prompt: %w", err)
		}

		name, err := s.reader.ReadName()
		if errors.Is(err, io.EOF) {
			s.log.Debug().Msg("End of input")
			return nil
		}
		if err != nil {
			s.log.Error().Err(err).Msg("Error reading name")
			return err
		}

		outcome, err := s.handler.HandleName(name)
		if err != nil {
			return err
		}
		if outcome == handler.OutcomeQuit {
			return nil
		}
	}
}

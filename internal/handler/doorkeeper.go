package handler

import (
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"treehouse-guestlist/internal/models"
	"treehouse-guestlist/internal/registry"
)

// Outcome tells the caller what happened to a name at the door
type Outcome int

const (
	OutcomeQuit Outcome = iota
	OutcomeGreeted
	OutcomeRegistered
)

// DrinkingAge is the age below which visitors are not served alcohol
const DrinkingAge = 21

type DoorKeeper struct {
	registry *registry.Registry
	out      io.Writer
	log      zerolog.Logger
}

// NewDoorKeeper creates a door keeper writing greetings to out
func NewDoorKeeper(reg *registry.Registry, out io.Writer, log zerolog.Logger) *DoorKeeper {
	return &DoorKeeper{
		registry: reg,
		out:      out,
		log:      log.With().Str("component", "doorkeeper").Logger(),
	}
}

// HandleName classifies an already normalized name and greets or registers it.
// An empty name is the signal to stop and leaves the registry untouched.
func (d *DoorKeeper) HandleName(name string) (Outcome, error) {
	if name == "" {
		return OutcomeQuit, nil
	}

	visitor, err := d.registry.Classify(name)
	if err != nil {
		return OutcomeQuit, fmt.Errorf("failed to classify visitor: %w", err)
	}

	if visitor != nil {
		d.log.Debug().Str("name", name).Str("action", string(visitor.Action.Kind())).Msg("Known visitor")
		return OutcomeGreeted, d.Greet(*visitor)
	}

	if _, err := d.registry.RegisterUnknown(name); err != nil {
		return OutcomeQuit, fmt.Errorf("failed to register visitor: %w", err)
	}
	d.log.Info().Str("name", name).Msg("Visitor put on probation")

	if _, err := fmt.Fprintf(d.out, "%s is not on the visitor list.\n", name); err != nil {
		return OutcomeQuit, fmt.Errorf("failed to write: %w", err)
	}

	return OutcomeRegistered, nil
}

// Greet writes the greeting lines for v
func (d *DoorKeeper) Greet(v models.Visitor) error {
	g := &greeting{out: d.out, visitor: v}
	v.Action.Dispatch(g)
	if g.err != nil {
		return fmt.Errorf("failed to greet %s: %w", v.Name, g.err)
	}
	return nil
}

// greeting implements models.ActionHandler for one visitor
type greeting struct {
	out     io.Writer
	visitor models.Visitor
	err     error
}

func (g *greeting) Accept() {
	g.writef("Welcome to the treehouse, %s", g.visitor.Name)
}

func (g *greeting) AcceptWithNote(note string) {
	g.writef("Welcome to the treehouse, %s", g.visitor.Name)
	g.writef("%s", note)
	if g.visitor.Age < DrinkingAge {
		g.writef("Do not serve alcohol to %s", g.visitor.Name)
	}
}

func (g *greeting) Refuse() {
	g.writef("Do not allow %s in!", g.visitor.Name)
}

func (g *greeting) Probation() {
	g.writef("%s is now a probationary member", g.visitor.Name)
}

func (g *greeting) writef(format string, args ...any) {
	if g.err != nil {
		return
	}
	_, g.err = fmt.Fprintf(g.out, format+"\n", args...)
}

var _ models.ActionHandler = (*greeting)(nil)

// Package navigator drives the explorer dialogue: choose a subclass, then one of
// its direct superclasses, then an explanation of why the subsumption holds.
package navigator

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"

	"github.com/cognicore/ontoexplain/pkg/ontoexplain/explain"
	"github.com/cognicore/ontoexplain/pkg/ontoexplain/internalerr"
	"github.com/cognicore/ontoexplain/pkg/ontoexplain/owl"
	"github.com/cognicore/ontoexplain/pkg/ontoexplain/present"
	"github.com/cognicore/ontoexplain/pkg/ontoexplain/reasoner"
	"github.com/cognicore/ontoexplain/pkg/ontoexplain/render"
	"github.com/cognicore/ontoexplain/pkg/ontoexplain/store"
)

// Options configures a Navigator
type Options struct {
	Store     store.Store
	Reasoner  reasoner.Reasoner
	Generator explain.Generator
	Renderer  render.Renderer
	Presenter *present.Presenter
	Logger    *zap.Logger
}

// Navigator is the dialogue state machine. It is not safe for concurrent use.
type Navigator struct {
	store     store.Store
	reasoner  reasoner.Reasoner
	generator explain.Generator
	renderer  render.Renderer
	out       *present.Presenter
	logger    *zap.Logger

	state        State
	sel          Selection
	classes      present.IndexedList
	superclasses present.IndexedList
	done         bool
}

// New creates a navigator. Store, Reasoner, Generator and Presenter are required.
func New(opts Options) (*Navigator, error) {
	if opts.Store == nil || opts.Reasoner == nil || opts.Generator == nil || opts.Presenter == nil {
		return nil, fmt.Errorf("navigator: store, reasoner, generator and presenter are required")
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Navigator{
		store:     opts.Store,
		reasoner:  opts.Reasoner,
		generator: opts.Generator,
		renderer:  opts.Renderer,
		out:       opts.Presenter,
		logger:    logger.With(zap.String("session", ulid.Make().String())),
		state:     ChooseSubclass,
	}, nil
}

// CurrentState returns the state awaiting input
func (n *Navigator) CurrentState() State { return n.state }

// Selection returns the choices made so far
func (n *Navigator) Selection() Selection { return n.sel }

// Start loads the class listing and displays it
func (n *Navigator) Start(ctx context.Context) error {
	classes, err := n.store.Classes(ctx)
	if err != nil {
		n.fail("list classes", err)
		return fmt.Errorf("%w: list classes: %v", internalerr.ErrCollaborator, err)
	}
	n.classes = present.NewIndexedList(classes)
	n.state = ChooseSubclass
	n.sel = Selection{}
	n.done = false
	n.logger.Debug("session started", zap.Int("classes", n.classes.Len()))
	n.out.SubclassListing(n.classes)
	return nil
}

// Run feeds lines from in to HandleInput until the dialogue terminates or input
// ends. Lines have no length limit; an oversized line is just another invalid
// selection.
func (n *Navigator) Run(ctx context.Context, in io.Reader) error {
	if err := n.Start(ctx); err != nil {
		return err
	}
	r := bufio.NewReader(in)
	for {
		line, err := r.ReadString('\n')
		if line != "" {
			if out := n.HandleInput(ctx, strings.TrimRight(line, "\r\n")); out.Kind == Terminate {
				return nil
			}
		}
		if errors.Is(err, io.EOF) {
			n.logger.Debug("input closed", zap.Stringer("state", n.state))
			return nil
		}
		if err != nil {
			return err
		}
	}
}

// HandleInput applies one line of user input
func (n *Navigator) HandleInput(ctx context.Context, text string) Outcome {
	if n.done {
		return Outcome{Kind: Terminate, State: n.state}
	}
	cmd := strings.ToLower(strings.TrimSpace(text))

	switch n.state {
	case ChooseSubclass:
		return n.handleSubclass(ctx, cmd)
	case ChooseSuperclass:
		return n.handleSuperclass(cmd)
	case ChooseExplanationType:
		return n.handleExplanationType(ctx, cmd)
	case ShowExplanation:
		return n.handleShowExplanation(cmd)
	default:
		panic(fmt.Sprintf("navigator: unknown state %d", n.state))
	}
}

func (n *Navigator) handleSubclass(ctx context.Context, cmd string) Outcome {
	if cmd == "q" {
		return n.terminate()
	}
	c, ok := pick(n.classes, cmd)
	if !ok {
		n.logger.Debug("invalid selection",
			zap.Error(fmt.Errorf("%w: %q", internalerr.ErrInvalidSelection, clip(cmd))),
			zap.Stringer("state", n.state))
		n.out.InvalidSelection(n.classes.Len())
		n.out.SubclassListing(n.classes)
		return Outcome{Kind: Stay, State: n.state}
	}

	n.sel = n.sel.WithSubclass(c)
	n.out.ChosenSubclass(c)

	supers, err := n.reasoner.DirectSuperclasses(ctx, c)
	if err != nil {
		n.fail("direct superclasses", err, zap.String("class", string(c.IRI)))
		n.sel = n.sel.Cleared()
		n.out.SubclassListing(n.classes)
		return n.transition(ChooseSubclass)
	}
	n.superclasses = present.NewIndexedList(supers)
	n.out.SuperclassListing(c, n.superclasses)
	return n.transition(ChooseSuperclass)
}

func (n *Navigator) handleSuperclass(cmd string) Outcome {
	switch cmd {
	case "b":
		n.sel = n.sel.ClearSubclass()
		n.out.SubclassListing(n.classes)
		return n.transition(ChooseSubclass)
	case "q":
		return n.terminate()
	}

	c, ok := pick(n.superclasses, cmd)
	if !ok {
		n.logger.Debug("invalid selection",
			zap.Error(fmt.Errorf("%w: %q", internalerr.ErrInvalidSelection, clip(cmd))),
			zap.Stringer("state", n.state))
		n.out.InvalidSelection(n.superclasses.Len())
		return Outcome{Kind: Stay, State: n.state}
	}
	n.sel = n.sel.WithSuperclass(c)
	n.out.ChosenSuperclass(c)
	n.out.ExplanationMenu()
	return n.transition(ChooseExplanationType)
}

func (n *Navigator) handleExplanationType(ctx context.Context, cmd string) Outcome {
	switch cmd {
	case "b":
		n.sel = n.sel.ClearSuperclass()
		sub, _ := n.sel.Subclass()
		n.out.SuperclassListing(sub, n.superclasses)
		return n.transition(ChooseSuperclass)
	case "q":
		return n.terminate()
	case "1", "2":
		full := cmd == "2"
		n.out.ChosenExplanation(full)
		if err := n.explain(ctx, full); err != nil {
			n.fail("explain", err, zap.Bool("full", full))
		}
	default:
		// Anything else falls through to the post-display prompt with the menu
		// not shown again.
		n.logger.Debug("invalid explanation choice",
			zap.Error(fmt.Errorf("%w: %q", internalerr.ErrInvalidExplanationChoice, clip(cmd))))
		n.out.InvalidExplanationChoice()
	}
	n.out.AfterExplanation()
	return n.transition(ShowExplanation)
}

func (n *Navigator) handleShowExplanation(cmd string) Outcome {
	switch cmd {
	case "b":
		n.out.ExplanationMenu()
		return n.transition(ChooseExplanationType)
	case "r":
		n.sel = n.sel.Cleared()
		n.out.SubclassListing(n.classes)
		return n.transition(ChooseSubclass)
	case "q":
		return n.terminate()
	default:
		return Outcome{Kind: Stay, State: n.state}
	}
}

func (n *Navigator) explain(ctx context.Context, full bool) error {
	sub, _ := n.sel.Subclass()
	super, _ := n.sel.Superclass()
	res, err := explain.Render(ctx, n.generator, n.renderer, sub, super, full)
	if err != nil {
		return err
	}
	n.out.Explanation(res.Subsumption, res.Lines, full)
	n.logger.Debug("explanation shown", zap.Bool("full", full), zap.Int("axioms", len(res.Axioms)))
	return nil
}

// clip bounds user input echoed into logs
func clip(s string) string {
	const limit = 64
	if len(s) <= limit {
		return s
	}
	return s[:limit] + "..."
}

// pick parses a 1-based index into l
func pick(l present.IndexedList, cmd string) (owl.Class, bool) {
	k, err := strconv.Atoi(cmd)
	if err != nil {
		return owl.Class{}, false
	}
	return l.At(k)
}

func (n *Navigator) transition(to State) Outcome {
	n.logger.Debug("transition", zap.Stringer("from", n.state), zap.Stringer("to", to))
	n.state = to
	return Outcome{Kind: Transition, State: to}
}

func (n *Navigator) terminate() Outcome {
	n.logger.Debug("terminate", zap.Stringer("state", n.state))
	n.done = true
	return Outcome{Kind: Terminate, State: n.state}
}

// fail reports a collaborator failure to the user and the log
func (n *Navigator) fail(op string, err error, fields ...zap.Field) {
	n.out.UnexpectedError()
	n.logger.Error("collaborator failure", append([]zap.Field{zap.String("op", op), zap.Error(err)}, fields...)...)
}

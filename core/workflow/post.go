package workflow

import (
	"log/slog"
	"strings"

	"github.com/dmitrymomot/compose/core/logger"
)

// TransitionFunc is called after the post moves to a different state.
type TransitionFunc func(from, to StateName)

// Post is a blog post whose visible content depends on its workflow state.
// A Post is not safe for concurrent use.
type Post struct {
	state   State
	content strings.Builder
	hooks   []TransitionFunc
	logger  *slog.Logger
}

// Option configures a Post.
type Option func(*Post)

// WithLogger sets the post logger. Nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(p *Post) {
		if l != nil {
			p.logger = l
		}
	}
}

// NewPost returns an empty post in the Draft state.
func NewPost(opts ...Option) *Post {
	p := &Post{
		state:  Draft{},
		logger: logger.Discard(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// AddText appends text to the payload. Allowed in every state.
func (p *Post) AddText(text string) {
	p.content.WriteString(text)
}

// Content returns the payload once published and "" before that.
func (p *Post) Content() string {
	return p.state.Content(p)
}

// RequestReview moves a draft to pending review. Other states are unchanged.
func (p *Post) RequestReview() {
	p.apply("request_review", p.state.RequestReview())
}

// Approve publishes a post pending review. Other states are unchanged.
func (p *Post) Approve() {
	p.apply("approve", p.state.Approve())
}

// State returns the name of the current state.
func (p *Post) State() StateName {
	return p.state.Name()
}

// IsPublished reports whether the post reached the terminal state.
func (p *Post) IsPublished() bool {
	return p.state.Name() == StatePublished
}

// OnTransition registers fn to run after every transition that changes state.
// Hooks run in registration order. Nil is ignored.
func (p *Post) OnTransition(fn TransitionFunc) {
	if fn != nil {
		p.hooks = append(p.hooks, fn)
	}
}

func (p *Post) apply(action string, next State) {
	from := p.state.Name()
	p.state = next

	to := next.Name()
	if from == to {
		p.logger.Debug("transition ignored",
			logger.Component("workflow"),
			logger.Action(action),
			slog.String("state", from.String()))
		return
	}

	p.logger.Info("post transitioned",
		logger.Component("workflow"),
		logger.Action(action),
		logger.Transition(from.String(), to.String()))

	for _, fn := range p.hooks {
		fn(from, to)
	}
}

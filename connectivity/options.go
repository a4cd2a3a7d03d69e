package connectivity

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
)

var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("connectivity: graph is nil")
	// ErrEmptyGraph is returned for a graph without nodes.
	ErrEmptyGraph = errors.New("connectivity: graph has no nodes")
	// ErrInvalidMode is returned for an unknown extraction Mode.
	ErrInvalidMode = errors.New("connectivity: invalid mode")
)

// Mode selects the cluster notion used by extraction.
type Mode int

const (
	// Strong clusters hold mutually reachable nodes.
	Strong Mode = iota
	// Weak clusters ignore link direction.
	Weak
)

// String returns "strong" or "weak".
func (m Mode) String() string {
	switch m {
	case Strong:
		return "strong"
	case Weak:
		return "weak"
	default:
		return "invalid"
	}
}

// Option configures a connectivity routine.
type Option func(*options)

type options struct {
	ctx context.Context
	log zerolog.Logger
}

// WithContext sets the context checked between BFS layers.
func WithContext(ctx context.Context) Option {
	return func(o *options) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// WithLogger sets the structured logger (default: disabled).
func WithLogger(l zerolog.Logger) Option {
	return func(o *options) { o.log = l }
}

func resolve(opts []Option) options {
	o := options{ctx: context.Background(), log: zerolog.Nop()}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

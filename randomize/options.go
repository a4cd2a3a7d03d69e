package randomize

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
)

var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("randomize: graph is nil")
	// ErrNilSource is returned when no random source is supplied.
	ErrNilSource = errors.New("randomize: random source is nil")
	// ErrBadTimes is returned for a negative, NaN or infinite swap factor.
	ErrBadTimes = errors.New("randomize: times must be finite and non-negative")
	// ErrNotSimple is returned when a link has no mirror or is a self-link.
	ErrNotSimple = errors.New("randomize: graph must be symmetric without self-links")
	// ErrTooFewLinks is returned when fewer than two links can be swapped.
	ErrTooFewLinks = errors.New("randomize: at least two links required")
	// ErrNoSwap is returned when the attempt budget runs out before a valid
	// pair of links is found.
	ErrNoSwap = errors.New("randomize: no valid swap found")
	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("randomize: invalid option supplied")
)

// attemptsPerLink scales the default per-swap draw budget with |E|.
const attemptsPerLink = 1000

// Option configures Rewire.
type Option func(*options)

type options struct {
	ctx         context.Context
	log         zerolog.Logger
	maxAttempts int
	err         error
}

// WithContext sets the context checked before every swap.
func WithContext(ctx context.Context) Option {
	return func(o *options) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// WithLogger sets the structured logger (default: disabled). Every swap is
// logged at trace level.
func WithLogger(l zerolog.Logger) Option {
	return func(o *options) { o.log = l }
}

// WithMaxAttempts bounds the number of second-link draws spent on one swap
// (default 1000·|E|). n must be positive.
func WithMaxAttempts(n int) Option {
	return func(o *options) {
		if n <= 0 {
			o.err = fmt.Errorf("%w: max attempts must be positive, got %d", ErrOptionViolation, n)
			return
		}
		o.maxAttempts = n
	}
}

func resolve(opts []Option) options {
	o := options{ctx: context.Background(), log: zerolog.Nop()}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

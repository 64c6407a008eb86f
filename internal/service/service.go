package service

import (
	"context"
	"time"

	"github.com/citizenlabsgr/elections-api/internal/assert"
	"github.com/citizenlabsgr/elections-api/lib/scrapers/mvic"
)

// Lookuper is an abstraction over anything that can check a person's
// registration, *mvic.Client in production.
//
// note: fault injection point
type Lookuper interface {
	Lookup(ctx context.Context, query mvic.PersonQuery) (mvic.RegistrationResult, error)
}

type Options struct {
	// LookupTimeout bounds a single lookup, zero leaves it unbounded (the
	// inbound request's context still applies).
	LookupTimeout time.Duration
}

// Service adapts inbound HTTP requests to registration lookups.
type Service struct {
	lookuper Lookuper
	opts     Options
}

func NewService(lookuper Lookuper, opts Options) Service {
	assert.NotNil(lookuper)
	return Service{lookuper: lookuper, opts: opts}
}

func (s Service) lookup(ctx context.Context, query mvic.PersonQuery) (mvic.RegistrationResult, error) {
	if s.opts.LookupTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.opts.LookupTimeout)
		defer cancel()
	}
	return s.lookuper.Lookup(ctx, query)
}

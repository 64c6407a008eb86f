package mvic

import (
	"context"
	"errors"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
)

var lookupCounter, _ = meter.Int64Counter(
	"mvic.lookups",
	metric.WithDescription("registration lookups by outcome"),
)

func lookupOutcome(result RegistrationResult, err error) string {
	switch {
	case err == nil && result.Registered:
		return "registered"
	case err == nil:
		return "not_registered"
	case errors.Is(err, ErrMalformedForm):
		return "malformed_form"
	case errors.Is(err, ErrPortalUnavailable):
		return "portal_unavailable"
	case errors.Is(err, ErrTransport):
		return "transport"
	}
	return "error"
}

// Lookup runs a full search for one person: fetch the form, read its tokens,
// submit the search, read the results. Nothing runs after a failed step.
//
// There is no internal deadline, ctx is the only way to bound a lookup.
func (c *Client) Lookup(ctx context.Context, query PersonQuery) (result RegistrationResult, err error) {
	ctx, span := tracer.Start(ctx, "mvic:Lookup")
	defer span.End()

	defer func() {
		outcome := lookupOutcome(result, err)
		span.SetAttributes(attribute.String("outcome", outcome))
		lookupCounter.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", outcome)))
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
	}()

	session, err := c.NewSession()
	if err != nil {
		return RegistrationResult{}, err
	}

	form, err := session.FetchForm(ctx)
	if err != nil {
		return RegistrationResult{}, err
	}
	tokens, err := ParseTokens(form)
	if err != nil {
		slog.ErrorContext(ctx, "failed to parse search form tokens", "err", err)
		return RegistrationResult{}, err
	}

	page, err := session.SubmitSearch(ctx, query, tokens)
	if err != nil {
		return RegistrationResult{}, err
	}

	result = ParseRegistration(page)
	slog.DebugContext(ctx, "lookup finished", "registered", result.Registered, "fields", len(result.Fields))
	return result, nil
}

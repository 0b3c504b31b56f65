// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "authhub/internal/delivery/context"
	"authhub/internal/domain/entity"
	domainerrors "authhub/internal/domain/errors"
	"authhub/internal/domain/service"

	"github.com/google/uuid"
)

// authRecorder publishes auth events and counts attempts for every flow.
// Event delivery failures are logged and never fail the sign-in.
type authRecorder struct {
	publisher service.EventPublisher
	metrics   service.AuthMetrics
	logger    *slog.Logger
	now       func() time.Time
}

func newAuthRecorder(publisher service.EventPublisher, metrics service.AuthMetrics, logger *slog.Logger) *authRecorder {
	return &authRecorder{
		publisher: publisher,
		metrics:   metrics,
		logger:    logger,
		now:       time.Now,
	}
}

func (r *authRecorder) succeeded(ctx context.Context, provider entity.Provider, identity *entity.Identity, created bool) {
	if r.metrics != nil {
		r.metrics.ObserveAttempt(string(provider), service.OutcomeSuccess)
	}

	if created {
		r.publish(ctx, service.AuthEventIdentityCreated, provider, identity)
	}
	r.publish(ctx, service.AuthEventSessionAuthenticated, provider, identity)
}

// failed counts a failed attempt. Caller mistakes and rejected credentials
// are "rejected"; provider and storage failures are "error".
func (r *authRecorder) failed(provider entity.Provider, err error) {
	if r.metrics == nil {
		return
	}

	outcome := service.OutcomeRejected
	switch domainerrors.KindOf(err) {
	case domainerrors.KindUpstream, domainerrors.KindInternal:
		outcome = service.OutcomeError
	}
	r.metrics.ObserveAttempt(string(provider), outcome)
}

func (r *authRecorder) otpSent() {
	if r.metrics != nil {
		r.metrics.ObserveOTPSent()
	}
}

func (r *authRecorder) publish(ctx context.Context, eventType string, provider entity.Provider, identity *entity.Identity) {
	if r.publisher == nil {
		return
	}

	event := &service.AuthEvent{
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		EventID:    uuid.NewString(),
		Type:       eventType,
		IdentityID: identity.ID,
		Provider:   string(provider),
		Role:       identity.Role.String(),
		OccurredAt: r.now().UTC(),
	}

	if err := r.publisher.PublishAuthEvent(ctx, event); err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, r.logger).Warn("Failed to publish auth event",
			slog.String("type", eventType),
			slog.String("identityID", identity.ID),
			slog.Any("error", err),
		)
	}
}

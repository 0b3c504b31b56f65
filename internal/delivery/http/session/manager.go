// Package session binds the server-side session to a signed cookie.
package session

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"authhub/config"
	deliverycontext "authhub/internal/delivery/context"
	"authhub/internal/domain/entity"
	domainerrors "authhub/internal/domain/errors"
	"authhub/internal/domain/repository"
	"authhub/internal/errors"
	"authhub/internal/infra/auth"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type cookieCodec interface {
	Sign(sessionID string, ttl time.Duration) (string, error)
	Parse(value string) (string, error)
}

// Manager loads the session named by the request cookie and writes it back
// once the handler is done.
type Manager struct {
	repo       repository.SessionRepository
	codec      cookieCodec
	logger     *slog.Logger
	cookieName string
	ttl        time.Duration
	secure     bool
	now        func() time.Time
	newID      func() string
}

func NewManager(
	repo repository.SessionRepository,
	signer *auth.CookieSigner,
	cfg *config.Config,
	logger *slog.Logger,
) *Manager {
	return &Manager{
		repo:       repo,
		codec:      signer,
		logger:     logger,
		cookieName: cfg.Session.CookieName,
		ttl:        cfg.Session.TTL,
		secure:     cfg.IsProduction(),
		now:        time.Now,
		newID:      uuid.NewString,
	}
}

func (m *Manager) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, m.logger)
}

// Load returns the stored session, or a fresh one when the cookie is missing,
// forged, expired or unknown. Only a failing store is an error.
func (m *Manager) Load(ctx context.Context, r *http.Request) (*entity.Session, error) {
	cookie, err := r.Cookie(m.cookieName)
	if err != nil || cookie.Value == "" {
		return m.fresh(), nil
	}

	id, err := m.codec.Parse(cookie.Value)
	if err != nil {
		m.log(ctx).Debug("Ignoring invalid session cookie")

		return m.fresh(), nil
	}

	sess, err := m.repo.Get(ctx, id)
	if errors.Is(err, repository.ErrSessionNotFound) {
		return m.fresh(), nil
	}
	if err != nil {
		return nil, domainerrors.NewInternalError(err, "load session")
	}

	return sess, nil
}

func (m *Manager) fresh() *entity.Session {
	return entity.NewSession(m.newID(), m.ttl, m.now())
}

// Commit persists the session if it changed and sets or clears the cookie.
// A pending regeneration moves the state to a new id and drops the old one.
func (m *Manager) Commit(ctx context.Context, c echo.Context, sess *entity.Session) error {
	if sess.Destroyed() {
		if !sess.IsNew() {
			if err := m.repo.Delete(ctx, sess.ID); err != nil {
				return domainerrors.NewInternalError(err, "delete session")
			}
		}
		c.SetCookie(m.expiredCookie())

		return nil
	}

	if !sess.Dirty() && !sess.NeedsRegeneration() {
		return nil
	}

	previousID := sess.ID
	rotate := sess.NeedsRegeneration() && !sess.IsNew()
	if rotate {
		sess.ID = m.newID()
	}
	if sess.TTL <= 0 {
		sess.TTL = m.ttl
	}

	if err := m.repo.Save(ctx, sess); err != nil {
		sess.ID = previousID

		return domainerrors.NewInternalError(err, "save session")
	}
	if rotate {
		if err := m.repo.Delete(ctx, previousID); err != nil {
			return domainerrors.NewInternalError(err, "delete rotated session")
		}
	}

	value, err := m.codec.Sign(sess.ID, sess.TTL)
	if err != nil {
		return domainerrors.NewInternalError(err, "sign session cookie")
	}

	now := m.now()
	sess.MarkPersisted(sess.ID, now)
	c.SetCookie(&http.Cookie{
		Name:     m.cookieName,
		Value:    value,
		Path:     "/",
		Expires:  now.Add(sess.TTL),
		MaxAge:   int(sess.TTL / time.Second),
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	})

	return nil
}

func (m *Manager) expiredCookie() *http.Cookie {
	return &http.Cookie{
		Name:     m.cookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	}
}

// Middleware makes the session available through deliverycontext.GetSession
// and commits it before any byte of the response reaches the client. When the
// store fails the handler's response is discarded and the request fails.
func (m *Manager) Middleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		sess, err := m.Load(ctx, c.Request())
		if err != nil {
			return err
		}
		deliverycontext.SetSession(c, sess)

		res := c.Response()
		original := res.Writer
		buffered := &bufferedWriter{ResponseWriter: original}
		res.Writer = buffered

		handlerErr := next(c)
		res.Writer = original

		if err := m.Commit(ctx, c, sess); err != nil {
			resetHeaders(original.Header())
			c.SetResponse(echo.NewResponse(original, c.Echo()))

			return err
		}

		if err := buffered.flush(); err != nil {
			return errors.Wrap(err, "failed to write response")
		}

		return handlerErr
	}
}

// resetHeaders drops everything the handler set except the request id.
func resetHeaders(h http.Header) {
	requestID := h.Get(deliverycontext.HeaderXRequestID)
	clear(h)
	if requestID != "" {
		h.Set(deliverycontext.HeaderXRequestID, requestID)
	}
}

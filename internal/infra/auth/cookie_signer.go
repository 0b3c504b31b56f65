package auth

import (
	"time"

	"authhub/config"
	"authhub/internal/errors"

	"github.com/golang-jwt/jwt/v5"
)

const cookieIssuer = "authhub-session"

// ErrInvalidCookie is returned for cookies that fail signature or expiry checks.
var ErrInvalidCookie = errors.New("invalid session cookie")

// CookieSigner binds a session id to the server secret so clients cannot
// forge or enumerate ids. The value is an HS256 JWT whose subject is the id.
type CookieSigner struct {
	secret []byte
	now    func() time.Time
}

// NewCookieSigner is the constructor for CookieSigner.
func NewCookieSigner(cfg *config.Config) (*CookieSigner, error) {
	if cfg.Session.Secret == "" {
		return nil, errors.New("session secret must be provided")
	}

	return &CookieSigner{
		secret: []byte(cfg.Session.Secret),
		now:    time.Now,
	}, nil
}

// Sign returns the cookie value for sessionID, valid for ttl.
func (s *CookieSigner) Sign(sessionID string, ttl time.Duration) (string, error) {
	now := s.now()
	claims := jwt.RegisteredClaims{
		Issuer:    cookieIssuer,
		Subject:   sessionID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign session cookie")
	}

	return signed, nil
}

// Parse returns the session id carried by a cookie value.
func (s *CookieSigner) Parse(value string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(value, claims, func(token *jwt.Token) (any, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(cookieIssuer),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil || claims.Subject == "" {
		return "", ErrInvalidCookie
	}

	return claims.Subject, nil
}

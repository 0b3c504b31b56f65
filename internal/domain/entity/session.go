package entity

import "time"

// SessionStatus is the authentication state of a session.
type SessionStatus string

const (
	SessionUnauthenticated SessionStatus = "unauthenticated"
	SessionAuthenticated   SessionStatus = "authenticated"
	SessionLoading         SessionStatus = "loading"
)

// Principal is the identity established by one of the sign-in flows.
type Principal struct {
	IdentityID string
	Role       Role
	Provider   Provider

	Address string

	XUserID               string
	XUsername             string
	XDisplayName          string
	XProfileImageURL      string
	XAccessTokenExpiresAt *time.Time

	WhatsAppPhone string
}

// EVMChallenge holds the single in-flight SIWE nonce.
type EVMChallenge struct {
	Nonce string
}

// XChallenge holds the CSRF state and PKCE verifier between login and callback.
type XChallenge struct {
	State        string
	CodeVerifier string
}

// OTPChallenge is a pending WhatsApp one-time password.
type OTPChallenge struct {
	Code      string
	Phone     string // normalized, no leading '+'
	ExpiresAt time.Time
	Attempts  int
}

// Expired reports whether the code can no longer be accepted.
func (c *OTPChallenge) Expired(now time.Time) bool {
	return now.After(c.ExpiresAt)
}

// Session is the server-side state bound to a browser cookie. Each flow owns
// its own challenge and changes state only through the methods below, which
// also track whether the session has to be written back.
type Session struct {
	ID        string
	Status    SessionStatus
	Principal *Principal

	EVM *EVMChallenge
	X   *XChallenge
	OTP *OTPChallenge

	TTL       time.Duration
	CreatedAt time.Time
	UpdatedAt time.Time

	isNew      bool
	dirty      bool
	destroyed  bool
	regenerate bool
}

// NewSession returns an empty unauthenticated session that is not yet stored.
func NewSession(id string, ttl time.Duration, now time.Time) *Session {
	return &Session{
		ID:        id,
		Status:    SessionUnauthenticated,
		TTL:       ttl,
		CreatedAt: now,
		UpdatedAt: now,
		isNew:     true,
	}
}

func (s *Session) touch() {
	s.dirty = true
}

// IsAuthenticated reports whether a principal has been established.
func (s *Session) IsAuthenticated() bool {
	return s.Status == SessionAuthenticated && s.Principal != nil
}

// Role returns the principal's role, RoleUser when unauthenticated.
func (s *Session) Role() Role {
	if s.Principal == nil || !s.Principal.Role.IsValid() {
		return RoleUser
	}

	return s.Principal.Role
}

// IssueNonce replaces any outstanding SIWE nonce.
func (s *Session) IssueNonce(nonce string) {
	s.EVM = &EVMChallenge{Nonce: nonce}
	s.touch()
}

// Nonce returns the outstanding SIWE nonce, if any.
func (s *Session) Nonce() string {
	if s.EVM == nil {
		return ""
	}

	return s.EVM.Nonce
}

// ConsumeNonce clears the SIWE nonce so it cannot be replayed.
func (s *Session) ConsumeNonce() {
	if s.EVM == nil {
		return
	}
	s.EVM = nil
	s.touch()
}

// BeginXAuthorization stores the state and verifier sent to the provider.
func (s *Session) BeginXAuthorization(state, codeVerifier string) {
	s.X = &XChallenge{State: state, CodeVerifier: codeVerifier}
	s.touch()
}

// TakeXAuthorization returns and clears the pending X challenge.
func (s *Session) TakeXAuthorization() *XChallenge {
	challenge := s.X
	if challenge != nil {
		s.X = nil
		s.touch()
	}

	return challenge
}

// BeginOTP stores a freshly delivered code and resets the attempt counter.
func (s *Session) BeginOTP(code, phone string, expiresAt time.Time) {
	s.OTP = &OTPChallenge{Code: code, Phone: phone, ExpiresAt: expiresAt}
	s.touch()
}

// RecordOTPFailure increments and returns the failed attempt count.
func (s *Session) RecordOTPFailure() int {
	if s.OTP == nil {
		return 0
	}
	s.OTP.Attempts++
	s.touch()

	return s.OTP.Attempts
}

// ClearOTP drops the pending code.
func (s *Session) ClearOTP() {
	if s.OTP == nil {
		return
	}
	s.OTP = nil
	s.touch()
}

// Authenticate establishes the principal. The session id is rotated on the
// next save.
func (s *Session) Authenticate(principal Principal) {
	if !principal.Role.IsValid() {
		principal.Role = RoleUser
	}
	s.Principal = &principal
	s.Status = SessionAuthenticated
	s.regenerate = true
	s.touch()
}

// ExtendTTL sets the lifetime applied when the session is next saved.
func (s *Session) ExtendTTL(ttl time.Duration) {
	s.TTL = ttl
	s.touch()
}

// Destroy wipes the session. The store entry and cookie are removed on commit.
func (s *Session) Destroy() {
	s.Status = SessionUnauthenticated
	s.Principal = nil
	s.EVM = nil
	s.X = nil
	s.OTP = nil
	s.destroyed = true
	s.dirty = false
}

// Dirty reports whether the session changed since it was loaded.
func (s *Session) Dirty() bool {
	return s.dirty
}

// Destroyed reports whether Destroy was called during this request.
func (s *Session) Destroyed() bool {
	return s.destroyed
}

// IsNew reports whether the session has never been stored.
func (s *Session) IsNew() bool {
	return s.isNew
}

// NeedsRegeneration reports whether the id must be rotated before saving.
func (s *Session) NeedsRegeneration() bool {
	return s.regenerate
}

// MarkPersisted records that the session is stored under id.
func (s *Session) MarkPersisted(id string, now time.Time) {
	s.ID = id
	s.UpdatedAt = now
	s.isNew = false
	s.dirty = false
	s.regenerate = false
}

// Clone returns a deep copy in the state a store hands back: not new and
// with no pending changes.
func (s *Session) Clone() *Session {
	c := &Session{
		ID:        s.ID,
		Status:    s.Status,
		TTL:       s.TTL,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
	if s.Principal != nil {
		p := *s.Principal
		if p.XAccessTokenExpiresAt != nil {
			exp := *p.XAccessTokenExpiresAt
			p.XAccessTokenExpiresAt = &exp
		}
		c.Principal = &p
	}
	if s.EVM != nil {
		evm := *s.EVM
		c.EVM = &evm
	}
	if s.X != nil {
		x := *s.X
		c.X = &x
	}
	if s.OTP != nil {
		otp := *s.OTP
		c.OTP = &otp
	}

	return c
}

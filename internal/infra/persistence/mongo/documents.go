package mongo

import (
	"time"

	"authhub/internal/domain/entity"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	fieldID            = "_id"
	fieldRole          = "role"
	fieldAddress       = "address"
	fieldXUserID       = "x_user_id"
	fieldWhatsAppPhone = "whatsapp_phone"
	fieldAPISecrets    = "api_secrets"
	fieldAPISecretKey  = "api_secrets.key"
	fieldRateLimits    = "x_rate_limits"
	fieldCreatedAt     = "created_at"
	fieldUpdatedAt     = "updated_at"
	fieldExpiresAt     = "expires_at"
)

type rateLimitWindowDocument struct {
	Limit     int   `bson:"limit"`
	Remaining int   `bson:"remaining"`
	Reset     int64 `bson:"reset"`
}

type rateLimitDocument struct {
	Endpoint    string                   `bson:"endpoint"`
	Method      string                   `bson:"method"`
	Limit       int                      `bson:"limit"`
	Remaining   int                      `bson:"remaining"`
	Reset       int64                    `bson:"reset"`
	Day         *rateLimitWindowDocument `bson:"day,omitempty"`
	LastUpdated time.Time                `bson:"last_updated"`
}

type apiSecretDocument struct {
	Key          string    `bson:"key"`
	Title        string    `bson:"title"`
	HashedSecret string    `bson:"hashed_secret"`
	CreatedAt    time.Time `bson:"created_at"`
	UpdatedAt    time.Time `bson:"updated_at"`
}

type identityDocument struct {
	ID   primitive.ObjectID `bson:"_id,omitempty"`
	Role string             `bson:"role"`

	Address string `bson:"address,omitempty"`

	XUserID               string              `bson:"x_user_id,omitempty"`
	XUsername             string              `bson:"x_username,omitempty"`
	XDisplayName          string              `bson:"x_display_name,omitempty"`
	XProfileImageURL      string              `bson:"x_profile_image_url,omitempty"`
	XAccessToken          string              `bson:"x_access_token,omitempty"`
	XRefreshToken         string              `bson:"x_refresh_token,omitempty"`
	XAccessTokenExpiresAt *time.Time          `bson:"x_access_token_expires_at,omitempty"`
	XRateLimits           []rateLimitDocument `bson:"x_rate_limits,omitempty"`

	WhatsAppPhone string `bson:"whatsapp_phone,omitempty"`

	APISecrets []apiSecretDocument `bson:"api_secrets,omitempty"`

	CreatedAt time.Time `bson:"created_at"`
	UpdatedAt time.Time `bson:"updated_at"`
}

func toRateLimitDocument(limit entity.RateLimit) rateLimitDocument {
	doc := rateLimitDocument{
		Endpoint:    limit.Endpoint,
		Method:      limit.Method,
		Limit:       limit.Limit,
		Remaining:   limit.Remaining,
		Reset:       limit.Reset,
		LastUpdated: limit.LastUpdated,
	}
	if limit.Day != nil {
		doc.Day = &rateLimitWindowDocument{Limit: limit.Day.Limit, Remaining: limit.Day.Remaining, Reset: limit.Day.Reset}
	}

	return doc
}

func (d rateLimitDocument) toEntity() entity.RateLimit {
	limit := entity.RateLimit{
		Endpoint:    d.Endpoint,
		Method:      d.Method,
		Limit:       d.Limit,
		Remaining:   d.Remaining,
		Reset:       d.Reset,
		LastUpdated: d.LastUpdated,
	}
	if d.Day != nil {
		limit.Day = &entity.RateLimitWindow{Limit: d.Day.Limit, Remaining: d.Day.Remaining, Reset: d.Day.Reset}
	}

	return limit
}

func toRateLimits(docs []rateLimitDocument) []entity.RateLimit {
	limits := make([]entity.RateLimit, 0, len(docs))
	for _, d := range docs {
		limits = append(limits, d.toEntity())
	}

	return limits
}

func toAPISecretDocument(secret entity.APISecret) apiSecretDocument {
	return apiSecretDocument{
		Key:          secret.Key,
		Title:        secret.Title,
		HashedSecret: secret.HashedSecret,
		CreatedAt:    secret.CreatedAt,
		UpdatedAt:    secret.UpdatedAt,
	}
}

func (d *identityDocument) toEntity() *entity.Identity {
	identity := &entity.Identity{
		ID:                    d.ID.Hex(),
		Role:                  entity.ParseRole(d.Role),
		Address:               d.Address,
		XUserID:               d.XUserID,
		XUsername:             d.XUsername,
		XDisplayName:          d.XDisplayName,
		XProfileImageURL:      d.XProfileImageURL,
		XAccessToken:          d.XAccessToken,
		XRefreshToken:         d.XRefreshToken,
		XAccessTokenExpiresAt: d.XAccessTokenExpiresAt,
		XRateLimits:           toRateLimits(d.XRateLimits),
		WhatsAppPhone:         d.WhatsAppPhone,
		CreatedAt:             d.CreatedAt,
		UpdatedAt:             d.UpdatedAt,
	}
	for _, s := range d.APISecrets {
		identity.APISecrets = append(identity.APISecrets, entity.APISecret{
			Key:          s.Key,
			Title:        s.Title,
			HashedSecret: s.HashedSecret,
			CreatedAt:    s.CreatedAt,
			UpdatedAt:    s.UpdatedAt,
		})
	}

	return identity
}

type principalDocument struct {
	IdentityID            string     `bson:"identity_id"`
	Role                  string     `bson:"role"`
	Provider              string     `bson:"provider"`
	Address               string     `bson:"address,omitempty"`
	XUserID               string     `bson:"x_user_id,omitempty"`
	XUsername             string     `bson:"x_username,omitempty"`
	XDisplayName          string     `bson:"x_display_name,omitempty"`
	XProfileImageURL      string     `bson:"x_profile_image_url,omitempty"`
	XAccessTokenExpiresAt *time.Time `bson:"x_access_token_expires_at,omitempty"`
	WhatsAppPhone         string     `bson:"whatsapp_phone,omitempty"`
}

type otpDocument struct {
	Code      string    `bson:"otp_code"`
	Phone     string    `bson:"pending_phone"`
	ExpiresAt time.Time `bson:"otp_expires_at"`
	Attempts  int       `bson:"attempts"`
}

type xChallengeDocument struct {
	State        string `bson:"oauth_state"`
	CodeVerifier string `bson:"oauth_code_verifier"`
}

type sessionDocument struct {
	ID        string              `bson:"_id"`
	Status    string              `bson:"status"`
	Principal *principalDocument  `bson:"principal,omitempty"`
	Nonce     string              `bson:"nonce,omitempty"`
	X         *xChallengeDocument `bson:"x,omitempty"`
	OTP       *otpDocument        `bson:"otp,omitempty"`
	TTL       time.Duration       `bson:"ttl"`
	CreatedAt time.Time           `bson:"created_at"`
	UpdatedAt time.Time           `bson:"updated_at"`
	ExpiresAt time.Time           `bson:"expires_at"`
}

func toSessionDocument(s *entity.Session, now time.Time) *sessionDocument {
	doc := &sessionDocument{
		ID:        s.ID,
		Status:    string(s.Status),
		Nonce:     s.Nonce(),
		TTL:       s.TTL,
		CreatedAt: s.CreatedAt,
		UpdatedAt: now,
		ExpiresAt: now.Add(s.TTL),
	}
	if p := s.Principal; p != nil {
		doc.Principal = &principalDocument{
			IdentityID:            p.IdentityID,
			Role:                  string(p.Role),
			Provider:              string(p.Provider),
			Address:               p.Address,
			XUserID:               p.XUserID,
			XUsername:             p.XUsername,
			XDisplayName:          p.XDisplayName,
			XProfileImageURL:      p.XProfileImageURL,
			XAccessTokenExpiresAt: p.XAccessTokenExpiresAt,
			WhatsAppPhone:         p.WhatsAppPhone,
		}
	}
	if s.X != nil {
		doc.X = &xChallengeDocument{State: s.X.State, CodeVerifier: s.X.CodeVerifier}
	}
	if s.OTP != nil {
		doc.OTP = &otpDocument{Code: s.OTP.Code, Phone: s.OTP.Phone, ExpiresAt: s.OTP.ExpiresAt, Attempts: s.OTP.Attempts}
	}

	return doc
}

func (d *sessionDocument) toEntity() *entity.Session {
	s := &entity.Session{
		ID:        d.ID,
		Status:    entity.SessionStatus(d.Status),
		TTL:       d.TTL,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
	if p := d.Principal; p != nil {
		s.Principal = &entity.Principal{
			IdentityID:            p.IdentityID,
			Role:                  entity.ParseRole(p.Role),
			Provider:              entity.Provider(p.Provider),
			Address:               p.Address,
			XUserID:               p.XUserID,
			XUsername:             p.XUsername,
			XDisplayName:          p.XDisplayName,
			XProfileImageURL:      p.XProfileImageURL,
			XAccessTokenExpiresAt: p.XAccessTokenExpiresAt,
			WhatsAppPhone:         p.WhatsAppPhone,
		}
	}
	if d.Nonce != "" {
		s.EVM = &entity.EVMChallenge{Nonce: d.Nonce}
	}
	if d.X != nil {
		s.X = &entity.XChallenge{State: d.X.State, CodeVerifier: d.X.CodeVerifier}
	}
	if d.OTP != nil {
		s.OTP = &entity.OTPChallenge{Code: d.OTP.Code, Phone: d.OTP.Phone, ExpiresAt: d.OTP.ExpiresAt, Attempts: d.OTP.Attempts}
	}

	return s
}

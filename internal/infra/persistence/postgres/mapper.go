package postgres

import (
	"encoding/json"

	"authhub/internal/domain/entity"
	"authhub/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

func optional(s string) *string {
	if s == "" {
		return nil
	}

	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}

	return *s
}

func toIdentityDomain(m *model.IdentityModel) *entity.Identity {
	identity := &entity.Identity{
		ID:                    m.ID.String(),
		Role:                  entity.ParseRole(m.Role),
		Address:               deref(m.Address),
		XUserID:               deref(m.XUserID),
		XUsername:             m.XUsername,
		XDisplayName:          m.XDisplayName,
		XProfileImageURL:      m.XProfileImageURL,
		XAccessToken:          m.XAccessToken,
		XRefreshToken:         m.XRefreshToken,
		XAccessTokenExpiresAt: m.XAccessTokenExpiresAt,
		WhatsAppPhone:         deref(m.WhatsAppPhone),
		CreatedAt:             m.CreatedAt,
		UpdatedAt:             m.UpdatedAt,
	}
	for i := range m.RateLimits {
		identity.XRateLimits = append(identity.XRateLimits, toRateLimitDomain(&m.RateLimits[i]))
	}
	for _, s := range m.APISecrets {
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

func toRateLimitModel(identityID uuid.UUID, limit entity.RateLimit) *model.RateLimitModel {
	m := &model.RateLimitModel{
		IdentityID:  identityID,
		Endpoint:    limit.Endpoint,
		Method:      limit.Method,
		Quota:       limit.Limit,
		Remaining:   limit.Remaining,
		Reset:       limit.Reset,
		LastUpdated: limit.LastUpdated,
	}
	if limit.Day != nil {
		// Marshalling a struct of ints cannot fail.
		raw, _ := json.Marshal(model.RateLimitWindowJSON{
			Limit:     limit.Day.Limit,
			Remaining: limit.Day.Remaining,
			Reset:     limit.Day.Reset,
		})
		m.Day = datatypes.JSON(raw)
	}

	return m
}

func toRateLimitDomain(m *model.RateLimitModel) entity.RateLimit {
	limit := entity.RateLimit{
		Endpoint:    m.Endpoint,
		Method:      m.Method,
		Limit:       m.Quota,
		Remaining:   m.Remaining,
		Reset:       m.Reset,
		LastUpdated: m.LastUpdated,
	}

	var day model.RateLimitWindowJSON
	if len(m.Day) > 0 && json.Unmarshal(m.Day, &day) == nil {
		limit.Day = &entity.RateLimitWindow{Limit: day.Limit, Remaining: day.Remaining, Reset: day.Reset}
	}

	return limit
}

func toRateLimitsDomain(models []*model.RateLimitModel) []entity.RateLimit {
	limits := make([]entity.RateLimit, 0, len(models))
	for _, m := range models {
		limits = append(limits, toRateLimitDomain(m))
	}

	return limits
}

func toSessionState(s *entity.Session) model.SessionState {
	state := model.SessionState{
		Status: string(s.Status),
		Nonce:  s.Nonce(),
		TTL:    s.TTL,
	}
	if p := s.Principal; p != nil {
		state.Principal = &model.SessionPrincipal{
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
		state.X = &model.SessionXChallenge{State: s.X.State, CodeVerifier: s.X.CodeVerifier}
	}
	if s.OTP != nil {
		state.OTP = &model.SessionOTP{Code: s.OTP.Code, Phone: s.OTP.Phone, ExpiresAt: s.OTP.ExpiresAt, Attempts: s.OTP.Attempts}
	}

	return state
}

func toSessionDomain(m *model.SessionModel) *entity.Session {
	state := m.Data.Data()
	s := &entity.Session{
		ID:        m.ID,
		Status:    entity.SessionStatus(state.Status),
		TTL:       state.TTL,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
	if p := state.Principal; p != nil {
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
	if state.Nonce != "" {
		s.EVM = &entity.EVMChallenge{Nonce: state.Nonce}
	}
	if state.X != nil {
		s.X = &entity.XChallenge{State: state.X.State, CodeVerifier: state.X.CodeVerifier}
	}
	if state.OTP != nil {
		s.OTP = &entity.OTPChallenge{Code: state.OTP.Code, Phone: state.OTP.Phone, ExpiresAt: state.OTP.ExpiresAt, Attempts: state.OTP.Attempts}
	}

	return s
}

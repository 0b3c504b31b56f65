package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSession(t *testing.T) {
	now := time.Now()
	s := NewSession("sid", time.Hour, now)

	assert.True(t, s.IsNew())
	assert.False(t, s.Dirty())
	assert.False(t, s.IsAuthenticated())
	assert.Equal(t, RoleUser, s.Role())
	assert.Equal(t, SessionUnauthenticated, s.Status)
}

func TestSession_NonceLifecycle(t *testing.T) {
	s := NewSession("sid", time.Hour, time.Now())

	s.IssueNonce("first")
	s.IssueNonce("second")
	assert.Equal(t, "second", s.Nonce())
	assert.True(t, s.Dirty())

	s.ConsumeNonce()
	assert.Empty(t, s.Nonce())
}

func TestSession_TakeXAuthorization(t *testing.T) {
	s := NewSession("sid", time.Hour, time.Now())
	assert.Nil(t, s.TakeXAuthorization())
	assert.False(t, s.Dirty())

	s.BeginXAuthorization("state", "verifier")
	challenge := s.TakeXAuthorization()
	require.NotNil(t, challenge)
	assert.Equal(t, "state", challenge.State)
	assert.Equal(t, "verifier", challenge.CodeVerifier)
	assert.Nil(t, s.TakeXAuthorization())
}

func TestSession_OTP(t *testing.T) {
	now := time.Now()
	s := NewSession("sid", time.Hour, now)

	s.BeginOTP("123456", "15551234567", now.Add(10*time.Minute))
	assert.Equal(t, 1, s.RecordOTPFailure())
	assert.Equal(t, 2, s.RecordOTPFailure())

	s.BeginOTP("654321", "15551234567", now.Add(10*time.Minute))
	assert.Equal(t, 0, s.OTP.Attempts)

	assert.False(t, s.OTP.Expired(now.Add(10*time.Minute)))
	assert.True(t, s.OTP.Expired(now.Add(10*time.Minute+time.Second)))

	s.ClearOTP()
	assert.Nil(t, s.OTP)
	assert.Equal(t, 0, s.RecordOTPFailure())
}

func TestSession_Authenticate(t *testing.T) {
	s := NewSession("sid", time.Hour, time.Now())
	s.MarkPersisted("sid", time.Now())

	s.Authenticate(Principal{IdentityID: "id-1", Provider: ProviderEVM, Address: "0xabc"})

	assert.True(t, s.IsAuthenticated())
	assert.Equal(t, RoleUser, s.Role())
	assert.True(t, s.NeedsRegeneration())
	assert.True(t, s.Dirty())

	s.MarkPersisted("sid-2", time.Now())
	assert.Equal(t, "sid-2", s.ID)
	assert.False(t, s.NeedsRegeneration())
	assert.False(t, s.Dirty())
	assert.False(t, s.IsNew())
}

func TestSession_Destroy(t *testing.T) {
	s := NewSession("sid", time.Hour, time.Now())
	s.IssueNonce("nonce")
	s.Authenticate(Principal{IdentityID: "id-1", Role: RoleAdmin})

	s.Destroy()

	assert.True(t, s.Destroyed())
	assert.False(t, s.Dirty())
	assert.False(t, s.IsAuthenticated())
	assert.Empty(t, s.Nonce())
	assert.Nil(t, s.Principal)
}

func TestSession_Clone(t *testing.T) {
	s := NewSession("sid", time.Hour, time.Now())
	s.BeginOTP("123456", "15551234567", time.Now().Add(time.Minute))
	s.Authenticate(Principal{IdentityID: "id-1", Provider: ProviderWhatsApp})

	c := s.Clone()

	assert.False(t, c.IsNew())
	assert.False(t, c.Dirty())
	assert.False(t, c.NeedsRegeneration())
	assert.Equal(t, "id-1", c.Principal.IdentityID)

	c.RecordOTPFailure()
	assert.Equal(t, 0, s.OTP.Attempts, "clone shares no state with the original")
}

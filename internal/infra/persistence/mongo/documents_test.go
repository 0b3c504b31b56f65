package mongo

import (
	"testing"
	"time"

	"authhub/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestSessionDocument_RoundTrip(t *testing.T) {
	now := time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC)
	expires := now.Add(2 * time.Hour)

	sess := entity.NewSession("sid", 30*24*time.Hour, now)
	sess.IssueNonce("abcdef123456")
	sess.BeginXAuthorization("state", "verifier")
	sess.BeginOTP("012345", "15551234567", now.Add(10*time.Minute))
	sess.Authenticate(entity.Principal{
		IdentityID:            "65f2c0ffee0000000000abcd",
		Role:                  entity.RoleAdmin,
		Provider:              entity.ProviderX,
		XUserID:               "42",
		XAccessTokenExpiresAt: &expires,
	})

	raw, err := bson.Marshal(toSessionDocument(sess, now))
	require.NoError(t, err)

	var decoded sessionDocument
	require.NoError(t, bson.Unmarshal(raw, &decoded))
	assert.True(t, decoded.ExpiresAt.Equal(now.Add(30*24*time.Hour)))

	loaded := decoded.toEntity()
	assert.False(t, loaded.IsNew())
	assert.False(t, loaded.Dirty())
	assert.True(t, loaded.IsAuthenticated())
	assert.Equal(t, entity.RoleAdmin, loaded.Role())
	assert.Equal(t, "abcdef123456", loaded.Nonce())
	assert.Equal(t, "verifier", loaded.X.CodeVerifier)
	assert.Equal(t, "012345", loaded.OTP.Code)
	assert.Equal(t, 30*24*time.Hour, loaded.TTL)
	assert.True(t, loaded.Principal.XAccessTokenExpiresAt.Equal(expires))
}

func TestIdentityDocument_ToEntity(t *testing.T) {
	oid := primitive.NewObjectID()
	doc := identityDocument{
		ID:      oid,
		Role:    "super",
		Address: "0xabc",
		XRateLimits: []rateLimitDocument{{
			Endpoint: "users/me", Method: "GET", Limit: 75, Remaining: 0, Reset: 1700000000,
			Day: &rateLimitWindowDocument{Limit: 25, Remaining: 3, Reset: 1700086400},
		}},
		APISecrets: []apiSecretDocument{{Key: "k", Title: "ci", HashedSecret: "h"}},
	}

	identity := doc.toEntity()

	assert.Equal(t, oid.Hex(), identity.ID)
	assert.Equal(t, entity.RoleSuper, identity.Role)
	require.Len(t, identity.XRateLimits, 1)
	assert.Equal(t, 25, identity.XRateLimits[0].Day.Limit)
	_, ok := identity.FindAPISecret("k")
	assert.True(t, ok)
}

func TestRateLimitDocument_RoundTrip(t *testing.T) {
	limit := entity.RateLimit{Endpoint: "tweets", Method: "POST", Limit: 10, Remaining: 2, Reset: 99}

	assert.Equal(t, limit, toRateLimitDocument(limit).toEntity())
}

func TestObjectID_Invalid(t *testing.T) {
	_, err := objectID("not-hex")

	require.Error(t, err)
}

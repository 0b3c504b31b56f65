package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{
		X:        &XConfig{ClientID: "client"},
		WhatsApp: &WhatsAppConfig{PhoneNumberID: "123"},
	}

	applyDefaults(cfg)

	assert.Equal(t, "/api", cfg.HTTP.APIPrefix)
	assert.Equal(t, "mongo", cfg.Storage.Driver)
	assert.Equal(t, 30*24*time.Hour, cfg.Session.TTL)
	assert.Equal(t, "authhub.sid", cfg.Session.CookieName)
	assert.Equal(t, []string{"tweet.read", "users.read", "offline.access", "follows.read", "like.read"}, cfg.X.Scopes)
	assert.Equal(t, "otp_verification", cfg.WhatsApp.Template)
	assert.Equal(t, 10*time.Minute, cfg.WhatsApp.OTP.TTL)
	assert.Equal(t, 5, cfg.WhatsApp.OTP.MaxAttempts)
	require.Len(t, cfg.EVM.Chains, 2)
	assert.Equal(t, uint64(137), cfg.EVM.Chains[0].ID)
	assert.Equal(t, uint64(11155111), cfg.EVM.Chains[1].ID)
}

func TestApplyDefaults_KeepsConfiguredChains(t *testing.T) {
	cfg := &Config{EVM: EVMConfig{Chains: []ChainConfig{{ID: 1, RPCURL: "http://localhost:8545"}}}}

	applyDefaults(cfg)

	assert.Len(t, cfg.EVM.Chains, 1)
}

func TestOTPSettings_WithoutWhatsApp(t *testing.T) {
	cfg := &Config{}

	otp := cfg.OTPSettings()

	assert.Equal(t, 10*time.Minute, otp.TTL)
	assert.Equal(t, 5, otp.SendLimit)
	assert.Equal(t, time.Hour, otp.SendWindow)
}

func TestValidate(t *testing.T) {
	t.Run("missing session secret", func(t *testing.T) {
		cfg := &Config{Storage: StorageConfig{Driver: "memory"}}
		require.Error(t, cfg.validate())
	})

	t.Run("mongo without uri", func(t *testing.T) {
		cfg := &Config{Storage: StorageConfig{Driver: "mongo"}, Session: SessionConfig{Secret: "s"}}
		require.Error(t, cfg.validate())
	})

	t.Run("unknown driver", func(t *testing.T) {
		cfg := &Config{Storage: StorageConfig{Driver: "bolt"}, Session: SessionConfig{Secret: "s"}}
		require.Error(t, cfg.validate())
	})

	t.Run("duplicate chains", func(t *testing.T) {
		cfg := &Config{Storage: StorageConfig{Driver: "memory"}, Session: SessionConfig{Secret: "s"}}
		cfg.EVM.Chains = []ChainConfig{{ID: 137}, {ID: 137}}
		require.Error(t, cfg.validate())
	})

	t.Run("memory driver", func(t *testing.T) {
		cfg := &Config{Storage: StorageConfig{Driver: "memory"}, Session: SessionConfig{Secret: "s"}}
		require.NoError(t, cfg.validate())
	})
}

func TestIsProduction(t *testing.T) {
	cfg := &Config{}
	cfg.Env.Env = "Production"
	assert.True(t, cfg.IsProduction())

	cfg.Env.Env = "local"
	assert.False(t, cfg.IsProduction())
}

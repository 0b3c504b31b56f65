package impl

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"authhub/config"
	"authhub/internal/domain/entity"
)

var testNow = time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func fixedClock() time.Time {
	return testNow
}

func newTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Session.TTL = 30 * 24 * time.Hour
	cfg.WhatsApp = &config.WhatsAppConfig{
		Template: "otp_verification",
		Language: "en_US",
		OTP: config.OTPConfig{
			TTL:         10 * time.Minute,
			SendLimit:   5,
			SendWindow:  time.Hour,
			MaxAttempts: 3,
		},
	}

	return cfg
}

func newTestSession() *entity.Session {
	sess := entity.NewSession("sid-1", 30*24*time.Hour, testNow)
	sess.MarkPersisted("sid-1", testNow)

	return sess
}

func siweMessage(address string, chainID uint64, nonce string) string {
	return fmt.Sprintf(`localhost:3000 wants you to sign in with your Ethereum account:
%s

Sign in.

URI: http://localhost:3000
Version: 1
Chain ID: %d
Nonce: %s
Issued At: 2025-03-14T11:59:00Z`, address, chainID, nonce)
}

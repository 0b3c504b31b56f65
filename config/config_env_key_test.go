package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"session": map[string]any{
			"cookieName": "authhub.sid",
		},
		"whatsapp": map[string]any{
			"phoneNumberId": "",
			"otp": map[string]any{
				"maxAttempts": 5,
			},
		},
		"x": map[string]any{
			"clientSecret": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "SESSION_COOKIENAME", want: "session.cookieName"},
		{envKey: "WHATSAPP_PHONENUMBERID", want: "whatsapp.phoneNumberId"},
		{envKey: "WHATSAPP_OTP_MAXATTEMPTS", want: "whatsapp.otp.maxAttempts"},
		{envKey: "X_CLIENTSECRET", want: "x.clientSecret"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

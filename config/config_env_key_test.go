package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"mongo": map[string]any{
			"connectTimeout": "10s",
			"database":       "lookate",
		},
		"push": map[string]any{
			"heartbeatInterval": "30s",
		},
		"secretKey": map[string]any{
			"access": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "MONGO_CONNECTTIMEOUT", want: "mongo.connectTimeout"},
		{envKey: "MONGO_DATABASE", want: "mongo.database"},
		{envKey: "PUSH_HEARTBEATINTERVAL", want: "push.heartbeatInterval"},
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
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

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	applyDefaults(cfg)

	if cfg.Push.HandshakeTimeout.Seconds() != 5 {
		t.Fatalf("handshake timeout default = %v", cfg.Push.HandshakeTimeout)
	}
	if cfg.Push.ReconnectAttempts != 5 {
		t.Fatalf("reconnect attempts default = %d", cfg.Push.ReconnectAttempts)
	}
	if cfg.Poll.Interval.Seconds() != 30 {
		t.Fatalf("poll interval default = %v", cfg.Poll.Interval)
	}
	if cfg.Poll.DefaultLimit != 50 {
		t.Fatalf("poll default limit = %d", cfg.Poll.DefaultLimit)
	}
	if cfg.Presence.OnlineWindow.Minutes() != 30 {
		t.Fatalf("presence window default = %v", cfg.Presence.OnlineWindow)
	}
}

package jwt

import (
	"testing"
	"time"
)

func TestGenerateToken(t *testing.T) {
	svc := NewJWTService("test-secret-key-for-jwt", "1h")

	token, expiresAt, err := svc.GenerateToken("u1", true)
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}
	if token == "" {
		t.Fatal("GenerateToken() returned empty token")
	}
	if expiresAt <= time.Now().Unix() {
		t.Errorf("expiresAt = %d, want a future timestamp", expiresAt)
	}

	decoded, err := svc.JWTAuth().Decode(token)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	username, ok := decoded.Get("username")
	if !ok || username != "u1" {
		t.Errorf("username claim = %v, want u1", username)
	}
	admin, ok := decoded.Get("is_admin")
	if !ok || admin != true {
		t.Errorf("is_admin claim = %v, want true", admin)
	}
	if _, ok := decoded.Get("jti"); !ok {
		t.Error("jti claim missing")
	}
}

func TestGenerateTokenBadExpiration(t *testing.T) {
	svc := NewJWTService("test-secret-key-for-jwt", "not-a-duration")
	if _, _, err := svc.GenerateToken("u1", false); err == nil {
		t.Error("GenerateToken() error = nil, want parse error")
	}
}

package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/you/vaultsvc/domain"
)

func TestJWTService_IssueAndValidate(t *testing.T) {
	svc := NewJWTService("test-secret", "vaultsvc", time.Hour)

	token, err := svc.Issue(42, "user@example.com")
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}
	if token == "" {
		t.Fatal("Issue returned empty token")
	}

	claims, err := svc.Validate(token)
	if err != nil {
		t.Fatalf("Validate returned error: %v", err)
	}
	if claims.UserID != 42 {
		t.Errorf("expected user ID 42, got %d", claims.UserID)
	}
	if claims.Email != "user@example.com" {
		t.Errorf("expected email user@example.com, got %s", claims.Email)
	}
	if claims.ExpiresAt <= time.Now().Unix() {
		t.Error("expected expiry in the future")
	}
}

func TestJWTService_Validate_WrongSecret(t *testing.T) {
	issuer := NewJWTService("secret-a", "vaultsvc", time.Hour)
	validator := NewJWTService("secret-b", "vaultsvc", time.Hour)

	token, err := issuer.Issue(1, "user@example.com")
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	if _, err := validator.Validate(token); err != domain.ErrTokenInvalid {
		t.Errorf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestJWTService_Validate_Tampered(t *testing.T) {
	svc := NewJWTService("test-secret", "vaultsvc", time.Hour)

	token, err := svc.Issue(1, "user@example.com")
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		t.Fatalf("expected a three-part JWT, got %d parts", len(parts))
	}
	sig := parts[2]
	flipped := byte('A')
	if sig[len(sig)-1] == 'A' {
		flipped = 'B'
	}
	tampered := parts[0] + "." + parts[1] + "." + sig[:len(sig)-1] + string(flipped)

	if _, err := svc.Validate(tampered); err != domain.ErrTokenInvalid {
		t.Errorf("expected ErrTokenInvalid for tampered signature, got %v", err)
	}
}

func TestJWTService_Validate_Expired(t *testing.T) {
	svc := NewJWTService("test-secret", "vaultsvc", -time.Minute)

	token, err := svc.Issue(1, "user@example.com")
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	if _, err := svc.Validate(token); err != domain.ErrTokenExpired {
		t.Errorf("expected ErrTokenExpired, got %v", err)
	}
}

func TestJWTService_Validate_Garbage(t *testing.T) {
	svc := NewJWTService("test-secret", "vaultsvc", time.Hour)

	for _, token := range []string{"", "garbage", "a.b.c"} {
		if _, err := svc.Validate(token); err == nil {
			t.Errorf("expected error for token %q, got nil", token)
		}
	}
}

package auth

import (
	"strings"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"
)

const testSecret = "test-secret-at-least-32-chars-long-for-security"

func TestJWTManager_GenerateAndValidate_Success(t *testing.T) {
	manager := NewJWTManager(testSecret, "skillone-test", 15*time.Minute)

	token, err := manager.GenerateAccessToken("admin", RoleAdmin)
	if err != nil {
		t.Fatalf("GenerateAccessToken failed: %v", err)
	}
	if token == "" {
		t.Fatal("expected non-empty token")
	}

	subject, role, err := manager.ValidateAccessToken(token)
	if err != nil {
		t.Fatalf("ValidateAccessToken failed: %v", err)
	}
	if subject != "admin" {
		t.Errorf("expected subject 'admin', got %q", subject)
	}
	if role != RoleAdmin {
		t.Errorf("expected role %q, got %q", RoleAdmin, role)
	}
}

func TestJWTManager_Validate_EmptyToken(t *testing.T) {
	manager := NewJWTManager(testSecret, "skillone-test", 15*time.Minute)

	if _, _, err := manager.ValidateAccessToken(""); err == nil {
		t.Fatal("expected error for empty token")
	}
}

func TestJWTManager_Validate_WrongSecret(t *testing.T) {
	manager := NewJWTManager(testSecret, "skillone-test", 15*time.Minute)
	other := NewJWTManager("another-secret-also-32-chars-long-at-least!", "skillone-test", 15*time.Minute)

	token, err := manager.GenerateAccessToken("admin", RoleAdmin)
	if err != nil {
		t.Fatalf("GenerateAccessToken failed: %v", err)
	}

	if _, _, err := other.ValidateAccessToken(token); err == nil {
		t.Fatal("expected error for token signed with a different secret")
	}
}

func TestJWTManager_Validate_WrongIssuer(t *testing.T) {
	manager := NewJWTManager(testSecret, "someone-else", 15*time.Minute)
	validator := NewJWTManager(testSecret, "skillone-test", 15*time.Minute)

	token, err := manager.GenerateAccessToken("admin", RoleAdmin)
	if err != nil {
		t.Fatalf("GenerateAccessToken failed: %v", err)
	}

	_, _, err = validator.ValidateAccessToken(token)
	if err == nil {
		t.Fatal("expected error for wrong issuer")
	}
	if !strings.Contains(err.Error(), "issuer") {
		t.Errorf("expected issuer error, got %v", err)
	}
}

func TestJWTManager_Validate_Expired(t *testing.T) {
	manager := NewJWTManager(testSecret, "skillone-test", -1*time.Minute)

	token, err := manager.GenerateAccessToken("admin", RoleAdmin)
	if err != nil {
		t.Fatalf("GenerateAccessToken failed: %v", err)
	}

	if _, _, err := manager.ValidateAccessToken(token); err == nil {
		t.Fatal("expected error for expired token")
	}
}

func TestCredentialVerifier(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("correct horse"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt.GenerateFromPassword failed: %v", err)
	}

	verifier := NewCredentialVerifier("admin", string(hash))

	if err := verifier.Verify("admin", "correct horse"); err != nil {
		t.Errorf("expected valid credentials to pass: %v", err)
	}
	if err := verifier.Verify("admin", "wrong"); err == nil {
		t.Error("expected wrong password to fail")
	}
	if err := verifier.Verify("root", "correct horse"); err == nil {
		t.Error("expected wrong username to fail")
	}
}

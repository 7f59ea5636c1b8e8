package token

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/dkanak/shopcart-backend/internal/apperr"
	"github.com/dkanak/shopcart-backend/internal/constants"
)

func TestIssueVerifyRoundtrip(t *testing.T) {
	t.Parallel()
	svc := NewService("test-secret", time.Hour)

	tok, err := svc.Issue("user-42")
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}
	claims, err := svc.Verify(tok)
	if err != nil {
		t.Fatalf("verify failed: %v", err)
	}
	if claims.UserID != "user-42" {
		t.Fatalf("unexpected subject: got=%q want=%q", claims.UserID, "user-42")
	}
	if claims.ExpiresAt.Before(time.Now()) {
		t.Fatalf("expiry already in the past: %v", claims.ExpiresAt)
	}
}

func TestVerifyExpired(t *testing.T) {
	t.Parallel()
	svc := NewService("test-secret", -time.Minute)

	tok, err := svc.Issue("user-42")
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}
	_, err = svc.Verify(tok)
	if err == nil {
		t.Fatal("expected expired token to fail verification")
	}
	if got := apperr.MessageOf(err); got != constants.MsgExpiredToken {
		t.Fatalf("unexpected message: got=%q want=%q", got, constants.MsgExpiredToken)
	}
}

func TestVerifyTampered(t *testing.T) {
	t.Parallel()
	svc := NewService("test-secret", time.Hour)

	tok, err := svc.Issue("user-42")
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	cases := map[string]string{
		"flipped signature": tok[:len(tok)-2] + "xx",
		"garbage":           "not-a-token",
		"empty segments":    "..",
	}
	for name, bad := range cases {
		if _, err := svc.Verify(bad); err == nil {
			t.Fatalf("%s: expected verification failure", name)
		} else if got := apperr.MessageOf(err); got != constants.MsgInvalidToken {
			t.Fatalf("%s: unexpected message: got=%q want=%q", name, got, constants.MsgInvalidToken)
		}
	}
}

func TestVerifyWrongSecret(t *testing.T) {
	t.Parallel()
	tok, err := NewService("secret-a", time.Hour).Issue("user-42")
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}
	if _, err := NewService("secret-b", time.Hour).Verify(tok); err == nil {
		t.Fatal("expected cross-secret verification to fail")
	} else if got := apperr.MessageOf(err); got != constants.MsgInvalidToken {
		t.Fatalf("unexpected message: got=%q want=%q", got, constants.MsgInvalidToken)
	}
}

func TestVerifyNotYetValid(t *testing.T) {
	t.Parallel()
	secret := "test-secret"
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   "user-42",
		NotBefore: jwt.NewNumericDate(now.Add(time.Hour)),
		ExpiresAt: jwt.NewNumericDate(now.Add(2 * time.Hour)),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign failed: %v", err)
	}

	_, err = NewService(secret, time.Hour).Verify(signed)
	if err == nil {
		t.Fatal("expected not-yet-valid token to fail verification")
	}
	if got := apperr.MessageOf(err); got != constants.MsgInactiveToken {
		t.Fatalf("unexpected message: got=%q want=%q", got, constants.MsgInactiveToken)
	}
}

func TestIssuedTokensLookLikeJWTs(t *testing.T) {
	t.Parallel()
	tok, err := NewService("test-secret", time.Hour).Issue("user-42")
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}
	if parts := strings.Split(tok, "."); len(parts) != 3 {
		t.Fatalf("unexpected token shape: %d segments", len(parts))
	}
}

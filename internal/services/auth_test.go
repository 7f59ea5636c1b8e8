package services

import (
	"context"
	"testing"
	"time"

	"github.com/dkanak/shopcart-backend/internal/apperr"
	"github.com/dkanak/shopcart-backend/internal/cache"
	"github.com/dkanak/shopcart-backend/internal/constants"
	"github.com/dkanak/shopcart-backend/internal/docindex"
	"github.com/dkanak/shopcart-backend/internal/logger"
	"github.com/dkanak/shopcart-backend/internal/repos"
	"github.com/dkanak/shopcart-backend/internal/token"
)

func newAuthFixture(t *testing.T, ttl time.Duration) (AuthService, cache.Cache) {
	t.Helper()
	log, err := logger.New("development")
	if err != nil {
		t.Fatalf("init logger: %v", err)
	}
	store := docindex.NewMemory()
	userRepo := repos.NewUserRepo(store, log)
	tokens := token.NewService("test-secret", ttl)
	kv := cache.NewMemory()
	return NewAuthService(log, userRepo, tokens, kv), kv
}

func TestRegisterAssignsID(t *testing.T) {
	t.Parallel()
	svc, _ := newAuthFixture(t, time.Hour)
	ctx := context.Background()

	id, err := svc.Register(ctx, "Divya Kanak", "divya.kanak@tatvasoft.com", "123456789")
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if id == "" {
		t.Fatal("expected a store-assigned id")
	}
}

func TestRegisterDuplicateEmailConflicts(t *testing.T) {
	t.Parallel()
	svc, _ := newAuthFixture(t, time.Hour)
	ctx := context.Background()

	if _, err := svc.Register(ctx, "Divya Kanak", "divya.kanak@tatvasoft.com", "123456789"); err != nil {
		t.Fatalf("first register failed: %v", err)
	}
	_, err := svc.Register(ctx, "Other Person", "divya.kanak@tatvasoft.com", "different")
	if err == nil {
		t.Fatal("expected duplicate email to conflict")
	}
	if !apperr.IsKind(err, apperr.KindConflict) {
		t.Fatalf("unexpected kind: got=%v want=%v", apperr.KindOf(err), apperr.KindConflict)
	}
	if got := apperr.MessageOf(err); got != constants.MsgEmailExist {
		t.Fatalf("unexpected message: got=%q want=%q", got, constants.MsgEmailExist)
	}
}

func TestLoginRoundtrip(t *testing.T) {
	t.Parallel()
	svc, _ := newAuthFixture(t, time.Hour)
	ctx := context.Background()

	id, err := svc.Register(ctx, "Divya Kanak", "divya.kanak@tatvasoft.com", "123456789")
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	tok, user, err := svc.Login(ctx, "divya.kanak@tatvasoft.com", "123456789")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if user.ID != id {
		t.Fatalf("unexpected user id: got=%q want=%q", user.ID, id)
	}

	identity, err := svc.VerifyToken(ctx, tok)
	if err != nil {
		t.Fatalf("verify failed: %v", err)
	}
	if identity.UserID != id {
		t.Fatalf("token resolved wrong user: got=%q want=%q", identity.UserID, id)
	}
	if identity.Name != "Divya Kanak" || identity.Email != "divya.kanak@tatvasoft.com" {
		t.Fatalf("identity incomplete: %+v", identity)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	t.Parallel()
	svc, _ := newAuthFixture(t, time.Hour)
	ctx := context.Background()

	if _, err := svc.Register(ctx, "Divya Kanak", "divya.kanak@tatvasoft.com", "123456789"); err != nil {
		t.Fatalf("register failed: %v", err)
	}
	_, _, err := svc.Login(ctx, "divya.kanak@tatvasoft.com", "wrong")
	if err == nil {
		t.Fatal("expected wrong password to fail")
	}
	if !apperr.IsKind(err, apperr.KindInvalidCredentials) {
		t.Fatalf("unexpected kind: got=%v want=%v", apperr.KindOf(err), apperr.KindInvalidCredentials)
	}
}

func TestLoginUnknownEmail(t *testing.T) {
	t.Parallel()
	svc, _ := newAuthFixture(t, time.Hour)

	_, _, err := svc.Login(context.Background(), "nobody@example.com", "123456789")
	if err == nil {
		t.Fatal("expected unknown email to fail")
	}
	if got := apperr.MessageOf(err); got != constants.MsgUserNotExist {
		t.Fatalf("unexpected message: got=%q want=%q", got, constants.MsgUserNotExist)
	}
}

func TestVerifyTokenUsesCache(t *testing.T) {
	t.Parallel()
	svc, kv := newAuthFixture(t, time.Hour)
	ctx := context.Background()

	if _, err := svc.Register(ctx, "Divya Kanak", "divya.kanak@tatvasoft.com", "123456789"); err != nil {
		t.Fatalf("register failed: %v", err)
	}
	tok, _, err := svc.Login(ctx, "divya.kanak@tatvasoft.com", "123456789")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	if _, err := svc.VerifyToken(ctx, tok); err != nil {
		t.Fatalf("verify failed: %v", err)
	}
	if _, ok, _ := kv.Get(ctx, verifyCachePrefix+tok); !ok {
		t.Fatal("successful verification not cached")
	}
	if _, err := svc.VerifyToken(ctx, tok); err != nil {
		t.Fatalf("cached verify failed: %v", err)
	}
}

func TestVerifyTokenCacheNeverOutlivesToken(t *testing.T) {
	t.Parallel()
	svc, _ := newAuthFixture(t, time.Second)
	ctx := context.Background()

	if _, err := svc.Register(ctx, "Divya Kanak", "divya.kanak@tatvasoft.com", "123456789"); err != nil {
		t.Fatalf("register failed: %v", err)
	}
	tok, _, err := svc.Login(ctx, "divya.kanak@tatvasoft.com", "123456789")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if _, err := svc.VerifyToken(ctx, tok); err != nil {
		t.Fatalf("verify failed: %v", err)
	}

	time.Sleep(1100 * time.Millisecond)

	_, err = svc.VerifyToken(ctx, tok)
	if err == nil {
		t.Fatal("expected verification to fail after token expiry")
	}
	if got := apperr.MessageOf(err); got != constants.MsgExpiredToken {
		t.Fatalf("unexpected message: got=%q want=%q", got, constants.MsgExpiredToken)
	}
}

func TestVerifyTokenGarbage(t *testing.T) {
	t.Parallel()
	svc, _ := newAuthFixture(t, time.Hour)

	_, err := svc.VerifyToken(context.Background(), "not-a-token")
	if err == nil {
		t.Fatal("expected garbage token to fail")
	}
	if !apperr.IsKind(err, apperr.KindAuthFailed) {
		t.Fatalf("unexpected kind: got=%v", apperr.KindOf(err))
	}
}

func TestVerifyTokenEmpty(t *testing.T) {
	t.Parallel()
	svc, _ := newAuthFixture(t, time.Hour)

	_, err := svc.VerifyToken(context.Background(), "")
	if err == nil {
		t.Fatal("expected empty token to fail")
	}
	if got := apperr.MessageOf(err); got != constants.MsgTokenRequired {
		t.Fatalf("unexpected message: got=%q want=%q", got, constants.MsgTokenRequired)
	}
}

package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/dkanak/shopcart-backend/internal/apperr"
	"github.com/dkanak/shopcart-backend/internal/cache"
	"github.com/dkanak/shopcart-backend/internal/constants"
	"github.com/dkanak/shopcart-backend/internal/logger"
	"github.com/dkanak/shopcart-backend/internal/repos"
	"github.com/dkanak/shopcart-backend/internal/requestdata"
	"github.com/dkanak/shopcart-backend/internal/token"
	"github.com/dkanak/shopcart-backend/internal/types"
	"github.com/dkanak/shopcart-backend/internal/utils"
)

// verifyCacheTTL bounds how long a successful token verification may be
// reused. A cached entry is additionally capped by the token's own
// expiry: it can shortcut the signature check and user lookup, never the
// expiry check.
const verifyCacheTTL = time.Hour

const verifyCachePrefix = "auth:verify:"

type AuthService interface {
	// Register creates a user and returns the store-assigned id.
	Register(ctx context.Context, name, email, password string) (string, error)
	// Login checks credentials and mints a bearer token.
	Login(ctx context.Context, email, password string) (tok string, user *types.User, err error)
	// VerifyToken resolves a bearer token to the caller's identity.
	VerifyToken(ctx context.Context, tokenString string) (*requestdata.Identity, error)
}

type authService struct {
	log      *logger.Logger
	userRepo repos.UserRepo
	tokens   *token.Service
	cache    cache.Cache
}

func NewAuthService(log *logger.Logger, userRepo repos.UserRepo, tokens *token.Service, kv cache.Cache) AuthService {
	serviceLog := log.With("service", "AuthService")
	return &authService{log: serviceLog, userRepo: userRepo, tokens: tokens, cache: kv}
}

func (as *authService) Register(ctx context.Context, name, email, password string) (string, error) {
	// Check-then-insert: two store calls with no store-side uniqueness
	// guarantee, so two racing registrations of one email can both land.
	exists, err := as.userRepo.EmailExists(ctx, email)
	if err != nil {
		as.log.Warn("Email existence check failed", "error", err)
		return "", apperr.Internal(err)
	}
	if exists {
		return "", apperr.Conflict(constants.MsgEmailExist)
	}

	hashed, err := utils.HashPassword(password)
	if err != nil {
		as.log.Warn("Password hash failed", "error", err)
		return "", apperr.Internal(err)
	}

	user := &types.User{Name: name, Email: email, Password: hashed}
	created, err := as.userRepo.Create(ctx, user)
	if err != nil {
		as.log.Warn("User insert failed", "error", err)
		return "", apperr.Internal(err)
	}
	as.log.Info("User registered", "user_id", created.ID)
	return created.ID, nil
}

func (as *authService) Login(ctx context.Context, email, password string) (string, *types.User, error) {
	user, err := as.userRepo.GetByEmail(ctx, email)
	if err != nil {
		as.log.Warn("User lookup failed", "error", err)
		return "", nil, apperr.Internal(err)
	}
	if user == nil {
		return "", nil, apperr.NotFound(constants.MsgUserNotExist)
	}
	if !utils.ComparePassword(user.Password, password) {
		return "", nil, apperr.InvalidCredentials()
	}
	tok, err := as.tokens.Issue(user.ID)
	if err != nil {
		as.log.Error("Token issue failed", "error", err)
		return "", nil, apperr.Internal(err)
	}
	as.log.Info("User logged in", "user_id", user.ID)
	return tok, user, nil
}

// verifyCacheEntry is the serialized form of a cached verification
// outcome. ExpiresAt is the token's own expiry, re-checked on every hit.
type verifyCacheEntry struct {
	UserID    string `json:"userId"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	ExpiresAt int64  `json:"expiresAt"`
}

func (as *authService) VerifyToken(ctx context.Context, tokenString string) (*requestdata.Identity, error) {
	if tokenString == "" {
		return nil, apperr.AuthFailed(constants.MsgTokenRequired)
	}

	cacheKey := verifyCachePrefix + tokenString
	if raw, ok, err := as.cache.Get(ctx, cacheKey); err != nil {
		as.log.Warn("Verify cache read failed", "error", err)
	} else if ok {
		var entry verifyCacheEntry
		if err := json.Unmarshal([]byte(raw), &entry); err == nil {
			if entry.ExpiresAt == 0 || time.Now().Unix() < entry.ExpiresAt {
				return &requestdata.Identity{UserID: entry.UserID, Name: entry.Name, Email: entry.Email}, nil
			}
			return nil, apperr.AuthFailed(constants.MsgExpiredToken)
		}
	}

	claims, err := as.tokens.Verify(tokenString)
	if err != nil {
		return nil, err
	}

	user, err := as.userRepo.GetByID(ctx, claims.UserID)
	if err != nil {
		as.log.Warn("User lookup by token subject failed", "error", err)
		return nil, apperr.Internal(err)
	}
	if user == nil {
		// Token subject no longer resolves: auth failure, not a 404.
		return nil, apperr.AuthFailed(constants.MsgUserNotExist)
	}

	identity := &requestdata.Identity{UserID: user.ID, Name: user.Name, Email: user.Email}

	entry := verifyCacheEntry{
		UserID: identity.UserID,
		Name:   identity.Name,
		Email:  identity.Email,
	}
	ttl := verifyCacheTTL
	if !claims.ExpiresAt.IsZero() {
		entry.ExpiresAt = claims.ExpiresAt.Unix()
		if remaining := time.Until(claims.ExpiresAt); remaining < ttl {
			ttl = remaining
		}
	}
	if ttl > 0 {
		if raw, err := json.Marshal(entry); err == nil {
			if err := as.cache.SetWithTTL(ctx, cacheKey, string(raw), ttl); err != nil {
				as.log.Warn("Verify cache write failed", "error", err)
			}
		}
	}

	return identity, nil
}

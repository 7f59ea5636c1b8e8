package repos

import (
	"context"

	"github.com/dkanak/shopcart-backend/internal/docindex"
	"github.com/dkanak/shopcart-backend/internal/logger"
	"github.com/dkanak/shopcart-backend/internal/types"
)

// UsersCollection is the document collection user records live in.
const UsersCollection = "users"

// UsersSchema is the mapping the seeder creates the users collection with.
var UsersSchema = docindex.Schema{
	"name":     "text",
	"email":    "keyword",
	"password": "keyword",
}

type UserRepo interface {
	// Create inserts the user and returns it with the store-assigned id.
	Create(ctx context.Context, user *types.User) (*types.User, error)
	// GetByEmail returns nil when no user matches.
	GetByEmail(ctx context.Context, email string) (*types.User, error)
	// GetByID returns nil when no user matches.
	GetByID(ctx context.Context, id string) (*types.User, error)
	EmailExists(ctx context.Context, email string) (bool, error)
}

type userRepo struct {
	store docindex.Store
	log   *logger.Logger
}

func NewUserRepo(store docindex.Store, baseLog *logger.Logger) UserRepo {
	repoLog := baseLog.With("repo", "UserRepo")
	return &userRepo{store: store, log: repoLog}
}

func (ur *userRepo) Create(ctx context.Context, user *types.User) (*types.User, error) {
	body := map[string]interface{}{
		"name":     user.Name,
		"email":    user.Email,
		"password": user.Password,
	}
	id, err := ur.store.Insert(ctx, UsersCollection, "", body)
	if err != nil {
		return nil, err
	}
	user.ID = id
	return user, nil
}

func (ur *userRepo) GetByEmail(ctx context.Context, email string) (*types.User, error) {
	docs, err := ur.store.Search(ctx, UsersCollection, "email", email, 1)
	if err != nil {
		return nil, err
	}
	if len(docs) == 0 {
		return nil, nil
	}
	return docToUser(docs[0]), nil
}

func (ur *userRepo) GetByID(ctx context.Context, id string) (*types.User, error) {
	doc, err := ur.store.Get(ctx, UsersCollection, id)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, nil
	}
	return docToUser(*doc), nil
}

func (ur *userRepo) EmailExists(ctx context.Context, email string) (bool, error) {
	docs, err := ur.store.Search(ctx, UsersCollection, "email", email, 1)
	if err != nil {
		return false, err
	}
	return len(docs) > 0, nil
}

func docToUser(doc docindex.Doc) *types.User {
	return &types.User{
		ID:       doc.ID,
		Name:     stringField(doc.Body, "name"),
		Email:    stringField(doc.Body, "email"),
		Password: stringField(doc.Body, "password"),
	}
}

func stringField(body map[string]interface{}, field string) string {
	if v, ok := body[field].(string); ok {
		return v
	}
	return ""
}

package services

import (
	"context"
	"encoding/json"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/dkanak/shopcart-backend/internal/apperr"
	"github.com/dkanak/shopcart-backend/internal/cache"
	"github.com/dkanak/shopcart-backend/internal/constants"
	"github.com/dkanak/shopcart-backend/internal/kmutex"
	"github.com/dkanak/shopcart-backend/internal/logger"
	"github.com/dkanak/shopcart-backend/internal/repos"
	"github.com/dkanak/shopcart-backend/internal/types"
)

// cartHashKey is the cache hash all carts live under, one field per
// user, each field a serialized productId->quantity map.
const cartHashKey = "productCart"

const (
	// MinQuantity and MaxQuantity bound a single add.
	MinQuantity = 1
	MaxQuantity = 50
)

type CartService interface {
	// Add merges quantity units of a product into the user's cart.
	Add(ctx context.Context, userID, productID string, quantity int) error
	// Details returns the cart joined with product metadata, one row per
	// distinct product, ordered by product id.
	Details(ctx context.Context, userID string) ([]types.CartRow, error)
}

type cartService struct {
	log         *logger.Logger
	cache       cache.Cache
	productRepo repos.ProductRepo
	locks       *kmutex.KMutex
}

func NewCartService(log *logger.Logger, kv cache.Cache, productRepo repos.ProductRepo) CartService {
	serviceLog := log.With("service", "CartService")
	return &cartService{
		log:         serviceLog,
		cache:       kv,
		productRepo: productRepo,
		locks:       kmutex.New(),
	}
}

func (cs *cartService) Add(ctx context.Context, userID, productID string, quantity int) error {
	if quantity < MinQuantity || quantity > MaxQuantity {
		return apperr.Validation(constants.MsgQuantityInvalid)
	}

	exists, err := cs.productRepo.Exists(ctx, productID)
	if err != nil {
		cs.log.Warn("Product existence check failed", "error", err)
		return apperr.Internal(err)
	}
	if !exists {
		return apperr.NotFound(constants.MsgProductNotExist)
	}

	// The read-modify-write below would lose updates if two adds for the
	// same user interleaved between HGet and HSet. The per-user lock
	// serializes the whole section; a multi-instance deployment would
	// need a store-side atomic merge instead.
	cs.locks.Lock(userID)
	defer cs.locks.Unlock(userID)

	cart, err := cs.readCart(ctx, userID)
	if err != nil {
		return err
	}
	cart[productID] += quantity

	raw, err := json.Marshal(cart)
	if err != nil {
		return apperr.Internal(err)
	}
	if err := cs.cache.HSet(ctx, cartHashKey, userID, string(raw)); err != nil {
		cs.log.Warn("Cart write failed", "error", err)
		return apperr.Internal(err)
	}
	return nil
}

func (cs *cartService) Details(ctx context.Context, userID string) ([]types.CartRow, error) {
	cart, err := cs.readCart(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(cart) == 0 {
		return nil, apperr.NotFound(constants.MsgCartNotFound)
	}

	productIDs := make([]string, 0, len(cart))
	for id := range cart {
		productIDs = append(productIDs, id)
	}
	sort.Strings(productIDs)

	rows := make([]types.CartRow, len(productIDs))
	g, gctx := errgroup.WithContext(ctx)
	for i, id := range productIDs {
		i, id := i, id
		g.Go(func() error {
			product, err := cs.productRepo.GetByID(gctx, id)
			if err != nil {
				cs.log.Warn("Product lookup failed", "product_id", id, "error", err)
				return apperr.Internal(err)
			}
			if product == nil {
				// A vanished product fails the whole read; rows are never
				// silently dropped.
				return apperr.NotFound(constants.MsgProductNotExist)
			}
			rows[i] = types.CartRow{
				ID:       product.ID,
				Name:     product.Name,
				SKU:      product.SKU,
				Category: product.Category,
				Quantity: cart[id],
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return rows, nil
}

// readCart loads and decodes the user's cart map; absent means empty.
func (cs *cartService) readCart(ctx context.Context, userID string) (map[string]int, error) {
	raw, ok, err := cs.cache.HGet(ctx, cartHashKey, userID)
	if err != nil {
		cs.log.Warn("Cart read failed", "error", err)
		return nil, apperr.Internal(err)
	}
	cart := make(map[string]int)
	if !ok || raw == "" {
		return cart, nil
	}
	if err := json.Unmarshal([]byte(raw), &cart); err != nil {
		cs.log.Warn("Cart payload corrupt", "user_id", userID, "error", err)
		return nil, apperr.Internal(err)
	}
	return cart, nil
}

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
	"github.com/dkanak/shopcart-backend/internal/types"
)

const (
	productListCacheKey = "products"
	productListCacheTTL = time.Hour
)

type ProductService interface {
	List(ctx context.Context) ([]types.Product, error)
	Get(ctx context.Context, id string) (*types.Product, error)
}

type productService struct {
	log         *logger.Logger
	productRepo repos.ProductRepo
	cache       cache.Cache
}

func NewProductService(log *logger.Logger, productRepo repos.ProductRepo, kv cache.Cache) ProductService {
	serviceLog := log.With("service", "ProductService")
	return &productService{log: serviceLog, productRepo: productRepo, cache: kv}
}

func (ps *productService) List(ctx context.Context) ([]types.Product, error) {
	if raw, ok, err := ps.cache.Get(ctx, productListCacheKey); err != nil {
		ps.log.Warn("Product list cache read failed", "error", err)
	} else if ok {
		var products []types.Product
		if err := json.Unmarshal([]byte(raw), &products); err == nil {
			return products, nil
		}
	}

	products, err := ps.productRepo.List(ctx)
	if err != nil {
		ps.log.Warn("Product list failed", "error", err)
		return nil, apperr.Internal(err)
	}

	if raw, err := json.Marshal(products); err == nil {
		if err := ps.cache.SetWithTTL(ctx, productListCacheKey, string(raw), productListCacheTTL); err != nil {
			ps.log.Warn("Product list cache write failed", "error", err)
		}
	}
	return products, nil
}

func (ps *productService) Get(ctx context.Context, id string) (*types.Product, error) {
	product, err := ps.productRepo.GetByID(ctx, id)
	if err != nil {
		ps.log.Warn("Product lookup failed", "product_id", id, "error", err)
		return nil, apperr.Internal(err)
	}
	if product == nil {
		return nil, apperr.NotFound(constants.MsgProductNotExist)
	}
	return product, nil
}

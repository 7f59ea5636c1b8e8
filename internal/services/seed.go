package services

import (
	"context"

	"github.com/dkanak/shopcart-backend/internal/apperr"
	"github.com/dkanak/shopcart-backend/internal/docindex"
	"github.com/dkanak/shopcart-backend/internal/logger"
	"github.com/dkanak/shopcart-backend/internal/repos"
	"github.com/dkanak/shopcart-backend/internal/types"
	"github.com/dkanak/shopcart-backend/internal/utils"
)

const (
	seedUserName     = "Divya Kanak"
	seedUserEmail    = "divya.kanak@tatvasoft.com"
	seedUserPassword = "123456789"
)

var seedCatalog = []types.Product{
	{ID: "1", Name: "Amber Earings", SKU: "AMB-ER-01", Category: "jewellery"},
	{ID: "2", Name: "Opal Pendant", SKU: "OPL-PN-02", Category: "jewellery"},
	{ID: "3", Name: "Linen Shirt", SKU: "LNN-SH-03", Category: "apparel"},
	{ID: "4", Name: "Denim Jacket", SKU: "DNM-JK-04", Category: "apparel"},
	{ID: "5", Name: "Ceramic Mug", SKU: "CRM-MG-05", Category: "homeware"},
	{ID: "6", Name: "Walnut Tray", SKU: "WLN-TR-06", Category: "homeware"},
	{ID: "7", Name: "Field Notebook", SKU: "FLD-NB-07", Category: "stationery"},
	{ID: "8", Name: "Brass Pen", SKU: "BRS-PN-08", Category: "stationery"},
}

// SeedService provisions the two document collections with their
// starter data. Runs are idempotent: an existing collection is left
// untouched.
type SeedService interface {
	Run(ctx context.Context) error
}

type seedService struct {
	log   *logger.Logger
	store docindex.Store
}

func NewSeedService(log *logger.Logger, store docindex.Store) SeedService {
	serviceLog := log.With("service", "SeedService")
	return &seedService{log: serviceLog, store: store}
}

func (ss *seedService) Run(ctx context.Context) error {
	if err := ss.seedUsers(ctx); err != nil {
		return err
	}
	if err := ss.seedProducts(ctx); err != nil {
		return err
	}
	ss.log.Info("Seeder finished")
	return nil
}

func (ss *seedService) seedUsers(ctx context.Context) error {
	exists, err := ss.store.CollectionExists(ctx, repos.UsersCollection)
	if err != nil {
		return apperr.Internal(err)
	}
	if exists {
		return nil
	}
	if err := ss.store.CreateCollection(ctx, repos.UsersCollection, repos.UsersSchema); err != nil {
		return apperr.Internal(err)
	}
	hashed, err := utils.HashPassword(seedUserPassword)
	if err != nil {
		return apperr.Internal(err)
	}
	body := map[string]interface{}{
		"name":     seedUserName,
		"email":    seedUserEmail,
		"password": hashed,
	}
	if _, err := ss.store.Insert(ctx, repos.UsersCollection, "1", body); err != nil {
		return apperr.Internal(err)
	}
	ss.log.Info("Users collection seeded")
	return nil
}

func (ss *seedService) seedProducts(ctx context.Context) error {
	exists, err := ss.store.CollectionExists(ctx, repos.ProductsCollection)
	if err != nil {
		return apperr.Internal(err)
	}
	if exists {
		return nil
	}
	if err := ss.store.CreateCollection(ctx, repos.ProductsCollection, repos.ProductsSchema); err != nil {
		return apperr.Internal(err)
	}
	for _, product := range seedCatalog {
		body := map[string]interface{}{
			"name":     product.Name,
			"sku":      product.SKU,
			"category": product.Category,
		}
		if _, err := ss.store.Insert(ctx, repos.ProductsCollection, product.ID, body); err != nil {
			return apperr.Internal(err)
		}
	}
	ss.log.Info("Products collection seeded", "count", len(seedCatalog))
	return nil
}

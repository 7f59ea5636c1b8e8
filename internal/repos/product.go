package repos

import (
	"context"

	"github.com/dkanak/shopcart-backend/internal/docindex"
	"github.com/dkanak/shopcart-backend/internal/logger"
	"github.com/dkanak/shopcart-backend/internal/types"
)

// ProductsCollection is the document collection product records live in.
const ProductsCollection = "products"

// ProductsSchema is the mapping the seeder creates the products
// collection with.
var ProductsSchema = docindex.Schema{
	"name":     "text",
	"sku":      "keyword",
	"category": "text",
}

type ProductRepo interface {
	List(ctx context.Context) ([]types.Product, error)
	// GetByID returns nil when no product matches.
	GetByID(ctx context.Context, id string) (*types.Product, error)
	Exists(ctx context.Context, id string) (bool, error)
}

type productRepo struct {
	store docindex.Store
	log   *logger.Logger
}

func NewProductRepo(store docindex.Store, baseLog *logger.Logger) ProductRepo {
	repoLog := baseLog.With("repo", "ProductRepo")
	return &productRepo{store: store, log: repoLog}
}

func (pr *productRepo) List(ctx context.Context) ([]types.Product, error) {
	docs, err := pr.store.SearchAll(ctx, ProductsCollection)
	if err != nil {
		return nil, err
	}
	products := make([]types.Product, 0, len(docs))
	for _, doc := range docs {
		products = append(products, docToProduct(doc))
	}
	return products, nil
}

func (pr *productRepo) GetByID(ctx context.Context, id string) (*types.Product, error) {
	doc, err := pr.store.Get(ctx, ProductsCollection, id)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, nil
	}
	product := docToProduct(*doc)
	return &product, nil
}

func (pr *productRepo) Exists(ctx context.Context, id string) (bool, error) {
	return pr.store.Exists(ctx, ProductsCollection, id)
}

func docToProduct(doc docindex.Doc) types.Product {
	return types.Product{
		ID:       doc.ID,
		Name:     stringField(doc.Body, "name"),
		SKU:      stringField(doc.Body, "sku"),
		Category: stringField(doc.Body, "category"),
	}
}

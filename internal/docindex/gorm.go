package docindex

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/dkanak/shopcart-backend/internal/logger"
)

type documentRow struct {
	ID         uint   `gorm:"primaryKey"`
	Collection string `gorm:"uniqueIndex:idx_documents_collection_doc;not null"`
	DocID      string `gorm:"uniqueIndex:idx_documents_collection_doc;not null;column:doc_id"`
	Body       datatypes.JSON
}

func (documentRow) TableName() string {
	return "documents"
}

type collectionRow struct {
	ID      uint   `gorm:"primaryKey"`
	Name    string `gorm:"uniqueIndex;not null"`
	Mapping datatypes.JSON
}

func (collectionRow) TableName() string {
	return "collections"
}

type gormStore struct {
	db  *gorm.DB
	log *logger.Logger
}

// NewGorm migrates the two backing tables and returns a Store over the
// given database handle (postgres in deployment, sqlite in tests).
func NewGorm(db *gorm.DB, baseLog *logger.Logger) (Store, error) {
	if err := db.AutoMigrate(&collectionRow{}, &documentRow{}); err != nil {
		return nil, fmt.Errorf("docindex automigrate: %w", err)
	}
	return &gormStore{db: db, log: baseLog.With("store", "DocIndex")}, nil
}

func (s *gormStore) CollectionExists(ctx context.Context, collection string) (bool, error) {
	var count int64
	if err := s.db.WithContext(ctx).
		Model(&collectionRow{}).
		Where("name = ?", collection).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (s *gormStore) CreateCollection(ctx context.Context, collection string, schema Schema) error {
	mapping, err := json.Marshal(schema)
	if err != nil {
		return err
	}
	row := collectionRow{Name: collection, Mapping: datatypes.JSON(mapping)}
	return s.db.WithContext(ctx).Create(&row).Error
}

func (s *gormStore) Insert(ctx context.Context, collection, id string, body map[string]interface{}) (string, error) {
	if id == "" {
		id = uuid.NewString()
	}
	raw, err := json.Marshal(body)
	if err != nil {
		return "", err
	}
	row := documentRow{Collection: collection, DocID: id, Body: datatypes.JSON(raw)}
	if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
		return "", err
	}
	return id, nil
}

func (s *gormStore) Search(ctx context.Context, collection, field, value string, limit int) ([]Doc, error) {
	var rows []documentRow
	q := s.db.WithContext(ctx).
		Where("collection = ?", collection).
		Where(datatypes.JSONQuery("body").Equals(value, field)).
		Order("id")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&rows).Error; err != nil {
		return nil, err
	}
	return decodeRows(rows)
}

func (s *gormStore) SearchAll(ctx context.Context, collection string) ([]Doc, error) {
	var rows []documentRow
	if err := s.db.WithContext(ctx).
		Where("collection = ?", collection).
		Order("id").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return decodeRows(rows)
}

func (s *gormStore) Exists(ctx context.Context, collection, id string) (bool, error) {
	var count int64
	if err := s.db.WithContext(ctx).
		Model(&documentRow{}).
		Where("collection = ? AND doc_id = ?", collection, id).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (s *gormStore) Get(ctx context.Context, collection, id string) (*Doc, error) {
	var row documentRow
	err := s.db.WithContext(ctx).
		Where("collection = ? AND doc_id = ?", collection, id).
		First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	doc, err := decodeRow(row)
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

func decodeRows(rows []documentRow) ([]Doc, error) {
	docs := make([]Doc, 0, len(rows))
	for _, row := range rows {
		doc, err := decodeRow(row)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	return docs, nil
}

func decodeRow(row documentRow) (Doc, error) {
	body := make(map[string]interface{})
	if len(row.Body) > 0 {
		if err := json.Unmarshal(row.Body, &body); err != nil {
			return Doc{}, fmt.Errorf("decode document %s/%s: %w", row.Collection, row.DocID, err)
		}
	}
	return Doc{ID: row.DocID, Body: body}, nil
}

package docindex

import (
	"context"
)

// Doc is one stored document: a store-assigned (or caller-supplied) id
// plus an arbitrary field body.
type Doc struct {
	ID   string
	Body map[string]interface{}
}

// Schema declares the field types of a collection, mirroring the index
// mappings the documents were originally created with ("text",
// "keyword"). The gorm store records it but does not enforce it.
type Schema map[string]string

// Store is the document-index collaborator behind user and product
// storage. It is queried, never owned: no update or delete operations
// are exposed.
type Store interface {
	CollectionExists(ctx context.Context, collection string) (bool, error)
	CreateCollection(ctx context.Context, collection string, schema Schema) error
	// Insert stores a document and returns its id. An empty id asks the
	// store to assign one.
	Insert(ctx context.Context, collection, id string, body map[string]interface{}) (string, error)
	// Search returns up to limit documents whose field equals value.
	Search(ctx context.Context, collection, field, value string, limit int) ([]Doc, error)
	// SearchAll returns every document of a collection in insertion order.
	SearchAll(ctx context.Context, collection string) ([]Doc, error)
	Exists(ctx context.Context, collection, id string) (bool, error)
	// Get returns the document with the given id, or nil if absent.
	Get(ctx context.Context, collection, id string) (*Doc, error)
}

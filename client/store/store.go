// Package store defines the remote bill collection used by the client.
package store

import (
	"context"
	"fmt"

	"billed.app/bills/model"
)

//go:generate mockgen -destination=../mocks/store_mock/mock_store.go -package=store_mock . BillStore

// BillStore is the remote bill collection.
type BillStore interface {
	List(ctx context.Context) ([]model.Bill, error)
	// Get returns one bill of the collection. A bill outside it is a
	// *StatusError with a 404 status.
	Get(ctx context.Context, id string) (*model.Bill, error)
	// Create registers a receipt and returns the key of the bill that owns
	// it. A payload carrying Bill persists those fields as well.
	Create(ctx context.Context, payload CreatePayload) (*CreateResult, error)
	Update(ctx context.Context, payload UpdatePayload) (*model.Bill, error)
}

type CreatePayload struct {
	Email       string
	FileName    string
	ContentType string
	Content     []byte
	Bill        *model.Bill
}

type CreateResult struct {
	ID       string
	FileURL  string
	FileName string
}

type UpdatePayload struct {
	ID   string
	Bill model.Bill
}

// StatusError is a rejection answered by the store with a non-2xx status.
type StatusError struct {
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("Erreur %d", e.StatusCode)
}

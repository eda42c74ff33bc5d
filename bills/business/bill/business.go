package bill

import (
	"context"

	"github.com/google/uuid"

	"billed.app/bills/model"
	"billed.app/bills/repository/bills"
)

//go:generate mockgen -destination=../../mocks/business/bill_business/mock_business.go -package=bill_business . Business,ReceiptStore

type Business interface {
	CreateBill(ctx context.Context, bill *model.Bill, receipt *Receipt) (*model.Bill, error)
	GetBill(ctx context.Context, id, email string) (*model.Bill, error)
	ListBills(ctx context.Context, email string) ([]*model.Bill, error)
	UpdateBill(ctx context.Context, bill *model.Bill) (*model.Bill, error)
}

// ReceiptStore persists receipt images and returns the URL they are served from.
type ReceiptStore interface {
	Put(ctx context.Context, key string, content []byte, contentType string) (string, error)
	Remove(ctx context.Context, key string) error
}

// Receipt is an uploaded receipt image waiting to be stored.
type Receipt struct {
	FileName    string
	ContentType string
	Content     []byte
}

// business handles business logic for expense bills
type business struct {
	billRepo bills.Querier
	receipts ReceiptStore
	newID    func() string
}

// NewBillBusiness creates a new bill business layer
func NewBillBusiness(billRepo bills.Querier, receipts ReceiptStore) Business {
	return &business{
		billRepo: billRepo,
		receipts: receipts,
		newID:    uuid.NewString,
	}
}

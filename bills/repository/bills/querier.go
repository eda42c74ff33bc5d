package bills

import (
	"context"
)

//go:generate mockgen -destination=../../mocks/repository/bill_repo/mock_querier.go -package=bill_repo . Querier

type Querier interface {
	CreateBill(ctx context.Context, arg CreateBillParams) (Bill, error)
	GetBill(ctx context.Context, id string) (Bill, error)
	ListBills(ctx context.Context) ([]Bill, error)
	ListBillsByEmail(ctx context.Context, email string) ([]Bill, error)
	UpdateBill(ctx context.Context, arg UpdateBillParams) (Bill, error)
}

var _ Querier = (*Queries)(nil)

package bill

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"

	"encore.dev/beta/errs"

	"billed.app/bills/model"
)

var errBillNotFound = &errs.Error{Code: errs.NotFound, Message: "bill not found"}

// GetBill returns the bill keyed id. When email is set, a bill owned by
// someone else is reported as not found.
func (b *business) GetBill(ctx context.Context, id, email string) (*model.Bill, error) {
	if strings.TrimSpace(id) == "" {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "invalid bill ID"}
	}

	row, err := b.billRepo.GetBill(ctx, id)
	switch {
	case errors.Is(err, pgx.ErrNoRows):
		return nil, errBillNotFound
	case err != nil:
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to get bill"}
	case email != "" && row.Email != email:
		return nil, errBillNotFound
	}

	return convertDBBillToModel(row), nil
}

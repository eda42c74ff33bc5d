package bill

import (
	"context"

	"encore.dev/beta/errs"

	"billed.app/bills/model"
	"billed.app/bills/repository/bills"
)

// ListBills returns every bill, or only the bills owned by email when it is set.
// Rows come back in creation order; display ordering belongs to the caller.
func (b *business) ListBills(ctx context.Context, email string) ([]*model.Bill, error) {
	var (
		dbBills []bills.Bill
		err     error
	)
	if email == "" {
		dbBills, err = b.billRepo.ListBills(ctx)
	} else {
		dbBills, err = b.billRepo.ListBillsByEmail(ctx, email)
	}
	if err != nil {
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to list bills"}
	}

	billList := make([]*model.Bill, len(dbBills))
	for i, dbBill := range dbBills {
		billList[i] = convertDBBillToModel(dbBill)
	}

	return billList, nil
}

package bills

import (
	"context"

	"encore.dev/rlog"
)

type GetBillRequest struct {
	Email string `query:"email"`
}

// GetBill returns one bill. With an email, only that user's bills are visible.
//
//encore:api public path=/v1/bills/:id method=GET
func (s *Service) GetBill(ctx context.Context, id string, req *GetBillRequest) (*BillResponse, error) {
	var email string
	if req != nil {
		email = req.Email
	}

	found, err := s.business.GetBill(ctx, id, email)
	if err != nil {
		rlog.Error("failed to get bill", "error", err, "id", id, "email", email)
		return nil, err
	}

	return &BillResponse{Bill: *found}, nil
}

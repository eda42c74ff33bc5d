package bills

import (
	"context"
	"strings"

	"encore.dev/beta/errs"
	"encore.dev/rlog"
)

type UpdateBillRequest struct {
	Bill BillFields `json:"bill"`
}

//encore:api public path=/v1/bills/:id method=PUT
func (s *Service) UpdateBill(ctx context.Context, id string, req *UpdateBillRequest) (*BillResponse, error) {
	if strings.TrimSpace(id) == "" {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "invalid bill ID"}
	}

	draft := req.Bill.toModel()
	draft.ID = id

	result, err := s.business.UpdateBill(ctx, draft)
	if err != nil {
		rlog.Error("failed to update bill", "error", err, "id", id)
		return nil, err
	}

	return &BillResponse{
		Bill: *result,
	}, nil
}

// Validate implements validation for UpdateBillRequest
func (r *UpdateBillRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return &errs.Error{Code: errs.InvalidArgument, Message: err.Error()}
	}

	return nil
}

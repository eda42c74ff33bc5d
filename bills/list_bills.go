package bills

import (
	"context"

	"encore.dev/rlog"

	"billed.app/bills/model"
)

type ListBillsRequest struct {
	Email string `query:"email"`
}

type ListBillsResponse struct {
	Bills []model.Bill `json:"bills"`
}

//encore:api public path=/v1/bills method=GET
func (s *Service) ListBills(ctx context.Context, req *ListBillsRequest) (*ListBillsResponse, error) {
	bills, err := s.business.ListBills(ctx, req.Email)
	if err != nil {
		rlog.Error("failed to list bills", "error", err, "email", req.Email)
		return nil, err
	}

	response := &ListBillsResponse{
		Bills: make([]model.Bill, len(bills)),
	}
	for i, bill := range bills {
		response.Bills[i] = *bill
	}

	return response, nil
}

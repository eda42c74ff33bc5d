package bills

import (
	"context"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"billed.app/bills/business/bill"
	"billed.app/bills/model"
)

type CreateBillRequest struct {
	IdempotencyKey string `header:"X-Idempotency-Key" json:"-"`

	Email       string      `json:"email" validate:"required,max=255"`
	FileName    string      `json:"fileName" validate:"required,receipt_ext"`
	ContentType string      `json:"contentType,omitempty"`
	Content     []byte      `json:"content,omitempty"`
	Bill        *BillFields `json:"bill,omitempty"`
}

type CreateBillResponse struct {
	ID       string     `json:"id"`
	FileURL  string     `json:"fileUrl"`
	FileName string     `json:"fileName"`
	Bill     model.Bill `json:"bill"`
}

// CreateBill registers a receipt and the bill that owns it. A request with
// receipt content stores the image; one without content keeps the fileUrl
// carried by its bill fields.
//
//encore:api public path=/v1/bills method=POST tag:idempotency
func (s *Service) CreateBill(ctx context.Context, req *CreateBillRequest) (*CreateBillResponse, error) {
	draft := &model.Bill{}
	if req.Bill != nil {
		draft = req.Bill.toModel()
	}
	draft.Email = req.Email
	draft.IdempotencyKey = req.IdempotencyKey
	if draft.FileName == "" {
		draft.FileName = req.FileName
	}

	result, err := s.business.CreateBill(ctx, draft, &bill.Receipt{
		FileName:    req.FileName,
		ContentType: req.ContentType,
		Content:     req.Content,
	})
	if err != nil {
		rlog.Error("failed to create bill", "error", err, "file_name", req.FileName)
		return nil, err
	}

	return &CreateBillResponse{
		ID:       result.ID,
		FileURL:  result.FileURL,
		FileName: result.FileName,
		Bill:     *result,
	}, nil
}

// Validate implements validation for CreateBillRequest using go-playground/validator
func (r *CreateBillRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return &errs.Error{Code: errs.InvalidArgument, Message: err.Error()}
	}

	if len(r.Content) == 0 && (r.Bill == nil || r.Bill.FileURL == "") {
		return &errs.Error{Code: errs.InvalidArgument, Message: "receipt content or fileUrl is required"}
	}

	if len(r.Content) > maxReceiptBytes {
		return &errs.Error{Code: errs.InvalidArgument, Message: "receipt exceeds 10 MiB"}
	}

	return nil
}

const maxReceiptBytes = 10 << 20

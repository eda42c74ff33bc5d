// Package newbill drives the new bill form: receipt selection, upload and
// persistence of the bill.
package newbill

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"billed.app/bills/model"
	"billed.app/client/diag"
	"billed.app/client/routes"
	"billed.app/client/session"
	"billed.app/client/store"
	"billed.app/internal/receipt"
)

var (
	ErrInvalidReceiptType = errors.New("receipt must be a jpg, jpeg or png image")
	ErrUploadFailed       = errors.New("failed to upload receipt")
	ErrPersistFailed      = errors.New("failed to persist bill")
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	if err := receipt.RegisterValidation(v); err != nil {
		panic(err)
	}
	return v
}

type Config struct {
	Store     store.BillStore
	Session   session.Session
	Navigator routes.Navigator
	Logger    diag.Logger
}

// NewBill is one new bill form. Its handlers are safe to call from several
// goroutines; store calls run outside the lock.
type NewBill struct {
	store     store.BillStore
	session   session.Session
	navigator routes.Navigator
	logger    diag.Logger

	mu       sync.Mutex
	state    State
	fileURL  string
	fileName string
	billID   string
	lastErr  error
}

func New(cfg Config) *NewBill {
	return &NewBill{
		store:     cfg.Store,
		session:   cfg.Session,
		navigator: routes.OrNowhere(cfg.Navigator),
		logger:    diag.OrDiscard(cfg.Logger),
	}
}

func (n *NewBill) State() State {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.state
}

// ErrorVisible reports whether the inline receipt error is shown.
func (n *NewBill) ErrorVisible() bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.state == FileRejected
}

func (n *NewBill) SubmitEnabled() bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.submitEnabled()
}

func (n *NewBill) submitEnabled() bool {
	return n.state == FileStaged || n.state == SubmitFailed
}

// LastError is the failure of the last handler call, nil after a success.
func (n *NewBill) LastError() error {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.lastErr
}

// Staged returns the uploaded receipt and the key of the bill that owns it.
func (n *NewBill) Staged() (fileURL, fileName, billID string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.fileURL, n.fileName, n.billID
}

func (n *NewBill) moveTo(to State) error {
	if err := Transition(n.state, to); err != nil {
		return err
	}
	n.state = to
	return nil
}

// HandleChangeFile checks the picked receipt and uploads it. A rejected file
// never reaches the store.
func (n *NewBill) HandleChangeFile(ctx context.Context, file FileInput) {
	n.mu.Lock()
	if state := n.state; state == Uploading || state == Submitting {
		n.mu.Unlock()
		n.logger.Debug("file change ignored", "state", state.String(), "file_name", file.Name)
		return
	}

	n.fileURL, n.fileName, n.billID = "", "", ""

	if err := validate.Struct(file); err != nil {
		_ = n.moveTo(FileRejected)
		n.lastErr = fmt.Errorf("%w: %s", ErrInvalidReceiptType, file.Name)
		n.mu.Unlock()
		return
	}

	_ = n.moveTo(Uploading)
	n.lastErr = nil
	n.mu.Unlock()

	contentType := file.ContentType
	if contentType == "" {
		contentType = receipt.ContentType(file.Name)
	}

	result, err := n.store.Create(ctx, store.CreatePayload{
		Email:       n.session.Email,
		FileName:    file.Name,
		ContentType: contentType,
		Content:     file.Content,
	})

	n.mu.Lock()
	defer n.mu.Unlock()

	if err != nil {
		n.logger.Error("failed to upload receipt", "error", err, "file_name", file.Name)
		_ = n.moveTo(UploadFailed)
		n.lastErr = fmt.Errorf("%w: %w", ErrUploadFailed, err)
		return
	}

	n.fileURL = result.FileURL
	n.fileName = result.FileName
	if n.fileName == "" {
		n.fileName = file.Name
	}
	n.billID = result.ID
	_ = n.moveTo(FileStaged)
}

// HandleSubmit persists the form as a pending bill and returns to the bill
// list. It does nothing until a receipt is staged.
func (n *NewBill) HandleSubmit(ctx context.Context, values FormValues) *model.Bill {
	billType := strings.TrimSpace(values.Type)
	if billType == "" {
		billType = model.DefaultExpenseType
	}
	draft := model.Bill{
		Email:      n.session.Email,
		Type:       billType,
		Name:       values.Name,
		Date:       values.Date,
		Amount:     ParseAmount(values.Amount),
		VAT:        ParseVAT(values.VAT),
		Pct:        ParsePct(values.Pct),
		Commentary: values.Commentary,
		Status:     model.BillStatusPending,
	}

	n.mu.Lock()
	if state := n.state; !n.submitEnabled() {
		n.mu.Unlock()
		n.logger.Debug("submit ignored", "state", state.String())
		return nil
	}
	draft.FileURL, draft.FileName = n.fileURL, n.fileName
	_ = n.moveTo(Submitting)
	n.mu.Unlock()

	saved := n.UpdateBill(ctx, draft)
	if saved == nil {
		return nil
	}

	n.navigator.Navigate(routes.Bills)
	return saved
}

// UpdateBill writes bill to the store: an update of the bill created with
// the staged receipt, or a create when there is none. Failures are logged
// and kept in LastError; the staged receipt is kept for a retry.
func (n *NewBill) UpdateBill(ctx context.Context, bill model.Bill) *model.Bill {
	n.mu.Lock()
	if n.state != Submitting {
		if err := n.moveTo(Submitting); err != nil {
			n.logger.Error("failed to persist bill", "error", err, "id", n.billID)
			n.lastErr = fmt.Errorf("%w: %w", ErrPersistFailed, err)
			n.mu.Unlock()
			return nil
		}
	}
	id := n.billID
	n.mu.Unlock()

	saved, err := n.persist(ctx, id, bill)

	n.mu.Lock()
	defer n.mu.Unlock()

	if err != nil {
		n.logger.Error("failed to persist bill", "error", err, "id", id)
		_ = n.moveTo(SubmitFailed)
		n.lastErr = fmt.Errorf("%w: %w", ErrPersistFailed, err)
		return nil
	}

	if saved.ID != "" {
		n.billID = saved.ID
	}
	n.lastErr = nil
	_ = n.moveTo(Persisted)
	return saved
}

func (n *NewBill) persist(ctx context.Context, id string, bill model.Bill) (*model.Bill, error) {
	if id != "" {
		bill.ID = id
		return n.store.Update(ctx, store.UpdatePayload{ID: id, Bill: bill})
	}

	result, err := n.store.Create(ctx, store.CreatePayload{
		Email:    bill.Email,
		FileName: bill.FileName,
		Bill:     &bill,
	})
	if err != nil {
		return nil, err
	}
	bill.ID = result.ID
	if result.FileURL != "" {
		bill.FileURL = result.FileURL
	}
	return &bill, nil
}

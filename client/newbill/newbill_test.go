package newbill

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"billed.app/bills/model"
	"billed.app/client/mocks/diag_mock"
	"billed.app/client/mocks/store_mock"
	"billed.app/client/routes"
	"billed.app/client/session"
	"billed.app/client/store"
)

type fixture struct {
	form      *NewBill
	store     *store_mock.MockBillStore
	logger    *diag_mock.MockLogger
	navigated []string
}

func newFixture(t *testing.T) *fixture {
	ctrl := gomock.NewController(t)
	f := &fixture{
		store:  store_mock.NewMockBillStore(ctrl),
		logger: diag_mock.NewMockLogger(ctrl),
	}
	f.form = New(Config{
		Store:     f.store,
		Session:   session.Session{Type: session.Employee, Email: "a@a"},
		Navigator: routes.NavigatorFunc(func(path string) { f.navigated = append(f.navigated, path) }),
		Logger:    f.logger,
	})
	return f
}

// stage uploads hello.png and leaves the form in FileStaged with bill key 1234.
func (f *fixture) stage(t *testing.T) {
	f.store.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		Return(&store.CreateResult{ID: "1234", FileURL: "https://localhost:3456/images/test.jpg", FileName: "hello.png"}, nil)

	f.form.HandleChangeFile(context.Background(), FileInput{Name: "hello.png", ContentType: "image/png", Content: []byte("hello")})
	require.Equal(t, FileStaged, f.form.State())
}

var filledForm = FormValues{
	Type:       "Transports",
	Name:       "taxi",
	Date:       "2023-01-01",
	Amount:     "200",
	VAT:        "1",
	Pct:        "1",
	Commentary: "de Paris a Marseille",
}

func TestHandleChangeFile(t *testing.T) {
	testCases := []struct {
		name        string
		fileName    string
		contentType string
		accepted    bool
		expectedCT  string
	}{
		{name: "png", fileName: "hello.png", contentType: "image/png", accepted: true, expectedCT: "image/png"},
		{name: "jpg", fileName: "hello.jpg", contentType: "image/jpeg", accepted: true, expectedCT: "image/jpeg"},
		{name: "jpeg_upper_case", fileName: "HELLO.JPEG", accepted: true, expectedCT: "image/jpeg"},
		{name: "png_mixed_case_inferred_type", fileName: "scan.PnG", accepted: true, expectedCT: "image/png"},
		{name: "svg", fileName: "hello.svg", contentType: "image/svg"},
		{name: "gif", fileName: "hello.gif", contentType: "image/gif"},
		{name: "pdf", fileName: "ticket.pdf", contentType: "application/pdf"},
		{name: "no_extension", fileName: "hello"},
		{name: "empty_name"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture(t)

			if tc.accepted {
				f.store.EXPECT().
					Create(gomock.Any(), store.CreatePayload{
						Email:       "a@a",
						FileName:    tc.fileName,
						ContentType: tc.expectedCT,
						Content:     []byte("hello"),
					}).
					Return(&store.CreateResult{ID: "1234", FileURL: "https://localhost:3456/images/test.jpg", FileName: tc.fileName}, nil).
					Times(1)
			}

			f.form.HandleChangeFile(context.Background(), FileInput{Name: tc.fileName, ContentType: tc.contentType, Content: []byte("hello")})

			assert.Equal(t, tc.accepted, f.form.SubmitEnabled())
			assert.Equal(t, !tc.accepted, f.form.ErrorVisible())

			fileURL, fileName, billID := f.form.Staged()
			if tc.accepted {
				assert.Equal(t, FileStaged, f.form.State())
				assert.Equal(t, "https://localhost:3456/images/test.jpg", fileURL)
				assert.Equal(t, tc.fileName, fileName)
				assert.Equal(t, "1234", billID)
				assert.NoError(t, f.form.LastError())
			} else {
				assert.Equal(t, FileRejected, f.form.State())
				assert.Empty(t, fileURL)
				assert.ErrorIs(t, f.form.LastError(), ErrInvalidReceiptType)
			}
		})
	}
}

func TestHandleChangeFile_UploadFailure(t *testing.T) {
	f := newFixture(t)
	uploadErr := &store.StatusError{StatusCode: 500}

	f.store.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, uploadErr).Times(1)
	f.logger.EXPECT().Error("failed to upload receipt", "error", uploadErr, "file_name", "hello.png").Times(1)

	f.form.HandleChangeFile(context.Background(), FileInput{Name: "hello.png", Content: []byte("hello")})

	assert.Equal(t, UploadFailed, f.form.State())
	assert.False(t, f.form.SubmitEnabled())
	assert.False(t, f.form.ErrorVisible())
	assert.ErrorIs(t, f.form.LastError(), ErrUploadFailed)
	assert.ErrorIs(t, f.form.LastError(), uploadErr)
}

func TestHandleChangeFile_RejectedThenAccepted(t *testing.T) {
	f := newFixture(t)

	f.form.HandleChangeFile(context.Background(), FileInput{Name: "hello.svg"})
	require.True(t, f.form.ErrorVisible())

	f.stage(t)

	assert.False(t, f.form.ErrorVisible())
	assert.True(t, f.form.SubmitEnabled())
}

func TestHandleSubmit(t *testing.T) {
	f := newFixture(t)
	f.stage(t)

	f.store.EXPECT().
		Update(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, payload store.UpdatePayload) (*model.Bill, error) {
			assert.Equal(t, "1234", payload.ID)
			assert.Equal(t, model.Bill{
				ID:         "1234",
				Email:      "a@a",
				Type:       "Transports",
				Name:       "taxi",
				Date:       "2023-01-01",
				Amount:     200,
				VAT:        "1",
				Pct:        1,
				Commentary: "de Paris a Marseille",
				FileURL:    "https://localhost:3456/images/test.jpg",
				FileName:   "hello.png",
				Status:     model.BillStatusPending,
			}, payload.Bill)
			saved := payload.Bill
			return &saved, nil
		}).
		Times(1)

	saved := f.form.HandleSubmit(context.Background(), filledForm)

	require.NotNil(t, saved)
	assert.Equal(t, "1234", saved.ID)
	assert.Equal(t, Persisted, f.form.State())
	assert.Equal(t, []string{routes.Bills}, f.navigated)
	assert.NoError(t, f.form.LastError())
}

func TestHandleSubmit_Fallbacks(t *testing.T) {
	f := newFixture(t)
	f.stage(t)

	f.store.EXPECT().
		Update(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, payload store.UpdatePayload) (*model.Bill, error) {
			assert.Equal(t, model.DefaultExpenseType, payload.Bill.Type)
			assert.Equal(t, int64(0), payload.Bill.Amount)
			assert.Equal(t, "", payload.Bill.VAT)
			assert.Equal(t, int32(0), payload.Bill.Pct)
			saved := payload.Bill
			return &saved, nil
		})

	saved := f.form.HandleSubmit(context.Background(), FormValues{Name: "taxi", Amount: "deux cents", VAT: "x", Pct: "y"})

	assert.NotNil(t, saved)
}

func TestHandleSubmit_WithoutStagedReceipt(t *testing.T) {
	testCases := []struct {
		name  string
		setup func(f *fixture)
	}{
		{name: "empty_form", setup: func(*fixture) {}},
		{
			name: "rejected_receipt",
			setup: func(f *fixture) {
				f.form.HandleChangeFile(context.Background(), FileInput{Name: "hello.svg"})
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture(t)
			tc.setup(f)
			f.logger.EXPECT().Debug("submit ignored", "state", gomock.Any()).Times(1)

			saved := f.form.HandleSubmit(context.Background(), filledForm)

			assert.Nil(t, saved)
			assert.Empty(t, f.navigated)
		})
	}
}

func TestHandleSubmit_PersistFailureThenRetry(t *testing.T) {
	f := newFixture(t)
	f.stage(t)
	persistErr := errors.New("Erreur")

	gomock.InOrder(
		f.store.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil, persistErr),
		f.store.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, payload store.UpdatePayload) (*model.Bill, error) {
				saved := payload.Bill
				return &saved, nil
			}),
	)
	f.logger.EXPECT().Error("failed to persist bill", "error", persistErr, "id", "1234").Times(1)

	assert.Nil(t, f.form.HandleSubmit(context.Background(), filledForm))
	assert.Equal(t, SubmitFailed, f.form.State())
	assert.True(t, f.form.SubmitEnabled())
	assert.ErrorIs(t, f.form.LastError(), ErrPersistFailed)
	assert.Empty(t, f.navigated)

	fileURL, fileName, billID := f.form.Staged()
	assert.Equal(t, "https://localhost:3456/images/test.jpg", fileURL)
	assert.Equal(t, "hello.png", fileName)
	assert.Equal(t, "1234", billID)

	assert.NotNil(t, f.form.HandleSubmit(context.Background(), filledForm))
	assert.Equal(t, Persisted, f.form.State())
	assert.Equal(t, []string{routes.Bills}, f.navigated)
	assert.NoError(t, f.form.LastError())
}

func TestHandleSubmit_SingleInFlight(t *testing.T) {
	f := newFixture(t)
	f.stage(t)

	started := make(chan struct{})
	release := make(chan struct{})
	f.store.EXPECT().
		Update(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, payload store.UpdatePayload) (*model.Bill, error) {
			close(started)
			<-release
			saved := payload.Bill
			return &saved, nil
		}).
		Times(1)
	f.logger.EXPECT().Debug("submit ignored", "state", "submitting").Times(1)

	done := make(chan *model.Bill)
	go func() { done <- f.form.HandleSubmit(context.Background(), filledForm) }()
	<-started

	assert.Nil(t, f.form.HandleSubmit(context.Background(), filledForm))
	assert.Equal(t, Submitting, f.form.State())
	assert.False(t, f.form.SubmitEnabled())

	close(release)
	assert.NotNil(t, <-done)
	assert.Equal(t, []string{routes.Bills}, f.navigated)
}

func TestHandleSubmit_OutOfRangeNumbers(t *testing.T) {
	f := newFixture(t)
	f.stage(t)

	f.store.EXPECT().
		Update(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, payload store.UpdatePayload) (*model.Bill, error) {
			assert.Equal(t, int64(0), payload.Bill.Amount)
			assert.Equal(t, "", payload.Bill.VAT)
			assert.Equal(t, int32(0), payload.Bill.Pct)
			saved := payload.Bill
			return &saved, nil
		})

	saved := f.form.HandleSubmit(context.Background(), FormValues{Name: "taxi", Amount: "1e30", VAT: "1e20000000", Pct: "3000000000"})

	assert.NotNil(t, saved)
	assert.Equal(t, Persisted, f.form.State())
}

func TestHandleChangeFile_DuringSubmit(t *testing.T) {
	f := newFixture(t)
	f.stage(t)

	started := make(chan struct{})
	release := make(chan struct{})
	f.store.EXPECT().
		Update(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, payload store.UpdatePayload) (*model.Bill, error) {
			close(started)
			<-release
			saved := payload.Bill
			return &saved, nil
		})
	f.logger.EXPECT().Debug("file change ignored", "state", "submitting", "file_name", "other.png").Times(1)

	done := make(chan *model.Bill)
	go func() { done <- f.form.HandleSubmit(context.Background(), filledForm) }()
	<-started

	f.form.HandleChangeFile(context.Background(), FileInput{Name: "other.png", Content: []byte("other")})

	close(release)
	assert.NotNil(t, <-done)
	fileURL, fileName, _ := f.form.Staged()
	assert.Equal(t, "https://localhost:3456/images/test.jpg", fileURL)
	assert.Equal(t, "hello.png", fileName)
}

func TestHandleSubmit_WithoutNavigator(t *testing.T) {
	ctrl := gomock.NewController(t)
	billStore := store_mock.NewMockBillStore(ctrl)
	form := New(Config{Store: billStore, Session: session.Session{Type: session.Employee, Email: "a@a"}})

	billStore.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		Return(&store.CreateResult{ID: "1234", FileURL: "/hello.png", FileName: "hello.png"}, nil)
	billStore.EXPECT().
		Update(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, payload store.UpdatePayload) (*model.Bill, error) {
			saved := payload.Bill
			return &saved, nil
		})

	form.HandleChangeFile(context.Background(), FileInput{Name: "hello.png", Content: []byte("hello")})

	var saved *model.Bill
	assert.NotPanics(t, func() { saved = form.HandleSubmit(context.Background(), filledForm) })
	assert.NotNil(t, saved)
	assert.Equal(t, Persisted, form.State())
}

func TestUpdateBill(t *testing.T) {
	draft := model.Bill{Email: "a@a", Name: "taxi", FileURL: "/ticket.jpg", FileName: "ticket.jpg", Status: model.BillStatusPending}

	t.Run("create_when_no_key", func(t *testing.T) {
		f := newFixture(t)
		f.store.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			Return(&store.CreateResult{FileURL: "/ticket.jpg", FileName: "ticket.jpg"}, nil)
		f.form.HandleChangeFile(context.Background(), FileInput{Name: "ticket.jpg", Content: []byte("hello")})

		f.store.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, payload store.CreatePayload) (*store.CreateResult, error) {
				require.NotNil(t, payload.Bill)
				assert.Equal(t, "taxi", payload.Bill.Name)
				assert.Equal(t, "ticket.jpg", payload.FileName)
				return &store.CreateResult{ID: "5678", FileURL: "/ticket.jpg", FileName: "ticket.jpg"}, nil
			})

		saved := f.form.UpdateBill(context.Background(), draft)

		require.NotNil(t, saved)
		assert.Equal(t, "5678", saved.ID)
		_, _, billID := f.form.Staged()
		assert.Equal(t, "5678", billID)
	})

	t.Run("rejected_without_staged_receipt", func(t *testing.T) {
		f := newFixture(t)
		f.logger.EXPECT().Error("failed to persist bill", "error", gomock.Any(), "id", "").Times(1)

		saved := f.form.UpdateBill(context.Background(), draft)

		assert.Nil(t, saved)
		assert.Equal(t, Empty, f.form.State())
		assert.ErrorIs(t, f.form.LastError(), ErrPersistFailed)
	})

	t.Run("store_rejection_is_not_propagated", func(t *testing.T) {
		f := newFixture(t)
		f.stage(t)
		f.store.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil, &store.StatusError{StatusCode: 500})
		f.logger.EXPECT().Error("failed to persist bill", "error", gomock.Any(), "id", "1234").Times(1)

		assert.NotPanics(t, func() {
			assert.Nil(t, f.form.UpdateBill(context.Background(), draft))
		})
		assert.Equal(t, SubmitFailed, f.form.State())
		assert.Contains(t, f.form.LastError().Error(), "Erreur 500")
	})
}

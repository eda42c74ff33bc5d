package billlist

import (
	"context"
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

var employee = session.Session{Type: session.Employee, Email: "a@a"}

func fixtureBills() []model.Bill {
	return []model.Bill{
		{ID: "47qAXb6fIm2zOKkLzMro", Name: "encore", Date: "2004-04-04", Amount: 400, Status: model.BillStatusPending, FileURL: "https://test.storage.tld/v0/b/billable/o/justificatif.jpg"},
		{ID: "BeKy5Mo4jkmdfPGYpTxZ", Name: "test1", Date: "2001-01-01", Amount: 100, Status: model.BillStatusRefused},
		{ID: "UIUZtnPQvnbFnB0ozvJh", Name: "test3", Date: "2003-03-03", Amount: 300, Status: model.BillStatusAccepted},
		{ID: "qcCK3SzECmaZAGRrHjaC", Name: "test2", Date: "2002-02-02", Amount: 200, Status: model.BillStatusRefused},
	}
}

type modalSpy struct {
	opened []string
}

func (m *modalSpy) Open(url string) { m.opened = append(m.opened, url) }

func ids(bills []DisplayBill) []string {
	out := make([]string, 0, len(bills))
	for _, b := range bills {
		out = append(out, b.ID)
	}
	return out
}

func TestGetBills(t *testing.T) {
	testCases := []struct {
		name           string
		storeBills     []model.Bill
		storeError     error
		expectLogCalls int
		expectedIDs    []string
		expectedDates  []string
		expectedLabels []string
		expectedError  string
	}{
		{
			name:           "fixture_sorted_ascending",
			storeBills:     fixtureBills(),
			expectedIDs:    []string{"BeKy5Mo4jkmdfPGYpTxZ", "qcCK3SzECmaZAGRrHjaC", "UIUZtnPQvnbFnB0ozvJh", "47qAXb6fIm2zOKkLzMro"},
			expectedDates:  []string{"1 Jan. 01", "2 Fév. 02", "3 Mar. 03", "4 Avr. 04"},
			expectedLabels: []string{"refused", "refused", "Accepté", "En attente"},
		},
		{
			name: "malformed_date_kept_last",
			storeBills: []model.Bill{
				{ID: "bad", Date: "not a date", Status: model.BillStatusPending},
				{ID: "good", Date: "2004-04-04", Status: model.BillStatusPending},
			},
			expectLogCalls: 1,
			expectedIDs:    []string{"good", "bad"},
			expectedDates:  []string{"4 Avr. 04", "not a date"},
			expectedLabels: []string{"En attente", "En attente"},
		},
		{
			name:        "empty_store",
			storeBills:  []model.Bill{},
			expectedIDs: []string{},
		},
		{
			name:          "store_404",
			storeError:    &store.StatusError{StatusCode: 404},
			expectedError: "Erreur 404",
		},
		{
			name:          "store_500",
			storeError:    &store.StatusError{StatusCode: 500},
			expectedError: "Erreur 500",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStore := store_mock.NewMockBillStore(ctrl)
			mockLogger := diag_mock.NewMockLogger(ctrl)
			list := New(Config{Store: mockStore, Session: employee, Logger: mockLogger})

			mockStore.EXPECT().List(gomock.Any()).Return(tc.storeBills, tc.storeError).Times(1)
			mockLogger.EXPECT().
				Error("failed to format bill date", "error", gomock.Any(), "id", gomock.Any(), "email", "a@a").
				Times(tc.expectLogCalls)

			bills, err := list.GetBills(context.Background())

			if tc.expectedError != "" {
				require.Error(t, err)
				assert.Same(t, tc.storeError, err)
				assert.Equal(t, tc.expectedError, err.Error())
				assert.Nil(t, bills)
				return
			}

			require.NoError(t, err)
			assert.Len(t, bills, len(tc.storeBills))
			assert.Equal(t, tc.expectedIDs, ids(bills))
			for i, b := range bills {
				assert.Equal(t, tc.expectedDates[i], b.FormattedDate)
				assert.Equal(t, tc.expectedLabels[i], b.StatusLabel)
			}
		})
	}
}

func TestSortByDateDesc(t *testing.T) {
	bills := []DisplayBill{
		{Bill: model.Bill{ID: "a", Date: "2001-01-01"}},
		{Bill: model.Bill{ID: "broken", Date: "??"}},
		{Bill: model.Bill{ID: "c", Date: "2004-04-04"}},
		{Bill: model.Bill{ID: "b", Date: "2003-03-03"}},
		{Bill: model.Bill{ID: "empty", Date: ""}},
	}

	SortByDateDesc(bills)

	assert.Equal(t, []string{"c", "b", "a", "broken", "empty"}, ids(bills))
}

func TestHandleClickIconEye(t *testing.T) {
	testCases := []struct {
		name     string
		icon     Icon
		expected string
	}{
		{name: "receipt_url", icon: Icon{BillURL: "https://test.storage.tld/justificatif.jpg"}, expected: "https://test.storage.tld/justificatif.jpg"},
		{name: "missing_url_opens_placeholder", icon: Icon{}, expected: PlaceholderReceiptURL},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			modal := &modalSpy{}
			list := New(Config{Store: store_mock.NewMockBillStore(ctrl), Session: employee, Modal: modal})

			list.HandleClickIconEye(tc.icon)

			assert.Equal(t, []string{tc.expected}, modal.opened)
		})
	}
}

func TestHandleClickNewBill(t *testing.T) {
	var visited []string
	list := New(Config{
		Session:   employee,
		Navigator: routes.NavigatorFunc(func(path string) { visited = append(visited, path) }),
	})

	list.HandleClickNewBill()

	assert.Equal(t, []string{routes.NewBill}, visited)
}

func TestClickHandlers_WithoutCollaborators(t *testing.T) {
	list := New(Config{Session: employee})

	assert.NotPanics(t, func() { list.HandleClickIconEye(Icon{BillURL: "https://test.storage.tld/justificatif.jpg"}) })
	assert.NotPanics(t, func() { list.HandleClickIconEye(Icon{}) })
	assert.NotPanics(t, list.HandleClickNewBill)
}

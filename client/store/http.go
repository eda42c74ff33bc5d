package store

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"billed.app/bills/model"
)

const idempotencyHeader = "X-Idempotency-Key"

// HTTPStore talks to the bills service.
type HTTPStore struct {
	baseURL string
	email   string
	client  *http.Client
	newKey  func() string
}

// NewHTTPStore returns a store rooted at baseURL. A non-empty email limits
// List and Get to the bills of that owner.
func NewHTTPStore(baseURL, email string, timeout time.Duration) *HTTPStore {
	return &HTTPStore{
		baseURL: strings.TrimRight(baseURL, "/"),
		email:   email,
		client:  &http.Client{Timeout: timeout},
		newKey:  uuid.NewString,
	}
}

type billFields struct {
	Type       string           `json:"type"`
	Name       string           `json:"name"`
	Date       string           `json:"date"`
	Amount     int64            `json:"amount"`
	VAT        string           `json:"vat"`
	Pct        int32            `json:"pct"`
	Commentary string           `json:"commentary"`
	FileURL    string           `json:"fileUrl"`
	FileName   string           `json:"fileName"`
	Status     model.BillStatus `json:"status"`
}

func fieldsOf(b model.Bill) *billFields {
	return &billFields{
		Type:       b.Type,
		Name:       b.Name,
		Date:       b.Date,
		Amount:     b.Amount,
		VAT:        b.VAT,
		Pct:        b.Pct,
		Commentary: b.Commentary,
		FileURL:    b.FileURL,
		FileName:   b.FileName,
		Status:     b.Status,
	}
}

type listResponse struct {
	Bills []model.Bill `json:"bills"`
}

type createRequest struct {
	Email       string      `json:"email"`
	FileName    string      `json:"fileName"`
	ContentType string      `json:"contentType,omitempty"`
	Content     []byte      `json:"content,omitempty"`
	Bill        *billFields `json:"bill,omitempty"`
}

type createResponse struct {
	ID       string `json:"id"`
	FileURL  string `json:"fileUrl"`
	FileName string `json:"fileName"`
}

type updateRequest struct {
	Bill *billFields `json:"bill"`
}

type billResponse struct {
	Bill model.Bill `json:"bill"`
}

// errorResponse is the error body written by the service.
type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (s *HTTPStore) List(ctx context.Context) ([]model.Bill, error) {
	endpoint := s.baseURL + "/v1/bills"
	if s.email != "" {
		endpoint += "?" + url.Values{"email": {s.email}}.Encode()
	}

	var resp listResponse
	if err := s.do(ctx, http.MethodGet, endpoint, nil, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Bills, nil
}

func (s *HTTPStore) Get(ctx context.Context, id string) (*model.Bill, error) {
	if id == "" {
		return nil, fmt.Errorf("get bill: missing id")
	}

	endpoint := s.baseURL + "/v1/bills/" + url.PathEscape(id)
	if s.email != "" {
		endpoint += "?" + url.Values{"email": {s.email}}.Encode()
	}

	var resp billResponse
	if err := s.do(ctx, http.MethodGet, endpoint, nil, nil, &resp); err != nil {
		return nil, err
	}
	return &resp.Bill, nil
}

func (s *HTTPStore) Create(ctx context.Context, payload CreatePayload) (*CreateResult, error) {
	req := createRequest{
		Email:       payload.Email,
		FileName:    payload.FileName,
		ContentType: payload.ContentType,
		Content:     payload.Content,
	}
	if payload.Bill != nil {
		req.Bill = fieldsOf(*payload.Bill)
	}

	headers := http.Header{idempotencyHeader: {s.newKey()}}

	var resp createResponse
	if err := s.do(ctx, http.MethodPost, s.baseURL+"/v1/bills", headers, req, &resp); err != nil {
		return nil, err
	}
	return &CreateResult{ID: resp.ID, FileURL: resp.FileURL, FileName: resp.FileName}, nil
}

func (s *HTTPStore) Update(ctx context.Context, payload UpdatePayload) (*model.Bill, error) {
	if payload.ID == "" {
		return nil, fmt.Errorf("update bill: missing id")
	}

	endpoint := s.baseURL + "/v1/bills/" + url.PathEscape(payload.ID)

	var resp billResponse
	if err := s.do(ctx, http.MethodPut, endpoint, nil, updateRequest{Bill: fieldsOf(payload.Bill)}, &resp); err != nil {
		return nil, err
	}
	return &resp.Bill, nil
}

func (s *HTTPStore) do(ctx context.Context, method, endpoint string, headers http.Header, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	for k, v := range headers {
		req.Header[k] = v
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, endpoint, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		statusErr := &StatusError{StatusCode: resp.StatusCode}
		var apiErr errorResponse
		if raw, readErr := io.ReadAll(resp.Body); readErr == nil && json.Unmarshal(raw, &apiErr) == nil {
			statusErr.Message = apiErr.Message
		}
		return statusErr
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

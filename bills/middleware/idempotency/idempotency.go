package idempotency

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"reflect"
	"strings"
	"time"

	"encore.dev/beta/errs"
	"encore.dev/middleware"
	"encore.dev/rlog"
	"encore.dev/storage/cache"

	"billed.app/bills/model"
)

const HeaderName = "X-Idempotency-Key"

// Middleware replays the cached response of a bill write that was already
// completed under the same key, and rejects a key reused with another body.
//
//encore:middleware target=tag:idempotency
func Middleware(req middleware.Request, next middleware.Next) middleware.Response {
	key, err := extractIdempotencyKey(req)
	if err != nil {
		return middleware.Response{Err: err}
	}

	ctx := req.Context()
	cacheKey := model.RequestKey{Endpoint: req.Data().Path, Key: key}
	bodyHash := payloadHash(req)

	entry, getErr := entries.Get(ctx, cacheKey)
	switch {
	case getErr == nil:
		return replay(req, next, entry, bodyHash, key)
	case !errors.Is(getErr, cache.Miss):
		rlog.Error("failed to read idempotency entry", "error", getErr, "key", key)
		return middleware.Response{Err: &errs.Error{Code: errs.Internal, Message: "failed to check idempotency"}}
	}

	if err := entries.Set(ctx, cacheKey, model.ReplayEntry{
		Status:    model.ReplayProcessing,
		BodyHash:  bodyHash,
		CreatedAt: time.Now(),
	}); err != nil {
		rlog.Error("failed to mark request as processing", "error", err, "key", key)
		return middleware.Response{Err: &errs.Error{Code: errs.Internal, Message: "failed to check idempotency"}}
	}

	resp := next(req)
	if resp.Err != nil {
		// failed writes can be retried with the same key
		if _, err := entries.Delete(ctx, cacheKey); err != nil {
			rlog.Error("failed to clear idempotency entry", "error", err, "key", key)
		}
		return resp
	}

	complete(ctx, cacheKey, bodyHash, resp)
	return resp
}

func extractIdempotencyKey(req middleware.Request) (string, *errs.Error) {
	var key string
	if headers := req.Data().Headers; headers != nil {
		key = strings.TrimSpace(headers.Get(HeaderName))
	}
	if key == "" {
		return "", &errs.Error{Code: errs.InvalidArgument, Message: HeaderName + " header is required"}
	}
	return key, nil
}

func payloadHash(req middleware.Request) string {
	payload := req.Data().Payload
	if payload == nil {
		return ""
	}
	body, err := json.Marshal(payload)
	if err != nil {
		rlog.Error("failed to marshal request payload", "error", err)
		return ""
	}
	return hashing(body)
}

func replay(req middleware.Request, next middleware.Next, entry model.ReplayEntry, bodyHash, key string) middleware.Response {
	if err := validateBodyHash(entry, bodyHash); err != nil {
		return middleware.Response{Err: err}
	}

	switch entry.Status {
	case model.ReplayProcessing:
		rlog.Info("bill request already in flight", "key", key)
		return middleware.Response{Err: &errs.Error{Code: errs.Aborted, Message: "request is already being processed"}}
	case model.ReplayCompleted:
		if payload, ok := cachedPayload(req, entry); ok {
			rlog.Info("returning cached bill response", "key", key)
			return middleware.Response{Payload: payload}
		}
	default:
		rlog.Warn("unknown idempotency entry status", "key", key, "status", entry.Status)
	}

	return next(req)
}

func validateBodyHash(entry model.ReplayEntry, bodyHash string) *errs.Error {
	if bodyHash != "" && entry.BodyHash != "" && bodyHash != entry.BodyHash {
		return &errs.Error{Code: errs.InvalidArgument, Message: "idempotency key conflict: request body does not match previous request"}
	}
	return nil
}

func cachedPayload(req middleware.Request, entry model.ReplayEntry) (any, bool) {
	api := req.Data().API
	if len(entry.Response) == 0 || api == nil || api.ResponseType == nil {
		return nil, false
	}

	payload := reflect.New(api.ResponseType.Elem()).Interface()
	if err := json.Unmarshal(entry.Response, payload); err != nil {
		rlog.Error("failed to decode cached response", "error", err)
		return nil, false
	}
	return payload, true
}

func complete(ctx context.Context, cacheKey model.RequestKey, bodyHash string, resp middleware.Response) {
	entry := model.ReplayEntry{
		Status:    model.ReplayCompleted,
		BodyHash:  bodyHash,
		UpdatedAt: time.Now(),
	}
	if resp.Payload != nil {
		body, err := json.Marshal(resp.Payload)
		if err != nil {
			rlog.Error("failed to marshal response for caching", "error", err)
			return
		}
		entry.Response = body
	}

	if err := entries.Set(ctx, cacheKey, entry); err != nil {
		rlog.Error("failed to cache bill response", "error", err)
	}
}

func hashing(body []byte) string {
	if len(body) == 0 {
		return ""
	}
	sum := sha256.Sum256(body)
	return hex.EncodeToString(sum[:])
}

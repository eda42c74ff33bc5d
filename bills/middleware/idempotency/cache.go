package idempotency

import (
	"context"
	"time"

	"encore.dev/storage/cache"

	"billed.app/bills/model"
)

// BillRequestCluster holds replay entries for idempotent bill writes.
var BillRequestCluster = cache.NewCluster("bill-requests", cache.ClusterConfig{
	EvictionPolicy: cache.AllKeysLRU,
})

// BillRequests is keyed by endpoint path and client key.
var BillRequests = cache.NewStructKeyspace[model.RequestKey, model.ReplayEntry](
	BillRequestCluster,
	cache.KeyspaceConfig{
		KeyPattern:    "bill-requests/:Endpoint/:Key",
		DefaultExpiry: cache.ExpireIn(entryTTL),
	},
)

const entryTTL = 24 * time.Hour

type entryStore interface {
	Get(ctx context.Context, key model.RequestKey) (model.ReplayEntry, error)
	Set(ctx context.Context, key model.RequestKey, val model.ReplayEntry) error
	Delete(ctx context.Context, keys ...model.RequestKey) (int, error)
}

var entries entryStore = BillRequests

package bills

import (
	"context"
	"fmt"

	"encore.dev/storage/objects"
)

type receiptBucket interface {
	objects.Uploader
	objects.PublicURLer
	objects.Remover
}

// bucketReceiptStore writes receipt images to the public receipts bucket.
type bucketReceiptStore struct {
	bucket receiptBucket
}

func (s *bucketReceiptStore) Put(ctx context.Context, key string, content []byte, contentType string) (string, error) {
	w := s.bucket.Upload(ctx, key, objects.WithUploadAttrs(objects.UploadAttrs{
		ContentType: contentType,
	}))
	if _, err := w.Write(content); err != nil {
		w.Abort(err)
		return "", fmt.Errorf("write receipt %s: %w", key, err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("close receipt %s: %w", key, err)
	}

	return s.bucket.PublicURL(key).String(), nil
}

func (s *bucketReceiptStore) Remove(ctx context.Context, key string) error {
	if err := s.bucket.Remove(ctx, key); err != nil {
		return fmt.Errorf("remove receipt %s: %w", key, err)
	}
	return nil
}

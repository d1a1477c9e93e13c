package s3store

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/ebookcopywriting/checkout-service/internal/domain"
)

const (
	// Links stay valid for 7 days; customers are told to download promptly.
	linkLifetime = 7 * 24 * time.Hour

	downloadContentType = "application/pdf"
)

// Presigner issues time-bounded, credential-free GET references for product
// assets. It only reads; the stored objects are never mutated.
type Presigner struct {
	bucket string
	client *s3.PresignClient
	nowFn  func() time.Time
}

func NewPresigner(client *s3.Client, bucket string) *Presigner {
	return &Presigner{
		bucket: bucket,
		client: s3.NewPresignClient(client),
		nowFn:  time.Now,
	}
}

func (p *Presigner) SignDownload(ctx context.Context, storageKey, fileName string) (domain.DeliveryReference, error) {
	issued := p.nowFn()
	req, err := p.client.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(p.bucket),
		Key:    aws.String(storageKey),
		// Force a real download with the catalog's file name rather than an
		// in-browser view of the asset.
		ResponseContentDisposition: aws.String(fmt.Sprintf("attachment; filename=%q", fileName)),
		ResponseContentType:        aws.String(downloadContentType),
	}, s3.WithPresignExpires(linkLifetime))
	if err != nil {
		return domain.DeliveryReference{}, fmt.Errorf("presign %s: %w", storageKey, err)
	}
	return domain.DeliveryReference{
		URL:       req.URL,
		ExpiresAt: issued.Add(linkLifetime).UTC(),
	}, nil
}

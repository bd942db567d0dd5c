package snapshot

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/hupe1980/gearsetup/codec"
	"github.com/hupe1980/gearsetup/compress"
	"github.com/hupe1980/gearsetup/objectstore"
	"github.com/hupe1980/gearsetup/tablestore"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
)

// ErrInvalidRequest is returned when a request is missing its table or bucket.
var ErrInvalidRequest = errors.New("snapshot: invalid request")

// StoreFactory resolves a bucket name to the object store backing it.
type StoreFactory func(bucket string) (objectstore.Store, error)

// HandlerOptions configures a Handler.
type HandlerOptions struct {
	// Codec serializes the scanned items. Defaults to codec.Default.
	Codec codec.Codec

	// Compressor compresses the serialized payload and contributes its
	// file extension to the object keys. Defaults to compress.None.
	Compressor compress.Compressor

	// Limiter throttles table scan pagination. Nil disables throttling.
	Limiter *rate.Limiter

	// Logger receives structured progress output. Defaults to slog.Default.
	Logger *slog.Logger
}

// Handler takes snapshots of DynamoDB tables and stores them in object
// storage.
type Handler struct {
	client     tablestore.DynamoDBAPI
	stores     StoreFactory
	codec      codec.Codec
	compressor compress.Compressor
	limiter    *rate.Limiter
	logger     *slog.Logger
}

// NewHandler creates a snapshot handler reading through client and writing
// through the stores factory.
func NewHandler(client tablestore.DynamoDBAPI, stores StoreFactory, optFns ...func(o *HandlerOptions)) *Handler {
	opts := HandlerOptions{
		Codec:      codec.Default,
		Compressor: compress.None{},
		Logger:     slog.Default(),
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	return &Handler{
		client:     client,
		stores:     stores,
		codec:      opts.Codec,
		compressor: opts.Compressor,
		limiter:    opts.Limiter,
		logger:     opts.Logger,
	}
}

// Handle scans the requested table, serializes its contents, and uploads the
// snapshot under both a timestamped key and the "latest" key. The two uploads
// run concurrently; the first failure aborts the other.
func (h *Handler) Handle(ctx context.Context, req Request) (*Response, error) {
	if req.Table == "" || req.Bucket == "" {
		return nil, fmt.Errorf("%w: table and bucket are required", ErrInvalidRequest)
	}

	now := time.Now().UnixMilli()

	items, err := tablestore.ScanTable(ctx, h.client, req.Table, h.limiter)
	if err != nil {
		return nil, fmt.Errorf("scan table: %w", err)
	}

	data, err := h.codec.Marshal(items)
	if err != nil {
		return nil, fmt.Errorf("encode snapshot: %w", err)
	}

	payload, err := h.compressor.Compress(data)
	if err != nil {
		return nil, fmt.Errorf("compress snapshot: %w", err)
	}

	store, err := h.stores(req.Bucket)
	if err != nil {
		return nil, fmt.Errorf("resolve bucket %q: %w", req.Bucket, err)
	}

	ext := h.compressor.Ext()
	key := fmt.Sprintf("%s/%d.json%s", req.Table, now, ext)
	latestKey := fmt.Sprintf("%s/latest.json%s", req.Table, ext)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return store.Put(gctx, key, payload) })
	g.Go(func() error { return store.Put(gctx, latestKey, payload) })
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("upload snapshot: %w", err)
	}

	h.logger.InfoContext(ctx, "snapshot completed",
		"table", req.Table,
		"bucket", req.Bucket,
		"items", len(items),
		"bytes", len(payload),
		"key", key,
	)

	return &Response{
		Time:         now,
		Destination:  fmt.Sprintf("s3://%s/%s", req.Bucket, key),
		SnapshotSize: len(items),
	}, nil
}

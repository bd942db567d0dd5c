package snapshot

import (
	"context"
	"fmt"
	"strings"

	"github.com/hupe1980/gearsetup/codec"
	"github.com/hupe1980/gearsetup/compress"
	"github.com/hupe1980/gearsetup/model"
	"github.com/hupe1980/gearsetup/objectstore"
	"github.com/hupe1980/gearsetup/tablestore"
)

// RetrieverOptions configures a Retriever.
type RetrieverOptions struct {
	// Codec decodes snapshot payloads. Defaults to codec.Default.
	Codec codec.Codec
}

// Retriever reads snapshots back from object storage. The compression of a
// snapshot is recovered from its file extension, so a retriever can read
// snapshots written with any compressor.
type Retriever struct {
	store objectstore.Store
	codec codec.Codec
}

// NewRetriever creates a Retriever on top of an object store.
func NewRetriever(store objectstore.Store, optFns ...func(o *RetrieverOptions)) *Retriever {
	opts := RetrieverOptions{
		Codec: codec.Default,
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	return &Retriever{
		store: store,
		codec: opts.Codec,
	}
}

// Latest returns the decompressed payload of the most recent snapshot of
// table. Returns objectstore.ErrNotFound when the table has no snapshot.
func (r *Retriever) Latest(ctx context.Context, table string) ([]byte, error) {
	names, err := r.store.List(ctx, table+"/")
	if err != nil {
		return nil, err
	}

	for _, name := range names {
		if !strings.HasPrefix(strings.TrimPrefix(name, table+"/"), "latest.json") {
			continue
		}

		data, err := r.store.Get(ctx, name)
		if err != nil {
			return nil, err
		}

		payload, err := compress.ByExt(name).Decompress(data)
		if err != nil {
			return nil, fmt.Errorf("decompress %s: %w", name, err)
		}

		return payload, nil
	}

	return nil, fmt.Errorf("latest snapshot of %s: %w", table, objectstore.ErrNotFound)
}

// Documents returns the items of the most recent snapshot of table in their
// plain document form.
func (r *Retriever) Documents(ctx context.Context, table string) ([]map[string]any, error) {
	payload, err := r.Latest(ctx, table)
	if err != nil {
		return nil, err
	}

	var items []map[string]any
	if err := r.codec.Unmarshal(payload, &items); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}

	return items, nil
}

// Equipment returns the equipment catalog from the most recent snapshot of
// the equipment table.
func (r *Retriever) Equipment(ctx context.Context) ([]model.Equipment, error) {
	payload, err := r.Latest(ctx, tablestore.DefaultTable)
	if err != nil {
		return nil, err
	}

	var catalog []model.Equipment
	if err := r.codec.Unmarshal(payload, &catalog); err != nil {
		return nil, fmt.Errorf("decode equipment: %w", err)
	}

	return catalog, nil
}

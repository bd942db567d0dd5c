package snapshot

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/hupe1980/gearsetup/codec"
	"github.com/hupe1980/gearsetup/compress"
	"github.com/hupe1980/gearsetup/objectstore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeDynamoDB serves a fixed set of items across paginated scans.
type fakeDynamoDB struct {
	items []map[string]types.AttributeValue
}

func (f *fakeDynamoDB) GetItem(_ context.Context, _ *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	return &dynamodb.GetItemOutput{}, nil
}

func (f *fakeDynamoDB) Scan(_ context.Context, params *dynamodb.ScanInput, _ ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error) {
	start := 0
	if key, ok := params.ExclusiveStartKey["id"].(*types.AttributeValueMemberN); ok {
		for i, item := range f.items {
			if id, ok := item["id"].(*types.AttributeValueMemberN); ok && id.Value == key.Value {
				start = i + 1
				break
			}
		}
	}

	if start >= len(f.items) {
		return &dynamodb.ScanOutput{}, nil
	}

	out := &dynamodb.ScanOutput{
		Items: f.items[start : start+1],
	}
	if start < len(f.items)-1 {
		out.LastEvaluatedKey = map[string]types.AttributeValue{
			"id": f.items[start]["id"],
		}
	}
	return out, nil
}

func equipmentItems() []map[string]types.AttributeValue {
	return []map[string]types.AttributeValue{
		{
			"id":   &types.AttributeValueMemberN{Value: "4151"},
			"name": &types.AttributeValueMemberS{Value: "Abyssal whip"},
			"occupied_slots": &types.AttributeValueMemberL{Value: []types.AttributeValue{
				&types.AttributeValueMemberS{Value: "weapon"},
			}},
			"weight": &types.AttributeValueMemberN{Value: "0.453"},
		},
		{
			"id":   &types.AttributeValueMemberN{Value: "11802"},
			"name": &types.AttributeValueMemberS{Value: "Armadyl godsword"},
			"occupied_slots": &types.AttributeValueMemberL{Value: []types.AttributeValue{
				&types.AttributeValueMemberS{Value: "weapon"},
				&types.AttributeValueMemberS{Value: "shield"},
			}},
			"weight": &types.AttributeValueMemberN{Value: "5.443"},
		},
	}
}

func TestHandler_Handle(t *testing.T) {
	store := objectstore.NewMemory()
	handler := NewHandler(
		&fakeDynamoDB{items: equipmentItems()},
		func(string) (objectstore.Store, error) { return store, nil },
	)

	resp, err := handler.Handle(context.Background(), Request{Table: "equipment", Bucket: "gearsetup"})
	require.NoError(t, err)

	assert.Equal(t, 2, resp.SnapshotSize)
	assert.Greater(t, resp.Time, int64(0))
	assert.Equal(t, fmt.Sprintf("s3://gearsetup/equipment/%d.json", resp.Time), resp.Destination)

	names, err := store.List(context.Background(), "equipment/")
	require.NoError(t, err)
	require.Len(t, names, 2)
	assert.Contains(t, names, "equipment/latest.json")
	assert.Contains(t, names, fmt.Sprintf("equipment/%d.json", resp.Time))

	// Timestamped and latest snapshots carry the same payload.
	latest, err := store.Get(context.Background(), "equipment/latest.json")
	require.NoError(t, err)
	stamped, err := store.Get(context.Background(), fmt.Sprintf("equipment/%d.json", resp.Time))
	require.NoError(t, err)
	assert.Equal(t, stamped, latest)

	var items []map[string]any
	require.NoError(t, codec.Default.Unmarshal(latest, &items))
	require.Len(t, items, 2)
	assert.Equal(t, "Abyssal whip", items[0]["name"])
}

func TestHandler_Handle_Compressed(t *testing.T) {
	store := objectstore.NewMemory()
	handler := NewHandler(
		&fakeDynamoDB{items: equipmentItems()},
		func(string) (objectstore.Store, error) { return store, nil },
		func(o *HandlerOptions) {
			o.Compressor = compress.Zstd{}
		},
	)

	resp, err := handler.Handle(context.Background(), Request{Table: "equipment", Bucket: "gearsetup"})
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(resp.Destination, ".json.zst"))

	data, err := store.Get(context.Background(), "equipment/latest.json.zst")
	require.NoError(t, err)

	payload, err := compress.Zstd{}.Decompress(data)
	require.NoError(t, err)

	var items []map[string]any
	require.NoError(t, codec.Default.Unmarshal(payload, &items))
	assert.Len(t, items, 2)
}

func TestHandler_Handle_InvalidRequest(t *testing.T) {
	handler := NewHandler(
		&fakeDynamoDB{},
		func(string) (objectstore.Store, error) { return objectstore.NewMemory(), nil },
	)

	_, err := handler.Handle(context.Background(), Request{Table: "equipment"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidRequest))

	_, err = handler.Handle(context.Background(), Request{Bucket: "gearsetup"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidRequest))
}

func TestHandler_Handle_StoreError(t *testing.T) {
	boom := errors.New("no such bucket")
	handler := NewHandler(
		&fakeDynamoDB{items: equipmentItems()},
		func(string) (objectstore.Store, error) { return nil, boom },
	)

	_, err := handler.Handle(context.Background(), Request{Table: "equipment", Bucket: "missing"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, boom))
}

func TestRetriever_RoundTrip(t *testing.T) {
	store := objectstore.NewMemory()
	handler := NewHandler(
		&fakeDynamoDB{items: equipmentItems()},
		func(string) (objectstore.Store, error) { return store, nil },
		func(o *HandlerOptions) {
			o.Compressor = compress.LZ4{}
		},
	)

	_, err := handler.Handle(context.Background(), Request{Table: "equipment", Bucket: "gearsetup"})
	require.NoError(t, err)

	retriever := NewRetriever(store)

	catalog, err := retriever.Equipment(context.Background())
	require.NoError(t, err)
	require.Len(t, catalog, 2)
	assert.Equal(t, 4151, catalog[0].ID)
	assert.Equal(t, "Abyssal whip", catalog[0].Name)
	assert.True(t, catalog[1].TwoHanded())

	docs, err := retriever.Documents(context.Background(), "equipment")
	require.NoError(t, err)
	require.Len(t, docs, 2)
	assert.Equal(t, "Armadyl godsword", docs[1]["name"])
}

func TestRetriever_Latest_PicksFirstVariantDeterministically(t *testing.T) {
	ctx := context.Background()
	store := objectstore.NewMemory()

	// Two latest objects from runs with different compressors. Listing is
	// sorted, so the lz4 variant is always the one read back.
	lz4Payload, err := compress.LZ4{}.Compress([]byte(`[{"name":"lz4 run"}]`))
	require.NoError(t, err)
	zstPayload, err := compress.Zstd{}.Compress([]byte(`[{"name":"zstd run"}]`))
	require.NoError(t, err)

	require.NoError(t, store.Put(ctx, "equipment/latest.json.zst", zstPayload))
	require.NoError(t, store.Put(ctx, "equipment/latest.json.lz4", lz4Payload))

	retriever := NewRetriever(store)
	for i := 0; i < 5; i++ {
		docs, err := retriever.Documents(ctx, "equipment")
		require.NoError(t, err)
		require.Len(t, docs, 1)
		assert.Equal(t, "lz4 run", docs[0]["name"])
	}
}

func TestRetriever_Latest_NotFound(t *testing.T) {
	retriever := NewRetriever(objectstore.NewMemory())

	_, err := retriever.Latest(context.Background(), "equipment")
	require.Error(t, err)
	assert.True(t, errors.Is(err, objectstore.ErrNotFound))
}

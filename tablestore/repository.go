package tablestore

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/hupe1980/gearsetup/codec"
	"github.com/hupe1980/gearsetup/model"
	"golang.org/x/time/rate"
)

// DefaultTable is the DynamoDB table holding the equipment catalog.
const DefaultTable = "equipment"

// ErrEquipmentNotFound is returned when no item exists for the requested ID.
var ErrEquipmentNotFound = errors.New("equipment not found")

// DynamoDBAPI is the subset of the DynamoDB client used by this package.
type DynamoDBAPI interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
}

// RepositoryOptions configures a Repository.
type RepositoryOptions struct {
	// Table is the DynamoDB table name. Defaults to DefaultTable.
	Table string

	// Codec decodes scanned documents into model types.
	// Defaults to codec.Default.
	Codec codec.Codec

	// Limiter throttles scan pagination to stay inside the table's
	// provisioned read capacity. Nil disables throttling.
	Limiter *rate.Limiter
}

// Repository reads equipment from a DynamoDB table.
type Repository struct {
	client  DynamoDBAPI
	table   string
	codec   codec.Codec
	limiter *rate.Limiter
}

// NewRepository creates a Repository on top of an existing DynamoDB client.
func NewRepository(client DynamoDBAPI, optFns ...func(o *RepositoryOptions)) *Repository {
	opts := RepositoryOptions{
		Table: DefaultTable,
		Codec: codec.Default,
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	return &Repository{
		client:  client,
		table:   opts.Table,
		codec:   opts.Codec,
		limiter: opts.Limiter,
	}
}

// NewFromDefaultConfig creates a Repository using the default AWS credential
// and region resolution chain.
func NewFromDefaultConfig(ctx context.Context, optFns ...func(o *RepositoryOptions)) (*Repository, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, err
	}

	return NewRepository(dynamodb.NewFromConfig(cfg), optFns...), nil
}

// FindByID returns the equipment stored under the given item ID.
// Returns ErrEquipmentNotFound when no such item exists.
func (r *Repository) FindByID(ctx context.Context, id int) (*model.Equipment, error) {
	resp, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.table),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberN{Value: strconv.Itoa(id)},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("get item %d: %w", id, err)
	}

	if len(resp.Item) == 0 {
		return nil, fmt.Errorf("id %d: %w", id, ErrEquipmentNotFound)
	}

	eq, err := r.decode(resp.Item)
	if err != nil {
		return nil, fmt.Errorf("decode item %d: %w", id, err)
	}

	return eq, nil
}

// ScanAll returns every equipment item in the table.
func (r *Repository) ScanAll(ctx context.Context) ([]model.Equipment, error) {
	items, err := ScanTable(ctx, r.client, r.table, r.limiter)
	if err != nil {
		return nil, err
	}

	catalog := make([]model.Equipment, 0, len(items))

	for _, item := range items {
		data, err := r.codec.Marshal(item)
		if err != nil {
			return nil, fmt.Errorf("encode document: %w", err)
		}

		var eq model.Equipment
		if err := r.codec.Unmarshal(data, &eq); err != nil {
			return nil, fmt.Errorf("decode document: %w", err)
		}

		catalog = append(catalog, eq)
	}

	return catalog, nil
}

// decode converts a raw DynamoDB item into an Equipment by round-tripping
// its document form through the codec.
func (r *Repository) decode(item map[string]types.AttributeValue) (*model.Equipment, error) {
	data, err := r.codec.Marshal(decodeItem(item))
	if err != nil {
		return nil, err
	}

	var eq model.Equipment
	if err := r.codec.Unmarshal(data, &eq); err != nil {
		return nil, err
	}

	return &eq, nil
}

// ScanTable scans the entire table and returns every item in its plain
// document form. Pagination follows LastEvaluatedKey; when limiter is
// non-nil a token is taken before each page request.
func ScanTable(ctx context.Context, client DynamoDBAPI, table string, limiter *rate.Limiter) ([]map[string]any, error) {
	var (
		items   []map[string]any
		lastKey map[string]types.AttributeValue
	)

	for {
		if limiter != nil {
			if err := limiter.Wait(ctx); err != nil {
				return nil, err
			}
		}

		resp, err := client.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(table),
			ExclusiveStartKey: lastKey,
		})
		if err != nil {
			return nil, fmt.Errorf("scan %s: %w", table, err)
		}

		for _, item := range resp.Items {
			items = append(items, decodeItem(item))
		}

		if len(resp.LastEvaluatedKey) == 0 {
			break
		}
		lastKey = resp.LastEvaluatedKey
	}

	return items, nil
}

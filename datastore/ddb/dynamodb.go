/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package ddb

import (
	"context"
	stderrors "errors"
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	sdk "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/suparena/iconregistry/errors"
	"github.com/suparena/iconregistry/logging"
	"github.com/suparena/iconregistry/storagemodels"
)

// Client is the subset of the DynamoDB API used by the store.
type Client interface {
	GetItem(ctx context.Context, params *sdk.GetItemInput, optFns ...func(*sdk.Options)) (*sdk.GetItemOutput, error)
	PutItem(ctx context.Context, params *sdk.PutItemInput, optFns ...func(*sdk.Options)) (*sdk.PutItemOutput, error)
	DeleteItem(ctx context.Context, params *sdk.DeleteItemInput, optFns ...func(*sdk.Options)) (*sdk.DeleteItemOutput, error)
	Query(ctx context.Context, params *sdk.QueryInput, optFns ...func(*sdk.Options)) (*sdk.QueryOutput, error)
	Scan(ctx context.Context, params *sdk.ScanInput, optFns ...func(*sdk.Options)) (*sdk.ScanOutput, error)
}

// KeyFieldsFunc splits a string key into the named fields referenced by
// the index map macros.
type KeyFieldsFunc func(key string) (map[string]string, error)

// DynamodbDataStore implements datastore.DataStore[T] on a single DynamoDB table.
type DynamodbDataStore[T any] struct {
	client     Client
	tableName  string
	indexMap   map[string]string
	collection CollectionIndex
	keyFields  KeyFieldsFunc
}

// IconIndexMap lays icon records out in a single table: the primary key
// identifies one icon of one collection and GSI1 groups a collection.
var IconIndexMap = map[string]string{
	"PK":  "ICON#{Collection}#{Key}",
	"SK":  "ICON",
	"PK1": "COLLECTION#{Collection}",
	"SK1": "ICON#{Key}",
}

// CollectionIndex describes the GSI that groups items of one collection.
// Its key attributes must be templates of the index map.
type CollectionIndex struct {
	Name         string
	PartitionKey string
	SortKey      string
}

// IconCollectionIndex queries IconIndexMap's PK1/SK1 pair.
var IconCollectionIndex = CollectionIndex{
	Name:         "GSI1",
	PartitionKey: "PK1",
	SortKey:      "SK1",
}

var macroPattern = regexp.MustCompile(`{([^}]+)}`)

// expandTemplates replaces every {Field} macro in the index map with the
// matching value. Every referenced field must have a non-empty value.
func expandTemplates(indexMap map[string]string, values map[string]string) (map[string]string, error) {
	res := make(map[string]string, len(indexMap))
	var missing string
	for fieldName, template := range indexMap {
		res[fieldName] = macroPattern.ReplaceAllStringFunc(template, func(macro string) string {
			name := strings.Trim(macro, "{}")
			v := values[name]
			if v == "" && missing == "" {
				missing = name
			}
			return v
		})
	}
	if missing != "" {
		return nil, errors.NewValidationError(missing, "required by the table key layout")
	}
	return res, nil
}

// attributeStrings converts the scalar attributes of an item to strings so
// they can feed macro expansion.
func attributeStrings(av map[string]types.AttributeValue) map[string]string {
	out := make(map[string]string, len(av))
	for name, val := range av {
		switch tv := val.(type) {
		case *types.AttributeValueMemberS:
			out[name] = tv.Value
		case *types.AttributeValueMemberN:
			out[name] = tv.Value
		case *types.AttributeValueMemberBOOL:
			out[name] = fmt.Sprintf("%v", tv.Value)
		default:
			// sets, lists, maps and binaries never appear in key templates
		}
	}
	return out
}

// NewDynamoDBClient initializes a DynamoDB client. Static credentials are
// used when an access key is given; otherwise the default AWS chain applies.
func NewDynamoDBClient(ctx context.Context, awsAccessKey, awsSecretKey, awsRegion string) (*sdk.Client, error) {
	opts := []func(*config.LoadOptions) error{config.WithRegion(awsRegion)}
	if awsAccessKey != "" {
		opts = append(opts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(awsAccessKey, awsSecretKey, ""),
		))
	}

	cfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS configuration: %w", err)
	}

	return sdk.NewFromConfig(cfg), nil
}

// NewDynamodbDataStore constructs a store for T over an existing client.
func NewDynamodbDataStore[T any](client Client, tableName string, indexMap map[string]string, collection CollectionIndex, keyFields KeyFieldsFunc) *DynamodbDataStore[T] {
	return &DynamodbDataStore[T]{
		client:     client,
		tableName:  tableName,
		indexMap:   indexMap,
		collection: collection,
		keyFields:  keyFields,
	}
}

// Options configures NewIconDataStore.
type Options struct {
	AccessKey string
	SecretKey string
	Region    string
	Table     string
}

// NewIconDataStore connects to DynamoDB and returns a store of icon records
// keyed by IconRecord.ID.
func NewIconDataStore(ctx context.Context, opts Options) (*DynamodbDataStore[storagemodels.IconRecord], error) {
	if opts.Table == "" {
		return nil, errors.NewValidationError("table", "DynamoDB table name is required")
	}
	client, err := NewDynamoDBClient(ctx, opts.AccessKey, opts.SecretKey, opts.Region)
	if err != nil {
		return nil, fmt.Errorf("failed to create DynamoDB client: %w", err)
	}

	logging.FromContext(ctx).Info("DynamoDB client initialized", slog.String("table", opts.Table), slog.String("region", opts.Region))
	return NewDynamodbDataStore[storagemodels.IconRecord](client, opts.Table, IconIndexMap, IconCollectionIndex, IconKeyFields), nil
}

// IconKeyFields parses an icon record ID into its macro fields.
func IconKeyFields(key string) (map[string]string, error) {
	collection, iconKey, err := storagemodels.ParseID(key)
	if err != nil {
		return nil, err
	}
	return map[string]string{"Collection": collection, "Key": iconKey}, nil
}

func (d *DynamodbDataStore[T]) primaryKey(key string) (map[string]types.AttributeValue, error) {
	fields, err := d.keyFields(key)
	if err != nil {
		return nil, err
	}
	expanded, err := expandTemplates(d.indexMap, fields)
	if err != nil {
		return nil, err
	}
	return buildKeyFromExpanded(expanded)
}

// GetOne retrieves a single item by its string key.
func (d *DynamodbDataStore[T]) GetOne(ctx context.Context, key string) (*T, error) {
	keyMap, err := d.primaryKey(key)
	if err != nil {
		return nil, fmt.Errorf("failed to build key: %w", err)
	}

	out, err := d.client.GetItem(ctx, &sdk.GetItemInput{
		TableName: &d.tableName,
		Key:       keyMap,
	})
	if err != nil {
		return nil, fmt.Errorf("GetItem error: %w", err)
	}
	if len(out.Item) == 0 {
		var zero T
		return nil, errors.NewNotFoundError(fmt.Sprintf("%T", zero), key)
	}

	result := new(T)
	if err := attributevalue.UnmarshalMap(out.Item, result); err != nil {
		return nil, fmt.Errorf("failed to unmarshal item: %w", err)
	}
	return result, nil
}

// item marshals entity and adds the expanded index attributes.
func (d *DynamodbDataStore[T]) item(entity T) (map[string]types.AttributeValue, error) {
	av, err := attributevalue.MarshalMap(entity)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal entity: %w", err)
	}

	expanded, err := expandTemplates(d.indexMap, attributeStrings(av))
	if err != nil {
		return nil, err
	}
	if _, err := buildKeyFromExpanded(expanded); err != nil {
		return nil, err
	}
	for k, v := range expanded {
		av[k] = &types.AttributeValueMemberS{Value: v}
	}
	return av, nil
}

// Put stores entity, replacing any item with the same key.
func (d *DynamodbDataStore[T]) Put(ctx context.Context, entity T) error {
	av, err := d.item(entity)
	if err != nil {
		return err
	}

	_, err = d.client.PutItem(ctx, &sdk.PutItemInput{
		TableName: &d.tableName,
		Item:      av,
	})
	if err != nil {
		return fmt.Errorf("PutItem failed: %w", err)
	}
	return nil
}

// Create stores entity only if no item with the same key exists.
func (d *DynamodbDataStore[T]) Create(ctx context.Context, entity T) error {
	av, err := d.item(entity)
	if err != nil {
		return err
	}

	condition := "attribute_not_exists(PK)"
	_, err = d.client.PutItem(ctx, &sdk.PutItemInput{
		TableName:           &d.tableName,
		Item:                av,
		ConditionExpression: &condition,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if stderrors.As(err, &cfe) {
			return errors.NewConditionFailedError("create", condition)
		}
		return fmt.Errorf("PutItem failed: %w", err)
	}
	return nil
}

// Delete removes an item by its string key.
func (d *DynamodbDataStore[T]) Delete(ctx context.Context, key string) error {
	keyMap, err := d.primaryKey(key)
	if err != nil {
		return fmt.Errorf("failed to build key for Delete: %w", err)
	}

	out, err := d.client.DeleteItem(ctx, &sdk.DeleteItemInput{
		TableName:    &d.tableName,
		Key:          keyMap,
		ReturnValues: types.ReturnValueAllOld,
	})
	if err != nil {
		return fmt.Errorf("failed to delete item in DynamoDB: %w", err)
	}
	if len(out.Attributes) == 0 {
		var zero T
		return errors.NewNotFoundError(fmt.Sprintf("%T", zero), key)
	}
	return nil
}

// buildKeyFromExpanded builds a DynamoDB key from the expanded index map.
// It requires non-empty values for "PK" and "SK".
func buildKeyFromExpanded(expanded map[string]string) (map[string]types.AttributeValue, error) {
	pk, okPK := expanded["PK"]
	sk, okSK := expanded["SK"]

	if !okPK || !okSK || pk == "" || sk == "" {
		return nil, errors.NewValidationError("key", "expanded index map missing valid PK or SK")
	}

	return map[string]types.AttributeValue{
		"PK": &types.AttributeValueMemberS{Value: pk},
		"SK": &types.AttributeValueMemberS{Value: sk},
	}, nil
}

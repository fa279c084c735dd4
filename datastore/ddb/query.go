/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package ddb

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	sdk "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/suparena/iconregistry/errors"
	"github.com/suparena/iconregistry/storagemodels"
)

// Query lists items. With a Collection it queries the store's collection
// index; without one it scans the table for items of this layout.
// Pages are followed until Limit items are collected or the table is exhausted.
func (d *DynamodbDataStore[T]) Query(ctx context.Context, params *storagemodels.QueryParams) ([]T, error) {
	if params == nil {
		params = &storagemodels.QueryParams{}
	}

	var limit int
	if params.Limit != nil {
		limit = int(*params.Limit)
	}

	var (
		results []T
		err     error
	)
	if params.Collection != "" {
		results, err = d.queryCollection(ctx, params, limit)
	} else {
		results, err = d.scan(ctx, params, limit)
	}
	if err != nil {
		return nil, err
	}
	return results, nil
}

func (d *DynamodbDataStore[T]) queryCollection(ctx context.Context, params *storagemodels.QueryParams, limit int) ([]T, error) {
	index := d.collection
	if params.IndexName != nil && *params.IndexName != index.Name {
		return nil, errors.NewValidationError("IndexName", fmt.Sprintf("collection queries use index %q, not %q", index.Name, *params.IndexName))
	}

	pk, err := expandTemplates(map[string]string{index.PartitionKey: d.indexMap[index.PartitionKey]},
		map[string]string{"Collection": params.Collection})
	if err != nil {
		return nil, fmt.Errorf("failed to build collection key: %w", err)
	}

	keyCond := "#pk = :pk"
	input := &sdk.QueryInput{
		TableName:                &d.tableName,
		IndexName:                aws.String(index.Name),
		KeyConditionExpression:   &keyCond,
		ExpressionAttributeNames: map[string]string{"#pk": index.PartitionKey},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pk": &types.AttributeValueMemberS{Value: pk[index.PartitionKey]},
		},
		ExclusiveStartKey: params.ExclusiveStartKey,
	}

	var results []T
	paginator := sdk.NewQueryPaginator(d.client, input)
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("query error: %w", err)
		}
		var done bool
		results, done, err = d.collect(results, page.Items, limit)
		if err != nil || done {
			return results, err
		}
	}
	return results, nil
}

func (d *DynamodbDataStore[T]) scan(ctx context.Context, params *storagemodels.QueryParams, limit int) ([]T, error) {
	input := &sdk.ScanInput{
		TableName:         &d.tableName,
		ExclusiveStartKey: params.ExclusiveStartKey,
	}
	// Other item types share the table; a constant sort key tells ours apart.
	if sk := d.indexMap["SK"]; sk != "" && !macroPattern.MatchString(sk) {
		filter := "#sk = :sk"
		input.FilterExpression = &filter
		input.ExpressionAttributeNames = map[string]string{"#sk": "SK"}
		input.ExpressionAttributeValues = map[string]types.AttributeValue{
			":sk": &types.AttributeValueMemberS{Value: sk},
		}
	}

	var results []T
	paginator := sdk.NewScanPaginator(d.client, input)
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("scan error: %w", err)
		}
		var done bool
		results, done, err = d.collect(results, page.Items, limit)
		if err != nil || done {
			return results, err
		}
	}
	return results, nil
}

// collect unmarshals items onto results and reports whether limit is reached.
func (d *DynamodbDataStore[T]) collect(results []T, items []map[string]types.AttributeValue, limit int) ([]T, bool, error) {
	for _, item := range items {
		var v T
		if err := attributevalue.UnmarshalMap(item, &v); err != nil {
			return nil, false, fmt.Errorf("failed to unmarshal item: %w", err)
		}
		results = append(results, v)
		if limit > 0 && len(results) >= limit {
			return results, true, nil
		}
	}
	return results, false, nil
}

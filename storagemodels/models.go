/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package storagemodels

import (
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/go-openapi/strfmt"

	"github.com/suparena/iconregistry/errors"
)

// IconRecord is the persisted form of one catalogue icon.
type IconRecord struct {
	// Key is the symbolic icon key, unique within a catalogue.
	Key string `json:"Key" dynamodbav:"Key"`
	// Collection names the manifest the icon was authored in (e.g. "emoji", "ui").
	Collection string `json:"Collection" dynamodbav:"Collection"`
	// Category groups icons for documentation and pickers.
	Category string `json:"Category,omitempty" dynamodbav:"Category,omitempty"`
	// Description is a short human-readable label.
	Description string `json:"Description,omitempty" dynamodbav:"Description,omitempty"`
	// Glyphs are the emoji this icon replaces.
	Glyphs []string `json:"Glyphs,omitempty" dynamodbav:"Glyphs,omitempty"`
	// SVG is the icon markup.
	SVG string `json:"SVG" dynamodbav:"SVG"`
	// Position is the icon's index in the published catalogue.
	Position int `json:"Position" dynamodbav:"Position"`
	// UpdatedAt is stamped when the record is published.
	UpdatedAt *Timestamp `json:"UpdatedAt,omitempty" dynamodbav:"UpdatedAt,omitempty"`
}

// QueryParams defines parameters for listing icon records.
// Stores that do not understand a field ignore it.
type QueryParams struct {
	// Collection restricts results to one collection. Empty means all.
	Collection string
	// Limit caps the number of records returned. Nil means no limit.
	Limit *int32
	// IndexName overrides the DynamoDB index used for collection queries.
	IndexName *string
	// ExclusiveStartKey for DynamoDB pagination
	ExclusiveStartKey map[string]types.AttributeValue
}

// IDSeparator joins collection and key in a record ID.
const IDSeparator = "/"

// ID is the store key of the record. Keys may repeat across collections,
// so the collection is part of the identity.
func (r IconRecord) ID() string {
	return r.Collection + IDSeparator + r.Key
}

// ParseID splits a record ID into its collection and key.
func ParseID(id string) (collection, key string, err error) {
	collection, key, ok := strings.Cut(id, IDSeparator)
	if !ok || collection == "" || key == "" {
		return "", "", errors.NewValidationError("id", fmt.Sprintf("icon record id %q must be collection%skey", id, IDSeparator))
	}
	return collection, key, nil
}

// Timestamp is a strfmt.DateTime that is stored as an RFC 3339 string
// attribute in DynamoDB.
type Timestamp struct {
	strfmt.DateTime
}

// NewTimestamp wraps t.
func NewTimestamp(t time.Time) *Timestamp {
	return &Timestamp{DateTime: strfmt.DateTime(t)}
}

// MarshalDynamoDBAttributeValue implements attributevalue.Marshaler.
func (t Timestamp) MarshalDynamoDBAttributeValue() (types.AttributeValue, error) {
	return &types.AttributeValueMemberS{Value: t.String()}, nil
}

// UnmarshalDynamoDBAttributeValue implements attributevalue.Unmarshaler.
func (t *Timestamp) UnmarshalDynamoDBAttributeValue(av types.AttributeValue) error {
	s, ok := av.(*types.AttributeValueMemberS)
	if !ok {
		return fmt.Errorf("timestamp: expected string attribute, got %T", av)
	}
	dt, err := strfmt.ParseDateTime(s.Value)
	if err != nil {
		return fmt.Errorf("timestamp: %w", err)
	}
	t.DateTime = dt
	return nil
}

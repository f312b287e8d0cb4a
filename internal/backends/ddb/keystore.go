// Package ddb keeps protocol flag entries in a DynamoDB single-table layout,
// one item per store path. This backend serves as a central desired-state
// store when managing machines from a control plane.
package ddb

import (
	"context"
	"schanctl/internal/types"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	ddbTypes "github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type KeyStore struct {
	table string
	cli   *dynamodb.Client
}

type flagItem struct {
	PK      string `dynamodbav:"PK"`
	SK      string `dynamodbav:"SK"`
	Path    string `dynamodbav:"path"`
	Enabled uint32 `dynamodbav:"enabled"`
}

func NewKeyStore(table string, cli *dynamodb.Client) *KeyStore {
	// Creates the table only if it doesn't exist.
	// We ignore the error if the table already exists.
	createTableIfNotExists(cli, table)
	return &KeyStore{table: table, cli: cli}
}

func (s *KeyStore) GetFlag(ctx context.Context, path string) (uint32, error) {
	out, err := s.cli.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: &s.table,
		Key: map[string]ddbTypes.AttributeValue{
			"PK": &ddbTypes.AttributeValueMemberS{Value: pkFlag(path)},
			"SK": &ddbTypes.AttributeValueMemberS{Value: skFlag()},
		},
		ConsistentRead: awsBool(true),
	})
	if err != nil {
		return 0, err
	}
	if out.Item == nil {
		return 0, types.ErrNotFound
	}
	var item flagItem
	if err := attributevalue.UnmarshalMap(out.Item, &item); err != nil {
		return 0, err
	}
	return item.Enabled, nil
}

func (s *KeyStore) SetFlag(ctx context.Context, path string, value uint32) error {
	item, err := attributevalue.MarshalMap(flagItem{
		PK:      pkFlag(path),
		SK:      skFlag(),
		Path:    path,
		Enabled: value,
	})
	if err != nil {
		return err
	}
	_, err = s.cli.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: &s.table,
		Item:      item,
	})
	return err
}

func (s *KeyStore) DeleteKey(ctx context.Context, path string) error {
	// ReturnValues lets us distinguish "deleted" from "was never there";
	// absence must surface as ErrNotFound per the port contract.
	out, err := s.cli.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: &s.table,
		Key: map[string]ddbTypes.AttributeValue{
			"PK": &ddbTypes.AttributeValueMemberS{Value: pkFlag(path)},
			"SK": &ddbTypes.AttributeValueMemberS{Value: skFlag()},
		},
		ReturnValues: ddbTypes.ReturnValueAllOld,
	})
	if err != nil {
		return err
	}
	if out.Attributes == nil {
		return types.ErrNotFound
	}
	return nil
}

func (s *KeyStore) ClearAll(ctx context.Context) error {
	// delete all items in the table
	_, err := s.cli.DeleteTable(ctx, &dynamodb.DeleteTableInput{
		TableName: &s.table,
	})
	if err != nil {
		return err
	}
	// wait until the table is deleted
	err = dynamodb.NewTableNotExistsWaiter(s.cli).Wait(ctx, &dynamodb.DescribeTableInput{
		TableName: aws.String(s.table),
	}, 30*time.Second)
	if err != nil {
		return err
	}
	// Recreate the table
	createTableIfNotExists(s.cli, s.table)
	return nil
}

package lookup

import (
	"context"
	"log"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/zoff-tech/status-reconciler/pkg/event"
)

type dynamoAPI interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
}

// DynamoLookup reads the original-request table directly, bypassing the HTTP
// query API. The table is keyed by sns_id, the same id the API is queried
// with.
type DynamoLookup struct {
	client    dynamoAPI
	tableName string
}

// DynamoLookupCreator defines a function type for creating DynamoDB lookups.
type DynamoLookupCreator func(ctx context.Context, region, tableName string) (RequestLookup, error)

// NewDynamoLookup is the default implementation of DynamoLookupCreator.
var NewDynamoLookup DynamoLookupCreator = func(ctx context.Context, region, tableName string) (RequestLookup, error) {
	var opts []func(*awsconfig.LoadOptions) error
	if region != "" {
		opts = append(opts, awsconfig.WithRegion(region))
	}
	cfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, err
	}
	return &DynamoLookup{client: dynamodb.NewFromConfig(cfg), tableName: tableName}, nil
}

func (d *DynamoLookup) Lookup(ctx context.Context, snsID string) (*event.OriginalRequest, error) {
	out, err := d.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(d.tableName),
		Key: map[string]types.AttributeValue{
			"sns_id": &types.AttributeValueMemberS{Value: snsID},
		},
	})
	if err != nil {
		log.Printf("Dynamo lookup failed for sns_id %s: %v", snsID, err)
		return nil, ErrNotFound
	}
	if out.Item == nil {
		return nil, ErrNotFound
	}

	var original event.OriginalRequest
	if err := attributevalue.UnmarshalMap(out.Item, &original); err != nil {
		log.Printf("Dynamo item for sns_id %s does not unmarshal: %v", snsID, err)
		return nil, ErrNotFound
	}
	return &original, nil
}

func (d *DynamoLookup) Close() error {
	return nil
}

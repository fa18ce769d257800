package repository

import (
	"context"
	"errors"
	"strconv"
	"time"

	"hours_tracker/internal/domain/entities"
	"hours_tracker/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultPayoutEventsTableName = "payout_events"

type payoutEventItem struct {
	ID                string `dynamodbav:"id"`
	Source            string `dynamodbav:"source"`
	Amount            string `dynamodbav:"amount"`
	ReceivedAt        string `dynamodbav:"received_at"`
	ExternalPaymentID string `dynamodbav:"external_payment_id,omitempty"`
	TransactionID     string `dynamodbav:"transaction_id,omitempty"`
	EstimatedArrival  string `dynamodbav:"estimated_arrival,omitempty"`
	MessageID         string `dynamodbav:"message_id,omitempty"`
}

// PayoutEventDynamoRepository persists PayoutEvent entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// The event ID equals the source-specific dedupe key, so the conditional put
// in Create is the dedupe guarantee the derivation engine relies on: two
// concurrent mailbox scans racing on the same email cannot double-store it.

type PayoutEventDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPayoutEventRepository = (*PayoutEventDynamoRepository)(nil)

func NewPayoutEventDynamoRepository(ddb *dynamodb.Client) *PayoutEventDynamoRepository {
	return &PayoutEventDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PAYOUT_EVENTS_TABLE", defaultPayoutEventsTableName),
	}
}

// Create stores the event unless its dedupe key already exists. A lost
// condition check returns a zero-value event and no error, which the
// ingestion usecase counts as a duplicate.
func (r *PayoutEventDynamoRepository) Create(ctx context.Context, e entities.PayoutEvent) (entities.PayoutEvent, error) {
	it := toPayoutEventItem(e)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.PayoutEvent{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.PayoutEvent{}, nil
		}
		return entities.PayoutEvent{}, err
	}
	return e, nil
}

func (r *PayoutEventDynamoRepository) GetByID(ctx context.Context, id string) (entities.PayoutEvent, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.PayoutEvent{}, err
	}
	if len(out.Item) == 0 {
		return entities.PayoutEvent{}, nil
	}

	var it payoutEventItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.PayoutEvent{}, err
	}
	return fromPayoutEventItem(it), nil
}

func (r *PayoutEventDynamoRepository) List(ctx context.Context) ([]entities.PayoutEvent, error) {
	out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.PayoutEvent, 0, len(out.Items))
	for _, raw := range out.Items {
		var it payoutEventItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromPayoutEventItem(it))
	}
	return items, nil
}

// UpdateEstimatedArrival rewrites a transfer's estimated arrival, the one
// mutation permitted on a stored event. A missing event returns a zero value
// and no error.
func (r *PayoutEventDynamoRepository) UpdateEstimatedArrival(ctx context.Context, id string, arrival time.Time) (entities.PayoutEvent, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #estimated_arrival = :estimated_arrival"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":estimated_arrival": &types.AttributeValueMemberS{Value: arrival.UTC().Format(time.RFC3339Nano)},
		},
		ExpressionAttributeNames: map[string]string{
			"#id":                "id",
			"#estimated_arrival": "estimated_arrival",
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.PayoutEvent{}, nil
		}
		return entities.PayoutEvent{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.PayoutEvent{}, nil
	}
	var it payoutEventItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.PayoutEvent{}, err
	}
	return fromPayoutEventItem(it), nil
}

func toPayoutEventItem(e entities.PayoutEvent) payoutEventItem {
	it := payoutEventItem{
		ID:                e.ID,
		Source:            string(e.Source),
		Amount:            floatToString(e.Amount),
		ReceivedAt:        e.ReceivedAt.UTC().Format(time.RFC3339Nano),
		ExternalPaymentID: e.ExternalPaymentID,
		TransactionID:     e.TransactionID,
		MessageID:         e.MessageID,
	}
	if e.EstimatedArrival != nil {
		it.EstimatedArrival = e.EstimatedArrival.UTC().Format(time.RFC3339Nano)
	}
	return it
}

func fromPayoutEventItem(it payoutEventItem) entities.PayoutEvent {
	amount, _ := strconv.ParseFloat(it.Amount, 64)
	receivedAt, _ := time.Parse(time.RFC3339Nano, it.ReceivedAt)
	e := entities.PayoutEvent{
		ID:                it.ID,
		Source:            entities.EventSource(it.Source),
		Amount:            amount,
		ReceivedAt:        receivedAt,
		ExternalPaymentID: it.ExternalPaymentID,
		TransactionID:     it.TransactionID,
		MessageID:         it.MessageID,
	}
	if it.EstimatedArrival != "" {
		if at, err := time.Parse(time.RFC3339Nano, it.EstimatedArrival); err == nil {
			e.EstimatedArrival = &at
		}
	}
	return e
}

package repository

import (
	"context"
	"strconv"
	"time"

	"hours_tracker/internal/domain/entities"
	"hours_tracker/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultWorkSessionsTableName = "work_sessions"

type workSessionItem struct {
	ID            string `dynamodbav:"id"`
	Date          string `dynamodbav:"date"`
	DurationHours string `dynamodbav:"duration_hours"`
	WorkKind      string `dynamodbav:"work_kind"`
	Earnings      string `dynamodbav:"earnings"`
	SubmittedAt   string `dynamodbav:"submitted_at,omitempty"`
	CreatedAt     string `dynamodbav:"created_at"`
}

// WorkSessionDynamoRepository persists WorkSession entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)

type WorkSessionDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IWorkSessionRepository = (*WorkSessionDynamoRepository)(nil)

func NewWorkSessionDynamoRepository(ddb *dynamodb.Client) *WorkSessionDynamoRepository {
	return &WorkSessionDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("WORK_SESSIONS_TABLE", defaultWorkSessionsTableName),
	}
}

func (r *WorkSessionDynamoRepository) Create(ctx context.Context, s entities.WorkSession) (entities.WorkSession, error) {
	it := toWorkSessionItem(s)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.WorkSession{}, err
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
		return entities.WorkSession{}, err
	}
	return s, nil
}

func (r *WorkSessionDynamoRepository) GetByID(ctx context.Context, id string) (entities.WorkSession, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.WorkSession{}, err
	}
	if len(out.Item) == 0 {
		return entities.WorkSession{}, nil
	}

	var it workSessionItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.WorkSession{}, err
	}
	return fromWorkSessionItem(it), nil
}

// List scans the whole table. Session volume for a single tracker user is a
// few hundred rows at most, so pagination beyond the SDK default is not
// needed here.
func (r *WorkSessionDynamoRepository) List(ctx context.Context) ([]entities.WorkSession, error) {
	out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.WorkSession, 0, len(out.Items))
	for _, raw := range out.Items {
		var it workSessionItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromWorkSessionItem(it))
	}
	return items, nil
}

func (r *WorkSessionDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func toWorkSessionItem(s entities.WorkSession) workSessionItem {
	it := workSessionItem{
		ID:            s.ID,
		Date:          s.Date,
		DurationHours: floatToString(s.DurationHours),
		WorkKind:      string(s.WorkKind),
		Earnings:      floatToString(s.Earnings),
		CreatedAt:     s.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
	if s.SubmittedAt != nil {
		it.SubmittedAt = s.SubmittedAt.UTC().Format(time.RFC3339Nano)
	}
	return it
}

func fromWorkSessionItem(it workSessionItem) entities.WorkSession {
	duration, _ := strconv.ParseFloat(it.DurationHours, 64)
	earnings, _ := strconv.ParseFloat(it.Earnings, 64)
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	s := entities.WorkSession{
		ID:            it.ID,
		Date:          it.Date,
		DurationHours: duration,
		WorkKind:      entities.WorkKind(it.WorkKind),
		Earnings:      earnings,
		CreatedAt:     createdAt,
	}
	if it.SubmittedAt != "" {
		if at, err := time.Parse(time.RFC3339Nano, it.SubmittedAt); err == nil {
			s.SubmittedAt = &at
		}
	}
	return s
}

func floatToString(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

package dynamo

import (
	"context"
	"errors"
	"fmt"

	"todo-gateway/internal/domain"
	"todo-gateway/internal/ports/output"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	dynamodbtypes "github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	// PartitionKey is the attribute name of the table's partition key.
	PartitionKey = "id"

	// ScanPageSize bounds the list operation to a single fixed page. No
	// continuation token is exposed.
	ScanPageSize = 10

	conditionNotExists = "attribute_not_exists(" + PartitionKey + ")"
	conditionExists    = "attribute_exists(" + PartitionKey + ")"
)

// Compile-time checks that the repository satisfies its output ports
var (
	_ output.TodoRepository = (*TodoRepository)(nil)
	_ output.StorePinger    = (*TodoRepository)(nil)
)

// TodoRepository struct - Secondary/Driven adapter for DynamoDB
//
// Each method maps to exactly one store call. Create/update/delete carry a
// condition expression so the existence check and the mutation are evaluated
// atomically by DynamoDB; the repository itself holds no locks and performs
// no read-then-write sequences. Items are marshalled with attributevalue, so
// untrusted field values never reach the request as raw expression text.
type TodoRepository struct {
	client    API
	tableName string
}

// NewTodoRepository func - Creates new DynamoDB repository
func NewTodoRepository(client API, tableName string) *TodoRepository {
	return &TodoRepository{
		client:    client,
		tableName: tableName,
	}
}

// CreateTodo writes the item with an attribute_not_exists condition on the
// partition key. A concurrent create for the same ID cannot also succeed.
func (r *TodoRepository) CreateTodo(ctx context.Context, todo domain.Todo) error {
	item, err := attributevalue.MarshalMap(todo)
	if err != nil {
		return fmt.Errorf("failed to marshal todo %s: %w", todo.ID, err)
	}

	input := &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                item,
		ConditionExpression: aws.String(conditionNotExists),
	}

	if _, err := r.client.PutItem(ctx, input); err != nil {
		return r.classify(err, fmt.Sprintf("failed to create todo %s in table %s", todo.ID, r.tableName))
	}

	return nil
}

// UpdateTodo replaces the item with an attribute_exists condition on the
// partition key. The full item is written; title and description are
// replaced in place and the key comes from the todo's ID only.
func (r *TodoRepository) UpdateTodo(ctx context.Context, todo domain.Todo) error {
	item, err := attributevalue.MarshalMap(todo)
	if err != nil {
		return fmt.Errorf("failed to marshal todo %s: %w", todo.ID, err)
	}

	input := &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                item,
		ConditionExpression: aws.String(conditionExists),
	}

	if _, err := r.client.PutItem(ctx, input); err != nil {
		return r.classify(err, fmt.Sprintf("failed to update todo %s in table %s", todo.ID, r.tableName))
	}

	return nil
}

// DeleteTodo removes the item with an attribute_exists condition, so
// deleting an absent key fails instead of silently succeeding.
func (r *TodoRepository) DeleteTodo(ctx context.Context, id string) error {
	input := &dynamodb.DeleteItemInput{
		TableName:           aws.String(r.tableName),
		Key:                 r.key(id),
		ConditionExpression: aws.String(conditionExists),
	}

	if _, err := r.client.DeleteItem(ctx, input); err != nil {
		return r.classify(err, fmt.Sprintf("failed to delete todo %s from table %s", id, r.tableName))
	}

	return nil
}

// GetTodo reads a single item by partition key. An empty result maps to
// domain.ErrNotFound so the HTTP layer never answers 200 with no payload.
func (r *TodoRepository) GetTodo(ctx context.Context, id string) (*domain.Todo, error) {
	input := &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key:       r.key(id),
	}

	result, err := r.client.GetItem(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to get todo %s from table %s: %w", id, r.tableName, err)
	}

	if len(result.Item) == 0 {
		return nil, domain.ErrNotFound
	}

	var todo domain.Todo
	if err := attributevalue.UnmarshalMap(result.Item, &todo); err != nil {
		return nil, fmt.Errorf("failed to unmarshal todo %s: %w", id, err)
	}

	return &todo, nil
}

// ListTodos scans the first page of the table. Return order is whatever the
// store yields; it is not insertion order and no sort is applied.
func (r *TodoRepository) ListTodos(ctx context.Context) ([]domain.Todo, error) {
	input := &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
		Limit:     aws.Int32(ScanPageSize),
	}

	result, err := r.client.Scan(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to scan table %s: %w", r.tableName, err)
	}

	todos := make([]domain.Todo, 0, len(result.Items))
	if err := attributevalue.UnmarshalListOfMaps(result.Items, &todos); err != nil {
		return nil, fmt.Errorf("failed to unmarshal todos from table %s: %w", r.tableName, err)
	}

	return todos, nil
}

// Ping verifies the table is reachable. Used by the health endpoint.
func (r *TodoRepository) Ping(ctx context.Context) error {
	input := &dynamodb.DescribeTableInput{
		TableName: aws.String(r.tableName),
	}

	if _, err := r.client.DescribeTable(ctx, input); err != nil {
		return fmt.Errorf("failed to describe table %s: %w", r.tableName, err)
	}

	return nil
}

func (r *TodoRepository) key(id string) map[string]dynamodbtypes.AttributeValue {
	return map[string]dynamodbtypes.AttributeValue{
		PartitionKey: &dynamodbtypes.AttributeValueMemberS{Value: id},
	}
}

// classify tags store failures: a rejected condition expression becomes
// domain.ErrConditionFailed, everything else passes through as a backend
// failure with context.
func (r *TodoRepository) classify(err error, msg string) error {
	var conditionFailed *dynamodbtypes.ConditionalCheckFailedException
	if errors.As(err, &conditionFailed) {
		return fmt.Errorf("%s: %w", msg, domain.ErrConditionFailed)
	}

	return fmt.Errorf("%s: %w", msg, err)
}

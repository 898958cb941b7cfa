package dynamo

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/katalon/insights/internal/domain/conversation"
	"github.com/katalon/insights/internal/shared/config"
	"github.com/katalon/insights/internal/shared/logger"
	"github.com/katalon/insights/internal/shared/mapper"
)

// Source implements conversation.Source on top of three DynamoDB tables.
type Source struct {
	api     API
	cfg     config.DynamoDBConfig
	timeout time.Duration
	logger  logger.Interface
}

var _ conversation.Source = (*Source)(nil)

func NewSource(api API, cfg config.DynamoDBConfig, logger logger.Interface) *Source {
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Source{api: api, cfg: cfg, timeout: timeout, logger: logger}
}

func (s *Source) ListConversations(ctx context.Context) ([]*conversation.Conversation, error) {
	return scanAll(ctx, s, s.cfg.ConversationTable, toConversation)
}

func (s *Source) ListMessages(ctx context.Context) ([]*conversation.Message, error) {
	return scanAll(ctx, s, s.cfg.MessageTable, toMessage)
}

func (s *Source) ListFeedback(ctx context.Context) ([]*conversation.Feedback, error) {
	return scanAll(ctx, s, s.cfg.FeedbackTable, toFeedback)
}

// ListMessagesByConversation queries conversationId = :cid, following every
// page.
func (s *Source) ListMessagesByConversation(ctx context.Context, conversationID string) ([]*conversation.Message, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	keyCond := expression.Key("conversationId").Equal(expression.Value(conversationID))
	expr, err := expression.NewBuilder().WithKeyCondition(keyCond).Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build key condition: %w", err)
	}

	input := &dynamodb.QueryInput{
		TableName:                 aws.String(s.cfg.MessageTable),
		KeyConditionExpression:    expr.KeyCondition(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
	}
	if s.cfg.ConversationIndex != "" {
		input.IndexName = aws.String(s.cfg.ConversationIndex)
	}

	var items []messageItem
	p := dynamodb.NewQueryPaginator(s.api, input)
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to query %s: %w", s.cfg.MessageTable, err)
		}
		batch, err := decodePage[messageItem](page.Items)
		if err != nil {
			return nil, fmt.Errorf("failed to decode %s items: %w", s.cfg.MessageTable, err)
		}
		items = append(items, batch...)
	}

	s.logger.Debugw("queried messages", "conversation_id", conversationID, "count", len(items))
	return mapper.MapSlice(items, toMessage), nil
}

// GetMessage fetches one message by id.
func (s *Source) GetMessage(ctx context.Context, id string) (*conversation.Message, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	key, err := attributevalue.MarshalMap(keyItem{ID: id})
	if err != nil {
		return nil, fmt.Errorf("failed to encode key: %w", err)
	}

	out, err := s.api.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(s.cfg.MessageTable),
		Key:       key,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get message %s: %w", id, err)
	}
	if len(out.Item) == 0 {
		return nil, fmt.Errorf("message %s: %w", id, conversation.ErrNotFound)
	}

	var it messageItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return nil, fmt.Errorf("failed to decode message %s: %w", id, err)
	}
	return toMessage(it), nil
}

// scanAll reads a whole table, following LastEvaluatedKey until exhausted.
func scanAll[I any, R any](ctx context.Context, s *Source, table string, adapt func(I) R) ([]R, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	var (
		items []I
		pages int
	)
	p := dynamodb.NewScanPaginator(s.api, &dynamodb.ScanInput{TableName: aws.String(table)})
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to scan %s: %w", table, err)
		}
		batch, err := decodePage[I](page.Items)
		if err != nil {
			return nil, fmt.Errorf("failed to decode %s items: %w", table, err)
		}
		items = append(items, batch...)
		pages++
	}

	s.logger.Debugw("scanned table", "table", table, "pages", pages, "count", len(items))
	return mapper.MapSlice(items, adapt), nil
}

func decodePage[I any](raw []map[string]types.AttributeValue) ([]I, error) {
	var batch []I
	if err := attributevalue.UnmarshalListOfMaps(raw, &batch); err != nil {
		return nil, err
	}
	return batch, nil
}

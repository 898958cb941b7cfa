package dynamo

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalon/insights/internal/domain/conversation"
	"github.com/katalon/insights/internal/shared/config"
	"github.com/katalon/insights/internal/shared/logger"
)

type fakeAPI struct {
	scanFunc    func(*dynamodb.ScanInput) (*dynamodb.ScanOutput, error)
	queryFunc   func(*dynamodb.QueryInput) (*dynamodb.QueryOutput, error)
	getItemFunc func(*dynamodb.GetItemInput) (*dynamodb.GetItemOutput, error)
}

func (f *fakeAPI) Scan(_ context.Context, in *dynamodb.ScanInput, _ ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error) {
	return f.scanFunc(in)
}

func (f *fakeAPI) Query(_ context.Context, in *dynamodb.QueryInput, _ ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	return f.queryFunc(in)
}

func (f *fakeAPI) GetItem(_ context.Context, in *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	return f.getItemFunc(in)
}

func s(v string) types.AttributeValue { return &types.AttributeValueMemberS{Value: v} }

func testConfig() config.DynamoDBConfig {
	return config.DynamoDBConfig{
		Region:            "local",
		ConversationTable: "conversations",
		MessageTable:      "messages",
		FeedbackTable:     "feedbacks",
		TimeoutSeconds:    5,
	}
}

func newTestSource(api API) *Source {
	return NewSource(api, testConfig(), logger.NewNop())
}

func TestListConversations_FollowsPagination(t *testing.T) {
	var calls []*dynamodb.ScanInput
	api := &fakeAPI{scanFunc: func(in *dynamodb.ScanInput) (*dynamodb.ScanOutput, error) {
		calls = append(calls, in)
		if in.ExclusiveStartKey == nil {
			return &dynamodb.ScanOutput{
				Items:            []map[string]types.AttributeValue{{"id": s("C1"), "title": s("Login flake"), "timestamp": s("2024-01-15T10:30:00Z")}},
				LastEvaluatedKey: map[string]types.AttributeValue{"id": s("C1")},
			}, nil
		}
		return &dynamodb.ScanOutput{
			Items: []map[string]types.AttributeValue{{"id": s("C2")}},
		}, nil
	}}

	got, err := newTestSource(api).ListConversations(context.Background())
	require.NoError(t, err)

	require.Len(t, calls, 2)
	assert.Equal(t, "conversations", *calls[0].TableName)
	assert.Equal(t, "C1", calls[1].ExclusiveStartKey["id"].(*types.AttributeValueMemberS).Value)

	require.Len(t, got, 2)
	assert.Equal(t, "Login flake", got[0].Title)
	assert.Equal(t, time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC), got[0].CreatedAt)
	assert.Equal(t, "", got[1].Title)
	assert.True(t, got[1].CreatedAt.IsZero())
	assert.Equal(t, "Conversation C2", got[1].DisplayTitle())
}

func TestListFeedback_MapsAttributes(t *testing.T) {
	api := &fakeAPI{scanFunc: func(in *dynamodb.ScanInput) (*dynamodb.ScanOutput, error) {
		assert.Equal(t, "feedbacks", *in.TableName)
		return &dynamodb.ScanOutput{Items: []map[string]types.AttributeValue{{
			"id": s("FB-001"), "messageId": s("M1"), "type": s("bad"), "comment": s("slow"),
			"userId": s("user-1"), "timestamp": s("not a time"),
		}}}, nil
	}}

	got, err := newTestSource(api).ListFeedback(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, conversation.FeedbackBad, got[0].Type)
	assert.Equal(t, "slow", got[0].Comment)
	assert.Equal(t, "user-1", got[0].UserID)
	assert.True(t, got[0].CreatedAt.IsZero(), "unparseable timestamps become zero")
}

func TestListMessages_ScanError(t *testing.T) {
	api := &fakeAPI{scanFunc: func(*dynamodb.ScanInput) (*dynamodb.ScanOutput, error) {
		return nil, errors.New("connection refused")
	}}

	_, err := newTestSource(api).ListMessages(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to scan messages")
	assert.Contains(t, err.Error(), "connection refused")
}

func TestListMessagesByConversation_BuildsKeyCondition(t *testing.T) {
	var got *dynamodb.QueryInput
	api := &fakeAPI{queryFunc: func(in *dynamodb.QueryInput) (*dynamodb.QueryOutput, error) {
		got = in
		return &dynamodb.QueryOutput{Items: []map[string]types.AttributeValue{
			{"id": s("M2"), "conversationId": s("C1"), "role": s("assistant"), "model": s("GPT-4"), "content": s("Try a wait"), "timestamp": s("2024-01-15T10:31:00Z")},
			{"id": s("M1"), "conversationId": s("C1"), "role": s("user"), "content": s("Element not found"), "timestamp": s("2024-01-15T10:30:00Z")},
		}}, nil
	}}

	msgs, err := newTestSource(api).ListMessagesByConversation(context.Background(), "C1")
	require.NoError(t, err)

	require.NotNil(t, got)
	assert.Equal(t, "messages", *got.TableName)
	assert.Nil(t, got.IndexName)
	require.NotNil(t, got.KeyConditionExpression)
	assert.Contains(t, *got.KeyConditionExpression, "=")
	assert.Contains(t, got.ExpressionAttributeNames, "#0")
	assert.Equal(t, "conversationId", got.ExpressionAttributeNames["#0"])
	assert.Equal(t, "C1", got.ExpressionAttributeValues[":0"].(*types.AttributeValueMemberS).Value)

	require.Len(t, msgs, 2)
	assert.Equal(t, "M2", msgs[0].ID, "source order is preserved")
	assert.Equal(t, conversation.RoleAssistant, msgs[0].Role)
	assert.Equal(t, "GPT-4", msgs[0].Model)
}

func TestListMessagesByConversation_UsesIndexWhenConfigured(t *testing.T) {
	cfg := testConfig()
	cfg.ConversationIndex = "conversationId-index"

	var index *string
	api := &fakeAPI{queryFunc: func(in *dynamodb.QueryInput) (*dynamodb.QueryOutput, error) {
		index = in.IndexName
		return &dynamodb.QueryOutput{}, nil
	}}

	msgs, err := NewSource(api, cfg, logger.NewNop()).ListMessagesByConversation(context.Background(), "C1")
	require.NoError(t, err)
	assert.Empty(t, msgs)
	require.NotNil(t, index)
	assert.Equal(t, "conversationId-index", *index)
}

func TestGetMessage(t *testing.T) {
	api := &fakeAPI{getItemFunc: func(in *dynamodb.GetItemInput) (*dynamodb.GetItemOutput, error) {
		id := in.Key["id"].(*types.AttributeValueMemberS).Value
		if id != "M1" {
			return &dynamodb.GetItemOutput{}, nil
		}
		return &dynamodb.GetItemOutput{Item: map[string]types.AttributeValue{
			"id": s("M1"), "conversationId": s("C1"), "role": s("user"), "content": s("hello"),
		}}, nil
	}}
	src := newTestSource(api)

	m, err := src.GetMessage(context.Background(), "M1")
	require.NoError(t, err)
	assert.Equal(t, "hello", m.Content)

	_, err = src.GetMessage(context.Background(), "missing")
	assert.ErrorIs(t, err, conversation.ErrNotFound)
}

func TestGetMessage_UpstreamError(t *testing.T) {
	api := &fakeAPI{getItemFunc: func(*dynamodb.GetItemInput) (*dynamodb.GetItemOutput, error) {
		return nil, errors.New("throttled")
	}}

	_, err := newTestSource(api).GetMessage(context.Background(), "M1")
	require.Error(t, err)
	assert.NotErrorIs(t, err, conversation.ErrNotFound)
}

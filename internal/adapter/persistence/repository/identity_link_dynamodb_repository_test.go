package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"mangopay_billable/internal/domain/entities"
	"mangopay_billable/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDynamo struct {
	putInput    *dynamodb.PutItemInput
	putErr      error
	getInput    *dynamodb.GetItemInput
	getOutput   *dynamodb.GetItemOutput
	queryInput  *dynamodb.QueryInput
	queryOutput *dynamodb.QueryOutput
	updateInput *dynamodb.UpdateItemInput
	updateOut   *dynamodb.UpdateItemOutput
	updateErr   error
}

func (f *fakeDynamo) PutItem(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	f.putInput = in
	return &dynamodb.PutItemOutput{}, f.putErr
}

func (f *fakeDynamo) GetItem(_ context.Context, in *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	f.getInput = in
	if f.getOutput == nil {
		return &dynamodb.GetItemOutput{}, nil
	}
	return f.getOutput, nil
}

func (f *fakeDynamo) Query(_ context.Context, in *dynamodb.QueryInput, _ ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	f.queryInput = in
	if f.queryOutput == nil {
		return &dynamodb.QueryOutput{}, nil
	}
	return f.queryOutput, nil
}

func (f *fakeDynamo) UpdateItem(_ context.Context, in *dynamodb.UpdateItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error) {
	f.updateInput = in
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	if f.updateOut == nil {
		return &dynamodb.UpdateItemOutput{}, nil
	}
	return f.updateOut, nil
}

func marshalLinkItem(t *testing.T, link entities.IdentityLink) map[string]types.AttributeValue {
	t.Helper()
	av, err := attributevalue.MarshalMap(toIdentityLinkItem(link))
	require.NoError(t, err)
	return av
}

func TestIdentityLinkDynamoRepository_Create(t *testing.T) {
	t.Run("conditional put", func(t *testing.T) {
		ddb := &fakeDynamo{}
		repo := NewIdentityLinkDynamoRepository(ddb, "")

		link := sampleLink("42", "user_1")
		_, err := repo.Create(context.Background(), link)
		require.NoError(t, err)

		require.NotNil(t, ddb.putInput)
		assert.Equal(t, "identity_links", aws.ToString(ddb.putInput.TableName))
		assert.Equal(t, "attribute_not_exists(#billable_key)", aws.ToString(ddb.putInput.ConditionExpression))
		key, ok := ddb.putInput.Item["billable_key"].(*types.AttributeValueMemberS)
		require.True(t, ok)
		assert.Equal(t, "Organization#42", key.Value)
	})

	t.Run("configured table", func(t *testing.T) {
		ddb := &fakeDynamo{}
		repo := NewIdentityLinkDynamoRepository(ddb, "billing_links")
		assert.Equal(t, "billing_links", repo.TableName())

		_, err := repo.Create(context.Background(), sampleLink("42", "user_1"))
		require.NoError(t, err)
		assert.Equal(t, "billing_links", aws.ToString(ddb.putInput.TableName))
	})

	t.Run("separator in type does not collide", func(t *testing.T) {
		ddb := &fakeDynamo{}
		repo := NewIdentityLinkDynamoRepository(ddb, "")

		link := sampleLink("1", "user_1")
		link.BillableType = "Org#Team"
		_, err := repo.Create(context.Background(), link)
		require.NoError(t, err)
		key := ddb.putInput.Item["billable_key"].(*types.AttributeValueMemberS)
		assert.NotEqual(t, entities.BillableRef{Type: "Org", ID: "Team#1"}.Key(), key.Value)

		_, err = repo.FindByBillable(context.Background(), entities.BillableRef{Type: "Org", ID: "Team#1"})
		require.NoError(t, err)
		getKey := ddb.getInput.Key["billable_key"].(*types.AttributeValueMemberS)
		assert.NotEqual(t, key.Value, getKey.Value)
	})

	t.Run("condition failure is a duplicate", func(t *testing.T) {
		ddb := &fakeDynamo{putErr: &types.ConditionalCheckFailedException{Message: aws.String("exists")}}
		repo := NewIdentityLinkDynamoRepository(ddb, "")

		_, err := repo.Create(context.Background(), sampleLink("42", "user_1"))
		require.ErrorIs(t, err, interfaces.ErrDuplicateLink)
	})

	t.Run("other errors pass through", func(t *testing.T) {
		boom := errors.New("throttled")
		ddb := &fakeDynamo{putErr: boom}
		repo := NewIdentityLinkDynamoRepository(ddb, "")

		_, err := repo.Create(context.Background(), sampleLink("42", "user_1"))
		require.ErrorIs(t, err, boom)
	})
}

func TestIdentityLinkDynamoRepository_Find(t *testing.T) {
	link := sampleLink("42", "user_1")

	t.Run("by billable", func(t *testing.T) {
		ddb := &fakeDynamo{getOutput: &dynamodb.GetItemOutput{Item: marshalLinkItem(t, link)}}
		repo := NewIdentityLinkDynamoRepository(ddb, "")

		got, err := repo.FindByBillable(context.Background(), link.Ref())
		require.NoError(t, err)
		assert.Equal(t, link.RemoteUserID, got.RemoteUserID)
		assert.Equal(t, link.Status, got.Status)
		assert.Equal(t, entities.PersonTypeLegal, got.PersonType)
		assert.True(t, got.UpdatedAt.Equal(link.UpdatedAt))
		assert.True(t, aws.ToBool(ddb.getInput.ConsistentRead))
	})

	t.Run("missing billable", func(t *testing.T) {
		repo := NewIdentityLinkDynamoRepository(&fakeDynamo{}, "")
		got, err := repo.FindByBillable(context.Background(), link.Ref())
		require.NoError(t, err)
		assert.False(t, got.Exists())
	})

	t.Run("by remote id uses the index", func(t *testing.T) {
		ddb := &fakeDynamo{queryOutput: &dynamodb.QueryOutput{Items: []map[string]types.AttributeValue{marshalLinkItem(t, link)}}}
		repo := NewIdentityLinkDynamoRepository(ddb, "")

		got, err := repo.FindByRemoteID(context.Background(), "user_1")
		require.NoError(t, err)
		assert.Equal(t, "42", got.BillableID)
		assert.Equal(t, IdentityLinksRemoteUserIndex, aws.ToString(ddb.queryInput.IndexName))
	})
}

func TestIdentityLinkDynamoRepository_UpdateStatus(t *testing.T) {
	link := sampleLink("42", "user_1")
	touched := link.UpdatedAt.Add(time.Minute)
	status := entities.RemoteStatus{KYCLevel: "REGULAR", UserCategory: "OWNER", TermsAccepted: true}

	t.Run("guarded by remote id", func(t *testing.T) {
		updated := link
		updated.Status = status
		updated.UpdatedAt = touched
		ddb := &fakeDynamo{updateOut: &dynamodb.UpdateItemOutput{Attributes: marshalLinkItem(t, updated)}}
		repo := NewIdentityLinkDynamoRepository(ddb, "")

		got, err := repo.UpdateStatus(context.Background(), link, status, touched)
		require.NoError(t, err)
		assert.Equal(t, "REGULAR", got.Status.KYCLevel)
		assert.True(t, got.UpdatedAt.Equal(touched))

		in := ddb.updateInput
		require.NotNil(t, in)
		assert.Contains(t, aws.ToString(in.ConditionExpression), "#remote_user_id = :rid")
		assert.NotContains(t, aws.ToString(in.UpdateExpression), "remote_user_id")
		rid, ok := in.ExpressionAttributeValues[":rid"].(*types.AttributeValueMemberS)
		require.True(t, ok)
		assert.Equal(t, "user_1", rid.Value)
	})

	t.Run("condition failure means no link", func(t *testing.T) {
		ddb := &fakeDynamo{updateErr: &types.ConditionalCheckFailedException{}}
		repo := NewIdentityLinkDynamoRepository(ddb, "")

		got, err := repo.UpdateStatus(context.Background(), link, status, touched)
		require.NoError(t, err)
		assert.False(t, got.Exists())
	})
}

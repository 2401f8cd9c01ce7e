package database

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTableAPI struct {
	describeErr error
	createErr   error
	created     *dynamodb.CreateTableInput
}

func (f *fakeTableAPI) DescribeTable(context.Context, *dynamodb.DescribeTableInput, ...func(*dynamodb.Options)) (*dynamodb.DescribeTableOutput, error) {
	if f.describeErr != nil {
		return nil, f.describeErr
	}
	return &dynamodb.DescribeTableOutput{}, nil
}

func (f *fakeTableAPI) CreateTable(_ context.Context, in *dynamodb.CreateTableInput, _ ...func(*dynamodb.Options)) (*dynamodb.CreateTableOutput, error) {
	f.created = in
	if f.createErr != nil {
		return nil, f.createErr
	}
	return &dynamodb.CreateTableOutput{}, nil
}

func TestEnsureIdentityLinksTable(t *testing.T) {
	t.Run("existing table untouched", func(t *testing.T) {
		api := &fakeTableAPI{}
		require.NoError(t, EnsureIdentityLinksTable(context.Background(), api, "identity_links", "remote_user_id-index"))
		assert.Nil(t, api.created)
	})

	t.Run("missing table created with index", func(t *testing.T) {
		api := &fakeTableAPI{describeErr: &types.ResourceNotFoundException{}}
		require.NoError(t, EnsureIdentityLinksTable(context.Background(), api, "identity_links", "remote_user_id-index"))
		require.NotNil(t, api.created)
		assert.Equal(t, "identity_links", aws.ToString(api.created.TableName))
		require.Len(t, api.created.GlobalSecondaryIndexes, 1)
		assert.Equal(t, "remote_user_id-index", aws.ToString(api.created.GlobalSecondaryIndexes[0].IndexName))
	})

	t.Run("concurrent create tolerated", func(t *testing.T) {
		api := &fakeTableAPI{describeErr: &types.ResourceNotFoundException{}, createErr: &types.ResourceInUseException{}}
		require.NoError(t, EnsureIdentityLinksTable(context.Background(), api, "identity_links", "remote_user_id-index"))
	})

	t.Run("describe failure", func(t *testing.T) {
		api := &fakeTableAPI{describeErr: errors.New("access denied")}
		require.Error(t, EnsureIdentityLinksTable(context.Background(), api, "identity_links", "remote_user_id-index"))
	})
}

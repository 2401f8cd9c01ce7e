package repository

import (
	"context"
	"errors"
	"time"

	"mangopay_billable/internal/domain/entities"
	"mangopay_billable/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultIdentityLinksTableName = "identity_links"

// IdentityLinksRemoteUserIndex is the GSI keyed by remote_user_id.
const IdentityLinksRemoteUserIndex = "remote_user_id-index"

// DynamoDBAPI is the subset of *dynamodb.Client the repository uses.
type DynamoDBAPI interface {
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
	UpdateItem(ctx context.Context, params *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
}

type identityLinkItem struct {
	BillableKey   string `dynamodbav:"billable_key"`
	ID            string `dynamodbav:"id"`
	BillableType  string `dynamodbav:"billable_type"`
	BillableID    string `dynamodbav:"billable_id"`
	RemoteUserID  string `dynamodbav:"remote_user_id"`
	PersonType    string `dynamodbav:"person_type"`
	KYCLevel      string `dynamodbav:"kyc_level"`
	UserCategory  string `dynamodbav:"user_category"`
	TermsAccepted bool   `dynamodbav:"terms_accepted"`
	CreatedAt     string `dynamodbav:"created_at"`
	UpdatedAt     string `dynamodbav:"updated_at"`
}

// IdentityLinkDynamoRepository persists IdentityLink entities in DynamoDB.
//
// Table requirements:
//   - PK: billable_key (string, "<billable_type>#<billable_id>")
//   - GSI: remote_user_id-index (PK: remote_user_id)
//
// The composite PK makes "one link per billable" a conditional put instead of
// a read followed by a write.

type IdentityLinkDynamoRepository struct {
	ddb       DynamoDBAPI
	tableName string
}

var _ interfaces.IIdentityLinkRepository = (*IdentityLinkDynamoRepository)(nil)

// NewIdentityLinkDynamoRepository stores links in tableName, "identity_links"
// when empty.
func NewIdentityLinkDynamoRepository(ddb DynamoDBAPI, tableName string) *IdentityLinkDynamoRepository {
	if tableName == "" {
		tableName = defaultIdentityLinksTableName
	}
	return &IdentityLinkDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *IdentityLinkDynamoRepository) TableName() string {
	return r.tableName
}

func (r *IdentityLinkDynamoRepository) Create(ctx context.Context, link entities.IdentityLink) (entities.IdentityLink, error) {
	it := toIdentityLinkItem(link)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.IdentityLink{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#billable_key)"),
		ExpressionAttributeNames: map[string]string{
			"#billable_key": "billable_key",
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.IdentityLink{}, interfaces.ErrDuplicateLink
		}
		return entities.IdentityLink{}, err
	}
	return link, nil
}

func (r *IdentityLinkDynamoRepository) FindByBillable(ctx context.Context, ref entities.BillableRef) (entities.IdentityLink, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"billable_key": &types.AttributeValueMemberS{Value: ref.Key()},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.IdentityLink{}, err
	}
	if len(out.Item) == 0 {
		return entities.IdentityLink{}, nil
	}

	var it identityLinkItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.IdentityLink{}, err
	}
	return fromIdentityLinkItem(it), nil
}

func (r *IdentityLinkDynamoRepository) FindByRemoteID(ctx context.Context, remoteUserID string) (entities.IdentityLink, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(IdentityLinksRemoteUserIndex),
		KeyConditionExpression: aws.String("remote_user_id = :rid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":rid": &types.AttributeValueMemberS{Value: remoteUserID},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.IdentityLink{}, err
	}
	if len(out.Items) == 0 {
		return entities.IdentityLink{}, nil
	}

	var it identityLinkItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.IdentityLink{}, err
	}
	return fromIdentityLinkItem(it), nil
}

func (r *IdentityLinkDynamoRepository) UpdateStatus(ctx context.Context, link entities.IdentityLink, status entities.RemoteStatus, touchedAt time.Time) (entities.IdentityLink, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"billable_key": &types.AttributeValueMemberS{Value: link.Ref().Key()},
		},
		ConditionExpression: aws.String("attribute_exists(#billable_key) AND #remote_user_id = :rid"),
		UpdateExpression:    aws.String("SET #kyc_level = :kyc_level, #user_category = :user_category, #terms_accepted = :terms_accepted, #updated_at = :updated_at"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":rid":            &types.AttributeValueMemberS{Value: link.RemoteUserID},
			":kyc_level":      &types.AttributeValueMemberS{Value: status.KYCLevel},
			":user_category":  &types.AttributeValueMemberS{Value: status.UserCategory},
			":terms_accepted": &types.AttributeValueMemberBOOL{Value: status.TermsAccepted},
			":updated_at":     &types.AttributeValueMemberS{Value: formatTime(touchedAt)},
		},
		ExpressionAttributeNames: map[string]string{
			"#billable_key":   "billable_key",
			"#remote_user_id": "remote_user_id",
			"#kyc_level":      "kyc_level",
			"#user_category":  "user_category",
			"#terms_accepted": "terms_accepted",
			"#updated_at":     "updated_at",
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.IdentityLink{}, nil
		}
		return entities.IdentityLink{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.IdentityLink{}, nil
	}
	var it identityLinkItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.IdentityLink{}, err
	}
	return fromIdentityLinkItem(it), nil
}

func toIdentityLinkItem(l entities.IdentityLink) identityLinkItem {
	return identityLinkItem{
		BillableKey:   l.Ref().Key(),
		ID:            l.ID,
		BillableType:  l.BillableType,
		BillableID:    l.BillableID,
		RemoteUserID:  l.RemoteUserID,
		PersonType:    string(l.PersonType),
		KYCLevel:      l.Status.KYCLevel,
		UserCategory:  l.Status.UserCategory,
		TermsAccepted: l.Status.TermsAccepted,
		CreatedAt:     formatTime(l.CreatedAt),
		UpdatedAt:     formatTime(l.UpdatedAt),
	}
}

func fromIdentityLinkItem(it identityLinkItem) entities.IdentityLink {
	return entities.IdentityLink{
		ID:           it.ID,
		BillableType: it.BillableType,
		BillableID:   it.BillableID,
		RemoteUserID: it.RemoteUserID,
		PersonType:   entities.PersonType(it.PersonType),
		Status: entities.RemoteStatus{
			KYCLevel:      it.KYCLevel,
			UserCategory:  it.UserCategory,
			TermsAccepted: it.TermsAccepted,
		},
		CreatedAt: parseTime(it.CreatedAt),
		UpdatedAt: parseTime(it.UpdatedAt),
	}
}

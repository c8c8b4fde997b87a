package repository

import (
	"context"
	"encoding/json"
	"time"

	"propdraft/internal/domain/entities"
	"propdraft/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultProposalsTableName = "proposals"

// proposalItem is the DynamoDB row. The deep aggregates (content, pricing,
// files) are stored as JSON documents inside the item so that one PutItem
// replaces the whole proposal atomically.
type proposalItem struct {
	ID               string `dynamodbav:"id"`
	UserID           string `dynamodbav:"user_id"`
	Title            string `dynamodbav:"title"`
	Description      string `dynamodbav:"description,omitempty"`
	Status           string `dynamodbav:"status"`
	Files            string `dynamodbav:"files,omitempty"`
	UserRequirements string `dynamodbav:"user_requirements,omitempty"`
	UserFeedback     string `dynamodbav:"user_feedback,omitempty"`
	Content          string `dynamodbav:"content"`
	Pricing          string `dynamodbav:"pricing"`
	CreatedAt        string `dynamodbav:"created_at"`
	UpdatedAt        string `dynamodbav:"updated_at"`
}

// ProposalDynamoRepository persists Proposal aggregates in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI1 (user_id-index): user_id
//
// Save is an unconditional whole-document replace: concurrent edits to the
// same proposal are last-write-wins.

type ProposalDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IProposalRepository = (*ProposalDynamoRepository)(nil)

func NewProposalDynamoRepository(ddb *dynamodb.Client) *ProposalDynamoRepository {
	return &ProposalDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PROPOSALS_TABLE", defaultProposalsTableName),
	}
}

func (r *ProposalDynamoRepository) Create(ctx context.Context, p entities.Proposal) (entities.Proposal, error) {
	it, err := toProposalItem(p)
	if err != nil {
		return entities.Proposal{}, err
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Proposal{}, err
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
		return entities.Proposal{}, err
	}
	return p, nil
}

func (r *ProposalDynamoRepository) GetByID(ctx context.Context, id string) (entities.Proposal, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Proposal{}, err
	}
	if len(out.Item) == 0 {
		return entities.Proposal{}, nil
	}

	var it proposalItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Proposal{}, err
	}
	return fromProposalItem(it)
}

func (r *ProposalDynamoRepository) ListByUserID(ctx context.Context, userID string) ([]entities.Proposal, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String("user_id-index"),
		KeyConditionExpression: aws.String("#user_id = :user_id"),
		ExpressionAttributeNames: map[string]string{
			"#user_id": "user_id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":user_id": &types.AttributeValueMemberS{Value: userID},
		},
	})
	if err != nil {
		return nil, err
	}

	proposals := make([]entities.Proposal, 0, len(out.Items))
	for _, item := range out.Items {
		var it proposalItem
		if err := attributevalue.UnmarshalMap(item, &it); err != nil {
			return nil, err
		}
		p, err := fromProposalItem(it)
		if err != nil {
			return nil, err
		}
		proposals = append(proposals, p)
	}
	return proposals, nil
}

// Save replaces the stored document. UpdatedAt is bumped here so every
// persisted mutation carries a fresh timestamp.
func (r *ProposalDynamoRepository) Save(ctx context.Context, p entities.Proposal) (entities.Proposal, error) {
	p.UpdatedAt = time.Now().UTC()

	it, err := toProposalItem(p)
	if err != nil {
		return entities.Proposal{}, err
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Proposal{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return entities.Proposal{}, err
	}
	return p, nil
}

func (r *ProposalDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func toProposalItem(p entities.Proposal) (proposalItem, error) {
	files, err := json.Marshal(p.Files)
	if err != nil {
		return proposalItem{}, err
	}
	content, err := json.Marshal(p.Content)
	if err != nil {
		return proposalItem{}, err
	}
	pricing, err := json.Marshal(p.Pricing)
	if err != nil {
		return proposalItem{}, err
	}

	return proposalItem{
		ID:               p.ID,
		UserID:           p.UserID,
		Title:            p.Title,
		Description:      p.Description,
		Status:           string(p.Status),
		Files:            string(files),
		UserRequirements: p.UserRequirements,
		UserFeedback:     p.UserFeedback,
		Content:          string(content),
		Pricing:          string(pricing),
		CreatedAt:        p.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:        p.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}, nil
}

func fromProposalItem(it proposalItem) (entities.Proposal, error) {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)

	p := entities.Proposal{
		ID:               it.ID,
		UserID:           it.UserID,
		Title:            it.Title,
		Description:      it.Description,
		Status:           entities.ProposalStatus(it.Status),
		UserRequirements: it.UserRequirements,
		UserFeedback:     it.UserFeedback,
		CreatedAt:        createdAt,
		UpdatedAt:        updatedAt,
	}
	if it.Files != "" {
		if err := json.Unmarshal([]byte(it.Files), &p.Files); err != nil {
			return entities.Proposal{}, err
		}
	}
	if it.Content != "" {
		if err := json.Unmarshal([]byte(it.Content), &p.Content); err != nil {
			return entities.Proposal{}, err
		}
	}
	if it.Pricing != "" {
		if err := json.Unmarshal([]byte(it.Pricing), &p.Pricing); err != nil {
			return entities.Proposal{}, err
		}
	}
	return p, nil
}

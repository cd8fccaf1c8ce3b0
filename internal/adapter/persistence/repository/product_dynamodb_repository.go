package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"alu_portal/internal/domain/entities"
	"alu_portal/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
)

const defaultProductsTableName = "products"

type productItem struct {
	ID             string `dynamodbav:"id"`
	SKU            string `dynamodbav:"sku"`
	Name           string `dynamodbav:"name"`
	Category       string `dynamodbav:"category"`
	Grade          string `dynamodbav:"grade"`
	Dimensions     string `dynamodbav:"dimensions"`
	StockQuantity  int    `dynamodbav:"stock_quantity"`
	StockLocation  string `dynamodbav:"stock_location"`
	UnitPrice      string `dynamodbav:"unit_price"`
	WeightPerMeter string `dynamodbav:"weight_per_meter,omitempty"`
	UpdatedAt      string `dynamodbav:"updated_at,omitempty"`
}

// ProductDynamoRepository reads the catalog from DynamoDB.
//
// Table requirements:
//   - PK: id (string)
type ProductDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IProductRepository = (*ProductDynamoRepository)(nil)

func NewProductDynamoRepository(ddb *dynamodb.Client, tableName string) *ProductDynamoRepository {
	if tableName == "" {
		tableName = defaultProductsTableName
	}
	return &ProductDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *ProductDynamoRepository) GetByID(ctx context.Context, id string) (entities.Product, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Product{}, err
	}
	if len(out.Item) == 0 {
		return entities.Product{}, nil
	}

	var it productItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Product{}, err
	}
	return fromProductItem(it), nil
}

func (r *ProductDynamoRepository) List(ctx context.Context) ([]entities.Product, error) {
	p := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{TableName: aws.String(r.tableName)})

	var out []entities.Product
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		var items []productItem
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			out = append(out, fromProductItem(it))
		}
	}
	return out, nil
}

func (r *ProductDynamoRepository) UpdateInventory(ctx context.Context, id string, stockQuantity *int, unitPrice *decimal.Decimal) (entities.Product, error) {
	return r.update(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		sets := []string{"#updated_at = :updated_at"}
		vals := map[string]types.AttributeValue{
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{"#updated_at": "updated_at"}

		if stockQuantity != nil {
			sets = append(sets, "#stock_quantity = :stock_quantity")
			vals[":stock_quantity"], _ = attributevalue.Marshal(*stockQuantity)
			names["#stock_quantity"] = "stock_quantity"
		}
		if unitPrice != nil {
			sets = append(sets, "#unit_price = :unit_price")
			vals[":unit_price"] = &types.AttributeValueMemberS{Value: decimalToString(*unitPrice)}
			names["#unit_price"] = "unit_price"
		}
		return "SET " + strings.Join(sets, ", "), vals, names
	})
}

func (r *ProductDynamoRepository) update(
	ctx context.Context,
	id string,
	build func(now string) (updateExpr string, values map[string]types.AttributeValue, names map[string]string),
) (entities.Product, error) {
	now := formatTime(time.Now())
	updateExpr, values, names := build(now)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Product{}, nil
		}
		return entities.Product{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Product{}, nil
	}
	var it productItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Product{}, err
	}
	return fromProductItem(it), nil
}

func fromProductItem(it productItem) entities.Product {
	return entities.Product{
		ID:             it.ID,
		SKU:            it.SKU,
		Name:           it.Name,
		Category:       it.Category,
		Grade:          it.Grade,
		Dimensions:     it.Dimensions,
		StockQuantity:  it.StockQuantity,
		StockLocation:  it.StockLocation,
		UnitPrice:      parseDecimal(it.UnitPrice),
		WeightPerMeter: parseDecimal(it.WeightPerMeter),
	}
}

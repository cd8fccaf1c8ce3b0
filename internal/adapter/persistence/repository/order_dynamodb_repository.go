package repository

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"alu_portal/internal/domain/entities"
	"alu_portal/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
)

const (
	defaultOrdersTableName     = "orders"
	defaultOrderRefsTableName  = "order_refs"
	defaultOrderItemsTableName = "order_items"

	maxUnprocessedRetries = 3
)

type orderHeaderItem struct {
	ID           string `dynamodbav:"id"`
	RefNumber    string `dynamodbav:"ref_number"`
	CustomerName string `dynamodbav:"customer_name"`
	TotalPrice   string `dynamodbav:"total_price"`
	Status       string `dynamodbav:"status"`
	Version      int64  `dynamodbav:"version"`
	CreatedAt    string `dynamodbav:"created_at"`
	UpdatedAt    string `dynamodbav:"updated_at"`
}

type orderRefItem struct {
	RefNumber string `dynamodbav:"ref_number"`
	OrderID   string `dynamodbav:"order_id"`
	CreatedAt string `dynamodbav:"created_at"`
}

type orderLineItem struct {
	OrderID      string `dynamodbav:"order_id"`
	LineNo       int    `dynamodbav:"line_no"`
	ProductID    string `dynamodbav:"product_id"`
	ProductName  string `dynamodbav:"product_name"`
	SKU          string `dynamodbav:"sku"`
	Quantity     int    `dynamodbav:"quantity"`
	CustomLength int    `dynamodbav:"custom_length"`
	Price        string `dynamodbav:"price"`
}

// OrderTables names the three tables backing the order store.
type OrderTables struct {
	Orders     string
	OrderRefs  string
	OrderItems string
}

// OrderDynamoRepository persists orders across three tables.
//
// Table requirements:
//   - orders PK: id (string)
//   - order_refs PK: ref_number (string)
//   - order_items PK: order_id (string), SK: line_no (number)
type OrderDynamoRepository struct {
	ddb    *dynamodb.Client
	tables OrderTables
}

var _ interfaces.IOrderRepository = (*OrderDynamoRepository)(nil)

func NewOrderDynamoRepository(ddb *dynamodb.Client, tables OrderTables) *OrderDynamoRepository {
	if tables.Orders == "" {
		tables.Orders = defaultOrdersTableName
	}
	if tables.OrderRefs == "" {
		tables.OrderRefs = defaultOrderRefsTableName
	}
	if tables.OrderItems == "" {
		tables.OrderItems = defaultOrderItemsTableName
	}
	return &OrderDynamoRepository{ddb: ddb, tables: tables}
}

// CreateHeader writes the header and its ref reservation in one transaction.
func (r *OrderDynamoRepository) CreateHeader(ctx context.Context, o entities.Order) (entities.Order, error) {
	now := time.Now().UTC()
	o.ID = uuid.NewString()
	o.Version = 1
	o.CreatedAt = now
	o.UpdatedAt = now
	o.Items = nil

	header, err := attributevalue.MarshalMap(toOrderHeaderItem(o))
	if err != nil {
		return entities.Order{}, err
	}
	ref, err := attributevalue.MarshalMap(orderRefItem{
		RefNumber: o.RefNumber,
		OrderID:   o.ID,
		CreatedAt: formatTime(now),
	})
	if err != nil {
		return entities.Order{}, err
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{Put: &types.Put{
				TableName:                aws.String(r.tables.Orders),
				Item:                     header,
				ConditionExpression:      aws.String("attribute_not_exists(#id)"),
				ExpressionAttributeNames: map[string]string{"#id": "id"},
			}},
			{Put: &types.Put{
				TableName:                aws.String(r.tables.OrderRefs),
				Item:                     ref,
				ConditionExpression:      aws.String("attribute_not_exists(#ref)"),
				ExpressionAttributeNames: map[string]string{"#ref": "ref_number"},
			}},
		},
	})
	if err != nil {
		if refGuardFailed(err) {
			return entities.Order{}, interfaces.ErrRefNumberTaken
		}
		return entities.Order{}, err
	}
	return o, nil
}

// refGuardFailed reports whether a cancelled transaction failed on the
// order_refs condition (the second write).
func refGuardFailed(err error) bool {
	var tce *types.TransactionCanceledException
	if !errors.As(err, &tce) {
		return false
	}
	if len(tce.CancellationReasons) < 2 {
		return false
	}
	return aws.ToString(tce.CancellationReasons[1].Code) == "ConditionalCheckFailed"
}

func (r *OrderDynamoRepository) CreateItems(ctx context.Context, orderID string, items []entities.OrderItem) error {
	reqs := make([]types.WriteRequest, 0, len(items))
	for _, it := range items {
		it.OrderID = orderID
		av, err := attributevalue.MarshalMap(toOrderLineItem(it))
		if err != nil {
			return err
		}
		reqs = append(reqs, types.WriteRequest{PutRequest: &types.PutRequest{Item: av}})
	}
	return r.batchWrite(ctx, r.tables.OrderItems, reqs)
}

// Delete removes the items, then the header and its ref reservation. The
// reservation is only removed while it still points at this order.
func (r *OrderDynamoRepository) Delete(ctx context.Context, o entities.Order) error {
	lines, err := r.queryItems(ctx, o.ID)
	if err != nil {
		return err
	}
	reqs := make([]types.WriteRequest, 0, len(lines))
	for _, l := range lines {
		reqs = append(reqs, types.WriteRequest{DeleteRequest: &types.DeleteRequest{Key: orderItemKey(o.ID, l.LineNo)}})
	}
	if err := r.batchWrite(ctx, r.tables.OrderItems, reqs); err != nil {
		return err
	}

	if _, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tables.Orders),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: o.ID},
		},
	}); err != nil {
		return err
	}

	if o.RefNumber == "" {
		return nil
	}
	_, err = r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tables.OrderRefs),
		Key: map[string]types.AttributeValue{
			"ref_number": &types.AttributeValueMemberS{Value: o.RefNumber},
		},
		ConditionExpression:       aws.String("#order_id = :order_id"),
		ExpressionAttributeNames:  map[string]string{"#order_id": "order_id"},
		ExpressionAttributeValues: map[string]types.AttributeValue{":order_id": &types.AttributeValueMemberS{Value: o.ID}},
	})
	var cfe *types.ConditionalCheckFailedException
	if errors.As(err, &cfe) {
		return nil
	}
	return err
}

func (r *OrderDynamoRepository) GetByID(ctx context.Context, id string) (entities.Order, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tables.Orders),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Order{}, err
	}
	if len(out.Item) == 0 {
		return entities.Order{}, nil
	}

	var h orderHeaderItem
	if err := attributevalue.UnmarshalMap(out.Item, &h); err != nil {
		return entities.Order{}, err
	}
	lines, err := r.queryItems(ctx, id)
	if err != nil {
		return entities.Order{}, err
	}
	return fromOrderItems(h, lines), nil
}

// List joins every header with its items, newest first.
func (r *OrderDynamoRepository) List(ctx context.Context) ([]entities.Order, error) {
	var headers []orderHeaderItem
	if err := r.scan(ctx, r.tables.Orders, &headers); err != nil {
		return nil, err
	}
	var lines []orderLineItem
	if err := r.scan(ctx, r.tables.OrderItems, &lines); err != nil {
		return nil, err
	}
	return joinOrders(headers, lines), nil
}

// UpdateStatus writes the new status only when the stored version matches
// expectedVersion, bumping the version on success.
func (r *OrderDynamoRepository) UpdateStatus(ctx context.Context, id string, status entities.OrderStatus, expectedVersion int64) (entities.Order, error) {
	now := formatTime(time.Now())

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tables.Orders),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id) AND #version = :expected"),
		UpdateExpression:    aws.String("SET #status = :status, #updated_at = :updated_at, #version = #version + :one"),
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#status":     "status",
			"#updated_at": "updated_at",
			"#version":    "version",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status":     &types.AttributeValueMemberS{Value: string(status)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
			":expected":   &types.AttributeValueMemberN{Value: fmt.Sprint(expectedVersion)},
			":one":        &types.AttributeValueMemberN{Value: "1"},
		},
		ReturnValues:                        types.ReturnValueAllNew,
		ReturnValuesOnConditionCheckFailure: types.ReturnValuesOnConditionCheckFailureAllOld,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			if len(cfe.Item) == 0 {
				return entities.Order{}, nil
			}
			return entities.Order{}, interfaces.ErrVersionConflict
		}
		return entities.Order{}, err
	}

	var h orderHeaderItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &h); err != nil {
		return entities.Order{}, err
	}
	lines, err := r.queryItems(ctx, id)
	if err != nil {
		return entities.Order{}, err
	}
	return fromOrderItems(h, lines), nil
}

func (r *OrderDynamoRepository) queryItems(ctx context.Context, orderID string) ([]orderLineItem, error) {
	p := dynamodb.NewQueryPaginator(r.ddb, &dynamodb.QueryInput{
		TableName:                aws.String(r.tables.OrderItems),
		KeyConditionExpression:   aws.String("#order_id = :order_id"),
		ExpressionAttributeNames: map[string]string{"#order_id": "order_id"},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":order_id": &types.AttributeValueMemberS{Value: orderID},
		},
		ScanIndexForward: aws.Bool(true),
		ConsistentRead:   aws.Bool(true),
	})

	var out []orderLineItem
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		var lines []orderLineItem
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &lines); err != nil {
			return nil, err
		}
		out = append(out, lines...)
	}
	return out, nil
}

func (r *OrderDynamoRepository) scan(ctx context.Context, table string, into any) error {
	p := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{TableName: aws.String(table)})

	var all []map[string]types.AttributeValue
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return err
		}
		all = append(all, page.Items...)
	}
	return attributevalue.UnmarshalListOfMaps(all, into)
}

func (r *OrderDynamoRepository) batchWrite(ctx context.Context, table string, reqs []types.WriteRequest) error {
	for _, batch := range chunk(reqs, batchWriteLimit) {
		pending := map[string][]types.WriteRequest{table: batch}
		for attempt := 0; len(pending[table]) > 0; attempt++ {
			if attempt > maxUnprocessedRetries {
				return fmt.Errorf("batch write %s: %d requests left unprocessed", table, len(pending[table]))
			}
			out, err := r.ddb.BatchWriteItem(ctx, &dynamodb.BatchWriteItemInput{RequestItems: pending})
			if err != nil {
				return err
			}
			pending = out.UnprocessedItems
		}
	}
	return nil
}

func orderItemKey(orderID string, lineNo int) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"order_id": &types.AttributeValueMemberS{Value: orderID},
		"line_no":  &types.AttributeValueMemberN{Value: fmt.Sprint(lineNo)},
	}
}

func toOrderHeaderItem(o entities.Order) orderHeaderItem {
	return orderHeaderItem{
		ID:           o.ID,
		RefNumber:    o.RefNumber,
		CustomerName: o.CustomerName,
		TotalPrice:   decimalToString(o.TotalPrice),
		Status:       string(o.Status),
		Version:      o.Version,
		CreatedAt:    formatTime(o.CreatedAt),
		UpdatedAt:    formatTime(o.UpdatedAt),
	}
}

func toOrderLineItem(it entities.OrderItem) orderLineItem {
	return orderLineItem{
		OrderID:      it.OrderID,
		LineNo:       it.LineNo,
		ProductID:    it.ProductID,
		ProductName:  it.ProductName,
		SKU:          it.SKU,
		Quantity:     it.Quantity,
		CustomLength: it.CustomLengthMM,
		Price:        decimalToString(it.Price),
	}
}

func fromOrderItems(h orderHeaderItem, lines []orderLineItem) entities.Order {
	o := entities.Order{
		ID:           h.ID,
		RefNumber:    h.RefNumber,
		CustomerName: h.CustomerName,
		TotalPrice:   parseDecimal(h.TotalPrice),
		Status:       entities.OrderStatus(h.Status),
		Version:      h.Version,
		CreatedAt:    parseTime(h.CreatedAt),
		UpdatedAt:    parseTime(h.UpdatedAt),
	}
	sort.Slice(lines, func(i, j int) bool { return lines[i].LineNo < lines[j].LineNo })
	for _, l := range lines {
		o.Items = append(o.Items, entities.OrderItem{
			OrderID:        l.OrderID,
			LineNo:         l.LineNo,
			ProductID:      l.ProductID,
			ProductName:    l.ProductName,
			SKU:            l.SKU,
			Quantity:       l.Quantity,
			CustomLengthMM: l.CustomLength,
			Price:          parseDecimal(l.Price),
		})
	}
	return o
}

func joinOrders(headers []orderHeaderItem, lines []orderLineItem) []entities.Order {
	byOrder := make(map[string][]orderLineItem, len(headers))
	for _, l := range lines {
		byOrder[l.OrderID] = append(byOrder[l.OrderID], l)
	}
	out := make([]entities.Order, 0, len(headers))
	for _, h := range headers {
		out = append(out, fromOrderItems(h, byOrder[h.ID]))
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out
}

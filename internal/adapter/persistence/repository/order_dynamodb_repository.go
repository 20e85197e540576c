package repository

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"fulfillment_service/internal/domain/entities"
	"fulfillment_service/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// OrderDynamoRepository persists orders as single DynamoDB documents.
//
// Table requirements:
//   - PK: id (string)
//
// Stages, items and the payment ledger are embedded lists so every mutation of an
// order is a single-item write. Payment appends use list_append together with an
// ADD on total_settled, which keeps the ledger and the running total in step
// without a read-modify-write.
type OrderDynamoRepository struct {
	ddb       dynamoAPI
	tableName string
	now       func() time.Time
}

var _ interfaces.IOrderRepository = (*OrderDynamoRepository)(nil)

func NewOrderDynamoRepository(ddb dynamoAPI, tableName string) *OrderDynamoRepository {
	return &OrderDynamoRepository{
		ddb:       ddb,
		tableName: tableName,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

func (r *OrderDynamoRepository) Create(ctx context.Context, o entities.Order) (entities.Order, error) {
	av, err := attributevalue.MarshalMap(toOrderItem(o))
	if err != nil {
		return entities.Order{}, err
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
		if _, ok := isConditionalCheckFailed(err); ok {
			return entities.Order{}, fmt.Errorf("%w: order %s already exists", entities.ErrConflict, o.ID)
		}
		return entities.Order{}, err
	}
	return o, nil
}

func (r *OrderDynamoRepository) GetByID(ctx context.Context, id string) (entities.Order, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            stringKey(id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Order{}, err
	}
	if len(out.Item) == 0 {
		return entities.Order{}, nil
	}
	return decodeOrder(out.Item)
}

func (r *OrderDynamoRepository) UpdateFields(ctx context.Context, id string, upd interfaces.OrderUpdate) (int64, error) {
	sets := []string{"#updated_at = :updated_at"}
	names := map[string]string{"#updated_at": "updated_at"}
	values := map[string]types.AttributeValue{
		":updated_at": &types.AttributeValueMemberS{Value: r.now().Format(time.RFC3339Nano)},
	}

	if upd.Stages != nil {
		av, err := attributevalue.Marshal(toStageItems(upd.Stages))
		if err != nil {
			return 0, err
		}
		sets = append(sets, "#stages = :stages")
		names["#stages"] = "stages"
		values[":stages"] = av
	}
	if upd.OverallStatus != nil {
		sets = append(sets, "#overall_status = :overall_status")
		names["#overall_status"] = "overall_status"
		values[":overall_status"] = &types.AttributeValueMemberS{Value: *upd.OverallStatus}
	}
	if upd.PaymentStatus != nil {
		sets = append(sets, "#payment_status = :payment_status")
		names["#payment_status"] = "payment_status"
		values[":payment_status"] = &types.AttributeValueMemberS{Value: string(*upd.PaymentStatus)}
	}
	if upd.TotalizedAt != nil {
		sets = append(sets, "#totalized_at = :totalized_at")
		names["#totalized_at"] = "totalized_at"
		values[":totalized_at"] = &types.AttributeValueMemberS{Value: upd.TotalizedAt.UTC().Format(time.RFC3339Nano)}
	}

	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(r.tableName),
		Key:                       stringKey(id),
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		UpdateExpression:          aws.String("SET " + strings.Join(sets, ", ")),
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
		ExpressionAttributeValues: values,
	})
	if err != nil {
		if _, ok := isConditionalCheckFailed(err); ok {
			return 0, nil
		}
		return 0, err
	}
	return 1, nil
}

func (r *OrderDynamoRepository) AppendPayment(ctx context.Context, id string, status entities.PaymentStatus, event *entities.PaymentEvent) (entities.Order, error) {
	expr, names, values, err := buildAppendPayment(status, event, r.now())
	if err != nil {
		return entities.Order{}, err
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(r.tableName),
		Key:                       stringKey(id),
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		UpdateExpression:          aws.String(expr),
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
		ExpressionAttributeValues: values,
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		if _, ok := isConditionalCheckFailed(err); ok {
			return entities.Order{}, nil
		}
		return entities.Order{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Order{}, nil
	}
	return decodeOrder(out.Attributes)
}

func buildAppendPayment(status entities.PaymentStatus, event *entities.PaymentEvent, now time.Time) (string, map[string]string, map[string]types.AttributeValue, error) {
	names := map[string]string{
		"#payment_status": "payment_status",
		"#updated_at":     "updated_at",
	}
	values := map[string]types.AttributeValue{
		":payment_status": &types.AttributeValueMemberS{Value: string(status)},
		":updated_at":     &types.AttributeValueMemberS{Value: now.UTC().Format(time.RFC3339Nano)},
	}
	expr := "SET #payment_status = :payment_status, #updated_at = :updated_at"
	if event == nil {
		return expr, names, values, nil
	}

	ev, err := attributevalue.Marshal(toPaymentEventItem(*event))
	if err != nil {
		return "", nil, nil, err
	}
	names["#payment_history"] = "payment_history"
	names["#total_settled"] = "total_settled"
	values[":event"] = &types.AttributeValueMemberL{Value: []types.AttributeValue{ev}}
	values[":empty"] = &types.AttributeValueMemberL{Value: []types.AttributeValue{}}
	values[":amount"] = &types.AttributeValueMemberN{Value: event.Amount.String()}
	expr += ", #payment_history = list_append(if_not_exists(#payment_history, :empty), :event)" +
		" ADD #total_settled :amount"
	return expr, names, values, nil
}

func (r *OrderDynamoRepository) List(ctx context.Context, filter interfaces.OrderFilter) ([]entities.Order, error) {
	input := &dynamodb.ScanInput{
		TableName:      aws.String(r.tableName),
		ConsistentRead: aws.Bool(true),
	}
	if expr, names, values := buildOrderListFilter(filter); expr != "" {
		input.FilterExpression = aws.String(expr)
		input.ExpressionAttributeNames = names
		input.ExpressionAttributeValues = values
	}

	orders := make([]entities.Order, 0)
	p := dynamodb.NewScanPaginator(r.ddb, input)
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, item := range page.Items {
			o, err := decodeOrder(item)
			if err != nil {
				return nil, err
			}
			// The text bounds are a day wider than the range; trim here.
			if !filter.Range.Contains(o.CreatedAt) {
				continue
			}
			orders = append(orders, o)
		}
	}
	return orders, nil
}

// buildOrderListFilter translates the filter into a scan FilterExpression.
// created_at may be stored as ISO text or as epoch milliseconds, so the date window
// is expressed once per representation. Text carrying a zone offset can sit on a
// different calendar day than its UTC instant, so the text bounds are widened by a
// day on each side and List trims the surplus with Range.Contains.
func buildOrderListFilter(filter interfaces.OrderFilter) (string, map[string]string, map[string]types.AttributeValue) {
	var clauses []string
	names := map[string]string{}
	values := map[string]types.AttributeValue{}

	if len(filter.Statuses) > 0 {
		placeholders := make([]string, 0, len(filter.Statuses))
		for i, s := range filter.Statuses {
			key := ":st" + strconv.Itoa(i)
			placeholders = append(placeholders, key)
			values[key] = &types.AttributeValueMemberS{Value: s}
		}
		names["#overall_status"] = "overall_status"
		clauses = append(clauses, "#overall_status IN ("+strings.Join(placeholders, ", ")+")")
	}

	if rng := filter.Range; rng != nil && (!rng.From.IsZero() || !rng.To.IsZero()) {
		names["#created_at"] = "created_at"
		var textBounds, numBounds []string
		if !rng.From.IsZero() {
			values[":from_s"] = &types.AttributeValueMemberS{Value: rng.From.UTC().AddDate(0, 0, -1).Format(entities.DateLayout)}
			values[":from_n"] = &types.AttributeValueMemberN{Value: strconv.FormatInt(rng.From.UnixMilli(), 10)}
			textBounds = append(textBounds, "#created_at >= :from_s")
			numBounds = append(numBounds, "#created_at >= :from_n")
		}
		if !rng.To.IsZero() {
			values[":to_s"] = &types.AttributeValueMemberS{Value: rng.To.UTC().AddDate(0, 0, 1).Format(entities.DateLayout)}
			values[":to_n"] = &types.AttributeValueMemberN{Value: strconv.FormatInt(rng.To.UnixMilli(), 10)}
			textBounds = append(textBounds, "#created_at < :to_s")
			numBounds = append(numBounds, "#created_at < :to_n")
		}
		clauses = append(clauses, fmt.Sprintf("((%s) OR (%s))",
			strings.Join(textBounds, " AND "), strings.Join(numBounds, " AND ")))
	}

	if len(clauses) == 0 {
		return "", nil, nil
	}
	return strings.Join(clauses, " AND "), names, values
}

func decodeOrder(av map[string]types.AttributeValue) (entities.Order, error) {
	var it orderItem
	if err := attributevalue.UnmarshalMap(av, &it); err != nil {
		return entities.Order{}, err
	}
	return fromOrderItem(it), nil
}

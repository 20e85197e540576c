package repository

import (
	"context"
	"fmt"
	"time"

	"fulfillment_service/internal/domain/entities"
	"fulfillment_service/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	entityMethod     = "payment_method"
	entityMethodName = "payment_method_name"
	nameGuardPrefix  = "name#"
)

type paymentMethodItem struct {
	ID            string                  `dynamodbav:"id"`
	Entity        string                  `dynamodbav:"entity"`
	Name          string                  `dynamodbav:"name"`
	Bank          string                  `dynamodbav:"bank"`
	AccountNumber string                  `dynamodbav:"account_number"`
	Holder        string                  `dynamodbav:"holder"`
	NationalID    string                  `dynamodbav:"national_id,omitempty"`
	Currency      string                  `dynamodbav:"currency"`
	Kind          string                  `dynamodbav:"kind"`
	Balance       money                   `dynamodbav:"balance"`
	Transactions  []methodTransactionItem `dynamodbav:"transactions"`
	CreatedAt     flexTime                `dynamodbav:"created_at"`
	UpdatedAt     flexTime                `dynamodbav:"updated_at"`
}

type methodTransactionItem struct {
	ID      string   `dynamodbav:"id"`
	Type    string   `dynamodbav:"type"`
	Amount  money    `dynamodbav:"amount"`
	Concept string   `dynamodbav:"concept"`
	At      flexTime `dynamodbav:"at"`
}

// nameGuardItem reserves a normalized method name. It lives in the same table
// under the key "name#<normalized name>".
type nameGuardItem struct {
	ID       string `dynamodbav:"id"`
	Entity   string `dynamodbav:"entity"`
	MethodID string `dynamodbav:"method_id"`
}

// PaymentMethodDynamoRepository persists the payment method catalog.
//
// Table requirements:
//   - PK: id (string)
//
// Name uniqueness is enforced with a guard item written in the same transaction as
// the method, so two concurrent creates with the same name cannot both succeed.
// Balance changes are a conditional ADD; transfers carry "balance >= amount" in the
// condition so the balance never goes negative.
type PaymentMethodDynamoRepository struct {
	ddb       dynamoAPI
	tableName string
}

var _ interfaces.IPaymentMethodRepository = (*PaymentMethodDynamoRepository)(nil)

func NewPaymentMethodDynamoRepository(ddb dynamoAPI, tableName string) *PaymentMethodDynamoRepository {
	return &PaymentMethodDynamoRepository{ddb: ddb, tableName: tableName}
}

func nameGuardKey(name string) string {
	return nameGuardPrefix + entities.NormalizeMethodName(name)
}

func (r *PaymentMethodDynamoRepository) Create(ctx context.Context, m entities.PaymentMethod) (entities.PaymentMethod, error) {
	methodAV, err := attributevalue.MarshalMap(toPaymentMethodItem(m))
	if err != nil {
		return entities.PaymentMethod{}, err
	}
	guardAV, err := attributevalue.MarshalMap(nameGuardItem{
		ID:       nameGuardKey(m.Name),
		Entity:   entityMethodName,
		MethodID: m.ID,
	})
	if err != nil {
		return entities.PaymentMethod{}, err
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{Put: r.putIfAbsent(methodAV)},
			{Put: r.putIfAbsent(guardAV)},
		},
	})
	if err != nil {
		switch {
		case cancelledAt(err, 1):
			return entities.PaymentMethod{}, entities.ErrDuplicateMethodName
		case cancelledAt(err, 0):
			return entities.PaymentMethod{}, fmt.Errorf("%w: payment method %s already exists", entities.ErrConflict, m.ID)
		}
		return entities.PaymentMethod{}, err
	}
	return m, nil
}

func (r *PaymentMethodDynamoRepository) putIfAbsent(item map[string]types.AttributeValue) *types.Put {
	return &types.Put{
		TableName:                aws.String(r.tableName),
		Item:                     item,
		ConditionExpression:      aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{"#id": "id"},
	}
}

func (r *PaymentMethodDynamoRepository) GetByID(ctx context.Context, id string) (entities.PaymentMethod, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            stringKey(id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.PaymentMethod{}, err
	}
	if len(out.Item) == 0 {
		return entities.PaymentMethod{}, nil
	}
	var it paymentMethodItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.PaymentMethod{}, err
	}
	if it.Entity != entityMethod {
		return entities.PaymentMethod{}, nil
	}
	return fromPaymentMethodItem(it), nil
}

func (r *PaymentMethodDynamoRepository) GetByName(ctx context.Context, name string) (entities.PaymentMethod, error) {
	if entities.NormalizeMethodName(name) == "" {
		return entities.PaymentMethod{}, nil
	}
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            stringKey(nameGuardKey(name)),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.PaymentMethod{}, err
	}
	if len(out.Item) == 0 {
		return entities.PaymentMethod{}, nil
	}
	var guard nameGuardItem
	if err := attributevalue.UnmarshalMap(out.Item, &guard); err != nil {
		return entities.PaymentMethod{}, err
	}
	return r.GetByID(ctx, guard.MethodID)
}

func (r *PaymentMethodDynamoRepository) List(ctx context.Context) ([]entities.PaymentMethod, error) {
	p := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
		TableName:                 aws.String(r.tableName),
		ConsistentRead:            aws.Bool(true),
		FilterExpression:          aws.String("#entity = :entity"),
		ExpressionAttributeNames:  map[string]string{"#entity": "entity"},
		ExpressionAttributeValues: map[string]types.AttributeValue{":entity": &types.AttributeValueMemberS{Value: entityMethod}},
	})

	methods := make([]entities.PaymentMethod, 0)
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		var items []paymentMethodItem
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			methods = append(methods, fromPaymentMethodItem(it))
		}
	}
	return methods, nil
}

// Update replaces the descriptive fields. Balance and transactions are only changed
// through ApplyTransaction. A rename moves the name guard in the same transaction.
func (r *PaymentMethodDynamoRepository) Update(ctx context.Context, m entities.PaymentMethod) (entities.PaymentMethod, error) {
	current, err := r.GetByID(ctx, m.ID)
	if err != nil {
		return entities.PaymentMethod{}, err
	}
	if current.ID == "" {
		return entities.PaymentMethod{}, nil
	}

	update := &types.Update{
		TableName:           aws.String(r.tableName),
		Key:                 stringKey(m.ID),
		ConditionExpression: aws.String("attribute_exists(#id) AND #name = :old_name"),
		UpdateExpression: aws.String("SET #name = :name, #bank = :bank, #account_number = :account_number, " +
			"#holder = :holder, #national_id = :national_id, #currency = :currency, #kind = :kind, #updated_at = :updated_at"),
		ExpressionAttributeNames: map[string]string{
			"#id":             "id",
			"#name":           "name",
			"#bank":           "bank",
			"#account_number": "account_number",
			"#holder":         "holder",
			"#national_id":    "national_id",
			"#currency":       "currency",
			"#kind":           "kind",
			"#updated_at":     "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":old_name":       &types.AttributeValueMemberS{Value: current.Name},
			":name":           &types.AttributeValueMemberS{Value: m.Name},
			":bank":           &types.AttributeValueMemberS{Value: m.Bank},
			":account_number": &types.AttributeValueMemberS{Value: m.AccountNumber},
			":holder":         &types.AttributeValueMemberS{Value: m.Holder},
			":national_id":    &types.AttributeValueMemberS{Value: m.NationalID},
			":currency":       &types.AttributeValueMemberS{Value: m.Currency},
			":kind":           &types.AttributeValueMemberS{Value: m.Kind},
			":updated_at":     &types.AttributeValueMemberS{Value: m.UpdatedAt.UTC().Format(time.RFC3339Nano)},
		},
	}
	items := []types.TransactWriteItem{{Update: update}}

	renamed := nameGuardKey(current.Name) != nameGuardKey(m.Name)
	if renamed {
		guardAV, err := attributevalue.MarshalMap(nameGuardItem{
			ID:       nameGuardKey(m.Name),
			Entity:   entityMethodName,
			MethodID: m.ID,
		})
		if err != nil {
			return entities.PaymentMethod{}, err
		}
		items = append(items,
			types.TransactWriteItem{Put: r.putIfAbsent(guardAV)},
			types.TransactWriteItem{Delete: &types.Delete{
				TableName: aws.String(r.tableName),
				Key:       stringKey(nameGuardKey(current.Name)),
			}},
		)
	}

	if _, err := r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{TransactItems: items}); err != nil {
		switch {
		case renamed && cancelledAt(err, 1):
			return entities.PaymentMethod{}, entities.ErrDuplicateMethodName
		case cancelledAt(err, 0):
			return entities.PaymentMethod{}, fmt.Errorf("%w: payment method %s changed concurrently", entities.ErrConflict, m.ID)
		}
		return entities.PaymentMethod{}, err
	}
	return r.GetByID(ctx, m.ID)
}

func (r *PaymentMethodDynamoRepository) Delete(ctx context.Context, id string) (bool, error) {
	current, err := r.GetByID(ctx, id)
	if err != nil {
		return false, err
	}
	if current.ID == "" {
		return false, nil
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{Delete: &types.Delete{
				TableName:                aws.String(r.tableName),
				Key:                      stringKey(id),
				ConditionExpression:      aws.String("attribute_exists(#id)"),
				ExpressionAttributeNames: map[string]string{"#id": "id"},
			}},
			{Delete: &types.Delete{
				TableName: aws.String(r.tableName),
				Key:       stringKey(nameGuardKey(current.Name)),
			}},
		},
	})
	if err != nil {
		if cancelledAt(err, 0) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (r *PaymentMethodDynamoRepository) ApplyTransaction(ctx context.Context, id string, tx entities.MethodTransaction) (entities.PaymentMethod, error) {
	txAV, err := attributevalue.Marshal(toMethodTransactionItem(tx))
	if err != nil {
		return entities.PaymentMethod{}, err
	}

	condition := "attribute_exists(#id) AND #entity = :entity"
	values := map[string]types.AttributeValue{
		":entity":     &types.AttributeValueMemberS{Value: entityMethod},
		":tx":         &types.AttributeValueMemberL{Value: []types.AttributeValue{txAV}},
		":empty":      &types.AttributeValueMemberL{Value: []types.AttributeValue{}},
		":delta":      &types.AttributeValueMemberN{Value: tx.Signed().String()},
		":updated_at": &types.AttributeValueMemberS{Value: tx.At.UTC().Format(time.RFC3339Nano)},
	}
	if tx.Type == entities.TransactionTypeTransfer {
		condition += " AND #balance >= :amount"
		values[":amount"] = &types.AttributeValueMemberN{Value: tx.Amount.String()}
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:           aws.String(r.tableName),
		Key:                 stringKey(id),
		ConditionExpression: aws.String(condition),
		UpdateExpression: aws.String("SET #transactions = list_append(if_not_exists(#transactions, :empty), :tx), " +
			"#updated_at = :updated_at ADD #balance :delta"),
		ExpressionAttributeNames: map[string]string{
			"#id":           "id",
			"#entity":       "entity",
			"#transactions": "transactions",
			"#updated_at":   "updated_at",
			"#balance":      "balance",
		},
		ExpressionAttributeValues:           values,
		ReturnValues:                        types.ReturnValueAllNew,
		ReturnValuesOnConditionCheckFailure: types.ReturnValuesOnConditionCheckFailureAllOld,
	})
	if err != nil {
		if ccf, ok := isConditionalCheckFailed(err); ok {
			return entities.PaymentMethod{}, classifyTransactionFailure(ccf)
		}
		return entities.PaymentMethod{}, err
	}
	var it paymentMethodItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.PaymentMethod{}, err
	}
	return fromPaymentMethodItem(it), nil
}

// classifyTransactionFailure tells a missing method (nil error, zero result) apart
// from a transfer that would overdraw it, using the item returned on failure.
func classifyTransactionFailure(ccf *types.ConditionalCheckFailedException) error {
	if len(ccf.Item) == 0 {
		return nil
	}
	var it paymentMethodItem
	if err := attributevalue.UnmarshalMap(ccf.Item, &it); err != nil {
		return err
	}
	if it.Entity != entityMethod {
		return nil
	}
	return entities.ErrInsufficientBalance
}

func toPaymentMethodItem(m entities.PaymentMethod) paymentMethodItem {
	it := paymentMethodItem{
		ID:            m.ID,
		Entity:        entityMethod,
		Name:          m.Name,
		Bank:          m.Bank,
		AccountNumber: m.AccountNumber,
		Holder:        m.Holder,
		NationalID:    m.NationalID,
		Currency:      m.Currency,
		Kind:          m.Kind,
		Balance:       newMoney(m.Balance),
		Transactions:  make([]methodTransactionItem, 0, len(m.Transactions)),
		CreatedAt:     newFlexTime(m.CreatedAt),
		UpdatedAt:     newFlexTime(m.UpdatedAt),
	}
	for _, tx := range m.Transactions {
		it.Transactions = append(it.Transactions, toMethodTransactionItem(tx))
	}
	return it
}

func toMethodTransactionItem(tx entities.MethodTransaction) methodTransactionItem {
	return methodTransactionItem{
		ID:      tx.ID,
		Type:    string(tx.Type),
		Amount:  newMoney(tx.Amount),
		Concept: tx.Concept,
		At:      newFlexTime(tx.At),
	}
}

func fromPaymentMethodItem(it paymentMethodItem) entities.PaymentMethod {
	m := entities.PaymentMethod{
		ID:            it.ID,
		Name:          it.Name,
		Bank:          it.Bank,
		AccountNumber: it.AccountNumber,
		Holder:        it.Holder,
		NationalID:    it.NationalID,
		Currency:      it.Currency,
		Kind:          it.Kind,
		Balance:       it.Balance.Decimal,
		Transactions:  make([]entities.MethodTransaction, 0, len(it.Transactions)),
		CreatedAt:     it.CreatedAt.Time,
		UpdatedAt:     it.UpdatedAt.Time,
	}
	for _, tx := range it.Transactions {
		// Older rows carry "carga"/"transferencia"; unknown values are kept as stored.
		typ, err := entities.ParseTransactionType(tx.Type)
		if err != nil {
			typ = entities.TransactionType(tx.Type)
		}
		m.Transactions = append(m.Transactions, entities.MethodTransaction{
			ID:      tx.ID,
			Type:    typ,
			Amount:  tx.Amount.Decimal,
			Concept: tx.Concept,
			At:      tx.At.Time,
		})
	}
	return m
}

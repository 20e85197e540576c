package repository

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
)

// money stores a decimal as a DynamoDB number so ADD can increment it atomically.
// Text values written by older importers are accepted on read.
type money struct {
	decimal.Decimal
}

func newMoney(d decimal.Decimal) money {
	return money{Decimal: d}
}

func (m money) MarshalDynamoDBAttributeValue() (types.AttributeValue, error) {
	return &types.AttributeValueMemberN{Value: m.Decimal.String()}, nil
}

func (m *money) UnmarshalDynamoDBAttributeValue(av types.AttributeValue) error {
	var raw string
	switch v := av.(type) {
	case *types.AttributeValueMemberN:
		raw = v.Value
	case *types.AttributeValueMemberS:
		raw = strings.TrimSpace(v.Value)
		if raw == "" {
			m.Decimal = decimal.Zero
			return nil
		}
	case *types.AttributeValueMemberNULL:
		m.Decimal = decimal.Zero
		return nil
	default:
		return fmt.Errorf("money: unsupported attribute type %T", av)
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return fmt.Errorf("money: %w", err)
	}
	m.Decimal = d
	return nil
}

// flexTime reads timestamps stored either as ISO-8601 text (S, with or without a
// zone) or as epoch milliseconds (N). It always writes RFC3339Nano text in UTC.
type flexTime struct {
	time.Time
}

func newFlexTime(t time.Time) flexTime {
	return flexTime{Time: t}
}

func newFlexTimePtr(t *time.Time) *flexTime {
	if t == nil {
		return nil
	}
	return &flexTime{Time: *t}
}

func (f *flexTime) ptr() *time.Time {
	if f == nil || f.IsZero() {
		return nil
	}
	t := f.Time
	return &t
}

var isoLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02",
}

func parseISOTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range isoLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp %q", s)
}

func (f flexTime) MarshalDynamoDBAttributeValue() (types.AttributeValue, error) {
	if f.IsZero() {
		return &types.AttributeValueMemberNULL{Value: true}, nil
	}
	return &types.AttributeValueMemberS{Value: f.UTC().Format(time.RFC3339Nano)}, nil
}

func (f *flexTime) UnmarshalDynamoDBAttributeValue(av types.AttributeValue) error {
	switch v := av.(type) {
	case *types.AttributeValueMemberS:
		if strings.TrimSpace(v.Value) == "" {
			f.Time = time.Time{}
			return nil
		}
		t, err := parseISOTime(v.Value)
		if err != nil {
			return err
		}
		f.Time = t
	case *types.AttributeValueMemberN:
		ms, err := strconv.ParseInt(v.Value, 10, 64)
		if err != nil {
			return fmt.Errorf("flexTime: %w", err)
		}
		f.Time = time.UnixMilli(ms).UTC()
	case *types.AttributeValueMemberNULL:
		f.Time = time.Time{}
	default:
		return fmt.Errorf("flexTime: unsupported attribute type %T", av)
	}
	return nil
}

package tablestore

import (
	"strconv"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// decodeItem converts a DynamoDB item into its plain document form,
// suitable for JSON serialization.
func decodeItem(item map[string]types.AttributeValue) map[string]any {
	doc := make(map[string]any, len(item))
	for name, av := range item {
		doc[name] = decodeAttr(av)
	}
	return doc
}

// decodeAttr converts a single DynamoDB attribute value into a plain Go
// value. Numbers parse as int64 when possible, float64 otherwise.
func decodeAttr(av types.AttributeValue) any {
	switch v := av.(type) {
	case *types.AttributeValueMemberS:
		return v.Value
	case *types.AttributeValueMemberN:
		return decodeNumber(v.Value)
	case *types.AttributeValueMemberBOOL:
		return v.Value
	case *types.AttributeValueMemberNULL:
		return nil
	case *types.AttributeValueMemberB:
		return v.Value
	case *types.AttributeValueMemberL:
		list := make([]any, len(v.Value))
		for i, elem := range v.Value {
			list[i] = decodeAttr(elem)
		}
		return list
	case *types.AttributeValueMemberM:
		return decodeItem(v.Value)
	case *types.AttributeValueMemberSS:
		list := make([]any, len(v.Value))
		for i, s := range v.Value {
			list[i] = s
		}
		return list
	case *types.AttributeValueMemberNS:
		list := make([]any, len(v.Value))
		for i, n := range v.Value {
			list[i] = decodeNumber(n)
		}
		return list
	case *types.AttributeValueMemberBS:
		list := make([]any, len(v.Value))
		for i, b := range v.Value {
			list[i] = b
		}
		return list
	default:
		return nil
	}
}

func decodeNumber(s string) any {
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	return s
}

package ir

import (
	"fmt"
	"math"
)

type ignoreSentinel struct{}

// Ignore is the sentinel value accepted by FromAny: a pattern position
// holding Ignore matches any document value.
var Ignore = ignoreSentinel{}

// FromAny converts a plain Go value, as produced by generic JSON or
// YAML decoding, into a Node.
func FromAny(v any) (*Node, error) {
	switch x := v.(type) {
	case nil:
		return Null(), nil
	case ignoreSentinel:
		return Ellipsis(), nil
	case *Node:
		return x, nil
	case bool:
		return FromBool(x), nil
	case string:
		return FromString(x), nil
	case int:
		return FromInt(int64(x)), nil
	case int8:
		return FromInt(int64(x)), nil
	case int16:
		return FromInt(int64(x)), nil
	case int32:
		return FromInt(int64(x)), nil
	case int64:
		return FromInt(x), nil
	case uint:
		return fromUint(uint64(x)), nil
	case uint8:
		return FromInt(int64(x)), nil
	case uint16:
		return FromInt(int64(x)), nil
	case uint32:
		return FromInt(int64(x)), nil
	case uint64:
		return fromUint(x), nil
	case float32:
		return FromFloat(float64(x)), nil
	case float64:
		return FromFloat(x), nil
	case map[string]any:
		yMap := make(map[string]*Node, len(x))
		for k, xv := range x {
			yv, err := FromAny(xv)
			if err != nil {
				return nil, fmt.Errorf("field %q: %w", k, err)
			}
			yMap[k] = yv
		}
		return FromMap(yMap), nil
	case []any:
		ySlice := make([]*Node, len(x))
		for i, xv := range x {
			yv, err := FromAny(xv)
			if err != nil {
				return nil, fmt.Errorf("index %d: %w", i, err)
			}
			ySlice[i] = yv
		}
		return FromSlice(ySlice), nil
	default:
		return nil, fmt.Errorf("cannot represent %T", v)
	}
}

func fromUint(u uint64) *Node {
	if u <= math.MaxInt64 {
		return FromInt(int64(u))
	}
	return &Node{Type: NumberType, Number: fmt.Sprintf("%d", u)}
}

// ToAny converts a Node back into plain Go values.  Tags are dropped.
func ToAny(y *Node) any {
	switch y.Type {
	case NullType:
		return nil
	case BoolType:
		return y.Bool
	case StringType:
		return y.String
	case NumberType:
		switch {
		case y.Int64 != nil:
			return *y.Int64
		case y.Float64 != nil:
			return *y.Float64
		default:
			return y.Number
		}
	case ObjectType:
		res := make(map[string]any, len(y.Fields))
		for i := range y.Fields {
			res[y.Fields[i].String] = ToAny(y.Values[i])
		}
		return res
	case ArrayType:
		res := make([]any, len(y.Values))
		for i := range y.Values {
			res[i] = ToAny(y.Values[i])
		}
		return res
	default:
		panic("type")
	}
}

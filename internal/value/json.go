package value

import (
	"encoding/json"
	"fmt"
)

// MarshalJSON renders a Value as the plain JSON shape the result
// record's wire format expects: a bare number, a bare array of
// numbers, or a bare boolean — not a tagged {"kind":...} object.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.Kind {
	case KInt:
		return json.Marshal(v.Int)
	case KSeq:
		if v.Seq == nil {
			return []byte("[]"), nil
		}
		return json.Marshal(v.Seq)
	case KBool:
		return json.Marshal(v.Bool)
	default:
		return []byte("null"), nil
	}
}

// UnmarshalJSON accepts a bare number, array, or boolean and infers
// the Value's Kind from the JSON shape, the inverse of MarshalJSON.
func (v *Value) UnmarshalJSON(data []byte) error {
	var asInt int
	if err := json.Unmarshal(data, &asInt); err == nil {
		*v = Int_(asInt)
		return nil
	}
	var asSeq []int
	if err := json.Unmarshal(data, &asSeq); err == nil {
		*v = Seq_(asSeq)
		return nil
	}
	var asBool bool
	if err := json.Unmarshal(data, &asBool); err == nil {
		*v = Bool_(asBool)
		return nil
	}
	return fmt.Errorf("value: cannot unmarshal %s into int, [int], or bool", data)
}

package value

import (
	"encoding/json"
	"testing"
)

func TestMarshalUnmarshalRoundTrip(t *testing.T) {
	cases := []Value{Int_(42), Int_(-7), Seq_([]int{1, 2, 3}), Seq_(nil), Bool_(true)}
	for _, v := range cases {
		data, err := json.Marshal(v)
		if err != nil {
			t.Fatalf("marshal %v: %v", v, err)
		}
		var got Value
		if err := json.Unmarshal(data, &got); err != nil {
			t.Fatalf("unmarshal %s: %v", data, err)
		}
		if !v.Equal(got) && !(v.Kind == KSeq && got.Kind == KSeq && len(v.Seq) == 0 && len(got.Seq) == 0) {
			t.Errorf("round trip %v -> %s -> %v: mismatch", v, data, got)
		}
	}
}

func TestMarshalSeqIsBareArray(t *testing.T) {
	data, err := json.Marshal(Seq_([]int{3, 5, 4}))
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "[3,5,4]" {
		t.Errorf("sequence MarshalJSON: got %s, want [3,5,4]", data)
	}
}

func TestMarshalEmptySeqIsBareEmptyArray(t *testing.T) {
	data, err := json.Marshal(Seq_(nil))
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "[]" {
		t.Errorf("empty sequence MarshalJSON: got %s, want []", data)
	}
}

package live

import (
	"encoding/json"
	"testing"
)

func TestPatchEncoding(t *testing.T) {
	b, err := json.Marshal(Patch{Op: OpClassAdd, ID: "item-1", Value: "fade-enter"})
	if err != nil {
		t.Fatalf("Marshal error: %v", err)
	}
	want := `{"op":"class-add","id":"item-1","value":"fade-enter"}`
	if string(b) != want {
		t.Errorf("encoded = %s, want %s", b, want)
	}
}

func TestPatchEncodingOmitsEmptyValue(t *testing.T) {
	b, err := json.Marshal(Patch{Op: OpRemove, ID: "item-2"})
	if err != nil {
		t.Fatalf("Marshal error: %v", err)
	}
	want := `{"op":"remove","id":"item-2"}`
	if string(b) != want {
		t.Errorf("encoded = %s, want %s", b, want)
	}
}

func TestActionDecoding(t *testing.T) {
	var act action
	if err := json.Unmarshal([]byte(`{"action":"remove","id":"item-3"}`), &act); err != nil {
		t.Fatalf("Unmarshal error: %v", err)
	}
	if act.Action != actionRemove || act.ID != "item-3" {
		t.Errorf("action = %+v, want remove/item-3", act)
	}
}

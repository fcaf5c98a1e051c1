package archive

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestRecordItemNames(t *testing.T) {
	items, err := json.Marshal([]itemRow{
		{ID: 1, Name: "X-Burguer", PriceCents: 2000},
		{ID: 9, Name: "Refrigerante", PriceCents: 600},
	})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	rec := Record{Items: items}

	got := rec.ItemNames()
	want := []string{"X-Burguer", "Refrigerante"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("ItemNames() = %v, want %v", got, want)
	}
}

func TestRecordItemNamesBadPayload(t *testing.T) {
	rec := Record{Items: []byte("not json")}
	if got := rec.ItemNames(); got != nil {
		t.Fatalf("ItemNames() on bad payload = %v, want nil", got)
	}
}

package fixtures

import (
	"reflect"
	"testing"
)

func TestNormalize(t *testing.T) {
	t.Run("sorts list elements deterministically", func(t *testing.T) {
		data := []any{"charlie", "alpha", "bravo"}

		result := Normalize(data).([]any)

		want := []any{"alpha", "bravo", "charlie"}
		if !reflect.DeepEqual(result, want) {
			t.Errorf("expected %v, got %v", want, result)
		}
	})

	t.Run("sorts object lists by canonical form", func(t *testing.T) {
		a := map[string]any{"id": "sm2", "title": "b"}
		b := map[string]any{"id": "sm1", "title": "a"}

		first := Normalize([]any{a, b}).([]any)
		second := Normalize([]any{b, a}).([]any)

		if !reflect.DeepEqual(first, second) {
			t.Errorf("expected order-independent result, got %v vs %v", first, second)
		}
	})

	t.Run("groups mixed types together", func(t *testing.T) {
		data := []any{"zzz", float64(3), "aaa", float64(1)}

		result := Normalize(data).([]any)

		// Numbers sort before strings because the type name leads the key
		if _, ok := result[0].(float64); !ok {
			t.Errorf("expected numbers first, got %v", result)
		}
		if result[2] != "aaa" || result[3] != "zzz" {
			t.Errorf("expected strings sorted, got %v", result)
		}
	})

	t.Run("recurses into nested structures", func(t *testing.T) {
		data := map[string]any{
			"outer": map[string]any{
				"items": []any{"b", "a"},
			},
		}

		result := Normalize(data).(map[string]any)
		items := result["outer"].(map[string]any)["items"].([]any)

		if items[0] != "a" || items[1] != "b" {
			t.Errorf("expected nested list sorted, got %v", items)
		}
	})

	t.Run("primitives pass through", func(t *testing.T) {
		if got := Normalize("text"); got != "text" {
			t.Errorf("expected text, got %v", got)
		}
		if got := Normalize(nil); got != nil {
			t.Errorf("expected nil, got %v", got)
		}
	})
}

func TestDecode(t *testing.T) {
	t.Run("converts typed struct to generic form", func(t *testing.T) {
		type sample struct {
			ID    string `json:"id"`
			Count int    `json:"count"`
		}

		decoded, err := Decode(&sample{ID: "sm1", Count: 5})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		m, ok := decoded.(map[string]any)
		if !ok {
			t.Fatalf("expected map, got %T", decoded)
		}
		if m["id"] != "sm1" {
			t.Errorf("expected id sm1, got %v", m["id"])
		}
		if m["count"] != float64(5) {
			t.Errorf("expected count 5, got %v", m["count"])
		}
	})

	t.Run("converts slices to generic lists", func(t *testing.T) {
		decoded, err := Decode([]string{"a", "b"})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		list, ok := decoded.([]any)
		if !ok {
			t.Fatalf("expected list, got %T", decoded)
		}
		if len(list) != 2 {
			t.Errorf("expected 2 elements, got %d", len(list))
		}
	})

	t.Run("rejects unserializable values", func(t *testing.T) {
		if _, err := Decode(make(chan int)); err == nil {
			t.Error("expected error for channel value")
		}
	})
}

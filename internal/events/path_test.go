package events

import "testing"

func TestPathPatternMatch(t *testing.T) {
	tests := []struct {
		pattern string
		path    string
		want    map[string]string
		ok      bool
	}{
		{"orders/{orderId}", "orders/O1", map[string]string{"orderId": "O1"}, true},
		{"orders/{orderId}", "/orders/O1/", map[string]string{"orderId": "O1"}, true},
		{"orders/{orderId}", "carts/O1", nil, false},
		{"orders/{orderId}", "orders/O1/items/I1", nil, false},
		{"orders/{orderId}", "orders", nil, false},
		{"shops/{shopId}/orders/{orderId}", "shops/A/orders/B", map[string]string{"shopId": "A", "orderId": "B"}, true},
	}

	for _, tt := range tests {
		got, ok := NewPathPattern(tt.pattern).Match(tt.path)
		if ok != tt.ok {
			t.Errorf("%s ~ %s: ok = %v, want %v", tt.pattern, tt.path, ok, tt.ok)
			continue
		}
		for k, v := range tt.want {
			if got[k] != v {
				t.Errorf("%s ~ %s: %s = %q, want %q", tt.pattern, tt.path, k, got[k], v)
			}
		}
	}
}

func TestDocumentPath(t *testing.T) {
	tests := map[string]string{
		"projects/p/databases/(default)/documents/orders/O1": "orders/O1",
		"documents/orders/O1":                                "orders/O1",
		"orders/O1":                                          "orders/O1",
	}
	for in, want := range tests {
		if got := DocumentPath(in); got != want {
			t.Errorf("DocumentPath(%q) = %q, want %q", in, got, want)
		}
	}
}

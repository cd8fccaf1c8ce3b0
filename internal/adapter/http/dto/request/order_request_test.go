package request

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestUpdateOrderStatusRequest_ResolveExpectedVersion(t *testing.T) {
	tests := []struct {
		name    string
		body    UpdateOrderStatusRequest
		ifMatch string
		want    int64
		wantErr bool
	}{
		{name: "no version", body: UpdateOrderStatusRequest{Status: "processing"}, want: 0},
		{name: "body version", body: UpdateOrderStatusRequest{Version: 4}, want: 4},
		{name: "strong etag wins", body: UpdateOrderStatusRequest{Version: 4}, ifMatch: `"7"`, want: 7},
		{name: "weak etag", ifMatch: `W/"2"`, want: 2},
		{name: "wildcard", body: UpdateOrderStatusRequest{Version: 3}, ifMatch: "*", want: 3},
		{name: "garbage etag", ifMatch: `"abc"`, wantErr: true},
		{name: "zero etag", ifMatch: `"0"`, wantErr: true},
		{name: "negative body", body: UpdateOrderStatusRequest{Version: -1}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.body.ResolveExpectedVersion(tt.ifMatch)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidVersion) {
					t.Fatalf("expected ErrInvalidVersion, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Fatalf("expected %d, got %d", tt.want, got)
			}
		})
	}
}

func TestUpdateInventoryRequest_Decode(t *testing.T) {
	var r UpdateInventoryRequest
	if err := json.Unmarshal([]byte(`{"unit_price":"1250.50"}`), &r); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.IsEmpty() || r.StockQuantity != nil || r.UnitPrice.StringFixed(2) != "1250.50" {
		t.Fatalf("unexpected decode: %+v", r)
	}

	var empty UpdateInventoryRequest
	if err := json.Unmarshal([]byte(`{}`), &empty); err != nil || !empty.IsEmpty() {
		t.Fatalf("expected empty request, got %+v err=%v", empty, err)
	}
}

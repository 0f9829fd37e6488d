package internal

import (
	"encoding/json"
	"testing"
)

func TestEnvelope_MarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		env  Envelope
		want string
	}{
		{"success keeps empty reply", Success("", json.RawMessage(`{"a":1}`)), `{"ok":true,"reply":"","raw":{"a":1}}`},
		{"success defaults raw", Success("hi", nil), `{"ok":true,"reply":"hi","raw":{}}`},
		{"failure", Failure("boom"), `{"ok":false,"error":"boom"}`},
		{"zero value is a failure", Envelope{}, `{"ok":false,"error":""}`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b, err := json.Marshal(tc.env)
			if err != nil {
				t.Fatal(err)
			}
			if string(b) != tc.want {
				t.Errorf("expected %s, got %s", tc.want, b)
			}
		})
	}
}

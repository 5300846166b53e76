package api_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

func TestSchemas_ValidateSamples(t *testing.T) {
	compile := func(name string) *jsonschema.Schema {
		t.Helper()
		p := filepath.Join("..", "..", "schemas", name)
		s, err := jsonschema.Compile(p)
		if err != nil {
			t.Fatalf("compile %s: %v", name, err)
		}
		return s
	}

	validate := func(s *jsonschema.Schema, v any) {
		t.Helper()
		if err := s.Validate(v); err != nil {
			t.Fatalf("validate: %v", err)
		}
	}

	featuresSchema := compile("features.schema.json")
	messageSchema := compile("message.schema.json")

	// The shipped feature feed must satisfy its own schema.
	raw, err := os.ReadFile(filepath.Join("..", "..", "features.json"))
	if err != nil {
		t.Fatalf("read features.json: %v", err)
	}
	var feed any
	if err := json.Unmarshal(raw, &feed); err != nil {
		t.Fatalf("parse features.json: %v", err)
	}
	validate(featuresSchema, feed)

	// Representative websocket envelopes.
	var pulse any
	_ = json.Unmarshal([]byte(`{
	  "type":"state_pulse",
	  "payload":{"points":120.5,"points_display":"120","points_per_second":8.1}
	}`), &pulse)
	validate(messageSchema, pulse)

	var purchase any
	_ = json.Unmarshal([]byte(`{
	  "type":"purchase",
	  "payload":{"key":"europe","owned":1,"next_cost":115,"points":20,"points_display":"20"}
	}`), &purchase)
	validate(messageSchema, purchase)

	var click any
	_ = json.Unmarshal([]byte(`{
	  "type":"click",
	  "payload":{"x":120,"y":80}
	}`), &click)
	validate(messageSchema, click)
}

func TestSchemas_RejectBadSamples(t *testing.T) {
	p := filepath.Join("..", "..", "schemas", "message.schema.json")
	s, err := jsonschema.Compile(p)
	if err != nil {
		t.Fatalf("compile: %v", err)
	}

	var bad any
	_ = json.Unmarshal([]byte(`{"type":"telnet_takeover"}`), &bad)
	if err := s.Validate(bad); err == nil {
		t.Fatal("unknown message type should fail validation")
	}
}

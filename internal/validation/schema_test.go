package validation_test

import (
	"errors"
	"testing"

	"github.com/goliatone/go-sitegen/internal/validation"
)

func validPayload() map[string]any {
	return map[string]any{
		"brand":       "LuckySpin",
		"domain":      "luckyspin.example",
		"pages":       []any{"Casino", "Games"},
		"offerUrl":    "https://go.example/offer",
		"colorScheme": "gold",
		"meta": map[string]any{
			"title":       "{{page}} | {{brand}}",
			"description": "Visit {{domain}}",
		},
	}
}

func TestValidateGenerateRequestAccepts(t *testing.T) {
	if err := validation.ValidateGenerateRequest(validPayload()); err != nil {
		t.Fatalf("valid payload rejected: %v", err)
	}
}

func TestValidateGenerateRequestMissingRequired(t *testing.T) {
	payload := validPayload()
	delete(payload, "brand")

	err := validation.ValidateGenerateRequest(payload)
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !errors.Is(err, validation.ErrSchemaValidation) {
		t.Fatalf("expected ErrSchemaValidation, got %v", err)
	}
	if len(validation.Issues(err)) == 0 {
		t.Fatal("expected at least one issue")
	}
}

func TestValidateGenerateRequestEmptyPages(t *testing.T) {
	payload := validPayload()
	payload["pages"] = []any{}
	if err := validation.ValidateGenerateRequest(payload); err == nil {
		t.Fatal("empty pages should be rejected")
	}
}

func TestValidateGenerateRequestBadColorScheme(t *testing.T) {
	payload := validPayload()
	payload["colorScheme"] = "vermilion"
	if err := validation.ValidateGenerateRequest(payload); err == nil {
		t.Fatal("unknown color scheme should be rejected")
	}
}

func TestValidateGenerateRequestUnknownField(t *testing.T) {
	payload := validPayload()
	payload["surprise"] = true
	if err := validation.ValidateGenerateRequest(payload); err == nil {
		t.Fatal("unknown top-level field should be rejected")
	}
}

func TestDecodePayload(t *testing.T) {
	payload, err := validation.DecodePayload([]byte(`{"brand":"X"}`))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if payload["brand"] != "X" {
		t.Fatalf("unexpected payload %v", payload)
	}

	if _, err := validation.DecodePayload([]byte(`{`)); !errors.Is(err, validation.ErrSchemaValidation) {
		t.Fatalf("expected ErrSchemaValidation for malformed JSON, got %v", err)
	}
}

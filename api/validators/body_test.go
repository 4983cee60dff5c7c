package validators

import (
	"net/http/httptest"
	"strings"
	"testing"

	pkgerrors "github.com/avelarsoft/menuforge-backend/pkg/errors"
)

type samplePayload struct {
	Name          string   `json:"name" validate:"required"`
	TaxApplicable *bool    `json:"taxApplicable" validate:"required"`
	Tax           *float64 `json:"tax,omitempty" validate:"omitempty,gte=0"`
}

func decode(t *testing.T, body string) (*samplePayload, error) {
	t.Helper()
	req := httptest.NewRequest("POST", "/", strings.NewReader(body))
	var dest samplePayload
	err := DecodeJSONBody(req, &dest)
	return &dest, err
}

func TestDecodeJSONBodyAcceptsFalseBooleans(t *testing.T) {
	dest, err := decode(t, `{"name":"Beverages","taxApplicable":false}`)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if dest.TaxApplicable == nil || *dest.TaxApplicable {
		t.Fatalf("expected explicit false to survive decoding")
	}
}

func TestDecodeJSONBodyReportsMissingFields(t *testing.T) {
	_, err := decode(t, `{"name":"Beverages"}`)
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
	if !strings.Contains(typed.Message(), "taxApplicable is required") {
		t.Fatalf("message should name the json field, got %q", typed.Message())
	}
}

func TestDecodeJSONBodyRejectsUnknownFields(t *testing.T) {
	_, err := decode(t, `{"name":"x","taxApplicable":true,"bogus":1}`)
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error for unknown field, got %v", err)
	}
}

func TestDecodeJSONBodyRejectsNegativeTax(t *testing.T) {
	_, err := decode(t, `{"name":"x","taxApplicable":true,"tax":-1}`)
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error for negative tax, got %v", err)
	}
}

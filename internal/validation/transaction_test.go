package validation

import (
	"errors"
	"testing"

	"github.com/ndewijer/Portfolio-Tracker-Backend/internal/api/request"
)

func TestValidateCreateTransaction(t *testing.T) {
	valid := request.CreateTransactionRequest{
		Date:       "2024-03-15 10:30:00",
		Identifier: "AAPL",
		Amount:     1000,
	}

	t.Run("accepts a valid request", func(t *testing.T) {
		if err := ValidateCreateTransaction(valid); err != nil {
			t.Errorf("Expected no error, got %v", err)
		}
	})

	tests := []struct {
		name    string
		mutate  func(*request.CreateTransactionRequest)
		field   string
	}{
		{
			name:   "missing date",
			mutate: func(r *request.CreateTransactionRequest) { r.Date = "" },
			field:  "date",
		},
		{
			name:   "unparseable date",
			mutate: func(r *request.CreateTransactionRequest) { r.Date = "15/03/2024" },
			field:  "date",
		},
		{
			name:   "missing identifier",
			mutate: func(r *request.CreateTransactionRequest) { r.Identifier = "  " },
			field:  "identifier",
		},
		{
			name:   "zero amount",
			mutate: func(r *request.CreateTransactionRequest) { r.Amount = 0 },
			field:  "amount",
		},
		{
			name:   "negative amount",
			mutate: func(r *request.CreateTransactionRequest) { r.Amount = -50 },
			field:  "amount",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid
			tt.mutate(&req)

			err := ValidateCreateTransaction(req)
			if err == nil {
				t.Fatal("Expected a validation error")
			}

			var vErr *Error
			if !errors.As(err, &vErr) {
				t.Fatalf("Expected *validation.Error, got %T", err)
			}
			if _, ok := vErr.Fields[tt.field]; !ok {
				t.Errorf("Expected error on field %q, got %v", tt.field, vErr.Fields)
			}
		})
	}

	t.Run("reports all invalid fields at once", func(t *testing.T) {
		err := ValidateCreateTransaction(request.CreateTransactionRequest{})
		if err == nil {
			t.Fatal("Expected a validation error")
		}

		var vErr *Error
		if !errors.As(err, &vErr) {
			t.Fatalf("Expected *validation.Error, got %T", err)
		}
		for _, field := range []string{"date", "identifier", "amount"} {
			if _, ok := vErr.Fields[field]; !ok {
				t.Errorf("Expected error on field %q, got %v", field, vErr.Fields)
			}
		}
	})
}

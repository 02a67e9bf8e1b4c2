package api_test

import (
	"errors"
	"testing"

	"groove/internal/api"
	"groove/internal/catalog"
)

func validCreateRecord() api.CreateRecordRequest {
	return api.CreateRecordRequest{
		Artist:   "The Beatles",
		Album:    "Abbey Road",
		Price:    29.99,
		Quantity: 10,
		Format:   "vinyl",
		Category: "rock",
	}
}

func TestValidateCreateRecord(t *testing.T) {
	input, err := api.ValidateCreateRecord(validCreateRecord())
	if err != nil {
		t.Fatalf("ValidateCreateRecord failed: %v", err)
	}
	if input.PriceCents != 2999 {
		t.Errorf("expected 2999 cents, got %d", input.PriceCents)
	}
	if input.Format != catalog.FormatVinyl || input.Category != catalog.CategoryRock {
		t.Errorf("unexpected format/category: %s/%s", input.Format, input.Category)
	}
}

func TestValidateCreateRecordRejections(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*api.CreateRecordRequest)
	}{
		{"empty artist", func(r *api.CreateRecordRequest) { r.Artist = "  " }},
		{"empty album", func(r *api.CreateRecordRequest) { r.Album = "" }},
		{"negative price", func(r *api.CreateRecordRequest) { r.Price = -0.01 }},
		{"negative quantity", func(r *api.CreateRecordRequest) { r.Quantity = -1 }},
		{"unknown format", func(r *api.CreateRecordRequest) { r.Format = "8-track" }},
		{"unknown category", func(r *api.CreateRecordRequest) { r.Category = "polka" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validCreateRecord()
			tc.mutate(&req)
			_, err := api.ValidateCreateRecord(req)
			if !errors.Is(err, api.ErrValidation) {
				t.Fatalf("expected ErrValidation, got %v", err)
			}
		})
	}
}

func TestValidateUpdateRecord(t *testing.T) {
	price := 14.99
	format := "cd"
	req := api.UpdateRecordRequest{Price: &price, Format: &format}

	input, err := api.ValidateUpdateRecord(req)
	if err != nil {
		t.Fatalf("ValidateUpdateRecord failed: %v", err)
	}
	if input.PriceCents == nil || *input.PriceCents != 1499 {
		t.Errorf("unexpected price: %v", input.PriceCents)
	}
	if input.Format == nil || *input.Format != catalog.FormatCD {
		t.Errorf("unexpected format: %v", input.Format)
	}
	if input.Artist != nil || input.Album != nil || input.Quantity != nil {
		t.Error("expected absent fields to stay nil")
	}
}

func TestValidateUpdateRecordRejections(t *testing.T) {
	empty := " "
	if _, err := api.ValidateUpdateRecord(api.UpdateRecordRequest{Artist: &empty}); !errors.Is(err, api.ErrValidation) {
		t.Fatalf("expected ErrValidation for blank artist, got %v", err)
	}
	negative := -1.0
	if _, err := api.ValidateUpdateRecord(api.UpdateRecordRequest{Price: &negative}); !errors.Is(err, api.ErrValidation) {
		t.Fatalf("expected ErrValidation for negative price, got %v", err)
	}
}

func validCreateOrder() api.CreateOrderRequest {
	return api.CreateOrderRequest{
		RecordID:        "record-id",
		Quantity:        2,
		CustomerName:    "Ada Lovelace",
		CustomerEmail:   "ada@example.com",
		ShippingAddress: "12 Analytical Way",
	}
}

func TestValidateCreateOrder(t *testing.T) {
	input, err := api.ValidateCreateOrder(validCreateOrder())
	if err != nil {
		t.Fatalf("ValidateCreateOrder failed: %v", err)
	}
	if input.Quantity != 2 || input.CustomerEmail != "ada@example.com" {
		t.Fatalf("unexpected input: %#v", input)
	}
}

func TestValidateCreateOrderRejections(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*api.CreateOrderRequest)
	}{
		{"empty record id", func(r *api.CreateOrderRequest) { r.RecordID = "" }},
		{"zero quantity", func(r *api.CreateOrderRequest) { r.Quantity = 0 }},
		{"negative quantity", func(r *api.CreateOrderRequest) { r.Quantity = -2 }},
		{"empty name", func(r *api.CreateOrderRequest) { r.CustomerName = "  " }},
		{"missing at sign", func(r *api.CreateOrderRequest) { r.CustomerEmail = "ada.example.com" }},
		{"missing domain dot", func(r *api.CreateOrderRequest) { r.CustomerEmail = "ada@example" }},
		{"whitespace in email", func(r *api.CreateOrderRequest) { r.CustomerEmail = "ada lovelace@example.com" }},
		{"empty address", func(r *api.CreateOrderRequest) { r.ShippingAddress = "" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validCreateOrder()
			tc.mutate(&req)
			_, err := api.ValidateCreateOrder(req)
			if !errors.Is(err, api.ErrValidation) {
				t.Fatalf("expected ErrValidation, got %v", err)
			}
		})
	}
}

package api

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"groove/internal/catalog"
	"groove/internal/orders"
)

// ErrValidation marks malformed or out-of-range input, rejected before any
// core logic runs.
var ErrValidation = errors.New("validation failed")

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// ValidateCreateRecord checks the payload shape and converts it into a
// catalog create input.
func ValidateCreateRecord(req CreateRecordRequest) (catalog.CreateInput, error) {
	var input catalog.CreateInput

	artist := strings.TrimSpace(req.Artist)
	if artist == "" {
		return input, fmt.Errorf("%w: artist must not be empty", ErrValidation)
	}
	album := strings.TrimSpace(req.Album)
	if album == "" {
		return input, fmt.Errorf("%w: album must not be empty", ErrValidation)
	}
	if req.Price < 0 {
		return input, fmt.Errorf("%w: price must not be negative", ErrValidation)
	}
	if req.Quantity < 0 {
		return input, fmt.Errorf("%w: quantity must not be negative", ErrValidation)
	}
	format, err := catalog.ParseFormat(req.Format)
	if err != nil {
		return input, fmt.Errorf("%w: %s", ErrValidation, err)
	}
	category, err := catalog.ParseCategory(req.Category)
	if err != nil {
		return input, fmt.Errorf("%w: %s", ErrValidation, err)
	}

	input = catalog.CreateInput{
		Artist:     artist,
		Album:      album,
		PriceCents: PriceToCents(req.Price),
		Quantity:   req.Quantity,
		Format:     format,
		Category:   category,
		MBID:       strings.TrimSpace(req.MBID),
	}
	return input, nil
}

// ValidateUpdateRecord checks a partial update payload and converts present
// fields into a catalog update input.
func ValidateUpdateRecord(req UpdateRecordRequest) (catalog.UpdateInput, error) {
	var input catalog.UpdateInput

	if req.Artist != nil {
		artist := strings.TrimSpace(*req.Artist)
		if artist == "" {
			return input, fmt.Errorf("%w: artist must not be empty", ErrValidation)
		}
		input.Artist = &artist
	}
	if req.Album != nil {
		album := strings.TrimSpace(*req.Album)
		if album == "" {
			return input, fmt.Errorf("%w: album must not be empty", ErrValidation)
		}
		input.Album = &album
	}
	if req.Price != nil {
		if *req.Price < 0 {
			return input, fmt.Errorf("%w: price must not be negative", ErrValidation)
		}
		cents := PriceToCents(*req.Price)
		input.PriceCents = &cents
	}
	if req.Quantity != nil {
		if *req.Quantity < 0 {
			return input, fmt.Errorf("%w: quantity must not be negative", ErrValidation)
		}
		input.Quantity = req.Quantity
	}
	if req.Format != nil {
		format, err := catalog.ParseFormat(*req.Format)
		if err != nil {
			return input, fmt.Errorf("%w: %s", ErrValidation, err)
		}
		input.Format = &format
	}
	if req.Category != nil {
		category, err := catalog.ParseCategory(*req.Category)
		if err != nil {
			return input, fmt.Errorf("%w: %s", ErrValidation, err)
		}
		input.Category = &category
	}
	if req.MBID != nil {
		mbid := strings.TrimSpace(*req.MBID)
		input.MBID = &mbid
	}
	return input, nil
}

// ValidateCreateOrder checks the payload shape and converts it into an
// order create input.
func ValidateCreateOrder(req CreateOrderRequest) (orders.CreateInput, error) {
	var input orders.CreateInput

	recordID := strings.TrimSpace(req.RecordID)
	if recordID == "" {
		return input, fmt.Errorf("%w: recordId must not be empty", ErrValidation)
	}
	if req.Quantity < 1 {
		return input, fmt.Errorf("%w: quantity must be positive", ErrValidation)
	}
	name := strings.TrimSpace(req.CustomerName)
	if name == "" {
		return input, fmt.Errorf("%w: customerName must not be empty", ErrValidation)
	}
	email := strings.TrimSpace(req.CustomerEmail)
	if !emailPattern.MatchString(email) {
		return input, fmt.Errorf("%w: customerEmail must be a valid email address", ErrValidation)
	}
	address := strings.TrimSpace(req.ShippingAddress)
	if address == "" {
		return input, fmt.Errorf("%w: shippingAddress must not be empty", ErrValidation)
	}

	input = orders.CreateInput{
		RecordID:        recordID,
		Quantity:        req.Quantity,
		CustomerName:    name,
		CustomerEmail:   email,
		ShippingAddress: address,
	}
	return input, nil
}

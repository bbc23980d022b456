package request

import (
	"errors"
	"strconv"
	"strings"
)

var ErrInvalidDays = errors.New("days must be an integer")

type CreateOrderRequest struct {
	VehicleID string `json:"vehicle_id" binding:"required" example:"b7e1c0de-5a1f-4f0e-9d2c-1a2b3c4d5e6f"`
}

type AddServicesRequest struct {
	ServiceIDs []string `json:"service_ids" binding:"required"`
}

// Normalized drops blank ids so that a list made only of blanks is treated as empty.
func (r AddServicesRequest) Normalized() []string {
	ids := make([]string, 0, len(r.ServiceIDs))
	for _, id := range r.ServiceIDs {
		if id = strings.TrimSpace(id); id != "" {
			ids = append(ids, id)
		}
	}
	return ids
}

type AddItemRequest struct {
	ItemID   string `json:"item_id" binding:"required"`
	Quantity int    `json:"quantity" example:"2"`
}

// PublicLookupRequest is sent by customers tracking their order. Document is
// the CPF or CNPJ, with or without punctuation.
type PublicLookupRequest struct {
	Code     string `json:"code" binding:"required" example:"OS-20240115-A1B2C3"`
	Document string `json:"document" binding:"required" example:"123.456.789-09"`
}

// ParseDays reads the turnaround window from the query string, defaulting to 30.
func ParseDays(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 30, nil
	}
	days, err := strconv.Atoi(raw)
	if err != nil {
		return 0, ErrInvalidDays
	}
	return days, nil
}

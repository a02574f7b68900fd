package models

import "github.com/shopspring/decimal"

// ATMDB represents an ATM row in the database.
type ATMDB struct {
	ID        int64               `db:"id"`        // Primary key
	Name      string              `db:"name"`      // Unique label, seeding de-duplication key
	Address   *string             `db:"address"`   // Optional free-text address
	Pincode   string              `db:"pincode"`   // Postal code, indexed for equality lookup
	Latitude  decimal.NullDecimal `db:"latitude"`  // Optional coordinate, scale 6
	Longitude decimal.NullDecimal `db:"longitude"` // Optional coordinate, scale 6
}

// ATMResponse is the plain mapping of an ATM emitted by the lookup API.
// Coordinates are plain floating-point numbers or null when not set.
// swagger:model ATMResponse
type ATMResponse struct {
	// ATM identifier
	// example: 1
	ID int64 `json:"id"`

	// Label
	// example: Shirpur Bank ATM - Main Street
	Name string `json:"name"`

	// Address
	// example: Near Market, Shirpur
	Address *string `json:"address"`

	// Postal code
	// example: 425405
	Pincode string `json:"pincode"`

	// Latitude
	// example: 20.756
	Latitude *float64 `json:"latitude"`

	// Longitude
	// example: 74.591
	Longitude *float64 `json:"longitude"`
}

// ToResponse converts an ATM row to its API mapping.
func (a ATMDB) ToResponse() ATMResponse {
	resp := ATMResponse{
		ID:      a.ID,
		Name:    a.Name,
		Address: a.Address,
		Pincode: a.Pincode,
	}
	if a.Latitude.Valid {
		lat, _ := a.Latitude.Decimal.Float64()
		resp.Latitude = &lat
	}
	if a.Longitude.Valid {
		lon, _ := a.Longitude.Decimal.Float64()
		resp.Longitude = &lon
	}
	return resp
}

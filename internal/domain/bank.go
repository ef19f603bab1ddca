package domain

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

type Quote struct {
	Buy  decimal.Decimal `json:"buy"`
	Sell decimal.Decimal `json:"sell"`
	// NBRB is filled on read from the official source and never stored.
	NBRB decimal.Decimal `json:"nbrb"`
}

type Coords struct {
	Lat float64
	Lon float64
}

// MarshalJSON writes coordinates as a [lat, lon] tuple, the snapshot format.
func (c Coords) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]float64{c.Lat, c.Lon})
}

func (c *Coords) UnmarshalJSON(data []byte) error {
	var pair []float64
	if err := json.Unmarshal(data, &pair); err != nil {
		return fmt.Errorf("coords must be a [lat, lon] array: %w", err)
	}
	if len(pair) != 2 {
		return fmt.Errorf("coords must have 2 elements, got %d", len(pair))
	}
	c.Lat, c.Lon = pair[0], pair[1]
	return nil
}

// Branch has nil Coords when the location is unknown.
type Branch struct {
	Address string  `json:"address"`
	Coords  *Coords `json:"coords,omitempty"`
}

func (b Branch) HasCoords() bool { return b.Coords != nil }

type BankQuote struct {
	Bank     string   `json:"bank"`
	USD      Quote    `json:"USD"`
	EUR      Quote    `json:"EUR"`
	Branches []Branch `json:"branches"`
}

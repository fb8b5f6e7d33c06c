package domain

import (
	"encoding/json"
	"fmt"
	"os"
)

const BasePricePerKg = 5000.0

// Tariff holds every knob of the pricing formula. The zero value is not
// usable; start from DefaultTariff or LoadTariff.
type Tariff struct {
	BasePrice          float64            `json:"base_price"`
	GarmentMultipliers map[string]float64 `json:"garment_multipliers"`
	ServiceMultipliers map[string]float64 `json:"service_multipliers"`
	LoyaltyMinOrders   int                `json:"loyalty_min_orders"`
	LoyaltyRate        float64            `json:"loyalty_rate"`
	BulkMinWeight      float64            `json:"bulk_min_weight"`
	BulkRate           float64            `json:"bulk_rate"`
}

func DefaultTariff() Tariff {
	return Tariff{
		BasePrice: BasePricePerKg,
		GarmentMultipliers: map[string]float64{
			GarmentShirt.String():   1.0,
			GarmentPants.String():   1.2,
			GarmentJacket.String():  1.5,
			GarmentBlanket.String(): 2.0,
			GarmentOther.String():   1.3,
		},
		ServiceMultipliers: map[string]float64{
			ServiceNormal.String():  1.0,
			ServiceFast.String():    1.5,
			ServiceExpress.String(): 2.0,
		},
		LoyaltyMinOrders: 3,
		LoyaltyRate:      0.85,
		BulkMinWeight:    10.0,
		BulkRate:         0.9,
	}
}

func LoadTariff(configPath string) (Tariff, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return Tariff{}, fmt.Errorf("tariff file %s does not exist", configPath)
		}
		return Tariff{}, fmt.Errorf("failed to read tariff file %s: %w", configPath, err)
	}

	tariff := DefaultTariff()
	if err := json.Unmarshal(data, &tariff); err != nil {
		return Tariff{}, fmt.Errorf("failed to unmarshal tariff: %w", err)
	}

	if err := tariff.Validate(); err != nil {
		return Tariff{}, err
	}
	return tariff, nil
}

func (t Tariff) Validate() error {
	if t.BasePrice <= 0 {
		return fmt.Errorf("invalid tariff: base price %.2f must be positive", t.BasePrice)
	}
	garments := []GarmentType{GarmentShirt, GarmentPants, GarmentJacket, GarmentBlanket, GarmentOther}
	for _, g := range garments {
		mult, exists := t.GarmentMultipliers[g.String()]
		if !exists {
			return fmt.Errorf("invalid tariff: missing garment multiplier for %s", g)
		}
		if mult <= 0 {
			return fmt.Errorf("invalid tariff: non-positive multiplier %.2f for garment %s", mult, g)
		}
	}
	tiers := []ServiceTier{ServiceNormal, ServiceFast, ServiceExpress}
	for _, tier := range tiers {
		mult, exists := t.ServiceMultipliers[tier.String()]
		if !exists {
			return fmt.Errorf("invalid tariff: missing service multiplier for %s", tier)
		}
		if mult <= 0 {
			return fmt.Errorf("invalid tariff: non-positive multiplier %.2f for tier %s", mult, tier)
		}
	}
	if t.LoyaltyMinOrders < 1 {
		return fmt.Errorf("invalid tariff: loyalty_min_orders %d must be at least 1", t.LoyaltyMinOrders)
	}
	if t.LoyaltyRate <= 0 || t.LoyaltyRate > 1 {
		return fmt.Errorf("invalid tariff: loyalty_rate %.2f must be in (0, 1]", t.LoyaltyRate)
	}
	if t.BulkRate <= 0 || t.BulkRate > 1 {
		return fmt.Errorf("invalid tariff: bulk_rate %.2f must be in (0, 1]", t.BulkRate)
	}
	if t.BulkMinWeight < 0 {
		return fmt.Errorf("invalid tariff: negative bulk_min_weight %.2f", t.BulkMinWeight)
	}
	return nil
}

// Price computes the final price for a new order. priorOrders is the
// number of orders the same customer already has in the store, counted
// before the new order is added. At most one discount applies and
// loyalty wins over bulk.
func (t Tariff) Price(weight float64, garment GarmentType, service ServiceTier, priorOrders int) (float64, bool) {
	price := weight * t.BasePrice * t.GarmentMultipliers[garment.String()] * t.ServiceMultipliers[service.String()]

	switch {
	case priorOrders >= t.LoyaltyMinOrders:
		return price * t.LoyaltyRate, true
	case weight >= t.BulkMinWeight:
		return price * t.BulkRate, true
	default:
		return price, false
	}
}

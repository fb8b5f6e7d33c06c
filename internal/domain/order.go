package domain

import (
	"fmt"
	"strings"
	"time"
)

type GarmentType uint8

const (
	GarmentShirt GarmentType = iota + 1
	GarmentPants
	GarmentJacket
	GarmentBlanket
	GarmentOther
)

type ServiceTier uint8

const (
	ServiceNormal ServiceTier = iota + 1
	ServiceFast
	ServiceExpress
)

type OrderStatus uint8

const (
	StatusWaiting OrderStatus = iota
	StatusWashing
	StatusDrying
	StatusIroning
	StatusDone
	StatusCancelled
)

const (
	MinWeight     = 0.5
	MaxWeight     = 20.0
	MaxNameLength = 50
	MinPriority   = 1
	MaxPriority   = 5
)

type Order struct {
	OrderID      uint64
	CustomerName string
	Weight       float64
	Garment      GarmentType
	Service      ServiceTier
	Priority     int
	Status       OrderStatus
	FinalPrice   float64
	IsDiscounted bool
	EntryTime    time.Time
}

type CreateOrderRequest struct {
	CustomerName string
	Weight       float64
	Garment      GarmentType
	Service      ServiceTier
	Priority     int
}

type OrderToImport struct {
	CustomerName string  `json:"customer_name"`
	Garment      string  `json:"garment"`
	Weight       float64 `json:"weight"`
	Service      string  `json:"service"`
	Priority     int     `json:"priority"`
}

func (g GarmentType) IsValid() bool {
	return g >= GarmentShirt && g <= GarmentOther
}

func (g GarmentType) String() string {
	switch g {
	case GarmentShirt:
		return "shirt"
	case GarmentPants:
		return "pants"
	case GarmentJacket:
		return "jacket"
	case GarmentBlanket:
		return "blanket"
	case GarmentOther:
		return "other"
	default:
		return "unknown"
	}
}

func (s ServiceTier) IsValid() bool {
	return s >= ServiceNormal && s <= ServiceExpress
}

func (s ServiceTier) String() string {
	switch s {
	case ServiceNormal:
		return "normal"
	case ServiceFast:
		return "fast"
	case ServiceExpress:
		return "express"
	default:
		return "unknown"
	}
}

func (s OrderStatus) IsValid() bool {
	return s <= StatusCancelled
}

// IsTerminal reports whether no further transition is permitted.
func (s OrderStatus) IsTerminal() bool {
	return s == StatusDone || s == StatusCancelled
}

func (o *Order) GetStatusString() string {
	switch o.Status {
	case StatusWaiting:
		return "Waiting"
	case StatusWashing:
		return "Washing"
	case StatusDrying:
		return "Drying"
	case StatusIroning:
		return "Ironing"
	case StatusDone:
		return "Done"
	case StatusCancelled:
		return "Cancelled"
	default:
		return "Unknown Status"
	}
}

// AdvanceStatus moves the order one step along the
// Waiting -> Washing -> Drying -> Ironing -> Done pipeline.
func (o *Order) AdvanceStatus() error {
	if o.Status.IsTerminal() {
		return InvalidTransitionError(o.OrderID, o.GetStatusString())
	}
	o.Status++
	return nil
}

// CancelOrder jumps the order to the absorbing Cancelled state.
func (o *Order) CancelOrder() error {
	if o.Status.IsTerminal() {
		return InvalidTransitionError(o.OrderID, o.GetStatusString())
	}
	o.Status = StatusCancelled
	return nil
}

func (o *Order) IsActive() bool {
	return !o.Status.IsTerminal()
}

func ParseGarmentType(s string) (GarmentType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "shirt":
		return GarmentShirt, nil
	case "pants":
		return GarmentPants, nil
	case "jacket":
		return GarmentJacket, nil
	case "blanket":
		return GarmentBlanket, nil
	case "other":
		return GarmentOther, nil
	default:
		return 0, ValidationFailedError(
			fmt.Sprintf("unknown garment type %q (expected shirt, pants, jacket, blanket or other)", s))
	}
}

func ParseServiceTier(s string) (ServiceTier, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "normal":
		return ServiceNormal, nil
	case "fast":
		return ServiceFast, nil
	case "express":
		return ServiceExpress, nil
	default:
		return 0, ValidationFailedError(
			fmt.Sprintf("unknown service tier %q (expected normal, fast or express)", s))
	}
}

func ParseOrderStatus(s string) (OrderStatus, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "waiting":
		return StatusWaiting, nil
	case "washing":
		return StatusWashing, nil
	case "drying":
		return StatusDrying, nil
	case "ironing":
		return StatusIroning, nil
	case "done":
		return StatusDone, nil
	case "cancelled":
		return StatusCancelled, nil
	default:
		return 0, ValidationFailedError(
			fmt.Sprintf("unknown status %q (expected waiting, washing, drying, ironing, done or cancelled)", s))
	}
}

func (r CreateOrderRequest) Validate() error {
	name := strings.TrimSpace(r.CustomerName)
	if name == "" {
		return ValidationFailedError("customer name must not be empty")
	}
	if len(name) > MaxNameLength {
		return ValidationFailedError(
			fmt.Sprintf("customer name must be at most %d characters", MaxNameLength))
	}
	if r.Weight < MinWeight || r.Weight > MaxWeight {
		return ValidationFailedError(
			fmt.Sprintf("weight must be between %.1f and %.1f kg", MinWeight, MaxWeight))
	}
	if !r.Garment.IsValid() {
		return ValidationFailedError("unknown garment type")
	}
	if !r.Service.IsValid() {
		return ValidationFailedError("unknown service tier")
	}
	if r.Priority < MinPriority || r.Priority > MaxPriority {
		return ValidationFailedError(
			fmt.Sprintf("priority must be between %d (urgent) and %d", MinPriority, MaxPriority))
	}
	return nil
}

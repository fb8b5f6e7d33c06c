package cli

import (
	"fmt"
	"time"

	"github.com/laundryexpress/pro/internal/domain"
)

const TimeFormat = "2006-01-02 15:04"

func MapTimeToString(t time.Time) string {
	return t.Format(TimeFormat)
}

func statusLabel(s domain.OrderStatus) string {
	o := domain.Order{Status: s}
	return o.GetStatusString()
}

func printOrder(o domain.Order) {
	discount := ""
	if o.IsDiscounted {
		discount = " (discounted)"
	}
	fmt.Printf("Order: %d Customer: %s Status: %s Garment: %s Service: %s Weight: %.1fkg Priority: %d Price: Rp %d%s\n",
		o.OrderID,
		o.CustomerName,
		o.GetStatusString(),
		o.Garment,
		o.Service,
		o.Weight,
		o.Priority,
		int64(o.FinalPrice),
		discount,
	)
}

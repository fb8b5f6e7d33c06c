package domain

// Report is a point-in-time aggregate over the store. Every field except
// TopCustomers ignores cancelled orders; the customer ranking counts
// cancelled orders too, since they were still placed by the customer.
type Report struct {
	TotalRevenue       float64
	AverageWeight      float64
	MostPopularService ServiceTier
	ActiveCount        int
	TopCustomers       []CustomerCount
}

type CustomerCount struct {
	Name   string
	Orders int
}

// WaitEstimate answers "how long until my order is done": the target's
// own remaining time plus that of every active order ahead of it in the
// processing queue.
type WaitEstimate struct {
	OrderID    uint64
	Minutes    int
	QueueAhead []Order
}

type CustomerGroup struct {
	Name     string
	OrderIDs []uint64
}

type CustomerSummary struct {
	Name          string
	Orders        []Order
	TotalSpending float64
}

type StatusGroup struct {
	Status   OrderStatus
	OrderIDs []uint64
}

type Overview struct {
	Total     int
	Completed int
	Active    int
	Cancelled int
}

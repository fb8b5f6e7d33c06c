package domain

// Per-stage base durations in minutes. Waiting itself costs nothing:
// its time is whatever the queue ahead takes.
const (
	WashingMinutes = 50
	DryingMinutes  = 35
	IroningMinutes = 40
)

func (s ServiceTier) Divider() float64 {
	switch s {
	case ServiceFast:
		return 1.5
	case ServiceExpress:
		return 2.0
	default:
		return 1.0
	}
}

func (s OrderStatus) stageMinutes() int {
	switch s {
	case StatusWashing:
		return WashingMinutes
	case StatusDrying:
		return DryingMinutes
	case StatusIroning:
		return IroningMinutes
	default:
		return 0
	}
}

// RemainingMinutes returns the total minutes from the current stage
// through completion. The service divider is applied to each stage
// independently, truncating toward zero per stage.
func RemainingMinutes(status OrderStatus, tier ServiceTier) int {
	if status >= StatusDone || status == StatusCancelled {
		return 0
	}
	stageTime := int(float64(status.stageMinutes()) / tier.Divider())
	return stageTime + RemainingMinutes(status+1, tier)
}

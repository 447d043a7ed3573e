package order

import "strings"

// statusSteps maps each lifecycle status to its position on the tracking
// timeline. Cancelled sits at step 0; it never progresses.
var statusSteps = map[OrderStatus]int{
	StatusPending:    1,
	StatusConfirmed:  2,
	StatusProcessing: 3,
	StatusShipped:    4,
	StatusDelivered:  5,
	StatusCancelled:  0,
}

// stepLabels are the five fixed stops of the delivery timeline, in order.
var stepLabels = [5]string{
	"Order Placed",
	"Order Confirmed",
	"Processing",
	"Shipped",
	"Delivered",
}

// ResolveStep translates a raw status string into a timeline step. Matching
// is case-insensitive and unknown statuses fall back to step 1 (pending) so a
// malformed backend value can never break a tracking view. Step 0 always
// means cancelled: no other input resolves to it.
func ResolveStep(status string) int {
	if step, ok := statusSteps[OrderStatus(strings.ToUpper(strings.TrimSpace(status)))]; ok {
		return step
	}
	return 1
}

// TimelineStep is one stop on the delivery timeline.
type TimelineStep struct {
	Step      int    `json:"step"`
	Label     string `json:"label"`
	Completed bool   `json:"completed"`
}

// Timeline is the display-ready progression state for an order. Callers must
// not re-parse the raw status string; Cancelled is authoritative.
type Timeline struct {
	CurrentStep int            `json:"current_step"`
	Cancelled   bool           `json:"cancelled"`
	Steps       []TimelineStep `json:"steps"`
}

// BuildTimeline flags each of the five fixed steps as completed up to the
// resolved step. Cancelled orders show no completed steps.
func BuildTimeline(status string) Timeline {
	current := ResolveStep(status)
	t := Timeline{
		CurrentStep: current,
		Cancelled:   current == 0,
		Steps:       make([]TimelineStep, len(stepLabels)),
	}
	for i, label := range stepLabels {
		step := i + 1
		t.Steps[i] = TimelineStep{
			Step:      step,
			Label:     label,
			Completed: step <= current,
		}
	}
	return t
}

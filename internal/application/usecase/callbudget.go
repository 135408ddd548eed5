package usecase

// CallBudget tracks the telemetry provider's daily request allowance for
// one run. A ticket is consumed before each outbound call, never inferred
// after the fact, so the guard stays conservative under partial failures.
type CallBudget struct {
	ceiling int
	used    int
}

// NewCallBudget creates a budget with the given ceiling.
func NewCallBudget(ceiling int) *CallBudget {
	return &CallBudget{ceiling: ceiling}
}

// TryConsume takes one ticket. It returns false, without consuming, when
// the ceiling would be exceeded.
func (b *CallBudget) TryConsume() bool {
	if b.used >= b.ceiling {
		return false
	}
	b.used++
	return true
}

// Used returns the number of tickets consumed so far.
func (b *CallBudget) Used() int { return b.used }

// Remaining returns the number of tickets left.
func (b *CallBudget) Remaining() int { return b.ceiling - b.used }

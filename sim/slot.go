// Defines the per-slot outcome records that make up a simulation trace.

package sim

import "fmt"

// SlotStatus is the outcome of a single slot. The set of values is closed.
type SlotStatus uint8

const (
	StatusIdle      SlotStatus = iota // no node transmitted
	StatusSuccess                     // exactly one node transmitted
	StatusCollision                   // two or more nodes transmitted
)

var slotStatusNames = [...]string{
	StatusIdle:      "Idle",
	StatusSuccess:   "Success",
	StatusCollision: "Collision",
}

// String returns the literal export name: Idle, Success or Collision.
func (s SlotStatus) String() string {
	if int(s) < len(slotStatusNames) {
		return slotStatusNames[s]
	}
	return fmt.Sprintf("SlotStatus(%d)", uint8(s))
}

// MarshalText renders the status by name so JSON consumers see "Success" rather than 1.
func (s SlotStatus) MarshalText() ([]byte, error) {
	if int(s) >= len(slotStatusNames) {
		return nil, fmt.Errorf("unknown slot status %d", uint8(s))
	}
	return []byte(s.String()), nil
}

// UnmarshalText parses a status name.
func (s *SlotStatus) UnmarshalText(text []byte) error {
	parsed, err := ParseSlotStatus(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// ParseSlotStatus parses the literal export name. Matching is case-sensitive.
func ParseSlotStatus(name string) (SlotStatus, error) {
	for i, n := range slotStatusNames {
		if n == name {
			return SlotStatus(i), nil
		}
	}
	return 0, fmt.Errorf("unknown slot status %q; valid: Idle, Success, Collision", name)
}

// ClassifySlot maps a transmitter count to its status: 0 → Idle, 1 → Success, ≥2 → Collision.
func ClassifySlot(transmitterCount int) SlotStatus {
	switch {
	case transmitterCount <= 0:
		return StatusIdle
	case transmitterCount == 1:
		return StatusSuccess
	default:
		return StatusCollision
	}
}

// SlotOutcome records what happened in one slot.
type SlotOutcome struct {
	SlotIndex        int        `json:"slot"`          // 0-based
	TransmitterCount int        `json:"transmissions"` // nodes that attempted transmission
	Status           SlotStatus `json:"status"`
}

// NewSlotOutcome classifies transmitterCount and returns the outcome for slot index.
func NewSlotOutcome(index, transmitterCount int) SlotOutcome {
	return SlotOutcome{
		SlotIndex:        index,
		TransmitterCount: transmitterCount,
		Status:           ClassifySlot(transmitterCount),
	}
}

// SimulationTrace is the ordered sequence of slot outcomes produced by one run.
type SimulationTrace []SlotOutcome

// TransmitterCounts returns the per-slot transmitter counts as float64 samples.
func (t SimulationTrace) TransmitterCounts() []float64 {
	counts := make([]float64, len(t))
	for i, o := range t {
		counts[i] = float64(o.TransmitterCount)
	}
	return counts
}

// Head returns at most the first n outcomes. The original dashboard plots the first 100.
func (t SimulationTrace) Head(n int) SimulationTrace {
	if n < 0 {
		n = 0
	}
	if n > len(t) {
		n = len(t)
	}
	return t[:n]
}

package domain

import (
	"time"

	"github.com/m04kA/SMC-PitchBooking/pkg/types"
)

// SlotStatus availability classification of a slot
type SlotStatus string

const (
	SlotAvailable SlotStatus = "available"
	SlotBooked    SlotStatus = "booked"
	SlotBlocked   SlotStatus = "blocked"
	SlotPast      SlotStatus = "past"
)

// Slot is a classified time slot of a day
type Slot struct {
	Start  types.TimeString
	End    types.TimeString
	Status SlotStatus
}

// DayAvailability slots of one calendar day
type DayAvailability struct {
	Date  time.Time
	Slots []Slot
}

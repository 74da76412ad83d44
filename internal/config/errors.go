package config

import "fmt"

// UnknownSlotError is returned when a quick-launch slot ID is not one of the
// recognized slots.
type UnknownSlotError struct {
	Slot string
}

func (e *UnknownSlotError) Error() string {
	return fmt.Sprintf("unknown quick-launch slot %q (recognized: %v)", e.Slot, QuickLaunchSlots)
}

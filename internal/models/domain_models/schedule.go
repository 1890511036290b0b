package domain_models

import (
	"fmt"
	"sort"

	"tripforge/pkg/utils"
)

// SlotKind classifies a time slot in the day grid.
type SlotKind string

const (
	SlotKindFree          SlotKind = "free"
	SlotKindActivity      SlotKind = "activity"
	SlotKindMeal          SlotKind = "meal"
	SlotKindAccommodation SlotKind = "accommodation"
)

// The default day grid runs 06:00-23:00 with fixed meal anchors at breakfast,
// lunch and dinner hours.
const (
	ScheduleStartHour = 6
	ScheduleEndHour   = 23
)

var defaultMealHours = map[int]bool{8: true, 13: true, 20: true}

// TimeSlot is one bounded interval in a day schedule. Default hourly slots
// carry fixed "slot-<hour>" ids; user-added slots get generated uuids.
// Overlap between slots is allowed, only the start-time ordering is enforced.
type TimeSlot struct {
	ID              string        `json:"id"`
	StartTime       string        `json:"start_time"` // "HH:MM"
	EndTime         string        `json:"end_time"`   // "HH:MM"
	Kind            SlotKind      `json:"kind"`
	Item            *ScheduleItem `json:"item,omitempty"`
	IsEditable      bool          `json:"is_editable"`
	DurationMinutes int           `json:"duration_minutes"`
}

// DaySchedule owns the ordered slot list for one trip date.
type DaySchedule struct {
	Date  string     `json:"date"` // "YYYY-MM-DD"
	Slots []TimeSlot `json:"slots"`
}

// GenerateTimeSlots seeds the default grid for a fresh day: one editable
// 60-minute slot per hour from 06:00 through 23:00 (18 slots), with the meal
// hours pre-tagged so the UI renders the breakfast/lunch/dinner anchors.
func GenerateTimeSlots() []TimeSlot {
	slots := make([]TimeSlot, 0, ScheduleEndHour-ScheduleStartHour+1)

	for hour := ScheduleStartHour; hour <= ScheduleEndHour; hour++ {
		kind := SlotKindFree
		if defaultMealHours[hour] {
			kind = SlotKindMeal
		}

		slots = append(slots, TimeSlot{
			ID:              fmt.Sprintf("slot-%d", hour),
			StartTime:       utils.FormatClock(hour * utils.MinutesPerHour),
			EndTime:         utils.FormatClock((hour + 1) * utils.MinutesPerHour % utils.MinutesPerDay),
			Kind:            kind,
			IsEditable:      true,
			DurationMinutes: utils.MinutesPerHour,
		})
	}

	return slots
}

// NewDaySchedule builds a day seeded with the default slot grid.
func NewDaySchedule(date string) *DaySchedule {
	return &DaySchedule{
		Date:  date,
		Slots: GenerateTimeSlots(),
	}
}

// SortSlots restores the ascending start-time invariant. Ordering is by
// minutes-since-midnight, not by string comparison, so it stays correct even
// if a caller ever feeds in a non-zero-padded time.
func (d *DaySchedule) SortSlots() {
	sort.SliceStable(d.Slots, func(i, j int) bool {
		return utils.ParseClock(d.Slots[i].StartTime) < utils.ParseClock(d.Slots[j].StartTime)
	})
}

// FindSlot returns a pointer into the slot list, or nil when the id is absent.
func (d *DaySchedule) FindSlot(slotID string) *TimeSlot {
	for i := range d.Slots {
		if d.Slots[i].ID == slotID {
			return &d.Slots[i]
		}
	}
	return nil
}

// RemoveSlot drops the slot with the given id, reporting whether it existed.
func (d *DaySchedule) RemoveSlot(slotID string) bool {
	for i := range d.Slots {
		if d.Slots[i].ID == slotID {
			d.Slots = append(d.Slots[:i], d.Slots[i+1:]...)
			return true
		}
	}
	return false
}

// Clone deep-copies the day so read snapshots never alias live slot items.
func (d *DaySchedule) Clone() *DaySchedule {
	out := &DaySchedule{
		Date:  d.Date,
		Slots: make([]TimeSlot, len(d.Slots)),
	}
	copy(out.Slots, d.Slots)
	for i := range out.Slots {
		if out.Slots[i].Item != nil {
			item := *out.Slots[i].Item
			out.Slots[i].Item = &item
		}
	}
	return out
}

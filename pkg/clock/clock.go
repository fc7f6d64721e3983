// Package clock keeps the two time origins of the service apart: the fixed
// UTC+7 wall clock shown to users and the UTC form handed to storage.
// Every instant crossing the storage boundary must go through exactly one of
// ToStorage/ToLocal; the distinct wrapper types make mixing a compile error.
package clock

import "time"

// Offset is the fixed Vietnam offset. No DST.
const Offset = 7 * time.Hour

// Vietnam is the fixed UTC+7 location used at the chat-facing boundary.
var Vietnam = time.FixedZone("UTC+7", int(Offset/time.Second))

// LocalTime is an instant carrying Vietnam wall-clock fields.
type LocalTime struct {
	t time.Time
}

// StorageTime is the same kind of instant expressed in UTC for persistence.
type StorageTime struct {
	t time.Time
}

// Now returns the current instant as Vietnam wall-clock time, independent of
// the host timezone.
func Now() LocalTime {
	return LocalTime{time.Now().In(Vietnam)}
}

// NewLocal tags an instant as local. The instant itself is unchanged; only
// its wall-clock rendering is fixed to UTC+7.
func NewLocal(t time.Time) LocalTime {
	return LocalTime{t.In(Vietnam)}
}

// ToStorage converts a local instant to its UTC storage form.
func ToStorage(lt LocalTime) StorageTime {
	return StorageTime{lt.t.UTC()}
}

// ToLocal converts a stored UTC instant back to the local form.
// ToLocal(ToStorage(x)) == x exactly, including sub-second precision.
func ToLocal(st StorageTime) LocalTime {
	return LocalTime{st.t.In(Vietnam)}
}

// FromUnixNano rebuilds a storage instant from persisted nanoseconds.
func FromUnixNano(ns int64) StorageTime {
	return StorageTime{time.Unix(0, ns).UTC()}
}

func (lt LocalTime) Time() time.Time               { return lt.t }
func (lt LocalTime) IsZero() bool                  { return lt.t.IsZero() }
func (lt LocalTime) Before(o LocalTime) bool       { return lt.t.Before(o.t) }
func (lt LocalTime) After(o LocalTime) bool        { return lt.t.After(o.t) }
func (lt LocalTime) Equal(o LocalTime) bool        { return lt.t.Equal(o.t) }
func (lt LocalTime) Add(d time.Duration) LocalTime { return LocalTime{lt.t.Add(d)} }
func (lt LocalTime) AddDate(y, m, d int) LocalTime { return LocalTime{lt.t.AddDate(y, m, d)} }
func (lt LocalTime) Format(layout string) string   { return lt.t.Format(layout) }

// StartOfDay returns midnight of the local calendar day containing lt.
func (lt LocalTime) StartOfDay() LocalTime {
	y, m, d := lt.t.Date()
	return LocalTime{time.Date(y, m, d, 0, 0, 0, 0, Vietnam)}
}

// DayKey returns the local calendar day as dd-mm-yyyy, the grouping key used
// by task listings.
func (lt LocalTime) DayKey() string {
	return lt.t.Format("02-01-2006")
}

func (st StorageTime) Time() time.Time           { return st.t }
func (st StorageTime) IsZero() bool              { return st.t.IsZero() }
func (st StorageTime) Before(o StorageTime) bool { return st.t.Before(o.t) }
func (st StorageTime) After(o StorageTime) bool  { return st.t.After(o.t) }
func (st StorageTime) Equal(o StorageTime) bool  { return st.t.Equal(o.t) }
func (st StorageTime) UnixNano() int64           { return st.t.UnixNano() }

package events

// EventType distingue los festivos sembrados, los eventos manuales del
// calendario y los de seguimiento de minuta.
type EventType string

const (
	EventTypeHoliday EventType = "holiday"
	EventTypeCustom  EventType = "custom"
	EventTypeMinuta  EventType = "minuta"
)

// Paleta que consume el calendario del frontend.
const (
	ColorDefault = "bg-blue-100 text-blue-800"
	ColorMinuta  = "bg-purple-100 text-purple-800"
)

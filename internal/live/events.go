package live

import (
	"time"

	"musicschool/internal/catalog"
)

const (
	TypeResults  = "results"
	TypeError    = "error"
	TypeReset    = "reset"
	TypeReloaded = "catalog.reloaded"
)

// ReloadEvent tells live clients to re-send their criteria.
type ReloadEvent struct {
	Type    string    `json:"type"` // "catalog.reloaded"
	Courses int       `json:"courses"`
	Source  string    `json:"source"`
	At      time.Time `json:"at"`
}

func NewReloadEvent(cat *catalog.Catalog) ReloadEvent {
	return ReloadEvent{
		Type:    TypeReloaded,
		Courses: cat.Len(),
		Source:  cat.Source(),
		At:      cat.LoadedAt().UTC(),
	}
}

// BroadcastReloads wires store reloads to the hub.
func BroadcastReloads(store *catalog.Store, hub *Hub) {
	store.OnReload(func(cat *catalog.Catalog) {
		hub.BroadcastJSON(NewReloadEvent(cat))
	})
}

package entity

import "time"

// Booking representa una reserva leída del canal externo (Airbnb/Booking vía API).
// Es de solo lectura para el motor de spot check: se consume tal cual llega y
// nunca se persiste localmente.
type Booking struct {
	ID       string
	Guests   int    // número de huéspedes (>= 0)
	Nights   int    // noches de la estadía (>= 0)
	RoomType string // etiqueta libre del canal, se mapea a PropertyType
	CheckIn  time.Time
}

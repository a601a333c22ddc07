package entity

import "time"

// PersonIdentity is the identity record shared by patients and doctors.
// IDKey is the formatted national ID and is the lookup key; the core never
// re-derives the formatting (see pkg/natid).
type PersonIdentity struct {
	Name      string    `json:"name"`
	IDKey     string    `json:"id_key"`
	BirthDate time.Time `json:"birth_date"`
}

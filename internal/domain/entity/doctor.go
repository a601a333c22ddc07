package entity

import "github.com/google/uuid"

// Doctor composes the same identity fields as a patient plus its license
// number and specialty. License is unique across doctors and is the lookup
// key.
type Doctor struct {
	ID        uuid.UUID      `json:"id"`
	Identity  PersonIdentity `json:"identity"`
	License   string         `json:"license"`
	Specialty string         `json:"specialty"`
}

// Package models содержит доменные структуры административной панели.
package models

import "time"

// Group — группа подписок, хранимая во внешнем key/value хранилище
// под ключом "group:<name>" в виде JSON.
type Group struct {
	Name        string    `json:"name" validate:"required,min=2,max=64"`
	Description string    `json:"description" validate:"max=512"`
	Sources     []string  `json:"sources" validate:"dive,required,max=1024"`
	Filters     []string  `json:"filters" validate:"dive,max=256"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Package entity contains the core business objects of the project.
package entity

import "time"

// Owner represents a pet owner (dueño). Field names follow the public API,
// which speaks Spanish.
type Owner struct {
	ID            int64     `json:"id"`
	Nombre        string    `json:"nombre"`
	Apellido      string    `json:"apellido"`
	Email         string    `json:"email"`
	Telefono      string    `json:"telefono"`
	Direccion     string    `json:"direccion"`
	Ciudad        string    `json:"ciudad"`
	FechaCreacion time.Time `json:"fecha_creacion"`
}

package entity

import "time"

// Pet represents a tracked pet (mascota). Imagen carries the optional photo as
// an opaque base64 payload; the backend never decodes it.
type Pet struct {
	ID              int64      `json:"id"`
	Nombre          string     `json:"nombre"`
	Peso            float64    `json:"peso"`
	Edad            int        `json:"edad"`
	Especie         string     `json:"especie"`
	Raza            string     `json:"raza"`
	Imagen          string     `json:"imagen,omitempty"`
	FechaNacimiento *time.Time `json:"fecha_nacimiento,omitempty"`
	FechaCreacion   time.Time  `json:"fecha_creacion"`
	DuenoID         int64      `json:"dueño"`

	// DuenoInfo is populated on reads for API responses.
	DuenoInfo *Owner `json:"dueño_info,omitempty"`

	// UltimaUbicacion is the pet's latest GPS sample, attached on reads when
	// one exists.
	UltimaUbicacion *Location `json:"ultima_ubicacion,omitempty"`
}

package dto

// CategoriaRequest cuerpo de creación/actualización de categoría.
type CategoriaRequest struct {
	Nombre      string `json:"nombre" validate:"required"`
	Descripcion string `json:"descripcion"`
}

// CategoriaResponse categoría para la API.
type CategoriaResponse struct {
	ID          int64  `json:"id_categoria"`
	Nombre      string `json:"nombre"`
	Descripcion string `json:"descripcion,omitempty"`
}

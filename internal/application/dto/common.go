package dto

// ErrorResponse formato uniforme de error para la API.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// DataResponse envoltorio { data: ... } para respuestas de lectura.
type DataResponse struct {
	Data any `json:"data"`
}

// ListResponse listado paginado.
type ListResponse struct {
	Data   any `json:"data"`
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}

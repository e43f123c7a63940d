package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrUnauthorized = errors.New("no autorizado")

	// Normalización de cantidades.
	ErrInvalidQuantity        = errors.New("cantidad o precio inválido")
	ErrUnitNotConfigured      = errors.New("la unidad no está configurada para el ítem")
	ErrConversionPathNotFound = errors.New("no existe ruta de conversión hacia la unidad base")
)

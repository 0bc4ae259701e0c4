package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"hotel-reservas/apierrors"
)

func JSONSuccess(c *gin.Context, code int, data interface{}) {
	c.JSON(code, gin.H{"success": true, "data": data})
}

func JSONError(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"success": false, "error": message})
}

// WriteError traduce la taxonomía de errores a códigos HTTP. Cualquier
// error fuera de la taxonomía se responde como fallo interno genérico.
func WriteError(c *gin.Context, err error) {
	var apiErr *apierrors.Error
	if !errors.As(err, &apiErr) {
		log.Error().Err(err).Str("path", c.Request.URL.Path).Msg("unhandled error")
		JSONError(c, http.StatusInternalServerError, "error interno del servidor")
		return
	}

	switch apiErr.Kind {
	case apierrors.KindBadRequest:
		JSONError(c, http.StatusBadRequest, apiErr.Message)
	case apierrors.KindNotFound:
		JSONError(c, http.StatusNotFound, apiErr.Message)
	case apierrors.KindConflict:
		JSONError(c, http.StatusConflict, apiErr.Message)
	case apierrors.KindValidation:
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   apiErr.Message,
			"fields":  apiErr.Fields,
		})
	default:
		JSONError(c, http.StatusInternalServerError, "error interno del servidor")
	}
}

package httperr

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type HTTPError struct {
	Code    string `json:"error_code"`
	Message string `json:"message"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func NotFound(c *gin.Context, code, message string) {
	Write(c, http.StatusNotFound, code, message)
}

func Conflict(c *gin.Context, code, message string) {
	Write(c, http.StatusConflict, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

func Unauthorized(c *gin.Context, code, message string) {
	Write(c, http.StatusUnauthorized, code, message)
}

// FromBusiness mapeia erros de negócio conhecidos para o status HTTP
// correspondente; qualquer outro erro vira 500 genérico.
func FromBusiness(c *gin.Context, err error, fallbackMsg string) {
	code, ok := BusinessCode(err)
	if !ok {
		Internal(c, "internal_error", fallbackMsg)
		return
	}

	switch code {
	case "not_found":
		NotFound(c, code, "Registro não encontrado.")
	case "time_conflict":
		Conflict(c, code, "Conflito com outro agendamento.")
	case "time_block_conflict":
		Conflict(c, code, "Horário bloqueado na agenda.")
	case "duplicate_pending_request":
		Conflict(c, code, "Já existe uma solicitação pendente.")
	case "invalid_transition":
		BadRequest(c, code, "Mudança de status inválida.")
	case "too_soon":
		BadRequest(c, code, "Horário abaixo da antecedência mínima do salão.")
	default:
		BadRequest(c, code, fallbackMsg)
	}
}

package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/bellestudio/salon-agenda/internal/httperr"
)

func parseID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}

// writeBusinessError mapeia erros de negócio para 400 com o
// código como mensagem mais específica; qualquer outro erro vira
// 500 com o fallback genérico.
func writeBusinessError(c *gin.Context, err error, fallback string) {
	if code, ok := httperr.BusinessCode(err); ok {
		httperr.BadRequest(c, code, businessMessage(code, fallback))
		return
	}
	httperr.Internal(c, "internal_error", fallback)
}

func businessMessage(code, fallback string) string {
	switch code {
	case "client_not_found":
		return "Cliente não encontrado."
	case "professional_not_found":
		return "Profissional não encontrada."
	case "service_not_found":
		return "Serviço não encontrado."
	case "appointment_not_found":
		return "Agendamento não encontrado."
	case "payment_not_found":
		return "Pagamento não encontrado."
	case "service_not_in_specialties":
		return "A profissional selecionada não atende esse tipo de serviço."
	case "appointment_canceled":
		return "Agendamento cancelado não pode ser editado."
	case "appointment_already_paid":
		return "Este agendamento já tem um pagamento registrado."
	case "payment_already_canceled":
		return "Este pagamento já foi cancelado."
	case "payment_canceled":
		return "Pagamento cancelado não pode ser editado."
	case "invalid_status":
		return "Status inválido."
	case "invalid_state":
		return "Ação não permitida no status atual."
	case "invalid_payment_method":
		return "Método de pagamento inválido."
	case "invalid_amount":
		return "Valor inválido."
	}
	return fallback
}

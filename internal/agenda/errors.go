package agenda

import (
	"errors"
	"fmt"
)

// Erros locais do fluxo interativo.
var (
	// ErrConfirmationDeclined indica que a operadora não confirmou
	// o toggle de cancelamento; nada foi enviado ao servidor.
	ErrConfirmationDeclined = errors.New("agenda: confirmation declined")

	// ErrServiceUnavailable indica tentativa de escolher um serviço
	// fora do conjunto filtrado pela profissional selecionada.
	ErrServiceUnavailable = errors.New("agenda: service not available for professional")

	// ErrIncompleteForm indica envio de formulário sem os campos
	// obrigatórios preenchidos.
	ErrIncompleteForm = errors.New("agenda: form is incomplete")
)

// APIError é uma resposta não-2xx do servidor. Message carrega a
// mensagem do servidor quando ela existe; o texto genérico fica
// por conta de quem exibe.
type APIError struct {
	Status  int
	Code    string
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Code != "" {
		return e.Code
	}
	return fmt.Sprintf("request failed with status %d", e.Status)
}

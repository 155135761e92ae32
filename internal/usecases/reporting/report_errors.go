package reporting

import (
	"errors"
	"fmt"
)

// Erros específicos para o relatório
var (
	ErrSectionOutOfRange  = errors.New("section index out of range")
	ErrDatasetUnavailable = errors.New("no dataset loaded")
	ErrDatasetInvalid     = errors.New("dataset failed validation")
	ErrDatasetLoad        = errors.New("error loading dataset")
)

// ReportError é um erro com o código da API e detalhes adicionais
type ReportError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	Details string // Detalhes adicionais
}

// Error implementa a interface error
func (e *ReportError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *ReportError) Unwrap() error {
	return e.Err
}

func NewReportError(err error, code string, details string) *ReportError {
	return &ReportError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}

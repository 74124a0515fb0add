package loading

import (
	"errors"
	"fmt"
)

// Erros específicos do carregamento da tabela de vendas
var (
	// Falhas que interrompem o dashboard
	ErrFileNotFound = errors.New("sales file not found")
	ErrEmptyData    = errors.New("sales file is empty or has no columns")

	// Falhas de formato dos dados
	ErrMissingColumn = errors.New("required column missing")
	ErrInvalidDate   = errors.New("invalid date value")
	ErrMalformedFile = errors.New("malformed sales file")

	// Falhas da fonte alternativa
	ErrSourceUnavailable = errors.New("sales source unavailable")
)

// Códigos usados na resposta da API
const (
	CodeFileNotFound = "DATA_001"
	CodeEmptyData    = "DATA_002"
	CodeInvalidData  = "DATA_003"
	CodeSource       = "DATA_004"
)

// LoadError é um erro com contexto adicional sobre a carga
type LoadError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	Path    string // Arquivo ou fonte envolvida
	Line    int    // Linha do arquivo (quando aplicável)
	Details string // Detalhes adicionais
}

// Error implementa a interface error
func (e *LoadError) Error() string {
	msg := e.Err.Error()
	if e.Path != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.Path)
	}
	if e.Line > 0 {
		msg = fmt.Sprintf("%s (linha %d)", msg, e.Line)
	}
	if e.Details != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.Details)
	}
	return msg
}

// Unwrap retorna o erro subjacente
func (e *LoadError) Unwrap() error {
	return e.Err
}

// NewLoadError cria um novo LoadError
func NewLoadError(err error, code string, path string, details string) *LoadError {
	return &LoadError{
		Err:     err,
		Code:    code,
		Path:    path,
		Details: details,
	}
}

// NewLoadErrorAtLine cria um novo LoadError apontando a linha do arquivo
func NewLoadErrorAtLine(err error, code string, path string, line int, details string) *LoadError {
	return &LoadError{
		Err:     err,
		Code:    code,
		Path:    path,
		Line:    line,
		Details: details,
	}
}

// UserMessage retorna a mensagem exibida ao usuário para uma falha de carga
func UserMessage(err error, path string) string {
	var loadErr *LoadError
	if errors.As(err, &loadErr) && loadErr.Path != "" {
		path = loadErr.Path
	}

	switch {
	case errors.Is(err, ErrFileNotFound):
		return fmt.Sprintf("Error: File '%s' tidak ditemukan. Pastikan CSV ada di folder yang sama.", path)
	case errors.Is(err, ErrEmptyData):
		return fmt.Sprintf("Error: File '%s' kosong atau tidak memiliki kolom.", path)
	case errors.Is(err, ErrMissingColumn), errors.Is(err, ErrInvalidDate), errors.Is(err, ErrMalformedFile):
		return fmt.Sprintf("Error: File '%s' tidak dapat dibaca: %s", path, err.Error())
	default:
		return fmt.Sprintf("Error: Data penjualan tidak dapat dimuat: %s", err.Error())
	}
}

// ErrorCode retorna o código de API correspondente ao erro
func ErrorCode(err error) string {
	var loadErr *LoadError
	if errors.As(err, &loadErr) && loadErr.Code != "" {
		return loadErr.Code
	}

	switch {
	case errors.Is(err, ErrFileNotFound):
		return CodeFileNotFound
	case errors.Is(err, ErrEmptyData):
		return CodeEmptyData
	case errors.Is(err, ErrMissingColumn), errors.Is(err, ErrInvalidDate), errors.Is(err, ErrMalformedFile):
		return CodeInvalidData
	default:
		return CodeSource
	}
}

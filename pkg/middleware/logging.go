package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/vfg2006/sales-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/sales-dashboard-api/pkg/log"
	"github.com/vfg2006/sales-dashboard-api/pkg/utils"
)

const slowRequestThreshold = 500 * time.Millisecond

// Parâmetros de seleção do dashboard registrados junto com a requisição
var selectionParams = []string{"region", "product"}

// LoggingMiddleware registra o fim de cada requisição com a seleção do
// dashboard, o status e o tamanho da resposta
func LoggingMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, _ := log.WithCorrelationID(r.Context())
			r = r.WithContext(ctx)

			rw := newResponseRecorder(w)
			startTime := time.Now()

			next.ServeHTTP(rw, r)

			elapsed := time.Since(startTime)
			fields := requestFields(r)
			fields["status_code"] = rw.statusCode
			fields["bytes_written"] = rw.bytesWritten
			fields["duration_ms"] = elapsed.Milliseconds()
			if contentType := rw.Header().Get("Content-Type"); contentType != "" {
				fields["content_type"] = contentType
			}

			logger := log.ForContext(ctx).WithFields(fields)
			message := completionMessage(r, rw, elapsed)

			switch {
			case rw.statusCode >= http.StatusInternalServerError:
				logger.Error(message)
			case rw.statusCode >= http.StatusBadRequest:
				logger.Warn(message)
			default:
				logger.Info(message)
			}

			if elapsed > slowRequestThreshold {
				logger.Warnf("Requisição lenta: %s", formatDuration(elapsed))
			}
		})
	}
}

// requestFields monta os campos da requisição; a seleção só entra quando informada
func requestFields(r *http.Request) log.Fields {
	fields := log.Fields{
		"method": r.Method,
		"path":   r.URL.Path,
	}

	query := r.URL.Query()
	for _, param := range selectionParams {
		if value := query.Get(param); value != "" {
			fields[param] = value
		}
	}

	if !log.IsDevelopment() {
		fields["remote_addr"] = r.RemoteAddr
		fields["user_agent"] = r.UserAgent()
		fields["referer"] = r.Referer()
	}

	return fields
}

func completionMessage(r *http.Request, rw *responseRecorder, elapsed time.Duration) string {
	if !log.IsDevelopment() {
		return "Requisição finalizada"
	}

	symbol := "✓"
	if rw.statusCode >= http.StatusBadRequest {
		symbol = "✗"
	}
	return fmt.Sprintf("%s %s %s %d em %s (%s)",
		symbol, r.Method, r.URL.Path, rw.statusCode, formatDuration(elapsed), utils.FormatBytes(uint64(rw.bytesWritten)))
}

// formatDuration formata a duração de forma humana
func formatDuration(d time.Duration) string {
	switch {
	case d < time.Millisecond:
		return fmt.Sprintf("%d µs", d.Microseconds())
	case d < time.Second:
		return fmt.Sprintf("%d ms", d.Milliseconds())
	default:
		return fmt.Sprintf("%.2f s", d.Seconds())
	}
}

// responseRecorder captura o status e a quantidade de bytes enviados
type responseRecorder struct {
	http.ResponseWriter
	statusCode   int
	bytesWritten int
}

func newResponseRecorder(w http.ResponseWriter) *responseRecorder {
	return &responseRecorder{ResponseWriter: w, statusCode: http.StatusOK}
}

func (rw *responseRecorder) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func (rw *responseRecorder) Write(b []byte) (int, error) {
	n, err := rw.ResponseWriter.Write(b)
	rw.bytesWritten += n
	return n, err
}

// LogPanicMiddleware recupera panics, registra a pilha e responde com o envelope de erro da API
func LogPanicMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				recovered := recover()
				if recovered == nil {
					return
				}

				logger := log.ForContext(r.Context()).WithFields(requestFields(r))
				logger.WithError(fmt.Errorf("panic: %v", recovered)).
					WithField("stack_trace", string(debug.Stack())).
					Error("Erro não tratado na aplicação")

				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno no servidor", nil)
			}()

			next.ServeHTTP(w, r)
		})
	}
}

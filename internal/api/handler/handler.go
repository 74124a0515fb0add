package handler

import (
	"bytes"
	"errors"
	"net/http"
	"net/url"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/loading"
	"github.com/vfg2006/sales-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/sales-dashboard-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	queryRegion  = "region"
	queryProduct = "product"
)

// selectionFromRequest lê a seleção da query string; parâmetros ausentes valem "all"
func selectionFromRequest(r *http.Request) domain.FilterSelection {
	query := r.URL.Query()
	return domain.NewFilterSelection(query.Get(queryRegion), query.Get(queryProduct))
}

// selectionQuery monta a query string equivalente à seleção
func selectionQuery(selection domain.FilterSelection) string {
	values := url.Values{}
	values.Set(queryRegion, selection.Region)
	values.Set(queryProduct, selection.Product)
	return values.Encode()
}

// writeJSON codifica a resposta inteira antes de enviar o status
func writeJSON(w http.ResponseWriter, r *http.Request, status int, payload any) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(payload); err != nil {
		log.ForContext(r.Context()).WithError(err).Error("Erro ao codificar resposta")
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao gerar resposta", nil)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		log.ForContext(r.Context()).WithError(err).Warn("Erro ao enviar resposta")
	}
}

// writeLoadError responde uma falha de carga com o envelope padrão da API
func writeLoadError(w http.ResponseWriter, r *http.Request, err error, source string) {
	code := loading.ErrorCode(err)

	log.ForContext(r.Context()).WithFields(log.Fields{
		"source": source,
		"error":  err.Error(),
	}).Warn("Requisição interrompida por falha na carga dos dados")

	apiErrors.WriteError(w, code, loading.UserMessage(err, source), loadErrorDetails(err))
}

func loadErrorDetails(err error) map[string]any {
	var loadErr *loading.LoadError
	if !errors.As(err, &loadErr) {
		return nil
	}

	details := map[string]any{}
	if loadErr.Path != "" {
		details["path"] = loadErr.Path
	}
	if loadErr.Line > 0 {
		details["line"] = loadErr.Line
	}
	if loadErr.Details != "" {
		details["details"] = loadErr.Details
	}
	if len(details) == 0 {
		return nil
	}
	return details
}

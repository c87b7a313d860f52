package http

import (
	"encoding/json"
	"fmt"
	"html/template"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"vendas/internal/core"
	"vendas/internal/ledger"
)

func (s *Server) handleCreateSale(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", "POST")
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if err := r.ParseForm(); err != nil {
		slog.ErrorContext(r.Context(), "Parse form error", "error", err, "method", r.Method, "url", r.URL.Path)
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`<div class="error">Formato de requisição inválido</div>`))
		return
	}

	amountStr := strings.TrimSpace(r.Form.Get("amount"))
	sourceStr := strings.TrimSpace(r.Form.Get("source"))
	desc := sanitizeInput(r.Form.Get("description"))
	dateStr := strings.TrimSpace(r.Form.Get("date"))

	cents, err := core.ParseDecimalToCents(amountStr)
	if err != nil {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`<div class="error">Valor inválido</div>`))
		return
	}

	source, err := core.ParseSource(sourceStr)
	if err != nil {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`<div class="error">Origem inválida</div>`))
		return
	}

	var date core.Date
	if dateStr != "" {
		date, err = core.ParseDate(dateStr)
		if err != nil {
			w.WriteHeader(http.StatusUnprocessableEntity)
			_, _ = w.Write([]byte(`<div class="error">Data inválida</div>`))
			return
		}
	}

	sale, err := s.service.RecordSale(r.Context(), ledger.AddSale{
		Value:       core.Money{Cents: cents},
		Source:      source,
		Description: desc,
		Date:        date,
	})
	if err != nil {
		slog.ErrorContext(r.Context(), "Failed to record sale",
			"error", err,
			"value_cents", cents,
			"source", sourceStr)
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`<div class="error">Erro ao salvar a venda</div>`))
		return
	}

	successMsg := fmt.Sprintf("Venda registrada: %s - %s (%s)",
		template.HTMLEscapeString(sale.Source.Label()),
		template.HTMLEscapeString(formatBRL(sale.Value.Cents)),
		template.HTMLEscapeString(sale.Date.String()))

	w.Header().Set("HX-Trigger", fmt.Sprintf(`{
		"form:reset": {},
		"sale:changed": {},
		"show-notification": {"type": "success", "message": "%s", "duration": 3000}
	}`, template.JSEscapeString(successMsg)))

	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`<div class="success">` + successMsg + `</div>`))
}

func (s *Server) handleDeleteSale(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodDelete && r.Method != http.MethodPost {
		w.Header().Set("Allow", "DELETE, POST")
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	id := s.saleIDFromRequest(w, r)
	if id == "" {
		return
	}

	if err := s.service.DeleteSale(r.Context(), id); err != nil {
		slog.ErrorContext(r.Context(), "Failed to delete sale", "error", err, "sale_id", id)
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`<div class="error">Erro ao excluir a venda</div>`))
		return
	}

	w.Header().Set("HX-Trigger", `{"sale:changed": {}}`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(""))
}

// saleIDFromRequest pulls the sale id out of a JSON body or form data.
// Writes the error response and returns "" when no id can be found.
func (s *Server) saleIDFromRequest(w http.ResponseWriter, r *http.Request) string {
	contentType := r.Header.Get("Content-Type")

	if strings.Contains(contentType, "application/json") {
		body, err := io.ReadAll(r.Body)
		if err != nil {
			slog.ErrorContext(r.Context(), "Read body error", "error", err, "method", r.Method, "url", r.URL.Path)
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`<div class="error">Erro de leitura da requisição</div>`))
			return ""
		}
		var payload map[string]interface{}
		if err := json.Unmarshal(body, &payload); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`<div class="error">JSON inválido</div>`))
			return ""
		}
		if id, ok := payload["id"].(string); ok && strings.TrimSpace(id) != "" {
			return strings.TrimSpace(id)
		}
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`<div class="error">Identificador ausente</div>`))
		return ""
	}

	if err := r.ParseForm(); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`<div class="error">Formato de requisição inválido</div>`))
		return ""
	}
	id := strings.TrimSpace(r.Form.Get("id"))
	if id == "" {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`<div class="error">Identificador ausente</div>`))
		return ""
	}
	return id
}

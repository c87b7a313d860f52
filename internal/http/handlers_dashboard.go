package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"vendas/internal/core"
	"vendas/internal/ledger"
)

// handleIndex renders the dashboard page.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if s.templates == nil {
		slog.ErrorContext(r.Context(), "Templates not loaded")
		http.Error(w, "templates not loaded", http.StatusInternalServerError)
		return
	}

	type sourceOption struct {
		Tag   string
		Label string
	}
	var options []sourceOption
	for _, src := range core.Sources() {
		options = append(options, sourceOption{Tag: string(src), Label: src.Label()})
	}

	data := struct {
		Sources []sourceOption
	}{Sources: options}

	if err := s.templates.ExecuteTemplate(w, "dashboard_page", data); err != nil {
		slog.ErrorContext(r.Context(), "Dashboard template execution failed", "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// handleStats returns the stats cards partial: daily, monthly, quarterly
// and selected-period totals.
func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", "GET")
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	months := parseMonths(r)
	data := struct {
		Daily   string
		Monthly string
		Quarter string
		Period  string
		Months  int
	}{
		Daily:   formatBRL(s.ledger.DailyTotal().Cents),
		Monthly: formatBRL(s.ledger.MonthlyTotal().Cents),
		Quarter: formatBRL(s.ledger.PeriodTotal(3).Cents),
		Period:  formatBRL(s.ledger.PeriodTotal(months).Cents),
		Months:  months,
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.templates.ExecuteTemplate(w, "stats_cards", data); err != nil {
		slog.ErrorContext(r.Context(), "Stats template failed", "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// handleHistory returns the chronological sales list partial for the
// selected period, newest first.
func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", "GET")
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	months := parseMonths(r)

	type row struct {
		ID          string
		Value       string
		SourceLabel string
		ColorClass  string
		Description string
		Date        string
	}
	var rows []row
	for _, sale := range s.ledger.SalesInPeriod(months) {
		rows = append(rows, row{
			ID:          sale.ID,
			Value:       formatBRL(sale.Value.Cents),
			SourceLabel: sale.Source.Label(),
			ColorClass:  sale.Source.ColorClass(),
			Description: sale.Description,
			Date:        sale.Date.Format("02/01/2006"),
		})
	}

	data := struct {
		Sales  []row
		Months int
	}{Sales: rows, Months: months}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.templates.ExecuteTemplate(w, "sales_history", data); err != nil {
		slog.ErrorContext(r.Context(), "History template failed", "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// handleChartData returns the monthly revenue trend series as JSON for the
// dashboard chart.
func (s *Server) handleChartData(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", "GET")
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	months := parseMonths(r)
	buckets := s.ledger.MonthlyBuckets(months)

	series := struct {
		Labels     []string  `json:"labels"`
		FullLabels []string  `json:"fullLabels"`
		Values     []float64 `json:"values"`
	}{
		Labels:     make([]string, len(buckets)),
		FullLabels: make([]string, len(buckets)),
		Values:     make([]float64, len(buckets)),
	}
	for i, b := range buckets {
		series.Labels[i] = b.Label()
		series.FullLabels[i] = b.FullLabel()
		series.Values[i] = b.Total.Reais()
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(series); err != nil {
		slog.ErrorContext(r.Context(), "Chart data encode failed", "error", err)
	}
}

// handleHealth performs a basic liveness check.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	health := map[string]interface{}{
		"status":    "ok",
		"timestamp": time.Now().Format(time.RFC3339),
		"uptime":    time.Since(s.startedAt).String(),
	}
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(health)
}

// handleReady verifies the snapshot store and templates are usable.
func (s *Server) handleReady(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	status := "ready"
	httpStatus := http.StatusOK
	checks := make(map[string]interface{})

	if s.templates == nil {
		checks["templates"] = "failed: templates not loaded"
		status = "not_ready"
		httpStatus = http.StatusServiceUnavailable
	} else {
		checks["templates"] = "ok"
	}

	if _, _, err := s.store.Read(r.Context(), ledger.SnapshotKey); err != nil {
		checks["snapshot_store"] = "failed: " + err.Error()
		status = "not_ready"
		httpStatus = http.StatusServiceUnavailable
	} else {
		checks["snapshot_store"] = "ok"
	}

	response := map[string]interface{}{
		"status":    status,
		"timestamp": time.Now().Format(time.RFC3339),
		"checks":    checks,
	}
	w.WriteHeader(httpStatus)
	json.NewEncoder(w).Encode(response)
}

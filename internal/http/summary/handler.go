package summary

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/gisuarez/expenso/internal/http/auth"
	"github.com/gisuarez/expenso/internal/ledger"
)

type Handler struct {
	svc *ledger.Service
}

func NewHandler(svc *ledger.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.summary)
	r.Delete("/carryover", h.clearCarryover)
}

type summaryResponse struct {
	Month        string `json:"month"`
	MonthlyTotal string `json:"monthly_total"`
	Carryover    string `json:"carryover"`
	TotalDebt    string `json:"total_debt"`
}

func (h *Handler) summary(w http.ResponseWriter, r *http.Request) {
	u, ok := auth.UserFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	ref := time.Now()

	if s := r.URL.Query().Get("month"); s != "" {
		t, err := time.Parse("2006-01", s)
		if err != nil {
			http.Error(w, "invalid month, want YYYY-MM", http.StatusBadRequest)
			return
		}

		ref = t
	}

	sum, err := h.svc.Summarize(r.Context(), u.ID, ref)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(summaryResponse{
		Month:        sum.Month.Format("2006-01"),
		MonthlyTotal: sum.MonthlyTotal.String(),
		Carryover:    sum.Carryover.String(),
		TotalDebt:    sum.TotalDebt.String(),
	}); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) clearCarryover(w http.ResponseWriter, r *http.Request) {
	u, ok := auth.UserFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	if err := h.svc.ClearCarryover(r.Context(), u.ID); err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/Werneck0live/gestao-terceirizados/internal/models"
	"github.com/Werneck0live/gestao-terceirizados/internal/repository"
	"github.com/Werneck0live/gestao-terceirizados/internal/utils"
)

type DashboardHandler struct {
	Stats repository.StatsSource
	Now   func() time.Time
}

// Get responde as contagens do dia corrente (horário local do servidor).
func (h *DashboardHandler) Get(w http.ResponseWriter, r *http.Request) {
	now := time.Now
	if h.Now != nil {
		now = h.Now
	}
	today := now().Format(models.DateLayout)

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()
	stats, err := h.Stats.Stats(ctx, today)
	if err != nil {
		slog.Error("dashboard_failed", "err", err)
		utils.WriteError(w, http.StatusInternalServerError, err.Error())
		return
	}
	utils.WriteJSON(w, http.StatusOK, stats)
}

func Root(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, http.StatusOK, map[string]string{"message": "Sistema de Terceirização de Serviços"})
}

func Health(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

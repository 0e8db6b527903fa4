package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/Werneck0live/gestao-terceirizados/internal/broker"
	"github.com/Werneck0live/gestao-terceirizados/internal/models"
	"github.com/Werneck0live/gestao-terceirizados/internal/repository"
	"github.com/Werneck0live/gestao-terceirizados/internal/utils"
)

type Publisher interface {
	Publish(ctx context.Context, ev broker.Event) error
}

// Resource atende GET/POST de uma coleção. T é o registro gravado,
// In é o corpo aceito no POST.
type Resource[T any, In any] struct {
	Kind     models.Kind
	Repo     repository.Repo[T]
	Pub      Publisher
	NotFound string
	Timeout  time.Duration

	validate func(*In) error
	build    func(models.Meta, In) T
	label    func(In) string

	now   func() time.Time
	newID func() string
}

func NewResource[T any, In any](
	kind models.Kind,
	repo repository.Repo[T],
	pub Publisher,
	validate func(*In) error,
	build func(models.Meta, In) T,
	label func(In) string,
) *Resource[T, In] {
	return &Resource[T, In]{
		Kind:     kind,
		Repo:     repo,
		Pub:      pub,
		NotFound: "not found",
		Timeout:  5 * time.Second,
		validate: validate,
		build:    build,
		label:    label,
		now:      time.Now,
		newID:    uuid.NewString,
	}
}

func (h *Resource[T, In]) setTimeout(d time.Duration) {
	if d > 0 {
		h.Timeout = d
	}
}

func (h *Resource[T, In]) List(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.Timeout)
	defer cancel()

	list, err := h.Repo.GetAll(ctx, repository.MaxList)
	if err != nil {
		slog.Error("list_failed", "kind", h.Kind, "err", err)
		utils.WriteError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if list == nil {
		list = []T{}
	}
	utils.WriteJSON(w, http.StatusOK, list)
}

func (h *Resource[T, In]) Create(w http.ResponseWriter, r *http.Request) {
	var in In
	if err := utils.DecodeStrict(r.Body, &in); err != nil {
		utils.BadRequest(w, utils.FormatDecodeError(err))
		return
	}
	if h.validate != nil {
		if err := h.validate(&in); err != nil {
			utils.Unprocessable(w, err)
			return
		}
	}

	meta := models.Meta{ID: h.newID(), CreatedAt: h.now().UTC()}
	doc := h.build(meta, in)

	ctx, cancel := context.WithTimeout(r.Context(), h.Timeout)
	defer cancel()
	if err := h.Repo.Create(ctx, &doc); err != nil {
		if errors.Is(err, repository.ErrDuplicateID) {
			utils.WriteError(w, http.StatusConflict, "id already exists")
			return
		}
		slog.Error("create_failed", "kind", h.Kind, "err", err)
		utils.WriteError(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.publishEvent(meta.ID, h.label(in))
	utils.WriteJSON(w, http.StatusCreated, doc)
}

func (h *Resource[T, In]) Get(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	ctx, cancel := context.WithTimeout(r.Context(), h.Timeout)
	defer cancel()
	doc, err := h.Repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			utils.WriteError(w, http.StatusNotFound, h.NotFound)
			return
		}
		utils.WriteError(w, http.StatusInternalServerError, err.Error())
		return
	}
	utils.WriteJSON(w, http.StatusOK, doc)
}

// falha na publicação só é logada; o cadastro já foi gravado
func (h *Resource[T, In]) publishEvent(id, nome string) {
	if h.Pub == nil {
		return
	}
	ev := broker.NewCadastro(h.Kind, id, nome)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := h.Pub.Publish(ctx, ev); err != nil {
		slog.Warn("publish_failed", "kind", h.Kind, "id", id, "err", err)
	}
}

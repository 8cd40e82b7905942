package project

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/frahmantamala/employee-management/internal"
	"github.com/frahmantamala/employee-management/internal/transport"
	"github.com/frahmantamala/employee-management/pkg/logger"
	"github.com/go-chi/chi"
)

type ServiceAPI interface {
	GetAll() ([]*Project, error)
	GetByID(id int64) (*Project, error)
	Create(dto ProjectDTO) error
	Update(id int64, dto ProjectDTO) error
	Delete(id int64) error
	CountAll() (int64, error)
	CountInProgress() (int64, error)
	CountToDo() (int64, error)
}

type Handler struct {
	*transport.BaseHandler
	Service ServiceAPI
}

func NewHandler(service ServiceAPI) *Handler {
	lg := logger.LoggerWrapper()
	if lg == nil {
		lg = slog.Default()
	}
	return &Handler{
		BaseHandler: transport.NewBaseHandler(lg),
		Service:     service,
	}
}

func (h *Handler) GetProjects(w http.ResponseWriter, r *http.Request) {
	projects, err := h.Service.GetAll()
	if err != nil {
		h.Logger.Error("GetProjects: service error", "error", err)
		h.WriteError(w, http.StatusInternalServerError, "Get projects error in query")
		return
	}

	h.WriteResult(w, projects)
}

func (h *Handler) GetProject(w http.ResponseWriter, r *http.Request) {
	id, err := h.idParam(r)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid project ID")
		return
	}

	p, err := h.Service.GetByID(id)
	if err != nil {
		h.Logger.Error("GetProject: service error", "error", err, "id", id)
		h.WriteError(w, http.StatusInternalServerError, "Get project error in query")
		return
	}

	result := []*Project{}
	if p != nil {
		result = append(result, p)
	}
	h.WriteResult(w, result)
}

func (h *Handler) CreateProject(w http.ResponseWriter, r *http.Request) {
	var dto ProjectDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.Service.Create(dto); err != nil {
		h.Logger.Error("CreateProject: service error", "error", err, "name", dto.Name)
		if appErr, ok := internal.IsAppError(err); ok {
			h.WriteError(w, appErr.StatusCode, appErr.Message)
			return
		}
		h.WriteError(w, http.StatusInternalServerError, "Inside project query")
		return
	}

	h.WriteSuccess(w)
}

func (h *Handler) UpdateProject(w http.ResponseWriter, r *http.Request) {
	id, err := h.idParam(r)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid project ID")
		return
	}

	var dto ProjectDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.Service.Update(id, dto); err != nil {
		h.Logger.Error("UpdateProject: service error", "error", err, "id", id)
		if appErr, ok := internal.IsAppError(err); ok {
			h.WriteError(w, appErr.StatusCode, appErr.Message)
			return
		}
		h.WriteError(w, http.StatusInternalServerError, "Update project error in query")
		return
	}

	h.WriteSuccess(w)
}

func (h *Handler) DeleteProject(w http.ResponseWriter, r *http.Request) {
	id, err := h.idParam(r)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid project ID")
		return
	}

	if err := h.Service.Delete(id); err != nil {
		h.Logger.Error("DeleteProject: service error", "error", err, "id", id)
		h.WriteError(w, http.StatusInternalServerError, "Delete project error in query")
		return
	}

	h.WriteSuccess(w)
}

func (h *Handler) ProjectCount(w http.ResponseWriter, r *http.Request) {
	h.writeCount(w, "project", h.Service.CountAll)
}

// OpenProjectCount counts In Progress rows and ClosedProjectCount counts
// To Do rows; the dashboard has always labeled them this way.
func (h *Handler) OpenProjectCount(w http.ResponseWriter, r *http.Request) {
	h.writeCount(w, "openProjectCount", h.Service.CountInProgress)
}

func (h *Handler) ClosedProjectCount(w http.ResponseWriter, r *http.Request) {
	h.writeCount(w, "closeProjectCount", h.Service.CountToDo)
}

func (h *Handler) writeCount(w http.ResponseWriter, field string, count func() (int64, error)) {
	n, err := count()
	if err != nil {
		h.Logger.Error("count query failed", "field", field, "error", err)
		h.WriteError(w, http.StatusInternalServerError, "Error in running query")
		return
	}
	h.WriteJSON(w, http.StatusOK, []map[string]int64{{field: n}})
}

func (h *Handler) idParam(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}

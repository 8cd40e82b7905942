package employee

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/frahmantamala/employee-management/internal"
	"github.com/frahmantamala/employee-management/internal/transport"
	"github.com/frahmantamala/employee-management/pkg/logger"
	"github.com/go-chi/chi"
)

const maxUploadSize = 32 << 20

type ServiceAPI interface {
	GetAll() ([]*Employee, error)
	GetByID(id int64) (*Employee, error)
	Create(dto CreateEmployeeDTO, photo io.Reader, photoName string) error
	Update(id int64, dto UpdateEmployeeDTO) error
	Delete(id int64) error
	CountAll() (int64, error)
	CountFullTime() (int64, error)
	CountPartTime() (int64, error)
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

func (h *Handler) GetEmployees(w http.ResponseWriter, r *http.Request) {
	employees, err := h.Service.GetAll()
	if err != nil {
		h.Logger.Error("GetEmployees: service error", "error", err)
		h.WriteError(w, http.StatusInternalServerError, "Get employee error in query")
		return
	}

	h.WriteResult(w, employees)
}

// GetEmployee returns zero-or-one row under a success envelope; a missing
// id is not distinguished from an empty result.
func (h *Handler) GetEmployee(w http.ResponseWriter, r *http.Request) {
	id, err := h.idParam(r)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid employee ID")
		return
	}

	e, err := h.Service.GetByID(id)
	if err != nil {
		h.Logger.Error("GetEmployee: service error", "error", err, "id", id)
		h.WriteError(w, http.StatusInternalServerError, "Get employee error in query")
		return
	}

	result := []*Employee{}
	if e != nil {
		result = append(result, e)
	}
	h.WriteResult(w, result)
}

func (h *Handler) CreateEmployee(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		h.Logger.Error("CreateEmployee: invalid multipart form", "error", err)
		h.WriteError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	photo, header, err := r.FormFile("photo")
	if err != nil {
		h.Logger.Error("CreateEmployee: missing photo upload", "error", err)
		h.WriteError(w, http.StatusBadRequest, "photo is required")
		return
	}
	defer photo.Close()

	dto := CreateDTOFromForm(r)

	if err := h.Service.Create(dto, photo, header.Filename); err != nil {
		h.Logger.Error("CreateEmployee: service error", "error", err, "email", dto.Email)
		if appErr, ok := internal.IsAppError(err); ok {
			h.WriteError(w, appErr.StatusCode, appErr.Message)
			return
		}
		h.WriteError(w, http.StatusInternalServerError, "Inside signup query")
		return
	}

	h.WriteSuccess(w)
}

func (h *Handler) UpdateEmployee(w http.ResponseWriter, r *http.Request) {
	id, err := h.idParam(r)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid employee ID")
		return
	}

	var dto UpdateEmployeeDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.Service.Update(id, dto); err != nil {
		h.Logger.Error("UpdateEmployee: service error", "error", err, "id", id)
		if appErr, ok := internal.IsAppError(err); ok {
			h.WriteError(w, appErr.StatusCode, appErr.Message)
			return
		}
		h.WriteError(w, http.StatusInternalServerError, "Update employee error in query")
		return
	}

	h.WriteSuccess(w)
}

func (h *Handler) DeleteEmployee(w http.ResponseWriter, r *http.Request) {
	id, err := h.idParam(r)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid employee ID")
		return
	}

	if err := h.Service.Delete(id); err != nil {
		h.Logger.Error("DeleteEmployee: service error", "error", err, "id", id)
		h.WriteError(w, http.StatusInternalServerError, "Delete employee error in query")
		return
	}

	h.WriteSuccess(w)
}

// Count payloads keep the original dashboard's shape: a single-element
// array with a fixed field name per aggregate.
func (h *Handler) EmployeeCount(w http.ResponseWriter, r *http.Request) {
	h.writeCount(w, "employee", h.Service.CountAll)
}

func (h *Handler) FullTimeEmployeeCount(w http.ResponseWriter, r *http.Request) {
	h.writeCount(w, "fullTimeCount", h.Service.CountFullTime)
}

func (h *Handler) PartTimeEmployeeCount(w http.ResponseWriter, r *http.Request) {
	h.writeCount(w, "partTimeCount", h.Service.CountPartTime)
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

package ticket

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
	GetAll() ([]*Ticket, error)
	GetByID(id int64) (*Ticket, error)
	Create(dto TicketDTO) error
	Update(id int64, dto TicketDTO) error
	Delete(id int64) error
	CountAll() (int64, error)
	CountOpen() (int64, error)
	CountClosed() (int64, error)
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

func (h *Handler) GetTickets(w http.ResponseWriter, r *http.Request) {
	tickets, err := h.Service.GetAll()
	if err != nil {
		h.Logger.Error("GetTickets: service error", "error", err)
		h.WriteError(w, http.StatusInternalServerError, "Get tickets error in query")
		return
	}

	h.WriteResult(w, tickets)
}

func (h *Handler) GetTicket(w http.ResponseWriter, r *http.Request) {
	id, err := h.idParam(r)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid ticket ID")
		return
	}

	t, err := h.Service.GetByID(id)
	if err != nil {
		h.Logger.Error("GetTicket: service error", "error", err, "id", id)
		h.WriteError(w, http.StatusInternalServerError, "Get ticket error in query")
		return
	}

	result := []*Ticket{}
	if t != nil {
		result = append(result, t)
	}
	h.WriteResult(w, result)
}

func (h *Handler) CreateTicket(w http.ResponseWriter, r *http.Request) {
	var dto TicketDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.Service.Create(dto); err != nil {
		h.Logger.Error("CreateTicket: service error", "error", err, "title", dto.Title)
		if appErr, ok := internal.IsAppError(err); ok {
			h.WriteError(w, appErr.StatusCode, appErr.Message)
			return
		}
		h.WriteError(w, http.StatusInternalServerError, "Inside ticket query")
		return
	}

	h.WriteSuccess(w)
}

func (h *Handler) UpdateTicket(w http.ResponseWriter, r *http.Request) {
	id, err := h.idParam(r)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid ticket ID")
		return
	}

	var dto TicketDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.Service.Update(id, dto); err != nil {
		h.Logger.Error("UpdateTicket: service error", "error", err, "id", id)
		if appErr, ok := internal.IsAppError(err); ok {
			h.WriteError(w, appErr.StatusCode, appErr.Message)
			return
		}
		h.WriteError(w, http.StatusInternalServerError, "Update ticket error in query")
		return
	}

	h.WriteSuccess(w)
}

func (h *Handler) DeleteTicket(w http.ResponseWriter, r *http.Request) {
	id, err := h.idParam(r)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid ticket ID")
		return
	}

	if err := h.Service.Delete(id); err != nil {
		h.Logger.Error("DeleteTicket: service error", "error", err, "id", id)
		h.WriteError(w, http.StatusInternalServerError, "Delete ticket error in query")
		return
	}

	h.WriteSuccess(w)
}

func (h *Handler) TicketCount(w http.ResponseWriter, r *http.Request) {
	h.writeCount(w, "ticket", h.Service.CountAll)
}

// TicketsToDoCount reports Open tickets and TicketsInProgressCount reports
// Close tickets; the field names are the dashboard's historical contract.
func (h *Handler) TicketsToDoCount(w http.ResponseWriter, r *http.Request) {
	h.writeCount(w, "openTicketCount", h.Service.CountOpen)
}

func (h *Handler) TicketsInProgressCount(w http.ResponseWriter, r *http.Request) {
	h.writeCount(w, "closedTicketCount", h.Service.CountClosed)
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

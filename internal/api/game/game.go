package game

import (
	"errors"
	"net/http"
	"strconv"

	dto "slot_backend/internal/api/dto/game"
	"slot_backend/internal/converter"
	"slot_backend/internal/service"
	"slot_backend/pkg/req"
	"slot_backend/pkg/resp"

	"github.com/go-chi/chi/v5"
)

type HandlerDeps struct {
	Serv service.SlotService
}

type Handler struct {
	serv service.SlotService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv}
}

// Spin - выполняет спин для аккаунта из URL
func (h *Handler) Spin(w http.ResponseWriter, r *http.Request) {
	accountID, err := accountIDFromURL(r)
	if err != nil {
		resp.WriteErrorResponse(w, http.StatusBadRequest, "invalid account id")
		return
	}

	payload, err := req.Decode[dto.SpinRequest](r.Body)
	if err != nil {
		resp.WriteErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	rec, acc, err := h.serv.Spin(r.Context(), accountID, payload.BetAmount)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToSpinResponse(*rec, *acc))
}

// History - возвращает последние спины аккаунта
func (h *Handler) History(w http.ResponseWriter, r *http.Request) {
	accountID, err := accountIDFromURL(r)
	if err != nil {
		resp.WriteErrorResponse(w, http.StatusBadRequest, "invalid account id")
		return
	}

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, err = strconv.Atoi(raw)
		if err != nil || limit < 0 {
			resp.WriteErrorResponse(w, http.StatusBadRequest, "invalid limit")
			return
		}
	}

	records, err := h.serv.History(r.Context(), accountID, limit)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToHistoryResponse(records))
}

func accountIDFromURL(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "accountID"), 10, 64)
}

func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrAccountNotFound):
		resp.WriteErrorResponse(w, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrPlayNotAllowed):
		resp.WriteErrorResponse(w, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, service.ErrInvalidBet):
		resp.WriteErrorResponse(w, http.StatusBadRequest, err.Error())
	default:
		resp.WriteErrorResponse(w, http.StatusInternalServerError, "internal error")
	}
}

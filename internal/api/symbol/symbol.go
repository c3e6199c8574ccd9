package symbol

import (
	"errors"
	"net/http"
	"strconv"

	dto "slot_backend/internal/api/dto/symbol"
	"slot_backend/internal/converter"
	"slot_backend/internal/service"
	"slot_backend/pkg/req"
	"slot_backend/pkg/resp"

	"github.com/go-chi/chi/v5"
)

type HandlerDeps struct {
	Serv service.SymbolService
}

type Handler struct {
	serv service.SymbolService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv}
}

// List - возвращает таблицу символов
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	symbols, err := h.serv.List(r.Context())
	if err != nil {
		resp.WriteErrorResponse(w, http.StatusInternalServerError, "internal error")
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToSymbolResponses(symbols))
}

// Update - правка выплаты и веса символа
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "symbolID"))
	if err != nil {
		resp.WriteErrorResponse(w, http.StatusBadRequest, "invalid symbol id")
		return
	}

	payload, err := req.Decode[dto.UpdateSymbolRequest](r.Body)
	if err != nil {
		resp.WriteErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	sym, err := h.serv.Update(r.Context(), id, payload.Payout, payload.Weight)
	if err != nil {
		if errors.Is(err, service.ErrSymbolNotFound) {
			resp.WriteErrorResponse(w, http.StatusNotFound, err.Error())
			return
		}
		resp.WriteErrorResponse(w, http.StatusInternalServerError, "internal error")
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToSymbolResponse(*sym))
}

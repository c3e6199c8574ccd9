package account

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	dto "slot_backend/internal/api/dto/account"
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

// Create - идемпотентная регистрация аккаунта по имени
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.CreateAccountRequest](r.Body)
	if err != nil {
		resp.WriteErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	acc, err := h.serv.CreateOrGetAccount(r.Context(), payload.Name)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToAccountResponse(*acc))
}

// Get - возвращает аккаунт по ID
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	accountID, err := accountIDFromURL(r)
	if err != nil {
		resp.WriteErrorResponse(w, http.StatusBadRequest, "invalid account id")
		return
	}

	acc, err := h.serv.GetAccount(r.Context(), accountID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToAccountResponse(*acc))
}

// GetByName - возвращает аккаунт по отображаемому имени
func (h *Handler) GetByName(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	if name == "" {
		resp.WriteErrorResponse(w, http.StatusBadRequest, "name is required")
		return
	}

	acc, err := h.serv.GetAccountByName(r.Context(), name)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToAccountResponse(*acc))
}

// List - возвращает все аккаунты
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	accounts, err := h.serv.ListAccounts(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToAccountResponses(accounts))
}

// AddCash - пополнение баланса
func (h *Handler) AddCash(w http.ResponseWriter, r *http.Request) {
	accountID, err := accountIDFromURL(r)
	if err != nil {
		resp.WriteErrorResponse(w, http.StatusBadRequest, "invalid account id")
		return
	}

	payload, err := req.Decode[dto.AddCashRequest](r.Body)
	if err != nil {
		resp.WriteErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	acc, err := h.serv.AddCash(r.Context(), accountID, payload.Amount)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToAccountResponse(*acc))
}

// GrantFreeSpins - административное начисление фриспинов.
// Тело запроса опционально: без него начисляется значение по умолчанию
func (h *Handler) GrantFreeSpins(w http.ResponseWriter, r *http.Request) {
	accountID, err := accountIDFromURL(r)
	if err != nil {
		resp.WriteErrorResponse(w, http.StatusBadRequest, "invalid account id")
		return
	}

	payload, err := req.Decode[dto.GrantFreeSpinsRequest](r.Body)
	if err != nil && !errors.Is(err, io.EOF) {
		resp.WriteErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	acc, err := h.serv.GrantFreeSpins(r.Context(), accountID, payload.Count)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToAccountResponse(*acc))
}

// Cashout - снимает весь баланс
func (h *Handler) Cashout(w http.ResponseWriter, r *http.Request) {
	accountID, err := accountIDFromURL(r)
	if err != nil {
		resp.WriteErrorResponse(w, http.StatusBadRequest, "invalid account id")
		return
	}

	amount, err := h.serv.Cashout(r.Context(), accountID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, dto.CashoutResponse{Amount: amount})
}

// CanPlay - проверка играбельности
func (h *Handler) CanPlay(w http.ResponseWriter, r *http.Request) {
	accountID, err := accountIDFromURL(r)
	if err != nil {
		resp.WriteErrorResponse(w, http.StatusBadRequest, "invalid account id")
		return
	}

	canPlay, err := h.serv.CanPlay(r.Context(), accountID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, dto.CanPlayResponse{CanPlay: canPlay})
}

func accountIDFromURL(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "accountID"), 10, 64)
}

func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrAccountNotFound):
		resp.WriteErrorResponse(w, http.StatusNotFound, err.Error())
	default:
		resp.WriteErrorResponse(w, http.StatusInternalServerError, "internal error")
	}
}

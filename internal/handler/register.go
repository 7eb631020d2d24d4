package handler

import (
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/acaizen-vn/acaizen-smart-hub-pos/internal/apierror"
	"github.com/acaizen-vn/acaizen-smart-hub-pos/internal/dto"
	"github.com/acaizen-vn/acaizen-smart-hub-pos/internal/model"
	"github.com/acaizen-vn/acaizen-smart-hub-pos/internal/service"
)

type RegisterHandler struct{ svc service.RegisterService }

func NewRegisterHandler(svc service.RegisterService) *RegisterHandler {
	return &RegisterHandler{svc: svc}
}

// Open godoc
// @Summary      Abrir caixa
// @Description  Abre uma nova sessão de caixa. Falha com 409 se já houver um caixa aberto.
// @Tags         register
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.OpenRegisterRequest true "Valor inicial e observações"
// @Success      201  {object} dto.RegisterResponse
// @Failure      409  {object} apierror.APIError
// @Router       /v1/register/open [post]
func (h *RegisterHandler) Open(c *gin.Context) {
	var req dto.OpenRegisterRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Open(c.Request.Context(), operatorID(c), req)
	if err != nil {
		c.JSON(errStatus(err), apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Close godoc
// @Summary      Fechar caixa
// @Description  Fecha a sessão aberta registrando o valor contado. A diferença para o esperado é calculada na resposta.
// @Tags         register
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.CloseRegisterRequest true "Valor final contado e observações"
// @Success      200  {object} dto.RegisterResponse
// @Failure      400  {object} apierror.APIError
// @Router       /v1/register/close [post]
func (h *RegisterHandler) Close(c *gin.Context) {
	var req dto.CloseRegisterRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Close(c.Request.Context(), operatorID(c), req)
	if err != nil {
		c.JSON(errStatus(err), apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Current godoc
// @Summary      Caixa atual
// @Description  Retorna a sessão aberta, ou 204 quando o caixa está fechado.
// @Tags         register
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object} dto.RegisterResponse
// @Success      204
// @Router       /v1/register/current [get]
func (h *RegisterHandler) Current(c *gin.Context) {
	resp, err := h.svc.Current(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Erro ao consultar o caixa"))
		return
	}
	if resp == nil {
		c.Status(http.StatusNoContent)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Movement godoc
// @Summary      Registrar sangria ou suprimento
// @Tags         register
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.ManualMovementRequest true "Tipo, valor e descrição"
// @Success      201
// @Failure      400  {object} apierror.APIError
// @Router       /v1/register/movements [post]
func (h *RegisterHandler) Movement(c *gin.Context) {
	var req dto.ManualMovementRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if err := h.svc.RecordManualMovement(c.Request.Context(), operatorID(c), req); err != nil {
		c.JSON(errStatus(err), apierror.New(err.Error()))
		return
	}
	c.Status(http.StatusCreated)
}

// History godoc
// @Summary      Histórico de caixas fechados
// @Tags         register
// @Produce      json
// @Security     BearerAuth
// @Param        page  query int false "Página (default 1)"
// @Param        limit query int false "Registros por página (default 20)"
// @Success      200  {object} dto.RegisterListResponse
// @Router       /v1/register/history [get]
func (h *RegisterHandler) History(c *gin.Context) {
	page := queryInt(c, "page", 1)
	limit := queryInt(c, "limit", 20)
	resp, err := h.svc.History(c.Request.Context(), page, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Erro ao listar o histórico de caixas"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Movements godoc
// @Summary      Movimentações de um caixa
// @Tags         register
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "UUID do caixa"
// @Success      200  {array} dto.MovementResponse
// @Failure      404  {object} apierror.APIError
// @Router       /v1/register/{id}/movements [get]
func (h *RegisterHandler) Movements(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return
	}
	resp, err := h.svc.Movements(c.Request.Context(), id)
	if err != nil {
		c.JSON(errStatus(err), apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Events godoc
// @Summary      Stream de eventos do caixa (SSE)
// @Description  Emite o estado do caixa a cada mudança: abertura, venda registrada e fechamento (null).
// @Tags         register
// @Produce      text/event-stream
// @Security     BearerAuth
// @Router       /v1/register/events [get]
func (h *RegisterHandler) Events(c *gin.Context) {
	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")

	// Buffered so a slow client never blocks the register service; a full
	// buffer drops the oldest-pending event, the next one carries fresh state.
	events := make(chan *dto.RegisterResponse, 8)
	unsubscribe := h.svc.Subscribe(func(reg *model.CashRegister) {
		var resp *dto.RegisterResponse
		if reg != nil {
			resp = dto.ToRegisterResponse(reg)
		}
		select {
		case events <- resp:
		default:
		}
	})
	defer unsubscribe()

	// Initial snapshot so the client renders without waiting for a change.
	if current, err := h.svc.Current(c.Request.Context()); err == nil {
		select {
		case events <- current:
		default:
		}
	}

	ctx := c.Request.Context()
	c.Stream(func(w io.Writer) bool {
		select {
		case <-ctx.Done():
			return false
		case resp := <-events:
			if resp == nil {
				c.SSEvent("register", gin.H{"register": nil})
			} else {
				c.SSEvent("register", resp)
			}
			return true
		}
	})
}

func queryInt(c *gin.Context, key string, def int) int {
	v, err := strconv.Atoi(c.Query(key))
	if err != nil || v < 1 {
		return def
	}
	return v
}

package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/acaizen-vn/acaizen-smart-hub-pos/internal/apierror"
	"github.com/acaizen-vn/acaizen-smart-hub-pos/internal/dto"
	"github.com/acaizen-vn/acaizen-smart-hub-pos/internal/repository"
	"github.com/acaizen-vn/acaizen-smart-hub-pos/internal/service"
)

type SalesHandler struct{ svc service.SaleService }

func NewSalesHandler(svc service.SaleService) *SalesHandler { return &SalesHandler{svc: svc} }

// Finalize godoc
// @Summary      Finalizar venda
// @Description  Converte o carrinho do operador em uma venda imutável, limpa o carrinho e registra no caixa aberto.
// @Tags         sales
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.FinalizeSaleRequest true "Cliente e pagamento"
// @Success      201  {object} dto.SaleResponse
// @Failure      400  {object} apierror.APIError
// @Router       /v1/sales [post]
func (h *SalesHandler) Finalize(c *gin.Context) {
	var req dto.FinalizeSaleRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Finalize(c.Request.Context(), operatorID(c), req)
	if err != nil {
		c.JSON(errStatus(err), apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Get godoc
// @Summary      Buscar venda por ID
// @Tags         sales
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "UUID da venda"
// @Success      200  {object} dto.SaleResponse
// @Failure      404  {object} apierror.APIError
// @Router       /v1/sales/{id} [get]
func (h *SalesHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return
	}
	resp, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		c.JSON(errStatus(err), apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// List godoc
// @Summary      Listar vendas
// @Tags         sales
// @Produce      json
// @Security     BearerAuth
// @Param        from  query string false "Data inicial YYYY-MM-DD"
// @Param        to    query string false "Data final YYYY-MM-DD"
// @Param        page  query int    false "Página (default 1)"
// @Param        limit query int    false "Registros por página (default 20)"
// @Success      200   {object} dto.SaleListResponse
// @Router       /v1/sales [get]
func (h *SalesHandler) List(c *gin.Context) {
	filter := repository.SaleFilter{Page: 1, Limit: 20}

	if raw := c.Query("from"); raw != "" {
		t, err := time.Parse("2006-01-02", raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, apierror.New("Data inicial inválida, use YYYY-MM-DD"))
			return
		}
		filter.From = &t
	}
	if raw := c.Query("to"); raw != "" {
		t, err := time.Parse("2006-01-02", raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, apierror.New("Data final inválida, use YYYY-MM-DD"))
			return
		}
		// inclusive end of day
		end := t.Add(24*time.Hour - time.Second)
		filter.To = &end
	}
	if raw := c.Query("page"); raw != "" {
		if p, err := strconv.Atoi(raw); err == nil && p > 0 {
			filter.Page = p
		}
	}
	if raw := c.Query("limit"); raw != "" {
		if l, err := strconv.Atoi(raw); err == nil && l > 0 && l <= 100 {
			filter.Limit = l
		}
	}

	resp, err := h.svc.List(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Erro ao listar vendas"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// PixQR godoc
// @Summary      QR Code PIX da venda
// @Description  Retorna o QR do payload PIX como PNG. Disponível apenas para vendas pagas via PIX.
// @Tags         sales
// @Produce      png
// @Security     BearerAuth
// @Param        id path string true "UUID da venda"
// @Success      200  {file} png
// @Failure      404  {object} apierror.APIError
// @Router       /v1/sales/{id}/pix-qr [get]
func (h *SalesHandler) PixQR(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return
	}
	png, err := h.svc.PixQR(c.Request.Context(), id)
	if err != nil {
		c.JSON(errStatus(err), apierror.New(err.Error()))
		return
	}
	c.Data(http.StatusOK, "image/png", png)
}

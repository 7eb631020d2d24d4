package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/acaizen-vn/acaizen-smart-hub-pos/internal/apierror"
	"github.com/acaizen-vn/acaizen-smart-hub-pos/internal/dto"
	"github.com/acaizen-vn/acaizen-smart-hub-pos/internal/middleware"
	"github.com/acaizen-vn/acaizen-smart-hub-pos/internal/service"
)

// CartHandler exposes the operator's active cart. The cart belongs to the
// authenticated operator: the id always comes from the JWT, never the body.
type CartHandler struct{ svc service.CartService }

func NewCartHandler(svc service.CartService) *CartHandler { return &CartHandler{svc: svc} }

func operatorID(c *gin.Context) uuid.UUID {
	claims := middleware.GetClaims(c)
	id, _ := uuid.Parse(claims.UserID)
	return id
}

// Get godoc
// @Summary      Carrinho atual
// @Tags         cart
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object} dto.CartResponse
// @Router       /v1/cart [get]
func (h *CartHandler) Get(c *gin.Context) {
	resp, err := h.svc.Get(c.Request.Context(), operatorID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Erro ao carregar o carrinho"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// AddItem godoc
// @Summary      Adicionar item ao carrinho
// @Description  Cada chamada cria uma nova linha, mesmo para o mesmo produto.
// @Tags         cart
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.AddItemRequest true "Produto, quantidade e personalizações"
// @Success      200  {object} dto.CartResponse
// @Failure      400  {object} apierror.APIError
// @Router       /v1/cart/items [post]
func (h *CartHandler) AddItem(c *gin.Context) {
	var req dto.AddItemRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.AddItem(c.Request.Context(), operatorID(c), req)
	if err != nil {
		c.JSON(errStatus(err), apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// RemoveItem godoc
// @Summary      Remover item do carrinho
// @Description  Remover um item inexistente não é erro: o carrinho volta inalterado.
// @Tags         cart
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "UUID da linha do carrinho"
// @Success      200  {object} dto.CartResponse
// @Router       /v1/cart/items/{id} [delete]
func (h *CartHandler) RemoveItem(c *gin.Context) {
	itemID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return
	}
	resp, err := h.svc.RemoveItem(c.Request.Context(), operatorID(c), itemID)
	if err != nil {
		c.JSON(errStatus(err), apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// UpdateQuantity godoc
// @Summary      Alterar quantidade de um item
// @Description  Quantidade zero ou negativa remove a linha do carrinho.
// @Tags         cart
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id   path string                    true "UUID da linha do carrinho"
// @Param        body body dto.UpdateQuantityRequest true "Nova quantidade"
// @Success      200  {object} dto.CartResponse
// @Failure      404  {object} apierror.APIError
// @Router       /v1/cart/items/{id} [patch]
func (h *CartHandler) UpdateQuantity(c *gin.Context) {
	itemID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return
	}
	var req dto.UpdateQuantityRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.UpdateQuantity(c.Request.Context(), operatorID(c), itemID, req.Quantity)
	if err != nil {
		c.JSON(errStatus(err), apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Clear godoc
// @Summary      Esvaziar o carrinho
// @Tags         cart
// @Security     BearerAuth
// @Success      204
// @Router       /v1/cart [delete]
func (h *CartHandler) Clear(c *gin.Context) {
	if err := h.svc.Clear(c.Request.Context(), operatorID(c)); err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Erro ao limpar o carrinho"))
		return
	}
	c.Status(http.StatusNoContent)
}

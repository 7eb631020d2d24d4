package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/acaizen-vn/acaizen-smart-hub-pos/internal/apierror"
	"github.com/acaizen-vn/acaizen-smart-hub-pos/internal/dto"
	"github.com/acaizen-vn/acaizen-smart-hub-pos/internal/service"
)

type ProductsHandler struct{ svc service.ProductService }

func NewProductsHandler(svc service.ProductService) *ProductsHandler {
	return &ProductsHandler{svc: svc}
}

// Create godoc
// @Summary      Criar produto
// @Tags         products
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.CreateProductRequest true "Dados do produto"
// @Success      201  {object} dto.ProductResponse
// @Failure      400  {object} apierror.APIError
// @Router       /v1/products [post]
func (h *ProductsHandler) Create(c *gin.Context) {
	var req dto.CreateProductRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		c.JSON(errStatus(err), apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// List godoc
// @Summary      Listar produtos
// @Tags         products
// @Produce      json
// @Security     BearerAuth
// @Param        category_id      query string false "Filtrar por categoria"
// @Param        include_inactive query bool   false "Incluir produtos desativados"
// @Success      200  {array} dto.ProductResponse
// @Router       /v1/products [get]
func (h *ProductsHandler) List(c *gin.Context) {
	var categoryID *uuid.UUID
	if raw := c.Query("category_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, apierror.New("category_id inválido"))
			return
		}
		categoryID = &id
	}
	includeInactive := c.Query("include_inactive") == "true"

	resp, err := h.svc.List(c.Request.Context(), categoryID, includeInactive)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Erro ao listar produtos"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Get godoc
// @Summary      Buscar produto por ID
// @Tags         products
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "UUID do produto"
// @Success      200  {object} dto.ProductResponse
// @Failure      404  {object} apierror.APIError
// @Router       /v1/products/{id} [get]
func (h *ProductsHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return
	}
	resp, err := h.svc.GetByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(errStatus(err), apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Update godoc
// @Summary      Atualizar produto
// @Tags         products
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id   path string                   true "UUID do produto"
// @Param        body body dto.UpdateProductRequest true "Campos a atualizar"
// @Success      200  {object} dto.ProductResponse
// @Failure      404  {object} apierror.APIError
// @Router       /v1/products/{id} [put]
func (h *ProductsHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return
	}
	var req dto.UpdateProductRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Update(c.Request.Context(), id, req)
	if err != nil {
		c.JSON(errStatus(err), apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Deactivate godoc
// @Summary      Desativar produto
// @Tags         products
// @Security     BearerAuth
// @Param        id path string true "UUID do produto"
// @Success      204
// @Failure      404  {object} apierror.APIError
// @Router       /v1/products/{id} [delete]
func (h *ProductsHandler) Deactivate(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return
	}
	if err := h.svc.Deactivate(c.Request.Context(), id); err != nil {
		c.JSON(errStatus(err), apierror.New(err.Error()))
		return
	}
	c.Status(http.StatusNoContent)
}

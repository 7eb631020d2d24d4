package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/acaizen-vn/acaizen-smart-hub-pos/internal/apierror"
	"github.com/acaizen-vn/acaizen-smart-hub-pos/internal/dto"
	"github.com/acaizen-vn/acaizen-smart-hub-pos/internal/service"
)

type CategoriesHandler struct{ svc service.CategoryService }

func NewCategoriesHandler(svc service.CategoryService) *CategoriesHandler {
	return &CategoriesHandler{svc: svc}
}

// Create godoc
// @Summary      Criar categoria
// @Tags         categories
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.CreateCategoryRequest true "Dados da categoria"
// @Success      201  {object} dto.CategoryResponse
// @Router       /v1/categories [post]
func (h *CategoriesHandler) Create(c *gin.Context) {
	var req dto.CreateCategoryRequest
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
// @Summary      Listar categorias
// @Tags         categories
// @Produce      json
// @Security     BearerAuth
// @Param        include_inactive query bool false "Incluir categorias desativadas"
// @Success      200  {array} dto.CategoryResponse
// @Router       /v1/categories [get]
func (h *CategoriesHandler) List(c *gin.Context) {
	includeInactive := c.Query("include_inactive") == "true"
	resp, err := h.svc.List(c.Request.Context(), includeInactive)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Erro ao listar categorias"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Update godoc
// @Summary      Atualizar categoria
// @Tags         categories
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id   path string                    true "UUID da categoria"
// @Param        body body dto.UpdateCategoryRequest true "Campos a atualizar"
// @Success      200  {object} dto.CategoryResponse
// @Failure      404  {object} apierror.APIError
// @Router       /v1/categories/{id} [put]
func (h *CategoriesHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return
	}
	var req dto.UpdateCategoryRequest
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
// @Summary      Desativar categoria
// @Tags         categories
// @Security     BearerAuth
// @Param        id path string true "UUID da categoria"
// @Success      204
// @Failure      404  {object} apierror.APIError
// @Router       /v1/categories/{id} [delete]
func (h *CategoriesHandler) Deactivate(c *gin.Context) {
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

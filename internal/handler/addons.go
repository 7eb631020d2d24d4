package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/acaizen-vn/acaizen-smart-hub-pos/internal/apierror"
	"github.com/acaizen-vn/acaizen-smart-hub-pos/internal/dto"
	"github.com/acaizen-vn/acaizen-smart-hub-pos/internal/service"
)

// AddOnsHandler covers both generic add-ons and the açaí customization
// catalog (caldas, complementos, adicionais).
type AddOnsHandler struct{ svc service.AddOnService }

func NewAddOnsHandler(svc service.AddOnService) *AddOnsHandler { return &AddOnsHandler{svc: svc} }

// Create godoc
// @Summary      Criar acompanhamento
// @Tags         addons
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.CreateAddOnRequest true "Dados do acompanhamento"
// @Success      201  {object} dto.AddOnResponse
// @Router       /v1/addons [post]
func (h *AddOnsHandler) Create(c *gin.Context) {
	var req dto.CreateAddOnRequest
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
// @Summary      Listar acompanhamentos
// @Tags         addons
// @Produce      json
// @Security     BearerAuth
// @Param        include_inactive query bool false "Incluir desativados"
// @Success      200  {array} dto.AddOnResponse
// @Router       /v1/addons [get]
func (h *AddOnsHandler) List(c *gin.Context) {
	includeInactive := c.Query("include_inactive") == "true"
	resp, err := h.svc.List(c.Request.Context(), includeInactive)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Erro ao listar acompanhamentos"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Update godoc
// @Summary      Atualizar acompanhamento
// @Tags         addons
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id   path string                 true "UUID do acompanhamento"
// @Param        body body dto.UpdateAddOnRequest true "Campos a atualizar"
// @Success      200  {object} dto.AddOnResponse
// @Failure      404  {object} apierror.APIError
// @Router       /v1/addons/{id} [put]
func (h *AddOnsHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return
	}
	var req dto.UpdateAddOnRequest
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
// @Summary      Desativar acompanhamento
// @Tags         addons
// @Security     BearerAuth
// @Param        id path string true "UUID do acompanhamento"
// @Success      204
// @Failure      404  {object} apierror.APIError
// @Router       /v1/addons/{id} [delete]
func (h *AddOnsHandler) Deactivate(c *gin.Context) {
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

// CreateAcai godoc
// @Summary      Criar item de montagem de açaí
// @Tags         addons
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.CreateAddOnRequest true "Item (calda, complemento ou adicional)"
// @Success      201  {object} dto.AddOnResponse
// @Router       /v1/acai-addons [post]
func (h *AddOnsHandler) CreateAcai(c *gin.Context) {
	var req dto.CreateAddOnRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if req.CategoryType == "" {
		c.JSON(http.StatusBadRequest, apierror.New("category_type é obrigatório para itens de açaí"))
		return
	}
	resp, err := h.svc.CreateAcai(c.Request.Context(), req)
	if err != nil {
		c.JSON(errStatus(err), apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// ListAcai godoc
// @Summary      Listar itens de montagem de açaí
// @Tags         addons
// @Produce      json
// @Security     BearerAuth
// @Param        category_type    query string false "caldas | complementos | adicionais"
// @Param        include_inactive query bool   false "Incluir desativados"
// @Success      200  {array} dto.AddOnResponse
// @Router       /v1/acai-addons [get]
func (h *AddOnsHandler) ListAcai(c *gin.Context) {
	includeInactive := c.Query("include_inactive") == "true"
	resp, err := h.svc.ListAcai(c.Request.Context(), c.Query("category_type"), includeInactive)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Erro ao listar itens de açaí"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// UpdateAcai godoc
// @Summary      Atualizar item de montagem de açaí
// @Tags         addons
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id   path string                 true "UUID do item"
// @Param        body body dto.UpdateAddOnRequest true "Campos a atualizar"
// @Success      200  {object} dto.AddOnResponse
// @Failure      404  {object} apierror.APIError
// @Router       /v1/acai-addons/{id} [put]
func (h *AddOnsHandler) UpdateAcai(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return
	}
	var req dto.UpdateAddOnRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.UpdateAcai(c.Request.Context(), id, req)
	if err != nil {
		c.JSON(errStatus(err), apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// DeactivateAcai godoc
// @Summary      Desativar item de montagem de açaí
// @Tags         addons
// @Security     BearerAuth
// @Param        id path string true "UUID do item"
// @Success      204
// @Failure      404  {object} apierror.APIError
// @Router       /v1/acai-addons/{id} [delete]
func (h *AddOnsHandler) DeactivateAcai(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return
	}
	if err := h.svc.DeactivateAcai(c.Request.Context(), id); err != nil {
		c.JSON(errStatus(err), apierror.New(err.Error()))
		return
	}
	c.Status(http.StatusNoContent)
}

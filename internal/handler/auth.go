package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/acaizen-vn/acaizen-smart-hub-pos/internal/apierror"
	"github.com/acaizen-vn/acaizen-smart-hub-pos/internal/dto"
	"github.com/acaizen-vn/acaizen-smart-hub-pos/internal/service"
)

type AuthHandler struct{ svc service.AuthService }

func NewAuthHandler(svc service.AuthService) *AuthHandler { return &AuthHandler{svc: svc} }

// Login godoc
// @Summary      Autenticar operador
// @Description  Valida credenciais e retorna tokens de acesso e refresh.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body body dto.LoginRequest true "Credenciais"
// @Success      200  {object} dto.LoginResponse
// @Failure      401  {object} apierror.APIError
// @Router       /v1/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Login(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusUnauthorized, apierror.New("Usuário ou senha inválidos"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Refresh godoc
// @Summary      Renovar token de acesso
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body body dto.RefreshRequest true "Refresh token"
// @Success      200  {object} dto.LoginResponse
// @Failure      401  {object} apierror.APIError
// @Router       /v1/auth/refresh [post]
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req dto.RefreshRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Refresh(c.Request.Context(), req.RefreshToken)
	if err != nil {
		c.JSON(http.StatusUnauthorized, apierror.New("Token inválido ou expirado"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// CreateUser godoc
// @Summary      Criar usuário
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.CreateUserRequest true "Dados do usuário"
// @Success      201  {object} dto.UserResponse
// @Failure      400  {object} apierror.APIError
// @Router       /v1/users [post]
func (h *AuthHandler) CreateUser(c *gin.Context) {
	var req dto.CreateUserRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.CreateUser(c.Request.Context(), req)
	if err != nil {
		c.JSON(errStatus(err), apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// ListUsers godoc
// @Summary      Listar usuários
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        include_inactive query bool false "Incluir usuários desativados"
// @Success      200  {array} dto.UserResponse
// @Router       /v1/users [get]
func (h *AuthHandler) ListUsers(c *gin.Context) {
	includeInactive := c.Query("include_inactive") == "true"
	resp, err := h.svc.ListUsers(c.Request.Context(), includeInactive)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Erro ao listar usuários"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// UpdateUser godoc
// @Summary      Atualizar usuário
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id   path string                true "UUID do usuário"
// @Param        body body dto.UpdateUserRequest true "Campos a atualizar"
// @Success      200  {object} dto.UserResponse
// @Failure      404  {object} apierror.APIError
// @Router       /v1/users/{id} [put]
func (h *AuthHandler) UpdateUser(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return
	}
	var req dto.UpdateUserRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.UpdateUser(c.Request.Context(), id, req)
	if err != nil {
		c.JSON(errStatus(err), apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// DeactivateUser godoc
// @Summary      Desativar usuário
// @Tags         users
// @Security     BearerAuth
// @Param        id path string true "UUID do usuário"
// @Success      204
// @Failure      404  {object} apierror.APIError
// @Router       /v1/users/{id} [delete]
func (h *AuthHandler) DeactivateUser(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return
	}
	if err := h.svc.DeactivateUser(c.Request.Context(), id); err != nil {
		c.JSON(errStatus(err), apierror.New(err.Error()))
		return
	}
	c.Status(http.StatusNoContent)
}

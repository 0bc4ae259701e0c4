package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hotel-reservas/models"
	"hotel-reservas/services"
	"hotel-reservas/utils"
)

type ClienteController struct {
	service *services.ClienteService
}

func NewClienteController(service *services.ClienteService) *ClienteController {
	return &ClienteController{service: service}
}

func (ct *ClienteController) List(c *gin.Context) {
	clientes, err := ct.service.List()
	if err != nil {
		utils.WriteError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, clientes)
}

func (ct *ClienteController) GetByID(c *gin.Context) {
	cliente, err := ct.service.GetByID(c.Param("id"))
	if err != nil {
		utils.WriteError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, cliente)
}

func (ct *ClienteController) Create(c *gin.Context) {
	var req models.CrearClienteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "cuerpo de solicitud inválido")
		return
	}
	cliente, err := ct.service.Create(req)
	if err != nil {
		utils.WriteError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, cliente)
}

func (ct *ClienteController) Update(c *gin.Context) {
	var req models.ActualizarClienteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "cuerpo de solicitud inválido")
		return
	}
	cliente, err := ct.service.Update(c.Param("id"), req)
	if err != nil {
		utils.WriteError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, cliente)
}

func (ct *ClienteController) Delete(c *gin.Context) {
	if err := ct.service.Delete(c.Param("id")); err != nil {
		utils.WriteError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"deleted": true})
}

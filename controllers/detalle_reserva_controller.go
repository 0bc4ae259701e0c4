package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hotel-reservas/models"
	"hotel-reservas/services"
	"hotel-reservas/utils"
)

type DetalleReservaController struct {
	service *services.DetalleReservaService
}

func NewDetalleReservaController(service *services.DetalleReservaService) *DetalleReservaController {
	return &DetalleReservaController{service: service}
}

func (ct *DetalleReservaController) List(c *gin.Context) {
	detalles, err := ct.service.List()
	if err != nil {
		utils.WriteError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, detalles)
}

func (ct *DetalleReservaController) GetByID(c *gin.Context) {
	detalle, err := ct.service.GetByID(c.Param("id"))
	if err != nil {
		utils.WriteError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, detalle)
}

func (ct *DetalleReservaController) Create(c *gin.Context) {
	var req models.CrearDetalleReservaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "cuerpo de solicitud inválido")
		return
	}
	detalle, err := ct.service.Create(req)
	if err != nil {
		utils.WriteError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, detalle)
}

func (ct *DetalleReservaController) Update(c *gin.Context) {
	var req models.ActualizarDetalleReservaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "cuerpo de solicitud inválido")
		return
	}
	detalle, err := ct.service.Update(c.Param("id"), req)
	if err != nil {
		utils.WriteError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, detalle)
}

func (ct *DetalleReservaController) Delete(c *gin.Context) {
	if err := ct.service.Delete(c.Param("id")); err != nil {
		utils.WriteError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"deleted": true})
}

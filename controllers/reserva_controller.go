package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hotel-reservas/models"
	"hotel-reservas/services"
	"hotel-reservas/utils"
)

type ReservaController struct {
	service  *services.ReservaService
	detalles *services.DetalleReservaService
}

func NewReservaController(service *services.ReservaService, detalles *services.DetalleReservaService) *ReservaController {
	return &ReservaController{service: service, detalles: detalles}
}

func (ct *ReservaController) List(c *gin.Context) {
	// ?clienteId= filtra por cliente.
	if clienteID := c.Query("clienteId"); clienteID != "" {
		reservas, err := ct.service.ListByCliente(clienteID)
		if err != nil {
			utils.WriteError(c, err)
			return
		}
		utils.JSONSuccess(c, http.StatusOK, reservas)
		return
	}

	reservas, err := ct.service.List()
	if err != nil {
		utils.WriteError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, reservas)
}

func (ct *ReservaController) GetByID(c *gin.Context) {
	reserva, err := ct.service.GetByID(c.Param("id"))
	if err != nil {
		utils.WriteError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, reserva)
}

func (ct *ReservaController) ListDetalles(c *gin.Context) {
	detalles, err := ct.detalles.ListByReserva(c.Param("id"))
	if err != nil {
		utils.WriteError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, detalles)
}

func (ct *ReservaController) Create(c *gin.Context) {
	var req models.CrearReservaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "cuerpo de solicitud inválido")
		return
	}
	reserva, err := ct.service.Create(req)
	if err != nil {
		utils.WriteError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, reserva)
}

func (ct *ReservaController) Update(c *gin.Context) {
	var req models.ActualizarReservaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "cuerpo de solicitud inválido")
		return
	}
	reserva, err := ct.service.Update(c.Param("id"), req)
	if err != nil {
		utils.WriteError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, reserva)
}

func (ct *ReservaController) Delete(c *gin.Context) {
	if err := ct.service.Delete(c.Param("id")); err != nil {
		utils.WriteError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"deleted": true})
}

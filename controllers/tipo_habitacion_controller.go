package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hotel-reservas/models"
	"hotel-reservas/services"
	"hotel-reservas/utils"
)

type TipoHabitacionController struct {
	service *services.TipoHabitacionService
}

func NewTipoHabitacionController(service *services.TipoHabitacionService) *TipoHabitacionController {
	return &TipoHabitacionController{service: service}
}

func (ct *TipoHabitacionController) List(c *gin.Context) {
	tipos, err := ct.service.List()
	if err != nil {
		utils.WriteError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, tipos)
}

func (ct *TipoHabitacionController) GetByID(c *gin.Context) {
	tipo, err := ct.service.GetByID(c.Param("id"))
	if err != nil {
		utils.WriteError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, tipo)
}

func (ct *TipoHabitacionController) Create(c *gin.Context) {
	var req models.CrearTipoHabitacionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "cuerpo de solicitud inválido")
		return
	}
	tipo, err := ct.service.Create(req)
	if err != nil {
		utils.WriteError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, tipo)
}

func (ct *TipoHabitacionController) Update(c *gin.Context) {
	var req models.ActualizarTipoHabitacionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "cuerpo de solicitud inválido")
		return
	}
	tipo, err := ct.service.Update(c.Param("id"), req)
	if err != nil {
		utils.WriteError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, tipo)
}

func (ct *TipoHabitacionController) Delete(c *gin.Context) {
	if err := ct.service.Delete(c.Param("id")); err != nil {
		utils.WriteError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"deleted": true})
}

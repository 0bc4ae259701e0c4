package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hotel-reservas/models"
	"hotel-reservas/services"
	"hotel-reservas/utils"
)

type HabitacionController struct {
	service *services.HabitacionService
}

func NewHabitacionController(service *services.HabitacionService) *HabitacionController {
	return &HabitacionController{service: service}
}

func (ct *HabitacionController) List(c *gin.Context) {
	habitaciones, err := ct.service.List()
	if err != nil {
		utils.WriteError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, habitaciones)
}

func (ct *HabitacionController) GetByID(c *gin.Context) {
	habitacion, err := ct.service.GetByID(c.Param("id"))
	if err != nil {
		utils.WriteError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, habitacion)
}

func (ct *HabitacionController) Create(c *gin.Context) {
	var req models.CrearHabitacionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "cuerpo de solicitud inválido")
		return
	}
	habitacion, err := ct.service.Create(req)
	if err != nil {
		utils.WriteError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, habitacion)
}

func (ct *HabitacionController) Update(c *gin.Context) {
	var req models.ActualizarHabitacionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "cuerpo de solicitud inválido")
		return
	}
	habitacion, err := ct.service.Update(c.Param("id"), req)
	if err != nil {
		utils.WriteError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, habitacion)
}

func (ct *HabitacionController) Delete(c *gin.Context) {
	if err := ct.service.Delete(c.Param("id")); err != nil {
		utils.WriteError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"deleted": true})
}

package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hotel-reservas/models"
	"hotel-reservas/services"
	"hotel-reservas/utils"
)

type HuespedController struct {
	service *services.HuespedService
}

func NewHuespedController(service *services.HuespedService) *HuespedController {
	return &HuespedController{service: service}
}

func (ct *HuespedController) List(c *gin.Context) {
	// ?documento= permite buscar por documento de identidad.
	if documento := c.Query("documento"); documento != "" {
		huesped, err := ct.service.GetByDocumento(documento)
		if err != nil {
			utils.WriteError(c, err)
			return
		}
		utils.JSONSuccess(c, http.StatusOK, huesped)
		return
	}

	huespedes, err := ct.service.List()
	if err != nil {
		utils.WriteError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, huespedes)
}

func (ct *HuespedController) GetByID(c *gin.Context) {
	huesped, err := ct.service.GetByID(c.Param("id"))
	if err != nil {
		utils.WriteError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, huesped)
}

func (ct *HuespedController) Create(c *gin.Context) {
	var req models.CrearHuespedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "cuerpo de solicitud inválido")
		return
	}
	huesped, err := ct.service.Create(req)
	if err != nil {
		utils.WriteError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, huesped)
}

func (ct *HuespedController) Update(c *gin.Context) {
	var req models.ActualizarHuespedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "cuerpo de solicitud inválido")
		return
	}
	huesped, err := ct.service.Update(c.Param("id"), req)
	if err != nil {
		utils.WriteError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, huesped)
}

func (ct *HuespedController) Delete(c *gin.Context) {
	if err := ct.service.Delete(c.Param("id")); err != nil {
		utils.WriteError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"deleted": true})
}

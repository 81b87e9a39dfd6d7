package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fieldserve/middleware"
	agentsvc "fieldserve/services/agent"
	"fieldserve/utils"
)

// AgentHandler exposes the field-agent facade over HTTP.
type AgentHandler struct {
	Service agentsvc.AgentService
}

func (h *AgentHandler) SignIn(c *gin.Context) {
	var input struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	agent, token, err := h.Service.SignIn(c.Request.Context(), input.Email, input.Password)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"agent": agent, "token": token})
}

func (h *AgentHandler) Dashboard(c *gin.Context) {
	dash, err := h.Service.Dashboard(c.Request.Context(), middleware.CallerID(c))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dash)
}

func (h *AgentHandler) GetBooking(c *gin.Context) {
	booking, err := h.Service.GetBooking(c.Request.Context(), middleware.CallerID(c), c.Param("bookingID"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"booking": booking})
}

func (h *AgentHandler) UpdateStatus(c *gin.Context) {
	var input struct {
		Status string `json:"status"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	booking, err := h.Service.UpdateStatus(c.Request.Context(), middleware.CallerID(c), c.Param("bookingID"), input.Status)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"booking": booking})
}

func (h *AgentHandler) SetAvailability(c *gin.Context) {
	var input struct {
		Status string `json:"status"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	if err := h.Service.SetAvailability(c.Request.Context(), middleware.CallerID(c), input.Status); err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": input.Status})
}

func (h *AgentHandler) AddExtraTask(c *gin.Context) {
	var input struct {
		Description string  `json:"description"`
		Price       float64 `json:"price"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	booking, err := h.Service.AddExtraTask(c.Request.Context(), middleware.CallerID(c), c.Param("bookingID"),
		input.Description, input.Price)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"booking": booking})
}

func (h *AgentHandler) UpdateExtraTask(c *gin.Context) {
	var input struct {
		Description string  `json:"description"`
		Price       float64 `json:"price"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	booking, err := h.Service.UpdateExtraTask(c.Request.Context(), middleware.CallerID(c), c.Param("bookingID"),
		c.Param("taskID"), input.Description, input.Price)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"booking": booking})
}

func (h *AgentHandler) DeleteExtraTask(c *gin.Context) {
	booking, err := h.Service.DeleteExtraTask(c.Request.Context(), middleware.CallerID(c), c.Param("bookingID"), c.Param("taskID"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"booking": booking})
}

func (h *AgentHandler) ProcessPayment(c *gin.Context) {
	booking, err := h.Service.ProcessPayment(c.Request.Context(), middleware.CallerID(c), c.Param("bookingID"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"booking": booking})
}

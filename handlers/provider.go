package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fieldserve/middleware"
	providersvc "fieldserve/services/provider"
	"fieldserve/utils"
)

// ProviderHandler exposes the organization-side facade over HTTP.
type ProviderHandler struct {
	Service providersvc.ProviderService
}

func (h *ProviderHandler) Register(c *gin.Context) {
	var input providersvc.RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	org, token, err := h.Service.Register(c.Request.Context(), input)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"organization": org, "token": token})
}

func (h *ProviderHandler) SignIn(c *gin.Context) {
	var input struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	org, token, err := h.Service.SignIn(c.Request.Context(), input.Email, input.Password)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"organization": org, "token": token})
}

func (h *ProviderHandler) GetProfile(c *gin.Context) {
	org, err := h.Service.GetProfile(c.Request.Context(), middleware.CallerID(c))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"organization": org})
}

func (h *ProviderHandler) UpdateProfile(c *gin.Context) {
	var input providersvc.ProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	org, err := h.Service.UpdateProfile(c.Request.Context(), middleware.CallerID(c), input)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"organization": org})
}

func (h *ProviderHandler) AssignAgent(c *gin.Context) {
	var input struct {
		BookingID string `json:"bookingId"`
		AgentID   string `json:"agentId"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	summary, err := h.Service.AssignAgent(c.Request.Context(), middleware.CallerID(c), input.BookingID, input.AgentID)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

func (h *ProviderHandler) ListBookings(c *gin.Context) {
	bookings, err := h.Service.ListBookings(c.Request.Context(), middleware.CallerID(c))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}

func (h *ProviderHandler) GetBooking(c *gin.Context) {
	booking, err := h.Service.GetBooking(c.Request.Context(), middleware.CallerID(c), c.Param("bookingID"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"booking": booking})
}

func (h *ProviderHandler) ListAgents(c *gin.Context) {
	agents, err := h.Service.ListAgents(c.Request.Context(), middleware.CallerID(c))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"agents": agents})
}

func (h *ProviderHandler) ListAvailableAgents(c *gin.Context) {
	agents, err := h.Service.ListAvailableAgents(c.Request.Context(), middleware.CallerID(c))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"agents": agents})
}

func (h *ProviderHandler) CreateAgent(c *gin.Context) {
	var input providersvc.AgentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	agent, err := h.Service.CreateAgent(c.Request.Context(), middleware.CallerID(c), input)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"agent": agent})
}

func (h *ProviderHandler) DeleteAgent(c *gin.Context) {
	if err := h.Service.DeleteAgent(c.Request.Context(), middleware.CallerID(c), c.Param("agentID")); err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}

func (h *ProviderHandler) ListServices(c *gin.Context) {
	services, err := h.Service.ListServices(c.Request.Context(), middleware.CallerID(c))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"services": services})
}

func (h *ProviderHandler) CreateService(c *gin.Context) {
	var input providersvc.ServiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	svc, err := h.Service.CreateService(c.Request.Context(), middleware.CallerID(c), input)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"service": svc})
}

func (h *ProviderHandler) UpdateService(c *gin.Context) {
	var input providersvc.ServiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	svc, err := h.Service.UpdateService(c.Request.Context(), middleware.CallerID(c), c.Param("serviceID"), input)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"service": svc})
}

func (h *ProviderHandler) DeleteService(c *gin.Context) {
	if err := h.Service.DeleteService(c.Request.Context(), middleware.CallerID(c), c.Param("serviceID")); err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}

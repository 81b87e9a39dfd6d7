package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fieldserve/middleware"
	"fieldserve/models"
	"fieldserve/services/client"
	"fieldserve/utils"
)

// ClientHandler exposes the client facade over HTTP.
type ClientHandler struct {
	Service client.ClientService
}

func (h *ClientHandler) Register(c *gin.Context) {
	var input struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Phone    string `json:"phone"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	acct, token, err := h.Service.Register(c.Request.Context(), input.Name, input.Email, input.Phone, input.Password)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"client": acct, "token": token})
}

func (h *ClientHandler) SignIn(c *gin.Context) {
	var input struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	acct, token, err := h.Service.SignIn(c.Request.Context(), input.Email, input.Password)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"client": acct, "token": token})
}

func (h *ClientHandler) Checkout(c *gin.Context) {
	var input struct {
		Items []models.BookingItemInput `json:"items"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	bookings, err := h.Service.CreateBookings(c.Request.Context(), middleware.CallerID(c), input.Items)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"bookings": bookings})
}

func (h *ClientHandler) ListBookings(c *gin.Context) {
	bookings, err := h.Service.ListBookings(c.Request.Context(), middleware.CallerID(c))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}

func (h *ClientHandler) CancelBooking(c *gin.Context) {
	booking, err := h.Service.CancelBooking(c.Request.Context(), middleware.CallerID(c), c.Param("bookingID"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"booking": booking})
}

func (h *ClientHandler) CreateReview(c *gin.Context) {
	var input struct {
		OrganizationID string `json:"organizationId"`
		ServiceID      string `json:"serviceId"`
		Rating         int    `json:"rating"`
		Comment        string `json:"comment"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	review, orgRating, err := h.Service.CreateReview(c.Request.Context(), middleware.CallerID(c),
		input.OrganizationID, input.ServiceID, input.Rating, input.Comment)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"review": review, "organizationRating": orgRating})
}

func (h *ClientHandler) UpdateReview(c *gin.Context) {
	var input struct {
		Rating  int    `json:"rating"`
		Comment string `json:"comment"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	review, orgRating, err := h.Service.UpdateReview(c.Request.Context(), middleware.CallerID(c),
		c.Param("reviewID"), input.Rating, input.Comment)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"review": review, "organizationRating": orgRating})
}

func (h *ClientHandler) DeleteReview(c *gin.Context) {
	orgRating, err := h.Service.DeleteReview(c.Request.Context(), middleware.CallerID(c), c.Param("reviewID"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"organizationRating": orgRating})
}

func (h *ClientHandler) ListOrganizationReviews(c *gin.Context) {
	var q struct {
		Page  int `form:"page"`
		Limit int `form:"limit"`
	}
	_ = c.ShouldBindQuery(&q)

	page, err := h.Service.ListOrganizationReviews(c.Request.Context(), c.Param("orgID"), q.Page, q.Limit)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

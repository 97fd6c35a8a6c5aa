package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/datharnu/povBackend/internal/auth"
	"github.com/datharnu/povBackend/internal/auth/validation"
)

type signupRequest struct {
	FullName        string `json:"fullname"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

func (h *Handler) Signup(c *gin.Context) {
	var req signupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Invalid request body",
		})
		return
	}

	in, violations := validation.Signup(auth.SignupInput{
		FullName:        req.FullName,
		Email:           req.Email,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
	})
	if len(violations) > 0 {
		h.respondError(c, &auth.ValidationError{Fields: violations})
		return
	}

	acct, err := h.service.Signup(c.Request.Context(), in)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "User created successfully",
		"user":    newUserResponse(acct, false),
	})
}

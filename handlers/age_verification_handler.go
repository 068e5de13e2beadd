package handlers

import (
	"time"

	"catalog-api/helper"
	"catalog-api/models"

	"github.com/gin-gonic/gin"
)

const minimumAge = 18

type AgeVerificationHandler struct {
	Helper *helper.HTTPHelper
}

func NewAgeVerificationHandler() *AgeVerificationHandler {
	return &AgeVerificationHandler{}
}

// ConfirmAge validates the caller's age confirmation. When a birth date
// is supplied the age is computed month/day-accurately and must be at
// least 18.
func (h *AgeVerificationHandler) ConfirmAge(c *gin.Context) {
	var req models.ConfirmAgeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, "Error ", err.Error())
		return
	}

	if !req.Confirmed {
		h.Helper.SendBadRequest(c, "Age confirmation is required", h.Helper.EmptyJsonMap())
		return
	}

	if req.BirthDate != "" {
		birth, err := time.Parse("2006-01-02", req.BirthDate)
		if err != nil {
			h.Helper.SendBadRequest(c, "Invalid birth date", h.Helper.EmptyJsonMap())
			return
		}

		if calculateAge(birth, time.Now()) < minimumAge {
			h.Helper.SendForbiddenError(c, "You must be 18 years or older to access this content", h.Helper.EmptyJsonMap())
			return
		}
	}

	h.Helper.SendSuccess(c, "Age confirmed successfully", gin.H{
		"ageConfirmed": true,
		"timestamp":    time.Now().UTC().Format(time.RFC3339),
	})
}

func (h *AgeVerificationHandler) GetAgeStatus(c *gin.Context) {
	confirmed := c.GetHeader("X-Age-Confirmed") == "true"

	h.Helper.SendSuccess(c, "Age verification status", gin.H{
		"ageConfirmed": confirmed,
		"timestamp":    time.Now().UTC().Format(time.RFC3339),
	})
}

func (h *AgeVerificationHandler) RevokeAge(c *gin.Context) {
	h.Helper.SendSuccess(c, "Age confirmation revoked", gin.H{
		"ageConfirmed": false,
	})
}

// calculateAge returns full years between birth and now, accounting for
// whether the birthday has happened yet this year.
func calculateAge(birth, now time.Time) int {
	age := now.Year() - birth.Year()

	if now.Month() < birth.Month() ||
		(now.Month() == birth.Month() && now.Day() < birth.Day()) {
		age--
	}

	return age
}

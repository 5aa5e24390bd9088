package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"TeleCareZone-Web/internal/domain/effect"
)

// applyEffects runs effects against the response. NavigateTo writes a 302 and
// ends the response; confirmations are collected for the page to show.
func applyEffects(c *gin.Context, effects []effect.Effect) (confirmations []string, navigated bool) {
	confirmations = []string{}
	for _, e := range effects {
		switch e := e.(type) {
		case effect.NavigateTo:
			c.Redirect(http.StatusFound, e.URL)
			return confirmations, true
		case effect.ShowConfirmation:
			confirmations = append(confirmations, e.Message)
		}
	}
	return confirmations, false
}

package handlers

import (
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/BruksfildServices01/booking-api/internal/httperr"
)

// bindJSON faz o bind tipado e converte erro de binding no contrato
// 400 { message, field }.
func bindJSON(c *gin.Context, obj any) bool {
	if err := c.ShouldBindJSON(obj); err == nil {
		return true
	} else {
		var verr validator.ValidationErrors
		if errors.As(err, &verr) && len(verr) > 0 {
			fe := verr[0]
			httperr.Validation(
				c,
				fmt.Sprintf("Invalid value for %s (%s)", fe.Field(), fe.Tag()),
				fe.Field(),
			)
			return false
		}

		httperr.Validation(c, "Malformed request body", "")
		return false
	}
}

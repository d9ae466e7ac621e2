package middleware

import (
	"net/http"

	"go-payroll/internal/shared/contextutil"
	"go-payroll/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CompanyScope membaca tenant dari header X-Company-ID dan menempelkannya
// ke context. Semua route di bawahnya selalu terikat ke satu company.
func CompanyScope() gin.HandlerFunc {
	return func(c *gin.Context) {
		companyID := c.GetHeader("X-Company-ID")
		if companyID == "" {
			response.Error(c, http.StatusBadRequest, "MISSING_COMPANY", "X-Company-ID header is required", nil)
			c.Abort()
			return
		}

		if _, err := uuid.Parse(companyID); err != nil {
			response.Error(c, http.StatusBadRequest, "INVALID_COMPANY", "X-Company-ID must be a valid UUID", nil)
			c.Abort()
			return
		}

		c.Set("company_id", companyID)

		ctx := contextutil.WithCompanyID(c.Request.Context(), companyID)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

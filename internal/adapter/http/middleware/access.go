package middleware

import (
	"strings"

	"hosted-checkout/internal/core/ports"
	"hosted-checkout/pkg/apperror"
	"hosted-checkout/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

const (
	HeaderCompanyID = "x-whop-company-id"
	HeaderUserToken = "x-whop-user-token"

	CtxCompanyID = "company_id"
	CtxUserID    = "user_id"
)

// CompanyAccess restricts a :companyId route to callers presenting the same
// company in HeaderCompanyID. When verifier is non-nil the caller must also
// present a valid user token.
func CompanyAccess(verifier ports.UserTokenVerifier, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		companyID := c.Param("companyId")
		header := strings.TrimSpace(c.GetHeader(HeaderCompanyID))
		if companyID == "" || header != companyID {
			log.Warn().
				Str("company_id", companyID).
				Str("header_company_id", header).
				Msg("company access denied")
			response.Error(c, apperror.ErrForbidden())
			c.Abort()
			return
		}

		if verifier != nil {
			claims, err := verifier.Verify(c.GetHeader(HeaderUserToken))
			if err != nil {
				log.Warn().Err(err).Str("company_id", companyID).Msg("user token rejected")
				response.Error(c, apperror.ErrForbidden())
				c.Abort()
				return
			}
			c.Set(CtxUserID, claims.UserID)
		}

		c.Set(CtxCompanyID, companyID)
		c.Next()
	}
}

package storefrontserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	userports "github.com/pickbotics/storefront/internal/domains/users/ports"
	apierrors "github.com/pickbotics/storefront/internal/shared/errors"
)

// responder resolves application errors into flat field-error bodies.
var responder = apierrors.NewResponder(mapCredentialsError)

func mapCredentialsError(err error) (*apierrors.FieldErrors, bool) {
	if errors.Is(err, userports.ErrInvalidCredentials) {
		return apierrors.Single(apierrors.FieldAuthentication, "Invalid username or password").
			WithStatus(http.StatusUnauthorized), true
	}
	return nil, false
}

// respondError writes err as a field-error body.
func respondError(c *gin.Context, err error) {
	responder.RespondError(c, err)
}

// respondBindError reports malformed request payloads.
func respondBindError(c *gin.Context, err error) {
	apierrors.Respond(c, apierrors.Single(apierrors.FieldGeneral, err.Error()))
}

package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/TanzilIslam/dev-home-sub000/internal/response"
	"github.com/TanzilIslam/dev-home-sub000/internal/scope"
	"github.com/TanzilIslam/dev-home-sub000/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// currentUserID reads the authenticated user id placed in the context by
// the JWT middleware. Handlers never trust a client-supplied user id.
func currentUserID(c *gin.Context) string {
	return c.GetString("user_id")
}

// respondError maps service failures onto the response envelope. Unexpected
// errors are logged with detail but surface only as a generic message.
func respondError(c *gin.Context, err error, verb, resource string) {
	var nf *services.NotFoundError
	var ve *services.ValidationError
	var cf *services.ConflictError

	switch {
	case errors.As(err, &nf):
		response.Fail(c, http.StatusNotFound, nf.Message)
	case errors.As(err, &ve):
		response.FailFields(c, http.StatusBadRequest, ve.Message, ve.Fields)
	case errors.As(err, &cf):
		response.Fail(c, http.StatusConflict, cf.Message)
	case errors.Is(err, scope.ErrInvalidFilter):
		response.Fail(c, http.StatusBadRequest, "Invalid filters")
	default:
		log.Error().Err(err).Str("resource", resource).Str("verb", verb).Msg("request failed")
		response.Fail(c, http.StatusInternalServerError,
			fmt.Sprintf("Unable to %s %s right now.", verb, resource))
	}
}

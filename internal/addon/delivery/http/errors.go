package http

import (
	"errors"
	"net/http"

	"parentsguide-srv/internal/addon"
	"parentsguide-srv/internal/rating"
	pkgErrors "parentsguide-srv/pkg/errors"
	"parentsguide-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

const blockedMessage = "Content blocked due to age restriction"

var (
	errWrongBody = pkgErrors.NewHTTPError(
		400, "Wrong body",
	)
	errNotFound = pkgErrors.NewHTTPError(
		404, "Not found",
	)
	errInvalidCatalog = pkgErrors.NewHTTPError(
		400, "Invalid catalog ID",
	)
	errInvalidID = pkgErrors.NewHTTPError(
		400, "Invalid content ID",
	)
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, addon.ErrNotFound):
		return errNotFound
	case errors.Is(err, addon.ErrInvalidCatalog):
		return errInvalidCatalog
	case errors.Is(err, addon.ErrInvalidID), errors.Is(err, rating.ErrInvalidContentID):
		return errInvalidID
	default:
		return err
	}
}

// renderError writes err the way addon clients expect: a bare {"error": …} body, with the
// gate decision attached for blocked content.
func (h *handler) renderError(c *gin.Context, err error) {
	var blocked *addon.BlockedError
	if errors.As(err, &blocked) {
		response.JSON(c, http.StatusForbidden, blockedResp{
			Error:      blockedMessage,
			AgeRating:  blocked.AgeRating,
			AllowedAge: blocked.AllowedAge,
		})
		return
	}
	response.ErrorBody(c, h.mapError(err))
}

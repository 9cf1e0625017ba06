package handlers

import (
	"attractions-service/internal/api/dto"
	"attractions-service/internal/domain"
	"attractions-service/internal/platform/obs"
	"attractions-service/internal/services"
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type AttractionFinder interface {
	Find(ctx context.Context, origin domain.Coordinates, opts services.SearchOptions) ([]domain.Attraction, error)
}

// AttractionHandler exposes the nearby attractions lookup.
type AttractionHandler struct {
	Finder AttractionFinder
	Logger *zap.Logger
}

// List answers GET /attractions/?lat=&lon= with open attractions sorted by distance.
// Any failure past input parsing is reported as 500 with the error text as detail.
func (h *AttractionHandler) List(c *gin.Context) {
	var req dto.AttractionsQuery
	if err := c.ShouldBindQuery(&req); err != nil {
		writeError(c, http.StatusBadRequest, err.Error())
		return
	}

	origin := domain.Coordinates{Lat: *req.Lat, Lon: *req.Lon}
	opts := services.SearchOptions{
		RadiusMeters: req.Radius,
		Language:     req.Language,
	}

	attractions, err := h.Finder.Find(c.Request.Context(), origin, opts)
	if err != nil {
		h.Logger.Error("find attractions failed",
			zap.String("req_id", obs.RequestID(c.Request.Context())),
			zap.Stringer("origin", origin),
			zap.Error(err),
		)
		writeError(c, http.StatusInternalServerError, err.Error())
		return
	}

	res := make([]dto.AttractionResponse, 0, len(attractions))
	for _, a := range attractions {
		res = append(res, dto.AttractionResponse{
			Name:           a.Name,
			Address:        a.Address,
			DistanceKm:     a.DistanceKm,
			BearingDegrees: a.BearingDegrees,
		})
	}

	c.JSON(http.StatusOK, res)
}

package horoscopeController

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/dhanmoti/vedic-chart-backend-2/internal/domain"
	horoscopeService "github.com/dhanmoti/vedic-chart-backend-2/internal/usecases/horoscope"
)

// chartFailedMessage is the client-facing message for any chart failure,
// kept identical to the legacy API
const chartFailedMessage = "Failed to generate chart. Please verify date/time format."

type Controller struct {
	HoroscopeService *horoscopeService.Service
	Log              *slog.Logger
}

func New(service *horoscopeService.Service, log *slog.Logger) *Controller {
	return &Controller{
		HoroscopeService: service,
		Log:              log,
	}
}

func (c *Controller) RegisterRoutes(router *gin.Engine) {
	router.POST("/horoscope", c.handleCompute)
	router.GET("/horoscope/:id", c.handleGetByID)
}

func (c *Controller) handleCompute(ctx *gin.Context) {
	var req HoroscopeReq

	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.Log.Warn("malformed horoscope request", "error", err)
		ctx.JSON(http.StatusBadRequest, gin.H{"detail": chartFailedMessage})
		return
	}

	data, err := c.HoroscopeService.Compute(ctx.Request.Context(), req.ToDomain())
	if err != nil {
		switch {
		case errors.Is(err, horoscopeService.ErrInvalidBirth),
			errors.Is(err, horoscopeService.ErrChartComputation):
			c.Log.Warn("failed to generate chart", "error", err)
			ctx.JSON(http.StatusBadRequest, gin.H{"detail": chartFailedMessage})
		default:
			c.Log.Error("unexpected horoscope error", "error", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		}
		return
	}

	ctx.JSON(http.StatusOK, success(data))
}

func (c *Controller) handleGetByID(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid horoscope id"})
		return
	}

	data, err := c.HoroscopeService.GetByID(ctx.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrHoroscopeNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "horoscope not found"})
			return
		}
		c.Log.Error("failed to load horoscope", "error", err, "horoscope_id", id)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, success(data))
}

package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/labstack/echo/v4"

	"chainscale/models"
	"chainscale/services"
)

// CalculatorHandlers manages the scalability calculation endpoints
type CalculatorHandlers struct {
	calcService    *services.CalculatorService
	compareService *services.ComparisonService
}

func NewCalculatorHandlers(calcService *services.CalculatorService, compareService *services.ComparisonService) *CalculatorHandlers {
	return &CalculatorHandlers{
		calcService:    calcService,
		compareService: compareService,
	}
}

// respond maps service outcomes to the response envelope: parameter
// errors become 400s with the validation message verbatim, anything else
// is a logged 500 with a generic message.
func respond(c echo.Context, data interface{}, err error) error {
	if err != nil {
		var paramErr *services.ParamError
		if errors.As(err, &paramErr) {
			return c.JSON(http.StatusBadRequest, models.Fail(paramErr.Error()))
		}
		log.Printf("calculation failed: %v", err)
		return c.JSON(http.StatusInternalServerError, models.Fail("internal server error"))
	}
	return c.JSON(http.StatusOK, models.OK(data))
}

// CalculateLayer2 computes rollup performance for a transaction volume.
func (ch *CalculatorHandlers) CalculateLayer2(c echo.Context) error {
	var req models.Layer2Request
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.Fail("invalid request body"))
	}

	result, err := ch.calcService.CalculateLayer2(req)
	return respond(c, result, err)
}

// CalculateSharding computes linear shard scaling.
func (ch *CalculatorHandlers) CalculateSharding(c echo.Context) error {
	var req models.ShardingRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.Fail("invalid request body"))
	}

	result, err := ch.calcService.CalculateSharding(req)
	return respond(c, result, err)
}

// CalculateHybrid computes the combined sharding + Layer 2 model.
func (ch *CalculatorHandlers) CalculateHybrid(c echo.Context) error {
	var req models.HybridRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.Fail("invalid request body"))
	}

	result, err := ch.calcService.CalculateHybrid(req)
	return respond(c, result, err)
}

// CompareAll evaluates every scaling model at its defaults.
func (ch *CalculatorHandlers) CompareAll(c echo.Context) error {
	var req models.CompareRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.Fail("invalid request body"))
	}

	result, err := ch.compareService.CompareAll(req)
	return respond(c, result, err)
}

// CalculateTrilemma scores a scalability/security/decentralization profile.
func (ch *CalculatorHandlers) CalculateTrilemma(c echo.Context) error {
	var req models.TrilemmaRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.Fail("invalid request body"))
	}

	result, err := ch.calcService.CalculateTrilemma(req)
	return respond(c, result, err)
}

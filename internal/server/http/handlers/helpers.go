package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	domainErrors "github.com/polkiloo/foodorder/internal/domain/errors"
	"github.com/polkiloo/foodorder/internal/domain/model"
	"github.com/polkiloo/foodorder/internal/server/http/dto"
)

const internalErrorMessage = "internal error"

// writeError maps domain errors to HTTP responses. Unexpected errors are attached
// to the gin context for the request logger and hidden from the client.
func writeError(c *gin.Context, err error, notFound string) {
	var verr *domainErrors.ValidationError
	switch {
	case errors.As(err, &verr):
		abortWithError(c, http.StatusBadRequest, verr.Reason)
	case errors.Is(err, domainErrors.ErrValidation):
		abortWithError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, domainErrors.ErrNotFound):
		abortWithError(c, http.StatusNotFound, notFound)
	case errors.Is(err, domainErrors.ErrInvalidTransition):
		abortWithError(c, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, domainErrors.ErrStatusConflict):
		abortWithError(c, http.StatusConflict, domainErrors.ErrStatusConflict.Error())
	case errors.Is(err, domainErrors.ErrUnauthorized):
		c.AbortWithStatus(http.StatusUnauthorized)
	default:
		_ = c.Error(err)
		abortWithError(c, http.StatusInternalServerError, internalErrorMessage)
	}
}

// abortBindError answers a failed bind with 413 for oversized bodies and 400
// with message otherwise.
func abortBindError(c *gin.Context, err error, message string) {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		abortWithError(c, http.StatusRequestEntityTooLarge, "request body too large")
		return
	}
	abortWithError(c, http.StatusBadRequest, message)
}

func abortWithError(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, dto.ErrorResponse{Error: message})
}

func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		abortWithError(c, http.StatusBadRequest, "invalid id")
		return 0, false
	}
	return id, true
}

func money(d decimal.Decimal) json.Number {
	return json.Number(d.StringFixed(2))
}

func toOrderResponse(order model.Order) dto.OrderResponse {
	resp := dto.OrderResponse{
		ID:            order.ID,
		OrderNumber:   order.Number,
		CustomerName:  order.CustomerName,
		CustomerPhone: order.CustomerPhone,
		OrderItems:    order.Items,
		TotalPrice:    money(order.TotalPrice),
		Status:        string(order.Status),
		OrderTime:     order.OrderTime,
		CompletedTime: order.CompletedAt,
	}
	for _, item := range order.DetailedItems {
		resp.DetailedItems = append(resp.DetailedItems, dto.LineItemResponse{
			Name:           item.Name,
			Price:          money(item.Price),
			Quantity:       item.Quantity,
			Customizations: item.Customizations,
		})
	}
	return resp
}

func toOrderResponses(orders []model.Order) []dto.OrderResponse {
	response := make([]dto.OrderResponse, 0, len(orders))
	for _, o := range orders {
		response = append(response, toOrderResponse(o))
	}
	return response
}

func toMenuItemResponse(item model.MenuItem) dto.MenuItemResponse {
	resp := dto.MenuItemResponse{
		ID:             item.ID,
		Name:           item.Name,
		Category:       item.Category,
		Description:    item.Description,
		BasePrice:      money(item.BasePrice),
		ImageURL:       item.ImageURL,
		Customizations: make([]dto.CustomizationResponse, 0, len(item.Customizations)),
		Active:         item.Active,
		CreatedAt:      item.CreatedAt,
		UpdatedAt:      item.UpdatedAt,
	}
	for _, c := range item.Customizations {
		resp.Customizations = append(resp.Customizations, dto.CustomizationResponse{Name: c.Name, Price: money(c.Price)})
	}
	return resp
}

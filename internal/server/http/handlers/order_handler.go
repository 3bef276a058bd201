package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/shopspring/decimal"

	"github.com/polkiloo/foodorder/internal/domain/model"
	"github.com/polkiloo/foodorder/internal/server/http/dto"
)

const orderNotFound = "order not found"

// OrderHandler manages order-related endpoints.
type OrderHandler struct {
	facade OrderFacade
}

// NewOrderHandler constructs OrderHandler.
func NewOrderHandler(facade OrderFacade) *OrderHandler {
	return &OrderHandler{facade: facade}
}

// Place handles POST /place_order.
func (h *OrderHandler) Place(c *gin.Context) {
	req, ok := bindPlaceOrder(c)
	if !ok {
		return
	}
	if len(req.DetailedItems) == 0 && !req.TotalPrice.Valid {
		abortWithError(c, http.StatusBadRequest, "total price is required")
		return
	}

	order, err := h.facade.PlaceOrder(c.Request.Context(), toOrderDraft(req))
	if err != nil {
		writeError(c, err, orderNotFound)
		return
	}

	c.Header("Location", "/order_confirmation/"+order.Number)
	c.JSON(http.StatusCreated, toOrderResponse(*order))
}

func bindPlaceOrder(c *gin.Context) (dto.PlaceOrderRequest, bool) {
	var req dto.PlaceOrderRequest
	if c.ContentType() == binding.MIMEJSON {
		if err := c.ShouldBindJSON(&req); err != nil {
			abortBindError(c, err, "invalid request body")
			return req, false
		}
		return req, true
	}

	req.CustomerName = c.PostForm("customer_name")
	req.CustomerPhone = c.PostForm("customer_phone")

	items := strings.TrimSpace(c.PostForm("order_items"))
	if strings.HasPrefix(items, "[") {
		if err := json.Unmarshal([]byte(items), &req.DetailedItems); err != nil {
			abortWithError(c, http.StatusBadRequest, "invalid order items")
			return req, false
		}
	} else {
		req.OrderItems = items
	}

	if raw := strings.TrimSpace(c.PostForm("total_price")); raw != "" {
		total, err := decimal.NewFromString(raw)
		if err != nil {
			abortWithError(c, http.StatusBadRequest, "invalid total price")
			return req, false
		}
		req.TotalPrice = decimal.NewNullDecimal(total)
	}
	return req, true
}

func toOrderDraft(req dto.PlaceOrderRequest) model.OrderDraft {
	draft := model.OrderDraft{
		CustomerName:  req.CustomerName,
		CustomerPhone: req.CustomerPhone,
		Items:         req.OrderItems,
		TotalPrice:    req.TotalPrice.Decimal,
	}
	for _, item := range req.DetailedItems {
		draft.DetailedItems = append(draft.DetailedItems, model.LineItemDraft{
			Name:           item.Name,
			Price:          item.Price,
			Quantity:       item.Quantity,
			Customizations: item.Customizations,
		})
	}
	return draft
}

// Confirmation handles GET /order_confirmation/:number.
func (h *OrderHandler) Confirmation(c *gin.Context) {
	order, err := h.facade.OrderByNumber(c.Request.Context(), strings.ToUpper(c.Param("number")))
	if err != nil {
		writeError(c, err, orderNotFound)
		return
	}
	c.JSON(http.StatusOK, toOrderResponse(*order))
}

// UpdateStatusForm handles POST /update_order_status with form or JSON body.
func (h *OrderHandler) UpdateStatusForm(c *gin.Context) {
	var req dto.StatusFormRequest
	if err := c.ShouldBind(&req); err != nil {
		abortBindError(c, err, "order_id and status are required")
		return
	}
	if req.OrderID <= 0 {
		abortWithError(c, http.StatusBadRequest, "order_id and status are required")
		return
	}
	h.updateStatus(c, req.OrderID, req.Status)
}

// UpdateStatus handles POST /orders/:id/status.
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req dto.StatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBindError(c, err, "invalid request body")
		return
	}
	h.updateStatus(c, id, req.Status)
}

func (h *OrderHandler) updateStatus(c *gin.Context, id int64, status string) {
	order, err := h.facade.UpdateOrderStatus(c.Request.Context(), id, model.OrderStatus(strings.TrimSpace(status)))
	if err != nil {
		writeError(c, err, orderNotFound)
		return
	}
	c.JSON(http.StatusOK, dto.StatusUpdateResponse{Updated: true, Order: toOrderResponse(*order)})
}

// Active handles GET /api/orders.
func (h *OrderHandler) Active(c *gin.Context) {
	includeRecent := c.Query("include_recent") == "true"
	orders, err := h.facade.ActiveOrders(c.Request.Context(), includeRecent)
	if err != nil {
		writeError(c, err, orderNotFound)
		return
	}
	c.JSON(http.StatusOK, toOrderResponses(orders))
}

// Display handles GET /api/display/orders.
func (h *OrderHandler) Display(c *gin.Context) {
	orders, err := h.facade.DisplayOrders(c.Request.Context())
	if err != nil {
		writeError(c, err, orderNotFound)
		return
	}

	response := make([]dto.DisplayOrderResponse, 0, len(orders))
	for _, o := range orders {
		response = append(response, dto.DisplayOrderResponse{
			ID:           o.ID,
			OrderNumber:  o.Number,
			CustomerName: o.CustomerName,
			OrderItems:   o.Items,
			Status:       string(o.Status),
			TimeInfo:     o.TimeInfo,
		})
	}
	c.JSON(http.StatusOK, response)
}

// History handles GET /order_history.
func (h *OrderHandler) History(c *gin.Context) {
	orders, err := h.facade.OrderHistory(c.Request.Context())
	if err != nil {
		writeError(c, err, orderNotFound)
		return
	}
	c.JSON(http.StatusOK, toOrderResponses(orders))
}

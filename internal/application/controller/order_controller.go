package controller

import (
	"net/http"

	"sqs-bundle/internal/domain/model"
	"sqs-bundle/internal/domain/usecase/order"

	"github.com/labstack/echo/v4"
)

type OrderController struct {
	api     *echo.Group
	useCase order.UseCase
}

func NewOrderController(api *echo.Group, useCase order.UseCase) *OrderController {
	return &OrderController{api: api, useCase: useCase}
}

// InitOrderRoutes initializes order intake routes
func (controller *OrderController) InitOrderRoutes() {
	controller.api.POST("/orders", controller.PlaceOrder())
	controller.api.GET("/orders/:orderId", controller.GetOrder())
}

func (controller *OrderController) PlaceOrder() echo.HandlerFunc {
	return func(c echo.Context) error {
		var request model.PlaceOrderRequest
		if err := c.Bind(&request); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		}

		response, err := controller.useCase.PlaceOrder(c.Request().Context(), request)
		if err != nil {
			return c.JSON(http.StatusUnprocessableEntity, map[string]string{"error": err.Error()})
		}

		return c.JSON(http.StatusAccepted, response)
	}
}

func (controller *OrderController) GetOrder() echo.HandlerFunc {
	return func(c echo.Context) error {
		orderEntity, err := controller.useCase.GetOrder(c.Request().Context(), c.Param("orderId"))
		if err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
		}
		if orderEntity == nil {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "order not found"})
		}

		return c.JSON(http.StatusOK, orderEntity)
	}
}

package http

import (
	"encoding/json"
	"time"

	"orders/internal/core/application/usecases/commands"
	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/ports"

	"github.com/shopspring/decimal"
)

type CreateOrderItemRequest struct {
	ProductID kernel.UUID `json:"productId"`
	Quantity  int         `json:"quantity"`
}

type CreateOrderRequest struct {
	ResellerID kernel.UUID              `json:"resellerId"`
	CustomerID kernel.UUID              `json:"customerId"`
	Items      []CreateOrderItemRequest `json:"items"`
}

func (r CreateOrderRequest) commandItems() []commands.CreateOrderItem {
	items := make([]commands.CreateOrderItem, len(r.Items))
	for i, item := range r.Items {
		items[i] = commands.CreateOrderItem{ProductID: item.ProductID, Quantity: item.Quantity}
	}
	return items
}

type UpdateOrderStatusRequest struct {
	NewStatusName string       `json:"newStatusName"`
	NewStatusID   *kernel.UUID `json:"newStatusId"`
}

type OrderSummaryResponse struct {
	ID         kernel.UUID `json:"id"`
	ResellerID kernel.UUID `json:"resellerId"`
	CustomerID kernel.UUID `json:"customerId"`
	StatusID   kernel.UUID `json:"statusId"`
	StatusName string      `json:"statusName"`
	CreatedAt  time.Time   `json:"createdDate"`
	ItemCount  int         `json:"itemCount"`
	TotalCost  json.Number `json:"totalCost"`
	TotalPrice json.Number `json:"totalPrice"`
}

type OrderItemResponse struct {
	ID          kernel.UUID `json:"id"`
	OrderID     kernel.UUID `json:"orderId"`
	ProductID   kernel.UUID `json:"productId"`
	ProductName string      `json:"productName"`
	ServiceID   kernel.UUID `json:"serviceId"`
	ServiceName string      `json:"serviceName"`
	Quantity    int         `json:"quantity"`
	UnitCost    json.Number `json:"unitCost"`
	UnitPrice   json.Number `json:"unitPrice"`
	TotalCost   json.Number `json:"totalCost"`
	TotalPrice  json.Number `json:"totalPrice"`
}

type OrderDetailResponse struct {
	ID         kernel.UUID         `json:"id"`
	ResellerID kernel.UUID         `json:"resellerId"`
	CustomerID kernel.UUID         `json:"customerId"`
	StatusID   kernel.UUID         `json:"statusId"`
	StatusName string              `json:"statusName"`
	CreatedAt  time.Time           `json:"createdDate"`
	TotalCost  json.Number         `json:"totalCost"`
	TotalPrice json.Number         `json:"totalPrice"`
	Items      []OrderItemResponse `json:"items"`
}

// money renders an amount as a bare JSON number.
func money(d decimal.Decimal) json.Number {
	return json.Number(d.String())
}

func toSummaryResponses(orders []ports.OrderSummary) []OrderSummaryResponse {
	response := make([]OrderSummaryResponse, len(orders))
	for i, o := range orders {
		response[i] = OrderSummaryResponse{
			ID:         o.ID,
			ResellerID: o.ResellerID,
			CustomerID: o.CustomerID,
			StatusID:   o.StatusID,
			StatusName: o.StatusName,
			CreatedAt:  o.CreatedAt,
			ItemCount:  o.ItemCount,
			TotalCost:  money(o.TotalCost),
			TotalPrice: money(o.TotalPrice),
		}
	}
	return response
}

func toDetailResponse(d ports.OrderDetail) OrderDetailResponse {
	items := make([]OrderItemResponse, len(d.Items))
	for i, item := range d.Items {
		items[i] = OrderItemResponse{
			ID:          item.ID,
			OrderID:     item.OrderID,
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			ServiceID:   item.ServiceID,
			ServiceName: item.ServiceName,
			Quantity:    item.Quantity,
			UnitCost:    money(item.UnitCost),
			UnitPrice:   money(item.UnitPrice),
			TotalCost:   money(item.TotalCost),
			TotalPrice:  money(item.TotalPrice),
		}
	}

	return OrderDetailResponse{
		ID:         d.ID,
		ResellerID: d.ResellerID,
		CustomerID: d.CustomerID,
		StatusID:   d.StatusID,
		StatusName: d.StatusName,
		CreatedAt:  d.CreatedAt,
		TotalCost:  money(d.TotalCost),
		TotalPrice: money(d.TotalPrice),
		Items:      items,
	}
}

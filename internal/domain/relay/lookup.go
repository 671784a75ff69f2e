package relay

import (
	"encoding/json"
	"fmt"
)

// ProductDetails is the public view of a Supplier Portal product.
// Fields absent upstream are omitted; internal upstream fields never appear.
type ProductDetails struct {
	ID                   json.RawMessage `json:"id,omitempty"`
	Name                 json.RawMessage `json:"name,omitempty"`
	Description          json.RawMessage `json:"description,omitempty"`
	Price                json.RawMessage `json:"price,omitempty"`
	Currency             json.RawMessage `json:"currency,omitempty"`
	Category             json.RawMessage `json:"category,omitempty"`
	Subcategory          json.RawMessage `json:"subcategory,omitempty"`
	Stock                json.RawMessage `json:"stock,omitempty"`
	Unit                 json.RawMessage `json:"unit,omitempty"`
	ImageURL             json.RawMessage `json:"imageUrl"`
	IsAvailable          json.RawMessage `json:"isAvailable,omitempty"`
	MinimumOrderQuantity json.RawMessage `json:"minimumOrderQuantity,omitempty"`
	LeadTimeDays         json.RawMessage `json:"leadTimeDays,omitempty"`
	Brand                json.RawMessage `json:"brand,omitempty"`
	SKU                  json.RawMessage `json:"sku,omitempty"`
	Specifications       json.RawMessage `json:"specifications,omitempty"`
	SupplierID           json.RawMessage `json:"supplierId,omitempty"`
	UpdatedAt            json.RawMessage `json:"updatedAt,omitempty"`
}

// ProjectProduct maps a Supplier Portal product document onto ProductDetails
func ProjectProduct(raw json.RawMessage) (*ProductDetails, error) {
	src, err := decodeObject(raw)
	if err != nil {
		return nil, err
	}
	return &ProductDetails{
		ID:                   src["id"],
		Name:                 src["name"],
		Description:          src["description"],
		Price:                src["unitPrice"],
		Currency:             src["currency"],
		Category:             src["category"],
		Subcategory:          src["subcategory"],
		Stock:                src["stockQuantity"],
		Unit:                 src["unit"],
		ImageURL:             firstImage(src["images"]),
		IsAvailable:          src["isAvailable"],
		MinimumOrderQuantity: src["minimumOrderQuantity"],
		LeadTimeDays:         src["leadTimeDays"],
		Brand:                src["brand"],
		SKU:                  src["sku"],
		Specifications:       src["specifications"],
		SupplierID:           src["supplierId"],
		UpdatedAt:            src["updated_at"],
	}, nil
}

// OrderDetails is the public view of a Supplier Portal order
type OrderDetails struct {
	ID                    json.RawMessage `json:"id,omitempty"`
	OrderNumber           json.RawMessage `json:"orderNumber,omitempty"`
	RestaurantID          json.RawMessage `json:"restaurantId,omitempty"`
	SupplierID            json.RawMessage `json:"supplierId,omitempty"`
	Items                 json.RawMessage `json:"items,omitempty"`
	Subtotal              json.RawMessage `json:"subtotal,omitempty"`
	Tax                   json.RawMessage `json:"tax,omitempty"`
	Shipping              json.RawMessage `json:"shipping,omitempty"`
	Discount              json.RawMessage `json:"discount,omitempty"`
	Total                 json.RawMessage `json:"total,omitempty"`
	Status                json.RawMessage `json:"status,omitempty"`
	OrderDate             json.RawMessage `json:"orderDate,omitempty"`
	RequestedDeliveryDate json.RawMessage `json:"requestedDeliveryDate,omitempty"`
	ConfirmedDeliveryDate json.RawMessage `json:"confirmedDeliveryDate,omitempty"`
	ActualDeliveryDate    json.RawMessage `json:"actualDeliveryDate,omitempty"`
	Notes                 json.RawMessage `json:"notes,omitempty"`
	DeliveryAddress       json.RawMessage `json:"deliveryAddress,omitempty"`
	PaymentStatus         json.RawMessage `json:"paymentStatus,omitempty"`
	PaymentDueDate        json.RawMessage `json:"paymentDueDate,omitempty"`
	CreatedAt             json.RawMessage `json:"createdAt,omitempty"`
	UpdatedAt             json.RawMessage `json:"updatedAt,omitempty"`
}

// ProjectOrder maps a Supplier Portal order document onto OrderDetails
func ProjectOrder(raw json.RawMessage) (*OrderDetails, error) {
	src, err := decodeObject(raw)
	if err != nil {
		return nil, err
	}
	return &OrderDetails{
		ID:                    src["id"],
		OrderNumber:           src["orderNumber"],
		RestaurantID:          src["restaurantId"],
		SupplierID:            src["supplierId"],
		Items:                 src["items"],
		Subtotal:              src["subtotal"],
		Tax:                   src["tax"],
		Shipping:              src["shipping"],
		Discount:              src["discount"],
		Total:                 src["total"],
		Status:                src["status"],
		OrderDate:             src["orderDate"],
		RequestedDeliveryDate: src["requestedDeliveryDate"],
		ConfirmedDeliveryDate: src["confirmedDeliveryDate"],
		ActualDeliveryDate:    src["actualDeliveryDate"],
		Notes:                 src["notes"],
		DeliveryAddress:       src["deliveryAddress"],
		PaymentStatus:         src["paymentStatus"],
		PaymentDueDate:        src["paymentDueDate"],
		CreatedAt:             src["created_at"],
		UpdatedAt:             src["updated_at"],
	}, nil
}

func decodeObject(raw json.RawMessage) (map[string]json.RawMessage, error) {
	var src map[string]json.RawMessage
	if err := json.Unmarshal(raw, &src); err != nil {
		return nil, fmt.Errorf("%w: expected a JSON object: %v", ErrPlatformInvalidResponse, err)
	}
	if src == nil {
		return nil, fmt.Errorf("%w: empty document", ErrPlatformInvalidResponse)
	}
	return src, nil
}

// firstImage returns images[0], or null when there is no usable first image
func firstImage(raw json.RawMessage) json.RawMessage {
	null := json.RawMessage("null")
	var images []json.RawMessage
	if err := json.Unmarshal(raw, &images); err != nil || len(images) == 0 {
		return null
	}
	if first := nullJSON(images[0]); first != nil {
		return first
	}
	return null
}

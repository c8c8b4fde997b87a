package request

import (
	"propdraft/internal/domain/entities"
)

type PricingItemRequest struct {
	DeliverableID string  `json:"deliverable_id" binding:"required"`
	UnitPrice     float64 `json:"unit_price" binding:"required"`
	Notes         string  `json:"notes"`
}

// PricingItemsRequest replaces the whole pricing item list in one batch.
type PricingItemsRequest struct {
	Items []PricingItemRequest `json:"items" binding:"required"`
}

func (r PricingItemsRequest) ToItems() []entities.PricingItem {
	items := make([]entities.PricingItem, 0, len(r.Items))
	for _, it := range r.Items {
		items = append(items, entities.PricingItem{
			DeliverableID: it.DeliverableID,
			UnitPrice:     it.UnitPrice,
			Notes:         it.Notes,
		})
	}
	return items
}

package dto

const (
	EventProductCreated = "product_created"
	EventProductUpdated = "product_updated"
	EventProductDeleted = "product_deleted"
)

type KafkaMessage struct {
	EventID   string      `json:"event_id"`
	EventType string      `json:"event_type"`
	Data      interface{} `json:"data"`
}

type ProductUpdatedEvent struct {
	Product       interface{} `json:"product"`
	ChangedFields []string    `json:"changed_fields"`
}

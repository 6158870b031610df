package dto

// BulkCancelRequest describes the administrative mass-cancel payload.
type BulkCancelRequest struct {
	IDs    []int64 `json:"ids"`
	Reason string  `json:"reason"`
}

// BulkStatusRequest describes the administrative mass-transition payload
// shared by the order and product status endpoints.
type BulkStatusRequest struct {
	IDs    []int64 `json:"ids"`
	Status string  `json:"status"`
}

// BulkItemResponse describes the outcome for one item in a batch.
type BulkItemResponse struct {
	ID    int64  `json:"id"`
	OK    bool   `json:"ok"`
	Error string `json:"error,omitempty"`
}

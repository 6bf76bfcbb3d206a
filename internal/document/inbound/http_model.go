package inbound

const (
	contentTypeJSON = "application/json"

	msgSaved       = "Saved successfully"
	msgInvalidJSON = "Invalid JSON"
)

type SaveResponse struct {
	Message string `json:"message"`
}

package dto

// UploadResponse carries the accessible path of an uploaded file
type UploadResponse struct {
	Path string `json:"path" example:"uploads/3f2a9c.jpg"`
}

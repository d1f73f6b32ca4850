//go:generate easyjson dto.go
package intake

const (
	StatusError  = "error"
	StatusQueued = "queued"
	StatusReady  = "ready"

	DefaultResolution = "auto"
)

// easyjson:json
type DownloadRequest struct {
	VideoURL   string `json:"videoUrl"`
	Resolution string `json:"resolution,omitempty"`
	Platform   string `json:"platform,omitempty"`
}

// Response - общий ответ API, вариант определяется полем status
//
// easyjson:json
type Response struct {
	Status      string      `json:"status"`
	Message     string      `json:"message"`
	Data        *QueuedData `json:"data,omitempty"`
	DownloadURL string      `json:"downloadUrl,omitempty"`
	Info        *ReadyInfo  `json:"info,omitempty"`
}

// QueuedData остаётся для клиентов старой версии, сервер отвечает только ready
//
// easyjson:json
type QueuedData struct {
	VideoURL   string `json:"videoUrl"`
	Resolution string `json:"resolution"`
	Platform   string `json:"platform"`
}

// easyjson:json
type ReadyInfo struct {
	VideoURL     string `json:"videoUrl"`
	Resolution   string `json:"resolution"`
	Platform     string `json:"platform"`
	Source       string `json:"source"`
	Filename     string `json:"filename"`
	Title        string `json:"title,omitempty"`
	Author       string `json:"author,omitempty"`
	ThumbnailURL string `json:"thumbnailUrl,omitempty"`
	Duration     int    `json:"duration,omitempty"`
}

// easyjson:json
type InfoResponse struct {
	Name    string `json:"name"`
	Author  string `json:"author"`
	Message string `json:"message"`
}

func ErrorResponse(message string) *Response {
	return &Response{Status: StatusError, Message: message}
}

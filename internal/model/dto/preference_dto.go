package dto

// ToggleRequest 布尔偏好写入（暗色模式、通知开关）
type ToggleRequest struct {
	Enabled bool `json:"enabled"`
}

// ToggleState 布尔偏好读取
type ToggleState struct {
	Enabled bool `json:"enabled"`
}

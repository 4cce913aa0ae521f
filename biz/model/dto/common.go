package dto

type CommonResp struct {
	Success bool   `json:"success"`
	Code    int    `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
	Data    any    `json:"data,omitempty"`
}

func OK(message string) CommonResp {
	return CommonResp{Success: true, Message: message}
}

package response

type Response struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

func Ok(data interface{}) Response {
	return Response{
		Success: true,
		Data:    data,
	}
}

func Error(msg string) Response {
	return Response{
		Success: false,
		Error:   msg,
	}
}

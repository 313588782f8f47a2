package handler

type errorPayload struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error errorPayload `json:"error"`
}

func NewErrorResponse(code, message string) ErrorResponse {
	return ErrorResponse{
		Error: errorPayload{
			Code:    code,
			Message: message,
		},
	}
}

// StatusResponse is the body for mutations with nothing else to report.
type StatusResponse struct {
	Status string `json:"status"`
}

func OK() StatusResponse {
	return StatusResponse{Status: "ok"}
}

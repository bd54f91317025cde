package response

type ResponseCode int

// Success is the code carried by every successful envelope.
const (
	Success = 100
)

type Response struct {
	Message string       `json:"message"`
	Code    ResponseCode `json:"code"`
	Data    any          `json:"data"`
}

func SuccessResponse(data any) Response {
	return Response{
		Message: "success",
		Code:    Success,
		Data:    data,
	}
}

// ErrorResponse renders a business error; field messages travel in Data.
func ErrorResponse(err *BusinessError) Response {
	var data any
	if len(err.Fields) > 0 {
		data = err.Fields
	}
	return Response{
		Message: err.Msg,
		Code:    err.Code,
		Data:    data,
	}
}

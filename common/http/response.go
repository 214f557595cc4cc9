package http

import "net/http"

// Response 统一响应结构
type Response struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// 预定义的响应码
const (
	CodeSuccess      = 0     // 成功
	CodeInvalidParam = 10001 // 参数错误
	CodeTooLarge     = 10002 // 批量请求过大
	CodeNotFound     = 10004 // 资源不存在
	CodeTooMany      = 10003 // 请求过于频繁
	CodeServerError  = 10005 // 服务器内部错误
)

// 预定义的响应消息
const (
	MsgSuccess      = "success"
	MsgInvalidParam = "invalid parameters"
	MsgNotFound     = "not found"
	MsgServerError  = "internal server error"
)

// NewResponse 创建响应
func NewResponse(code int, message string, data any) *Response {
	return &Response{
		Code:    code,
		Message: message,
		Data:    data,
	}
}

// Context 响应方法扩展

// Success 成功响应
func (c *Context) Success(data any) {
	c.JSON(http.StatusOK, NewResponse(CodeSuccess, MsgSuccess, data))
}

// ErrorWithCode 错误响应（自定义错误码）
func (c *Context) ErrorWithCode(code int, message string) {
	c.JSON(http.StatusOK, NewResponse(code, message, nil))
}

// BadRequest 400 错误请求
func (c *Context) BadRequest(message string) {
	if message == "" {
		message = MsgInvalidParam
	}
	c.JSON(http.StatusBadRequest, NewResponse(CodeInvalidParam, message, nil))
}

// TooLarge 413 请求体过大
func (c *Context) TooLarge(message string) {
	c.JSON(http.StatusRequestEntityTooLarge, NewResponse(CodeTooLarge, message, nil))
}

// NotFound 404 资源不存在
func (c *Context) NotFound(message string) {
	if message == "" {
		message = MsgNotFound
	}
	c.JSON(http.StatusNotFound, NewResponse(CodeNotFound, message, nil))
}

// InternalServerError 500 服务器内部错误
func (c *Context) InternalServerError(message string) {
	if message == "" {
		message = MsgServerError
	}
	c.JSON(http.StatusInternalServerError, NewResponse(CodeServerError, message, nil))
}

// TooManyRequests 429 触发限流
func (c *Context) TooManyRequests() {
	c.JSON(http.StatusTooManyRequests, NewResponse(CodeTooMany, "too many requests", nil))
}

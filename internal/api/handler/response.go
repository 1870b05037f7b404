package handler

import "github.com/labstack/echo/v4"

// envelope is the canonical success body: {success:true, message, data}.
// Errors use the error handler's counterpart with success:false.
type envelope struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func respond(c echo.Context, status int, message string, data interface{}) error {
	return c.JSON(status, envelope{Success: true, Message: message, Data: data})
}

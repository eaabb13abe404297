package handler

import (
    "net/http"

    "github.com/labstack/echo/v4"
)

// Health responds to GET /healthz for load balancers and monitoring.
func Health(c echo.Context) error {
    return c.JSON(http.StatusOK, echo.Map{"status": "ok"})
}

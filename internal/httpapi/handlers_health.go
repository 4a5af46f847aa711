package httpapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

type healthResponse struct {
	Status  string `json:"status"`
	Clients int    `json:"clients,omitempty"`
}

func (s *Server) handleLiveness(c echo.Context) error {
	return c.JSON(http.StatusOK, healthResponse{Status: "ok"})
}

func (s *Server) handleReadiness(c echo.Context) error {
	if s.status.Stopped() {
		return c.JSON(http.StatusServiceUnavailable, healthResponse{Status: "stopping"})
	}
	return c.JSON(http.StatusOK, healthResponse{Status: "ready", Clients: s.status.Clients()})
}

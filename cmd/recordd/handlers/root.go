package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// GetRootHandler greets with the current wall-clock time.
//
// It has no store dependency and no failure path.
func GetRootHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		now := time.Now().Format(time.RFC3339)
		return c.String(
			http.StatusOK,
			fmt.Sprintf("Welcome to recordbin! Server time: %s", now),
		)
	}
}

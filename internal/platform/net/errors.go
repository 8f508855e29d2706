package net

import (
	"net/http"

	perr "github.com/Ancientfall/logisticsdashboard-sub006/internal/platform/errors"
)

// HTTPStatus maps a project error to http status
func HTTPStatus(err error) int {
	if err == nil {
		return http.StatusOK
	}
	return perr.HTTPStatus(err)
}

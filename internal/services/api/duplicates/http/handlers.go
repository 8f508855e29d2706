// Package http provides http transport for duplicate detection
package http

import (
	stdhttp "net/http"

	"github.com/Ancientfall/logisticsdashboard-sub006/internal/modkit/httpkit"
	"github.com/Ancientfall/logisticsdashboard-sub006/internal/services/api/duplicates/domain"
	dupdom "github.com/Ancientfall/logisticsdashboard-sub006/internal/services/duplicates/domain"
)

// Register mounts duplicates endpoints on the given router
func Register(r httpkit.Router, scanner dupdom.ScannerPort) {
	h := &handlers{scanner: scanner}
	httpkit.PostJSON[domain.ScanRequest](r, "/scan", h.scan)
}

type handlers struct{ scanner dupdom.ScannerPort }

// swagger:route POST /duplicates/scan Duplicates duplicatesScan
// @Summary Detect duplicate voyage events
// @Tags Duplicates
// @Accept json
// @Produce json
// @Param payload body domain.ScanRequest true "Events"
// @Success 200 {object} dupdom.ScanOutput "ok"
// @Router /duplicates/scan [post]
func (h *handlers) scan(r *stdhttp.Request, in domain.ScanRequest) (any, error) {
	return h.scanner.Scan(r.Context(), dupdom.ScanInput{Events: in.Events})
}

package clinical

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/clindoc/clindoc/internal/platform/auth"
	"github.com/clindoc/clindoc/pkg/pagination"
)

const mimeNDJSON = "application/x-ndjson"

// Handler provides HTTP handlers for the export API.
type Handler struct {
	svc *Service
}

// NewHandler creates a new export handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// RegisterRoutes registers the export routes on the API group.
func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.POST("/exports/bundle", h.BuildBundle)
	api.POST("/exports/ndjson", h.BuildNDJSON)
	api.POST("/exports/upload", h.Upload)
	api.GET("/exports", h.ListExports)
}

// BuildBundle accepts an encounter record and returns the assembled
// collection bundle without uploading it.
func (h *Handler) BuildBundle(c echo.Context) error {
	var rec EncounterRecord
	if err := c.Bind(&rec); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	bundle, err := h.svc.BuildBundle(&rec)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusOK, bundle)
}

// BuildNDJSON accepts an encounter record and returns the per-group NDJSON
// serialization. With "Accept: application/x-ndjson" the resources are
// streamed as one flat NDJSON document instead.
func (h *Handler) BuildNDJSON(c echo.Context) error {
	var rec EncounterRecord
	if err := c.Bind(&rec); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if strings.Contains(c.Request().Header.Get(echo.HeaderAccept), mimeNDJSON) {
		if err := rec.Validate(); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		c.Response().Header().Set(echo.HeaderContentType, mimeNDJSON)
		c.Response().WriteHeader(http.StatusOK)
		return h.svc.WriteNDJSON(&rec, c.Response())
	}
	export, err := h.svc.BuildNDJSON(&rec)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusOK, export)
}

// Upload builds a bundle and pushes it to the FHIR service, forwarding the
// caller's credentials. The upload outcome is reported in the body, not the
// status code: a failed upload is still a 200 with uploaded=false.
func (h *Handler) Upload(c echo.Context) error {
	var rec EncounterRecord
	if err := c.Bind(&rec); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	creds := auth.FromRequest(c.Request())
	uploaded, err := h.svc.Export(c.Request().Context(), &rec, creds)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusOK, map[string]bool{"uploaded": uploaded})
}

// ListExports lists export audit records, optionally filtered by patient_id.
func (h *Handler) ListExports(c echo.Context) error {
	pg := pagination.FromContext(c)
	items, total, err := h.svc.ListExports(c.Request().Context(), c.QueryParam("patient_id"), pg.Limit, pg.Offset)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, pagination.NewResponse(items, total, pg.Limit, pg.Offset))
}

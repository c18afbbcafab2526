package handler

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"

	"github.com/gin-gonic/gin"

	"warga-registry-svc/internal/apperr"
	"warga-registry-svc/internal/models"
	"warga-registry-svc/internal/models/pagination"
	"warga-registry-svc/internal/models/request"
	"warga-registry-svc/internal/service"
	"warga-registry-svc/pkg/logger"
	"warga-registry-svc/pkg/response"
)

// nikPattern validates path-level NIK values (exactly 16 digits)
var nikPattern = regexp.MustCompile(`^\d{16}$`)

// WargaHandler handles warga-related HTTP requests
type WargaHandler struct {
	wargaService service.WargaService
	writer       *response.Writer
	logger       *logger.Logger
}

// NewWargaHandler creates a new warga handler
func NewWargaHandler(wargaService service.WargaService, writer *response.Writer, logger *logger.Logger) *WargaHandler {
	return &WargaHandler{
		wargaService: wargaService,
		writer:       writer,
		logger:       logger,
	}
}

// writeError translates service errors into the response envelope
func (h *WargaHandler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperr.ErrDataNotFound):
		h.logger.WithError(err).Warn("Data not found")
		h.writer.DataNotFound(c)
	case errors.Is(err, apperr.ErrDataExists):
		h.logger.WithError(err).Warn("Data conflict")
		h.writer.Conflict(c)
	default:
		h.logger.WithError(err).Error("Unhandled error")
		h.writer.InternalError(c)
	}
}

// CreateWarga handles POST /warga
// @Summary Register a new warga
// @Description Register a new warga; NIK and phone number must be unique
// @Tags warga
// @Accept json
// @Produce json
// @Param request body request.WargaCreateRequest true "Warga data"
// @Success 201 {object} response.APIResponse{data=response.WargaResponse} "Warga created"
// @Failure 400 {object} response.APIResponse "Invalid request body"
// @Failure 409 {object} response.APIResponse "NIK or phone number already registered"
// @Failure 500 {object} response.APIResponse "Internal server error"
// @Router /warga [post]
func (h *WargaHandler) CreateWarga(c *gin.Context) {
	var req request.WargaCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.WithError(err).Error("Invalid create warga request body")
		h.writer.BadRequest(c, err.Error())
		return
	}

	h.logger.WithField("nama", req.Nama).Info("Incoming create warga")

	res, err := h.wargaService.CreateWarga(c.Request.Context(), req)
	if err != nil {
		h.writeError(c, err)
		return
	}

	h.logger.WithField("nik", res.Nik).Info("Outgoing warga created")
	h.writer.Created(c, res)
}

// GetAllWarga handles GET /warga
// @Summary List warga
// @Description Paginated, filtered and sorted list of warga records
// @Tags warga
// @Accept json
// @Produce json
// @Param page query int false "Page number (1-based)"
// @Param perpage query int false "Page size (max 200)"
// @Param sortField query string false "Sort field (nama, nik, phoneNumber, rt, rw, createdAt)"
// @Param sortDirection query string false "Sort direction (asc or desc)"
// @Param q query string false "Free text search over nik, nama, phone number and alamat"
// @Param rt query int false "Filter by RT"
// @Param rw query int false "Filter by RW"
// @Success 200 {object} response.APIResponse "Page envelope with warga records"
// @Failure 400 {object} response.APIResponse "Invalid query parameter"
// @Failure 500 {object} response.APIResponse "Internal server error"
// @Router /warga [get]
func (h *WargaHandler) GetAllWarga(c *gin.Context) {
	h.logger.Info("Incoming get all warga")

	page, err := intQuery(c, "page")
	if err != nil {
		h.writer.BadRequest(c, err.Error())
		return
	}
	perPage, err := intQuery(c, "perpage")
	if err != nil {
		h.writer.BadRequest(c, err.Error())
		return
	}
	rt, err := intQuery(c, "rt")
	if err != nil {
		h.writer.BadRequest(c, err.Error())
		return
	}
	rw, err := intQuery(c, "rw")
	if err != nil {
		h.writer.BadRequest(c, err.Error())
		return
	}

	req := request.ListWargaRequest{
		Paging: pagination.NewBasePaging(
			page,
			perPage,
			c.Query("sortField"),
			c.Query("sortDirection"),
			c.Query("q"),
		),
		Filter: models.WargaFilter{Rt: rt, Rw: rw},
	}

	envelope, err := h.wargaService.GetAllWarga(c.Request.Context(), req)
	if err != nil {
		h.writeError(c, err)
		return
	}

	h.logger.WithFields(map[string]interface{}{
		"page":           envelope.Page,
		"size":           envelope.Size,
		"total_elements": envelope.TotalElements,
	}).Info("Outgoing all warga data")

	h.writer.Approved(c, envelope)
}

// GetWargaByNik handles GET /warga/by-nik/:nik
// @Summary Get warga by NIK
// @Description Get a single warga record by its 16-digit NIK
// @Tags warga
// @Accept json
// @Produce json
// @Param nik path string true "NIK (16 digits)"
// @Success 200 {object} response.APIResponse{data=response.WargaResponse} "Warga found"
// @Failure 400 {object} response.APIResponse "NIK is not 16 digits"
// @Failure 404 {object} response.APIResponse "Warga not found"
// @Failure 500 {object} response.APIResponse "Internal server error"
// @Router /warga/by-nik/{nik} [get]
func (h *WargaHandler) GetWargaByNik(c *gin.Context) {
	nik := c.Param("nik")
	if !nikPattern.MatchString(nik) {
		h.logger.WithField("nik", nik).Error("Invalid NIK parameter")
		h.writer.BadRequest(c, "NIK harus 16 digit")
		return
	}

	h.logger.WithField("nik", nik).Info("Incoming get warga by NIK")

	res, err := h.wargaService.GetWargaByNik(c.Request.Context(), nik)
	if err != nil {
		h.writeError(c, err)
		return
	}

	h.logger.WithField("nik", nik).Info("Outgoing warga found by NIK")
	h.writer.Approved(c, res)
}

// UpdateWarga handles PUT /warga/:nik
// @Summary Update warga by NIK
// @Description Update the mutable fields of an existing warga
// @Tags warga
// @Accept json
// @Produce json
// @Param nik path string true "NIK (16 digits)"
// @Param request body request.WargaUpdateRequest true "Warga data"
// @Success 200 {object} response.APIResponse{data=response.WargaResponse} "Warga updated"
// @Failure 400 {object} response.APIResponse "Invalid request"
// @Failure 404 {object} response.APIResponse "Warga not found"
// @Failure 409 {object} response.APIResponse "Phone number already registered"
// @Failure 500 {object} response.APIResponse "Internal server error"
// @Router /warga/{nik} [put]
func (h *WargaHandler) UpdateWarga(c *gin.Context) {
	nik := c.Param("nik")
	if !nikPattern.MatchString(nik) {
		h.logger.WithField("nik", nik).Error("Invalid NIK parameter")
		h.writer.BadRequest(c, "NIK harus 16 digit")
		return
	}

	var req request.WargaUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.WithError(err).Error("Invalid update warga request body")
		h.writer.BadRequest(c, err.Error())
		return
	}

	h.logger.WithField("nik", nik).Info("Incoming update warga by NIK")

	res, err := h.wargaService.UpdateWarga(c.Request.Context(), nik, req)
	if err != nil {
		h.writeError(c, err)
		return
	}

	h.logger.WithField("nik", nik).Info("Outgoing warga updated by NIK")
	h.writer.Approved(c, res)
}

// DeleteWarga handles DELETE /warga/:nik
// @Summary Delete warga by NIK
// @Description Remove a warga record by its 16-digit NIK
// @Tags warga
// @Accept json
// @Produce json
// @Param nik path string true "NIK (16 digits)"
// @Success 200 {object} response.APIResponse "Warga deleted"
// @Failure 400 {object} response.APIResponse "NIK is not 16 digits"
// @Failure 404 {object} response.APIResponse "Warga not found"
// @Failure 500 {object} response.APIResponse "Internal server error"
// @Router /warga/{nik} [delete]
func (h *WargaHandler) DeleteWarga(c *gin.Context) {
	nik := c.Param("nik")
	if !nikPattern.MatchString(nik) {
		h.logger.WithField("nik", nik).Error("Invalid NIK parameter")
		h.writer.BadRequest(c, "NIK harus 16 digit")
		return
	}

	h.logger.WithField("nik", nik).Info("Incoming delete warga by NIK")

	if err := h.wargaService.DeleteWarga(c.Request.Context(), nik); err != nil {
		h.writeError(c, err)
		return
	}

	h.logger.WithField("nik", nik).Info("Outgoing warga deleted by NIK")
	h.writer.Approved(c, fmt.Sprintf("Warga dengan NIK %s berhasil dihapus", nik))
}

// intQuery parses an optional integer query parameter; absent values yield 0
func intQuery(c *gin.Context, name string) (int, error) {
	raw := c.Query(name)
	if raw == "" {
		return 0, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("parameter %s harus berupa angka", name)
	}
	return value, nil
}

package response

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// APIResponse is the fixed response envelope for every endpoint.
// ResponseCode is composed as [HTTP status, 3 digits][service id][case code],
// e.g. 404 + "00001" + "14" => "4040000114".
type APIResponse struct {
	ResponseCode string      `json:"responseCode" example:"2000000100"`
	ResponseDesc string      `json:"responseDesc" example:"Approved"`
	Data         interface{} `json:"data,omitempty"`
}

// CaseCode pairs a 2-character case code with its fixed description
type CaseCode struct {
	Code string
	Desc string
}

// Fixed case code table
var (
	CaseApproved             = CaseCode{Code: "00", Desc: "Approved"}
	CaseCreated              = CaseCode{Code: "01", Desc: "Created"}
	CaseBadRequest           = CaseCode{Code: "40", Desc: "Permintaan tidak valid"}
	CaseUnauthorized         = CaseCode{Code: "41", Desc: "Unauthorized"}
	CaseForbidden            = CaseCode{Code: "43", Desc: "Forbidden"}
	CaseRouteNotFound        = CaseCode{Code: "44", Desc: "There is No Resource Path"}
	CaseMethodNotAllowed     = CaseCode{Code: "45", Desc: "Method Not Allowed"}
	CaseUnsupportedMediaType = CaseCode{Code: "47", Desc: "Unsupported Media Type"}
	CaseInvalidInput         = CaseCode{Code: "48", Desc: "Invalid Input"}
	CaseInvalidCredentials   = CaseCode{Code: "51", Desc: "Username/Password salah"}
	CaseServiceUnavailable   = CaseCode{Code: "54", Desc: "Service Unavailable"}
	CaseGatewayTimeout       = CaseCode{Code: "58", Desc: "Gateway Timeout"}
	CaseDataNotFound         = CaseCode{Code: "14", Desc: "Data tidak ditemukan"}
	CaseDataExists           = CaseCode{Code: "15", Desc: "Data sudah ada"}
	CaseTransactionTimeout   = CaseCode{Code: "68", Desc: "Transaction Timeout"}
	CaseInternalError        = CaseCode{Code: "X5", Desc: "Service Internal Error"}
	CaseTooManyRequests      = CaseCode{Code: "99", Desc: "Too Many Requests"}
)

// FormatCode builds the composite response code from HTTP status, service id and case code
func FormatCode(httpStatus int, serviceID, caseCode string) string {
	return fmt.Sprintf("%03d%s%s", httpStatus, serviceID, caseCode)
}

// Writer renders API responses carrying the configured service id
type Writer struct {
	serviceID string
}

// NewWriter creates a response writer for the given service id
func NewWriter(serviceID string) *Writer {
	return &Writer{serviceID: serviceID}
}

// JSON writes the response envelope for an arbitrary status and case code
func (w *Writer) JSON(c *gin.Context, httpStatus int, cs CaseCode, data interface{}) {
	c.JSON(httpStatus, APIResponse{
		ResponseCode: FormatCode(httpStatus, w.serviceID, cs.Code),
		ResponseDesc: cs.Desc,
		Data:         data,
	})
}

// Approved writes a 200 response with case code 00
func (w *Writer) Approved(c *gin.Context, data interface{}) {
	w.JSON(c, http.StatusOK, CaseApproved, data)
}

// Created writes a 201 response with case code 01
func (w *Writer) Created(c *gin.Context, data interface{}) {
	w.JSON(c, http.StatusCreated, CaseCreated, data)
}

// BadRequest writes a 400 response with case code 40; the offending detail goes in data
func (w *Writer) BadRequest(c *gin.Context, detail string) {
	w.JSON(c, http.StatusBadRequest, CaseBadRequest, detail)
}

// DataNotFound writes a 404 response with case code 14
func (w *Writer) DataNotFound(c *gin.Context) {
	w.JSON(c, http.StatusNotFound, CaseDataNotFound, nil)
}

// Conflict writes a 409 response with case code 15
func (w *Writer) Conflict(c *gin.Context) {
	w.JSON(c, http.StatusConflict, CaseDataExists, nil)
}

// RouteNotFound writes a 404 response with case code 44
func (w *Writer) RouteNotFound(c *gin.Context) {
	w.JSON(c, http.StatusNotFound, CaseRouteNotFound, nil)
}

// MethodNotAllowed writes a 405 response with case code 45
func (w *Writer) MethodNotAllowed(c *gin.Context) {
	w.JSON(c, http.StatusMethodNotAllowed, CaseMethodNotAllowed, nil)
}

// InternalError writes a 500 response with case code X5; details are never leaked
func (w *Writer) InternalError(c *gin.Context) {
	w.JSON(c, http.StatusInternalServerError, CaseInternalError, nil)
}

package handler

import (
	"Endpoint_Monitoring_Service/internal/monitoring-service/api/dto/request"
	"Endpoint_Monitoring_Service/internal/monitoring-service/api/dto/response"
	apperrors "Endpoint_Monitoring_Service/internal/monitoring-service/errors"
	"Endpoint_Monitoring_Service/internal/monitoring-service/model"
	"Endpoint_Monitoring_Service/internal/monitoring-service/service"
	"Endpoint_Monitoring_Service/pkg/middleware"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap/zapcore"
)

type EndpointHandler interface {
	GetEndpoints() gin.HandlerFunc
	GetEndpoint() gin.HandlerFunc
	CreateEndpoint() gin.HandlerFunc
	UpdateEndpoint() gin.HandlerFunc
	DeleteEndpoint() gin.HandlerFunc
	GetLatestResults() gin.HandlerFunc
	ExportResultsToExcelFile() gin.HandlerFunc
	GetEndpointUptimePercentage() gin.HandlerFunc
}

type endpointHandler struct {
	logger          Logger
	endpointService service.EndpointService
	validator       *validator.Validate
}

func (*endpointHandler) formatValidationError(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return fmt.Sprintf("The %s field is required", err.Field())
	case "url":
		return fmt.Sprintf("The %s field is not a valid url", err.Field())
	case "datetime":
		return fmt.Sprintf("The %s field is not a valid datetime, use YYYY-MM-DD format", err.Field())
	case "gte":
		if err.Field() == "MonitoringInterval" {
			return "Interval must be at least 1 second"
		}
		return fmt.Sprintf("The %s field must be greater than or equal to %s", err.Field(), err.Param())
	default:
		return fmt.Sprintf("Validation failed for %s with tag %s.", err.Field(), err.Tag())
	}
}

func (h *endpointHandler) bindEndpointRequest(c *gin.Context) (request.EndpointRequest, bool) {
	var req request.EndpointRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		var validatorError validator.ValidationErrors
		if errors.As(err, &validatorError) {
			c.JSON(http.StatusBadRequest, response.Response{
				Message: h.formatValidationError(validatorError[0]),
			})
		} else {
			c.JSON(http.StatusBadRequest, response.Response{
				Message: "Invalid request body",
			})
		}
		return req, false
	}
	return req, true
}

// endpointID answers 404 itself for ids that cannot exist.
func (h *endpointHandler) endpointID(c *gin.Context) (string, bool) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusNotFound, response.Response{
			Message: "Endpoint not found",
		})
		return "", false
	}
	return id, true
}

func (h *endpointHandler) respondError(c *gin.Context, err error, errDescription string) {
	switch {
	case errors.Is(err, apperrors.ErrEndpointNotFound):
		c.JSON(http.StatusNotFound, response.Response{
			Message: "Endpoint not found",
		})
	case errors.Is(err, apperrors.ErrInvalidEndpoint):
		c.JSON(http.StatusBadRequest, response.Response{
			Message: invalidEndpointMessage(err),
		})
	case errors.Is(err, apperrors.ErrInvalidDateRange):
		c.JSON(http.StatusBadRequest, response.Response{
			Message: "Invalid end date",
		})
	case errors.Is(err, apperrors.ErrUptimeUnavailable):
		h.logger.LoggingError(c, err, errDescription, zapcore.WarnLevel)
		c.JSON(http.StatusServiceUnavailable, response.Response{
			Message: "Uptime analytics is not available",
		})
	default:
		h.logger.LoggingError(c, err, errDescription, zapcore.ErrorLevel)
		c.JSON(http.StatusInternalServerError, response.Response{
			Message: "Internal server error",
		})
	}
}

// invalidEndpointMessage keeps only the reason part of a validation error.
func invalidEndpointMessage(err error) string {
	msg := err.Error()
	marker := apperrors.ErrInvalidEndpoint.Error() + ": "
	if i := strings.LastIndex(msg, marker); i >= 0 && i+len(marker) < len(msg) {
		reason := msg[i+len(marker):]
		return strings.ToUpper(reason[:1]) + reason[1:]
	}
	return "Invalid endpoint"
}

func toEndpointInfoResponse(endpoint model.MonitoredEndpoint) response.EndpointInfoResponse {
	return response.EndpointInfoResponse{
		ID:                 endpoint.ID,
		Name:               endpoint.Name,
		URL:                endpoint.URL,
		MonitoringInterval: endpoint.MonitoringInterval,
		LastCheckDate:      endpoint.LastCheckDate,
		CreatedAt:          endpoint.CreatedAt,
		UpdatedAt:          endpoint.UpdatedAt,
	}
}

func (h *endpointHandler) GetEndpoints() gin.HandlerFunc {
	return func(c *gin.Context) {
		endpoints, err := h.endpointService.GetEndpoints(c, middleware.UserID(c))
		if err != nil {
			h.respondError(c, fmt.Errorf("EndpointHandler.GetEndpoints: %w", err), "failed to get endpoints")
			return
		}
		endpointsRes := make([]response.EndpointInfoResponse, 0, len(endpoints))
		for _, endpoint := range endpoints {
			endpointsRes = append(endpointsRes, toEndpointInfoResponse(endpoint))
		}
		c.JSON(http.StatusOK, endpointsRes)
	}
}

func (h *endpointHandler) GetEndpoint() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := h.endpointID(c)
		if !ok {
			return
		}
		endpoint, err := h.endpointService.GetEndpoint(c, id, middleware.UserID(c))
		if err != nil {
			h.respondError(c, fmt.Errorf("EndpointHandler.GetEndpoint: %w", err), fmt.Sprintf("failed to get endpoint %s", id))
			return
		}
		c.JSON(http.StatusOK, toEndpointInfoResponse(endpoint))
	}
}

func (h *endpointHandler) CreateEndpoint() gin.HandlerFunc {
	return func(c *gin.Context) {
		req, ok := h.bindEndpointRequest(c)
		if !ok {
			return
		}
		newEndpoint := model.MonitoredEndpoint{
			Name:               req.Name,
			URL:                req.URL,
			OwnerID:            middleware.UserID(c),
			MonitoringInterval: *req.MonitoringInterval,
		}
		created, err := h.endpointService.CreateEndpoint(c, newEndpoint)
		if err != nil {
			h.respondError(c, fmt.Errorf("EndpointHandler.CreateEndpoint: %w", err), "failed to create endpoint")
			return
		}
		c.JSON(http.StatusCreated, toEndpointInfoResponse(created))
	}
}

func (h *endpointHandler) UpdateEndpoint() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := h.endpointID(c)
		if !ok {
			return
		}
		req, ok := h.bindEndpointRequest(c)
		if !ok {
			return
		}
		updatedData := model.MonitoredEndpoint{
			ID:                 id,
			Name:               req.Name,
			URL:                req.URL,
			OwnerID:            middleware.UserID(c),
			MonitoringInterval: *req.MonitoringInterval,
		}
		updated, err := h.endpointService.UpdateEndpoint(c, updatedData)
		if err != nil {
			h.respondError(c, fmt.Errorf("EndpointHandler.UpdateEndpoint: %w", err), fmt.Sprintf("failed to update endpoint %s", id))
			return
		}
		c.JSON(http.StatusOK, toEndpointInfoResponse(updated))
	}
}

func (h *endpointHandler) DeleteEndpoint() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := h.endpointID(c)
		if !ok {
			return
		}
		err := h.endpointService.DeleteEndpoint(c, id, middleware.UserID(c))
		if err != nil {
			h.respondError(c, fmt.Errorf("EndpointHandler.DeleteEndpoint: %w", err), fmt.Sprintf("failed to delete endpoint %s", id))
			return
		}
		c.Status(http.StatusNoContent)
	}
}

func (h *endpointHandler) latestResults(c *gin.Context) (string, []model.MonitoringResult, bool) {
	id, ok := h.endpointID(c)
	if !ok {
		return "", nil, false
	}
	limit := 0
	if l := c.Query("limit"); l != "" {
		var err error
		limit, err = strconv.Atoi(l)
		if err != nil {
			c.JSON(http.StatusBadRequest, response.Response{
				Message: "Limit must be an integer",
			})
			return "", nil, false
		}
	}
	results, err := h.endpointService.GetLatestResults(c, id, middleware.UserID(c), limit)
	if err != nil {
		h.respondError(c, fmt.Errorf("EndpointHandler.latestResults: %w", err), fmt.Sprintf("failed to get results of endpoint %s", id))
		return "", nil, false
	}
	return id, results, true
}

func (h *endpointHandler) GetLatestResults() gin.HandlerFunc {
	return func(c *gin.Context) {
		_, results, ok := h.latestResults(c)
		if !ok {
			return
		}
		resultsRes := make([]response.MonitoringResultResponse, 0, len(results))
		for _, result := range results {
			resultsRes = append(resultsRes, response.MonitoringResultResponse{
				ID:         result.ID,
				EndpointID: result.EndpointID,
				CheckDate:  result.CheckDate,
				StatusCode: result.StatusCode,
				Payload:    result.Payload,
				Failed:     result.Failed(),
			})
		}
		c.JSON(http.StatusOK, resultsRes)
	}
}

func (h *endpointHandler) ExportResultsToExcelFile() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, results, ok := h.latestResults(c)
		if !ok {
			return
		}
		file, err := h.generateExcelFile(results)
		if err != nil {
			h.respondError(c, fmt.Errorf("EndpointHandler.ExportResultsToExcelFile: %w", err), fmt.Sprintf("failed to export results of endpoint %s", id))
			return
		}
		defer file.Close()
		fileName := fmt.Sprintf("results-%s-%s.xlsx", id, time.Now().Format("2006-01-02T15:04:05"))
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s\"", fileName))
		if err = file.Write(c.Writer); err != nil {
			h.respondError(c, fmt.Errorf("EndpointHandler.ExportResultsToExcelFile: %w", err), fmt.Sprintf("failed to export results of endpoint %s", id))
			return
		}
		c.Status(http.StatusOK)
	}
}

const (
	resultsSheetName = "Results"
	maxCellChars     = 32767
)

func (h *endpointHandler) generateExcelFile(results []model.MonitoringResult) (*excelize.File, error) {
	f := excelize.NewFile()
	index, err := f.NewSheet(resultsSheetName)
	if err != nil {
		f.Close()
		return nil, err
	}
	headers := []interface{}{"id", "endpoint_id", "check_date", "status_code", "payload"}
	if err = f.SetSheetRow(resultsSheetName, "A1", &headers); err != nil {
		f.Close()
		return nil, err
	}
	for i, result := range results {
		var statusCode interface{} = "failed"
		if result.StatusCode != nil {
			statusCode = *result.StatusCode
		}
		rowData := []interface{}{
			result.ID,
			result.EndpointID,
			result.CheckDate.Format("2006-01-02 15:04:05"),
			statusCode,
			truncateCell(result.Payload),
		}
		if err = f.SetSheetRow(resultsSheetName, fmt.Sprintf("A%d", i+2), &rowData); err != nil {
			f.Close()
			return nil, err
		}
	}
	f.SetActiveSheet(index)
	return f, nil
}

// truncateCell keeps a payload under the excel cell limit.
func truncateCell(s string) string {
	if len(s) <= maxCellChars {
		return s
	}
	return strings.ToValidUTF8(s[:maxCellChars], "")
}

func (h *endpointHandler) GetEndpointUptimePercentage() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := h.endpointID(c)
		if !ok {
			return
		}
		req := request.UptimeRequest{
			StartDate: c.Query("start_date"),
			EndDate:   c.Query("end_date"),
		}
		if err := h.validator.Struct(req); err != nil {
			var validatorError validator.ValidationErrors
			if errors.As(err, &validatorError) {
				c.JSON(http.StatusBadRequest, response.Response{
					Message: h.formatValidationError(validatorError[0]),
				})
			} else {
				c.JSON(http.StatusBadRequest, response.Response{
					Message: "Invalid query parameters",
				})
			}
			return
		}
		startTime, _ := time.Parse(time.DateOnly, req.StartDate)
		endTime, _ := time.Parse(time.DateOnly, req.EndDate)
		if endTime.Before(startTime) {
			c.JSON(http.StatusBadRequest, response.Response{
				Message: "Invalid end date",
			})
			return
		}
		// end date is inclusive
		endTimeFinal := endTime.AddDate(0, 0, 1)
		res, err := h.endpointService.GetEndpointUptimePercentage(c, id, middleware.UserID(c), startTime, endTimeFinal)
		if err != nil {
			h.respondError(c, fmt.Errorf("EndpointHandler.GetEndpointUptimePercentage: %w", err), fmt.Sprintf("failed to get uptime percentage of endpoint %s from %s to %s", id, req.StartDate, req.EndDate))
			return
		}
		c.JSON(http.StatusOK, response.UptimeResponse{
			UptimePercentage: res,
		})
	}
}

func NewEndpointHandler(logger Logger, endpointService service.EndpointService) EndpointHandler {
	return &endpointHandler{
		logger:          logger,
		endpointService: endpointService,
		validator:       validator.New(),
	}
}

package handler

import (
	"encoding/csv"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/securecargo/website-api/internal/core/ports"
)

// ContactHandler serves the public contact form and the admin views over
// stored submissions.
type ContactHandler struct {
	intake ports.IntakeService
}

func NewContactHandler(intake ports.IntakeService) *ContactHandler {
	return &ContactHandler{intake: intake}
}

// Submit accepts a contact-form submission.
//
// @Summary      Submit contact form
// @Tags         contact
// @Accept       json
// @Produce      json
// @Param        body  body      contactRequest  true  "Submission"
// @Success      201   {object}  contactResponse
// @Failure      400   {object}  errorResponse
// @Failure      429   {object}  errorResponse
// @Router       /api/contact [post]
func (h *ContactHandler) Submit(c echo.Context) error {
	var req contactRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	sub, err := h.intake.Submit(c.Request().Context(), ports.ContactInput{
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Message:  req.Message,
		SourceIP: c.RealIP(),
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, contactResponse{Success: true, ID: sub.ID})
}

// ListSubmissions returns all stored submissions, newest first.
//
// @Summary      List contact submissions
// @Tags         contact
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.ContactSubmission
// @Router       /api/admin/contact-submissions [get]
func (h *ContactHandler) ListSubmissions(c echo.Context) error {
	subs, err := h.intake.ListSubmissions(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, subs)
}

// DeleteSubmission removes a stored submission.
func (h *ContactHandler) DeleteSubmission(c echo.Context) error {
	if err := h.intake.DeleteSubmission(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, successResponse{Success: true})
}

// ExportCSV streams all submissions as a CSV attachment. Commas inside free
// text become semicolons and newlines become spaces so downstream
// spreadsheet imports stay one-row-per-submission.
func (h *ContactHandler) ExportCSV(c echo.Context) error {
	subs, err := h.intake.ListSubmissions(c.Request().Context())
	if err != nil {
		return err
	}

	res := c.Response()
	res.Header().Set(echo.HeaderContentType, "text/csv")
	res.Header().Set(echo.HeaderContentDisposition, `attachment; filename=contact_submissions.csv`)
	res.WriteHeader(http.StatusOK)

	w := csv.NewWriter(res)
	if err := w.Write([]string{"Name", "Email", "Phone", "Message", "Date"}); err != nil {
		return err
	}
	for _, s := range subs {
		record := []string{
			strings.ReplaceAll(s.Name, ",", ";"),
			s.Email,
			s.Phone,
			csvText(s.Message),
			s.CreatedAt.Format("2006-01-02 15:04:05"),
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

func csvText(s string) string {
	s = strings.ReplaceAll(s, ",", ";")
	s = strings.ReplaceAll(s, "\r\n", " ")
	return strings.ReplaceAll(s, "\n", " ")
}

package service

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/luct-ict/reporting-api/internal/models"
	"github.com/luct-ict/reporting-api/internal/policy"
	appErrors "github.com/luct-ict/reporting-api/pkg/errors"
	"github.com/luct-ict/reporting-api/pkg/export"
)

// Spreadsheet formats accepted by the export endpoint. XLSX is the default
// and matches what the legacy system produced.
const (
	FormatXLSX = "xlsx"
	FormatCSV  = "csv"
	FormatPDF  = "pdf"
)

// reportColumns is the fixed 13-column layout of a reports export.
var reportColumns = []string{
	"Date", "Faculty", "Class", "Course Code", "Course Name", "Lecturer",
	"Students Present", "Venue", "Scheduled Time", "Topic",
	"Learning Outcomes", "Recommendations", "Week",
}

// reportColumnWidths mirrors the preset widths of the legacy spreadsheet.
var reportColumnWidths = []float64{12, 15, 15, 12, 25, 20, 15, 15, 15, 30, 40, 40, 15}

type exportReportRepository interface {
	FindByDateRange(ctx context.Context, start, end time.Time, lecturerID *int64) ([]models.ReportDetail, error)
}

type xlsxRenderer interface {
	Render(data export.Dataset) ([]byte, error)
}

type csvRenderer interface {
	Render(data export.Dataset) ([]byte, error)
}

type pdfRenderer interface {
	Render(data export.Dataset, title string) ([]byte, error)
}

// ExportFile is a rendered download.
type ExportFile struct {
	Filename    string
	ContentType string
	Data        []byte
}

// ExportService turns date-ranged report listings into downloadable files.
// Rendering is pure; the only I/O is the repository read.
type ExportService struct {
	reports exportReportRepository
	xlsx    xlsxRenderer
	csv     csvRenderer
	pdf     pdfRenderer
	logger  *zap.Logger
}

// NewExportService constructs an ExportService.
func NewExportService(reports exportReportRepository, logger *zap.Logger, xlsx xlsxRenderer, csv csvRenderer, pdf pdfRenderer) *ExportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if xlsx == nil {
		xlsx = export.NewXLSXExporter("Reports")
	}
	if csv == nil {
		csv = export.NewCSVExporter()
	}
	if pdf == nil {
		pdf = export.NewPDFExporter()
	}
	return &ExportService{reports: reports, xlsx: xlsx, csv: csv, pdf: pdf, logger: logger}
}

// ExportReports renders the reports within the inclusive date range visible
// to the caller. Lecturers only ever export their own reports.
func (s *ExportService) ExportReports(ctx context.Context, claims *models.JWTClaims, startDate, endDate, format string) (*ExportFile, error) {
	if startDate == "" || endDate == "" {
		return nil, appErrors.Clone(appErrors.ErrValidation, "Start date and end date are required")
	}
	start, err := time.Parse(lectureDateLayout, startDate)
	if err != nil {
		return nil, appErrors.Clone(appErrors.ErrValidation, "startDate must be formatted YYYY-MM-DD")
	}
	end, err := time.Parse(lectureDateLayout, endDate)
	if err != nil {
		return nil, appErrors.Clone(appErrors.ErrValidation, "endDate must be formatted YYYY-MM-DD")
	}

	var owner *int64
	if policy.SearchOwnerScoped(claims.Role) {
		owner = &claims.UserID
	}

	reports, err := s.reports.FindByDateRange(ctx, start, end, owner)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load reports for export")
	}
	if len(reports) == 0 {
		return nil, appErrors.ErrEmptyExport
	}

	dataset := BuildReportDataset(reports)

	if format == "" {
		format = FormatXLSX
	}
	var (
		payload     []byte
		contentType string
	)
	switch format {
	case FormatXLSX:
		payload, err = s.xlsx.Render(dataset)
		contentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	case FormatCSV:
		payload, err = s.csv.Render(dataset)
		contentType = "text/csv"
	case FormatPDF:
		payload, err = s.pdf.Render(dataset, fmt.Sprintf("Lecture Reports %s to %s", startDate, endDate))
		contentType = "application/pdf"
	default:
		return nil, appErrors.Clone(appErrors.ErrValidation, "format must be xlsx, csv or pdf")
	}
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render export")
	}

	s.logger.Info("reports exported",
		zap.Int("rows", len(reports)),
		zap.String("format", format),
		zap.String("start", startDate),
		zap.String("end", endDate))

	return &ExportFile{
		Filename:    fmt.Sprintf("reports-%s-to-%s.%s", startDate, endDate, format),
		ContentType: contentType,
		Data:        payload,
	}, nil
}

// BuildReportDataset maps report rows onto the fixed 13-column export layout
// in input order.
func BuildReportDataset(reports []models.ReportDetail) export.Dataset {
	rows := make([]map[string]string, 0, len(reports))
	for _, r := range reports {
		lecturer := r.LecturerName
		if lecturer == "" {
			lecturer = "N/A"
		}
		recommendations := r.Recommendations
		if recommendations == "" {
			recommendations = "None"
		}
		rows = append(rows, map[string]string{
			"Date":              r.DateOfLecture.Format("1/2/2006"),
			"Faculty":           r.FacultyName,
			"Class":             r.ClassName,
			"Course Code":       r.CourseCode,
			"Course Name":       r.CourseName,
			"Lecturer":          lecturer,
			"Students Present":  strconv.Itoa(r.ActualStudentsPresent),
			"Venue":             r.Venue,
			"Scheduled Time":    r.ScheduledLectureTime,
			"Topic":             r.TopicTaught,
			"Learning Outcomes": r.LearningOutcomes,
			"Recommendations":   recommendations,
			"Week":              r.WeekOfReporting,
		})
	}
	return export.Dataset{Headers: reportColumns, Rows: rows, ColumnWidths: reportColumnWidths}
}

package api

import (
	"embed"
	"html/template"
	"math"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yt-insights/channel-report/internal/apperrors"
	"github.com/yt-insights/channel-report/internal/metrics"
	"github.com/yt-insights/channel-report/internal/models"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

//go:embed templates/*.tmpl
var templatesFS embed.FS

const noCacheHeader = "no-cache, no-store, must-revalidate"

var errorHeadings = map[string]string{
	apperrors.CodeMissingParameter:    "Missing parameter",
	apperrors.CodeChannelNotFound:     "Channel not found",
	apperrors.CodeUpstreamUnavailable: "Could not load the data",
	apperrors.CodeUnconfigured:        "API not configured",
}

func loadTemplates() *template.Template {
	funcs := template.FuncMap{
		"usd": func(n int64) string {
			return message.NewPrinter(language.English).Sprintf("$%d", n)
		},
		"views": func(v float64) string {
			return metrics.FormatNumber(int64(math.Round(v)))
		},
		"percent": func(v float64) string {
			return message.NewPrinter(language.English).Sprintf("%.2f%%", v)
		},
	}
	return template.Must(template.New("").Funcs(funcs).ParseFS(templatesFS, "templates/*.tmpl"))
}

func renderReport(c *gin.Context, report models.MetricsReport, view models.ReportView) {
	c.Header("Cache-Control", noCacheHeader)
	c.HTML(http.StatusOK, "report.tmpl", gin.H{
		"Report":           report,
		"ShowEstimates":    view == models.ViewFull,
		"DefaultThumbnail": metrics.DefaultThumbnailURL,
	})
}

func renderError(c *gin.Context, appErr *apperrors.AppError, query string) {
	heading, ok := errorHeadings[appErr.Code]
	if !ok {
		heading = "Error"
	}
	c.Header("Cache-Control", noCacheHeader)
	c.HTML(appErr.StatusCode, "error.tmpl", gin.H{
		"Heading": heading,
		"Message": appErr.Message,
		"Query":   query,
	})
}

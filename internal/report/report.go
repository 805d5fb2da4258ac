// Package report renders the human-readable output of the pull command.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/MKhiriev/news-radar/models"
	"github.com/charmbracelet/lipgloss"
)

const notAvailable = "N/A"

// ConfigTiers lists the configuration sources in precedence order, lowest
// first.
var ConfigTiers = []string{
	"config/config.yaml",
	"config/hide_config.yaml",
	"environment variables",
}

// Printer writes styled reports to an io.Writer.
type Printer struct {
	w      io.Writer
	styles styles
}

// NewPrinter returns a Printer writing to w. Colors are only emitted when w
// is a terminal.
func NewPrinter(w io.Writer) *Printer {
	return &Printer{w: w, styles: newStyles(lipgloss.NewRenderer(w))}
}

func (p *Printer) line(format string, args ...any) {
	_, _ = fmt.Fprintf(p.w, format+"\n", args...)
}

func (p *Printer) blank() {
	_, _ = fmt.Fprintln(p.w)
}

// Header prints a title underlined by a rule.
func (p *Printer) Header(title string) {
	p.blank()
	p.line("%s", p.styles.title.Render(title))
	p.line("%s", p.styles.rule.Render(strings.Repeat("=", ruleWidth)))
}

// Error prints a failure message.
func (p *Printer) Error(format string, args ...any) {
	p.line("%s %s", p.styles.fail.Render("error:"), fmt.Sprintf(format, args...))
}

// Warn prints a warning message.
func (p *Printer) Warn(format string, args ...any) {
	p.line("%s %s", p.styles.warn.Render("warning:"), fmt.Sprintf(format, args...))
}

// PullPlan announces what is about to be pulled. start and end are empty
// when pulling the most recent days.
func (p *Printer) PullPlan(days int, start, end string, force bool) {
	if start != "" && end != "" {
		p.line("Pulling date range: %s to %s (%d days)", start, end, days)
	} else {
		p.line("Pulling the last %d days", days)
	}

	if force {
		p.Warn("force mode overwrites data that already exists locally")
	}
}

// MissingRemoteFields explains an incomplete remote storage configuration.
func (p *Printer) MissingRemoteFields(missing []string) {
	p.Error("remote storage configuration is incomplete")
	p.line("Missing fields: %s", strings.Join(missing, ", "))
	p.blank()
	p.line("%s", p.styles.section.Render("Configuration precedence (later sources win):"))
	for i, tier := range ConfigTiers {
		p.line("  %d. %s", i+1, tier)
	}
	p.blank()
	p.line("%s", p.styles.help.Render("Provide the missing fields in any of these sources."))
}

// SyncResult prints the outcome of a pull.
func (p *Printer) SyncResult(result models.SyncResult) {
	if !result.Success {
		p.SyncFailure(result.Error)
		return
	}

	p.blank()
	p.line("%s", p.styles.ok.Render("Pull succeeded"))
	p.line("  - synced files: %d", result.SyncedFiles)
	if len(result.SyncedDates) > 0 {
		p.line("  - synced dates: %s", strings.Join(result.SyncedDates, ", "))
	}
	if len(result.SkippedDates) > 0 {
		p.line("  - skipped dates: %s (already present locally)", strings.Join(result.SkippedDates, ", "))
	}
	if len(result.FailedDates) > 0 {
		dates := make([]string, 0, len(result.FailedDates))
		for _, f := range result.FailedDates {
			dates = append(dates, f.Date)
		}
		p.line("  - failed dates: %s", strings.Join(dates, ", "))
		for _, f := range result.FailedDates {
			p.line("    - %s: %s", f.Date, orDefault(f.Error, "unknown error"))
		}
	}
}

// SyncFailure prints the structured error of a failed pull.
func (p *Printer) SyncFailure(e *models.SyncError) {
	if e == nil {
		e = &models.SyncError{}
	}

	p.blank()
	p.line("%s", p.styles.fail.Render("Pull failed"))
	p.line("  - code: %s", orDefault(e.Code, "UNKNOWN"))
	p.line("  - message: %s", orDefault(e.Message, "unknown error"))
	if e.Suggestion != "" {
		p.line("  - suggestion: %s", e.Suggestion)
	}
}

// Status prints a storage status. A basic status shows the configured
// backend, timezone and retention next to the local archive summary.
func (p *Printer) Status(status models.StorageStatus) {
	if status.Basic {
		p.Warn("sync tool unavailable, showing basic status")
		p.line("Storage backend: %s", orDefault(status.Backend, notAvailable))
		p.line("Timezone: %s", orDefault(status.Timezone, notAvailable))
		p.line("Local data directory: %s", orDefault(status.Local.DataDir, notAvailable))
		p.line("Local dates: %d", status.Local.DateCount)
		if r := status.Local.DateRange; r != nil {
			p.line("Local date range: %s to %s", orDefault(r.Start, notAvailable), orDefault(r.End, notAvailable))
		}
		p.line("Local retention: %s", retention(status.Local.RetentionDays))
		p.line("Remote retention: %s", retention(status.Remote.RetentionDays))
		return
	}

	p.blank()
	p.line("%s", p.styles.section.Render("Local storage:"))
	p.line("  - data directory: %s", orDefault(status.Local.DataDir, notAvailable))
	p.line("  - available dates: %d", status.Local.DateCount)
	p.dateRange(status.Local.DateRange)
	if status.Local.RetentionDays > 0 {
		p.line("  - retention: %s", retention(status.Local.RetentionDays))
	}

	p.blank()
	p.line("%s", p.styles.section.Render("Remote storage:"))
	p.line("  - configured: %s", yesNo(status.Remote.Configured))
	if status.Remote.Configured {
		p.line("  - endpoint: %s", orDefault(status.Remote.EndpointURL, notAvailable))
		p.line("  - bucket: %s", orDefault(status.Remote.BucketName, notAvailable))
		p.line("  - available dates: %d", status.Remote.DateCount)
		p.dateRange(status.Remote.DateRange)
		if status.Remote.RetentionDays > 0 {
			p.line("  - retention: %s", retention(status.Remote.RetentionDays))
		}
	}

	p.blank()
	p.line("%s", p.styles.section.Render("Pull settings:"))
	p.line("  - automatic pull: %s", enabledDisabled(status.Pull.Enabled))
	p.line("  - pull days: %d", status.Pull.Days)
}

func (p *Printer) dateRange(r *models.DateRange) {
	if r == nil {
		return
	}
	p.line("  - date range: %s to %s", orDefault(r.Start, notAvailable), orDefault(r.End, notAvailable))
}

// AvailableDates prints the local and remote date lists.
func (p *Printer) AvailableDates(dates models.AvailableDates) {
	p.dateList("Local dates:", dates.LocalDates)
	p.dateList("Remote dates:", dates.RemoteDates)
}

func (p *Printer) dateList(title string, dates []string) {
	p.blank()
	p.line("%s", p.styles.section.Render(title))
	if len(dates) == 0 {
		p.line("  (none)")
		return
	}
	for _, d := range dates {
		p.line("  - %s", d)
	}
}

// BuildInfo prints the version banner.
func (p *Printer) BuildInfo(info models.AppBuildInfo) {
	p.line("Build version: %s", info.BuildVersion())
	p.line("Build date: %s", info.BuildDate())
	p.line("Build commit: %s", info.BuildCommit())
}

func orDefault(v, def string) string {
	if strings.TrimSpace(v) == "" {
		return def
	}
	return v
}

// retention renders a retention period; 0 means it is not configured.
func retention(days int) string {
	if days <= 0 {
		return notAvailable
	}
	return fmt.Sprintf("%d days", days)
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func enabledDisabled(b bool) string {
	if b {
		return "enabled"
	}
	return "disabled"
}

package scheduler

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"tracker/src/models"
	"tracker/src/repositories"
	"tracker/src/schemas"
	"tracker/src/services"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

type ScheduledTask struct {
	cronID cron.EntryID
	cron   *cron.Cron
	cancel chan struct{}
}

func NewScheduledTask(c *cron.Cron, cronSpec string, taskFunc func()) (*ScheduledTask, error) {
	cancel := make(chan struct{})
	task := &ScheduledTask{
		cron:   c,
		cancel: cancel,
	}

	id, err := c.AddFunc(cronSpec, func() {
		select {
		case <-cancel:
			return
		default:
			taskFunc()
		}
	})
	if err != nil {
		return nil, err
	}

	task.cronID = id
	return task, nil
}

func (s *ScheduledTask) Cancel() {
	s.cron.Remove(s.cronID)
	close(s.cancel)
}

// ReportScheduler runs the active report schedules and writes the generated
// files to the output directory.
type ReportScheduler struct {
	logger       *logrus.Logger
	cron         *cron.Cron
	tasks        []*ScheduledTask
	outputDir    string
	schedules    repositories.ReportScheduleRepository
	holdings     repositories.HoldingRepository
	transactions repositories.TransactionRepository
	summary      *services.SummaryService
	export       *services.ExportService
}

func NewReportScheduler(
	logger *logrus.Logger,
	outputDir string,
	schedules repositories.ReportScheduleRepository,
	holdings repositories.HoldingRepository,
	transactions repositories.TransactionRepository,
	summary *services.SummaryService,
	export *services.ExportService,
) *ReportScheduler {
	return &ReportScheduler{
		logger:       logger,
		cron:         cron.New(),
		outputDir:    outputDir,
		schedules:    schedules,
		holdings:     holdings,
		transactions: transactions,
		summary:      summary,
		export:       export,
	}
}

// Start registers every active schedule and launches the cron loop.
func (rs *ReportScheduler) Start() error {
	if err := os.MkdirAll(rs.outputDir, 0o755); err != nil {
		return err
	}

	all, err := rs.schedules.GetAll()
	if err != nil {
		return err
	}
	for i := range all {
		schedule := all[i]
		if !schedule.Active {
			continue
		}
		task, err := NewScheduledTask(rs.cron, schedule.CronSpec, func() {
			rs.runSchedule(schedule)
		})
		if err != nil {
			rs.logger.Warnf("skipping schedule %d: invalid cron spec %q: %v", schedule.ID, schedule.CronSpec, err)
			continue
		}
		rs.tasks = append(rs.tasks, task)
	}

	rs.cron.Start()
	rs.logger.Infof("report scheduler started with %d active schedules", len(rs.tasks))
	return nil
}

func (rs *ReportScheduler) Stop() {
	for _, task := range rs.tasks {
		task.Cancel()
	}
	rs.cron.Stop()
}

func (rs *ReportScheduler) runSchedule(schedule models.ReportSchedule) {
	ctx, cancelCtx := context.WithTimeout(context.Background(), time.Minute)
	defer cancelCtx()

	now := time.Now()

	holdings, err := rs.holdings.GetByUserID(ctx, schedule.UserID)
	if err != nil {
		rs.logger.Warnf("schedule %d: failed to load holdings: %v", schedule.ID, err)
		return
	}
	txsByHolding, err := rs.transactions.GetByUserID(ctx, schedule.UserID)
	if err != nil {
		rs.logger.Warnf("schedule %d: failed to load transactions: %v", schedule.ID, err)
		return
	}

	granularity, err := schemas.ParseGranularity(schedule.Granularity)
	if err != nil {
		granularity = schemas.GranularityMonth
	}
	count := schedule.PeriodCount
	if count <= 0 {
		count = 12
	}

	doc := rs.summary.ReportDocument(schedule.UserID, holdings, txsByHolding, granularity, count, now)

	path := filepath.Join(rs.outputDir, reportFileName(schedule, now))
	if err := rs.writeReport(path, schedule.Format, doc); err != nil {
		rs.logger.Warnf("schedule %d: failed to write report: %v", schedule.ID, err)
		return
	}

	schedule.LastRunAt = &now
	if err := rs.schedules.Update(&schedule); err != nil {
		rs.logger.Warnf("schedule %d: failed to record last run: %v", schedule.ID, err)
	}
	rs.logger.Infof("schedule %d: report written to %s", schedule.ID, path)
}

func (rs *ReportScheduler) writeReport(path, format string, doc *schemas.ReportDocument) error {
	switch strings.ToUpper(format) {
	case "PDF":
		data, err := rs.export.GeneratePDF(doc)
		if err != nil {
			return err
		}
		return os.WriteFile(path, data, 0o644)
	case "CSV":
		var buf bytes.Buffer
		if err := rs.export.GenerateCSV(&buf, doc); err != nil {
			return err
		}
		return os.WriteFile(path, buf.Bytes(), 0o644)
	default:
		file, err := rs.export.GenerateXLSX(doc)
		if err != nil {
			return err
		}
		return file.SaveAs(path)
	}
}

func reportFileName(schedule models.ReportSchedule, now time.Time) string {
	ext := strings.ToLower(schedule.Format)
	if ext != "pdf" && ext != "csv" {
		ext = "xlsx"
	}
	name := strings.ReplaceAll(strings.ToLower(schedule.Name), " ", "-")
	return fmt.Sprintf("%s-%s.%s", name, now.Format("2006-01-02"), ext)
}

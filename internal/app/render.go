package app

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"tpctools/internal/domain"
	"tpctools/internal/service"
)

// ── Styles ─────────────────────────────────────────────────

var (
	accentColor  = lipgloss.AdaptiveColor{Light: "#5A56E0", Dark: "#7D79F6"}
	successColor = lipgloss.AdaptiveColor{Light: "#2E8B57", Dark: "#A6E3A1"}
	errorColor   = lipgloss.AdaptiveColor{Light: "#C0392B", Dark: "#F38BA8"}
	mutedColor   = lipgloss.AdaptiveColor{Light: "#6C6F85", Dark: "#9399B2"}

	titleStyle   = lipgloss.NewStyle().Foreground(accentColor).Bold(true)
	mutedStyle   = lipgloss.NewStyle().Foreground(mutedColor)
	okStyle      = lipgloss.NewStyle().Foreground(successColor).Bold(true)
	failStyle    = lipgloss.NewStyle().Foreground(errorColor).Bold(true)
	cellStyle    = lipgloss.NewStyle().Padding(0, 1)
	borderStyle  = lipgloss.NewStyle().Foreground(mutedColor)
	messageStyle = lipgloss.NewStyle().Foreground(errorColor)
)

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(borderStyle).
		StyleFunc(func(_, _ int) lipgloss.Style { return cellStyle }).
		Headers(headers...)
}

func status(s domain.Status) string {
	if s == domain.StatusFailed {
		return failStyle.Render(string(s))
	}
	return okStyle.Render(string(s))
}

func state(s domain.TaskState) string {
	switch s {
	case domain.TaskDone:
		return okStyle.Render(string(s))
	case domain.TaskFailed:
		return failStyle.Render(string(s))
	}
	return mutedStyle.Render(string(s))
}

func round(d time.Duration) string {
	return d.Round(time.Millisecond).String()
}

// ── Reports ────────────────────────────────────────────────

// RenderGeneration summarises a generate run: one row per shard, then the
// reconciled tables.
func RenderGeneration(r *domain.GenerationReport) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s  scale %d, %d partitions  %s  %s\n",
		titleStyle.Render(r.Benchmark.String()+" generate"), r.Scale, r.Partitions, status(r.Overall), mutedStyle.Render(round(r.Duration)))

	shards := newTable("shard", "status", "exit", "duration", "error")
	for _, s := range r.Shards {
		shards.Row(strconv.Itoa(s.Shard), status(s.Status), strconv.Itoa(s.ExitCode), round(s.Duration), s.Error)
	}
	b.WriteString(shards.Render())

	if len(r.Reconciled) > 0 {
		b.WriteString("\n")
		tables := newTable("table", "parts", "dir")
		for _, name := range sortedKeys(r.Reconciled) {
			rr := r.Reconciled[name]
			tables.Row(name, strconv.Itoa(len(rr.Partitions)), rr.Dir)
		}
		b.WriteString(tables.Render())
	}
	for _, s := range r.FailedShards() {
		if out := strings.TrimSpace(s.Output); out != "" {
			fmt.Fprintf(&b, "\n%s\n%s", failStyle.Render(fmt.Sprintf("shard %d output:", s.Shard)), messageStyle.Render(out))
		}
	}
	return b.String()
}

// RenderConversion summarises every table a convert run attempted.
func RenderConversion(res *service.ConvertResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s  %d tables  %s\n", titleStyle.Render("convert"), len(res.Tables), mutedStyle.Render(round(res.Duration)))

	t := newTable("table", "status", "partitions", "rows", "files", "codec", "duration")
	for _, r := range res.Tables {
		t.Row(r.Table, status(r.Status), strconv.Itoa(len(r.Partitions)),
			strconv.FormatInt(r.Rows, 10), strconv.Itoa(r.Files), r.Codec.String(), round(r.Duration))
	}
	b.WriteString(t.Render())

	for _, r := range res.Tables {
		if r.Status != domain.StatusFailed {
			continue
		}
		parts := newTable("partition", "state", "rows", "error")
		for _, p := range r.Partitions {
			parts.Row(strconv.Itoa(p.Partition), state(p.State), strconv.FormatInt(p.Rows, 10), p.Error)
		}
		fmt.Fprintf(&b, "\n%s\n%s", failStyle.Render(r.Table+" partitions:"), parts.Render())
	}
	return b.String()
}

// RenderInspect lists converted tables with their sizes.
func RenderInspect(sums []service.TableSummary) string {
	t := newTable("table", "files", "rows", "bytes")
	var rows, bytes int64
	for _, s := range sums {
		t.Row(s.Table, strconv.Itoa(s.Files), strconv.FormatInt(s.Rows, 10), strconv.FormatInt(s.Bytes, 10))
		rows += s.Rows
		bytes += s.Bytes
	}
	return fmt.Sprintf("%s  %d tables, %d rows, %d bytes\n%s",
		titleStyle.Render("inspect"), len(sums), rows, bytes, t.Render())
}

// RenderRuns lists ledger records, newest first.
func RenderRuns(runs []domain.RunRecord) string {
	if len(runs) == 0 {
		return mutedStyle.Render("no runs recorded")
	}
	t := newTable("started", "kind", "benchmark", "table", "status", "rows", "files", "duration", "id")
	for _, r := range runs {
		t.Row(r.StartedAt.Local().Format("2006-01-02 15:04:05"), string(r.Kind), string(r.Benchmark), r.Table,
			status(r.Status), strconv.FormatInt(r.Rows, 10), strconv.Itoa(r.Files), round(r.Duration), r.ID)
	}
	return t.Render()
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

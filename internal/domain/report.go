package domain

import "time"

// Status is the outcome of a shard, task, table or whole run.
type Status string

const (
	StatusSucceeded Status = "succeeded"
	StatusFailed    Status = "failed"
)

// ── Generation ─────────────────────────────────────────────

// ShardResult records how one generator child process ended.
type ShardResult struct {
	Shard    int           `json:"shard"` // 1-based
	Status   Status        `json:"status"`
	ExitCode int           `json:"exitCode"`
	Output   string        `json:"output,omitempty"`
	Error    string        `json:"error,omitempty"`
	Duration time.Duration `json:"duration"`
}

// GenerationReport aggregates every shard of a generate run. Overall is
// Failed when any shard failed; callers must check it.
type GenerationReport struct {
	Benchmark  Benchmark                   `json:"benchmark"`
	Scale      int                         `json:"scale"`
	Partitions int                         `json:"partitions"`
	Overall    Status                      `json:"overall"`
	Shards     []ShardResult               `json:"shards"`
	Reconciled map[string]*ReconcileReport `json:"reconciled,omitempty"`
	Duration   time.Duration               `json:"duration"`
}

// FailedShards returns the shards whose generator did not exit cleanly.
func (r *GenerationReport) FailedShards() []ShardResult {
	var failed []ShardResult
	for _, s := range r.Shards {
		if s.Status == StatusFailed {
			failed = append(failed, s)
		}
	}
	return failed
}

// ReconcileReport lists the moves the reconciler performed for one table.
type ReconcileReport struct {
	Table      string      `json:"table"`
	Dir        string      `json:"dir"`
	Partitions []Partition `json:"partitions"`
	Moves      []FileMove  `json:"moves"`
}

// FileMove is one rename performed by the reconciler.
type FileMove struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// ── Conversion ─────────────────────────────────────────────

// TaskState is the lifecycle of a single partition conversion.
//
//	Pending → Reading → Parsing → Batching → WritingStaging → Promoting → Done
//
// Failed is reachable from every non-terminal state. Done and Failed are terminal.
type TaskState string

const (
	TaskPending        TaskState = "pending"
	TaskReading        TaskState = "reading"
	TaskParsing        TaskState = "parsing"
	TaskBatching       TaskState = "batching"
	TaskWritingStaging TaskState = "writing-staging"
	TaskPromoting      TaskState = "promoting"
	TaskDone           TaskState = "done"
	TaskFailed         TaskState = "failed"
)

// Terminal reports whether no further transition is allowed.
func (s TaskState) Terminal() bool {
	return s == TaskDone || s == TaskFailed
}

var taskSuccessor = map[TaskState]TaskState{
	TaskPending:        TaskReading,
	TaskReading:        TaskParsing,
	TaskParsing:        TaskBatching,
	TaskBatching:       TaskWritingStaging,
	TaskWritingStaging: TaskPromoting,
	TaskPromoting:      TaskDone,
}

// CanTransition reports whether from → to is a legal edge of the task state machine.
func CanTransition(from, to TaskState) bool {
	if from.Terminal() {
		return false
	}
	if to == TaskFailed {
		return true
	}
	return taskSuccessor[from] == to
}

// PartitionResult is the outcome of one conversion task.
type PartitionResult struct {
	Partition int           `json:"partition"`
	Input     string        `json:"input"`
	State     TaskState     `json:"state"`
	Rows      int64         `json:"rows"`
	Outputs   []string      `json:"outputs,omitempty"`
	Error     string        `json:"error,omitempty"`
	Duration  time.Duration `json:"duration"`
}

// ConversionReport aggregates the tasks of one table. Partitions that were
// never scheduled because an earlier task failed stay in TaskPending.
type ConversionReport struct {
	Table      string            `json:"table"`
	OutputDir  string            `json:"outputDir"`
	Format     Format            `json:"format"`
	Codec      Codec             `json:"codec"`
	Status     Status            `json:"status"`
	Partitions []PartitionResult `json:"partitions"`
	Rows       int64             `json:"rows"`
	Files      int               `json:"files"`
	Duration   time.Duration     `json:"duration"`
}

// Failed returns the partitions whose task ended in TaskFailed.
func (r *ConversionReport) Failed() []PartitionResult {
	var failed []PartitionResult
	for _, p := range r.Partitions {
		if p.State == TaskFailed {
			failed = append(failed, p)
		}
	}
	return failed
}

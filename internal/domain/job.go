package domain

// GenerationJob describes one `generate` invocation.
type GenerationJob struct {
	Benchmark    Benchmark `json:"benchmark"`
	Tables       []string  `json:"tables"`
	Scale        int       `json:"scale"`
	Partitions   int       `json:"partitions"`
	GeneratorDir string    `json:"generatorDir"`
	OutputRoot   string    `json:"outputRoot"`
}

// ConversionJob describes the conversion of one table. InputDir and OutputDir
// are the table directories themselves, not the dataset roots.
type ConversionJob struct {
	Benchmark   Benchmark `json:"benchmark"`
	Table       Table     `json:"table"`
	InputDir    string    `json:"inputDir"`
	InputExt    string    `json:"inputExt"`
	OutputDir   string    `json:"outputDir"`
	Format      Format    `json:"format"`
	Codec       Codec     `json:"codec"`
	BatchSize   int       `json:"batchSize"`
	Concurrency int       `json:"concurrency"`
	// MaxRowsPerFile rolls the writer over to a new staged file once reached.
	// Zero keeps one output file per input partition.
	MaxRowsPerFile int64 `json:"maxRowsPerFile,omitempty"`
	// ExpectPartitions, when positive, asserts the number of input partitions.
	ExpectPartitions int `json:"expectPartitions,omitempty"`
}

const (
	DefaultBatchSize   = 8192
	DefaultConcurrency = 3
)

package generator

import (
	"strconv"

	"tpctools/internal/domain"
)

// Commands builds one generator invocation per shard. Shards are 1-based;
// a single-partition job uses the generator's unsharded form.
func Commands(job domain.GenerationJob) []Command {
	cmds := make([]Command, 0, job.Partitions)
	for i := 1; i <= job.Partitions; i++ {
		cmds = append(cmds, shardCommand(job, i))
	}
	return cmds
}

func shardCommand(job domain.GenerationJob, shard int) Command {
	scale := strconv.Itoa(job.Scale)
	total := strconv.Itoa(job.Partitions)
	child := strconv.Itoa(shard)
	path := "./" + job.Benchmark.Generator()

	switch job.Benchmark {
	case domain.BenchmarkTPCDS:
		args := []string{"-FORCE", "-DIR", job.OutputRoot, "-SCALE", scale}
		if job.Partitions > 1 {
			args = append(args, "-CHILD", child, "-PARALLEL", total)
		}
		return Command{Path: path, Args: args, Dir: job.GeneratorDir}
	default:
		args := []string{"-f", "-s", scale}
		if job.Partitions > 1 {
			args = append(args, "-C", total, "-S", child)
		}
		return Command{Path: path, Args: args, Dir: job.GeneratorDir}
	}
}

// ScratchDir is where the benchmark's generator leaves its raw files:
// dbgen writes into its working directory, dsdgen into the -DIR target.
func ScratchDir(job domain.GenerationJob) string {
	if job.Benchmark == domain.BenchmarkTPCDS {
		return job.OutputRoot
	}
	return job.GeneratorDir
}

package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// Partition is one canonical part file of a table.
type Partition struct {
	Table string `json:"table"`
	Index int    `json:"index"`
	Path  string `json:"path"`
	Size  int64  `json:"size"`
}

// Stub is the file name without its extension ("part-3" for "part-3.dat").
func (p Partition) Stub() string {
	return fmt.Sprintf("part-%d", p.Index)
}

// PartFileName returns the canonical name of partition i: part-<i>.<ext>.
func PartFileName(i int, ext string) string {
	return fmt.Sprintf("part-%d.%s", i, ext)
}

// ParsePartFileName extracts i from "part-<i>.<ext>". It rejects anything
// else, including staging directories and files with a different extension.
func ParsePartFileName(name, ext string) (int, bool) {
	rest, ok := strings.CutPrefix(name, "part-")
	if !ok {
		return 0, false
	}
	digits, ok := strings.CutSuffix(rest, "."+ext)
	if !ok || digits == "" {
		return 0, false
	}
	for _, r := range digits {
		if r < '0' || r > '9' {
			return 0, false
		}
	}
	i, err := strconv.Atoi(digits)
	if err != nil {
		return 0, false
	}
	return i, true
}

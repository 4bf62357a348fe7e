// Package preflight provides readiness checks for the filesystem resources
// a merge run depends on. The merge command runs them all before taking the
// batch lock; a failed check refuses the run rather than failing partway
// through a batch.
package preflight

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"

	"gavel/internal/config"
)

// Result reports the outcome of a single preflight check.
type Result struct {
	Name   string
	Passed bool
	Detail string
}

// RunAll executes every preflight check for the given config.
func RunAll(cfg *config.Config) []Result {
	if cfg == nil {
		return nil
	}
	return []Result{
		CheckDirectoryAccess("Data directory", cfg.Paths.DataDir, unix.R_OK|unix.W_OK|unix.X_OK),
		CheckDirectoryAccess("Corpus directory", cfg.Paths.CorpusDir, unix.R_OK|unix.X_OK),
		CheckFreeSpace("Data free space", cfg.Paths.DataDir, cfg.Storage.MinFreeMB),
	}
}

// AllPassed reports whether every result passed.
func AllPassed(results []Result) bool {
	for _, result := range results {
		if !result.Passed {
			return false
		}
	}
	return true
}

// CheckDirectoryAccess verifies that the directory exists and grants the
// requested access bits.
func CheckDirectoryAccess(name, path string, access uint32) Result {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Result{Name: name, Detail: fmt.Sprintf("%s (error: does not exist)", path)}
		}
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: stat: %v)", path, err)}
	}
	if !info.IsDir() {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: is not a directory)", path)}
	}
	if err := unix.Access(path, access); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: insufficient permissions: %v)", path, err)}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (access ok)", path)}
}

// CheckFreeSpace verifies the filesystem holding path has at least minFreeMB
// megabytes available. A floor of zero or below passes unconditionally.
func CheckFreeSpace(name, path string, minFreeMB int) Result {
	if minFreeMB <= 0 {
		return Result{Name: name, Passed: true, Detail: "no floor configured"}
	}

	var stat unix.Statfs_t
	if err := unix.Statfs(path, &stat); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: statfs: %v)", path, err)}
	}

	freeMB := stat.Bavail * uint64(stat.Bsize) / (1024 * 1024)
	if freeMB < uint64(minFreeMB) {
		return Result{Name: name, Detail: fmt.Sprintf("%d MB free, need %d MB", freeMB, minFreeMB)}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%d MB free", freeMB)}
}

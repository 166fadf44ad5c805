package core

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

// Record represents a single log event with all its metadata
type Record struct {
	Time    time.Time
	Level   Level
	Name    string // logger name, "root" when unset
	Message string
	// Process-wide metadata, filled in by GetRecord from cached values.
	Hostname string
	PID      int
	Program  string
	Fields   []Field
}

var (
	processOnce sync.Once
	hostname    string
	pid         int
	programName string
)

func initProcessInfo() {
	processOnce.Do(func() {
		pid = os.Getpid()
		if h, err := os.Hostname(); err == nil {
			hostname = h
		} else {
			hostname = "localhost"
		}
		programName = findProgramName()
	})
}

// findProgramName derives the program name from the invoked binary,
// stripping the Windows executable suffix.
func findProgramName() string {
	if len(os.Args) == 0 || os.Args[0] == "" {
		return "unknown"
	}
	name := filepath.Base(os.Args[0])
	return strings.TrimSuffix(name, ".exe")
}

// Hostname returns the cached hostname of this machine.
func Hostname() string {
	initProcessInfo()
	return hostname
}

// PID returns the cached process id.
func PID() int {
	initProcessInfo()
	return pid
}

// ProgramName returns the cached name of the running program.
func ProgramName() string {
	initProcessInfo()
	return programName
}

// recordPool is a pool of Record objects to reduce allocations
var recordPool = sync.Pool{
	New: func() interface{} {
		return &Record{
			Fields: make([]Field, 0, 8), // Pre-allocate for 8 fields
		}
	},
}

// GetRecord retrieves a Record from the pool with the process-wide
// metadata already filled in.
func GetRecord() *Record {
	initProcessInfo()
	r := recordPool.Get().(*Record)
	r.Time = time.Now()
	r.Fields = r.Fields[:0]
	r.Name = "root"
	r.Hostname = hostname
	r.PID = pid
	r.Program = programName
	return r
}

// PutRecord returns a Record to the pool
func PutRecord(r *Record) {
	if r == nil {
		return
	}
	// Re-slice to zero length; GC handles reference cleanup
	r.Fields = r.Fields[:0]
	r.Message = ""
	r.Name = ""
	recordPool.Put(r)
}

package core

import (
	"path/filepath"
	"runtime"
	"sync"
	"time"
)

// Entry is a single log record. It lives only for the duration of one
// emission and is never retained afterwards.
type Entry struct {
	Time    time.Time
	Level   Level
	Message string
	Caller  CallerInfo
}

// CallerInfo identifies the source location of a log call
type CallerInfo struct {
	File      string
	ShortFile string
	Line      int
	Function  string
	Defined   bool
}

// Location returns the file name used in rendered output. ShortFile is
// preferred when the location was captured from the runtime.
func (c CallerInfo) Location() string {
	if c.ShortFile != "" {
		return c.ShortFile
	}
	return c.File
}

// entryPool is a pool of Entry objects to reduce allocations
var entryPool = sync.Pool{
	New: func() interface{} {
		return &Entry{}
	},
}

// GetEntry retrieves an Entry from the pool
func GetEntry() *Entry {
	e := entryPool.Get().(*Entry)
	e.Time = time.Now()
	e.Caller = CallerInfo{}
	return e
}

// PutEntry returns an Entry to the pool
func PutEntry(e *Entry) {
	if e == nil {
		return
	}
	e.Message = ""
	e.Caller = CallerInfo{}
	entryPool.Put(e)
}

// At returns a CallerInfo for an explicitly supplied location.
func At(file string, line int) CallerInfo {
	return CallerInfo{
		File:    file,
		Line:    line,
		Defined: true,
	}
}

// GetCaller retrieves caller information
func GetCaller(skip int) CallerInfo {
	pc, file, line, ok := runtime.Caller(skip)
	if !ok {
		return CallerInfo{}
	}

	fn := runtime.FuncForPC(pc)
	var funcName string
	if fn != nil {
		funcName = fn.Name()
	}

	return CallerInfo{
		File:      file,
		ShortFile: filepath.Base(file),
		Line:      line,
		Function:  funcName,
		Defined:   true,
	}
}

// CallerFromPC resolves a program counter, such as the one carried by a
// slog.Record, into caller information.
func CallerFromPC(pc uintptr) CallerInfo {
	if pc == 0 {
		return CallerInfo{}
	}
	frames := runtime.CallersFrames([]uintptr{pc})
	f, _ := frames.Next()
	if f.File == "" {
		return CallerInfo{}
	}
	return CallerInfo{
		File:      f.File,
		ShortFile: filepath.Base(f.File),
		Line:      f.Line,
		Function:  f.Function,
		Defined:   true,
	}
}

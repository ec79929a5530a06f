package xtest

import (
	"fmt"
	"path/filepath"
	"runtime"
)

// CurrentFileLine returns "file:line" of the caller, used as a test case name
func CurrentFileLine() string {
	_, file, line, _ := runtime.Caller(1)

	return fmt.Sprintf("%s:%d", filepath.Base(file), line)
}

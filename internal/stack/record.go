package stack

import (
	"path"
	"runtime"
	"strconv"
	"strings"
)

var receiverCleaner = strings.NewReplacer("(*", "", "(", "", ")", "", "[...]", "")

type call struct {
	function string
	file     string
	line     int
}

func Call(depth int) (c call) {
	pc, file, line, ok := runtime.Caller(depth + 1)
	if !ok {
		return c
	}
	if f := runtime.FuncForPC(pc); f != nil {
		c.function = f.Name()
	}
	c.file, c.line = path.Base(file), line

	return c
}

// Record returns a description of the caller at depth in form
// "pkg/path/pkg.Struct.Func.func1(file.go:42)"
func Record(depth int) string {
	return Call(depth + 1).String()
}

// Function returns full name of the called function with receiver unwrapped
func (c call) Function() string {
	dir, name := "", c.function
	if i := strings.LastIndex(name, "/"); i > -1 {
		dir, name = name[:i+1], name[i+1:]
	}

	return dir + receiverCleaner.Replace(name)
}

func (c call) String() string {
	if c.file == "" {
		return c.Function()
	}

	return c.Function() + "(" + c.file + ":" + strconv.Itoa(c.line) + ")"
}

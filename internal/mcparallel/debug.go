package mcparallel

import (
	"fmt"
	"sync"
)

// outMu serialises writes to Out, workers log concurrently.
var outMu sync.Mutex

func DebugLog(format string, args ...interface{}) {
	if !Debug {
		return
	}
	outMu.Lock()
	defer outMu.Unlock()
	fmt.Fprintf(Out, "[DEBUG] "+format+"\n", args...)
}

var once sync.Once

func DebugLogOnce(format string, args ...interface{}) {
	if !Debug {
		return
	}
	once.Do(func() {
		outMu.Lock()
		defer outMu.Unlock()
		fmt.Fprintf(Out, "[DEBUG] "+format+"\n", args...)
	})
}

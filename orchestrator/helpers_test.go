package orchestrator_test

import (
	"fmt"
	"time"
)

var zeroTime time.Time

func formatLog(msg string, args []interface{}) string {
	return fmt.Sprintf(msg, args...)
}

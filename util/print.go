package util

import (
	"fmt"
	"time"
)

func Printf(pat string, args ...any) {
	fmt.Printf(pat, args...)
}

func Printlnf(pat string, args ...any) {
	fmt.Printf(pat+"\n", args...)
}

// Printlnf with a timestamp prefix.
func TPrintlnf(pat string, args ...any) {
	t := time.Now().Format("2006-01-02 15:04:05.000")
	fmt.Printf(t+" "+pat+"\n", args...)
}

func DebugPrintlnf(debug bool, pat string, args ...any) {
	if debug {
		fmt.Printf("[DEBUG] "+pat+"\n", args...)
	}
}

func ErrorPrintlnf(pat string, args ...any) {
	fmt.Printf("[ERROR] "+pat+"\n", args...)
}

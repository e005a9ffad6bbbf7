package koyomi

import "github.com/curtisnewbie/koyomi/util"

var (
	DebugLog func(pat string, args ...any) = func(pat string, args ...any) {}
	ErrorLog func(pat string, args ...any) = func(pat string, args ...any) {
		util.ErrorPrintlnf(pat, args...)
	}
)

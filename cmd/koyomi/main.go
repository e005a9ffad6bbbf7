package main

import (
	"flag"
	"os"

	"github.com/curtisnewbie/koyomi"
	"github.com/curtisnewbie/koyomi/config"
	"github.com/curtisnewbie/koyomi/encoding/json"
	"github.com/curtisnewbie/koyomi/util"
	"github.com/curtisnewbie/koyomi/version"
	"github.com/sirupsen/logrus"
)

var (
	FlagRfc2822 = flag.String("rfc2822", "", "Parse an RFC 2822 or human-readable date string")
	FlagIso8601 = flag.String("iso8601", "", "Parse an ISO 8601 date string")
	FlagLeap    = flag.String("leap", "", "Check whether the year of the given date is a leap year")
	FlagAngle   = flag.String("angle", "", "Angle in radians between clock hands at the given UTC time")
	FlagFrom    = flag.String("from", "", "First date of a time span, use together with -to")
	FlagTo      = flag.String("to", "", "Second date of a time span, use together with -from")
	FlagJson    = flag.Bool("json", false, "Print results as json")
	FlagConf    = flag.String("config", "", "Path to yaml config file")
	FlagDebug   = flag.Bool("debug", false, "Debug")
)

type result struct {
	Op    string `json:"op"`
	Input string `json:"input"`
	Value any    `json:"value"`
}

func main() {
	flag.Usage = func() {
		util.Printlnf("\nkoyomi %v - date/time utilities on the command line\n", version.Version)
		util.Printlnf("Usage of %s:", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	logrus.SetFormatter(util.PreConfiguredFormatter())

	if *FlagConf != "" {
		if err := config.LoadConfigFromFile(*FlagConf); err != nil {
			logrus.Fatalf("Failed to load config file '%v', %v", *FlagConf, err)
		}
	}
	if *FlagDebug || config.GetPropBool(config.PropDebug) {
		logrus.SetLevel(logrus.DebugLevel)
		koyomi.DebugLog = logrus.Debugf
	}
	jsonOut := *FlagJson || config.GetPropBool(config.PropOutputJson)

	ran := false
	if *FlagRfc2822 != "" {
		ran = true
		d := koyomi.ParseRFC2822(*FlagRfc2822)
		emit(jsonOut, result{Op: "parseRfc2822", Input: *FlagRfc2822, Value: d})
	}
	if *FlagIso8601 != "" {
		ran = true
		d := koyomi.ParseISO8601(*FlagIso8601)
		emit(jsonOut, result{Op: "parseIso8601", Input: *FlagIso8601, Value: d})
	}
	if *FlagLeap != "" {
		ran = true
		emit(jsonOut, result{Op: "isLeapYear", Input: *FlagLeap, Value: koyomi.IsLeapYear(parseAny(*FlagLeap))})
	}
	if *FlagAngle != "" {
		ran = true
		emit(jsonOut, result{Op: "clockHandAngle", Input: *FlagAngle, Value: koyomi.ClockHandAngle(parseAny(*FlagAngle))})
	}
	if *FlagFrom != "" || *FlagTo != "" {
		ran = true
		if *FlagFrom == "" || *FlagTo == "" {
			util.ErrorPrintlnf("-from and -to must be used together")
			os.Exit(1)
		}
		span := koyomi.FormatTimeSpan(parseAny(*FlagFrom), parseAny(*FlagTo))
		emit(jsonOut, result{Op: "formatTimeSpan", Input: *FlagFrom + " ~ " + *FlagTo, Value: span})
	}

	if !ran {
		flag.Usage()
	}
}

// Parse ISO 8601 first, fallback to RFC 2822.
func parseAny(value string) koyomi.DateTime {
	if d := koyomi.ParseISO8601(value); d.Valid() {
		return d
	}
	return koyomi.ParseRFC2822(value)
}

func emit(jsonOut bool, r result) {
	if jsonOut {
		s, err := json.SWriteJson(r)
		if err != nil {
			logrus.Fatalf("Failed to write json, %v", err)
		}
		util.Printlnf("%v", s)
		return
	}
	if d, ok := r.Value.(koyomi.DateTime); ok {
		util.Printlnf("%v", d.String())
		return
	}
	util.Printlnf("%v", r.Value)
}

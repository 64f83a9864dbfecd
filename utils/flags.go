package utils

import (
	"flag"
)

func lookupString(name, fallback string) string {
	f := flag.Lookup(name)
	if f == nil {
		return fallback
	}
	return f.Value.(flag.Getter).Get().(string)
}

func LogLevel() string {
	return lookupString("loglevel", "warn")
}

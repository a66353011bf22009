package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	LogDir      string        // logs directory
	Interval    time.Duration // cadence of one full probe cycle
	Timeout     time.Duration // hard per-probe deadline; also the latency cutoff
	Concurrency int           // max in-flight probes per cycle
}

func FromEnv() Config {
	logDir := os.Getenv("LOG_DIR")
	if logDir == "" {
		logDir = "logs"
	}

	interval := 15 * time.Second
	if v := os.Getenv("CYCLE_INTERVAL_MS"); v != "" {
		if ms, err := strconv.Atoi(v); err == nil && ms > 0 {
			interval = time.Duration(ms) * time.Millisecond
		}
	}

	timeout := 500 * time.Millisecond
	if v := os.Getenv("PROBE_TIMEOUT_MS"); v != "" {
		if ms, err := strconv.Atoi(v); err == nil && ms > 0 {
			timeout = time.Duration(ms) * time.Millisecond
		}
	}

	concurrency := 100
	if v := os.Getenv("MAX_CONCURRENT_PROBES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			concurrency = n
		}
	}

	return Config{
		LogDir:      logDir,
		Interval:    interval,
		Timeout:     timeout,
		Concurrency: concurrency,
	}
}

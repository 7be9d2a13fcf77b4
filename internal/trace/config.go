// Package trace implements the text trace format used to drive and
// benchmark the addressable heaps: a config reader, a random trace
// generator, and a runner that replays a trace against any heap
// implementing AddressableHeap.
package trace

import (
	"bufio"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/mohae/deepcopy"
)

// nameFilter strips everything but letters, digits, underscore, and
// hyphen from a configured output filename.
var nameFilter = regexp.MustCompile(`[^A-Za-z0-9_-]`)

// Config holds the parameters of a generated trace: how many elements
// to seed the heap with, how many further operations to emit, the
// relative weights of add/decrease/pop among those operations, and the
// range keys are drawn from.
type Config struct {
	Name    string
	Size    int
	Op      int
	AddFreq int
	DecFreq int
	PopFreq int
	MinVal  int64
	MaxVal  int64
}

// DefaultConfig returns the trace parameters used when no config file
// is given to the generator.
func DefaultConfig() Config {
	return Config{
		Name:    "default",
		Size:    1000,
		Op:      1000000,
		AddFreq: 1,
		DecFreq: 8,
		PopFreq: 1,
		MinVal:  -1000000000,
		MaxVal:  1000000000,
	}
}

// ReadConfig parses a key/value config file, one "key value" pair per
// line, keys matched case-insensitively. Unrecognized keys and
// malformed integers are ignored; the corresponding default is kept.
// Every field is then clamped: size, op, and the three frequencies
// cannot be negative; if
// size and op are both zero, op is forced to 1 so the trace does
// something; if every frequency is zero, all three are set to 1 so
// sampling has something to choose from; if minval ends up greater
// than maxval, minval is pulled down to match.
func ReadConfig(r io.Reader, fallbackName string) (Config, error) {
	cfg := deepcopy.Copy(DefaultConfig()).(Config)
	cfg.Name = fallbackName

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		fields := strings.Fields(strings.ToLower(scanner.Text()))
		if len(fields) < 2 {
			continue
		}
		key, value := fields[0], fields[1]
		switch key {
		case "name":
			cfg.Name = value
		case "size":
			assignInt(&cfg.Size, value)
		case "op":
			assignInt(&cfg.Op, value)
		case "addfreq":
			assignInt(&cfg.AddFreq, value)
		case "decfreq":
			assignInt(&cfg.DecFreq, value)
		case "popfreq":
			assignInt(&cfg.PopFreq, value)
		case "minval":
			assignInt64(&cfg.MinVal, value)
		case "maxval":
			assignInt64(&cfg.MaxVal, value)
		}
	}
	if err := scanner.Err(); err != nil {
		return Config{}, err
	}

	cfg.Name = nameFilter.ReplaceAllString(cfg.Name, "")
	cfg.Size = max(0, cfg.Size)
	cfg.Op = max(0, cfg.Op)
	if cfg.Size == 0 && cfg.Op == 0 {
		cfg.Op = 1
	}
	cfg.AddFreq = max(0, cfg.AddFreq)
	cfg.DecFreq = max(0, cfg.DecFreq)
	cfg.PopFreq = max(0, cfg.PopFreq)
	if cfg.AddFreq+cfg.DecFreq+cfg.PopFreq == 0 {
		cfg.AddFreq, cfg.DecFreq, cfg.PopFreq = 1, 1, 1
	}
	if cfg.MinVal > cfg.MaxVal {
		cfg.MinVal = cfg.MaxVal
	}
	return cfg, nil
}

func assignInt(dst *int, raw string) {
	if v, err := strconv.Atoi(raw); err == nil {
		*dst = v
	}
}

func assignInt64(dst *int64, raw string) {
	if v, err := strconv.ParseInt(raw, 10, 64); err == nil {
		*dst = v
	}
}

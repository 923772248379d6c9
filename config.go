package aoc

import (
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

var log = logrus.New()

// cfg holds the runner settings. Flags are bound into it, and every key
// can also be set from the environment as AOC_<KEY>, e.g. AOC_SESSION or
// AOC_INPUT_DIR.
var cfg = viper.New()

const (
	keyDay         = "day"
	keyPart        = "part"
	keyDebug       = "debug"
	keyOnlySample  = "sample"
	keySkipSample  = "skip-sample"
	keyInputDir    = "input-dir"
	keySession     = "session"
	keySessionFile = "session-file"
)

func init() {
	pflag.Int(keyDay, -1, "day to run")
	pflag.String(keyPart, "", "part to run")
	pflag.Bool(keyOnlySample, false, "only run sample")
	pflag.Bool(keySkipSample, false, "skip sample")
	pflag.Bool(keyDebug, false, "debug mode")
	pflag.String(keyInputDir, ".", "directory holding cached <year>/<day>.input files")
	pflag.String(keySessionFile, filepath.Join(os.Getenv("HOME"), "keys", "aoc.session"), "file containing the adventofcode.com session cookie")

	cfg.SetEnvPrefix("aoc")
	cfg.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	cfg.AutomaticEnv()
}

var initFlags = sync.OnceFunc(func() {
	pflag.Parse()
	MustDo(cfg.BindPFlags(pflag.CommandLine))
	if cfg.GetBool(keyDebug) {
		log.SetLevel(logrus.DebugLevel)
	}
})

var session = sync.OnceValue(func() string {
	if s := cfg.GetString(keySession); s != "" {
		return strings.TrimSpace(s)
	}
	return strings.TrimSpace(string(MustGet(os.ReadFile(cfg.GetString(keySessionFile)))))
})

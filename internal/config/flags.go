package config

import (
	"flag"
	"strconv"
)

// optionalInt is an int flag that remembers whether it was given.
type optionalInt struct {
	value int
	set   bool
}

func (o *optionalInt) String() string {
	if o == nil || !o.set {
		return ""
	}
	return strconv.Itoa(o.value)
}

func (o *optionalInt) Set(s string) error {
	v, err := strconv.Atoi(s)
	if err != nil {
		return err
	}
	o.value, o.set = v, true
	return nil
}

var (
	flagConfig    = flag.String("config", "", "Path to config file")
	flagDebug     = flag.Bool("debug", false, "Enable debug logging")
	flagFormat    = flag.String("format", "", "Output format (text, yaml)")
	flagDegrees   = flag.Bool("degrees", false, "Read rotation angles in degrees")

	flagPrecision optionalInt
)

func init() {
	flag.Var(&flagPrecision, "precision", "Digits after the decimal point (-1 = shortest)")
}

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// Args returns the arguments left after flag parsing.
func Args() []string {
	return flag.Args()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagFormat != "" {
		cfg.Output.Format = *flagFormat
	}
	if flagPrecision.set {
		cfg.Output.Precision = flagPrecision.value
	}
	if *flagDegrees {
		cfg.Rotation.AngleUnit = UnitDegrees
	}
}

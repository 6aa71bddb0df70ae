// quatcalc is a command line calculator for quaternion arithmetic and 3D rotation.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/quatcalc/internal/config"
	"github.com/Faultbox/quatcalc/internal/logger"
	qmath "github.com/Faultbox/quatcalc/pkg/math"
)

var errUnknownCommand = errors.New("unknown command")

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Error: initializing logger: %v\n", err)
		os.Exit(1)
	}

	args := config.Args()
	if len(args) < 1 {
		printUsage(os.Stderr)
		os.Exit(1)
	}

	if err := run(args, cfg, os.Stdout); err != nil {
		logger.Error("command failed", zap.String("command", args[0]), zap.Error(err))
		logger.Sync()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if errors.Is(err, errUnknownCommand) {
			printUsage(os.Stderr)
		}
		os.Exit(1)
	}
	logger.Sync()
}

// run executes one command and writes its result to out.
func run(args []string, cfg *config.Config, out io.Writer) error {
	command, rest := args[0], args[1:]
	p := newPrinter(out, cfg.Output)

	switch command {
	case "mul", "multiply":
		return cmdMul(rest, p)
	case "div", "divide":
		return cmdDiv(rest, p)
	case "inv", "inverse":
		return cmdInv(rest, p)
	case "xyz":
		return cmdXYZ(rest, p)
	case "rotate", "rot":
		return cmdRotate(rest, cfg.Rotation, p)
	case "init":
		return cmdInit(rest, cfg, out)
	case "help", "-h", "--help":
		printUsage(out)
		return nil
	default:
		return fmt.Errorf("%w: %s", errUnknownCommand, command)
	}
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, `quatcalc - quaternion arithmetic and rotation

Usage:
  quatcalc [flags] <command> [args]

Commands:
  mul <q1> <q2>                         Hamilton product q1 * q2
  div <q1> <q2>                         Division q1 * q2^-1
  inv <q>                               Inverse q^-1
  xyz <q>                               Vector part of q
  rotate <point> <axis1> <axis2> <angle> Rotate point about the axis line
  init [path]                           Write the effective config as YAML

Quaternions are written w,x,y,z and points x,y,z.
Angles are radians unless -degrees is set; "pi/6" style values are accepted.

Flags:
  -config <path>   Config file (default ./quatcalc.yaml, then the user config dir)
  -debug           Enable debug logging
  -format <fmt>    Output format: text, yaml
  -precision <n>   Digits after the decimal point (-1 = shortest)
  -degrees         Read angles in degrees

Examples:
  quatcalc mul 1,0,0,0 0,1,1,1
  quatcalc inv 1,2,3,4
  quatcalc rotate 1,1,1 -2,4,6.1 0.3,1.2,-0.76 pi/6
  quatcalc -degrees -format yaml rotate 1,0,0 0,0,0 0,0,1 90`)
}

func cmdMul(args []string, p *printer) error {
	a, b, err := parseQuatPair("mul", args)
	if err != nil {
		return err
	}
	result := a.Mul(b)
	logger.Debug("multiply", zap.Stringer("a", a), zap.Stringer("b", b), zap.Stringer("result", result))
	return p.quat("mul", result)
}

func cmdDiv(args []string, p *printer) error {
	a, b, err := parseQuatPair("div", args)
	if err != nil {
		return err
	}
	result, err := a.Div(b)
	if err != nil {
		return fmt.Errorf("dividing %v by %v: %w", a, b, err)
	}
	logger.Debug("divide", zap.Stringer("a", a), zap.Stringer("b", b), zap.Stringer("result", result))
	return p.quat("div", result)
}

func cmdInv(args []string, p *printer) error {
	q, err := parseSingleQuat("inv", args)
	if err != nil {
		return err
	}
	result, err := q.Inverse()
	if err != nil {
		return fmt.Errorf("inverting %v: %w", q, err)
	}
	logger.Debug("inverse", zap.Stringer("q", q), zap.Float64("norm_sq", q.NormSq()), zap.Stringer("result", result))
	return p.quat("inv", result)
}

func cmdXYZ(args []string, p *printer) error {
	q, err := parseSingleQuat("xyz", args)
	if err != nil {
		return err
	}
	return p.vec("xyz", q.XYZ())
}

func cmdRotate(args []string, rc config.RotationConfig, p *printer) error {
	if len(args) != 4 {
		return errors.New("usage: quatcalc rotate <point> <axis1> <axis2> <angle>")
	}

	var pts [3]qmath.Vec3
	for i := range pts {
		v, err := parseVec(args[i])
		if err != nil {
			return fmt.Errorf("argument %d: %w", i+1, err)
		}
		pts[i] = v
	}

	angle, err := parseAngle(args[3], rc.AngleUnit)
	if err != nil {
		return err
	}

	result, err := qmath.Rotate(pts[0], pts[1], pts[2], angle)
	if err != nil {
		return err
	}
	logger.Debug("rotate",
		zap.Stringer("point", pts[0]),
		zap.Stringer("axis1", pts[1]),
		zap.Stringer("axis2", pts[2]),
		zap.Float64("angle_rad", angle),
		zap.Stringer("result", result),
	)
	return p.vec("rotate", result)
}

// cmdInit writes the effective configuration, defaults merged with any file
// and flags, to path or to the user config directory.
func cmdInit(args []string, cfg *config.Config, out io.Writer) error {
	if len(args) > 1 {
		return errors.New("usage: quatcalc init [path]")
	}

	var path string
	var err error
	if len(args) == 1 {
		path = args[0]
		err = cfg.SaveTo(path)
	} else {
		path = config.DefaultPath()
		err = cfg.Save()
	}
	if err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	logger.Info("wrote config", zap.String("path", path))
	_, err = fmt.Fprintln(out, path)
	return err
}

func parseSingleQuat(cmd string, args []string) (qmath.Quat, error) {
	if len(args) != 1 {
		return qmath.Quat{}, fmt.Errorf("usage: quatcalc %s <q>", cmd)
	}
	return parseQuat(args[0])
}

func parseQuatPair(cmd string, args []string) (qmath.Quat, qmath.Quat, error) {
	if len(args) != 2 {
		return qmath.Quat{}, qmath.Quat{}, fmt.Errorf("usage: quatcalc %s <q1> <q2>", cmd)
	}
	a, err := parseQuat(args[0])
	if err != nil {
		return qmath.Quat{}, qmath.Quat{}, fmt.Errorf("first operand: %w", err)
	}
	b, err := parseQuat(args[1])
	if err != nil {
		return qmath.Quat{}, qmath.Quat{}, fmt.Errorf("second operand: %w", err)
	}
	return a, b, nil
}

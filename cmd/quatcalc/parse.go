package main

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/Faultbox/quatcalc/internal/config"
	"github.com/Faultbox/quatcalc/internal/logger"
	qmath "github.com/Faultbox/quatcalc/pkg/math"
)

// parseComponents splits a comma separated list of numbers.
func parseComponents(s string) ([]float64, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	out := make([]float64, 0, len(parts))
	for _, part := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return nil, fmt.Errorf("parsing %q: %w", s, err)
		}
		out = append(out, v)
	}
	return out, nil
}

// parseQuat reads "w,x,y,z".
func parseQuat(s string) (qmath.Quat, error) {
	v, err := parseComponents(s)
	if err != nil {
		return qmath.Quat{}, err
	}
	return qmath.QuatFromSlice(v)
}

// parseVec reads "x,y,z".
func parseVec(s string) (qmath.Vec3, error) {
	v, err := parseComponents(s)
	if err != nil {
		return qmath.Vec3{}, err
	}
	return qmath.Vec3FromSlice(v)
}

// parseAngle reads a plain number or a multiple of pi such as "pi/6",
// "2pi", "-pi/2" or "1.5*pi/4", and returns it in radians. Multiples of pi
// are always radians; plain numbers are converted when unit is degrees.
func parseAngle(s, unit string) (float64, error) {
	expr := strings.ToLower(strings.TrimSpace(s))

	if unit == config.UnitDegrees && strings.Contains(expr, "pi") {
		logger.Warn("angle uses pi, reading it as radians despite degree unit", zap.String("angle", s))
	}

	if num, den, ok := strings.Cut(expr, "/"); ok && strings.Contains(num, "pi") {
		n, err := parsePiMultiple(num)
		if err != nil {
			return 0, fmt.Errorf("parsing angle %q: %w", s, err)
		}
		d, err := strconv.ParseFloat(den, 64)
		if err != nil {
			return 0, fmt.Errorf("parsing angle %q: %w", s, err)
		}
		if d == 0 {
			return 0, fmt.Errorf("parsing angle %q: zero denominator", s)
		}
		return n / d, nil
	}
	if strings.Contains(expr, "pi") {
		n, err := parsePiMultiple(expr)
		if err != nil {
			return 0, fmt.Errorf("parsing angle %q: %w", s, err)
		}
		return n, nil
	}

	v, err := strconv.ParseFloat(expr, 64)
	if err != nil {
		return 0, fmt.Errorf("parsing angle %q: %w", s, err)
	}
	if unit == config.UnitDegrees {
		v = v * math.Pi / 180
	}
	return v, nil
}

// parsePiMultiple reads "pi", "-pi", "2pi" or "2*pi" as radians.
func parsePiMultiple(s string) (float64, error) {
	coef := strings.TrimSuffix(strings.TrimSuffix(s, "pi"), "*")
	switch coef {
	case "":
		return math.Pi, nil
	case "-":
		return -math.Pi, nil
	case "+":
		return math.Pi, nil
	}
	c, err := strconv.ParseFloat(coef, 64)
	if err != nil {
		return 0, err
	}
	return c * math.Pi, nil
}

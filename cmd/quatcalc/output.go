package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/Faultbox/quatcalc/internal/config"
	qmath "github.com/Faultbox/quatcalc/pkg/math"
)

// quatDoc and vecDoc are the YAML shapes of command results.
type quatDoc struct {
	W float64 `yaml:"w"`
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	Z float64 `yaml:"z"`
}

type vecDoc struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	Z float64 `yaml:"z"`
}

type resultDoc struct {
	Op         string   `yaml:"op"`
	Quaternion *quatDoc `yaml:"quaternion,omitempty"`
	Point      *vecDoc  `yaml:"point,omitempty"`
}

type printer struct {
	w   io.Writer
	cfg config.OutputConfig
}

func newPrinter(w io.Writer, cfg config.OutputConfig) *printer {
	return &printer{w: w, cfg: cfg}
}

func (p *printer) quat(op string, q qmath.Quat) error {
	if p.cfg.Format == config.FormatYAML {
		return p.yaml(resultDoc{
			Op:         op,
			Quaternion: &quatDoc{W: p.round(q.W), X: p.round(q.X), Y: p.round(q.Y), Z: p.round(q.Z)},
		})
	}
	_, err := fmt.Fprintln(p.w, p.join(q.W, q.X, q.Y, q.Z))
	return err
}

func (p *printer) vec(op string, v qmath.Vec3) error {
	if p.cfg.Format == config.FormatYAML {
		return p.yaml(resultDoc{
			Op:    op,
			Point: &vecDoc{X: p.round(v.X), Y: p.round(v.Y), Z: p.round(v.Z)},
		})
	}
	_, err := fmt.Fprintln(p.w, p.join(v.X, v.Y, v.Z))
	return err
}

func (p *printer) yaml(doc resultDoc) error {
	enc := yaml.NewEncoder(p.w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return err
	}
	return enc.Close()
}

func (p *printer) format(v float64) string {
	return strconv.FormatFloat(v, 'f', p.cfg.Precision, 64)
}

// round applies the configured precision to a value emitted as YAML.
func (p *printer) round(v float64) float64 {
	if p.cfg.Precision < 0 {
		return v
	}
	r, err := strconv.ParseFloat(p.format(v), 64)
	if err != nil {
		return v
	}
	return r
}

// join writes components in the same comma separated form the parser reads.
func (p *printer) join(vs ...float64) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = p.format(v)
	}
	return strings.Join(parts, ",")
}

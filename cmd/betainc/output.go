// SPDX-License-Identifier: MIT

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/betainc/internal/config"
)

// record is one printable result. Values are preformatted strings so that
// ±Inf and NaN survive every encoding.
type record interface {
	pairs() [][2]string
}

type printer struct {
	w      io.Writer
	format string
	prec   int
}

func (p printer) num(v float64) string {
	return strconv.FormatFloat(v, 'g', p.prec, 64)
}

func (p printer) print(r record) error {
	switch p.format {
	case config.FormatJSON:
		enc := json.NewEncoder(p.w)
		enc.SetIndent("", "  ")

		return enc.Encode(r)
	case config.FormatYAML:
		enc := yaml.NewEncoder(p.w)
		if err := enc.Encode(r); err != nil {
			return err
		}

		return enc.Close()
	}

	for _, kv := range r.pairs() {
		if _, err := fmt.Fprintf(p.w, "%-9s %s\n", kv[0], kv[1]); err != nil {
			return err
		}
	}

	return nil
}

type evalRecord struct {
	A      string `json:"a" yaml:"a"`
	B      string `json:"b" yaml:"b"`
	X      string `json:"x" yaml:"x"`
	Y      string `json:"y" yaml:"y"`
	Log    bool   `json:"log" yaml:"log"`
	W      string `json:"w" yaml:"w"`
	W1     string `json:"w1" yaml:"w1"`
	Status int    `json:"status" yaml:"status"`
	Text   string `json:"status_text" yaml:"status_text"`
}

func (r evalRecord) pairs() [][2]string {
	return [][2]string{
		{"a", r.A}, {"b", r.B}, {"x", r.X}, {"y", r.Y},
		{"log", strconv.FormatBool(r.Log)},
		{"w", r.W}, {"w1", r.W1},
		{"status", strconv.Itoa(r.Status)}, {"text", r.Text},
	}
}

type regimeRecord struct {
	Regime  string `json:"regime" yaml:"regime"`
	Swapped bool   `json:"swapped" yaml:"swapped"`
	A0      string `json:"a0" yaml:"a0"`
	B0      string `json:"b0" yaml:"b0"`
	X0      string `json:"x0" yaml:"x0"`
	Y0      string `json:"y0" yaml:"y0"`
	Lambda  string `json:"lambda" yaml:"lambda"`
	Eps     string `json:"eps" yaml:"eps"`
	Status  int    `json:"status" yaml:"status"`
}

func (r regimeRecord) pairs() [][2]string {
	return [][2]string{
		{"regime", r.Regime}, {"swapped", strconv.FormatBool(r.Swapped)},
		{"a0", r.A0}, {"b0", r.B0}, {"x0", r.X0}, {"y0", r.Y0},
		{"lambda", r.Lambda}, {"eps", r.Eps}, {"status", strconv.Itoa(r.Status)},
	}
}

type cdfRecord struct {
	Distribution string `json:"distribution" yaml:"distribution"`
	Params       string `json:"params" yaml:"params"`
	LowerTail    bool   `json:"lower_tail" yaml:"lower_tail"`
	Log          bool   `json:"log" yaml:"log"`
	P            string `json:"p" yaml:"p"`
}

func (r cdfRecord) pairs() [][2]string {
	return [][2]string{
		{"dist", r.Distribution}, {"params", r.Params},
		{"lower", strconv.FormatBool(r.LowerTail)}, {"log", strconv.FormatBool(r.Log)},
		{"p", r.P},
	}
}

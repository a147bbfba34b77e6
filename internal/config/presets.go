package config

import (
	"sort"

	"github.com/san-kum/rayleigh/internal/pipeline"
)

var Presets = map[string]*pipeline.Pipeline{
	"velocity": {
		Name: "velocity", Description: "100 m sprint in 9.6 s",
		Operands: []pipeline.Operand{
			{Name: "distance", Unit: "meter", Value: 100},
			{Name: "time", Unit: "second", Value: 9.6},
		},
		Start:  "distance",
		Steps:  []pipeline.Step{{Op: pipeline.OpDiv, Operand: "time"}},
		Target: "meters_per_second",
	},
	"acceleration": {
		Name: "acceleration", Description: "0 to 27.8 m/s in 3.2 s",
		Operands: []pipeline.Operand{
			{Name: "dv", Unit: "meters_per_second", Value: 27.8},
			{Name: "dt", Unit: "second", Value: 3.2},
		},
		Start:  "dv",
		Steps:  []pipeline.Step{{Op: pipeline.OpDiv, Operand: "dt"}},
		Target: "meters_per_second_squared",
	},
	"force": {
		Name: "force", Description: "kg·m/s/s",
		Operands: []pipeline.Operand{
			{Name: "mass", Unit: "kilogram", Value: 2},
			{Name: "length", Unit: "meter", Value: 3},
			{Name: "time", Unit: "second", Value: 1},
		},
		Start: "mass",
		Steps: []pipeline.Step{
			{Op: pipeline.OpMul, Operand: "length"},
			{Op: pipeline.OpDiv, Operand: "time"},
			{Op: pipeline.OpDiv, Operand: "time"},
		},
		Target: "newton",
	},
	"energy": {
		Name: "energy", Description: "kinetic energy of a 1200 kg car at 25 m/s (m·v², unhalved)",
		Operands: []pipeline.Operand{
			{Name: "mass", Unit: "kilogram", Value: 1200},
			{Name: "speed", Unit: "meters_per_second", Value: 25},
		},
		Start: "speed",
		Steps: []pipeline.Step{
			pipeline.Power(2),
			{Op: pipeline.OpMul, Operand: "mass"},
		},
		Target: "joule",
	},
	"power": {
		Name: "power", Description: "lifting 50 kg by 2 m in 4 s",
		Operands: []pipeline.Operand{
			{Name: "weight", Unit: "newton", Value: 490.5},
			{Name: "height", Unit: "meter", Value: 2},
			{Name: "time", Unit: "second", Value: 4},
		},
		Start: "weight",
		Steps: []pipeline.Step{
			{Op: pipeline.OpMul, Operand: "height"},
			{Op: pipeline.OpDiv, Operand: "time"},
		},
		Target: "watt",
	},
	"pressure": {
		Name: "pressure", Description: "700 N on 35 cm² of sole",
		Operands: []pipeline.Operand{
			{Name: "force", Unit: "newton", Value: 700},
			{Name: "area", Unit: "square_meter", Value: 0.0035},
		},
		Start:  "force",
		Steps:  []pipeline.Step{{Op: pipeline.OpDiv, Operand: "area"}},
		Target: "pascal",
	},
	"resistance": {
		Name: "resistance", Description: "12 V across a 3 mA load",
		Operands: []pipeline.Operand{
			{Name: "voltage", Unit: "volt", Value: 12},
			{Name: "current", Unit: "ampere", Prefix: "milli", Value: 3},
		},
		Start:  "voltage",
		Steps:  []pipeline.Step{{Op: pipeline.OpDiv, Operand: "current"}},
		Target: "ohm",
	},
	"bad_velocity": {
		Name: "bad_velocity", Description: "velocity cast to meter; always fails",
		Operands: []pipeline.Operand{
			{Name: "distance", Unit: "meter", Value: 100},
			{Name: "time", Unit: "second", Value: 9.6},
		},
		Start:  "distance",
		Steps:  []pipeline.Step{{Op: pipeline.OpDiv, Operand: "time"}},
		Target: "meter",
	},
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(name string) *pipeline.Pipeline {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	return p.Clone()
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

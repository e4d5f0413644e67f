package style

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"strconv"
	"strings"

	"github.com/npillmayer/tyse/core/dimen"
	"github.com/npillmayer/tyse/core/percent"
)

const (
	dimenNone uint8 = iota
	dimenAbsolute
	dimenAuto
	dimenInherit
	dimenInitial
	dimenPercent
)

// DimenT is an option type for dimensions of style properties.
//
//  type DimenT
//      = None
//      | Auto
//      | Inherit
//      | Initial
//      | JustDimen dimen
//      | Percentage Percent
//
type DimenT struct {
	d       dimen.DU
	percent percent.Percent
	kind    uint8
}

// Auto returns the dimension "auto".
func Auto() DimenT {
	return DimenT{kind: dimenAuto}
}

// Inherit returns the dimension variant "inherit".
func Inherit() DimenT {
	return DimenT{kind: dimenInherit}
}

// Initial returns the dimension variant "initial".
func Initial() DimenT {
	return DimenT{kind: dimenInitial}
}

// JustDimen creates a dimension with a fixed value of x.
func JustDimen(x dimen.DU) DimenT {
	return DimenT{d: x, kind: dimenAbsolute}
}

// Percentage creates a dimension with a %-relative value.
func Percentage(n percent.Percent) DimenT {
	return DimenT{percent: n, kind: dimenPercent}
}

// IsNone is true for dimensions which could not be derived from a property.
func (d DimenT) IsNone() bool { return d.kind == dimenNone }

// IsAuto is true for the "auto" variant.
func (d DimenT) IsAuto() bool { return d.kind == dimenAuto }

// IsInherit is true for the "inherit" variant.
func (d DimenT) IsInherit() bool { return d.kind == dimenInherit }

// IsInitial is true for the "initial" variant.
func (d DimenT) IsInitial() bool { return d.kind == dimenInitial }

// Just returns the fixed value of an absolute dimension.
// The boolean return is false for every other variant.
func (d DimenT) Just() (dimen.DU, bool) {
	return d.d, d.kind == dimenAbsolute
}

// Percent returns the value of a %-relative dimension.
// The boolean return is false for every other variant.
func (d DimenT) Percent() (percent.Percent, bool) {
	return d.percent, d.kind == dimenPercent
}

// DimenOption converts a style property to a dimension variant.
// Understood are the keywords "auto", "inherit" and "initial", percentages,
// and absolute lengths given in points ("12pt") or as bare numbers
// (interpreted as points). Relative units (em, vw, …) are resolved during
// layout, not here, and yield the None variant, as does any garbage input.
func DimenOption(p Property) DimenT {
	switch p {
	case "auto":
		return Auto()
	case "inherit":
		return Inherit()
	case "initial":
		return Initial()
	}
	s := p.String()
	if strings.HasSuffix(s, "%") {
		if n, err := strconv.Atoi(strings.TrimSuffix(s, "%")); err == nil {
			return Percentage(percent.FromInt(n))
		}
		return DimenT{}
	}
	s = strings.TrimSuffix(s, "pt")
	if n, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil {
		return JustDimen(dimen.DU(n * float64(dimen.PT)))
	}
	tracer().Debugf("style: cannot make a dimension from '%s'", p)
	return DimenT{}
}

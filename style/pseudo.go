package style

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

// PseudoType identifies a kind of pseudo-element, or no pseudo-element at
// all (PseudoNone) for styles of real document elements.
type PseudoType uint8

// Pseudo-element kinds. The set is fixed; every kind has an entry in the
// pseudo descriptor table below.
const (
	PseudoNone PseudoType = iota
	PseudoBefore
	PseudoAfter
	PseudoFirstLine
	PseudoFirstLetter
	PseudoMarker
	PseudoSelection
	PseudoPlaceholder
	PseudoBackdrop
)

// pseudoDesc is the static description of one pseudo-element kind.
// 'eager' marks kinds whose style is computed via independent selector
// matching together with the originating element. 'userActionState' marks
// kinds whose matched rules may depend on transient element state (hover
// and friends), even when the originating computed style is identical
// across elements.
type pseudoDesc struct {
	name            string
	eager           bool
	userActionState bool
}

var pseudoTable = [...]pseudoDesc{
	PseudoNone:        {name: "", eager: true},
	PseudoBefore:      {name: "::before", eager: true},
	PseudoAfter:       {name: "::after", eager: true},
	PseudoFirstLine:   {name: "::first-line", eager: true},
	PseudoFirstLetter: {name: "::first-letter", eager: true},
	PseudoMarker:      {name: "::marker"},
	PseudoSelection:   {name: "::selection", userActionState: true},
	PseudoPlaceholder: {name: "::placeholder", userActionState: true},
	PseudoBackdrop:    {name: "::backdrop"},
}

func (p PseudoType) desc() pseudoDesc {
	if int(p) >= len(pseudoTable) {
		panic("stycache: pseudo-element kind is missing from the descriptor table")
	}
	return pseudoTable[p]
}

func (p PseudoType) String() string {
	return p.desc().name
}

// IsPseudo is false only for PseudoNone.
func (p PseudoType) IsPseudo() bool {
	return p != PseudoNone
}

// IsEagerlyCascaded is true for pseudo-element kinds which are resolved
// by independent selector matching, together with their originating
// element. All other kinds are lazily cascaded: their style is derived by
// inheriting from the originating element's resolved style, which makes
// them candidates for sharing.
func (p PseudoType) IsEagerlyCascaded() bool {
	return p.desc().eager
}

// SupportsUserActionState is true for pseudo-element kinds whose matched
// rules can depend on transient element state. Styles of such kinds must
// never be shared between elements: identical originating styles do not
// guarantee identical pseudo rules when state differs.
func (p PseudoType) SupportsUserActionState() bool {
	return p.desc().userActionState
}

package style

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

// Atom names a kind of anonymous box: a layout-generated structure with no
// corresponding markup element, whose style inherits from a real element's
// style. Atoms are plain comparable identifiers; Go string comparison is
// cheap enough that we need no interning layer.
type Atom string

// NoAtom is the atom of styles which do not belong to an anonymous box.
const NoAtom Atom = ""

// Well-known anonymous-box kinds generated during box-tree construction.
const (
	AnonBlock           Atom = "anonymousBlock"
	AnonInline          Atom = "anonymousInline"
	AnonTable           Atom = "table"
	AnonTableRow        Atom = "tableRow"
	AnonTableCell       Atom = "tableCell"
	AnonPageBreak       Atom = "pageBreak"
	AnonFirstLetterTail Atom = "firstLetterContinuation"
)

func (a Atom) String() string {
	if a == NoAtom {
		return "<none>"
	}
	return string(a)
}

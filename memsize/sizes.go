package memsize

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import "fmt"

// --- Buckets ---------------------------------------------------------------

// Bucket is one of the three report categories for memory accounting.
type Bucket uint8

// The report buckets. Every size field of WindowSizes and ArenaSizes maps
// to exactly one of these.
const (
	DOM Bucket = iota // DOM stuff
	Style             // style stuff
	Other             // everything else
	numBuckets
)

func (b Bucket) String() string {
	switch b {
	case DOM:
		return "DOM"
	case Style:
		return "Style"
	case Other:
		return "Other"
	}
	return fmt.Sprintf("Bucket(%d)", b)
}

// BucketTotals accumulates sizes per report bucket.
type BucketTotals struct {
	totals [numBuckets]uint64
}

// Add adds n bytes to bucket b. An out-of-range bucket means a mapping
// table entry was added without a matching bucket and is fatal.
func (bt *BucketTotals) Add(b Bucket, n uint64) {
	if b >= numBuckets {
		panic("stycache: unknown memory report bucket: " + b.String())
	}
	bt.totals[b] += n
}

// Get returns the accumulated size of bucket b.
func (bt *BucketTotals) Get(b Bucket) uint64 {
	if b >= numBuckets {
		panic("stycache: unknown memory report bucket: " + b.String())
	}
	return bt.totals[b]
}

// Grand returns the sum over all three buckets.
func (bt *BucketTotals) Grand() uint64 {
	var total uint64
	for _, n := range bt.totals {
		total += n
	}
	return total
}

// --- Window sizes ----------------------------------------------------------

// Field enumerates the window-level size fields.
type Field uint8

// Window-level size fields. The (field → bucket) mapping lives in
// fieldBuckets; init checks the table for completeness.
const (
	DOMElementNodes Field = iota
	DOMTextNodes
	DOMCommentNodes
	DOMEventTargets
	DOMOtherSize
	StyleSheets
	StyleSets
	LayoutPresShell
	LayoutTextRuns
	LayoutFrameProperties
	numFields
)

var fieldNames = [numFields]string{
	"dom-element-nodes", "dom-text-nodes", "dom-comment-nodes",
	"dom-event-targets", "dom-other", "style-sheets", "style-sets",
	"layout-pres-shell", "layout-text-runs", "layout-frame-properties",
}

func (f Field) String() string {
	if f >= numFields {
		return fmt.Sprintf("Field(%d)", f)
	}
	return fieldNames[f]
}

var fieldBuckets = map[Field]Bucket{
	DOMElementNodes:       DOM,
	DOMTextNodes:          DOM,
	DOMCommentNodes:       DOM,
	DOMEventTargets:       DOM,
	DOMOtherSize:          DOM,
	StyleSheets:           Style,
	StyleSets:             Style,
	LayoutPresShell:       Other,
	LayoutTextRuns:        Other,
	LayoutFrameProperties: Other,
}

// WindowSizes is a snapshot of window-level memory consumption, plus the
// sizes of the arena the layout objects live in. Event target and listener
// counts ride along for reporting but do not enter byte totals.
type WindowSizes struct {
	sizes [numFields]uint64

	EventTargetsCount   uint32
	EventListenersCount uint32

	Arena ArenaSizes
}

// Add adds n bytes to field f.
func (ws *WindowSizes) Add(f Field, n uint64) {
	if f >= numFields {
		panic("stycache: unknown window size field: " + f.String())
	}
	ws.sizes[f] += n
}

// Size returns the byte count of field f.
func (ws *WindowSizes) Size(f Field) uint64 {
	if f >= numFields {
		panic("stycache: unknown window size field: " + f.String())
	}
	return ws.sizes[f]
}

// AddToBucketTotals distributes every size field, including the arena
// fields, onto the report buckets.
func (ws *WindowSizes) AddToBucketTotals(bt *BucketTotals) {
	for f := Field(0); f < numFields; f++ {
		bt.Add(fieldBuckets[f], ws.sizes[f])
	}
	ws.Arena.AddToBucketTotals(bt)
}

// TotalSize returns the sum of every size field, including the arena
// fields. For any snapshot, TotalSize equals the grand total of the
// buckets filled by AddToBucketTotals.
func (ws *WindowSizes) TotalSize() uint64 {
	var total uint64
	for f := Field(0); f < numFields; f++ {
		total += ws.sizes[f]
	}
	return total + ws.Arena.TotalSize()
}

// --- Arena sizes -----------------------------------------------------------

// ArenaObject enumerates the kinds of arena-allocated layout objects.
type ArenaObject uint8

// Arena object kinds. Style data mapped to the Style bucket, everything
// else to Other; see arenaBuckets.
const (
	LineBoxes ArenaObject = iota
	RuleNodes
	StyleContexts
	StyleStructs
	BlockFrames
	InlineFrames
	TextFrames
	TableFrames
	numArenaObjects
)

var arenaNames = [numArenaObjects]string{
	"line-boxes", "rule-nodes", "style-contexts", "style-structs",
	"block-frames", "inline-frames", "text-frames", "table-frames",
}

func (a ArenaObject) String() string {
	if a >= numArenaObjects {
		return fmt.Sprintf("ArenaObject(%d)", a)
	}
	return arenaNames[a]
}

var arenaBuckets = map[ArenaObject]Bucket{
	LineBoxes:     Other,
	RuleNodes:     Style,
	StyleContexts: Style,
	StyleStructs:  Style,
	BlockFrames:   Other,
	InlineFrames:  Other,
	TextFrames:    Other,
	TableFrames:   Other,
}

// ArenaSizes is a snapshot of per-kind arena memory consumption.
type ArenaSizes struct {
	sizes [numArenaObjects]uint64
}

// Add adds n bytes to the total of arena object kind a.
func (as *ArenaSizes) Add(a ArenaObject, n uint64) {
	if a >= numArenaObjects {
		panic("stycache: unknown arena object kind: " + a.String())
	}
	as.sizes[a] += n
}

// Size returns the byte count for arena object kind a.
func (as *ArenaSizes) Size(a ArenaObject) uint64 {
	if a >= numArenaObjects {
		panic("stycache: unknown arena object kind: " + a.String())
	}
	return as.sizes[a]
}

// AddToBucketTotals distributes every arena entry onto the report buckets.
func (as *ArenaSizes) AddToBucketTotals(bt *BucketTotals) {
	for a := ArenaObject(0); a < numArenaObjects; a++ {
		bt.Add(arenaBuckets[a], as.sizes[a])
	}
}

// TotalSize returns the sum over all arena entries.
func (as *ArenaSizes) TotalSize() uint64 {
	var total uint64
	for _, n := range as.sizes {
		total += n
	}
	return total
}

func init() {
	// Fail at startup if a field was added without a bucket mapping.
	for f := Field(0); f < numFields; f++ {
		if _, ok := fieldBuckets[f]; !ok {
			panic("stycache: window size field without bucket mapping: " + f.String())
		}
	}
	for a := ArenaObject(0); a < numArenaObjects; a++ {
		if _, ok := arenaBuckets[a]; !ok {
			panic("stycache: arena object kind without bucket mapping: " + a.String())
		}
	}
}

// Package syntax models the scanner's one external collaborator: a table
// that knows which spellings are operators and which names open a block,
// and if so what closes it. The scanner only ever calls the two methods
// below; everything about how the table is built or loaded lives here.
package syntax

// Table is the external syntax-description collaborator the scanner
// consults while extending operator spellings and recognizing block
// openers. A nil Table puts the scanner in discovery mode.
type Table interface {
	// IsOperator reports whether spelling may be extended as an operator.
	IsOperator(spelling string) bool
	// IsBlock reports whether name opens a block, and if so what name
	// closes it.
	IsBlock(name string) (closing string, ok bool)
}

// staticTable is a Table backed by plain maps, the shape both a
// hand-built table and one loaded from YAML end up in.
type staticTable struct {
	operators map[string]bool
	blocks    map[string]string
}

// New builds a Table directly from an operator set and an opener→closer
// map, for callers assembling syntax programmatically instead of loading
// it from a file.
func New(operators []string, blocks map[string]string) Table {
	t := &staticTable{
		operators: make(map[string]bool, len(operators)),
		blocks:    make(map[string]string, len(blocks)),
	}
	for _, op := range operators {
		t.operators[op] = true
	}
	for opening, closing := range blocks {
		t.blocks[opening] = closing
	}
	return t
}

func (t *staticTable) IsOperator(spelling string) bool {
	return t.operators[spelling]
}

func (t *staticTable) IsBlock(name string) (string, bool) {
	closing, ok := t.blocks[name]
	return closing, ok
}

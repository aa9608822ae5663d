package standard

import (
	"crypto/sha256"
	"encoding/hex"
	"sort"
	"strings"

	"github.com/ewan-klein/carneades/internal/model"
)

// Assignment maps statements to proof standards. Statements without an
// entry use the default standard. Different statements in the same case may
// carry different standards.
type Assignment struct {
	byStatement map[model.Statement]Standard
	def         Standard
}

// NewAssignment builds an assignment with the given default. Both the
// default and every assigned name are validated up front.
func NewAssignment(def string, assigned map[model.Statement]string) (*Assignment, error) {
	d, err := Parse(def)
	if err != nil {
		return nil, err
	}
	by := make(map[model.Statement]Standard, len(assigned))
	for s, name := range assigned {
		std, err := Parse(name)
		if err != nil {
			return nil, err
		}
		by[s] = std
	}
	return &Assignment{byStatement: by, def: d}, nil
}

// For returns the proof standard assigned to a statement.
func (a *Assignment) For(s model.Statement) Standard {
	if std, ok := a.byStatement[s]; ok {
		return std
	}
	return a.def
}

// Default returns the fallback standard.
func (a *Assignment) Default() Standard {
	return a.def
}

// Fingerprint digests the assignment's contents for cache keying.
func (a *Assignment) Fingerprint() string {
	lines := make([]string, 0, len(a.byStatement)+1)
	lines = append(lines, "default="+string(a.def))
	for s, std := range a.byStatement {
		lines = append(lines, s.String()+"="+string(std))
	}
	sort.Strings(lines)
	sum := sha256.Sum256([]byte(strings.Join(lines, "\n")))
	return hex.EncodeToString(sum[:])
}

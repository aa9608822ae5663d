// Package load reads declarative YAML case files and translates them into
// the construction API: statements, arguments, an argument graph, an
// audience, and a proof-standard assignment.
package load

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ewan-klein/carneades/internal/graph"
	"github.com/ewan-klein/carneades/internal/model"
	"github.com/ewan-klein/carneades/internal/standard"
)

// Case is a fully built, ready-to-evaluate argument case.
type Case struct {
	Title     string
	Graph     *graph.Graph
	Audience  *model.Audience
	Standards *standard.Assignment
	Targets   []model.Statement
}

// caseFile is the YAML shape. Statement references use the string form of
// model.Statement: a leading "-" negates.
type caseFile struct {
	Title      string          `yaml:"title"`
	Statements []statementDecl `yaml:"statements"`
	Arguments  []argumentDecl  `yaml:"arguments"`
	Audience   audienceDecl    `yaml:"audience"`
	Standards  standardsDecl   `yaml:"standards"`
	Targets    []string        `yaml:"targets"`
}

type statementDecl struct {
	ID       string `yaml:"id"`
	Standard string `yaml:"standard"`
}

type argumentDecl struct {
	ID          string   `yaml:"id"`
	Conclusion  string   `yaml:"conclusion"`
	Premises    []string `yaml:"premises"`
	Assumptions []string `yaml:"assumptions"`
	Exceptions  []string `yaml:"exceptions"`
}

type audienceDecl struct {
	Assumptions []string           `yaml:"assumptions"`
	Weights     map[string]float64 `yaml:"weights"`
}

type standardsDecl struct {
	Default string            `yaml:"default"`
	Assign  map[string]string `yaml:"assign"`
}

// File loads and builds a case from a YAML file. defaultStandard is used
// when the case file does not set its own default.
func File(path, defaultStandard string) (*Case, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read case file: %w", err)
	}
	c, err := Parse(data, defaultStandard)
	if err != nil {
		return nil, fmt.Errorf("case file %s: %w", path, err)
	}
	return c, nil
}

// Parse builds a case from YAML bytes. When the case declares a
// statements: block, every atom referenced by an argument, the audience, or
// a target must be declared there; a dangling reference is a configuration
// error at load time, not during evaluation.
func Parse(data []byte, defaultStandard string) (*Case, error) {
	var cf caseFile
	if err := yaml.Unmarshal(data, &cf); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	if len(cf.Arguments) == 0 {
		return nil, model.Configf("case declares no arguments")
	}

	declared := make(map[string]struct{}, len(cf.Statements))
	for _, decl := range cf.Statements {
		if decl.ID == "" {
			return nil, model.Configf("statement declaration has no id")
		}
		declared[model.ParseStatement(decl.ID).Atom] = struct{}{}
	}
	checkDeclared := func(context, ref string) error {
		if len(declared) == 0 {
			return nil
		}
		if _, ok := declared[model.ParseStatement(ref).Atom]; !ok {
			return model.Configf("%s references undeclared statement %q", context, ref)
		}
		return nil
	}

	g := graph.New()
	for _, decl := range cf.Arguments {
		if decl.Conclusion == "" {
			return nil, model.Configf("argument %q has no conclusion", decl.ID)
		}
		for _, refs := range [][]string{{decl.Conclusion}, decl.Premises, decl.Assumptions, decl.Exceptions} {
			for _, ref := range refs {
				if err := checkDeclared(fmt.Sprintf("argument %q", decl.ID), ref); err != nil {
					return nil, err
				}
			}
		}
		arg, err := model.NewArgument(
			decl.ID,
			model.ParseStatement(decl.Conclusion),
			parseStatements(decl.Premises),
			parseStatements(decl.Assumptions),
			parseStatements(decl.Exceptions),
		)
		if err != nil {
			return nil, err
		}
		if err := g.AddArgument(arg); err != nil {
			return nil, err
		}
	}

	for id := range cf.Audience.Weights {
		if _, ok := g.ByID(id); !ok {
			return nil, model.Configf("audience weights reference unknown argument %q", id)
		}
	}
	for _, ref := range cf.Audience.Assumptions {
		if err := checkDeclared("audience assumptions", ref); err != nil {
			return nil, err
		}
	}
	audience, err := model.NewAudience(parseStatements(cf.Audience.Assumptions), cf.Audience.Weights)
	if err != nil {
		return nil, err
	}

	def := cf.Standards.Default
	if def == "" {
		def = defaultStandard
	}
	assigned := make(map[model.Statement]string)
	for ref, name := range cf.Standards.Assign {
		if err := checkDeclared("standards assignment", ref); err != nil {
			return nil, err
		}
		assigned[model.ParseStatement(ref)] = name
	}
	// Per-statement standards may also ride on the declarations.
	for _, decl := range cf.Statements {
		if decl.Standard != "" {
			assigned[model.ParseStatement(decl.ID)] = decl.Standard
		}
	}
	standards, err := standard.NewAssignment(def, assigned)
	if err != nil {
		return nil, err
	}

	var targets []model.Statement
	for _, ref := range cf.Targets {
		if err := checkDeclared("targets", ref); err != nil {
			return nil, err
		}
		targets = append(targets, model.ParseStatement(ref))
	}

	return &Case{
		Title:     cf.Title,
		Graph:     g,
		Audience:  audience,
		Standards: standards,
		Targets:   targets,
	}, nil
}

func parseStatements(refs []string) []model.Statement {
	if len(refs) == 0 {
		return nil
	}
	out := make([]model.Statement, len(refs))
	for i, ref := range refs {
		out[i] = model.ParseStatement(ref)
	}
	return out
}

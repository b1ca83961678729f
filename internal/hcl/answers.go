package hcl

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/vk/tagcloud/internal/config"
	"github.com/vk/tagcloud/internal/ctxlog"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
)

// AnswersFile is a config.Source backed by an HCL file.
type AnswersFile struct {
	path    string
	environ func() []string
}

// NewAnswersFile returns a source that reads settings from path.
func NewAnswersFile(path string) *AnswersFile {
	return &AnswersFile{path: path, environ: os.Environ}
}

// answersRoot is the schema of an answers file.
type answersRoot struct {
	Input  string         `hcl:"input"`
	Output hcl.Expression `hcl:"output"`
	Count  int            `hcl:"count"`
}

// Settings parses the answers file and evaluates its attributes.
func (a *AnswersFile) Settings(ctx context.Context) (*config.Settings, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Reading answers file.", "path", a.path)

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(a.path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse answers file %s: %w", a.path, diags)
	}

	evalCtx := &hcl.EvalContext{
		Variables: map[string]cty.Value{"env": environValue(a.environ())},
	}

	var root answersRoot
	diags = gohcl.DecodeBody(file.Body, evalCtx, &root)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode answers file %s: %w", a.path, diags)
	}
	if root.Input == "" {
		return nil, fmt.Errorf("answers file %s: input must not be empty", a.path)
	}

	output, err := evalOutput(evalCtx, root.Input, root.Output)
	if err != nil {
		return nil, fmt.Errorf("answers file %s: %w", a.path, err)
	}

	settings := &config.Settings{
		InputPath:  root.Input,
		OutputPath: output,
		NumWords:   root.Count,
	}
	logger.Debug("Answers file decoded.", "input", settings.InputPath, "output", settings.OutputPath, "count", settings.NumWords)
	return settings, nil
}

// evalOutput evaluates the output expression in a child context that knows
// about the input path.
func evalOutput(parent *hcl.EvalContext, input string, expr hcl.Expression) (string, error) {
	child := parent.NewChild()
	child.Variables = map[string]cty.Value{
		"input":      cty.StringVal(input),
		"input_stem": cty.StringVal(stem(input)),
	}

	val, diags := expr.Value(child)
	if diags.HasErrors() {
		return "", fmt.Errorf("invalid output expression: %w", diags)
	}
	val, err := convert.Convert(val, cty.String)
	if err != nil {
		return "", fmt.Errorf("output must be a string: %w", err)
	}
	if val.IsNull() || !val.IsKnown() || val.AsString() == "" {
		return "", fmt.Errorf("output must not be empty")
	}
	return val.AsString(), nil
}

func stem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

func environValue(environ []string) cty.Value {
	vars := make(map[string]cty.Value, len(environ))
	for _, e := range environ {
		if k, v, ok := strings.Cut(e, "="); ok && k != "" {
			vars[k] = cty.StringVal(v)
		}
	}
	if len(vars) == 0 {
		return cty.MapValEmpty(cty.String)
	}
	return cty.MapVal(vars)
}

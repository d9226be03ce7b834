package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	if args == nil {
		args = []string{}
	}
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

const page = `{
  "type": "root",
  "children": [
    {"type": "element", "tagName": "h1", "properties": {"className": ["title"]}, "children": [{"type": "text", "value": "Hi"}]},
    {"type": "element", "tagName": "svg", "properties": {"viewBox": "0 0 1 1"}, "children": []}
  ]
}`

type cliTestcase struct {
	name     string
	args     []string
	expected string
}

func TestRootCmd(t *testing.T) {
	tests := []cliTestcase{
		{"html", nil, `<html><h1 class="title">Hi</h1><svg viewBox="0 0 1 1"/></html>` + "\n"},
		{"fragment", []string{"--fragment"}, `<h1 class="title">Hi</h1><svg viewBox="0 0 1 1"/>` + "\n"},
		{
			"xml",
			[]string{"--format", "xml"},
			`<html xmlns="http://www.w3.org/1999/xhtml"><h1 class="title">Hi</h1><svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 1 1"/></html>` + "\n",
		},
		{
			"tree",
			[]string{"-f", "tree", "--fragment"},
			"#document-fragment\n| <h1>\n|   class=\"title\"\n|   \"Hi\"\n| <svg svg>\n|   viewBox=\"0 0 1 1\"\n",
		},
	}
	for _, tt := range tests {
		runRootCmdTest(tt, t)
	}
}

func runRootCmdTest(tt cliTestcase, t *testing.T) {
	t.Run(tt.name, func(t *testing.T) {
		t.Parallel()
		out, _, err := execute(t, page, tt.args...)
		require.NoError(t, err)
		assert.Equal(t, tt.expected, out)
	})
}

func TestRootCmdYAML(t *testing.T) {
	t.Parallel()
	out, _, err := execute(t, "type: element\ntagName: p\nchildren:\n  - type: text\n    value: a & b\n")
	require.NoError(t, err)
	assert.Equal(t, "<p>a &amp; b</p>\n", out)
}

func TestRootCmdStats(t *testing.T) {
	t.Parallel()
	_, errOut, err := execute(t, page, "--stats")
	require.NoError(t, err)
	assert.Equal(t, `hast_to_dom_elements_created_total namespace=html 2
hast_to_dom_elements_created_total namespace=svg 1
hast_to_dom_nodes_transformed_total type=element 2
hast_to_dom_nodes_transformed_total type=root 1
hast_to_dom_nodes_transformed_total type=text 1
`, errOut)
}

func TestRootCmdDumpAndVerbose(t *testing.T) {
	t.Parallel()
	_, errOut, err := execute(t, `{"type": "comment", "value": "c"}`, "--dump", "--verbose")
	require.NoError(t, err)
	assert.Contains(t, errOut, "(*hast.Comment)")
	assert.Contains(t, errOut, "transforming tree")
}

func TestRootCmdErrors(t *testing.T) {
	t.Parallel()

	_, _, err := execute(t, page, "--format", "pdf")
	assert.EqualError(t, err, `unknown format "pdf"`)

	_, _, err = execute(t, `{"type": "root", "children": {}}`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decoding tree")

	_, _, err = execute(t, `{"type": "element", "tagName": "a b"}`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "transforming tree: InvalidCharacterError")

	_, _, err = execute(t, page, "extra")
	assert.Error(t, err)
}

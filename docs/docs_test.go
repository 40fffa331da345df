package docs

import (
	"bufio"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swaggo/swag"
)

var (
	paramLine  = regexp.MustCompile(`^// @Param (\S+) \S+ \S+ \S+ "([^"]*)"`)
	routerLine = regexp.MustCompile(`^// @Router (\S+) \[(\w+)\]`)
)

type annotatedOperation struct {
	summary     string
	description string
	params      map[string]string
}

type documentedOperation struct {
	Summary     string `json:"summary"`
	Description string `json:"description"`
	Parameters  []struct {
		Name        string `json:"name"`
		Description string `json:"description"`
	} `json:"parameters"`
}

// readAnnotations collects the operation annotations of the handler sources keyed by "method path"
func readAnnotations(t *testing.T) map[string]annotatedOperation {
	t.Helper()
	files, err := filepath.Glob("../internal/handlers/*_handler.go")
	require.NoError(t, err)
	require.NotEmpty(t, files)

	ops := make(map[string]annotatedOperation)
	for _, name := range files {
		f, err := os.Open(name)
		require.NoError(t, err)

		op := annotatedOperation{params: map[string]string{}}
		scanner := bufio.NewScanner(f)
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())
			switch {
			case strings.HasPrefix(line, "// @Summary "):
				op = annotatedOperation{summary: strings.TrimPrefix(line, "// @Summary "), params: map[string]string{}}
			case strings.HasPrefix(line, "// @Description "):
				op.description = strings.TrimPrefix(line, "// @Description ")
			case paramLine.MatchString(line):
				m := paramLine.FindStringSubmatch(line)
				op.params[m[1]] = m[2]
			case routerLine.MatchString(line):
				m := routerLine.FindStringSubmatch(line)
				ops[m[2]+" "+m[1]] = op
			}
		}
		require.NoError(t, scanner.Err())
		f.Close()
	}
	return ops
}

func TestSwaggerMatchesHandlerAnnotations(t *testing.T) {
	raw, err := swag.ReadDoc()
	require.NoError(t, err)

	var doc struct {
		Paths map[string]map[string]documentedOperation `json:"paths"`
	}
	require.NoError(t, json.Unmarshal([]byte(raw), &doc))

	annotated := readAnnotations(t)
	documented := 0
	for path, methods := range doc.Paths {
		documented += len(methods)
		for method, op := range methods {
			key := method + " " + path
			t.Run(key, func(t *testing.T) {
				want, ok := annotated[key]
				require.True(t, ok, "operation has no handler annotation")

				assert.Equal(t, want.summary, op.Summary)
				assert.Equal(t, want.description, op.Description)

				got := make(map[string]string, len(op.Parameters))
				for _, p := range op.Parameters {
					got[p.Name] = p.Description
				}
				assert.Equal(t, want.params, got)
			})
		}
	}
	assert.Equal(t, len(annotated), documented)
}

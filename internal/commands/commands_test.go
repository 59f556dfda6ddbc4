package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/hay-kot/criterio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/bluebook/internal/catalog"
	"github.com/colonyops/bluebook/internal/core/bluebook"
	"github.com/colonyops/bluebook/internal/core/config"
	"github.com/colonyops/bluebook/internal/core/doctor"
	"github.com/colonyops/bluebook/internal/navigator"
	"github.com/colonyops/bluebook/pkg/executil"
	"github.com/colonyops/bluebook/pkg/tuitest"
)

func testDocs() []bluebook.DocumentEntry {
	return []bluebook.DocumentEntry{
		{Filename: "2023_07.pdf"},
		{Filename: "2024_01.pdf", Display: "January 2024"},
		{Filename: "manual.pdf", Display: "Manual"},
	}
}

func testIndex() map[string]bluebook.DocumentStructure {
	return map[string]bluebook.DocumentStructure{
		"manual.pdf": {
			Parts: []bluebook.PartRef{{Title: "Intro", Page: 1}, {Title: "Rules", Page: 10}},
			Sections: map[string][]bluebook.Section{
				"Rules": {{Title: "General", Page: 12, Subsections: []bluebook.Subsection{{Title: "Scope", PageNumber: 13}}}},
			},
		},
	}
}

type testEnv struct {
	root *cli.Command
	out  *bytes.Buffer
	app  *navigator.App
	rec  *executil.RecordingExecutor
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	r := chi.NewRouter()
	r.Get(catalog.DocumentsPath, func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(testDocs())
	})
	r.Get(catalog.IndexPath, func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(testIndex())
	})
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	cfg := config.DefaultConfig()
	cfg.Server.URL = srv.URL
	cfg.Server.Timeout = 2 * time.Second
	cfg.Opener.Command = []string{"xdg-open"}

	rec := &executil.RecordingExecutor{}
	app, err := navigator.NewApp(&cfg, rec)
	require.NoError(t, err)

	flags := &Flags{Config: &cfg}
	out := &bytes.Buffer{}
	root := &cli.Command{
		Name:      "bluebook",
		Writer:    out,
		ErrWriter: &bytes.Buffer{},
	}
	root = NewLsCmd(flags, app).Register(root)
	root = NewTocCmd(flags, app).Register(root)
	root = NewOpenCmd(flags, app).Register(root)

	return &testEnv{root: root, out: out, app: app, rec: rec}
}

func (e *testEnv) run(t *testing.T, args ...string) error {
	t.Helper()
	return e.root.Run(context.Background(), append([]string{"bluebook"}, args...))
}

func TestFilterDocuments(t *testing.T) {
	tests := []struct {
		pattern string
		want    []string
	}{
		{"", []string{"2023_07.pdf", "2024_01.pdf", "manual.pdf"}},
		{"2023_*.pdf", []string{"2023_07.pdf"}},
		{"*_0?.pdf", []string{"2023_07.pdf"}},
		{"{manual,2024_*}.pdf", []string{"2024_01.pdf", "manual.pdf"}},
		{"nothing*", nil},
	}

	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			got, err := filterDocuments(testDocs(), tt.pattern)
			require.NoError(t, err)

			var names []string
			for _, d := range got {
				names = append(names, d.Filename)
			}
			assert.Equal(t, tt.want, names)
		})
	}

	t.Run("invalid pattern", func(t *testing.T) {
		_, err := filterDocuments(testDocs(), "[")
		assert.Error(t, err)
	})
}

func TestLsCmd(t *testing.T) {
	t.Run("table", func(t *testing.T) {
		env := newTestEnv(t)
		require.NoError(t, env.run(t, "ls"))

		out := env.out.String()
		assert.Contains(t, out, "FILENAME")
		assert.Contains(t, out, "INDEXED")
		assert.Contains(t, out, "July 2023, RIDOT Bluebook")
		assert.Contains(t, out, "January 2024")
	})

	t.Run("json with match", func(t *testing.T) {
		env := newTestEnv(t)
		require.NoError(t, env.run(t, "ls", "--json", "--match", "manual*"))

		var got []documentInfo
		require.NoError(t, json.Unmarshal(env.out.Bytes(), &got))
		assert.Equal(t, []documentInfo{{Filename: "manual.pdf", Display: "Manual", Indexed: true}}, got)
	})
}

func TestTocCmd(t *testing.T) {
	t.Run("markdown outline", func(t *testing.T) {
		env := newTestEnv(t)
		require.NoError(t, env.run(t, "toc", "manual.pdf"))

		out := env.out.String()
		assert.Contains(t, out, "# manual.pdf")
		assert.Contains(t, out, "## Rules (p. 10)")
		assert.Contains(t, out, "  - Scope (p. 13)")
	})

	t.Run("json", func(t *testing.T) {
		env := newTestEnv(t)
		require.NoError(t, env.run(t, "toc", "--json", "manual.pdf"))

		var got bluebook.DocumentStructure
		require.NoError(t, json.Unmarshal(env.out.Bytes(), &got))
		assert.Equal(t, testIndex()["manual.pdf"], got)
	})

	t.Run("index file", func(t *testing.T) {
		env := newTestEnv(t)
		path := filepath.Join(t.TempDir(), "index.json")
		data, err := json.Marshal(map[string]bluebook.DocumentStructure{
			"offline.pdf": {Parts: []bluebook.PartRef{{Title: "Only", Page: 3}}},
		})
		require.NoError(t, err)
		require.NoError(t, os.WriteFile(path, data, 0o600))

		require.NoError(t, env.run(t, "toc", "--index-file", path, "offline.pdf"))
		assert.Contains(t, env.out.String(), "## Only (p. 3)")
	})

	t.Run("unknown document", func(t *testing.T) {
		env := newTestEnv(t)
		err := env.run(t, "toc", "missing.pdf")
		assert.ErrorIs(t, err, navigator.ErrUnknownDocument)
	})
}

func TestOpenCmd(t *testing.T) {
	t.Run("print", func(t *testing.T) {
		env := newTestEnv(t)
		require.NoError(t, env.run(t, "open", "--part", "Rules", "--section", "General", "--print", "manual.pdf"))

		assert.Equal(t, env.app.URL("/view_pdf/manual.pdf?page=12")+"\n", env.out.String())
		assert.Empty(t, env.rec.Recorded())
	})

	t.Run("opens with launcher", func(t *testing.T) {
		env := newTestEnv(t)
		require.NoError(t, env.run(t, "open", "--part", "Intro", "manual.pdf"))

		cmds := env.rec.Recorded()
		require.Len(t, cmds, 1)
		assert.Equal(t, []string{env.app.URL("/view_pdf/manual.pdf?page=1")}, cmds[0].Args)
		assert.Contains(t, tuitest.StripANSI(env.out.String()), "Opened ")
	})

	t.Run("launcher failure", func(t *testing.T) {
		env := newTestEnv(t)
		env.rec.Errors = map[string]error{"xdg-open": errors.New("no display")}

		err := env.run(t, "open", "--part", "Intro", "manual.pdf")
		assert.ErrorContains(t, err, "no display")
	})

	t.Run("unknown title", func(t *testing.T) {
		env := newTestEnv(t)
		err := env.run(t, "open", "--part", "Appendix", "--print", "manual.pdf")
		assert.ErrorContains(t, err, "Appendix")
	})
}

func TestCollectIssues(t *testing.T) {
	assert.Nil(t, collectIssues(nil))

	err := criterio.FieldErrorsBuilder{}.
		Append("server.url", fmt.Errorf("missing host")).
		Append("tui.theme", fmt.Errorf("unknown theme")).
		ToError()
	assert.Equal(t, []validationIssue{
		{Field: "server.url", Message: "missing host"},
		{Field: "tui.theme", Message: "unknown theme"},
	}, collectIssues(err))

	assert.Equal(t, []validationIssue{{Field: "config", Message: "boom"}}, collectIssues(errors.New("boom")))
}

func TestOutputIssues(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, outputIssues(&buf, nil))
	assert.Contains(t, tuitest.StripANSI(buf.String()), "Configuration is valid")

	buf.Reset()
	err := outputIssues(&buf, []validationIssue{{Field: "server.url", Message: "missing host"}})
	require.Error(t, err)
	out := tuitest.StripANSI(buf.String())
	assert.Contains(t, out, "server.url: missing host")
	assert.Contains(t, out, "1 error(s) found")
}

func TestRenderMarkdownPassthrough(t *testing.T) {
	var buf bytes.Buffer
	assert.Equal(t, "# Title\n", renderMarkdown(&buf, "# Title\n"))
}

func TestWriteDoctorReport(t *testing.T) {
	results := []doctor.Result{
		{Name: "Server", Items: []doctor.CheckItem{
			{Label: "documents", Status: doctor.StatusPass, Detail: "3 available"},
			{Label: "coverage", Status: doctor.StatusWarn, Detail: "not indexed: a.pdf"},
		}},
		{Name: "Opener", Items: []doctor.CheckItem{
			{Label: "xdg-open", Status: doctor.StatusFail, Detail: "not found on PATH"},
		}},
	}

	var buf bytes.Buffer
	writeDoctorReport(&buf, results)
	out := tuitest.StripANSI(buf.String())

	assert.Contains(t, out, "Bluebook Doctor")
	assert.Contains(t, out, "  ✔ documents 3 available")
	assert.Contains(t, out, "  ● coverage not indexed: a.pdf")
	assert.Contains(t, out, "  ✘ xdg-open not found on PATH")
	assert.Contains(t, out, "1 passed  1 warnings  1 failed")
}

func TestDoctorCmd_JSONHealthy(t *testing.T) {
	env := newTestEnv(t)
	env.app.Config.Opener.Command = []string{"sh"}
	root := NewDoctorCmd(&Flags{Config: env.app.Config}, env.app).Register(env.root)

	require.NoError(t, root.Run(context.Background(), []string{"bluebook", "doctor", "--format", "json"}))

	var got struct {
		Healthy bool `json:"healthy"`
		Summary struct {
			Warned int `json:"warned"`
			Failed int `json:"failed"`
		} `json:"summary"`
		Checks []doctor.Result `json:"checks"`
	}
	require.NoError(t, json.Unmarshal(env.out.Bytes(), &got))
	assert.True(t, got.Healthy)
	assert.Equal(t, 0, got.Summary.Failed)
	// two of the three fake documents have no index entry
	assert.Equal(t, 1, got.Summary.Warned)
	require.Len(t, got.Checks, 3)
	assert.Equal(t, []string{"Configuration", "Server", "Opener"},
		[]string{got.Checks[0].Name, got.Checks[1].Name, got.Checks[2].Name})
}

package target

import (
	"fmt"

	"github.com/recmake/re-cmake/internal/model"
)

// Command tokens with a friendly alias. Any other token is passed to CMake
// unchanged as a target name.
const (
	CmdClean       = "clean"
	CmdRender      = "render"
	CmdPreview     = "preview"
	CmdEdit        = "edit"
	CmdUninstall   = "uninstall"
	CmdValidate    = "validate"
	CmdBuild       = "build"
	CmdInstall     = "install"
	CmdTest        = "test"
	CmdLocal45     = "local45"
	CmdUniversal45 = "universal45"
	CmdValidate45  = "validate45"
)

// Table is the token-to-target mapping for one invocation.
type Table struct {
	targets map[string]string
}

// NewTable formats the variant-dependent target names with the install
// type and GUI type derived from opts.
func NewTable(opts model.Options) *Table {
	gui := opts.GUIType()
	l45 := opts.LocalInstallType()

	return &Table{
		targets: map[string]string{
			CmdClean:     "common-clean",
			CmdRender:    fmt.Sprintf("common-render-%s", gui),
			CmdPreview:   fmt.Sprintf("common-preview-%s", gui),
			CmdEdit:      fmt.Sprintf("common-edit-%s", gui),
			CmdUninstall: "common-uninstall",
			CmdValidate:  "common-validate",

			CmdBuild:   "native-build",
			CmdInstall: fmt.Sprintf("native-install-%s", gui),
			CmdTest:    "native-run-test",

			CmdLocal45:     fmt.Sprintf("jbox-l45-%s-install-%s", l45, gui),
			CmdUniversal45: "jbox-u45-build",
			CmdValidate45:  "jbox-validate45",
		},
	}
}

// Resolve returns the CMake target for token. Unknown tokens resolve to
// themselves.
func (t *Table) Resolve(token string) string {
	if target, ok := t.targets[token]; ok {
		return target
	}
	return token
}

// Lookup reports whether token is a known alias and returns its target.
func (t *Table) Lookup(token string) (string, bool) {
	target, ok := t.targets[token]
	return target, ok
}

package cli

import (
	"fmt"
	"strings"

	"github.com/recmake/re-cmake/internal/model"
	"github.com/recmake/re-cmake/internal/target"
)

// commandHelp groups the aliased commands the way they are listed in the
// help text. Every alias of the target table appears exactly once.
var commandHelp = []struct {
	title    string
	commands [][2]string
}{
	{
		title: "Native build commands",
		commands: [][2]string{
			{target.CmdBuild, "build the RE (.dylib)"},
			{target.CmdInstall, "build (code/gui) and install the RE for use in Recon"},
			{target.CmdTest, "run the unit tests"},
		},
	},
	{
		title: "Jbox build commands (build45 / sandbox toolchain)",
		commands: [][2]string{
			{target.CmdLocal45, "build (code/gui) and install the RE for use in Recon ('Deployment' type or -d/-t to change)"},
			{target.CmdUniversal45, "build the package for uploading to Reason Studio servers (.u45)"},
			{target.CmdValidate45, "runs the Recon validate process on local45 (equivalent to local45 validate)"},
		},
	},
	{
		title: "Common commands",
		commands: [][2]string{
			{target.CmdClean, "clean all builds"},
			{target.CmdRender, "runs RE2DRender to generate the GUI (necessary for running in Recon)"},
			{target.CmdPreview, "runs RE2DPreview to generate the device preview (useful for shop images)"},
			{target.CmdEdit, "runs RE Edit to edit the device (UI)"},
			{target.CmdUninstall, "deletes the installed RE"},
			{target.CmdValidate, "runs the Recon validate process on the currently installed plugin"},
		},
	},
}

// longHelp renders the description shown by --help and when no command is
// given. Target names are shown for the default variants.
func longHelp() string {
	table := target.NewTable(model.Options{})

	var b strings.Builder
	b.WriteString("Translates high level commands into 'cmake --build' invocations, run in order.\n")
	b.WriteString("The first failing command stops the sequence.\n\n")
	b.WriteString("Commands\n")

	for _, group := range commandHelp {
		fmt.Fprintf(&b, "  ---- %s ----\n", group.title)
		for _, c := range group.commands {
			fmt.Fprintf(&b, "  %-11s : %s", c[0], c[1])
			if name, ok := table.Lookup(c[0]); ok {
				fmt.Fprintf(&b, " [%s]", name)
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	b.WriteString("  ---- CMake target ----\n")
	b.WriteString("  <command>   : Any unknown <command> is treated as a cmake target\n\n")
	b.WriteString("  ---- Native options ----\n")
	b.WriteString("  Pass remaining options to the native tool (ex: -- -j 8 for parallel build)")

	return b.String()
}

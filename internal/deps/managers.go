package deps

// DefaultManager is used when no package manager is configured.
const DefaultManager = "npm"

// builtin is a package manager defined by a fixed command line
type builtin struct {
	name        string
	description string
	binary      string
	args        []string
}

func (b builtin) Name() string        { return b.name }
func (b builtin) Description() string { return b.description }
func (b builtin) Command() (string, []string) {
	return b.binary, append([]string(nil), b.args...)
}

var (
	npm = builtin{
		name:        "npm",
		description: "Install dependencies with npm",
		binary:      "npm",
		args:        []string{"install"},
	}
	yarn = builtin{
		name:        "yarn",
		description: "Install dependencies with Yarn",
		binary:      "yarn",
		args:        []string{"install"},
	}
	pnpm = builtin{
		name:        "pnpm",
		description: "Install dependencies with pnpm",
		binary:      "pnpm",
		args:        []string{"install"},
	}
)

// Package templates holds the template tree new components are built from.
//
// Layout of FS:
//
//	helpers/       dotfiles, README and bower.json copied to the project root
//	logic/         documentation page and polymer.json copied to the root
//	package.json   npm manifest
//	tasks/         build tasks, copied to tasks/
//	element.html   component definition, copied to <name>.html
//	test/          web-component-tester suite
//	demo/          demo page
//	license.md     CC-BY license used in branded mode
package templates

import (
	"embed"
	"io/fs"
)

//go:embed all:files
var embedded embed.FS

// FS is the template tree rooted at its top directory.
var FS fs.FS = mustSub(embedded, "files")

func mustSub(fsys fs.FS, dir string) fs.FS {
	sub, err := fs.Sub(fsys, dir)
	if err != nil {
		panic(err)
	}
	return sub
}

// Package scaffold builds a new web-component project from a template tree.
//
// The pipeline is strictly sequential:
//
//  1. Resolve validates the request and fills in defaults from an explicit
//     Environment (author, repository, version, target directory).
//  2. Copier copies template subtrees into the target directory.
//  3. Rewrite substitutes the ELEMENT-* and REPOSITORY-NAME placeholders in
//     a fixed list of generated files. In branded mode PatchManifests then
//     adjusts package.json and bower.json.
//  4. An Installer optionally installs dependencies. Its failure is reported
//     but does not fail the run.
//
// Engine ties the steps together:
//
//	engine, err := scaffold.NewEngine(req, env, scaffold.EngineConfig{})
//	if err != nil {
//	    return err
//	}
//	report, err := engine.Run(ctx)
package scaffold

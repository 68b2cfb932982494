// Package exec runs external commands for polymd.
//
// Executor wraps os/exec with context support, output capture and an
// optional spinner for long-running commands such as package installs:
//
//	executor := exec.NewExecutor(&exec.Options{Dir: target})
//	stdout, stderr, err := executor.Output(ctx, "npm", "install")
//
// GenericCommand offers a fluent builder over the same executor:
//
//	exec.NewGenericCommand(executor, "npm").
//	    WithArgs("install").
//	    WithDir(target).
//	    WithSpinner("Installing dependencies").
//	    Output(ctx)
//
// Tests replace the command constructor to run a helper process instead of
// real binaries.
package exec

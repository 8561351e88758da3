// Package runner performs the five filesystem operations the reconciler
// plans: clone-repository, copy-tree, rename-aside, remove-tree and
// create-symlink.
//
// Cloning shells out to git. Everything else goes through types.FS, so the
// semantics match `cp -r`, `mv`, `rm -rf` and `ln -s` without spawning
// processes. Every operation either completes or returns a coded error from
// pkg/errors; callers only need to know the step did not complete.
package runner

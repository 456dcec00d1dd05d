package config

// Namespace is the key prefix owned by spaces in the git config store.
const Namespace = "spaces."

// Configuration keys.
const (
	KeyCopyInclude     = "spaces.copy.include"
	KeyCopyExclude     = "spaces.copy.exclude"
	KeyCopyIncludeDirs = "spaces.copy.includeDirs"
	KeyCopyExcludeDirs = "spaces.copy.excludeDirs"
	KeyClonesDir       = "spaces.clones.dir"
	KeyClonesPrefix    = "spaces.clones.prefix"
	KeyMirrorsDir      = "spaces.mirrors.dir"
	KeyDefaultBranch   = "spaces.defaultBranch"
)

// HookKey returns the config key holding the commands for a lifecycle
// phase, e.g. HookKey("postCreate") == "spaces.hook.postCreate".
func HookKey(phase string) string {
	return Namespace + "hook." + phase
}

package fixtures

// Input-mode names used as keys in the operation groups of a RepoConfig.
const (
	ModeSourcepath = "sourcepath"
	ModeMetadata   = "metadata"
	ModeManifest   = "manifest"
	ModeTestLevel  = "testlevel" // deploy only
)

// Operation names recorded by consumers of the catalog.
const (
	OpDeploy   = "deploy"
	OpRetrieve = "retrieve"
	OpConvert  = "convert"
)

// TestCase pairs a literal command-argument string with the glob patterns
// that must match the files the command produces.
//
// Args may contain top-level commas separating multiple path or metadata
// tokens. A quoted sub-string denotes a single multi-path argument; its
// embedded commas are nonetheless split naively at load time (see ParseArgs)
// and the quote characters stay attached to the outer tokens.
//
// ToVerify globs always use forward slashes, even after Args has been
// rewritten to the native separator. Harnesses comparing glob matches
// against the file system must normalize on their side.
type TestCase struct {
	Args           string   `yaml:"args"`
	ToVerify       []string `yaml:"toVerify,omitempty"`
	SpecifiedTests []string `yaml:"specifiedTests,omitempty"`
}

// RepoConfig describes one external sample project and the test cases to
// generate against it. The three operation groups map input-mode names to
// test cases; deploy additionally carries a testlevel group.
type RepoConfig struct {
	Skip     bool                  `yaml:"skip,omitempty"`
	GitURL   string                `yaml:"gitUrl"`
	Deploy   map[string][]TestCase `yaml:"deploy"`
	Retrieve map[string][]TestCase `yaml:"retrieve"`
	Convert  map[string][]TestCase `yaml:"convert"`
}

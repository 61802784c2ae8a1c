package status

// Data contains all the information to display in status
type Data struct {
	// Header
	Version   string
	GitCommit string
	BuildTime string

	// Configuration
	ConfigPath  string // file loaded, empty when running on defaults
	ConfigError string // load failure, reported instead of aborting
	Shell       string
	Var         string
	Name        string
	Bin         string
	Completer   string
	LogLevel    string

	// Shells
	Shells      []string
	ShellKnown  bool   // configured shell is registered
	NuVersion   string // $NU_VERSION when running under Nushell
	EnvVarValue string // current value of the completer variable
}

// Options controls what Collect inspects
type Options struct {
	ConfigPath string
	Shells     []string
	Getenv     func(string) string
}

package rfpaccel

// Options is the root command that groups sub-commands. The struct tags
// are interpreted by github.com/jessevdk/go-flags.
type Options struct {
	Config   string `short:"f" long:"config" description:"service config YAML path or URL"`
	LogLevel string `long:"log-level" description:"log verbosity: debug|info|warn|error"`
	Version  bool   `short:"v" long:"version" description:"print version and exit"`

	Run    *RunCmd    `command:"run"    description:"Run the RFP kickoff workflow"`
	Resume *ResumeCmd `command:"resume" description:"Resume a workflow from a saved context"`
	Serve  *ServeCmd  `command:"serve"  description:"Start HTTP server"`
}

// Init instantiates the sub-command referenced by the first argument so
// that flags.Parse can populate its fields.
func (o *Options) Init(firstArg string) {
	switch firstArg {
	case "run":
		o.Run = &RunCmd{}
	case "resume":
		o.Resume = &ResumeCmd{}
	case "serve":
		o.Serve = &ServeCmd{}
	}
}

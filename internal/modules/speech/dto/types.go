package dto

const (
	VerdictMatched    = "matched"
	VerdictMismatched = "mismatched"
	VerdictNoInput    = "no_input"
	VerdictError      = "error"
)

type VerifyInput struct {
	Expected string
}

type VerdictOutput struct {
	Kind       string
	Transcript string
	Reason     string
	Err        error
}

type PlayInput struct {
	Profile string
	Text    string
}

type PluginCheckOutput struct {
	Name            string
	Version         string
	Enabled         bool
	BinaryReachable bool
	ChecksumValid   bool
	LifecycleOK     bool
	Error           string
}

type DoctorOutput struct {
	Engine       string
	Locale       string
	CanRecognize bool
	CanSpeak     bool
	Detail       string
	Plugins      []PluginCheckOutput
}

package xhttp

const (
	Accept    = "Accept"
	UserAgent = "User-Agent"
)

// UserAgentPrefix is followed by the build version.
const UserAgentPrefix = "tock/"

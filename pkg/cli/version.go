package cli

// Version is the release version, overridden at build time with
// -ldflags "-X github.com/Fepozopo/depthify/pkg/cli.Version=...".
var Version = "0.1.0"

// updateRepo is the GitHub repository queried by the update command.
const updateRepo = "Fepozopo/depthify"

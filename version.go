package quickstart

// Version is the release version, set at build time with
// -ldflags "-X github.com/aretw0/quickstart.Version=...".
var Version = "dev"

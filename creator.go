package creator

// Version is the CLI version, surfaced by the root command's --version
// flag.
const Version = "0.3.0"

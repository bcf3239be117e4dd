package xlmtrace

// AppName is the tool name printed in the banner.
const AppName = "xlmtrace"

// Version is set at build time with -ldflags.
var Version = "0.1.0"

package version

// Version is overridden at build time with -ldflags "-X ipfilter/internal/version.Version=...".
var Version = "dev"

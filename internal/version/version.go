package version

// Version is stamped at build time with -ldflags "-X".
var Version = "dev"

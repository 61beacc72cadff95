package main

// Version is stamped by the release build; the default marks dev builds.
var Version = "dev"

// Package logtail reads the end of the viewer's log file for the in-app log
// view. Lines written by zerolog are decoded into entries; anything else is
// kept verbatim.
package logtail

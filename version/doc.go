// Package version reports the apiclient release a binary was built with.
//
// The version is read from the module build info. It can be pinned at
// compile time via -ldflags:
//
//	go build -ldflags "-X github.com/kbukum/apiclient/version.Version=1.0.0"
package version

package config

import "time"

// Fill with -ldflags on build.
var (
	AppName   = "formgateway"
	Version   = "dev"
	Commit    = "none"
	BuildTime = "" // ISO8601
)

type BuildInfo struct {
	AppName   string
	Version   string
	Commit    string
	BuildTime string
	StartedAt time.Time
}

func NewBuildInfo(startedAt time.Time) BuildInfo {
	return BuildInfo{
		AppName:   AppName,
		Version:   Version,
		Commit:    Commit,
		BuildTime: BuildTime,
		StartedAt: startedAt,
	}
}

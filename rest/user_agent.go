package rest

import (
	"runtime"

	"github.com/lainsato/valuecell/env"
	"github.com/lainsato/valuecell/useragent"
	"github.com/lainsato/valuecell/version"
)

func GetUserAgent() string {
	e := useragent.ENV_HOST
	if env.InDocker() {
		e = useragent.ENV_DOCKER
	}

	ua := useragent.UA{
		Version: version.ReleaseVersion(),
		OS:      runtime.GOOS,
		Arch:    runtime.GOARCH,
		EnvType: e,
	}
	return ua.String()
}

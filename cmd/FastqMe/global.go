package main

import (
	"errors"
	"regexp"
)

// env
const (
	EnvWebhookKey = "WECHATWORK_KEY"
	EnvSlimsHost  = "SLIMS_HOST"
	EnvMention    = "WECHATWORK_MENTION"
)

// regexp
var (
	isGS = regexp.MustCompile(`^gs://[^/]+`)
)

var (
	errNotProjectDir = errors.New("please make your project directory using 'mkdir project_name' and enter it using 'cd project_name' and then try again")
	errWrongIDs      = errors.New("an error has occured, please try entering your project metadata again")
	errInconsistent  = errors.New("aborted: some samples are missing forward or reverse reads")
)

var locations = []string{"slims", "gs", "local"}

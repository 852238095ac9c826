package resources

import (
	"fmt"
	"os"

	"github.com/npillmayer/fisboard/core"
	"github.com/npillmayer/schuko"
)

type resourceType int

// resource types
const (
	unknownResourceType resourceType = iota
	fontResourceType
	flagResourceType
)

// Configuration keys for resource locations.
const (
	FontDirKey = "fontdir"
	FlagDirKey = "flagdir"
)

// NotFound returns an application error for a missing resource.
func NotFound(res string, rtype resourceType) error {
	e := fmt.Errorf("resource missing: %v", res)
	var s string
	switch rtype {
	case fontResourceType:
		s = fmt.Sprintf("font directory not found: %s", res)
	case flagResourceType:
		s = fmt.Sprintf("flag not found: %s", res)
	default:
		s = fmt.Sprintf("resource not found: %s", res)
	}
	return core.WrapError(e, core.EMISSING, s)
}

// FontDir returns the root directory of the bitmap fonts, configured with
// key 'fontdir'.
func FontDir(conf schuko.Configuration) (string, error) {
	return configuredDir(conf, FontDirKey, fontResourceType)
}

// FlagDir returns the directory of flag images, configured with key 'flagdir'.
func FlagDir(conf schuko.Configuration) (string, error) {
	return configuredDir(conf, FlagDirKey, flagResourceType)
}

func configuredDir(conf schuko.Configuration, key string, rtype resourceType) (string, error) {
	dir := conf.GetString(key)
	if dir == "" {
		tracer().Infof("resource location not configured: key '%s' should point to a directory", key)
		return "", core.Error(core.EMISSING, "configuration key '%s' not set", key)
	}
	fi, err := os.Stat(dir)
	if err != nil || !fi.IsDir() {
		tracer().Errorf("configured %s is not a directory: %s", key, dir)
		return "", NotFound(dir, rtype)
	}
	tracer().Debugf("config[%s] = %s", key, dir)
	return dir, nil
}

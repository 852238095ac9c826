package resources

import (
	"context"
	"encoding/json"
	"image"
	_ "image/png" // flag images may be PNG
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/npillmayer/fisboard/core"
	_ "golang.org/x/image/bmp" // flag images may be BMP
)

// FlagInfo describes a flag.
type FlagInfo struct {
	Name string `json:"name"`
	Info string `json:"info"`
}

// ListFlags returns the file names of all flag images in dir, sorted.
// Every file not ending in '.json' counts as a flag image.
func ListFlags(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, NotFound(dir, flagResourceType)
	}
	var flags []string
	for _, e := range entries {
		if e.IsDir() || strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		flags = append(flags, e.Name())
	}
	sort.Strings(flags)
	tracer().Debugf("found %d flags in %s", len(flags), dir)
	return flags, nil
}

// InfoFilename returns the name of the info file of a flag image.
func InfoFilename(flag string) string {
	return strings.TrimSuffix(flag, filepath.Ext(flag)) + ".json"
}

// LoadFlag loads flag image name from dir, together with its info file.
func LoadFlag(dir, name string) (image.Image, *FlagInfo, error) {
	file, err := os.Open(filepath.Join(dir, name))
	if err != nil {
		return nil, nil, NotFound(name, flagResourceType)
	}
	defer file.Close()
	img, format, err := image.Decode(file)
	if err != nil {
		return nil, nil, core.WrapError(err, core.EINVALID, "cannot decode flag image %s", name)
	}
	tracer().Debugf("flag %s is a %s image", name, format)
	infoPath := filepath.Join(dir, InfoFilename(name))
	data, err := os.ReadFile(infoPath)
	if err != nil {
		return nil, nil, NotFound(infoPath, flagResourceType)
	}
	info := &FlagInfo{}
	if err = json.Unmarshal(data, info); err != nil {
		return nil, nil, core.WrapError(err, core.EINVALID, "malformed flag info %s", infoPath)
	}
	return img, info, nil
}

// --- Async loading ---------------------------------------------------------

type flagPlusErr struct {
	img  image.Image
	info *FlagInfo
	err  error
}

// FlagPromise delivers a flag loaded in the background.
type FlagPromise interface {
	Flag() (image.Image, *FlagInfo, error)
	Await(ctx context.Context) (image.Image, *FlagInfo, error)
}

type flagLoader struct {
	await func(ctx context.Context) (image.Image, *FlagInfo, error)
}

func (loader flagLoader) Flag() (image.Image, *FlagInfo, error) {
	return loader.await(context.Background())
}

func (loader flagLoader) Await(ctx context.Context) (image.Image, *FlagInfo, error) {
	return loader.await(ctx)
}

// ResolveFlag loads a flag in the background and returns a promise for it.
func ResolveFlag(dir, name string) FlagPromise {
	ch := make(chan flagPlusErr, 1)
	go func(ch chan<- flagPlusErr) {
		result := flagPlusErr{}
		result.img, result.info, result.err = LoadFlag(dir, name)
		ch <- result
		close(ch)
	}(ch)
	return flagLoader{
		await: func(ctx context.Context) (image.Image, *FlagInfo, error) {
			select {
			case <-ctx.Done():
				return nil, nil, ctx.Err()
			case r := <-ch:
				return r.img, r.info, r.err
			}
		},
	}
}

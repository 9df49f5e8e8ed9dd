package cmd

import (
	"fmt"

	"github.com/lepinkainen/videoinfo/types"
	"github.com/lepinkainen/videoinfo/ui"
	"github.com/lepinkainen/videoinfo/video"
)

type FormatsCmd struct{}

func (cmd *FormatsCmd) Run(appCtx *types.AppContext) error {
	version := types.DefaultVersion
	if appCtx != nil {
		version = appCtx.Version
	}

	fmt.Println(ui.HeaderStyle.Render(fmt.Sprintf("VideoInfo %s", version)))
	fmt.Println(ui.InfoStyle.Render(fmt.Sprintf("Supported container formats (%d):", len(video.SupportedFormats))))
	for _, format := range video.SupportedFormats {
		fmt.Printf("  %s\n", format)
	}
	return nil
}

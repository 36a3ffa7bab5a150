package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/coachdesk/coachdesk/internal/client/models"
)

// Videos lists the caller's training videos, optionally at a given page.
func (a *App) Videos(ctx context.Context, args []string) error {
	if err := a.root.Videos.Fetch(ctx, pageArg(args)); err != nil {
		a.log.Error(ctx, "video list fetch failed", "error", err)
		return err
	}

	st := a.root.Videos.Snapshot()
	for _, v := range st.Videos.Items {
		printlnFn(fmt.Sprintf("%s  %-32s %s", v.ID, v.Title, v.URL))
	}
	printPageFooter(st.Videos.CurrentPage, st.Videos.TotalPages, st.Videos.TotalCount)
	return nil
}

// UploadVideo collects title, description, and a local file path, then
// streams the file up with progress output.
func (a *App) UploadVideo(ctx context.Context) error {
	title, err := getSimpleText(a.reader, "Enter video title", os.Stdout)
	if err != nil {
		return err
	}
	description, err := GetMultiline(a.reader, "Enter description:", os.Stdout)
	if err != nil {
		return err
	}
	path, err := getSimpleText(a.reader, "Enter path to video file", os.Stdout)
	if err != nil {
		return err
	}

	f, err := openUpload(path)
	if err != nil {
		a.log.Error(ctx, "cannot open file", "path", path, "error", err)
		return err
	}
	defer f.Close()

	meta := models.VideoMeta{Title: title, Description: description}
	if err := a.root.Videos.Upload(ctx, meta, filepath.Base(path), f, printProgress); err != nil {
		a.log.Error(ctx, "video upload failed", "error", err)
		return err
	}
	printlnFn("Video uploaded.")
	return nil
}

// DeleteVideo removes a training video after confirmation.
func (a *App) DeleteVideo(ctx context.Context) error {
	id, err := getSimpleText(a.reader, "Enter video id to delete", os.Stdout)
	if err != nil {
		return err
	}
	if !confirm(a.reader, fmt.Sprintf("Delete video %s?", id), os.Stdout) {
		printlnFn("Cancelled.")
		return nil
	}

	if err := a.root.Videos.Delete(ctx, id); err != nil {
		a.log.Error(ctx, "video delete failed", "error", err)
		return err
	}
	printlnFn("Video deleted.")
	return nil
}

package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// openUpload is a test seam for opening the file a user points an upload at.
var openUpload = func(path string) (*os.File, error) { return os.Open(path) }

// Trainees lists the trainer's coached clients, optionally at a given page.
func (a *App) Trainees(ctx context.Context, args []string) error {
	if err := a.root.Trainees.Fetch(ctx, pageArg(args)); err != nil {
		a.log.Error(ctx, "trainee list fetch failed", "error", err)
		return err
	}

	st := a.root.Trainees.Snapshot()
	for _, t := range st.Trainees.Items {
		printlnFn(fmt.Sprintf("%s  %-24s %s", t.ID, t.Email, t.Name))
	}
	printPageFooter(st.Trainees.CurrentPage, st.Trainees.TotalPages, st.Trainees.TotalCount)
	return nil
}

// AddTrainee attaches a trainee to the trainer by email.
func (a *App) AddTrainee(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter trainee email", os.Stdout)
	if err != nil {
		return err
	}

	if err := a.root.Trainees.Add(ctx, email); err != nil {
		a.log.Error(ctx, "add trainee failed", "error", err)
		return err
	}
	printlnFn("Trainee added.")
	return nil
}

// RemoveTrainee detaches a trainee after confirmation.
func (a *App) RemoveTrainee(ctx context.Context) error {
	id, err := getSimpleText(a.reader, "Enter trainee id to remove", os.Stdout)
	if err != nil {
		return err
	}
	if !confirm(a.reader, fmt.Sprintf("Remove trainee %s?", id), os.Stdout) {
		printlnFn("Cancelled.")
		return nil
	}

	if err := a.root.Trainees.Remove(ctx, id); err != nil {
		a.log.Error(ctx, "remove trainee failed", "error", err)
		return err
	}
	printlnFn("Trainee removed.")
	return nil
}

// Certificates lists the trainer's uploaded credential documents.
func (a *App) Certificates(ctx context.Context) error {
	if err := a.root.Trainees.FetchCertificates(ctx); err != nil {
		a.log.Error(ctx, "certificate list fetch failed", "error", err)
		return err
	}

	for _, d := range a.root.Trainees.Snapshot().Certificates {
		printlnFn(fmt.Sprintf("%s  %s  %s", d.ID, d.Name, d.URL))
	}
	return nil
}

// UploadCertificate streams a local file to the backend, printing progress
// as it goes. The certificate list is re-fetched on success.
func (a *App) UploadCertificate(ctx context.Context) error {
	path, err := getSimpleText(a.reader, "Enter path to certificate file", os.Stdout)
	if err != nil {
		return err
	}

	f, err := openUpload(path)
	if err != nil {
		a.log.Error(ctx, "cannot open file", "path", path, "error", err)
		return err
	}
	defer f.Close()

	err = a.root.Trainees.UploadCertificate(ctx, filepath.Base(path), f, printProgress)
	if err != nil {
		a.log.Error(ctx, "certificate upload failed", "error", err)
		return err
	}
	printlnFn("Certificate uploaded.")
	return nil
}

func printProgress(percent int) {
	printlnFn(fmt.Sprintf("... %d%%", percent))
}

package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/coachdesk/coachdesk/internal/client/models"
)

// Verifications lists the pending-verification queue, optionally at a page.
func (a *App) Verifications(ctx context.Context, args []string) error {
	if err := a.root.Verification.FetchQueue(ctx, pageArg(args)); err != nil {
		a.log.Error(ctx, "verification queue fetch failed", "error", err)
		return err
	}

	st := a.root.Verification.Snapshot()
	for _, rec := range st.Queue.Items {
		printlnFn(fmt.Sprintf("%s  %-24s %-12s docs=%d", rec.UserID, rec.Profile.Email, rec.Profile.Role, len(rec.Documents)))
	}
	printPageFooter(st.Queue.CurrentPage, st.Queue.TotalPages, st.Queue.TotalCount)
	return nil
}

// Approve marks a pending user verified. The queue is re-fetched; the server
// decides whether the record leaves it.
func (a *App) Approve(ctx context.Context) error {
	userID, err := getSimpleText(a.reader, "Enter user id to approve", os.Stdout)
	if err != nil {
		return err
	}

	if err := a.root.Verification.UpdateStatus(ctx, userID, models.VerificationVerified, ""); err != nil {
		a.log.Error(ctx, "approve failed", "error", err)
		return err
	}
	printlnFn("Approved.")
	return nil
}

// Reject declines a pending user. A reason is mandatory; the store refuses
// a blank one before any network traffic happens.
func (a *App) Reject(ctx context.Context) error {
	userID, err := getSimpleText(a.reader, "Enter user id to reject", os.Stdout)
	if err != nil {
		return err
	}
	reason, err := getSimpleText(a.reader, "Enter rejection reason", os.Stdout)
	if err != nil {
		return err
	}

	if err := a.root.Verification.UpdateStatus(ctx, userID, models.VerificationRejected, reason); err != nil {
		a.log.Error(ctx, "reject failed", "error", err)
		return err
	}
	printlnFn("Rejected.")
	return nil
}

// Notes lists the admin notes of one user: "notes <user-id>".
func (a *App) Notes(ctx context.Context, args []string) error {
	if len(args) == 0 {
		printlnFn("Usage: notes <user-id>")
		return nil
	}

	if err := a.root.Verification.FetchNotes(ctx, args[0]); err != nil {
		a.log.Error(ctx, "notes fetch failed", "error", err)
		return err
	}

	for _, n := range a.root.Verification.Snapshot().Notes {
		printlnFn(fmt.Sprintf("%s  [%s] %s", n.CreatedAt.Format("2006-01-02"), n.AddedBy, n.Note))
	}
	return nil
}

// AddNote attaches a remark to the user whose notes are currently loaded.
func (a *App) AddNote(ctx context.Context) error {
	userID := a.root.Verification.Snapshot().NotesUser
	if userID == "" {
		printlnFn("Load a user's notes first (notes <user-id>).")
		return nil
	}

	text, err := GetMultiline(a.reader, "Enter note text:", os.Stdout)
	if err != nil {
		return err
	}

	if err := a.root.Verification.AddNote(ctx, userID, text); err != nil {
		a.log.Error(ctx, "add note failed", "error", err)
		return err
	}
	printlnFn("Note added.")
	return nil
}

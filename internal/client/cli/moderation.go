package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/coachdesk/coachdesk/internal/client/models"
)

// reportKind parses the kind argument of a reports command.
func (a *App) reportKind(args []string) (models.ReportKind, bool) {
	if len(args) == 0 {
		return "", false
	}
	kind := models.ReportKind(args[0])
	if !kind.Valid() {
		return "", false
	}
	return kind, true
}

// Reports lists open reports for one content kind:
// "reports <users|posts|comments|communities> [page]".
func (a *App) Reports(ctx context.Context, args []string) error {
	kind, ok := a.reportKind(args)
	if !ok {
		printlnFn("Usage: reports <users|posts|comments|communities> [page]")
		return nil
	}
	a.lastKind = kind

	if err := a.root.Moderation.Fetch(ctx, kind, pageArg(args[1:])); err != nil {
		a.log.Error(ctx, "report list fetch failed", "kind", kind, "error", err)
		return err
	}

	st := a.root.Moderation.Snapshot(kind)
	for _, r := range st.Reports.Items {
		printlnFn(fmt.Sprintf("%s  entity=%s  %s", r.ID, r.EntityID, r.Reason))
	}
	printPageFooter(st.Reports.CurrentPage, st.Reports.TotalPages, st.Reports.TotalCount)
	return nil
}

// Dismiss closes a report without touching the reported entity.
func (a *App) Dismiss(ctx context.Context) error {
	if a.lastKind == "" {
		printlnFn("List reports first (reports <kind>).")
		return nil
	}

	id, err := getSimpleText(a.reader, "Enter report id to dismiss", os.Stdout)
	if err != nil {
		return err
	}
	if !confirm(a.reader, fmt.Sprintf("Dismiss report %s?", id), os.Stdout) {
		printlnFn("Cancelled.")
		return nil
	}

	if err := a.root.Moderation.Dismiss(ctx, a.lastKind, id); err != nil {
		a.log.Error(ctx, "dismiss failed", "error", err)
		return err
	}
	printlnFn("Report dismissed.")
	return nil
}

// DeleteReported removes the reported entity itself. Deleting a reported
// user also refreshes the general user list, which may have contained them.
func (a *App) DeleteReported(ctx context.Context) error {
	if a.lastKind == "" {
		printlnFn("List reports first (reports <kind>).")
		return nil
	}

	id, err := getSimpleText(a.reader, "Enter entity id to delete", os.Stdout)
	if err != nil {
		return err
	}
	if !confirm(a.reader, fmt.Sprintf("Delete reported %s %s? This cannot be undone.", a.lastKind, id), os.Stdout) {
		printlnFn("Cancelled.")
		return nil
	}

	if err := a.root.Moderation.DeleteReported(ctx, a.lastKind, id); err != nil {
		a.log.Error(ctx, "delete reported entity failed", "error", err)
		return err
	}
	printlnFn("Entity deleted.")
	return nil
}

package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/coachdesk/coachdesk/internal/client/models"
)

// Users lists the admin user collection. An optional argument selects the
// page when numeric, or narrows the list to one role when it names one
// (e.g. "users 2", "users trainer").
func (a *App) Users(ctx context.Context, args []string) error {
	if len(args) > 0 {
		if role := models.Role(args[0]); role.Valid() {
			if err := a.root.Users.SetRoleFilter(ctx, role); err != nil {
				a.log.Error(ctx, "user list fetch failed", "error", err)
				return err
			}
			a.printUsers()
			return nil
		}
	}

	q := a.root.Users.Snapshot().Query
	q.Page = pageArg(args)
	if err := a.root.Users.Fetch(ctx, q); err != nil {
		a.log.Error(ctx, "user list fetch failed", "error", err)
		return err
	}
	a.printUsers()
	return nil
}

// SearchUsers schedules a debounced user search. The fetch fires after the
// settle delay; results show up on the next "users" call or via the change
// callback.
func (a *App) SearchUsers(ctx context.Context, args []string) error {
	term := strings.Join(args, " ")
	a.root.Users.Search(ctx, term)
	printlnFn(fmt.Sprintf("Searching for %q ...", term))
	return nil
}

// DeleteUser removes an account after an explicit confirmation. The list is
// re-fetched by the store; nothing is patched locally.
func (a *App) DeleteUser(ctx context.Context) error {
	id, err := getSimpleText(a.reader, "Enter user id to delete", os.Stdout)
	if err != nil {
		return err
	}
	if !confirm(a.reader, fmt.Sprintf("Delete user %s? This cannot be undone.", id), os.Stdout) {
		printlnFn("Cancelled.")
		return nil
	}

	if err := a.root.Users.Delete(ctx, id); err != nil {
		a.log.Error(ctx, "user delete failed", "error", err)
		return err
	}
	printlnFn("User deleted.")
	a.printUsers()
	return nil
}

// ChangeRole reassigns a user's role and re-fetches the list.
func (a *App) ChangeRole(ctx context.Context) error {
	id, err := getSimpleText(a.reader, "Enter user id", os.Stdout)
	if err != nil {
		return err
	}
	roleText, err := getSimpleText(a.reader, "Enter new role (trainer, nutritionist, trainee, admin)", os.Stdout)
	if err != nil {
		return err
	}

	if err := a.root.Users.ChangeRole(ctx, id, models.Role(roleText)); err != nil {
		a.log.Error(ctx, "role change failed", "error", err)
		return err
	}
	printlnFn("Role updated.")
	return nil
}

func (a *App) printUsers() {
	st := a.root.Users.Snapshot()
	for _, u := range st.Users.Items {
		printlnFn(fmt.Sprintf("%s  %-24s %-12s verified=%t", u.ID, u.Email, u.Role, u.Verified))
	}
	printPageFooter(st.Users.CurrentPage, st.Users.TotalPages, st.Users.TotalCount)
}

// pageArg parses an optional leading page number, defaulting to 1.
func pageArg(args []string) int {
	if len(args) == 0 {
		return 1
	}
	n, err := strconv.Atoi(args[0])
	if err != nil || n < 1 {
		return 1
	}
	return n
}

func printPageFooter(current, total, count int) {
	printlnFn(fmt.Sprintf("-- page %d/%d, %d total --", current, total, count))
}

package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/coachdesk/coachdesk/internal/client/models"
)

// Reviews lists the reviews of one trainer: "reviews <trainer-id> [page]".
func (a *App) Reviews(ctx context.Context, args []string) error {
	if len(args) == 0 {
		printlnFn("Usage: reviews <trainer-id> [page]")
		return nil
	}
	trainerID := args[0]

	if err := a.root.Reviews.Fetch(ctx, trainerID, pageArg(args[1:])); err != nil {
		a.log.Error(ctx, "review list fetch failed", "error", err)
		return err
	}

	st := a.root.Reviews.Snapshot()
	for _, r := range st.Reviews.Items {
		printlnFn(fmt.Sprintf("%s  %d/5  %s", r.ID, r.Rating, r.Comment))
	}
	printPageFooter(st.Reviews.CurrentPage, st.Reviews.TotalPages, st.Reviews.TotalCount)
	return nil
}

// SubmitReview collects a rating and comment for the trainer whose reviews
// are currently loaded.
func (a *App) SubmitReview(ctx context.Context) error {
	trainerID := a.root.Reviews.Snapshot().TrainerID
	if trainerID == "" {
		printlnFn("Load a trainer's reviews first (reviews <trainer-id>).")
		return nil
	}

	ratingText, err := getSimpleText(a.reader, "Enter rating (1-5)", os.Stdout)
	if err != nil {
		return err
	}
	rating, err := strconv.Atoi(ratingText)
	if err != nil || rating < 1 || rating > 5 {
		printlnFn("Rating must be a number from 1 to 5.")
		return nil
	}

	comment, err := GetMultiline(a.reader, "Enter comment:", os.Stdout)
	if err != nil {
		return err
	}

	review := models.Review{TrainerID: trainerID, Rating: rating, Comment: comment}
	if err := a.root.Reviews.Submit(ctx, review); err != nil {
		a.log.Error(ctx, "review submit failed", "error", err)
		return err
	}
	printlnFn("Review submitted.")
	return nil
}

package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Login(ctx context.Context) error
	Signup(ctx context.Context) error
	Logout(ctx context.Context) error
	Whoami(ctx context.Context) error
	ResetPassword(ctx context.Context) error
	Users(ctx context.Context, args []string) error
	SearchUsers(ctx context.Context, args []string) error
	DeleteUser(ctx context.Context) error
	ChangeRole(ctx context.Context) error
	Trainees(ctx context.Context, args []string) error
	AddTrainee(ctx context.Context) error
	RemoveTrainee(ctx context.Context) error
	Certificates(ctx context.Context) error
	UploadCertificate(ctx context.Context) error
	Videos(ctx context.Context, args []string) error
	UploadVideo(ctx context.Context) error
	DeleteVideo(ctx context.Context) error
	Reviews(ctx context.Context, args []string) error
	SubmitReview(ctx context.Context) error
	Verifications(ctx context.Context, args []string) error
	Approve(ctx context.Context) error
	Reject(ctx context.Context) error
	Notes(ctx context.Context, args []string) error
	AddNote(ctx context.Context) error
	Reports(ctx context.Context, args []string) error
	Dismiss(ctx context.Context) error
	DeleteReported(ctx context.Context) error
}

// runREPL starts a simple read–eval–print loop for the CoachDesk console.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Prompt & Commands
//
// The prompt shows the current status (from statusFn) and accepts commands:
//
//	Not logged in:
//	  - help           — show available commands
//	  - signup         — create an account
//	  - login          — authenticate
//	  - resetpw        — request or confirm a password reset
//	  - exit | quit    — leave the program
//
//	Logged in:
//	  - help           — show available commands
//	  - whoami         — show the current session
//	  - users [page]   — list users (admin)
//	  - search <term>  — search users (admin, debounced)
//	  - deluser        — delete a user (admin, confirms first)
//	  - role           — change a user's role (admin)
//	  - trainees       — list coached trainees
//	  - addtrainee     — attach a trainee by email
//	  - rmtrainee      — detach a trainee
//	  - certs          — list uploaded certificates
//	  - upcert         — upload a certificate with progress
//	  - videos [page]  — list training videos
//	  - upvideo        — upload a training video with progress
//	  - delvideo       — delete a training video (confirms first)
//	  - reviews <id>   — list a trainer's reviews
//	  - addreview      — submit a review
//	  - verify [page]  — list the pending-verification queue (admin)
//	  - approve        — approve a pending user (admin)
//	  - reject         — reject a pending user with a reason (admin)
//	  - notes <id>     — list admin notes on a user
//	  - addnote        — attach a note to a user (admin)
//	  - reports <kind> — list open reports for a content kind (admin)
//	  - dismiss        — dismiss a report (admin, confirms first)
//	  - delreported    — delete a reported entity (admin, confirms first)
//	  - logout         — log out
//	  - exit | quit    — leave the program
//
// Any errors returned by command handlers are ignored here; handlers should
// log their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("coachdesk %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: whoami, users, search, deluser, role, trainees, addtrainee, rmtrainee, certs, upcert, videos, upvideo, delvideo, reviews, addreview, verify, approve, reject, notes, addnote, reports, dismiss, delreported, logout, exit")
			} else {
				printlnFn("Available commands: signup, login, resetpw, exit")
			}

		case "signup":
			_ = a.Signup(ctx)

		case "login":
			_ = a.Login(ctx)

		case "resetpw":
			_ = a.ResetPassword(ctx)

		case "whoami":
			_ = a.Whoami(ctx)

		case "users":
			_ = a.Users(ctx, args)

		case "search":
			_ = a.SearchUsers(ctx, args)

		case "deluser":
			_ = a.DeleteUser(ctx)

		case "role":
			_ = a.ChangeRole(ctx)

		case "trainees":
			_ = a.Trainees(ctx, args)

		case "addtrainee":
			_ = a.AddTrainee(ctx)

		case "rmtrainee":
			_ = a.RemoveTrainee(ctx)

		case "certs":
			_ = a.Certificates(ctx)

		case "upcert":
			_ = a.UploadCertificate(ctx)

		case "videos":
			_ = a.Videos(ctx, args)

		case "upvideo":
			_ = a.UploadVideo(ctx)

		case "delvideo":
			_ = a.DeleteVideo(ctx)

		case "reviews":
			_ = a.Reviews(ctx, args)

		case "addreview":
			_ = a.SubmitReview(ctx)

		case "verify":
			_ = a.Verifications(ctx, args)

		case "approve":
			_ = a.Approve(ctx)

		case "reject":
			_ = a.Reject(ctx)

		case "notes":
			_ = a.Notes(ctx, args)

		case "addnote":
			_ = a.AddNote(ctx)

		case "reports":
			_ = a.Reports(ctx, args)

		case "dismiss":
			_ = a.Dismiss(ctx)

		case "delreported":
			_ = a.DeleteReported(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}

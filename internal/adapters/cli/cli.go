// Package cli is the one-shot command adapter. It parses arguments, calls
// the ApplicationService and prints results; no business logic lives here.
package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	"invoiceease/internal/app"
	"invoiceease/internal/core"

	"github.com/shopspring/decimal"
)

// Run executes a one-shot CLI command and exits.
// args is os.Args[1:] — the first element is the subcommand name.
func Run(ctx context.Context, svc app.ApplicationService, args []string) {
	if len(args) == 0 {
		usage()
		os.Exit(2)
	}

	switch args[0] {
	case "signup":
		requireArgs(args, 3, "Usage: invoiceease signup <email> <business name>")
		session, err := svc.SignUp(ctx, app.SignUpRequest{Email: args[1], ProfileName: args[2]})
		if err != nil {
			fatalDomain(err)
		}
		fmt.Printf("Signed up and in as %s\n", session.User.Email)

	case "signin":
		requireArgs(args, 2, "Usage: invoiceease signin <email>")
		session, err := svc.SignIn(ctx, args[1])
		if err != nil {
			fatalDomain(err)
		}
		fmt.Printf("Signed in as %s\n", session.User.Email)

	case "signout":
		if err := svc.SignOut(ctx); err != nil {
			log.Fatalf("Sign out failed: %v", err)
		}
		fmt.Println("Signed out.")

	case "whoami":
		session, err := svc.Session(ctx)
		if err != nil {
			log.Fatalf("Failed to load session: %v", err)
		}
		if session.User == nil {
			fmt.Println("Not signed in.")
			return
		}
		fmt.Printf("User: %s\n", session.User.Email)
		if session.ActiveProfile != nil {
			fmt.Printf("Active profile: %s (%s)\n", session.ActiveProfile.Name, session.ActiveProfile.ID)
		} else {
			fmt.Println("No active business profile.")
		}

	case "profile":
		runProfile(ctx, svc, args[1:])

	case "client":
		runClient(ctx, svc, args[1:])

	case "invoice", "lpo", "estimate":
		runDocument(ctx, svc, args)

	case "receipt":
		runReceipt(ctx, svc, args[1:])

	case "note":
		runNote(ctx, svc, args[1:])

	case "activity":
		feed, err := svc.ActivityFeed(ctx)
		if err != nil {
			log.Fatalf("Failed to load activity: %v", err)
		}
		for _, e := range feed.Events {
			fmt.Printf("%s  [%s]  %s\n", e.Timestamp.Format("2006-01-02 15:04"), e.Type, e.Description)
		}

	case "export":
		requireArgs(args, 2, "Usage: invoiceease export <document id>")
		path, err := svc.ExportDocument(ctx, args[1])
		if err != nil {
			log.Fatalf("Export failed: %v", err)
		}
		fmt.Printf("Exported to %s\n", path)

	default:
		usage()
		os.Exit(2)
	}
}

func runProfile(ctx context.Context, svc app.ApplicationService, args []string) {
	if len(args) == 0 {
		log.Fatal("Usage: invoiceease profile <create|list|use|delete> ...")
	}
	switch args[0] {
	case "create":
		requireArgs(args, 2, "Usage: invoiceease profile create <name>")
		result, err := svc.CreateProfile(ctx, app.ProfileRequest{Name: args[1]})
		if err != nil {
			fatalDomain(err)
		}
		fmt.Printf("Created profile %s (%s), now active\n", result.Profile.Name, result.Profile.ID)

	case "list":
		result, err := svc.ListProfiles(ctx)
		if err != nil {
			log.Fatalf("Failed to list profiles: %v", err)
		}
		for _, p := range result.Profiles {
			marker := " "
			if p.ID == result.ActiveID {
				marker = "*"
			}
			fmt.Printf("%s %s  %s\n", marker, p.ID, p.Name)
		}

	case "use":
		requireArgs(args, 2, "Usage: invoiceease profile use <id>")
		if err := svc.SetActiveProfile(ctx, args[1]); err != nil {
			log.Fatalf("Failed to set active profile: %v", err)
		}
		fmt.Println("Active profile updated.")

	case "delete":
		requireArgs(args, 2, "Usage: invoiceease profile delete <id>")
		if err := svc.DeleteProfile(ctx, args[1]); err != nil {
			log.Fatalf("Failed to delete profile: %v", err)
		}
		fmt.Println("Profile deleted.")

	default:
		log.Fatalf("Unknown profile command %q", args[0])
	}
}

func runClient(ctx context.Context, svc app.ApplicationService, args []string) {
	if len(args) == 0 {
		log.Fatal("Usage: invoiceease client <add|list|remove> ...")
	}
	switch args[0] {
	case "add":
		requireArgs(args, 2, "Usage: invoiceease client add <name> [email] [phone]")
		req := app.ClientRequest{Name: args[1]}
		if len(args) > 2 {
			req.Email = args[2]
		}
		if len(args) > 3 {
			req.Phone = args[3]
		}
		result, err := svc.AddClient(ctx, req)
		if err != nil {
			log.Fatalf("Failed to add client: %v", err)
		}
		fmt.Printf("Added client %s (%s)\n", result.Client.Name, result.Client.ID)

	case "list":
		result, err := svc.ListClients(ctx)
		if err != nil {
			log.Fatalf("Failed to list clients: %v", err)
		}
		for _, c := range result.Clients {
			fmt.Printf("%s  %-25s invoices=%d billed=%s\n", c.ID, c.Name, c.InvoiceCount, c.TotalBilled)
		}

	case "remove":
		requireArgs(args, 2, "Usage: invoiceease client remove <id>")
		if err := svc.RemoveClient(ctx, args[1]); err != nil {
			log.Fatalf("Failed to remove client: %v", err)
		}
		fmt.Println("Client removed.")

	default:
		log.Fatalf("Unknown client command %q", args[0])
	}
}

// runDocument handles "invoice", "lpo" and "estimate": the subcommand name
// doubles as the document kind.
func runDocument(ctx context.Context, svc app.ApplicationService, args []string) {
	kind := core.DocumentKind(args[0])
	if len(args) < 2 {
		log.Fatalf("Usage: invoiceease %s <add|list|remove|show> ...", args[0])
	}

	switch args[1] {
	case "add":
		// line items arrive as JSON on stdin, matching the shape the web UI posts
		var req app.DocumentRequest
		if err := json.NewDecoder(os.Stdin).Decode(&req); err != nil {
			log.Fatalf("Invalid JSON: %v", err)
		}
		req.Kind = kind
		result, err := svc.CreateDocument(ctx, req)
		if err != nil {
			log.Fatalf("Failed to create %s: %v", kind, err)
		}
		fmt.Printf("Created %s %s  total %s\n", kind, result.Document.Number, result.Document.TotalAmount)

	case "list":
		result, err := svc.ListDocuments(ctx)
		if err != nil {
			log.Fatalf("Failed to list documents: %v", err)
		}
		for _, d := range result.Documents {
			if d.Kind != kind {
				continue
			}
			fmt.Printf("%s  %-15s %-25s total=%s\n", d.ID, d.Number, d.ClientName, d.TotalAmount)
		}

	case "show":
		requireArgs(args[1:], 2, "Usage: invoiceease "+args[0]+" show <id>")
		result, err := svc.GetDocument(ctx, args[2])
		if err != nil {
			log.Fatalf("Failed to load document: %v", err)
		}
		if result.Document == nil {
			log.Fatalf("No document with id %s", args[2])
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		enc.Encode(result.Document)

	case "remove":
		requireArgs(args[1:], 2, "Usage: invoiceease "+args[0]+" remove <id>")
		if err := svc.RemoveDocument(ctx, args[2]); err != nil {
			log.Fatalf("Failed to remove document: %v", err)
		}
		fmt.Println("Document removed.")

	default:
		log.Fatalf("Unknown %s command %q", args[0], args[1])
	}
}

func runReceipt(ctx context.Context, svc app.ApplicationService, args []string) {
	if len(args) == 0 {
		log.Fatal("Usage: invoiceease receipt <add|list> ...")
	}
	switch args[0] {
	case "add":
		requireArgs(args, 3, "Usage: invoiceease receipt add <invoice number> <amount> [method]")
		amount, err := decimal.NewFromString(args[2])
		if err != nil {
			log.Fatalf("Invalid amount %q: %v", args[2], err)
		}
		req := app.PaymentRequest{InvoiceNumber: args[1], AmountPaid: amount}
		if len(args) > 3 {
			req.PaymentMethod = args[3]
		}
		result, err := svc.RecordPayment(ctx, req)
		if err != nil {
			log.Fatalf("Failed to record payment: %v", err)
		}
		fmt.Printf("Recorded %s for %s\n", result.Receipt.ReceiptNumber, result.Receipt.AmountPaid)

	case "list":
		result, err := svc.ListReceipts(ctx)
		if err != nil {
			log.Fatalf("Failed to list receipts: %v", err)
		}
		for _, r := range result.Receipts {
			fmt.Printf("%s  %-16s invoice=%-15s %s\n", r.ID, r.ReceiptNumber, r.InvoiceNumber, r.AmountPaid)
		}

	default:
		log.Fatalf("Unknown receipt command %q", args[0])
	}
}

func runNote(ctx context.Context, svc app.ApplicationService, args []string) {
	if len(args) == 0 {
		log.Fatal("Usage: invoiceease note <add|list|remove> ...")
	}
	switch args[0] {
	case "add":
		requireArgs(args, 2, "Usage: invoiceease note add <content>")
		note, err := svc.AddNote(ctx, strings.Join(args[1:], " "))
		if err != nil {
			log.Fatalf("Failed to add note: %v", err)
		}
		fmt.Printf("Added note %s\n", note.Note.ID)

	case "list":
		result, err := svc.ListNotes(ctx)
		if err != nil {
			log.Fatalf("Failed to list notes: %v", err)
		}
		for _, n := range result.Notes {
			fmt.Printf("%s  %s  %s\n", n.ID, n.UpdatedAt.Format("2006-01-02"), n.Content)
		}

	case "remove":
		requireArgs(args, 2, "Usage: invoiceease note remove <id>")
		if err := svc.RemoveNote(ctx, args[1]); err != nil {
			log.Fatalf("Failed to remove note: %v", err)
		}
		fmt.Println("Note removed.")

	default:
		log.Fatalf("Unknown note command %q", args[0])
	}
}

// fatalDomain prints domain errors without the log prefix noise — these are
// user mistakes, not program failures.
func fatalDomain(err error) {
	if errors.Is(err, core.ErrDuplicateUser) ||
		errors.Is(err, core.ErrUserNotFound) ||
		errors.Is(err, core.ErrDuplicateProfileName) {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	log.Fatalf("Unexpected error: %v", err)
}

func requireArgs(args []string, n int, usageMsg string) {
	if len(args) < n {
		log.Fatal(usageMsg)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `Usage: invoiceease <command> ...

Commands:
  signup <email> <business name>      register a local account and sign in
  signin <email>                      sign in to an existing account
  signout                             end the session
  whoami                              show session and active profile
  profile create|list|use|delete      manage business profiles
  client add|list|remove              manage clients in the active scope
  invoice|lpo|estimate add|list|show|remove
                                      manage documents (add reads JSON from stdin)
  receipt add|list                    record and list payment receipts
  note add|list|remove                manage user notes
  activity                            show the activity feed
  export <document id>                render a document to the export directory`)
}

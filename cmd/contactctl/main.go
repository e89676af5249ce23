// contactctl is a small CLI over the contactbook API. It keeps the bearer
// token in ~/.contactbook/token, so a login survives between invocations
// the same way the web frontend's localStorage session does.
//
// Usage:
//
//	contactctl register -name "Ann" -email ann@example.com -password secret1
//	contactctl login -email ann@example.com -password secret1
//	contactctl whoami
//	contactctl list
//	contactctl add -name "Bob" -phone +1-555-0100 [-email bob@example.com] [-message note]
//	contactctl delete -id <contact-id>
//	contactctl logout
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"contactbook/internal/session"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	baseURL := os.Getenv("CONTACTBOOK_API")
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}

	home, err := os.UserHomeDir()
	if err != nil {
		log.Fatalf("home dir: %v", err)
	}
	store := session.NewFileTokenStore(filepath.Join(home, ".contactbook", "token"))
	client := session.NewClient(baseURL)
	sess := session.New(client, store)

	ctx := context.Background()
	if err := run(ctx, sess, client, os.Args[1], os.Args[2:]); err != nil {
		log.Fatal(err)
	}
}

func run(ctx context.Context, sess *session.Session, client *session.Client, cmd string, args []string) error {
	switch cmd {
	case "register":
		fs := flag.NewFlagSet("register", flag.ExitOnError)
		name := fs.String("name", "", "full name")
		email := fs.String("email", "", "email address")
		password := fs.String("password", "", "password")
		fs.Parse(args)

		if err := sess.Register(ctx, *name, *email, *password); err != nil {
			return err
		}
		fmt.Printf("registered and logged in as %s <%s>\n", sess.User().Name, sess.User().Email)
		return nil

	case "login":
		fs := flag.NewFlagSet("login", flag.ExitOnError)
		email := fs.String("email", "", "email address")
		password := fs.String("password", "", "password")
		fs.Parse(args)

		if err := sess.Login(ctx, *email, *password); err != nil {
			return err
		}
		fmt.Printf("logged in as %s <%s>\n", sess.User().Name, sess.User().Email)
		return nil

	case "logout":
		if err := bootstrap(ctx, sess); err != nil {
			return err
		}
		if err := sess.Logout(); err != nil {
			return err
		}
		fmt.Println("logged out")
		return nil

	case "whoami":
		if err := requireAuth(ctx, sess); err != nil {
			return err
		}
		u := sess.User()
		fmt.Printf("%s <%s> (id %s)\n", u.Name, u.Email, u.ID)
		return nil

	case "list":
		// The list endpoint tolerates guests, so bootstrap without
		// requiring an authenticated session.
		if err := bootstrap(ctx, sess); err != nil {
			return err
		}
		contacts, err := client.Contacts(ctx)
		if err != nil {
			return err
		}
		if len(contacts) == 0 {
			fmt.Println("no contacts")
			return nil
		}
		for _, c := range contacts {
			line := fmt.Sprintf("%s  %s  %s", c.ID, c.Name, c.Phone)
			if c.Email != "" {
				line += "  <" + c.Email + ">"
			}
			fmt.Println(line)
		}
		return nil

	case "add":
		fs := flag.NewFlagSet("add", flag.ExitOnError)
		name := fs.String("name", "", "contact name")
		phone := fs.String("phone", "", "phone number")
		email := fs.String("email", "", "email address (optional)")
		message := fs.String("message", "", "note (optional)")
		fs.Parse(args)

		if err := requireAuth(ctx, sess); err != nil {
			return err
		}
		contact, err := client.CreateContact(ctx, session.CreateContactInput{
			Name:    *name,
			Phone:   *phone,
			Email:   *email,
			Message: *message,
		})
		if err != nil {
			return err
		}
		fmt.Printf("added %s (id %s)\n", contact.Name, contact.ID)
		return nil

	case "delete":
		fs := flag.NewFlagSet("delete", flag.ExitOnError)
		id := fs.String("id", "", "contact id")
		fs.Parse(args)

		if err := requireAuth(ctx, sess); err != nil {
			return err
		}
		if err := client.DeleteContact(ctx, *id); err != nil {
			return err
		}
		fmt.Println("deleted")
		return nil

	default:
		usage()
		return fmt.Errorf("unknown command %q", cmd)
	}
}

func bootstrap(ctx context.Context, sess *session.Session) error {
	return sess.Bootstrap(ctx)
}

func requireAuth(ctx context.Context, sess *session.Session) error {
	if err := sess.Bootstrap(ctx); err != nil {
		return err
	}
	if sess.State() != session.StateAuthenticated {
		return fmt.Errorf("not logged in — run: contactctl login")
	}
	return nil
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: contactctl <register|login|logout|whoami|list|add|delete> [flags]")
}

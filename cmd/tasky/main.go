// Command tasky is a small command-line client for a running Tasky server.
//
// Usage:
//
//	tasky [-a address] [-t token] <command> [arguments]
//
// Commands:
//
//	register <firstName> <lastName> <userName> <email> <password>
//	login <email-or-username> <password>
//	profile
//	list
//	add <title> [description]
//	show <id>
//	edit <id> <title> [description]
//	done <id>
//	undone <id>
//	rm <id>
//	restore <id>
//
// Authenticated commands require a token obtained with login; pass it via -t
// or the TASKY_TOKEN environment variable.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/MKhiriev/tasky/internal/adapter"
	"github.com/MKhiriev/tasky/models"
)

func main() {
	address := flag.String("a", "http://localhost:4000", "server address")
	token := flag.String("t", os.Getenv("TASKY_TOKEN"), "session token")
	timeout := flag.Duration("timeout", 15*time.Second, "request timeout")
	flag.Parse()

	args := flag.Args()
	if len(args) == 0 {
		fmt.Fprintln(os.Stderr, "tasky: missing command")
		flag.Usage()
		os.Exit(2)
	}

	api, err := adapter.NewHTTPServerAdapter(adapter.HTTPClientConfig{
		BaseURL: *address,
		Timeout: *timeout,
	})
	if err != nil {
		fatal(err)
	}
	api.SetToken(*token)

	ctx := context.Background()

	if err := run(ctx, api, args[0], args[1:]); err != nil {
		fatal(err)
	}
}

func run(ctx context.Context, api adapter.ServerAdapter, command string, args []string) error {
	switch command {
	case "register":
		if len(args) < 5 {
			return fmt.Errorf("usage: register <firstName> <lastName> <userName> <email> <password>")
		}
		if err := api.Register(ctx, models.RegisterRequest{
			FirstName: args[0],
			LastName:  args[1],
			UserName:  args[2],
			Email:     args[3],
			Password:  args[4],
		}); err != nil {
			return err
		}
		fmt.Println("registered; now log in with: tasky login", args[3], "<password>")
		return nil

	case "login":
		if len(args) < 2 {
			return fmt.Errorf("usage: login <email-or-username> <password>")
		}
		user, err := api.Login(ctx, args[0], args[1])
		if err != nil {
			return err
		}
		fmt.Printf("logged in as %s (%s)\n", user.UserName, user.Email)
		fmt.Printf("export TASKY_TOKEN=%s\n", api.Token())
		return nil

	case "profile":
		user, err := api.Profile(ctx)
		if err != nil {
			return err
		}
		return printJSON(user)

	case "list":
		tasks, err := api.ListTasks(ctx)
		if err != nil {
			return err
		}
		for _, task := range tasks {
			printTaskLine(task)
		}
		return nil

	case "add":
		if len(args) < 1 {
			return fmt.Errorf("usage: add <title> [description]")
		}
		req := models.CreateTaskRequest{Title: args[0]}
		if len(args) > 1 {
			req.Description = args[1]
		}
		task, err := api.CreateTask(ctx, req)
		if err != nil {
			return err
		}
		printTaskLine(task)
		return nil

	case "show":
		task, err := api.GetTask(ctx, singleID(args))
		if err != nil {
			return err
		}
		return printJSON(task)

	case "edit":
		if len(args) < 2 {
			return fmt.Errorf("usage: edit <id> <title> [description]")
		}
		update := models.TaskUpdate{Title: &args[1]}
		if len(args) > 2 {
			update.Description = &args[2]
		}
		task, err := api.UpdateTask(ctx, args[0], update)
		if err != nil {
			return err
		}
		printTaskLine(task)
		return nil

	case "done":
		task, err := api.CompleteTask(ctx, singleID(args))
		if err != nil {
			return err
		}
		printTaskLine(task)
		return nil

	case "undone":
		task, err := api.IncompleteTask(ctx, singleID(args))
		if err != nil {
			return err
		}
		printTaskLine(task)
		return nil

	case "rm":
		if err := api.DeleteTask(ctx, singleID(args)); err != nil {
			return err
		}
		fmt.Println("task moved to trash")
		return nil

	case "restore":
		task, err := api.RestoreTask(ctx, singleID(args))
		if err != nil {
			return err
		}
		printTaskLine(task)
		return nil

	default:
		return fmt.Errorf("unknown command %q", command)
	}
}

func singleID(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}

func printTaskLine(task models.Task) {
	mark := " "
	if task.IsCompleted {
		mark = "x"
	}
	suffix := ""
	if task.IsDeleted {
		suffix = " (trashed)"
	}
	fmt.Printf("[%s] %s  %s%s\n", mark, task.ID, task.Title, suffix)
}

func printJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "tasky:", err)
	os.Exit(1)
}

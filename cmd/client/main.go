package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/youssef1892004/To-Do-List-App/internal/client/api"
	"github.com/youssef1892004/To-Do-List-App/internal/client/state"
	"github.com/youssef1892004/To-Do-List-App/internal/models"
)

var (
	version   string
	buildDate string
)

// refresh replaces the local collection with a fresh list from the server.
func refresh(client *api.Client, store *state.Store) {
	store.SetLoading(true)
	defer store.SetLoading(false)
	todos, err := client.ListTodos()
	if err != nil {
		store.Fail(err.Error())
		return
	}
	store.ReplaceAll(todos)
}

// render prints a projection of the store. Presentation only, no state of its
// own beyond the arguments.
func render(todos []models.Todo) {
	if len(todos) == 0 {
		fmt.Println("No todos")
		return
	}
	for _, t := range todos {
		mark := " "
		if t.Completed {
			mark = "x"
		}
		due := ""
		if t.DueDate != nil {
			due = " due " + t.DueDate.Format("2006-01-02")
		}
		fmt.Printf("[%s] %-8s %s  %s%s\n", mark, t.Priority, t.ID, t.Title, due)
		if t.Description != "" {
			fmt.Printf("             %s\n", t.Description)
		}
	}
}

// prompt reads one trimmed line from the scanner.
func prompt(scanner *bufio.Scanner, label string) string {
	fmt.Print(label)
	if !scanner.Scan() {
		return ""
	}
	return strings.TrimSpace(scanner.Text())
}

// repl runs the interactive shell loop, accepting commands to manage todos.
func repl(client *api.Client, store *state.Store) {
	scanner := bufio.NewScanner(os.Stdin)

	// Resume an existing session if the cookie jar still holds one.
	if user, err := client.Profile(); err == nil {
		store.SetUser(user)
		refresh(client, store)
		fmt.Printf("Logged in as %s\n", user.Username)
	}

	for {
		fmt.Print("todo> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		args := strings.Fields(line)
		if len(args) == 0 {
			continue
		}
		switch args[0] {
		case "help":
			fmt.Println("Available commands: help, register, login, logout, list [all|active|completed] [priority], add, get <id>, done <id>, edit <id>, delete <id>, exit")
		case "register":
			username := prompt(scanner, "username: ")
			email := prompt(scanner, "email: ")
			password := prompt(scanner, "password: ")
			user, err := client.Register(username, email, password)
			if err != nil {
				store.Fail(err.Error())
				fmt.Println("Error:", err)
				continue
			}
			store.SetUser(user)
			refresh(client, store)
			fmt.Printf("Registered as %s\n", user.Username)
		case "login":
			email := prompt(scanner, "email: ")
			password := prompt(scanner, "password: ")
			user, err := client.Login(email, password)
			if err != nil {
				store.Fail(err.Error())
				fmt.Println("Error:", err)
				continue
			}
			store.SetUser(user)
			refresh(client, store)
			fmt.Printf("Logged in as %s\n", user.Username)
		case "logout":
			if err := client.Logout(); err != nil {
				fmt.Println("Error:", err)
				continue
			}
			store.ClearUser()
			fmt.Println("Logged out")
		case "list":
			filter := state.FilterAll
			byPriority := false
			for _, a := range args[1:] {
				switch a {
				case "all", "active", "completed":
					filter = state.Filter(a)
				case "priority":
					byPriority = true
				}
			}
			todos := store.Visible(filter)
			if byPriority {
				todos = state.SortByPriority(todos)
			}
			render(todos)
		case "add":
			title := prompt(scanner, "title: ")
			description := prompt(scanner, "description (optional): ")
			priority := prompt(scanner, "priority [low|medium|high] (default medium): ")
			dueDate := prompt(scanner, "due date YYYY-MM-DD (optional): ")
			todo, err := client.CreateTodo(api.TodoInput{
				Title:       title,
				Description: description,
				Priority:    priority,
				DueDate:     dueDate,
			})
			if err != nil {
				store.Fail(err.Error())
				fmt.Println("Error:", err)
				continue
			}
			store.Prepend(*todo)
			fmt.Println("Created", todo.ID)
		case "get":
			if len(args) < 2 {
				fmt.Println("Usage: get <id>")
				continue
			}
			todo, err := client.GetTodo(args[1])
			if err != nil {
				fmt.Println("Error:", err)
				continue
			}
			render([]models.Todo{*todo})
		case "done":
			if len(args) < 2 {
				fmt.Println("Usage: done <id>")
				continue
			}
			completed := true
			todo, err := client.UpdateTodo(args[1], api.TodoUpdate{Completed: &completed})
			if err != nil {
				store.Fail(err.Error())
				fmt.Println("Error:", err)
				continue
			}
			store.Update(*todo)
			fmt.Println("Completed", todo.ID)
		case "edit":
			if len(args) < 2 {
				fmt.Println("Usage: edit <id>")
				continue
			}
			update := api.TodoUpdate{}
			if title := prompt(scanner, "title (blank keeps current): "); title != "" {
				update.Title = &title
			}
			if description := prompt(scanner, "description (blank keeps current): "); description != "" {
				update.Description = &description
			}
			if priority := prompt(scanner, "priority (blank keeps current): "); priority != "" {
				update.Priority = &priority
			}
			todo, err := client.UpdateTodo(args[1], update)
			if err != nil {
				store.Fail(err.Error())
				fmt.Println("Error:", err)
				continue
			}
			store.Update(*todo)
			fmt.Println("Updated", todo.ID)
		case "delete":
			if len(args) < 2 {
				fmt.Println("Usage: delete <id>")
				continue
			}
			if err := client.DeleteTodo(args[1]); err != nil {
				store.Fail(err.Error())
				fmt.Println("Error:", err)
				continue
			}
			store.Remove(args[1])
			fmt.Println("Deleted", args[1])
		case "exit":
			fmt.Println("Bye")
			return
		default:
			fmt.Println("Unknown command. Type 'help' for a list of commands.")
		}
	}
}

// main parses command-line flags and starts the interactive shell.
func main() {
	var (
		baseURL string
		showVer bool
	)

	flag.StringVar(&baseURL, "url", "http://localhost:8080", "server base URL")
	flag.BoolVar(&showVer, "version", false, "show build version and date")
	flag.Parse()

	if showVer {
		fmt.Printf("Todo Client\nVersion: %s\nBuild Date: %s\n", version, buildDate)
		return
	}

	client, err := api.New(baseURL)
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to create client:", err)
		os.Exit(1)
	}

	repl(client, &state.Store{})
}

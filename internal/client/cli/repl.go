package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// execIface defines the command surface the REPL dispatches to. The real
// App satisfies it; tests provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	printErr(err error)

	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Register(ctx context.Context) error
	Health(ctx context.Context) error

	ShowAbout(ctx context.Context) error
	EditAbout(ctx context.Context) error
	UploadAboutFiles(ctx context.Context) error
	ShowContact(ctx context.Context) error
	EditContact(ctx context.Context) error

	ListExperiences(ctx context.Context) error
	AddExperience(ctx context.Context) error
	EditExperience(ctx context.Context, id string) error
	DeleteExperience(ctx context.Context, id string) error

	ListSkills(ctx context.Context) error
	AddSkill(ctx context.Context) error
	EditSkill(ctx context.Context, id string) error
	DeleteSkill(ctx context.Context, id string) error

	ListProjects(ctx context.Context) error
	AddProject(ctx context.Context) error
	EditProject(ctx context.Context, id string) error
	DeleteProject(ctx context.Context, id string) error
	UploadScreenshot(ctx context.Context, path string) error
}

// printlnFn is a test seam for user-facing output.
var printlnFn = fmt.Println

const (
	helpLoggedOut = "Available commands: login, health, exit"
	helpLoggedIn  = "Available commands: about, about-edit, about-upload, contact, contact-edit,\n" +
		"  experiences, experience-add, experience-edit <id>, experience-delete <id>,\n" +
		"  skills, skill-add, skill-edit <id>, skill-delete <id>,\n" +
		"  projects, project-add, project-edit <id>, project-delete <id>, screenshot <file>,\n" +
		"  register, logout, health, exit"
)

var errUsage = errors.New("usage")

// runREPL reads commands line by line and dispatches them to a until EOF,
// "exit" or "quit". Command errors are reported and the loop goes on.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("folio %s> ", statusFn()))

		line, err := reader.ReadString('\n')
		parts := strings.Fields(line)
		if len(parts) == 0 {
			if err != nil {
				return
			}
			continue
		}

		cmd, args := parts[0], parts[1:]
		if cmd == "exit" || cmd == "quit" {
			printlnFn("Bye!")
			return
		}

		if cmdErr := dispatch(ctx, a, cmd, args); cmdErr != nil {
			if errors.Is(cmdErr, errUsage) {
				printlnFn("Usage:", cmd, "<argument>")
			} else {
				a.printErr(cmdErr)
			}
		}

		if errors.Is(err, io.EOF) {
			return
		}
	}
}

func dispatch(ctx context.Context, a execIface, cmd string, args []string) error {
	switch cmd {
	case "help":
		if a.isLoggedIn() {
			printlnFn(helpLoggedIn)
		} else {
			printlnFn(helpLoggedOut)
		}
		return nil
	case "login":
		return a.Login(ctx)
	case "health":
		return a.Health(ctx)
	}

	withID := func(fn func(context.Context, string) error) error {
		if len(args) != 1 {
			return errUsage
		}
		return fn(ctx, args[0])
	}

	switch cmd {
	case "logout":
		return a.Logout(ctx)
	case "register":
		return a.Register(ctx)
	case "about":
		return a.ShowAbout(ctx)
	case "about-edit":
		return a.EditAbout(ctx)
	case "about-upload":
		return a.UploadAboutFiles(ctx)
	case "contact":
		return a.ShowContact(ctx)
	case "contact-edit":
		return a.EditContact(ctx)
	case "experiences":
		return a.ListExperiences(ctx)
	case "experience-add":
		return a.AddExperience(ctx)
	case "experience-edit":
		return withID(a.EditExperience)
	case "experience-delete":
		return withID(a.DeleteExperience)
	case "skills":
		return a.ListSkills(ctx)
	case "skill-add":
		return a.AddSkill(ctx)
	case "skill-edit":
		return withID(a.EditSkill)
	case "skill-delete":
		return withID(a.DeleteSkill)
	case "projects":
		return a.ListProjects(ctx)
	case "project-add":
		return a.AddProject(ctx)
	case "project-edit":
		return withID(a.EditProject)
	case "project-delete":
		return withID(a.DeleteProject)
	case "screenshot":
		return withID(a.UploadScreenshot)
	default:
		printlnFn("Unknown command:", cmd)
		return nil
	}
}

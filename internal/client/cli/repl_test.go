package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeExec struct {
	loggedIn bool
	calls    []string
	errs     []error
	failWith error
}

func (f *fakeExec) record(name string) error {
	f.calls = append(f.calls, name)
	return f.failWith
}

func (f *fakeExec) isLoggedIn() bool   { return f.loggedIn }
func (f *fakeExec) printErr(err error) { f.errs = append(f.errs, err) }

func (f *fakeExec) Login(context.Context) error            { return f.record("login") }
func (f *fakeExec) Logout(context.Context) error           { return f.record("logout") }
func (f *fakeExec) Register(context.Context) error         { return f.record("register") }
func (f *fakeExec) Health(context.Context) error           { return f.record("health") }
func (f *fakeExec) ShowAbout(context.Context) error        { return f.record("about") }
func (f *fakeExec) EditAbout(context.Context) error        { return f.record("about-edit") }
func (f *fakeExec) UploadAboutFiles(context.Context) error { return f.record("about-upload") }
func (f *fakeExec) ShowContact(context.Context) error      { return f.record("contact") }
func (f *fakeExec) EditContact(context.Context) error      { return f.record("contact-edit") }
func (f *fakeExec) ListExperiences(context.Context) error  { return f.record("experiences") }
func (f *fakeExec) AddExperience(context.Context) error    { return f.record("experience-add") }
func (f *fakeExec) EditExperience(_ context.Context, id string) error {
	return f.record("experience-edit " + id)
}
func (f *fakeExec) DeleteExperience(_ context.Context, id string) error {
	return f.record("experience-delete " + id)
}
func (f *fakeExec) ListSkills(context.Context) error { return f.record("skills") }
func (f *fakeExec) AddSkill(context.Context) error   { return f.record("skill-add") }
func (f *fakeExec) EditSkill(_ context.Context, id string) error {
	return f.record("skill-edit " + id)
}
func (f *fakeExec) DeleteSkill(_ context.Context, id string) error {
	return f.record("skill-delete " + id)
}
func (f *fakeExec) ListProjects(context.Context) error { return f.record("projects") }
func (f *fakeExec) AddProject(context.Context) error   { return f.record("project-add") }
func (f *fakeExec) EditProject(_ context.Context, id string) error {
	return f.record("project-edit " + id)
}
func (f *fakeExec) DeleteProject(_ context.Context, id string) error {
	return f.record("project-delete " + id)
}
func (f *fakeExec) UploadScreenshot(_ context.Context, path string) error {
	return f.record("screenshot " + path)
}

func captureOutput(t *testing.T) *strings.Builder {
	t.Helper()
	var sb strings.Builder
	old := printlnFn
	printlnFn = func(a ...any) (int, error) { return fmt.Fprintln(&sb, a...) }
	t.Cleanup(func() { printlnFn = old })
	return &sb
}

func TestRunREPL_Dispatch(t *testing.T) {
	captureOutput(t)
	f := &fakeExec{loggedIn: true}

	input := strings.Join([]string{
		"login", "health", "logout", "register",
		"about", "about-edit", "about-upload", "contact", "contact-edit",
		"experiences", "experience-add", "experience-edit e1", "experience-delete e1",
		"skills", "skill-add", "skill-edit s1", "skill-delete s1",
		"projects", "project-add", "project-edit p1", "project-delete p1",
		"screenshot shot.png",
		"exit",
		"about",
	}, "\n") + "\n"

	runREPL(context.Background(), f, func() string { return "" }, rdr(input))

	assert.Equal(t, []string{
		"login", "health", "logout", "register",
		"about", "about-edit", "about-upload", "contact", "contact-edit",
		"experiences", "experience-add", "experience-edit e1", "experience-delete e1",
		"skills", "skill-add", "skill-edit s1", "skill-delete s1",
		"projects", "project-add", "project-edit p1", "project-delete p1",
		"screenshot shot.png",
	}, f.calls)
	assert.Empty(t, f.errs)
}

func TestRunREPL_UsageAndUnknown(t *testing.T) {
	out := captureOutput(t)
	f := &fakeExec{}

	runREPL(context.Background(), f, func() string { return "" }, rdr("skill-edit\nfrobnicate\n\nquit\n"))

	assert.Empty(t, f.calls)
	assert.Contains(t, out.String(), "Usage: skill-edit <argument>")
	assert.Contains(t, out.String(), "Unknown command: frobnicate")
	assert.Contains(t, out.String(), "Bye!")
}

func TestRunREPL_ReportsErrorsAndContinues(t *testing.T) {
	captureOutput(t)
	boom := errors.New("boom")
	f := &fakeExec{failWith: boom}

	runREPL(context.Background(), f, func() string { return "" }, rdr("skills\nprojects"))

	assert.Equal(t, []string{"skills", "projects"}, f.calls)
	assert.Equal(t, []error{boom, boom}, f.errs)
}

func TestRunREPL_HelpDependsOnLogin(t *testing.T) {
	out := captureOutput(t)
	runREPL(context.Background(), &fakeExec{}, func() string { return "" }, rdr("help\n"))
	assert.Contains(t, out.String(), helpLoggedOut)

	out = captureOutput(t)
	runREPL(context.Background(), &fakeExec{loggedIn: true}, func() string { return "(admin)" }, rdr("help\n"))
	assert.Contains(t, out.String(), helpLoggedIn)
	assert.Contains(t, out.String(), "folio (admin)> ")
}

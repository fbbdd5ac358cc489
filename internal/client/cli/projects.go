package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/folio/internal/client/api"
)

func (a *App) ListProjects(ctx context.Context) error {
	items, err := a.client.Projects(ctx)
	if err != nil {
		return err
	}
	a.println(fmt.Sprintf("%d project(s)", len(items)))
	for _, p := range items {
		a.println(fmt.Sprintf("%s  [%d] %s (%s)", p.ID, p.DisplayOrder, p.Title, strings.Join(p.Technologies, ", ")))
		for _, s := range p.Screenshots {
			a.println("    screenshot:", s)
		}
	}
	return nil
}

func (a *App) readProject() (api.ProjectInput, error) {
	var (
		in  api.ProjectInput
		err error
	)
	if in.Title, err = GetOptional(a.reader, "Title", a.out); err != nil {
		return in, err
	}
	if in.Description, err = GetOptional(a.reader, "Description", a.out); err != nil {
		return in, err
	}
	if in.Technologies, err = GetOptionalList(a.reader, "Technologies", a.out); err != nil {
		return in, err
	}
	if in.Screenshots, err = GetOptionalList(a.reader, "Screenshot URLs", a.out); err != nil {
		return in, err
	}
	if in.LiveLink, err = GetOptional(a.reader, "Live link", a.out); err != nil {
		return in, err
	}
	if in.GithubLink, err = GetOptional(a.reader, "GitHub link", a.out); err != nil {
		return in, err
	}
	if in.DisplayOrder, err = GetOptionalInt(a.reader, "Display order", a.out); err != nil {
		return in, err
	}
	return in, nil
}

func (a *App) AddProject(ctx context.Context) error {
	in, err := a.readProject()
	if err != nil {
		return err
	}
	p, err := a.client.CreateProject(ctx, in)
	if err != nil {
		return err
	}
	a.println("Project added, id:", p.ID)
	return nil
}

func (a *App) EditProject(ctx context.Context, id string) error {
	in, err := a.readProject()
	if err != nil {
		return err
	}
	if _, err := a.client.UpdateProject(ctx, id, in); err != nil {
		return err
	}
	a.println("Project updated")
	return nil
}

func (a *App) DeleteProject(ctx context.Context, id string) error {
	if err := a.client.DeleteProject(ctx, id); err != nil {
		return err
	}
	a.println("Project removed")
	return nil
}

// UploadScreenshot uploads an image file and prints the URL to use in
// project-add or project-edit.
func (a *App) UploadScreenshot(ctx context.Context, path string) error {
	up, closeFn, err := openUpload(path)
	if err != nil {
		return err
	}
	defer closeFn()

	asset, err := a.client.UploadScreenshot(ctx, *up)
	if err != nil {
		return err
	}
	a.println("Uploaded:", asset.URL)
	return nil
}

package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/folio/internal/client/api"
	"github.com/dmitrijs2005/folio/internal/patch"
)

func (a *App) ListExperiences(ctx context.Context) error {
	items, err := a.client.Experiences(ctx)
	if err != nil {
		return err
	}
	if len(items) == 0 {
		a.println("No experiences")
		return nil
	}
	for _, e := range items {
		a.println(fmt.Sprintf("%s  [%d] %s @ %s (%s)", e.ID, e.Order, e.Role, e.Company, e.Dates))
		for _, d := range e.Description {
			a.println("    -", d)
		}
	}
	return nil
}

func (a *App) readExperience() (api.ExperienceInput, error) {
	var (
		in  api.ExperienceInput
		err error
	)
	if in.Role, err = GetOptional(a.reader, "Role", a.out); err != nil {
		return in, err
	}
	if in.Company, err = GetOptional(a.reader, "Company", a.out); err != nil {
		return in, err
	}
	if in.Dates, err = GetOptional(a.reader, "Dates", a.out); err != nil {
		return in, err
	}
	lines, err := GetLines(a.reader, "Description bullet points (empty keeps current)", a.out)
	if err != nil {
		return in, err
	}
	if len(lines) > 0 {
		in.Description = patch.Of(lines)
	}
	if in.Order, err = GetOptionalInt(a.reader, "Order", a.out); err != nil {
		return in, err
	}
	return in, nil
}

func (a *App) AddExperience(ctx context.Context) error {
	in, err := a.readExperience()
	if err != nil {
		return err
	}
	e, err := a.client.CreateExperience(ctx, in)
	if err != nil {
		return err
	}
	a.println("Experience added, id:", e.ID)
	return nil
}

func (a *App) EditExperience(ctx context.Context, id string) error {
	in, err := a.readExperience()
	if err != nil {
		return err
	}
	if _, err := a.client.UpdateExperience(ctx, id, in); err != nil {
		return err
	}
	a.println("Experience updated")
	return nil
}

func (a *App) DeleteExperience(ctx context.Context, id string) error {
	if err := a.client.DeleteExperience(ctx, id); err != nil {
		return err
	}
	a.println("Experience removed")
	return nil
}

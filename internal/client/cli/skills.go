package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/folio/internal/client/api"
	"github.com/dmitrijs2005/folio/internal/server/models"
)

func (a *App) ListSkills(ctx context.Context) error {
	items, err := a.client.Skills(ctx)
	if err != nil {
		return err
	}
	if len(items) == 0 {
		a.println("No skills")
		return nil
	}
	for _, s := range items {
		visibility := "public"
		if !s.IsPublic {
			visibility = "hidden"
		}
		a.println(fmt.Sprintf("%s  [%d] %s, %s, %s (%s)", s.ID, s.Order, s.Name, s.Level, s.Category, visibility))
	}
	return nil
}

func (a *App) readSkill() (api.SkillInput, error) {
	var (
		in  api.SkillInput
		err error
	)
	if in.Name, err = GetOptional(a.reader, "Name", a.out); err != nil {
		return in, err
	}
	if in.Level, err = GetOptional(a.reader, "Level ("+strings.Join(models.SkillLevels, ", ")+")", a.out); err != nil {
		return in, err
	}
	if in.Category, err = GetOptional(a.reader, "Category", a.out); err != nil {
		return in, err
	}
	if in.IconURL, err = GetOptional(a.reader, "Icon URL", a.out); err != nil {
		return in, err
	}
	if in.Order, err = GetOptionalInt(a.reader, "Order", a.out); err != nil {
		return in, err
	}
	if in.IsPublic, err = GetOptionalBool(a.reader, "Public", a.out); err != nil {
		return in, err
	}
	return in, nil
}

func (a *App) AddSkill(ctx context.Context) error {
	in, err := a.readSkill()
	if err != nil {
		return err
	}
	s, err := a.client.CreateSkill(ctx, in)
	if err != nil {
		return err
	}
	a.println("Skill added, id:", s.ID)
	return nil
}

func (a *App) EditSkill(ctx context.Context, id string) error {
	in, err := a.readSkill()
	if err != nil {
		return err
	}
	if _, err := a.client.UpdateSkill(ctx, id, in); err != nil {
		return err
	}
	a.println("Skill updated")
	return nil
}

func (a *App) DeleteSkill(ctx context.Context, id string) error {
	if err := a.client.DeleteSkill(ctx, id); err != nil {
		return err
	}
	a.println("Skill removed")
	return nil
}

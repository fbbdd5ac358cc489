package cli

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/dmitrijs2005/folio/internal/client/api"
	"github.com/dmitrijs2005/folio/internal/patch"
	"github.com/dmitrijs2005/folio/internal/server/models"
)

func (a *App) ShowAbout(ctx context.Context) error {
	info, err := a.client.About(ctx)
	if err != nil {
		return err
	}
	a.printAbout(info)
	return nil
}

func (a *App) printAbout(info *models.AboutInfo) {
	a.println("Greeting: ", info.Greeting)
	a.println("Name:     ", info.Name)
	a.println("Taglines: ", strings.Join(info.TaglineStrings, " | "))
	a.println("Bio:      ", info.Bio)
	a.println("Image:    ", info.ProfileImageURL)
	a.println("Resume:   ", info.ResumeURL)
}

func (a *App) EditAbout(ctx context.Context) error {
	var (
		p   api.AboutPatch
		err error
	)
	if p.Greeting, err = GetOptional(a.reader, "Greeting", a.out); err != nil {
		return err
	}
	if p.Name, err = GetOptional(a.reader, "Name", a.out); err != nil {
		return err
	}
	if p.TaglineStrings, err = GetOptionalList(a.reader, "Taglines", a.out); err != nil {
		return err
	}
	if p.Bio, err = GetOptional(a.reader, "Bio", a.out); err != nil {
		return err
	}

	info, err := a.client.UpdateAbout(ctx, p, nil, nil)
	if err != nil {
		return err
	}
	a.printAbout(info)
	return nil
}

// UploadAboutFiles replaces the profile image and/or the resume.
func (a *App) UploadAboutFiles(ctx context.Context) error {
	imagePath, err := GetSimpleText(a.reader, "Profile image path (Enter to skip)", a.out)
	if err != nil {
		return err
	}
	resumePath, err := GetSimpleText(a.reader, "Resume path (Enter to skip)", a.out)
	if err != nil {
		return err
	}
	if imagePath == "" && resumePath == "" {
		a.println("Nothing to upload")
		return nil
	}

	image, closeImage, err := openUpload(imagePath)
	if err != nil {
		return err
	}
	defer closeImage()

	resume, closeResume, err := openUpload(resumePath)
	if err != nil {
		return err
	}
	defer closeResume()

	info, err := a.client.UpdateAbout(ctx, api.AboutPatch{}, image, resume)
	if err != nil {
		return err
	}
	a.printAbout(info)
	return nil
}

// openUpload opens path for upload; an empty path yields no upload.
func openUpload(path string) (*api.Upload, func(), error) {
	if path == "" {
		return nil, func() {}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, func() {}, err
	}
	return &api.Upload{Name: filepath.Base(path), Body: f}, func() { f.Close() }, nil
}

func (a *App) ShowContact(ctx context.Context) error {
	info, err := a.client.Contact(ctx)
	if err != nil {
		return err
	}
	a.printContact(info)
	return nil
}

func (a *App) printContact(info *models.ContactInfo) {
	a.println("Intro:", info.IntroText)
	a.println("Email:", info.Email)
	for _, l := range info.SocialLinks {
		a.println(" -", l.Platform, l.URL)
	}
}

// EditContact prompts for the fields; social links are entered as
// "platform url" lines and replace the current list when any are given.
func (a *App) EditContact(ctx context.Context) error {
	var (
		p   api.ContactPatch
		err error
	)
	if p.IntroText, err = GetOptional(a.reader, "Intro text", a.out); err != nil {
		return err
	}
	if p.Email, err = GetOptional(a.reader, "Email", a.out); err != nil {
		return err
	}

	lines, err := GetLines(a.reader, "Social links as 'platform url' (empty keeps current)", a.out)
	if err != nil {
		return err
	}
	if len(lines) > 0 {
		links := make([]models.SocialLink, 0, len(lines))
		for _, line := range lines {
			platform, url, _ := strings.Cut(line, " ")
			links = append(links, models.SocialLink{Platform: platform, URL: strings.TrimSpace(url)})
		}
		p.SocialLinks = patch.Of(links)
	}

	info, err := a.client.UpdateContact(ctx, p)
	if err != nil {
		return err
	}
	a.printContact(info)
	return nil
}

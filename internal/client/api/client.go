package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"path/filepath"
	"strings"
	"time"

	"github.com/dmitrijs2005/folio/internal/server/models"
)

type Client struct {
	baseURL string
	http    *http.Client
	session *Session
}

// New returns a client for the server at baseURL whose requests carry the
// session token, if any.
func New(baseURL string, timeout time.Duration, session *Session) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http: &http.Client{
			Timeout:   timeout,
			Transport: &BearerTransport{Session: session},
		},
		session: session,
	}
}

func (c *Client) Session() *Session {
	return c.session
}

func (c *Client) Health(ctx context.Context) error {
	return c.doJSON(ctx, http.MethodGet, "/health", nil, nil)
}

// Login authenticates and stores the returned token in the session.
func (c *Client) Login(ctx context.Context, userName, password string) (*LoginResult, error) {
	var res LoginResult
	body := map[string]string{"username": userName, "password": password}
	if err := c.doJSON(ctx, http.MethodPost, "/api/auth/login", body, &res); err != nil {
		return nil, err
	}
	c.session.Set(res.ID, res.UserName, res.Token)
	return &res, nil
}

// Register creates another admin account. The current session is kept.
func (c *Client) Register(ctx context.Context, userName, password string) (*LoginResult, error) {
	var res LoginResult
	body := map[string]string{"username": userName, "password": password}
	if err := c.doJSON(ctx, http.MethodPost, "/api/auth/register", body, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) About(ctx context.Context) (*models.AboutInfo, error) {
	var out models.AboutInfo
	if err := c.doJSON(ctx, http.MethodGet, "/api/admin/about-info/admin", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateAbout sends p as multipart form fields together with the optional
// profile image and resume.
func (c *Client) UpdateAbout(ctx context.Context, p AboutPatch, profileImage, resume *Upload) (*models.AboutInfo, error) {
	fields := map[string]string{}
	if p.Greeting.Set {
		fields["greeting"] = p.Greeting.Value
	}
	if p.Name.Set {
		fields["name"] = p.Name.Value
	}
	if p.Bio.Set {
		fields["bio"] = p.Bio.Value
	}
	if p.TaglineStrings.Set {
		b, err := json.Marshal(nonNil(p.TaglineStrings.Value))
		if err != nil {
			return nil, err
		}
		fields["taglineStrings"] = string(b)
	}

	files := map[string]*Upload{}
	if profileImage != nil {
		files["profileImage"] = profileImage
	}
	if resume != nil {
		files["resumeFile"] = resume
	}

	var out models.AboutInfo
	if err := c.doMultipart(ctx, http.MethodPut, "/api/admin/about-info/admin", fields, files, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Contact(ctx context.Context) (*models.ContactInfo, error) {
	var out models.ContactInfo
	if err := c.doJSON(ctx, http.MethodGet, "/api/admin/contact-info/admin", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateContact(ctx context.Context, p ContactPatch) (*models.ContactInfo, error) {
	var out models.ContactInfo
	if err := c.doJSON(ctx, http.MethodPut, "/api/admin/contact-info/admin", p, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Experiences(ctx context.Context) ([]models.Experience, error) {
	var out []models.Experience
	if err := c.doJSON(ctx, http.MethodGet, "/api/admin/experiences", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateExperience(ctx context.Context, in ExperienceInput) (*models.Experience, error) {
	var out models.Experience
	if err := c.doJSON(ctx, http.MethodPost, "/api/admin/experiences", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateExperience(ctx context.Context, id string, in ExperienceInput) (*models.Experience, error) {
	var out models.Experience
	if err := c.doJSON(ctx, http.MethodPut, "/api/admin/experiences/"+url.PathEscape(id), in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteExperience(ctx context.Context, id string) error {
	return c.doJSON(ctx, http.MethodDelete, "/api/admin/experiences/"+url.PathEscape(id), nil, nil)
}

func (c *Client) Skills(ctx context.Context) ([]models.Skill, error) {
	var out []models.Skill
	if err := c.doJSON(ctx, http.MethodGet, "/api/admin/skills", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateSkill(ctx context.Context, in SkillInput) (*models.Skill, error) {
	var out models.Skill
	if err := c.doJSON(ctx, http.MethodPost, "/api/admin/skills", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateSkill(ctx context.Context, id string, in SkillInput) (*models.Skill, error) {
	var out models.Skill
	if err := c.doJSON(ctx, http.MethodPut, "/api/admin/skills/"+url.PathEscape(id), in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteSkill(ctx context.Context, id string) error {
	return c.doJSON(ctx, http.MethodDelete, "/api/admin/skills/"+url.PathEscape(id), nil, nil)
}

func (c *Client) Projects(ctx context.Context) ([]models.Project, error) {
	var out projectList
	if err := c.doJSON(ctx, http.MethodGet, "/api/projects", nil, &out); err != nil {
		return nil, err
	}
	return out.Data, nil
}

func (c *Client) Project(ctx context.Context, id string) (*models.Project, error) {
	var out projectEnvelope
	if err := c.doJSON(ctx, http.MethodGet, "/api/projects/"+url.PathEscape(id), nil, &out); err != nil {
		return nil, err
	}
	return &out.Data, nil
}

func (c *Client) CreateProject(ctx context.Context, in ProjectInput) (*models.Project, error) {
	var out projectEnvelope
	if err := c.doJSON(ctx, http.MethodPost, "/api/projects", in, &out); err != nil {
		return nil, err
	}
	return &out.Data, nil
}

func (c *Client) UpdateProject(ctx context.Context, id string, in ProjectInput) (*models.Project, error) {
	var out projectEnvelope
	if err := c.doJSON(ctx, http.MethodPut, "/api/projects/"+url.PathEscape(id), in, &out); err != nil {
		return nil, err
	}
	return &out.Data, nil
}

func (c *Client) DeleteProject(ctx context.Context, id string) error {
	return c.doJSON(ctx, http.MethodDelete, "/api/projects/"+url.PathEscape(id), nil, nil)
}

// UploadScreenshot stores an image and returns the URL to put into a
// project's screenshots.
func (c *Client) UploadScreenshot(ctx context.Context, f Upload) (models.RemoteAsset, error) {
	var out models.RemoteAsset
	err := c.doMultipart(ctx, http.MethodPost, "/api/admin/uploads/screenshots", nil, map[string]*Upload{"file": &f}, &out)
	return out, err
}

func (c *Client) doJSON(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return err
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return c.send(req, out)
}

func (c *Client) doMultipart(ctx context.Context, method, path string, fields map[string]string, files map[string]*Upload, out any) error {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	for k, v := range fields {
		if err := mw.WriteField(k, v); err != nil {
			return err
		}
	}
	for field, f := range files {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", mime.FormatMediaType("form-data", map[string]string{
			"name":     field,
			"filename": filepath.Base(f.Name),
		}))
		h.Set("Content-Type", contentTypeOf(f))

		w, err := mw.CreatePart(h)
		if err != nil {
			return err
		}
		if _, err := io.Copy(w, f.Body); err != nil {
			return err
		}
	}
	if err := mw.Close(); err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, &buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return c.send(req, out)
}

func (c *Client) send(req *http.Request, out any) error {
	resp, err := c.http.Do(req)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return err
		}
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		var env errorEnvelope
		if err := json.NewDecoder(resp.Body).Decode(&env); err != nil || env.Error == "" {
			env.Error = http.StatusText(resp.StatusCode)
		}
		return &APIError{Status: resp.StatusCode, Message: env.Error}
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func contentTypeOf(f *Upload) string {
	if f.ContentType != "" {
		return f.ContentType
	}
	if t := mime.TypeByExtension(strings.ToLower(filepath.Ext(f.Name))); t != "" {
		return t
	}
	return "application/octet-stream"
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

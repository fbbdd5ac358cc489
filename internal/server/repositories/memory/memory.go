// Package memory holds process-local repository implementations. They keep
// the observable behaviour of the Postgres ones (ordering, unique skill
// names, malformed ids reported as not found) and lose everything on exit.
package memory

import (
	"context"
	"slices"
	"sort"
	"sync"
	"time"

	"github.com/dmitrijs2005/folio/internal/common"
	"github.com/dmitrijs2005/folio/internal/server/models"
	"github.com/google/uuid"
)

func validID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

type Users struct {
	mu    sync.RWMutex
	items map[string]models.User
}

func NewUsers() *Users { return &Users{items: map[string]models.User{}} }

func (r *Users) Create(_ context.Context, u *models.User) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.items {
		if existing.UserName == u.UserName {
			return nil, common.ErrConflict
		}
	}
	u.ID = uuid.NewString()
	u.CreatedAt = time.Now().UTC()
	r.items[u.ID] = *u
	return u, nil
}

func (r *Users) GetByUserName(_ context.Context, userName string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.items {
		if u.UserName == userName {
			return &u, nil
		}
	}
	return nil, common.ErrNotFound
}

func (r *Users) GetByID(_ context.Context, id string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, ok := r.items[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	return &u, nil
}

type About struct {
	mu  sync.Mutex
	doc *models.AboutInfo
}

func NewAbout() *About { return &About{} }

func (r *About) Get(context.Context) (*models.AboutInfo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.doc == nil {
		r.doc = models.NewAboutInfo()
	}
	cp := *r.doc
	cp.TaglineStrings = slices.Clone(r.doc.TaglineStrings)
	return &cp, nil
}

func (r *About) Save(_ context.Context, info *models.AboutInfo) (*models.AboutInfo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.doc == nil {
		r.doc = models.NewAboutInfo()
	}
	info.ID = 1
	info.CreatedAt = r.doc.CreatedAt
	info.UpdatedAt = time.Now().UTC()
	cp := *info
	cp.TaglineStrings = slices.Clone(info.TaglineStrings)
	r.doc = &cp
	return info, nil
}

type Contact struct {
	mu  sync.Mutex
	doc *models.ContactInfo
}

func NewContact() *Contact { return &Contact{} }

func (r *Contact) Get(context.Context) (*models.ContactInfo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.doc == nil {
		r.doc = models.NewContactInfo()
	}
	cp := *r.doc
	cp.SocialLinks = slices.Clone(r.doc.SocialLinks)
	return &cp, nil
}

func (r *Contact) Save(_ context.Context, info *models.ContactInfo) (*models.ContactInfo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.doc == nil {
		r.doc = models.NewContactInfo()
	}
	info.ID = 1
	info.CreatedAt = r.doc.CreatedAt
	info.UpdatedAt = time.Now().UTC()
	if info.SocialLinks == nil {
		info.SocialLinks = []models.SocialLink{}
	}
	cp := *info
	cp.SocialLinks = slices.Clone(info.SocialLinks)
	r.doc = &cp
	return info, nil
}

// collection is an id-keyed set of documents shared by the multi-instance
// repositories.
type collection[T any] struct {
	mu    sync.RWMutex
	items map[string]T
}

func newCollection[T any]() collection[T] {
	return collection[T]{items: map[string]T{}}
}

func (c *collection[T]) get(id string) (T, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	v, ok := c.items[id]
	if !ok || !validID(id) {
		var zero T
		return zero, common.ErrNotFound
	}
	return v, nil
}

func (c *collection[T]) list(keep func(T) bool, less func(a, b T) bool) []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]T, 0, len(c.items))
	for _, v := range c.items {
		if keep == nil || keep(v) {
			out = append(out, v)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return less(out[i], out[j]) })
	return out
}

func (c *collection[T]) delete(id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.items[id]; !ok {
		return common.ErrNotFound
	}
	delete(c.items, id)
	return nil
}

type Experiences struct {
	collection[models.Experience]
}

func NewExperiences() *Experiences {
	return &Experiences{newCollection[models.Experience]()}
}

func (r *Experiences) List(context.Context) ([]models.Experience, error) {
	return r.list(nil, func(a, b models.Experience) bool {
		if a.Order != b.Order {
			return a.Order < b.Order
		}
		return a.CreatedAt.After(b.CreatedAt)
	}), nil
}

func (r *Experiences) GetByID(_ context.Context, id string) (*models.Experience, error) {
	e, err := r.get(id)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *Experiences) Create(_ context.Context, e *models.Experience) (*models.Experience, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e.ID = uuid.NewString()
	e.CreatedAt = time.Now().UTC()
	e.UpdatedAt = e.CreatedAt
	e.Description = slices.Clone(e.Description)
	r.items[e.ID] = *e
	return e, nil
}

func (r *Experiences) Update(_ context.Context, e *models.Experience) (*models.Experience, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	old, ok := r.items[e.ID]
	if !ok {
		return nil, common.ErrNotFound
	}
	e.CreatedAt = old.CreatedAt
	e.UpdatedAt = time.Now().UTC()
	e.Description = slices.Clone(e.Description)
	r.items[e.ID] = *e
	return e, nil
}

func (r *Experiences) Delete(_ context.Context, id string) error {
	return r.delete(id)
}

type Skills struct {
	collection[models.Skill]
}

func NewSkills() *Skills {
	return &Skills{newCollection[models.Skill]()}
}

func (r *Skills) List(_ context.Context, publicOnly bool) ([]models.Skill, error) {
	var keep func(models.Skill) bool
	if publicOnly {
		keep = func(s models.Skill) bool { return s.IsPublic }
	}
	return r.list(keep, func(a, b models.Skill) bool {
		if a.Order != b.Order {
			return a.Order < b.Order
		}
		return a.Name < b.Name
	}), nil
}

func (r *Skills) GetByID(_ context.Context, id string) (*models.Skill, error) {
	s, err := r.get(id)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// nameTaken must be called with the lock held.
func (r *Skills) nameTaken(name, exceptID string) bool {
	for id, s := range r.items {
		if id != exceptID && s.Name == name {
			return true
		}
	}
	return false
}

func (r *Skills) Create(_ context.Context, s *models.Skill) (*models.Skill, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.nameTaken(s.Name, "") {
		return nil, common.ErrConflict
	}
	s.ID = uuid.NewString()
	s.CreatedAt = time.Now().UTC()
	s.UpdatedAt = s.CreatedAt
	r.items[s.ID] = *s
	return s, nil
}

func (r *Skills) Update(_ context.Context, s *models.Skill) (*models.Skill, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	old, ok := r.items[s.ID]
	if !ok {
		return nil, common.ErrNotFound
	}
	if r.nameTaken(s.Name, s.ID) {
		return nil, common.ErrConflict
	}
	s.CreatedAt = old.CreatedAt
	s.UpdatedAt = time.Now().UTC()
	r.items[s.ID] = *s
	return s, nil
}

func (r *Skills) Delete(_ context.Context, id string) error {
	return r.delete(id)
}

type Projects struct {
	collection[models.Project]
}

func NewProjects() *Projects {
	return &Projects{newCollection[models.Project]()}
}

func (r *Projects) List(context.Context) ([]models.Project, error) {
	return r.list(nil, func(a, b models.Project) bool {
		if a.DisplayOrder != b.DisplayOrder {
			return a.DisplayOrder < b.DisplayOrder
		}
		return a.CreatedAt.After(b.CreatedAt)
	}), nil
}

func (r *Projects) GetByID(_ context.Context, id string) (*models.Project, error) {
	p, err := r.get(id)
	if err != nil {
		return nil, err
	}
	p.Technologies = slices.Clone(p.Technologies)
	p.Screenshots = slices.Clone(p.Screenshots)
	return &p, nil
}

func (r *Projects) Create(_ context.Context, p *models.Project) (*models.Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p.ID = uuid.NewString()
	p.CreatedAt = time.Now().UTC()
	p.UpdatedAt = p.CreatedAt
	if p.Screenshots == nil {
		p.Screenshots = []string{}
	}
	r.items[p.ID] = *p
	return p, nil
}

func (r *Projects) Update(_ context.Context, p *models.Project) (*models.Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	old, ok := r.items[p.ID]
	if !ok {
		return nil, common.ErrNotFound
	}
	p.CreatedAt = old.CreatedAt
	p.UpdatedAt = time.Now().UTC()
	if p.Screenshots == nil {
		p.Screenshots = []string{}
	}
	r.items[p.ID] = *p
	return p, nil
}

func (r *Projects) Delete(_ context.Context, id string) error {
	return r.delete(id)
}

package mocks

import (
	"context"
	"sort"

	"github.com/community-cms/internal/models"
)

// MockNewsRepository is an in-memory implementation of NewsRepository
type MockNewsRepository struct {
	Posts       map[int64]*models.NewsPost
	NextID      int64
	Err         error
	CreateCalls int
	UpdateCalls int
	DeleteCalls int
}

func NewMockNewsRepository() *MockNewsRepository {
	return &MockNewsRepository{Posts: make(map[int64]*models.NewsPost), NextID: 1}
}

func (m *MockNewsRepository) List(ctx context.Context) ([]*models.NewsPost, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	var posts []*models.NewsPost
	for _, p := range m.Posts {
		posts = append(posts, p)
	}
	sort.Slice(posts, func(i, j int) bool { return posts[i].ID > posts[j].ID })
	return posts, nil
}

func (m *MockNewsRepository) GetByID(ctx context.Context, id int64) (*models.NewsPost, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Posts[id], nil
}

func (m *MockNewsRepository) Create(ctx context.Context, post *models.NewsPost) error {
	m.CreateCalls++
	if m.Err != nil {
		return m.Err
	}
	post.ID = m.NextID
	m.NextID++
	clone := *post
	m.Posts[post.ID] = &clone
	return nil
}

func (m *MockNewsRepository) Update(ctx context.Context, id int64, post *models.NewsPost) (bool, error) {
	m.UpdateCalls++
	if m.Err != nil {
		return false, m.Err
	}
	existing, ok := m.Posts[id]
	if !ok {
		return false, nil
	}
	existing.Title = post.Title
	existing.Content = post.Content
	return true, nil
}

func (m *MockNewsRepository) Delete(ctx context.Context, id int64) (bool, error) {
	m.DeleteCalls++
	if m.Err != nil {
		return false, m.Err
	}
	if _, ok := m.Posts[id]; !ok {
		return false, nil
	}
	delete(m.Posts, id)
	return true, nil
}

// MockFaqRepository is an in-memory implementation of FaqRepository
type MockFaqRepository struct {
	Entries     map[int64]*models.FaqEntry
	NextID      int64
	Err         error
	CreateCalls int
	UpdateCalls int
	DeleteCalls int
}

func NewMockFaqRepository() *MockFaqRepository {
	return &MockFaqRepository{Entries: make(map[int64]*models.FaqEntry), NextID: 1}
}

func (m *MockFaqRepository) List(ctx context.Context) ([]*models.FaqEntry, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	var entries []*models.FaqEntry
	for _, e := range m.Entries {
		entries = append(entries, e)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].ID < entries[j].ID })
	return entries, nil
}

func (m *MockFaqRepository) GetByID(ctx context.Context, id int64) (*models.FaqEntry, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Entries[id], nil
}

func (m *MockFaqRepository) Create(ctx context.Context, entry *models.FaqEntry) error {
	m.CreateCalls++
	if m.Err != nil {
		return m.Err
	}
	entry.ID = m.NextID
	m.NextID++
	clone := *entry
	m.Entries[entry.ID] = &clone
	return nil
}

func (m *MockFaqRepository) Update(ctx context.Context, id int64, entry *models.FaqEntry) (bool, error) {
	m.UpdateCalls++
	if m.Err != nil {
		return false, m.Err
	}
	existing, ok := m.Entries[id]
	if !ok {
		return false, nil
	}
	existing.Question = entry.Question
	existing.Answer = entry.Answer
	return true, nil
}

func (m *MockFaqRepository) Delete(ctx context.Context, id int64) (bool, error) {
	m.DeleteCalls++
	if m.Err != nil {
		return false, m.Err
	}
	if _, ok := m.Entries[id]; !ok {
		return false, nil
	}
	delete(m.Entries, id)
	return true, nil
}

// MockResourceRepository is an in-memory implementation of ResourceRepository
type MockResourceRepository struct {
	Resources   map[int64]*models.Resource
	NextID      int64
	Err         error
	CreateCalls int
	UpdateCalls int
	DeleteCalls int
}

func NewMockResourceRepository() *MockResourceRepository {
	return &MockResourceRepository{Resources: make(map[int64]*models.Resource), NextID: 1}
}

func (m *MockResourceRepository) List(ctx context.Context) ([]*models.Resource, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	var resources []*models.Resource
	for _, r := range m.Resources {
		resources = append(resources, r)
	}
	sort.Slice(resources, func(i, j int) bool { return resources[i].ID > resources[j].ID })
	return resources, nil
}

func (m *MockResourceRepository) GetByID(ctx context.Context, id int64) (*models.Resource, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Resources[id], nil
}

func (m *MockResourceRepository) Create(ctx context.Context, res *models.Resource) error {
	m.CreateCalls++
	if m.Err != nil {
		return m.Err
	}
	res.ID = m.NextID
	m.NextID++
	clone := *res
	m.Resources[res.ID] = &clone
	return nil
}

func (m *MockResourceRepository) Update(ctx context.Context, id int64, res *models.Resource) (bool, error) {
	m.UpdateCalls++
	if m.Err != nil {
		return false, m.Err
	}
	if _, ok := m.Resources[id]; !ok {
		return false, nil
	}
	clone := *res
	clone.ID = id
	m.Resources[id] = &clone
	return true, nil
}

func (m *MockResourceRepository) Delete(ctx context.Context, id int64) (bool, error) {
	m.DeleteCalls++
	if m.Err != nil {
		return false, m.Err
	}
	if _, ok := m.Resources[id]; !ok {
		return false, nil
	}
	delete(m.Resources, id)
	return true, nil
}

// MockWaitlistRepository is an in-memory implementation of WaitlistRepository
type MockWaitlistRepository struct {
	WaitlistEntries []*models.WaitlistEntry
	NextID          int64
	Err             error
	CountErr        error
	AppendCalls     int
}

func NewMockWaitlistRepository() *MockWaitlistRepository {
	return &MockWaitlistRepository{NextID: 1}
}

func (m *MockWaitlistRepository) Append(ctx context.Context, email string) (*models.WaitlistEntry, error) {
	m.AppendCalls++
	if m.Err != nil {
		return nil, m.Err
	}
	entry := &models.WaitlistEntry{ID: m.NextID, Email: email}
	m.NextID++
	m.WaitlistEntries = append(m.WaitlistEntries, entry)
	return entry, nil
}

func (m *MockWaitlistRepository) List(ctx context.Context) ([]*models.WaitlistEntry, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.WaitlistEntries, nil
}

func (m *MockWaitlistRepository) Count(ctx context.Context) (int, error) {
	if m.CountErr != nil {
		return 0, m.CountErr
	}
	if m.Err != nil {
		return 0, m.Err
	}
	return len(m.WaitlistEntries), nil
}

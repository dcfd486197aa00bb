// Package mocks provides hand-written test doubles for the repository
// and mailer interfaces. Each mock exposes function fields so a test
// configures only the calls it expects.
package mocks

import (
	"time"

	"armust-news-cms/models"
)

type JournalistRepository struct {
	CreateFn         func(journalist *models.Journalist) error
	GetByIDFn        func(id uint) (*models.Journalist, error)
	GetByEmailFn     func(email string) (*models.Journalist, error)
	GetByUsernameFn  func(username string) (*models.Journalist, error)
	UpdateFn         func(journalist *models.Journalist) error
	UsernameExistsFn func(username string) (bool, error)
	EmailExistsFn    func(email string) (bool, error)
	ListChildrenFn   func(orgUsername string, limit int) ([]models.Journalist, error)
}

func (m *JournalistRepository) Create(journalist *models.Journalist) error {
	return m.CreateFn(journalist)
}

func (m *JournalistRepository) GetByID(id uint) (*models.Journalist, error) {
	return m.GetByIDFn(id)
}

func (m *JournalistRepository) GetByEmail(email string) (*models.Journalist, error) {
	return m.GetByEmailFn(email)
}

func (m *JournalistRepository) GetByUsername(username string) (*models.Journalist, error) {
	return m.GetByUsernameFn(username)
}

func (m *JournalistRepository) Update(journalist *models.Journalist) error {
	return m.UpdateFn(journalist)
}

func (m *JournalistRepository) UsernameExists(username string) (bool, error) {
	return m.UsernameExistsFn(username)
}

func (m *JournalistRepository) EmailExists(email string) (bool, error) {
	return m.EmailExistsFn(email)
}

func (m *JournalistRepository) ListChildren(orgUsername string, limit int) ([]models.Journalist, error) {
	return m.ListChildrenFn(orgUsername, limit)
}

type NewsRepository struct {
	CreateFn               func(post *models.NewsPost) error
	GetByIDFn              func(id uint) (*models.NewsPost, error)
	GetByIDForJournalistFn func(id, journalistID uint) (*models.NewsPost, error)
	GetBySlugFn            func(slug string) (*models.NewsPost, error)
	UpdateFn               func(post *models.NewsPost) error
	SlugExistsFn           func(slug string) (bool, error)
	GetListFn              func(params models.NewsListParams, journalistID uint, isPublic bool) ([]models.NewsPost, int64, error)
	CountByStatusFn        func(journalistID uint, status models.ContentStatus) (int64, error)
	CountActiveArticlesFn  func(journalistID uint) (int64, error)
	ListEventsBeforeFn     func(t time.Time, limit int) ([]models.NewsPost, error)
	ListForSitemapFn       func(filter models.SitemapFilter) ([]models.NewsPost, error)
	IncrementViewCounterFn func(id uint) error
	StreamAllFn            func(fn func(post *models.NewsPost) error) error
}

func (m *NewsRepository) Create(post *models.NewsPost) error {
	return m.CreateFn(post)
}

func (m *NewsRepository) GetByID(id uint) (*models.NewsPost, error) {
	return m.GetByIDFn(id)
}

func (m *NewsRepository) GetByIDForJournalist(id, journalistID uint) (*models.NewsPost, error) {
	return m.GetByIDForJournalistFn(id, journalistID)
}

func (m *NewsRepository) GetBySlug(slug string) (*models.NewsPost, error) {
	return m.GetBySlugFn(slug)
}

func (m *NewsRepository) Update(post *models.NewsPost) error {
	return m.UpdateFn(post)
}

func (m *NewsRepository) SlugExists(slug string) (bool, error) {
	return m.SlugExistsFn(slug)
}

func (m *NewsRepository) GetList(params models.NewsListParams, journalistID uint, isPublic bool) ([]models.NewsPost, int64, error) {
	return m.GetListFn(params, journalistID, isPublic)
}

func (m *NewsRepository) CountByStatus(journalistID uint, status models.ContentStatus) (int64, error) {
	return m.CountByStatusFn(journalistID, status)
}

func (m *NewsRepository) CountActiveArticles(journalistID uint) (int64, error) {
	return m.CountActiveArticlesFn(journalistID)
}

func (m *NewsRepository) ListEventsBefore(t time.Time, limit int) ([]models.NewsPost, error) {
	return m.ListEventsBeforeFn(t, limit)
}

func (m *NewsRepository) ListForSitemap(filter models.SitemapFilter) ([]models.NewsPost, error) {
	return m.ListForSitemapFn(filter)
}

func (m *NewsRepository) IncrementViewCounter(id uint) error {
	return m.IncrementViewCounterFn(id)
}

func (m *NewsRepository) StreamAll(fn func(post *models.NewsPost) error) error {
	return m.StreamAllFn(fn)
}

type VideoRepository struct {
	CreateFn               func(video *models.VideoNews) error
	GetByIDFn              func(id uint) (*models.VideoNews, error)
	GetByIDForJournalistFn func(id, journalistID uint) (*models.VideoNews, error)
	GetBySlugFn            func(slug string) (*models.VideoNews, error)
	UpdateFn               func(video *models.VideoNews) error
	SlugExistsFn           func(slug string) (bool, error)
	GetListFn              func(params models.NewsListParams, journalistID uint, isPublic bool) ([]models.VideoNews, int64, error)
	CountByTypeAndStatusFn func(journalistID uint, videoType models.VideoType, status models.ContentStatus) (int64, error)
	CountAllFn             func(journalistID uint) (int64, error)
	ListForSitemapFn       func(filter models.SitemapFilter) ([]models.VideoNews, error)
	IncrementViewCounterFn func(id uint) error
	StreamAllFn            func(fn func(video *models.VideoNews) error) error
}

func (m *VideoRepository) Create(video *models.VideoNews) error {
	return m.CreateFn(video)
}

func (m *VideoRepository) GetByID(id uint) (*models.VideoNews, error) {
	return m.GetByIDFn(id)
}

func (m *VideoRepository) GetByIDForJournalist(id, journalistID uint) (*models.VideoNews, error) {
	return m.GetByIDForJournalistFn(id, journalistID)
}

func (m *VideoRepository) GetBySlug(slug string) (*models.VideoNews, error) {
	return m.GetBySlugFn(slug)
}

func (m *VideoRepository) Update(video *models.VideoNews) error {
	return m.UpdateFn(video)
}

func (m *VideoRepository) SlugExists(slug string) (bool, error) {
	return m.SlugExistsFn(slug)
}

func (m *VideoRepository) GetList(params models.NewsListParams, journalistID uint, isPublic bool) ([]models.VideoNews, int64, error) {
	return m.GetListFn(params, journalistID, isPublic)
}

func (m *VideoRepository) CountByTypeAndStatus(journalistID uint, videoType models.VideoType, status models.ContentStatus) (int64, error) {
	return m.CountByTypeAndStatusFn(journalistID, videoType, status)
}

func (m *VideoRepository) CountAll(journalistID uint) (int64, error) {
	return m.CountAllFn(journalistID)
}

func (m *VideoRepository) ListForSitemap(filter models.SitemapFilter) ([]models.VideoNews, error) {
	return m.ListForSitemapFn(filter)
}

func (m *VideoRepository) IncrementViewCounter(id uint) error {
	return m.IncrementViewCounterFn(id)
}

func (m *VideoRepository) StreamAll(fn func(video *models.VideoNews) error) error {
	return m.StreamAllFn(fn)
}

type GalleryRepository struct {
	CreateFn           func(gallery *models.Gallery) error
	GetForJournalistFn func(id, journalistID uint) (*models.Gallery, error)
	UpdateFn           func(gallery *models.Gallery) error
	CountActiveFn      func(journalistID uint) (int64, error)
	ListActiveFn       func(journalistID uint) ([]models.Gallery, error)
}

func (m *GalleryRepository) Create(gallery *models.Gallery) error {
	return m.CreateFn(gallery)
}

func (m *GalleryRepository) GetForJournalist(id, journalistID uint) (*models.Gallery, error) {
	return m.GetForJournalistFn(id, journalistID)
}

func (m *GalleryRepository) Update(gallery *models.Gallery) error {
	return m.UpdateFn(gallery)
}

func (m *GalleryRepository) CountActive(journalistID uint) (int64, error) {
	return m.CountActiveFn(journalistID)
}

func (m *GalleryRepository) ListActive(journalistID uint) ([]models.Gallery, error) {
	return m.ListActiveFn(journalistID)
}

type RedirectRepository struct {
	CreateFn             func(redirect *models.NewsRedirect) error
	GetActiveByOldSlugFn func(oldSlug string) (*models.NewsRedirect, error)
}

func (m *RedirectRepository) Create(redirect *models.NewsRedirect) error {
	return m.CreateFn(redirect)
}

func (m *RedirectRepository) GetActiveByOldSlug(oldSlug string) (*models.NewsRedirect, error) {
	return m.GetActiveByOldSlugFn(oldSlug)
}

type CategoryRepository struct {
	CreateCategoryFn    func(category *models.Category) error
	CreateSubCategoryFn func(subCategory *models.SubCategory) error
	GetSubCategoryFn    func(id uint) (*models.SubCategory, error)
	ListActiveFn        func(limit int) ([]models.Category, error)
}

func (m *CategoryRepository) CreateCategory(category *models.Category) error {
	return m.CreateCategoryFn(category)
}

func (m *CategoryRepository) CreateSubCategory(subCategory *models.SubCategory) error {
	return m.CreateSubCategoryFn(subCategory)
}

func (m *CategoryRepository) GetSubCategory(id uint) (*models.SubCategory, error) {
	return m.GetSubCategoryFn(id)
}

func (m *CategoryRepository) ListActive(limit int) ([]models.Category, error) {
	return m.ListActiveFn(limit)
}

type SliderRepository struct {
	CreateFn     func(slider *models.Slider) error
	GetByIDFn    func(id uint) (*models.Slider, error)
	UpdateFn     func(slider *models.Slider) error
	ListActiveFn func() ([]models.Slider, error)
	SlugExistsFn func(slug string) (bool, error)
}

func (m *SliderRepository) Create(slider *models.Slider) error {
	return m.CreateFn(slider)
}

func (m *SliderRepository) GetByID(id uint) (*models.Slider, error) {
	return m.GetByIDFn(id)
}

func (m *SliderRepository) Update(slider *models.Slider) error {
	return m.UpdateFn(slider)
}

func (m *SliderRepository) ListActive() ([]models.Slider, error) {
	return m.ListActiveFn()
}

func (m *SliderRepository) SlugExists(slug string) (bool, error) {
	return m.SlugExistsFn(slug)
}

// Mailer records every send so tests can assert on dispatch counts and
// message content. A nil Err means every send succeeds.
type Mailer struct {
	Err  error
	Sent []SentMail
}

type SentMail struct {
	Subject string
	Body    string
	From    string
	To      []string
}

func (m *Mailer) Send(subject, body, from string, to []string) error {
	if m.Err != nil {
		return m.Err
	}
	m.Sent = append(m.Sent, SentMail{Subject: subject, Body: body, From: from, To: to})
	return nil
}
